// kind.go — the closed kind set for xgx-cause core.
//
// Intent:
//   - Four built-in kinds cover the boundaries the core translates:
//     io, parse, validation, custom.
//   - The set is CLOSED. Extension happens through KindCustom plus the
//     payload type identity stamped by From, not through new tags.
//   - No HTTP/status/retry policy attaches to a kind here; higher layers may
//     interpret kinds, core does not.
package xgxcause

// Kind classifies an ErrorValue into one of the built-in categories.
//
// Kinds are stringly-typed for stable rendering and log output, but unlike
// an open code registry the set is fixed: constructors reject anything
// outside the four constants below.
type Kind string

const (
	// KindIO marks a failure of an external input/output operation
	// (filesystem, network, stream exhaustion).
	KindIO Kind = "io"

	// KindParse marks malformed input. Parse nodes usually carry file,
	// line and col fields (see AttrFile/AttrLine/AttrCol).
	KindParse Kind = "parse"

	// KindValidation marks a caller-detected invariant breach in otherwise
	// well-formed input.
	KindValidation Kind = "validation"

	// KindCustom is the extension point: an opaque kind identified only by
	// its message and, when absorbed from an external error, the payload
	// type identity.
	KindCustom Kind = "custom"
)

// allKinds is the ordered, closed set. Unexported to avoid exposing mutable
// slice identity; order is stable for docs and rendering.
var allKinds = []Kind{KindIO, KindParse, KindValidation, KindCustom}

// kindSet provides O(1) validity checks.
var kindSet = map[Kind]struct{}{
	KindIO:         {},
	KindParse:      {},
	KindValidation: {},
	KindCustom:     {},
}

// Kinds returns a defensive copy of the built-in kinds in stable order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// Valid reports whether k is one of the built-in kinds. The zero value ""
// is never valid.
func (k Kind) Valid() bool {
	_, ok := kindSet[k]
	return ok
}

// String returns the stable lowercase tag used in rendered chains.
func (k Kind) String() string { return string(k) }
