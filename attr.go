// attr.go — typed attribute access for xgx-cause core.
//
// Attr[T] is an optional ergonomic layer over the plain key/value attribute
// API (New(..., kv...), With). It does not replace it; authors who prefer
// typed reads declare package-level attrs once and reuse them.
//
// The dynamic type stored on the node must match T exactly; no implicit
// conversions are made.
package xgxcause

import "fmt"

// Canonical location attribute keys. ParseAt populates these; Render prints
// them inline on the owning chain link.
const (
	keyFile = "file"
	keyLine = "line"
	keyCol  = "col"
)

// Location attrs, usable from outside the package for reads and custom
// parse boundaries.
var (
	AttrFile = Attr[string]{key: keyFile}
	AttrLine = Attr[int]{key: keyLine}
	AttrCol  = Attr[int]{key: keyCol}
)

// Attr is a typed view onto one attribute key. T is the Go type stored and
// retrieved for that key.
type Attr[T any] struct {
	key string
}

// AttrOf constructs an Attr[T] for a key. Keys SHOULD be snake_case for
// consistency across rendered chains and logs.
func AttrOf[T any](key string) Attr[T] {
	return Attr[T]{key: key}
}

// Key returns the underlying string key.
func (a Attr[T]) Key() string { return a.key }

// Set returns a NEW node with (key = val) appended. Nil-safe only in the
// sense that the caller must hold a node already; attrs never create one.
func (a Attr[T]) Set(e *ErrorValue, val T) *ErrorValue {
	return e.With(a.key, any(val))
}

// Get retrieves the typed value from e's own attributes (this node only,
// not the chain). Returns (zero, false) if e is nil, the key is absent, or
// the stored dynamic type differs from T.
func (a Attr[T]) Get(e *ErrorValue) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	// Scan the ordered list backwards so last-write-wins matches Fields().
	for i := len(e.attrs) - 1; i >= 0; i-- {
		if e.attrs[i].Key != a.key {
			continue
		}
		tv, ok := e.attrs[i].Val.(T)
		if !ok {
			return zero, false
		}
		return tv, true
	}
	return zero, false
}

// MustGet retrieves the typed value or panics. Intended for tests and
// places where absence is a programming error, not a runtime condition.
func (a Attr[T]) MustGet(e *ErrorValue) T {
	v, ok := a.Get(e)
	if !ok {
		var zero T
		panic(fmt.Errorf("xgxcause.Attr[%T](%q): field missing or wrong dynamic type", zero, a.key))
	}
	return v
}
