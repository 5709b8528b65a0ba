// predicates.go — classification queries for the recover policy.
//
// Interop-first: everything goes through errors.As, so foreign wrappers
// around an ErrorValue (fmt.Errorf %w and friends) are seen through.
package xgxcause

import "errors"

// KindOf returns the kind of the outermost ErrorValue reachable from err,
// or "" when the chain contains none.
func KindOf(err error) Kind {
	var ev *ErrorValue
	if errors.As(err, &ev) {
		return ev.kind
	}
	return ""
}

// HasKind reports whether any link of the chain reachable from err carries
// the given kind.
func HasKind(err error, kind Kind) bool {
	var ev *ErrorValue
	if !errors.As(err, &ev) {
		return false
	}
	found := false
	ev.Walk(func(n *ErrorValue) bool {
		if n.kind == kind {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsIO reports whether err's outermost ErrorValue is an io failure.
func IsIO(err error) bool { return KindOf(err) == KindIO }

// IsParse reports whether err's outermost ErrorValue is a parse failure.
func IsParse(err error) bool { return KindOf(err) == KindParse }

// IsValidation reports whether err's outermost ErrorValue is a validation
// failure.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
