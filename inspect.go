// inspect.go — chain traversal helpers.
//
// The cause chain is a finite, acyclic, singly-linked list by construction,
// so traversal needs no cycle guard and no multi-branch bookkeeping — a
// plain walk bounded by chain length, which in practice is call-stack
// depth: tens, not thousands.
package xgxcause

import "errors"

// Walk visits every node from outermost to innermost, stopping early when
// visit returns false. Nil receiver and nil visit are no-ops.
func (e *ErrorValue) Walk(visit func(*ErrorValue) bool) {
	if e == nil || visit == nil {
		return
	}
	for n := e; n != nil; n = n.cause {
		if !visit(n) {
			return
		}
	}
}

// Chain returns every node outermost-first as a fresh slice. The nodes
// themselves are shared (immutable), only the slice is new. Nil receiver
// returns nil.
func (e *ErrorValue) Chain() []*ErrorValue {
	if e == nil {
		return nil
	}
	out := make([]*ErrorValue, 0, 4)
	for n := e; n != nil; n = n.cause {
		out = append(out, n)
	}
	return out
}

// Depth returns the number of links in the chain (1 for a terminal node).
// Nil receiver returns 0.
func (e *ErrorValue) Depth() int {
	d := 0
	for n := e; n != nil; n = n.cause {
		d++
	}
	return d
}

// Root returns the innermost ErrorValue reachable from any error, or nil.
// For a foreign error it first looks for an ErrorValue anywhere in the
// stdlib unwrap chain, then descends to its root cause.
func Root(err error) *ErrorValue {
	var ev *ErrorValue
	if !errors.As(err, &ev) {
		return nil
	}
	return ev.RootCause()
}

// Has reports whether target appears anywhere in err's unwrap chain,
// crossing the From translation boundary (terminal nodes unwrap to their
// absorbed payload). Nil-safe wrapper over errors.Is.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
