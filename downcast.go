// downcast.go — typed recovery of absorbed external errors.
//
// From/FromKind stamp every absorbed external error with its concrete type
// identity (reflect.Type). That identity is stable for the lifetime of the
// program and unique per concrete error type, which makes downcasting a
// guarded identity comparison instead of an unchecked cast.
package xgxcause

import "reflect"

// Downcast attempts to recover the original concrete payload of type T
// from the OUTERMOST node only. It succeeds iff the node's stamped payload
// identity equals T's identity. A mismatch — wrong type, no payload, nil
// node — is (zero, false), never a failure.
//
// To recover the terminal payload of a wrapped chain, downcast the root:
//
//	pe, ok := xgxcause.Downcast[*fs.PathError](ev.RootCause())
func Downcast[T error](e *ErrorValue) (T, bool) {
	var zero T
	if e == nil || e.payload == nil {
		return zero, false
	}
	if e.typeID != reflect.TypeOf(zero) {
		// reflect.TypeOf(zero) is nil for interface-typed T with a nil
		// zero value; typeID is never nil when payload is set, so the
		// mismatch path also covers that degenerate instantiation.
		return zero, false
	}
	return e.payload.(T), true
}

// Payload returns the absorbed external error of the outermost node, or
// nil when the node was constructed directly. Prefer Downcast when the
// concrete type is known.
func (e *ErrorValue) Payload() error { return e.payload }

// PayloadType returns the stamped identity of the absorbed external error,
// or nil for directly constructed nodes. Two nodes of different concrete
// origins never share an identity.
func (e *ErrorValue) PayloadType() reflect.Type { return e.typeID }
