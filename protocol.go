// protocol.go — the cross-boundary propagation discipline over arbitrary
// errors.
//
// Every fallible operation returns (value, error). At each boundary the
// implementer picks one of three policies, all supported uniformly:
//
//  1. Pass-through: `return err` — nothing here to call, by design; the
//     failure propagates unchanged with no re-allocation.
//  2. Wrap-with-context: Attach — converts foreign errors into the closed
//     world (via From) and wraps with layer context. The original cause is
//     never discarded.
//  3. Recover: the predicates in predicates.go plus Downcast; a recovered
//     failure that is dropped on purpose must pass through Ignore so the
//     discard is visible and greppable at the call site.
package xgxcause

// Attach intercepts any failure and wraps it with layer-specific context,
// producing the new outermost link.
//
//   - err == nil → a fresh terminal node (boundary detected the failure
//     itself and has no lower-level cause to absorb)
//   - *ErrorValue → wrapped directly (pass-through of the chain plus one link)
//   - foreign error → absorbed via From, then wrapped
//
// Panics on empty msg or invalid kind, like every constructor.
func Attach(err error, kind Kind, msg string, kv ...any) *ErrorValue {
	if err == nil {
		return New(kind, msg, kv...)
	}
	return Wrap(From(err), kind, msg, kv...)
}

// Ignore is the single explicit acknowledged-discard operation. Dropping
// an ErrorValue without rendering, wrapping, or recovering it is a
// protocol violation unless it goes through here. The reason documents the
// intent at the call site:
//
//	xgxcause.Ignore(err, "optional override file may be absent")
//
// Ignore does nothing: its value is that deliberate discards are written
// down and searchable. Nil err is a no-op.
func Ignore(err error, reason string) {
	_ = err
	_ = reason
}
