// error.go — the ErrorValue node for xgx-cause core.
//
// ErrorValue is the single opaque error type of the framework. One concrete
// struct replaces open-ended dynamic dispatch: classification lives in the
// closed Kind tag, and recovery of original external errors goes through the
// stamped payload type identity instead of blind type assertions.
//
// Invariants (established at construction, never revisited):
//   - message is non-empty.
//   - kind is one of the four built-ins.
//   - cause, when set, was fully constructed strictly before this node, so
//     the chain is finite and acyclic by construction.
//   - all fields are write-once; fluent helpers return a NEW node.
package xgxcause

import "reflect"

// ErrorValue is an immutable, ownership-chained, type-erased error node.
//
// A nil *ErrorValue means "no error". Non-nil values are safe to share
// across goroutines without synchronization: construction completes before
// the value is observed anywhere else, and nothing mutates it afterwards.
type ErrorValue struct {
	kind  Kind
	msg   string
	cause *ErrorValue

	// payload holds the external error absorbed by From/FromKind at a
	// boundary; typeID is its concrete dynamic type. Both are nil/zero for
	// nodes constructed directly.
	payload error
	typeID  reflect.Type

	attrs fieldList
	stk   Stack
}

// Kind returns this node's (the outermost link's) kind.
func (e *ErrorValue) Kind() Kind { return e.kind }

// Message returns this node's human-readable description. Never empty.
func (e *ErrorValue) Message() string { return e.msg }

// Source returns the immediate cause, or nil when this node is terminal.
// The returned node is a borrowed view: callers inspect it, the receiver
// keeps owning it.
func (e *ErrorValue) Source() *ErrorValue { return e.cause }

// RootCause walks the chain to the innermost node (the terminal error).
// A terminal node is its own root cause. O(chain length).
func (e *ErrorValue) RootCause() *ErrorValue {
	n := e
	for n.cause != nil {
		n = n.cause
	}
	return n
}

// Fields returns a shallow COPY of this node's structured attributes as a
// map (copy-on-read, last-write-wins for duplicate keys). Safe for callers
// to mutate. Returns nil when the node carries no attributes.
func (e *ErrorValue) Fields() map[string]any { return fieldsToMap(e.attrs) }

// Attrs returns this node's structured attributes in insertion order, as a
// defensive copy. Duplicate keys are preserved; Fields collapses them with
// last-write-wins. Returns nil when the node carries none.
func (e *ErrorValue) Attrs() []Field {
	if len(e.attrs) == 0 {
		return nil
	}
	out := make([]Field, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Backtrace returns the stack snapshot captured at this node's
// construction, or nil. Only terminal constructors capture; see stack.go.
func (e *ErrorValue) Backtrace() Stack { return e.stk }

// With returns a NEW node identical to e plus one attribute appended.
// The receiver is never modified. Kind, message, cause, payload identity
// and backtrace all carry over unchanged.
func (e *ErrorValue) With(key string, val any) *ErrorValue {
	n := e.clone()
	n.attrs = cloneAppend(n.attrs, Field{Key: key, Val: val})
	return n
}

// clone returns a fresh node with a defensively copied attribute slice.
// Stack is an immutable value type; shallow copy is fine.
func (e *ErrorValue) clone() *ErrorValue {
	n := *e
	if len(e.attrs) > 0 {
		copied := make(fieldList, len(e.attrs))
		copy(copied, e.attrs)
		n.attrs = copied
	} else {
		n.attrs = noFields
	}
	return &n
}

// Error implements the error interface with the concise single-node form
// "kind: message". The full chain belongs to Render / %+v.
func (e *ErrorValue) Error() string {
	return string(e.kind) + ": " + e.msg
}

// Unwrap exposes the causal parent to stdlib traversal (errors.Is/As).
// For a terminal node that absorbed an external error, the payload is the
// parent, so errors.Is(ev, io.EOF) and errors.As(ev, &pathErr) keep
// working across the translation boundary.
func (e *ErrorValue) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	if e.payload != nil {
		return e.payload
	}
	return nil
}

var _ error = (*ErrorValue)(nil)
