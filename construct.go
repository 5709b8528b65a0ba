// construct.go — construction and chaining for xgx-cause core.
//
// Scope:
//   - New / Wrap: the two chain-building primitives.
//   - From / FromKind: the single translation point where the closed error
//     world absorbs open-world external errors.
//   - Semantic constructors for the built-in kinds.
//
// Side effects: allocation only. Backtrace capture happens in TERMINAL
// constructors (New, From, FromKind, semantic ctors) and only while the
// process-wide flag is on; Wrap reuses the innermost capture.
//
// Misuse (empty message, invalid kind, nil cause) is a programming defect
// and panics at the construction site; it is never returned as a value.
package xgxcause

import (
	"encoding/json"
	"io"
	"io/fs"
	"reflect"
	"strconv"
)

// mustValid asserts the construction invariants shared by every
// constructor. Violations are defects, not recoverable conditions.
func mustValid(kind Kind, msg string) {
	if msg == "" {
		panic("xgxcause: empty message")
	}
	if !kind.Valid() {
		panic("xgxcause: invalid kind " + strconv.Quote(string(kind)))
	}
}

// New builds a terminal node with no cause. kv pairs become ordered
// structured attributes. Panics on empty msg or invalid kind.
func New(kind Kind, msg string, kv ...any) *ErrorValue {
	mustValid(kind, msg)
	return &ErrorValue{
		kind:  kind,
		msg:   msg,
		attrs: fieldsFromKV(kv...),
		stk:   captureIfEnabled(1),
	}
}

// Wrap builds a new outermost node owning cause. Ownership of cause
// transfers to the new node; cause itself is not touched and remains
// independently inspectable. Wrap never captures a backtrace — the root
// cause already holds the relevant one.
//
// Panics on nil cause, empty msg, or invalid kind.
func Wrap(cause *ErrorValue, kind Kind, msg string, kv ...any) *ErrorValue {
	if cause == nil {
		panic("xgxcause: wrap of nil cause")
	}
	mustValid(kind, msg)
	return &ErrorValue{
		kind:  kind,
		msg:   msg,
		cause: cause,
		attrs: fieldsFromKV(kv...),
	}
}

// From converts a terminal error produced by an external collaborator into
// an ErrorValue of the appropriate kind, stamping the payload type identity
// from err's concrete type and adopting err's own message.
//
//   - nil → nil
//   - *ErrorValue → returned as-is (already inside the closed world)
//   - *fs.PathError, io.EOF, io.ErrUnexpectedEOF → io
//   - *strconv.NumError, *json.SyntaxError, *json.UnmarshalTypeError → parse
//   - anything else → custom
//
// Boundaries that know the failure class better than this table should use
// FromKind instead.
func From(err error) *ErrorValue {
	if err == nil {
		return nil
	}
	if ev, ok := err.(*ErrorValue); ok {
		return ev
	}
	return fromExternal(err, classify(err), nil)
}

// FromKind is From with an explicit kind, for boundaries where the caller
// knows the failure class (e.g. a third-party parser's error type). kv
// pairs become attributes on the terminal node. Panics on invalid kind.
func FromKind(err error, kind Kind, kv ...any) *ErrorValue {
	if err == nil {
		return nil
	}
	if ev, ok := err.(*ErrorValue); ok {
		return ev
	}
	return fromExternal(err, kind, fieldsFromKV(kv...))
}

// fromExternal stamps identity and message from the external error.
// The external message is never empty in practice; a degenerate Error()
// result falls back to the kind tag so the non-empty invariant holds.
func fromExternal(err error, kind Kind, attrs fieldList) *ErrorValue {
	if !kind.Valid() {
		panic("xgxcause: invalid kind " + strconv.Quote(string(kind)))
	}
	msg := err.Error()
	if msg == "" {
		msg = string(kind) + " failure"
	}
	if attrs == nil {
		attrs = noFields
	}
	return &ErrorValue{
		kind:    kind,
		msg:     msg,
		payload: err,
		typeID:  reflect.TypeOf(err),
		attrs:   attrs,
		stk:     captureIfEnabled(2), // skip fromExternal and its caller (From/FromKind)
	}
}

// classify maps well-known stdlib terminal errors onto built-in kinds.
func classify(err error) Kind {
	switch err.(type) {
	case *fs.PathError:
		return KindIO
	case *strconv.NumError, *json.SyntaxError, *json.UnmarshalTypeError:
		return KindParse
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return KindIO
	}
	return KindCustom
}

// -----------------------------------------------------------------------------
// Semantic constructors
// -----------------------------------------------------------------------------

// IO creates a terminal io failure for boundaries that detect I/O trouble
// without a concrete external error to absorb.
func IO(msg string, kv ...any) *ErrorValue {
	mustValid(KindIO, msg)
	return &ErrorValue{
		kind:  KindIO,
		msg:   msg,
		attrs: fieldsFromKV(kv...),
		stk:   captureIfEnabled(1),
	}
}

// ParseAt creates a terminal parse failure pinned to a source location.
// file/line/col land in the canonical location attributes used by Render
// and the typed accessors in attr.go.
func ParseAt(msg, file string, line, col int) *ErrorValue {
	mustValid(KindParse, msg)
	return &ErrorValue{
		kind: KindParse,
		msg:  msg,
		attrs: fieldList{
			{Key: keyFile, Val: file},
			{Key: keyLine, Val: line},
			{Key: keyCol, Val: col},
		},
		stk: captureIfEnabled(1),
	}
}

// Validation creates a terminal validation failure for a caller-detected
// invariant breach in otherwise well-formed input.
func Validation(field, reason string) *ErrorValue {
	mustValid(KindValidation, "invalid "+field)
	return &ErrorValue{
		kind:  KindValidation,
		msg:   "invalid " + field,
		attrs: fieldList{{Key: "field", Val: field}, {Key: "reason", Val: reason}},
		stk:   captureIfEnabled(1),
	}
}

// Custom creates a terminal custom failure carrying only a message. It has
// no payload identity; Downcast on it always reports false.
func Custom(msg string, kv ...any) *ErrorValue {
	mustValid(KindCustom, msg)
	return &ErrorValue{
		kind:  KindCustom,
		msg:   msg,
		attrs: fieldsFromKV(kv...),
		stk:   captureIfEnabled(1),
	}
}
