// doc.go — package documentation for xgx-cause
//
// Package xgxcause provides a small, policy-free error propagation core built
// around a single opaque value type, ErrorValue: an immutable, singly-linked,
// type-erased error node with a closed kind set (io, parse, validation,
// custom). It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter, Unwrap)
//   - Policy-free (no logging/HTTP/retry rules in core)
//
// # The Cause Chain
//
// Every failing operation produces a terminal ErrorValue, either directly
// (New, Validation, ...) or by absorbing an external error at a boundary
// (From, FromKind). Layers above add context by wrapping:
//
//	ev := xgxcause.From(err)                              // terminal (io)
//	ev = xgxcause.Wrap(ev, xgxcause.KindParse, "while loading config", "file", path)
//	ev = xgxcause.Wrap(ev, xgxcause.KindCustom, "startup failed")
//
// Each Wrap creates a NEW outermost node owning the previous one as its
// cause. Nodes are immutable after construction; new information is always
// added by wrapping, never by mutating. The chain is structurally acyclic:
// a node can only ever own values that existed strictly before it.
//
// # Three Propagation Policies
//
// Call boundaries pick exactly one of:
//
//   - Pass-through: `return err` — no allocation, no lost context.
//   - Wrap-with-context: Attach(err, kind, msg, kv...) — converts foreign
//     errors via From, then wraps. Use at module boundaries.
//   - Recover: KindOf / HasKind / Downcast / RootCause, then substitute a
//     value or a different failure. A recovered error that is deliberately
//     dropped must go through Ignore — the single explicit discard.
//
// # When Are Backtraces Captured?
//
// Capture is governed by one process-wide flag, set once at startup and
// read thereafter:
//
//	+---------------------------+------------------------------------------+
//	| Operation                 | Captures backtrace?                      |
//	+---------------------------+------------------------------------------+
//	| New / semantic ctors      | YES, iff SetCaptureBacktraces(true)      |
//	| From / FromKind           | YES, iff SetCaptureBacktraces(true)      |
//	| Wrap / Attach             | NO — the root cause owns the stack       |
//	+---------------------------+------------------------------------------+
//
// Wrapping adds context, not a new capture: the innermost stack points at
// the true origin, and Render prints that one.
//
// # Rendering
//
// Render produces a deterministic, diffable, line-per-link view of the
// whole chain, outermost first, root cause last:
//
//	custom: startup failed
//	  caused by: parse: while loading config (file=app.toml line=3 col=7)
//	    caused by: io: file not found
//	backtrace:
//	  main.load /app/main.go:20
//
// fmt verbs: %v and %s are the concise single-node form (Error()), %+v is
// the full rendered chain, %q quotes the concise form.
//
// # Downcasting
//
// From stamps each absorbed external error with its concrete type identity.
// Downcast[T] recovers the original payload from the OUTERMOST node only,
// succeeding iff the identities match; a mismatch is (zero, false), never a
// failure. Walk to RootCause() first to recover the original terminal
// payload of a wrapped chain.
//
// # Fatal Misuse
//
// Recoverable conditions are always values. The only fatal paths are
// programming defects asserted at construction: an empty message, an
// invalid kind, or a nil cause passed to Wrap. These panic immediately
// rather than returning an error.
//
// # Minimal Surface, Clear Semantics
//
// Core intentionally carries no logging/config/transport policy. Adapters
// live beside the core (see zapbridge for structured logging, cmd/cfglint
// for an end-to-end consumer).
package xgxcause
