// stack.go — backtrace capture for xgx-cause core.
//
// Design:
//   - Accuracy first: runtime.Callers + runtime.CallersFrames so inlined
//     frames resolve correctly.
//   - One process-wide capture flag, set once at startup and read
//     thereafter. Capture cost is paid only when the flag is on, and only
//     by TERMINAL constructors — Wrap never recaptures, because the root
//     cause is the diagnostically relevant call site.
//   - Bounded depth; no allocations at all while the flag is off.
package xgxcause

import (
	"runtime"
	"sync/atomic"
)

// Frame is a single call site in a captured backtrace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // file path as reported by runtime
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or recv.method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// maxDepth bounds captured frames; deep enough for real chains, cheap
// enough for exceptional paths.
const maxDepth = 64

// captureEnabled is the process-wide backtrace toggle. The intended
// discipline is set-once-at-startup, read-only after; atomic storage keeps
// late readers race-free regardless.
var captureEnabled atomic.Bool

// SetCaptureBacktraces switches backtrace capture for all subsequently
// constructed terminal nodes. Call it once during process startup, before
// any errors are produced. Flipping it later never mutates already
// constructed nodes: a captured backtrace stays, a skipped one stays
// skipped.
func SetCaptureBacktraces(enabled bool) { captureEnabled.Store(enabled) }

// CaptureBacktracesEnabled reports the current state of the capture flag.
func CaptureBacktracesEnabled() bool { return captureEnabled.Load() }

// captureIfEnabled is the terminal-constructor hook: nil when the flag is
// off, a resolved Stack otherwise. skip counts frames above the caller of
// this function that should be hidden (constructor internals).
func captureIfEnabled(skip int) Stack {
	if !captureEnabled.Load() {
		return nil
	}
	return capture(skip + 1) // +1 to skip this hook
}

// capture records up to maxDepth frames, skipping 'skip' frames above its
// caller, and resolves them via CallersFrames (handles inlining).
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for capture
//
// so skip=0 places the first frame at capture's caller.
func capture(skip int) Stack {
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
