// render.go — deterministic chain rendering and fmt integration.
//
// Behavior:
//
//	%s, %v   → concise single-node string (Error()).
//	%+v      → the full rendered chain (Render()).
//	%q       → quoted Error().
//
// Render is the stable, externally observable artifact: one line per chain
// link, outermost first, root cause last, each nested link indented under
// its wrapper; then a backtrace section iff any node captured one. Line
// content is deterministic — attribute order is insertion order — so test
// expectations can diff it byte-for-byte.
package xgxcause

import (
	"fmt"
	"io"
	"strings"
)

// Render produces the human-readable rendering of the full chain.
//
//	custom: startup failed
//	  caused by: parse: while loading config (file=app.toml line=3 col=7)
//	    caused by: io: file not found
//	backtrace:
//	  main.load /app/main.go:20
//
// For a chain of n wraps over a terminal node the output is exactly n+1
// lines, plus the backtrace block when one was captured. The innermost
// captured backtrace is printed, since it points at the true origin.
func (e *ErrorValue) Render() string {
	var sb strings.Builder
	e.renderTo(&sb)
	return sb.String()
}

// RenderTo writes the rendered chain to w, for callers streaming straight
// to stderr without an intermediate string.
func (e *ErrorValue) RenderTo(w io.Writer) {
	// ignore write errors in rendering paths
	sw, ok := w.(io.StringWriter)
	if !ok {
		_, _ = io.WriteString(w, e.Render())
		return
	}
	e.renderTo(sw)
}

func (e *ErrorValue) renderTo(w io.StringWriter) {
	depth := 0
	for n := e; n != nil; n = n.cause {
		if depth > 0 {
			_, _ = w.WriteString("\n")
			_, _ = w.WriteString(strings.Repeat("  ", depth))
			_, _ = w.WriteString("caused by: ")
		}
		_, _ = w.WriteString(string(n.kind))
		_, _ = w.WriteString(": ")
		_, _ = w.WriteString(n.msg)
		writeAttrs(w, n.attrs)
		depth++
	}

	if stk := e.innermostBacktrace(); len(stk) > 0 {
		_, _ = w.WriteString("\nbacktrace:")
		for _, fr := range stk {
			_, _ = w.WriteString(fmt.Sprintf("\n  %s %s:%d", fr.Function, fr.File, fr.Line))
		}
	}
}

// writeAttrs renders ordered attributes inline: " (k1=v1 k2=v2)".
// Empty keys are skipped; an all-empty list renders nothing.
func writeAttrs(w io.StringWriter, fs fieldList) {
	open := false
	for _, f := range fs {
		if f.Key == "" {
			continue
		}
		if !open {
			_, _ = w.WriteString(" (")
			open = true
		} else {
			_, _ = w.WriteString(" ")
		}
		_, _ = w.WriteString(fmt.Sprintf("%s=%v", f.Key, f.Val))
	}
	if open {
		_, _ = w.WriteString(")")
	}
}

// innermostBacktrace walks outermost→innermost and keeps the deepest
// captured stack. Only terminal constructors capture, so in practice this
// is the root cause's snapshot; the walk also honors chains assembled from
// pre-captured nodes.
func (e *ErrorValue) innermostBacktrace() Stack {
	var stk Stack
	for n := e; n != nil; n = n.cause {
		if len(n.stk) > 0 {
			stk = n.stk
		}
	}
	return stk
}

// Format implements fmt.Formatter.
func (e *ErrorValue) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.RenderTo(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}
