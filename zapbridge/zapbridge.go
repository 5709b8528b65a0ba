// Package zapbridge adapts xgx-cause error chains to structured zap logging.
//
// Core stays policy-free; this bridge is where an ErrorValue meets a log
// sink. It translates a chain into deterministic zap fields so log queries
// can filter on kind and root cause without parsing rendered text, while
// the full rendering still travels along for humans.
package zapbridge

import (
	"go.uber.org/zap"

	xgxcause "github.com/xgx-io/xgx-cause"
)

// Fields flattens an error chain into zap fields:
//
//	error        — concise outermost form ("kind: msg")
//	error_kind   — outermost kind tag
//	root_cause   — concise terminal form
//	root_kind    — terminal kind tag
//	chain_depth  — number of links
//	error_chain  — full rendered chain (multi-line, diffable)
//
// plus one field per structured attribute of the outermost node. Nil input
// yields nil.
func Fields(e *xgxcause.ErrorValue) []zap.Field {
	if e == nil {
		return nil
	}
	root := e.RootCause()
	out := []zap.Field{
		zap.String("error", e.Error()),
		zap.String("error_kind", e.Kind().String()),
		zap.String("root_cause", root.Error()),
		zap.String("root_kind", root.Kind().String()),
		zap.Int("chain_depth", e.Depth()),
		zap.String("error_chain", e.Render()),
	}
	for _, f := range e.Attrs() {
		out = append(out, zap.Any(f.Key, f.Val))
	}
	return out
}

// Error logs msg at error level with the chain's fields attached. A nil
// chain is a no-op: handled failures produce no trace unless a layer
// explicitly renders them.
func Error(l *zap.Logger, msg string, e *xgxcause.ErrorValue) {
	if l == nil || e == nil {
		return
	}
	l.Error(msg, Fields(e)...)
}

// Warn is Error at warn level, for recovered failures a layer still wants
// on the record.
func Warn(l *zap.Logger, msg string, e *xgxcause.ErrorValue) {
	if l == nil || e == nil {
		return
	}
	l.Warn(msg, Fields(e)...)
}
