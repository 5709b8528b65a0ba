// benchmark_test.go — cost of the common paths.
package xgxcause

import (
	"errors"
	"testing"
)

func BenchmarkNew_NoCapture(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New(KindValidation, "invalid input")
	}
}

func BenchmarkNew_WithCapture(b *testing.B) {
	SetCaptureBacktraces(true)
	defer SetCaptureBacktraces(false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(KindValidation, "invalid input")
	}
}

func BenchmarkWrap(b *testing.B) {
	root := IO("root")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(root, KindCustom, "context")
	}
}

func BenchmarkFrom_Foreign(b *testing.B) {
	ext := errors.New("external")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = From(ext)
	}
}

func BenchmarkRender_ThreeLinks(b *testing.B) {
	ev := Wrap(Wrap(IO("root"), KindParse, "mid"), KindCustom, "top")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ev.Render()
	}
}

func BenchmarkRootCause_DeepChain(b *testing.B) {
	ev := Custom("root")
	for i := 0; i < 32; i++ {
		ev = Wrap(ev, KindCustom, "layer")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ev.RootCause()
	}
}
