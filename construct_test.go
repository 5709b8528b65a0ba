// construct_test.go — verification of constructors, chaining, and the
// translation boundary.
package xgxcause

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"strconv"
	"testing"
)

// mustPanic asserts that fn panics; used for the fatal-misuse paths.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

func TestNew_TerminalNode(t *testing.T) {
	t.Parallel()

	ev := New(KindValidation, "port out of range", "port", 70000)
	if ev.Kind() != KindValidation {
		t.Fatalf("kind: want=%s got=%s", KindValidation, ev.Kind())
	}
	if ev.Message() != "port out of range" {
		t.Fatalf("message: got %q", ev.Message())
	}
	if ev.Source() != nil {
		t.Fatalf("terminal node must have nil Source")
	}
	if got := ev.Fields()["port"]; got != 70000 {
		t.Fatalf("attrs: want port=70000 got=%v", got)
	}
}

func TestNew_FatalMisusePanics(t *testing.T) {
	t.Parallel()

	mustPanic(t, "empty message", func() { New(KindIO, "") })
	mustPanic(t, "invalid kind", func() { New(Kind("network"), "boom") })
	mustPanic(t, "zero kind", func() { New(Kind(""), "boom") })
}

func TestWrap_ChainsWithoutMutatingCause(t *testing.T) {
	t.Parallel()

	root := IO("file not found", "path", "/etc/app.toml")
	rootRendered := root.Render()

	outer := Wrap(root, KindParse, "while loading config")
	if outer.Source() != root {
		t.Fatalf("Source must be the wrapped cause")
	}
	if outer.Kind() != KindParse {
		t.Fatalf("outer kind: got %s", outer.Kind())
	}

	// The original node remains independently inspectable.
	if got := root.Render(); got != rootRendered {
		t.Fatalf("Wrap mutated its cause:\nbefore=%q\nafter=%q", rootRendered, got)
	}
	if root.Source() != nil {
		t.Fatalf("wrapped terminal grew a cause")
	}
}

func TestWrap_FatalMisusePanics(t *testing.T) {
	t.Parallel()

	mustPanic(t, "nil cause", func() { Wrap(nil, KindCustom, "x") })
	mustPanic(t, "empty message", func() { Wrap(Custom("c"), KindCustom, "") })
	mustPanic(t, "invalid kind", func() { Wrap(Custom("c"), Kind("bogus"), "x") })
}

func TestFrom_NilAndIdentity(t *testing.T) {
	t.Parallel()

	if From(nil) != nil {
		t.Fatalf("From(nil) must be nil")
	}

	ev := Custom("already converted")
	if From(ev) != ev {
		t.Fatalf("From must return an ErrorValue unchanged")
	}
}

func TestFrom_ClassifiesStdlibTerminals(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"path_error", &fs.PathError{Op: "open", Path: "/nope", Err: fs.ErrNotExist}, KindIO},
		{"eof", io.EOF, KindIO},
		{"unexpected_eof", io.ErrUnexpectedEOF, KindIO},
		{"num_error", &strconv.NumError{Func: "Atoi", Num: "x7", Err: strconv.ErrSyntax}, KindParse},
		{"json_syntax", &json.SyntaxError{Offset: 12}, KindParse},
		{"plain", errors.New("something else"), KindCustom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := From(tc.err)
			if ev.Kind() != tc.want {
				t.Fatalf("kind: want=%s got=%s", tc.want, ev.Kind())
			}
			if ev.Message() == "" {
				t.Fatalf("message must never be empty")
			}
			if ev.Payload() == nil {
				t.Fatalf("payload must carry the external error")
			}
		})
	}
}

func TestFrom_AdoptsExternalMessage(t *testing.T) {
	t.Parallel()

	ext := errors.New("disk quota exceeded")
	ev := From(ext)
	if ev.Message() != "disk quota exceeded" {
		t.Fatalf("external message not adopted: %q", ev.Message())
	}
	// Interop: the payload stays reachable through stdlib traversal.
	if !errors.Is(ev, ext) {
		t.Fatalf("errors.Is must see through the translation boundary")
	}
}

func TestFromKind_ExplicitClassification(t *testing.T) {
	t.Parallel()

	ext := errors.New("unexpected token ']' at line 3")
	ev := FromKind(ext, KindParse, "file", "app.toml", "line", 3)
	if ev.Kind() != KindParse {
		t.Fatalf("kind: got %s", ev.Kind())
	}
	if got := ev.Fields()["file"]; got != "app.toml" {
		t.Fatalf("attrs: got %v", ev.Fields())
	}
	if FromKind(nil, KindParse) != nil {
		t.Fatalf("FromKind(nil) must be nil")
	}
	mustPanic(t, "invalid kind", func() { FromKind(ext, Kind("bogus")) })
}

func TestSemanticConstructors(t *testing.T) {
	t.Parallel()

	t.Run("IO", func(t *testing.T) {
		ev := IO("socket closed")
		if ev.Kind() != KindIO || ev.Message() != "socket closed" {
			t.Fatalf("unexpected kind/msg: %s %q", ev.Kind(), ev.Message())
		}
	})

	t.Run("ParseAt", func(t *testing.T) {
		ev := ParseAt("unexpected token", "app.toml", 3, 7)
		if ev.Kind() != KindParse {
			t.Fatalf("kind: got %s", ev.Kind())
		}
		if f := AttrFile.MustGet(ev); f != "app.toml" {
			t.Fatalf("file attr: got %q", f)
		}
		if l := AttrLine.MustGet(ev); l != 3 {
			t.Fatalf("line attr: got %d", l)
		}
		if c := AttrCol.MustGet(ev); c != 7 {
			t.Fatalf("col attr: got %d", c)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		ev := Validation("port", "must be 1..65535")
		if ev.Kind() != KindValidation || ev.Message() != "invalid port" {
			t.Fatalf("unexpected kind/msg: %s %q", ev.Kind(), ev.Message())
		}
		m := ev.Fields()
		if m["field"] != "port" || m["reason"] != "must be 1..65535" {
			t.Fatalf("attrs: got %v", m)
		}
	})

	t.Run("Custom", func(t *testing.T) {
		ev := Custom("startup failed")
		if ev.Kind() != KindCustom {
			t.Fatalf("kind: got %s", ev.Kind())
		}
		if ev.PayloadType() != nil {
			t.Fatalf("direct custom node must have no payload identity")
		}
	})
}

func TestErrorAndUnwrap_Interop(t *testing.T) {
	t.Parallel()

	ext := &fs.PathError{Op: "open", Path: "/nope", Err: fs.ErrNotExist}
	root := From(ext)
	outer := Wrap(root, KindCustom, "startup failed")

	if outer.Error() != "custom: startup failed" {
		t.Fatalf("concise form: got %q", outer.Error())
	}
	if errors.Unwrap(outer) != error(root) {
		t.Fatalf("Unwrap must return the cause")
	}
	if !errors.Is(outer, fs.ErrNotExist) {
		t.Fatalf("errors.Is must traverse chain and payload")
	}
	var pe *fs.PathError
	if !errors.As(outer, &pe) || pe != ext {
		t.Fatalf("errors.As must recover the payload through the chain")
	}
}
