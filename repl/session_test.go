package repl

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/pontaoski/woc/object"
)

func init() {
	color.NoColor = true
}

func newTestSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewSession(&out, &errOut), &out, &errOut
}

func TestPrintsNonNullResults(t *testing.T) {
	s, out, errOut := newTestSession()

	s.Feed("let x = 5;")
	s.Feed("x * 2;")
	s.Feed("5 + 5.5; undefined_name;")

	if got := out.String(); got != "10\n10.5\n" {
		t.Errorf("output %q", got)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected errors %q", errOut.String())
	}
}

func TestScopePersistsAcrossLines(t *testing.T) {
	s, out, _ := newTestSession()

	s.Feed("func counter() { let c = 0; func inc() { return c + 1; } return inc; }")
	s.Feed("let f = counter();")
	s.Feed("f();")

	if got := out.String(); got != "1\n" {
		t.Errorf("output %q", got)
	}
}

func TestBackslashContinuation(t *testing.T) {
	s, out, _ := newTestSession()

	if st := s.Feed(`func add(a, b) { \`); st != Continue {
		t.Fatalf("status %v, want Continue", st)
	}
	if !s.Pending() {
		t.Fatal("no pending input after a continued line")
	}
	if st := s.Feed(`  return a + b; \`); st != Continue {
		t.Fatalf("status %v, want Continue", st)
	}
	if st := s.Feed("}"); st != Ready {
		t.Fatalf("status %v, want Ready", st)
	}
	if s.Pending() {
		t.Fatal("pending input left after evaluation")
	}

	s.Feed("add(40, 2);")
	if got := out.String(); got != "42\n" {
		t.Errorf("output %q", got)
	}
}

func TestDiscardDropsPendingLines(t *testing.T) {
	s, out, errOut := newTestSession()

	s.Feed(`let broken = \`)
	s.Discard()
	s.Feed("1;")

	if out.String() != "1\n" || errOut.Len() != 0 {
		t.Errorf("out %q err %q", out.String(), errOut.String())
	}
}

func TestDiagnosticsSkipEvaluation(t *testing.T) {
	s, out, errOut := newTestSession()

	results := s.Eval("let y = 1; let = 2;")
	if results != nil {
		t.Errorf("evaluated despite diagnostics: %s", repr.String(results))
	}
	if _, ok := s.Scope().Get("y"); ok {
		t.Error("statement before the mistake was evaluated")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
	if !strings.Contains(errOut.String(), "parse error: expected next token to be IDENT, got ASSIGN instead") {
		t.Errorf("diagnostic not shown: %q", errOut.String())
	}
}

func TestErrorsGoToErrorWriter(t *testing.T) {
	s, out, errOut := newTestSession()

	s.Feed("func f(a) { a } f();")
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
	if got := errOut.String(); got != "error: wrong number of arguments to f: got=0, want=1\n" {
		t.Errorf("error output %q", got)
	}
}

func TestEvalReturnsEveryResult(t *testing.T) {
	s, _, _ := newTestSession()

	got := s.Eval("1; let z = 2; z;")
	want := []object.Object{object.Integer(1), object.Null{}, object.Integer(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %s", repr.String(got))
	}
}

func TestCommands(t *testing.T) {
	s, out, errOut := newTestSession()

	if st := s.Feed("  exit  "); st != Exit {
		t.Errorf("exit gave status %v", st)
	}

	s.Feed("let b = 2; let a = 1;")
	s.Feed(":scope")
	if got := out.String(); got != "a = 1\nb = 2\n" {
		t.Errorf(":scope printed %q", got)
	}

	s.Feed(":reset")
	if names := s.Scope().Names(); len(names) != 0 {
		t.Errorf("scope after reset: %v", names)
	}

	s.Feed(":bogus")
	if !strings.Contains(errOut.String(), "unknown command :bogus") {
		t.Errorf("error output %q", errOut.String())
	}
}

func TestExitInsideContinuationIsSource(t *testing.T) {
	s, _, errOut := newTestSession()

	s.Feed(`1 + \`)
	if st := s.Feed("exit"); st != Ready {
		t.Errorf("status %v, want Ready", st)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected errors %q", errOut.String())
	}
}
