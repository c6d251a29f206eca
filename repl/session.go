package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/fatih/color"
	"github.com/pontaoski/woc/evaluator"
	"github.com/pontaoski/woc/lexer"
	"github.com/pontaoski/woc/object"
	"github.com/pontaoski/woc/parser"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/woc", "repl")

const inputName = "<repl>"

var (
	red   = color.New(color.FgRed).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

type Status int

const (
	// Ready means the input was handled and a fresh prompt is due.
	Ready Status = iota
	// Continue means the line ended in a backslash and more input is needed.
	Continue
	// Exit means the user asked to leave the shell.
	Exit
)

// Session evaluates interactive input against one root scope that lives as
// long as the session does.
type Session struct {
	scope   *object.Scope
	out     io.Writer
	errOut  io.Writer
	pending []string
}

func NewSession(out, errOut io.Writer) *Session {
	return &Session{
		scope:  object.NewScope(nil),
		out:    out,
		errOut: errOut,
	}
}

func (s *Session) Scope() *object.Scope {
	return s.scope
}

// Pending reports whether earlier lines are waiting for a continuation.
func (s *Session) Pending() bool {
	return len(s.pending) > 0
}

// Discard drops any continuation lines collected so far.
func (s *Session) Discard() {
	s.pending = nil
}

// Feed takes one line of input. Lines ending in a backslash are collected
// until a line without one arrives, then the whole block is evaluated.
func (s *Session) Feed(line string) Status {
	trimmed := strings.TrimSpace(line)

	if !s.Pending() {
		switch {
		case trimmed == "exit":
			return Exit
		case strings.HasPrefix(trimmed, ":"):
			s.command(trimmed)
			return Ready
		}
	}

	if strings.HasSuffix(trimmed, `\`) {
		s.pending = append(s.pending, strings.TrimSuffix(strings.TrimRight(line, " \t"), `\`))
		return Continue
	}

	src := strings.Join(append(s.pending, line), "\n")
	s.pending = nil
	s.Eval(src)
	return Ready
}

// Eval runs src in the session scope. Diagnostics and evaluation errors go
// to the error writer; every other non-null result is printed.
func (s *Session) Eval(src string) []object.Object {
	nodes, diagnostics := parser.ParseProgram(lexer.New(src, inputName).Tokenize())
	if len(diagnostics) > 0 {
		for _, msg := range diagnostics {
			fmt.Fprintln(s.errOut, red("parse error: ")+msg)
		}
		return nil
	}

	results := make([]object.Object, 0, len(nodes))
	for _, node := range nodes {
		result := evaluator.Eval(node, s.scope)
		results = append(results, result)

		switch result.(type) {
		case object.Null:
		case *object.Error:
			fmt.Fprintln(s.errOut, red(result.String()))
		default:
			fmt.Fprintln(s.out, result.String())
		}
	}
	return results
}

func (s *Session) command(cmd string) {
	switch cmd {
	case ":scope":
		for _, name := range s.scope.Names() {
			v, _ := s.scope.Get(name)
			fmt.Fprintf(s.out, "%s = %s\n", name, v)
		}
	case ":reset":
		s.scope = object.NewScope(nil)
		plog.Debugf("session scope reset")
	case ":help":
		fmt.Fprintln(s.out, faint("end a line with \\ to continue it; :scope lists bindings, :reset clears them, exit quits"))
	default:
		fmt.Fprintln(s.errOut, red("unknown command ")+cmd+faint(" (try :help)"))
	}
}
