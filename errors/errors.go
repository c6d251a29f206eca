package errors

import (
	"fmt"

	"github.com/pontaoski/woc/types"
)

// Diagnostic is a parse error tied to a place in the source.
type Diagnostic interface {
	error
	Span() types.Span
}

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedKindGotKind) Span() types.Span { return e.Location }

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("expected next token to be %s, got %s instead (%s)", e.Expected, e.Got, e.Location)
}

type NoPrefixParseFn struct {
	Kind     types.TokenKind
	Location types.Span
}

func (e NoPrefixParseFn) Span() types.Span { return e.Location }

func (e NoPrefixParseFn) Error() string {
	return fmt.Sprintf("no prefix parse function for %s found (%s)", e.Kind, e.Location)
}

// InvalidLiteral is a number token whose text does not convert, such as an
// integer that overflows int64.
type InvalidLiteral struct {
	Literal  string
	Kind     types.TokenKind
	Location types.Span
}

func (e InvalidLiteral) Span() types.Span { return e.Location }

func (e InvalidLiteral) Error() string {
	what := "integer"
	if e.Kind == types.FLOAT {
		what = "float"
	}
	return fmt.Sprintf("could not parse %q as %s (%s)", e.Literal, what, e.Location)
}

type UnterminatedBlock struct {
	Got      types.TokenKind
	Location types.Span
}

func (e UnterminatedBlock) Span() types.Span { return e.Location }

func (e UnterminatedBlock) Error() string {
	return fmt.Sprintf("unterminated block: expected %s, got %s (%s)", types.RBRACE, e.Got, e.Location)
}

// UnexpectedAssignment is an expression followed by "=" or a compound
// assignment. Names are only bound with let.
type UnexpectedAssignment struct {
	Operator types.TokenKind
	Location types.Span
}

func (e UnexpectedAssignment) Span() types.Span { return e.Location }

func (e UnexpectedAssignment) Error() string {
	return fmt.Sprintf("unexpected %s: assignment is not supported, bind with let (%s)", e.Operator, e.Location)
}
