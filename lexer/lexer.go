package lexer

import (
	"unicode"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/woc/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/woc", "lexer")

// Lexer is a finite-state machine over the runes of one source text. It
// runs to completion in Tokenize; there is no pull interface.
type Lexer struct {
	src      []rune
	filename string

	state state
	kw    *kwNode
	op    rune
	buf   []rune

	pos   types.Position
	start types.Position
	last  types.Position

	tokens []types.Token
}

func New(source string, filename string) *Lexer {
	return &Lexer{
		src:      []rune(source),
		filename: filename,
		pos:      types.Position{Line: 1, Column: 0, Filename: filename},
	}
}

// Tokenize classifies every rune of source. It cannot fail: input it does
// not understand becomes identifiers, and the result always ends with
// exactly one EOF token.
func Tokenize(source string) []types.Token {
	return New(source, "").Tokenize()
}

func (l *Lexer) Tokenize() []types.Token {
	if l.tokens != nil {
		return l.tokens
	}
	l.tokens = []types.Token{}

	for _, r := range l.src {
		l.pos.Column++
		l.step(r)
		if r == '\n' {
			l.newline()
		}
	}
	l.finish()

	eof := l.pos
	eof.Column++
	l.tokens = append(l.tokens, types.Token{
		Kind:     types.EOF,
		Location: types.SingleCharSpan(eof),
	})

	plog.Tracef("%s: %d runes -> %d tokens", l.pos.Filename, len(l.src), len(l.tokens))
	return l.tokens
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

func (l *Lexer) step(r rune) {
	switch l.state {
	case stringState:
		switch r {
		case '\\':
			l.push(r)
			l.state = stringEscapeState
		case '"':
			l.last = l.pos
			l.emit(types.STRING)
		default:
			l.push(r)
		}
		return
	case stringEscapeState:
		l.push(r)
		l.state = stringState
		return
	}

	if unicode.IsSpace(r) {
		l.finish()
		return
	}

	switch l.state {
	case startState:
		l.begin(r)

	case identState:
		if identChar(r) {
			l.push(r)
			return
		}
		l.finish()
		l.begin(r)

	case keywordState:
		if next, ok := l.kw.next[r]; ok {
			l.kw = next
			l.push(r)
			return
		}
		if identChar(r) {
			l.state = identState
			l.push(r)
			return
		}
		l.finish()
		l.begin(r)

	case integerState:
		switch {
		case isDigit(r) || r == '_':
			l.push(r)
		case r == '.':
			l.push(r)
			l.state = floatState
		case unicode.IsLetter(r):
			l.push(r)
			l.state = identState
		default:
			l.finish()
			l.begin(r)
		}

	case floatState:
		switch {
		case isDigit(r):
			l.push(r)
		case unicode.IsLetter(r):
			l.push(r)
			l.state = identState
		default:
			l.finish()
			l.begin(r)
		}

	case operatorState:
		if kind, ok := combined[l.op][r]; ok {
			l.push(r)
			l.emit(kind)
			return
		}
		l.finish()
		l.begin(r)
	}
}

// begin starts a new token at r from the start state.
func (l *Lexer) begin(r rune) {
	l.buf = l.buf[:0]
	l.start = l.pos

	if r == '"' {
		l.last = l.pos
		l.state = stringState
		return
	}

	l.push(r)

	if kind, ok := singleSymbols[r]; ok {
		l.emit(kind)
		return
	}
	if _, ok := operatorSymbols[r]; ok {
		l.op = r
		l.state = operatorState
		return
	}

	switch {
	case isDigit(r):
		l.state = integerState
	default:
		if next, ok := keywordTrie.next[r]; ok {
			l.kw = next
			l.state = keywordState
			return
		}
		l.state = identState
	}
}

// finish closes whatever token is pending, classifying it by the state
// the machine stopped in.
func (l *Lexer) finish() {
	switch l.state {
	case startState:
		return
	case identState:
		l.emit(types.IDENT)
	case keywordState:
		if l.kw.terminal {
			l.emit(l.kw.kind)
		} else {
			l.emit(types.IDENT)
		}
	case integerState:
		l.emit(types.INT)
	case floatState:
		l.emit(types.FLOAT)
	case stringState, stringEscapeState:
		plog.Debugf("input ended in %s state, string opened at %s", l.state, l.start)
		l.emit(types.STRING)
	case operatorState:
		l.emit(operatorSymbols[l.op])
	}
}

func (l *Lexer) push(r rune) {
	l.buf = append(l.buf, r)
	l.last = l.pos
}

func (l *Lexer) emit(kind types.TokenKind) {
	l.tokens = append(l.tokens, types.Token{
		Kind:     kind,
		Text:     string(l.buf),
		Location: types.Span{From: l.start, To: l.last},
	})
	l.buf = l.buf[:0]
	l.kw = nil
	l.state = startState
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func identChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
