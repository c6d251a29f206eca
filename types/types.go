package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota

	COMMA
	PERIOD
	SEMICOLON
	COLON
	ASSIGN
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET

	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT
	BANG
	GT
	LT
	BITAND
	BITOR
	BITNOT

	EQ
	NOT_EQ
	AND
	OR
	GE
	LE
	PLUS_ASSIGN
	MINUS_ASSIGN
	ASTERISK_ASSIGN
	SLASH_ASSIGN

	IDENT
	INT
	FLOAT
	STRING

	LET
	RETURN
	FUNC
	IF
	ELSE
	TRUE
	FALSE
	NONE

	// reserved, no grammar yet
	WHILE
	FOR
	BREAK
	CONTINUE
	STRUCT
	ENUM
)

var kindNames = map[TokenKind]string{
	EOF:             "EOF",
	COMMA:           "COMMA",
	PERIOD:          "PERIOD",
	SEMICOLON:       "SEMICOLON",
	COLON:           "COLON",
	ASSIGN:          "ASSIGN",
	LPAREN:          "LPAREN",
	RPAREN:          "RPAREN",
	LBRACE:          "LBRACE",
	RBRACE:          "RBRACE",
	LBRACKET:        "LBRACKET",
	RBRACKET:        "RBRACKET",
	PLUS:            "PLUS",
	MINUS:           "MINUS",
	ASTERISK:        "ASTERISK",
	SLASH:           "SLASH",
	PERCENT:         "PERCENT",
	BANG:            "BANG",
	GT:              "GT",
	LT:              "LT",
	BITAND:          "BITAND",
	BITOR:           "BITOR",
	BITNOT:          "BITNOT",
	EQ:              "EQ",
	NOT_EQ:          "NOT_EQ",
	AND:             "AND",
	OR:              "OR",
	GE:              "GE",
	LE:              "LE",
	PLUS_ASSIGN:     "PLUS_ASSIGN",
	MINUS_ASSIGN:    "MINUS_ASSIGN",
	ASTERISK_ASSIGN: "ASTERISK_ASSIGN",
	SLASH_ASSIGN:    "SLASH_ASSIGN",
	IDENT:           "IDENT",
	INT:             "INT",
	FLOAT:           "FLOAT",
	STRING:          "STRING",
	LET:             "LET",
	RETURN:          "RETURN",
	FUNC:            "FUNC",
	IF:              "IF",
	ELSE:            "ELSE",
	TRUE:            "TRUE",
	FALSE:           "FALSE",
	NONE:            "NONE",
	WHILE:           "WHILE",
	FOR:             "FOR",
	BREAK:           "BREAK",
	CONTINUE:        "CONTINUE",
	STRUCT:          "STRUCT",
	ENUM:            "ENUM",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

var keywords = map[string]TokenKind{
	"let":      LET,
	"return":   RETURN,
	"func":     FUNC,
	"if":       IF,
	"else":     ELSE,
	"true":     TRUE,
	"false":    FALSE,
	"none":     NONE,
	"while":    WHILE,
	"for":      FOR,
	"break":    BREAK,
	"continue": CONTINUE,
	"struct":   STRUCT,
	"enum":     ENUM,
}

// LookupKeyword reports the keyword kind spelled by word.
func LookupKeyword(word string) (TokenKind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}

// Keywords returns a copy of the keyword table.
func Keywords() map[string]TokenKind {
	ret := make(map[string]TokenKind, len(keywords))
	for k, v := range keywords {
		ret[k] = v
	}
	return ret
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type Token struct {
	Kind     TokenKind
	Text     string
	Location Span
}

func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
