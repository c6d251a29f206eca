package lexer

import (
	"github.com/pontaoski/woc/types"
)

type state int

const (
	startState state = iota
	identState
	keywordState
	integerState
	floatState
	stringState
	stringEscapeState
	operatorState
)

func (s state) String() string {
	return [...]string{
		"start",
		"ident",
		"keyword",
		"integer",
		"float",
		"string",
		"string-escape",
		"operator",
	}[s]
}

// kwNode is one step of a keyword spelled so far. Walking the trie one
// rune at a time is what lets the lexer tell "let" from "lets" or "le"
// without backtracking.
type kwNode struct {
	next     map[rune]*kwNode
	kind     types.TokenKind
	terminal bool
}

func buildKeywordTrie(words map[string]types.TokenKind) *kwNode {
	root := &kwNode{next: map[rune]*kwNode{}}
	for word, kind := range words {
		n := root
		for _, r := range word {
			child, ok := n.next[r]
			if !ok {
				child = &kwNode{next: map[rune]*kwNode{}}
				n.next[r] = child
			}
			n = child
		}
		n.kind = kind
		n.terminal = true
	}
	return root
}

var keywordTrie = buildKeywordTrie(types.Keywords())

// symbols that are always a token on their own
var singleSymbols = map[rune]types.TokenKind{
	',': types.COMMA,
	'.': types.PERIOD,
	';': types.SEMICOLON,
	':': types.COLON,
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
	'[': types.LBRACKET,
	']': types.RBRACKET,
	'%': types.PERCENT,
	'~': types.BITNOT,
}

// symbols that may be the first half of a two-character operator
var operatorSymbols = map[rune]types.TokenKind{
	'=': types.ASSIGN,
	'!': types.BANG,
	'<': types.LT,
	'>': types.GT,
	'&': types.BITAND,
	'|': types.BITOR,
	'+': types.PLUS,
	'-': types.MINUS,
	'*': types.ASTERISK,
	'/': types.SLASH,
}

var combined = map[rune]map[rune]types.TokenKind{
	'=': {'=': types.EQ},
	'!': {'=': types.NOT_EQ},
	'<': {'=': types.LE},
	'>': {'=': types.GE},
	'&': {'&': types.AND},
	'|': {'|': types.OR},
	'+': {'=': types.PLUS_ASSIGN},
	'-': {'=': types.MINUS_ASSIGN},
	'*': {'=': types.ASTERISK_ASSIGN},
	'/': {'=': types.SLASH_ASSIGN},
}
