package types

type Precedence int

const (
	LOWEST Precedence = iota
	LOGICAL_OR
	LOGICAL_AND
	EQUALS
	COMPARE
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[TokenKind]Precedence{
	OR:       LOGICAL_OR,
	AND:      LOGICAL_AND,
	EQ:       EQUALS,
	NOT_EQ:   EQUALS,
	LT:       COMPARE,
	GT:       COMPARE,
	LE:       COMPARE,
	GE:       COMPARE,
	PLUS:     SUM,
	MINUS:    SUM,
	ASTERISK: PRODUCT,
	SLASH:    PRODUCT,
	PERCENT:  PRODUCT,
	LPAREN:   CALL,
	LBRACKET: CALL,
}

// Precedence is the binding power of the token when it continues an
// expression. Tokens that never do report LOWEST.
func (t Token) Precedence() Precedence {
	return t.Kind.Precedence()
}

func (t TokenKind) Precedence() Precedence {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}
