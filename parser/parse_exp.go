package parser

import (
	"strconv"
	"strings"

	"github.com/pontaoski/woc/ast"
	"github.com/pontaoski/woc/errors"
	"github.com/pontaoski/woc/types"
)

func (p *Parser) registerPrefixes() {
	p.prefixFns = map[types.TokenKind]prefixParseFn{
		types.IDENT:    p.parseIdentifier,
		types.INT:      p.parseInteger,
		types.FLOAT:    p.parseFloat,
		types.STRING:   p.parseString,
		types.TRUE:     p.parseBoolean,
		types.FALSE:    p.parseBoolean,
		types.NONE:     p.parseNone,
		types.BANG:     p.parsePrefix,
		types.MINUS:    p.parsePrefix,
		types.LPAREN:   p.parseGrouped,
		types.LBRACKET: p.parseArray,
		types.IF:       p.parseIf,
		types.FUNC:     p.parseFunctionLiteral,
	}
}

func (p *Parser) registerInfixes() {
	p.infixFns = map[types.TokenKind]infixParseFn{
		types.LPAREN:   p.parseCall,
		types.LBRACKET: p.parseIndex,
	}
	for _, kind := range []types.TokenKind{
		types.OR, types.AND,
		types.EQ, types.NOT_EQ,
		types.LT, types.GT, types.LE, types.GE,
		types.PLUS, types.MINUS,
		types.ASTERISK, types.SLASH, types.PERCENT,
	} {
		p.infixFns[kind] = p.parseInfix
	}
}

// parseExpression is precedence climbing: it keeps folding infix operators
// into the left operand while they bind tighter than min.
func (p *Parser) parseExpression(min types.Precedence) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		p.fail(errors.NoPrefixParseFn{Kind: p.cur.Kind, Location: p.cur.Location})
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekIs(types.SEMICOLON) && min < p.peek.Precedence() {
		infix, ok := p.infixFns[p.peek.Kind]
		if !ok || p.startsNewLine() {
			return left
		}
		p.next()

		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// startsNewLine reports whether peek is a call or index bracket on a later
// line than cur. Such a bracket begins the next statement instead.
func (p *Parser) startsNewLine() bool {
	if !p.peekIs(types.LPAREN) && !p.peekIs(types.LBRACKET) {
		return false
	}
	return p.peek.Location.From.Line > p.cur.Location.To.Line
}

func (p *Parser) parseIdentifier() ast.Expression {
	return ast.Identifier(p.cur.Text)
}

func (p *Parser) parseInteger() ast.Expression {
	lit := strings.ReplaceAll(p.cur.Text, "_", "")
	parsed, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		p.fail(errors.InvalidLiteral{Literal: p.cur.Text, Kind: p.cur.Kind, Location: p.cur.Location})
		return nil
	}
	return ast.Integer(parsed)
}

func (p *Parser) parseFloat() ast.Expression {
	parsed, err := strconv.ParseFloat(p.cur.Text, 64)
	if err != nil {
		p.fail(errors.InvalidLiteral{Literal: p.cur.Text, Kind: p.cur.Kind, Location: p.cur.Location})
		return nil
	}
	return ast.Float(parsed)
}

func (p *Parser) parseString() ast.Expression {
	return ast.String(ast.Unquote(p.cur.Text))
}

func (p *Parser) parseBoolean() ast.Expression {
	return ast.Boolean(p.curIs(types.TRUE))
}

func (p *Parser) parseNone() ast.Expression {
	return ast.None{}
}

func (p *Parser) parsePrefix() ast.Expression {
	op := p.cur.Text
	p.next()

	right := p.parseExpression(types.PREFIX)
	if right == nil {
		return nil
	}
	return ast.Prefix{Operator: op, Right: right}
}

func (p *Parser) parseGrouped() ast.Expression {
	p.next()

	expr := p.parseExpression(types.LOWEST)
	if expr == nil {
		return nil
	}
	if !p.lexExpecting(types.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseArray() ast.Expression {
	elems, ok := p.parseExpressionList(types.RBRACKET)
	if !ok {
		return nil
	}
	return ast.Array(elems)
}

func (p *Parser) parseIf() ast.Expression {
	if !p.lexExpecting(types.LPAREN) {
		return nil
	}
	p.next()

	cond := p.parseExpression(types.LOWEST)
	if cond == nil {
		return nil
	}
	if !p.lexExpecting(types.RPAREN) {
		return nil
	}
	if !p.lexExpecting(types.LBRACE) {
		return nil
	}
	consequence, ok := p.parseBlock()
	if !ok {
		return nil
	}

	expr := ast.If{Condition: cond, Consequence: consequence}
	if !p.peekIs(types.ELSE) {
		return expr
	}
	p.next()

	if p.peekIs(types.IF) {
		p.next()
		alt := p.parseIf()
		if alt == nil {
			return nil
		}
		expr.Alternative = alt
		return expr
	}

	if !p.lexExpecting(types.LBRACE) {
		return nil
	}
	alt, ok := p.parseBlock()
	if !ok {
		return nil
	}
	expr.Alternative = alt
	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	params, body, ok := p.parseSignatureAndBody()
	if !ok {
		return nil
	}
	return ast.FunctionLiteral{Parameters: params, Body: body}
}

func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	op := p.cur.Text
	prec := p.cur.Precedence()
	p.next()

	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return ast.Infix{Left: left, Operator: op, Right: right}
}

func (p *Parser) parseCall(function ast.Expression) ast.Expression {
	args, ok := p.parseExpressionList(types.RPAREN)
	if !ok {
		return nil
	}
	return ast.Call{Function: function, Arguments: args}
}

func (p *Parser) parseIndex(left ast.Expression) ast.Expression {
	p.next()

	index := p.parseExpression(types.LOWEST)
	if index == nil {
		return nil
	}
	if !p.lexExpecting(types.RBRACKET) {
		return nil
	}
	return ast.Index{Left: left, Index: index}
}

// parseExpressionList expects cur on the opening delimiter and leaves it on end.
func (p *Parser) parseExpressionList(end types.TokenKind) ([]ast.Expression, bool) {
	var list []ast.Expression

	if p.peekIs(end) {
		p.next()
		return list, true
	}
	p.next()

	expr := p.parseExpression(types.LOWEST)
	if expr == nil {
		return nil, false
	}
	list = append(list, expr)

	for p.peekIs(types.COMMA) {
		p.next()
		p.next()

		expr := p.parseExpression(types.LOWEST)
		if expr == nil {
			return nil, false
		}
		list = append(list, expr)
	}

	if !p.lexExpecting(end) {
		return nil, false
	}
	return list, true
}
