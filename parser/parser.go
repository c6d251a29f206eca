// Package parser turns a token stream into AST nodes.
//
// Parsing never stops at the first mistake. Each failed statement records a
// typed diagnostic, the parser skips to the next statement boundary and
// carries on, so one run reports every independent error.
package parser

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/woc/ast"
	"github.com/pontaoski/woc/errors"
	"github.com/pontaoski/woc/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/woc", "parser")

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	tokens []types.Token
	pos    int
	cur    types.Token
	peek   types.Token
	errors []error

	prefixFns map[types.TokenKind]prefixParseFn
	infixFns  map[types.TokenKind]infixParseFn
}

// New prepares a parser over tokens. A stream that does not end in EOF gets
// one appended.
func New(tokens []types.Token) *Parser {
	if len(tokens) == 0 || !tokens[len(tokens)-1].IsEOF() {
		var loc types.Span
		if len(tokens) > 0 {
			end := tokens[len(tokens)-1].Location.To
			end.Column++
			loc = types.SingleCharSpan(end)
		}
		tokens = append(tokens[:len(tokens):len(tokens)], types.Token{Kind: types.EOF, Location: loc})
	}

	p := &Parser{tokens: tokens}
	p.registerPrefixes()
	p.registerInfixes()

	p.cur = p.at(0)
	p.peek = p.at(1)
	return p
}

// ParseProgram parses a whole token stream and reports the diagnostics as
// plain messages.
func ParseProgram(tokens []types.Token) ([]ast.Node, []string) {
	p := New(tokens)
	nodes := p.Parse()

	var msgs []string
	for _, err := range p.Errors() {
		msgs = append(msgs, err.Error())
	}
	return nodes, msgs
}

func (p *Parser) Errors() []error {
	return p.errors
}

// Parse returns one node per top-level statement that parsed cleanly.
func (p *Parser) Parse() []ast.Node {
	var nodes []ast.Node

	for !p.curIs(types.EOF) {
		if p.curIs(types.SEMICOLON) {
			p.next()
			continue
		}

		node := p.parseStatement()
		if node == nil {
			p.synchronize()
			// a stray closing brace has no block to end
			if p.curIs(types.RBRACE) {
				p.next()
			}
			continue
		}

		nodes = append(nodes, node)
		p.next()
	}

	return nodes
}

func (p *Parser) at(i int) types.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) next() {
	if p.cur.IsEOF() {
		return
	}
	p.pos++
	p.cur = p.at(p.pos)
	p.peek = p.at(p.pos + 1)
}

func (p *Parser) curIs(kind types.TokenKind) bool {
	return p.cur.Kind == kind
}

func (p *Parser) peekIs(kind types.TokenKind) bool {
	return p.peek.Kind == kind
}

// lexExpecting advances onto the peek token if it has the given kind and
// records a diagnostic otherwise.
func (p *Parser) lexExpecting(kind types.TokenKind) bool {
	if p.peekIs(kind) {
		p.next()
		return true
	}
	p.fail(errors.ExpectedKindGotKind{
		Expected: kind,
		Got:      p.peek.Kind,
		Location: p.peek.Location,
	})
	return false
}

func (p *Parser) fail(err error) {
	plog.Debugf("diagnostic: %v", err)
	p.errors = append(p.errors, err)
}

// synchronize skips the remains of a failed statement. It stops past the
// next semicolon, or on a closing brace or EOF without consuming them.
func (p *Parser) synchronize() {
	for !p.curIs(types.EOF) && !p.curIs(types.RBRACE) {
		if p.curIs(types.SEMICOLON) {
			p.next()
			return
		}
		p.next()
	}
}

// Statement parsers start with cur on the first token of the statement and
// leave cur on its last token. A nil result means a diagnostic was recorded.
func (p *Parser) parseStatement() ast.Node {
	switch p.cur.Kind {
	case types.LET:
		return p.parseLet()
	case types.RETURN:
		return p.parseReturn()
	case types.LBRACE:
		block, ok := p.parseBlock()
		if !ok {
			return nil
		}
		return block
	case types.FUNC:
		if p.peekIs(types.IDENT) {
			return p.parseFunction()
		}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseLet() ast.Node {
	if !p.lexExpecting(types.IDENT) {
		return nil
	}
	name := ast.Identifier(p.cur.Text)

	if !p.lexExpecting(types.ASSIGN) {
		return nil
	}
	p.next()

	value := p.parseExpression(types.LOWEST)
	if value == nil {
		return nil
	}
	if !p.lexExpecting(types.SEMICOLON) {
		return nil
	}

	return ast.Let{Name: name, Value: value}
}

func (p *Parser) parseReturn() ast.Node {
	if p.peekIs(types.SEMICOLON) {
		p.next()
		return ast.Return{}
	}
	p.next()

	value := p.parseExpression(types.LOWEST)
	if value == nil {
		return nil
	}
	if !p.lexExpecting(types.SEMICOLON) {
		return nil
	}

	return ast.Return{Value: value}
}

var assignKinds = map[types.TokenKind]bool{
	types.ASSIGN:          true,
	types.PLUS_ASSIGN:     true,
	types.MINUS_ASSIGN:    true,
	types.ASTERISK_ASSIGN: true,
	types.SLASH_ASSIGN:    true,
}

func (p *Parser) parseExpressionStatement() ast.Node {
	var expr ast.Expression
	if p.curIs(types.IF) {
		// an if statement ends at its closing brace
		expr = p.parseIf()
	} else {
		expr = p.parseExpression(types.LOWEST)
	}
	if expr == nil {
		return nil
	}

	if assignKinds[p.peek.Kind] {
		p.fail(errors.UnexpectedAssignment{Operator: p.peek.Kind, Location: p.peek.Location})
		return nil
	}
	if p.peekIs(types.SEMICOLON) {
		p.next()
	}
	return expr
}

// parseBlock expects cur on the opening brace and leaves it on the closing one.
func (p *Parser) parseBlock() (ast.Block, bool) {
	var block ast.Block
	p.next()

	for !p.curIs(types.RBRACE) {
		if p.curIs(types.EOF) {
			p.fail(errors.UnterminatedBlock{Got: p.cur.Kind, Location: p.cur.Location})
			return nil, false
		}
		if p.curIs(types.SEMICOLON) {
			p.next()
			continue
		}

		node := p.parseStatement()
		if node == nil {
			p.synchronize()
			continue
		}

		block = append(block, node)
		p.next()
	}

	return block, true
}

func (p *Parser) parseFunction() ast.Node {
	p.next()
	name := ast.Identifier(p.cur.Text)

	params, body, ok := p.parseSignatureAndBody()
	if !ok {
		return nil
	}

	return ast.Function{Name: name, Parameters: params, Body: body}
}

// parseSignatureAndBody expects cur on the token before the parameter list.
func (p *Parser) parseSignatureAndBody() ([]ast.Identifier, ast.Block, bool) {
	if !p.lexExpecting(types.LPAREN) {
		return nil, nil, false
	}
	params, ok := p.parseParameters()
	if !ok {
		return nil, nil, false
	}
	if !p.lexExpecting(types.LBRACE) {
		return nil, nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, nil, false
	}
	return params, body, true
}

func (p *Parser) parseParameters() ([]ast.Identifier, bool) {
	var params []ast.Identifier

	if p.peekIs(types.RPAREN) {
		p.next()
		return params, true
	}

	if !p.lexExpecting(types.IDENT) {
		return nil, false
	}
	params = append(params, ast.Identifier(p.cur.Text))

	for p.peekIs(types.COMMA) {
		p.next()
		if !p.lexExpecting(types.IDENT) {
			return nil, false
		}
		params = append(params, ast.Identifier(p.cur.Text))
	}

	if !p.lexExpecting(types.RPAREN) {
		return nil, false
	}
	return params, true
}
