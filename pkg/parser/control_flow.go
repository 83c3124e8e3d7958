package parser

import (
	"encoding/json"

	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/pkg/lexer"
)

// parseLet parses `let $v1 = e1, $v2 = e2, ... in body`. Grounded on a prior
// parser's parseLet (advance-past-keyword, accumulate-bindings-until-
// terminator, then parse-the-body shape), with that language's `;` binding
// terminator and bare `in` replaced by JMESPath's comma-separated binding
// list and `in` keyword.
func (p *Parser) parseLet() ast.Node {
	at := p.curPos()

	p.advance() // consume 'let', cur is now the first '$var'

	var bindings []ast.LetBinding

	for {
		if !p.curIs(lexer.VariableRef) {
			p.errorf("expected variable reference in let binding, got %s", p.cur.Kind)
			return nil
		}

		name := p.cur.Literal

		if !p.expectPeek(lexer.Assign) {
			return nil
		}

		p.advance() // cur is now the binding's value expression

		value := p.parseExpression(precedenceAssign)
		if value == nil {
			return nil
		}

		bindings = append(bindings, ast.LetBinding{Var: name, Value: value})

		if p.peekIs(lexer.Comma) {
			p.advance() // cur on comma
			p.advance() // cur on next '$var'

			continue
		}

		break
	}

	if !p.expectPeek(lexer.In) {
		return nil
	}

	p.advance() // cur is now the body's first token

	body := p.parseExpression(precedenceLowest)
	if body == nil {
		return nil
	}

	return &ast.Let{Base: ast.At(at), Bindings: bindings, Body: body}
}

// parseMultiSelectHash parses `{key: expr, ...}` as a fresh primary. It is
// never reached as an infix continuation: LBrace has no entry in
// infixTokens, so a multi-select-hash chained after a preceding expression
// (e.g. `foo.{a: x}`) always arrives via the dot operator's own RHS parse
// rather than through this package's postfix/infix machinery.
func (p *Parser) parseMultiSelectHash() ast.Node {
	at := p.curPos()

	p.advance() // consume '{', cur is now the first key or '}'

	var pairs []ast.HashPair

	if !p.curIs(lexer.RBrace) {
		for {
			pair, ok := p.parseHashPair()
			if !ok {
				return nil
			}

			pairs = append(pairs, pair)

			if p.peekIs(lexer.Comma) {
				p.advance()
				p.advance()

				continue
			}

			break
		}

		if !p.expectPeek(lexer.RBrace) {
			return nil
		}
	}

	return &ast.MultiSelectHash{Base: ast.At(at), Pairs: pairs}
}

// parseHashPair parses one `key: expr` pair with cur on the key token.
func (p *Parser) parseHashPair() (ast.HashPair, bool) {
	var key string

	quoted := p.curIs(lexer.QuotedString)

	switch p.cur.Kind {
	case lexer.UnquotedString:
		key = p.cur.Literal
	case lexer.QuotedString:
		if err := json.Unmarshal([]byte(p.cur.Literal), &key); err != nil {
			p.errorf("invalid quoted key %s", p.cur.Literal)
			return ast.HashPair{}, false
		}
	default:
		p.errorf("expected hash key, got %s", p.cur.Kind)
		return ast.HashPair{}, false
	}

	if !p.expectPeek(lexer.Colon) {
		return ast.HashPair{}, false
	}

	p.advance() // cur is now the value expression

	value := p.parseExpression(precedenceLowest)
	if value == nil {
		return ast.HashPair{}, false
	}

	return ast.HashPair{Key: key, Quoted: quoted, Value: value}, true
}
