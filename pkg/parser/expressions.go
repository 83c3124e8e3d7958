package parser

import (
	"strconv"

	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/pkg/lexer"
)

// parsePrefixExpression is the "nud" dispatch: every expression starts with
// one of these. Grounded on a prior parser's parsePrefixExpression switch,
// retargeted to spec §4.4's leaf and unary node set.
func (p *Parser) parsePrefixExpression() ast.Node {
	switch p.cur.Kind {
	case lexer.Current:
		return &ast.Current{Base: ast.At(p.curPos())}
	case lexer.Root:
		return &ast.Root{Base: ast.At(p.curPos())}
	case lexer.VariableRef:
		return &ast.VariableRef{Base: ast.At(p.curPos()), Name: p.cur.Literal}
	case lexer.UnquotedString:
		return p.parseIdentifierOrCall()
	case lexer.QuotedString:
		return &ast.QuotedIdentifier{Base: ast.At(p.curPos()), Raw: p.cur.Literal}
	case lexer.RawString:
		return &ast.RawStringLiteral{Base: ast.At(p.curPos()), Value: p.cur.Literal}
	case lexer.JSONValue:
		return &ast.JSONLiteral{Base: ast.At(p.curPos()), Raw: p.cur.Literal}
	case lexer.Number:
		return p.parseNumberLiteral()
	case lexer.LParen:
		return p.parseParen()
	case lexer.Let:
		return p.parseLet()
	case lexer.ExpRef:
		return p.parseExpressionRef()
	case lexer.Not:
		return p.parseNot()
	case lexer.Plus, lexer.Minus:
		return p.parseUnaryArithmetic()
	case lexer.LBracket:
		return p.parsePrimaryBracket()
	case lexer.Filter:
		return p.parseFilter(nil)
	case lexer.Flatten:
		return p.parseFlatten(nil)
	case lexer.Star:
		return p.parseHashWildcard(nil)
	case lexer.LBrace:
		return p.parseMultiSelectHash()
	default:
		p.errorf("no prefix parse function for %s", p.cur.Kind)
		return nil
	}
}

// parseInfixExpression is the "led" dispatch, invoked with cur positioned on
// the operator token.
func (p *Parser) parseInfixExpression(left ast.Node) ast.Node {
	switch p.cur.Kind {
	case lexer.Dot:
		return p.parseDot(left)
	case lexer.Pipe:
		return p.parsePipe(left)
	case lexer.Plus, lexer.Minus, lexer.Multiply, lexer.Divide, lexer.Mod, lexer.Div:
		return p.parseArithmetic(left)
	case lexer.Equal, lexer.NotEqual, lexer.LessThan, lexer.LessThanOrEqual,
		lexer.GreaterThan, lexer.GreaterThanOrEqual:
		return p.parseComparator(left)
	case lexer.And:
		return p.parseLogical(left, ast.LogicalAnd)
	case lexer.Or:
		return p.parseLogical(left, ast.LogicalOr)
	case lexer.LBracket:
		return p.parseInfixBracket(left)
	case lexer.Filter:
		return p.parseFilter(left)
	case lexer.Flatten:
		return p.parseFlatten(left)
	case lexer.Star:
		return p.parseHashWildcard(left)
	default:
		p.errorf("no infix parse function for %s", p.cur.Kind)
		return nil
	}
}

func (p *Parser) parseNumberLiteral() ast.Node {
	n, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.errorf("could not parse %q as a number", p.cur.Literal)
		return nil
	}

	return &ast.NumberLiteral{Base: ast.At(p.curPos()), Value: n}
}

func (p *Parser) parseParen() ast.Node {
	at := p.curPos()

	p.advance() // consume '('

	inner := p.parseExpression(precedenceLowest)
	if inner == nil {
		return nil
	}

	if !p.expectPeek(lexer.RParen) {
		return nil
	}

	return &ast.Paren{Base: ast.At(at), Inner: inner}
}

func (p *Parser) parseIdentifierOrCall() ast.Node {
	at := p.curPos()
	name := p.cur.Literal

	if !p.peekIs(lexer.LParen) {
		return &ast.Identifier{Base: ast.At(at), Name: name}
	}

	p.advance() // consume identifier, cur becomes '('
	p.advance() // cur becomes first arg token, or ')'

	var args []ast.Node

	if !p.curIs(lexer.RParen) {
		for {
			arg := p.parseExpression(precedenceLowest)
			if arg == nil {
				return nil
			}

			args = append(args, arg)

			if p.peekIs(lexer.Comma) {
				p.advance()
				p.advance()

				continue
			}

			break
		}

		if !p.expectPeek(lexer.RParen) {
			return nil
		}
	}

	return &ast.FunctionCall{Base: ast.At(at), Name: name, Args: args}
}

func (p *Parser) parseExpressionRef() ast.Node {
	at := p.curPos()

	p.advance() // consume '&'

	inner := p.parseExpression(precedenceLowest)
	if inner == nil {
		return nil
	}

	return &ast.ExpressionRef{Base: ast.At(at), Inner: inner}
}

func (p *Parser) parseNot() ast.Node {
	at := p.curPos()

	p.advance() // consume '!'

	rhs := p.parseExpression(precedenceNot)
	if rhs == nil {
		return nil
	}

	return &ast.Logical{Base: ast.At(at), Op: ast.LogicalNot, RHS: rhs}
}

func (p *Parser) parseUnaryArithmetic() ast.Node {
	at := p.curPos()

	op := ast.ArithAdd
	if p.cur.Kind == lexer.Minus {
		op = ast.ArithSub
	}

	p.advance() // consume '+'/'-'

	rhs := p.parseExpression(precedenceSum)
	if rhs == nil {
		return nil
	}

	return &ast.Arithmetic{Base: ast.At(at), Op: op, RHS: rhs}
}

func (p *Parser) parseDot(left ast.Node) ast.Node {
	at := p.curPos()

	p.advance() // consume '.'

	if p.curIs(lexer.Current) {
		p.errorf("'@' cannot follow '.'")
		return nil
	}

	rhs := p.parseExpression(precedenceDot)
	if rhs == nil {
		return nil
	}

	return attach(left, func(l ast.Node) ast.Node {
		if l == nil {
			return rhs
		}

		// A projection on the right of the dot projects over the whole
		// dotted path, so the path becomes (part of) the projection's Left.
		var slot *ast.Node
		switch r := rhs.(type) {
		case *ast.Projection:
			slot = &r.Left
		case *ast.HashWildcardProjection:
			slot = &r.Left
		default:
			return &ast.SubExpression{Base: ast.At(at), LHS: l, RHS: rhs}
		}

		if *slot != nil {
			l = &ast.SubExpression{Base: ast.At(at), LHS: l, RHS: *slot}
		}
		*slot = l

		return rhs
	}, at)
}

func (p *Parser) parsePipe(left ast.Node) ast.Node {
	at := p.curPos()

	p.advance() // consume '|'

	rhs := p.parseExpression(precedencePipe)
	if rhs == nil {
		return nil
	}

	return &ast.Pipe{Base: ast.At(at), LHS: left, RHS: rhs}
}

var arithOps = map[lexer.Kind]ast.ArithOp{
	lexer.Plus:     ast.ArithAdd,
	lexer.Minus:    ast.ArithSub,
	lexer.Multiply: ast.ArithMul,
	lexer.Divide:   ast.ArithDiv,
	lexer.Mod:      ast.ArithModulo,
	lexer.Div:      ast.ArithFloorDiv,
}

func (p *Parser) parseArithmetic(left ast.Node) ast.Node {
	at := p.curPos()
	op := arithOps[p.cur.Kind]
	precedence := p.curPrecedence()

	p.advance() // consume the operator

	rhs := p.parseExpression(precedence)
	if rhs == nil {
		return nil
	}

	return &ast.Arithmetic{Base: ast.At(at), LHS: left, Op: op, RHS: rhs}
}

var compareOps = map[lexer.Kind]ast.CompareOp{
	lexer.Equal:              ast.CompareEqual,
	lexer.NotEqual:           ast.CompareNotEqual,
	lexer.LessThan:           ast.CompareLessThan,
	lexer.LessThanOrEqual:    ast.CompareLessThanOrEqual,
	lexer.GreaterThan:        ast.CompareGreaterThan,
	lexer.GreaterThanOrEqual: ast.CompareGreaterThanOrEqual,
}

func (p *Parser) parseComparator(left ast.Node) ast.Node {
	at := p.curPos()
	op := compareOps[p.cur.Kind]
	precedence := p.curPrecedence()

	p.advance()

	rhs := p.parseExpression(precedence)
	if rhs == nil {
		return nil
	}

	return &ast.Comparator{Base: ast.At(at), LHS: left, Op: op, RHS: rhs}
}

func (p *Parser) parseLogical(left ast.Node, op ast.LogicalOp) ast.Node {
	at := p.curPos()
	precedence := p.curPrecedence()

	p.advance()

	rhs := p.parseExpression(precedence)
	if rhs == nil {
		return nil
	}

	return &ast.Logical{Base: ast.At(at), LHS: left, Op: op, RHS: rhs}
}
