package parser

import (
	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/pos"
	"github.com/jmespath-go/jmespath/pkg/lexer"
)

// Parser is a recursive-descent, precedence-climbing (Pratt) parser for
// JMESPath expressions. It is grounded on a prior parser's cur/peek
// two-token lookahead window and its prefix/infix dispatch split, adapted
// from that language's grammar to the productions of spec §4.3 and rebuilt
// to produce internal/ast nodes instead of a different AST package's ones.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
	errs *parseErrors
}

// New creates a Parser over l, primed with the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errs: &parseErrors{}}
	p.advance()
	p.advance()

	return p
}

// Parse parses a complete expression. Per spec §4.3, the parser returns the
// first parse tree it finds; on failure it returns the first Syntax error
// encountered, positioned at the offending lexeme.
func (p *Parser) Parse() (ast.Node, error) {
	if p.errs.hasErrors() {
		return nil, p.errs.first()
	}

	expr := p.parseExpression(precedenceLowest)
	if p.errs.hasErrors() {
		return nil, p.errs.first()
	}

	if expr == nil {
		return nil, jmerr.SyntaxAt("empty expression", p.curPos())
	}

	if !p.peekIs(lexer.EOF) {
		p.errs.add(p.peek.Line, p.peek.Column, "unexpected trailing token %s", p.peek.Kind)
		return nil, p.errs.first()
	}

	return expr, nil
}

func (p *Parser) advance() {
	p.cur = p.peek

	tok, err := p.l.NextToken()
	if err != nil {
		if je, ok := err.(jmerr.Error); ok {
			p.errs.addError(je)
		} else {
			p.errs.add(p.cur.Line, p.cur.Column, "%v", err)
		}

		p.peek = lexer.Token{Kind: lexer.EOF}

		return
	}

	p.peek = tok
}

func (p *Parser) curPos() pos.Position  { return pos.New(p.cur.Line, p.cur.Column) }
func (p *Parser) peekPos() pos.Position { return pos.New(p.peek.Line, p.peek.Column) }

func (p *Parser) curIs(k lexer.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k lexer.Kind) bool { return p.peek.Kind == k }

// expectPeek verifies the next token matches k and consumes it, leaving cur
// on the matched token. Records a Syntax error and returns false otherwise.
func (p *Parser) expectPeek(k lexer.Kind) bool {
	if p.peekIs(k) {
		p.advance()
		return true
	}

	p.errs.add(p.peek.Line, p.peek.Column, "expected %s, got %s", k, p.peek.Kind)

	return false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errs.add(p.cur.Line, p.cur.Column, format, args...)
}

// infixTokens is the set of token kinds with a dedicated led handler in
// parseInfixExpression. precedenceMap additionally documents Not and
// Assign for completeness (spec §4.3 lists them in the precedence chain)
// even though neither ever reaches parseInfixExpression: Not is unary-only
// and Assign only appears inside a let-binding, parsed by parseLet
// directly rather than through the operator loop.
var infixTokens = map[lexer.Kind]bool{
	lexer.Dot:                true,
	lexer.Pipe:               true,
	lexer.Plus:               true,
	lexer.Minus:              true,
	lexer.Multiply:           true,
	lexer.Divide:             true,
	lexer.Mod:                true,
	lexer.Div:                true,
	lexer.Equal:              true,
	lexer.NotEqual:           true,
	lexer.LessThan:           true,
	lexer.LessThanOrEqual:    true,
	lexer.GreaterThan:        true,
	lexer.GreaterThanOrEqual: true,
	lexer.And:                true,
	lexer.Or:                 true,
	lexer.LBracket:           true,
	lexer.Filter:             true,
	lexer.Flatten:            true,
	lexer.Star:               true,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedenceMap[p.peek.Kind]; ok {
		return prec
	}

	return precedenceLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedenceMap[p.cur.Kind]; ok {
		return prec
	}

	return precedenceLowest
}

// parseExpression is the Pratt loop: parse a prefix ("nud") expression, then
// keep absorbing infix ("led") operators whose precedence exceeds floor.
func (p *Parser) parseExpression(floor int) ast.Node {
	left := p.parsePrefixExpression()
	if left == nil {
		return nil
	}

	for !p.peekIs(lexer.EOF) && floor < p.peekPrecedence() {
		if !infixTokens[p.peek.Kind] {
			break
		}

		p.advance()

		left = p.parseInfixExpression(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// attach implements spec §4.3's projection/let-expression folding rules
// uniformly for every kind of continuation (sub-expression, index, slice,
// wildcard, filter, flatten): if left is a Projection or
// HashWildcardProjection whose Right slot is still empty, the continuation
// becomes that Right slot (with no Left of its own, since it applies to the
// already-projected element); if Right is already occupied, the fold
// recurses into it so the continuation lands at the end of the chain. If
// left is a Let, the continuation is pushed into the let-body instead. In
// every other case makeNode is handed left directly, becoming that node's
// own Left/LHS.
func attach(left ast.Node, makeNode func(ast.Node) ast.Node, at pos.Position) ast.Node {
	switch l := left.(type) {
	case *ast.Projection:
		if l.Right == nil {
			l.Right = makeNode(nil)
		} else {
			l.Right = attach(l.Right, makeNode, at)
		}

		return l
	case *ast.HashWildcardProjection:
		if l.Right == nil {
			l.Right = makeNode(nil)
		} else {
			l.Right = attach(l.Right, makeNode, at)
		}

		return l
	case *ast.Let:
		l.Body = attach(l.Body, makeNode, at)
		return l
	default:
		return makeNode(left)
	}
}
