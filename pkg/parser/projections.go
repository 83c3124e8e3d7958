package parser

import (
	"strconv"

	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/internal/pos"
	"github.com/jmespath-go/jmespath/pkg/lexer"
)

// This file has no teacher analog — Nix has no bracket-specifier grammar at
// all. It is grounded instead on original_source/src/jmespath/parser/
// (the grammar's bracket-specifier, index, slice and multi-select-list
// productions) and expressed using this package's own attach()/Pratt idiom
// established in parser.go and expressions.go.
//
// `[` plays two distinct roles depending on where it is parsed from:
//   - as a fresh primary (parsePrimaryBracket, reached from
//     parsePrefixExpression) it additionally accepts a comma-separated
//     expression list, producing a MultiSelectList;
//   - as a postfix continuation (parseInfixBracket, reached from
//     parseInfixExpression) it only accepts the bracket-specifier content
//     (index, slice, or "*"), matching JMESPath's rule that a multi-select
//     list needs a preceding dot when chained (`foo.[a,b]`) while index,
//     slice and wildcard never do (`foo[0]`).
//
// Both entry points route their continuation through the shared attach()
// helper so dot/index/slice/wildcard/filter/flatten all fold into an
// open projection's Right slot uniformly.

func (p *Parser) parsePrimaryBracket() ast.Node {
	at := p.curPos()

	mk, ok := p.parseBracketBody(at, true)
	if !ok {
		return nil
	}

	return mk(nil)
}

func (p *Parser) parseInfixBracket(left ast.Node) ast.Node {
	at := p.curPos()

	mk, ok := p.parseBracketBody(at, false)
	if !ok {
		return nil
	}

	return attach(left, mk, at)
}

// parseBracketBody parses the content of a `[...]` with cur on the `[`
// token, leaving cur on the matching `]`. It returns a maker that builds the
// resulting node given the (possibly nil) left-hand expression it attaches
// to.
func (p *Parser) parseBracketBody(at pos.Position, allowMultiSelect bool) (func(ast.Node) ast.Node, bool) {
	p.advance() // consume '[', cur is now the bracket's first content token

	switch {
	case p.curIs(lexer.Star):
		if !p.expectPeek(lexer.RBracket) {
			return nil, false
		}

		return func(left ast.Node) ast.Node {
			return &ast.Projection{Base: ast.At(at), Kind: ast.ProjListWildcard, Left: left}
		}, true

	case p.curIs(lexer.Number), p.curIs(lexer.Colon):
		return p.parseIndexOrSliceBody(at)

	default:
		if !allowMultiSelect {
			p.errorf("expected index, slice or wildcard in bracket specifier, got %s", p.cur.Kind)
			return nil, false
		}

		return p.parseMultiSelectListBody(at)
	}
}

// parseIndexOrSliceBody parses `N`, `:`, `N:`, `:N`, `N:N`, `N:N:N`, etc.,
// with cur already on the first Number or Colon token. A single bare number
// produces an Index; any form that uses a colon produces a slice
// Projection, even when every bound is omitted (`[:]`).
func (p *Parser) parseIndexOrSliceBody(at pos.Position) (func(ast.Node) ast.Node, bool) {
	var parts [3]*int64

	sawColon := false
	part := 0

	for {
		if p.curIs(lexer.Number) {
			n, err := parseSliceNumber(p.cur.Literal)
			if err != nil {
				p.errorf("could not parse %q as a number", p.cur.Literal)
				return nil, false
			}

			parts[part] = &n

			p.advance() // consume the number
		}

		if p.curIs(lexer.RBracket) {
			break
		}

		if !p.curIs(lexer.Colon) {
			p.errorf("expected ':' or ']' in bracket specifier, got %s", p.cur.Kind)
			return nil, false
		}

		sawColon = true
		part++

		if part > 2 {
			p.errorf("too many ':' in slice expression")
			return nil, false
		}

		p.advance() // consume ':'
	}

	if !sawColon {
		return func(left ast.Node) ast.Node {
			return &ast.Index{Base: ast.At(at), Left: left, Value: *parts[0]}
		}, true
	}

	start, stop, step := parts[0], parts[1], parts[2]

	return func(left ast.Node) ast.Node {
		return &ast.Projection{
			Base:  ast.At(at),
			Kind:  ast.ProjSlice,
			Left:  left,
			Start: start,
			Stop:  stop,
			Step:  step,
		}
	}, true
}

func parseSliceNumber(lit string) (int64, error) {
	return strconv.ParseInt(lit, 10, 64)
}

// parseMultiSelectListBody parses a comma-separated list of full
// expressions, with cur already positioned on the first one (or on
// RBracket for the syntactically-invalid empty case, rejected below).
func (p *Parser) parseMultiSelectListBody(at pos.Position) (func(ast.Node) ast.Node, bool) {
	if p.curIs(lexer.RBracket) {
		p.errorf("multi-select-list cannot be empty")
		return nil, false
	}

	var items []ast.Node

	for {
		item := p.parseExpression(precedenceLowest)
		if item == nil {
			return nil, false
		}

		items = append(items, item)

		if p.peekIs(lexer.Comma) {
			p.advance()
			p.advance()

			continue
		}

		break
	}

	if !p.expectPeek(lexer.RBracket) {
		return nil, false
	}

	return func(left ast.Node) ast.Node {
		msl := &ast.MultiSelectList{Base: ast.At(at), Items: items}
		if left == nil {
			return msl
		}

		return &ast.SubExpression{Base: ast.At(at), LHS: left, RHS: msl}
	}, true
}

// parseFilter handles the atomic `[?predicate]` token, both as a fresh
// primary (left == nil) and as a postfix continuation.
func (p *Parser) parseFilter(left ast.Node) ast.Node {
	at := p.curPos()

	p.advance() // consume '[?'

	pred := p.parseExpression(precedenceLowest)
	if pred == nil {
		return nil
	}

	if !p.expectPeek(lexer.RBracket) {
		return nil
	}

	makeNode := func(l ast.Node) ast.Node {
		return &ast.Projection{Base: ast.At(at), Kind: ast.ProjFilter, Predicate: pred, Left: l}
	}

	if left == nil {
		return makeNode(nil)
	}

	return attach(left, makeNode, at)
}

// parseFlatten handles the atomic `[]` token, both as a fresh primary and as
// a postfix continuation.
func (p *Parser) parseFlatten(left ast.Node) ast.Node {
	at := p.curPos()

	makeNode := func(l ast.Node) ast.Node {
		return &ast.Projection{Base: ast.At(at), Kind: ast.ProjFlatten, Left: l}
	}

	if left == nil {
		return makeNode(nil)
	}

	return attach(left, makeNode, at)
}

// parseHashWildcard handles the bare `*` token (object-wildcard
// projection), distinct from `[*]`'s list-wildcard.
func (p *Parser) parseHashWildcard(left ast.Node) ast.Node {
	at := p.curPos()

	makeNode := func(l ast.Node) ast.Node {
		return &ast.HashWildcardProjection{Base: ast.At(at), Left: l}
	}

	if left == nil {
		return makeNode(nil)
	}

	return attach(left, makeNode, at)
}
