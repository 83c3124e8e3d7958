// Package parser implements a recursive descent parser with Pratt parsing
// for JMESPath expressions.
//
// The parser is the second stage of the engine's pipeline, transforming a
// stream of tokens from pkg/lexer into a well-formed internal/ast tree that
// can be evaluated by pkg/eval.
//
// Architecture:
//
// The parser uses Pratt (precedence-climbing) parsing throughout, with a
// two-token (cur/peek) lookahead window:
//   - parsePrefixExpression ("nud") dispatches on the current token to parse
//     a leaf or a unary/primary construct
//   - parseInfixExpression ("led") dispatches on an operator token to extend
//     an already-parsed left-hand expression
//   - parseExpression drives the loop, absorbing infix operators whose
//     precedence exceeds the caller's floor
//
// Precedence (low to high):
//
//	dot > div mod divide multiply minus plus > not_equal less_than_or_equal
//	less_than greater_than_or_equal greater_than equal > and > or > not >
//	pipe > assign > rbracket filter flatten star lbracket
//
// Canonicalization:
//
// Sub-expressions, indices, slices, wildcards, filters and flattens that
// follow an open projection fold into that projection's Right slot rather
// than nesting beside it, and any such continuation following a let
// expression folds into the let's body instead. Both rules are implemented
// uniformly by the attach helper in parser.go.
//
// Bracket forms:
//   - `[N]`, `[N:N:N]`, `[*]` parse as index/slice/wildcard continuations
//     and never require a preceding dot
//   - `[e1, e2, ...]` (multi-select-list) is reachable only as a fresh
//     primary — chaining it after another expression requires a dot, e.g.
//     `foo.[a, b]`
//   - `{k: e, ...}` (multi-select-hash) is likewise reachable only as a
//     fresh primary
//
// Error Handling:
//
// Per the language's error model, the parser returns the first parse tree
// it finds; on failure it returns only the first Syntax error raised, not
// an accumulated set.
//
// Usage Example:
//
//	l := lexer.New("foo.bar[0] | baz(@)")
//	p := parser.New(l)
//	tree, err := p.Parse()
//	if err != nil {
//	    fmt.Printf("parse error: %v\n", err)
//	    return
//	}
//	// tree now holds the parsed expression
package parser
