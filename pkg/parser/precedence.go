package parser

import "github.com/jmespath-go/jmespath/pkg/lexer"

// Precedence levels, low to high, transcribed directly from spec §4.3:
//
//	dot > div mod divide multiply minus plus > not_equal less_than_or_equal
//	less_than greater_than_or_equal greater_than equal > and > or > not >
//	pipe > assign > rbracket filter flatten star lbracket
//
// Tokens tied within one group (e.g. all of the arithmetic operators) bind
// with equal strength and associate left to right. The postfix group at the
// top (rbracket, filter, flatten, star, lbracket) holds the highest
// precedence value in the table, so `[`, `[?`, `[]` and `*` are ordinary
// entries in infixTokens and flow through the same Pratt loop as every
// binary operator in parseExpression — their high precedence is what makes
// them bind tighter than any operator below them without needing a separate
// postfix dispatch path.
const (
	precedenceLowest = iota
	precedenceDot
	precedenceSum        // div mod divide multiply minus plus
	precedenceComparison // not_equal less_than(_or_equal) greater_than(_or_equal) equal
	precedenceAnd
	precedenceOr
	precedenceNot
	precedencePipe
	precedenceAssign
	precedencePostfix // rbracket filter flatten star lbracket
)

var precedenceMap = map[lexer.Kind]int{
	lexer.Dot: precedenceDot,

	lexer.Div:      precedenceSum,
	lexer.Mod:      precedenceSum,
	lexer.Divide:   precedenceSum,
	lexer.Multiply: precedenceSum,
	lexer.Minus:    precedenceSum,
	lexer.Plus:     precedenceSum,

	lexer.NotEqual:           precedenceComparison,
	lexer.LessThanOrEqual:    precedenceComparison,
	lexer.LessThan:           precedenceComparison,
	lexer.GreaterThanOrEqual: precedenceComparison,
	lexer.GreaterThan:        precedenceComparison,
	lexer.Equal:              precedenceComparison,

	lexer.And: precedenceAnd,
	lexer.Or:  precedenceOr,
	lexer.Not: precedenceNot,

	lexer.Pipe:   precedencePipe,
	lexer.Assign: precedenceAssign,

	lexer.RBracket: precedencePostfix,
	lexer.Filter:   precedencePostfix,
	lexer.Flatten:  precedencePostfix,
	lexer.Star:     precedencePostfix,
	lexer.LBracket: precedencePostfix,
}
