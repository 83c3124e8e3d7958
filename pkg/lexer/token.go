package lexer

import "fmt"

// Kind classifies a lexical token of the JMESPath expression language.
type Kind int

const (
	EOF Kind = iota

	// Punctuation.
	Dot
	Colon
	Comma
	Pipe
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket

	// Filter / flatten.
	Filter  // "[?"
	Flatten // "[]"

	// Sigils.
	Star    // "*"
	Current // "@"
	Root    // "$"
	ExpRef  // "&"

	// Arithmetic.
	Plus     // "+"
	Minus    // "-" or "−"
	Multiply // "×"
	Divide   // "/" or "÷"
	Mod      // "%"
	Div      // "//"

	// Comparison.
	Equal
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual

	// Logical.
	And
	Or
	Not

	// Let-binding assignment.
	Assign

	Number

	// Keywords.
	Let
	In

	// Identifiers and literals.
	QuotedString
	UnquotedString
	RawString
	JSONValue
	VariableRef
)

var kindNames = map[Kind]string{
	EOF:                "EOF",
	Dot:                "dot",
	Colon:              "colon",
	Comma:              "comma",
	Pipe:               "pipe",
	LParen:             "lparen",
	RParen:             "rparen",
	LBrace:             "lbrace",
	RBrace:             "rbrace",
	LBracket:           "lbracket",
	RBracket:           "rbracket",
	Filter:             "filter",
	Flatten:            "flatten",
	Star:               "star",
	Current:            "current",
	Root:               "root",
	ExpRef:             "expref",
	Plus:               "plus",
	Minus:              "minus",
	Multiply:           "multiply",
	Divide:             "divide",
	Mod:                "mod",
	Div:                "div",
	Equal:              "equal",
	NotEqual:           "not_equal",
	LessThan:           "less_than",
	LessThanOrEqual:    "less_than_or_equal",
	GreaterThan:        "greater_than",
	GreaterThanOrEqual: "greater_than_or_equal",
	And:                "and",
	Or:                 "or",
	Not:                "not",
	Assign:             "assign",
	Number:             "number",
	Let:                "let",
	In:                 "in",
	QuotedString:       "quoted_string",
	UnquotedString:     "unquoted_string",
	RawString:          "raw_string",
	JSONValue:          "json_value",
	VariableRef:        "variable_ref",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit, tagged with the position of its first rune.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]Kind{
	"let": Let,
	"in":  In,
}

func lookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}

	return UnquotedString
}

func isIdentStart(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
