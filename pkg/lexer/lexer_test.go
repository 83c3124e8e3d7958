package lexer

import "testing"

func TestNextTokenRecognizesEachKind(t *testing.T) {
	tests := []struct {
		input           string
		expectedKind    Kind
		expectedLiteral string
	}{
		{"=", Assign, "="},
		{":", Colon, ":"},
		{",", Comma, ","},
		{".", Dot, "."},
		{"|", Pipe, "|"},
		{"(", LParen, "("},
		{")", RParen, ")"},
		{"{", LBrace, "{"},
		{"}", RBrace, "}"},
		{"[", LBracket, "["},
		{"]", RBracket, "]"},
		{"[?", Filter, "[?"},
		{"[]", Flatten, "[]"},
		{"*", Star, "*"},
		{"@", Current, "@"},
		{"$", Root, "$"},
		{"&", ExpRef, "&"},
		{"+", Plus, "+"},
		{"-", Minus, "-"},
		{"−", Minus, "−"},
		{"×", Multiply, "×"},
		{"÷", Divide, "÷"},
		{"/", Divide, "/"},
		{"//", Div, "//"},
		{"%", Mod, "%"},
		{"==", Equal, "=="},
		{"!=", NotEqual, "!="},
		{"<", LessThan, "<"},
		{">", GreaterThan, ">"},
		{"<=", LessThanOrEqual, "<="},
		{">=", GreaterThanOrEqual, ">="},
		{"&&", And, "&&"},
		{"||", Or, "||"},
		{"!", Not, "!"},
		{"42", Number, "42"},
		{"-4", Number, "-4"},
		{`"quoted_string"`, QuotedString, `"quoted_string"`},
		{"foo", UnquotedString, "foo"},
		{"''", RawString, ""},
		{"'raw_string'", RawString, "raw_string"},
		{"`true`", JSONValue, "true"},
		{"`[1, 2, 3]`", JSONValue, "[1, 2, 3]"},
		{"$foo", VariableRef, "foo"},
		{"let", Let, "let"},
		{"in", In, "in"},
	}

	for _, tt := range tests {
		l := New(tt.input)

		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}

		if tok.Kind != tt.expectedKind {
			t.Errorf("input %q: kind wrong. expected=%s, got=%s", tt.input, tt.expectedKind, tok.Kind)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Errorf("input %q: literal wrong. expected=%q, got=%q", tt.input, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenSkipsWhitespace(t *testing.T) {
	for _, input := range []string{" foo", "\bfoo", "\nfoo", "\vfoo", "\rfoo", "\tfoo"} {
		l := New(input)

		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", input, err)
		}

		if tok.Kind != UnquotedString || tok.Literal != "foo" {
			t.Errorf("input %q: expected unquoted_string 'foo', got %s %q", input, tok.Kind, tok.Literal)
		}
	}
}

func TestRawStringEscapes(t *testing.T) {
	l := New(`' \\raw\\ '`)

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tok.Kind != RawString {
		t.Fatalf("expected raw_string, got %s", tok.Kind)
	}

	if tok.Literal != ` \raw\ ` {
		t.Fatalf("unexpected literal: %q", tok.Literal)
	}
}

func TestNextTokenSequence(t *testing.T) {
	input := "foo.bar[0] | &baz(@)"

	tests := []struct {
		kind    Kind
		literal string
	}{
		{UnquotedString, "foo"},
		{Dot, "."},
		{UnquotedString, "bar"},
		{LBracket, "["},
		{Number, "0"},
		{RBracket, "]"},
		{Pipe, "|"},
		{ExpRef, "&"},
		{UnquotedString, "baz"},
		{LParen, "("},
		{Current, "@"},
		{RParen, ")"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d]: unexpected error: %v", i, err)
		}

		if tok.Kind != tt.kind {
			t.Errorf("tests[%d]: kind wrong. expected=%s, got=%s", i, tt.kind, tok.Kind)
		}

		if tok.Literal != tt.literal {
			t.Errorf("tests[%d]: literal wrong. expected=%q, got=%q", i, tt.literal, tok.Literal)
		}
	}
}

func TestNextTokenSyntaxErrors(t *testing.T) {
	tests := []struct {
		input    string
		category string
	}{
		{"?", "expression"},
		{"'unterminated", "raw-string"},
		{`"unterminated`, "quoted-string"},
		{"`unterminated", "JSON literal"},
	}

	for _, tt := range tests {
		l := New(tt.input)

		_, err := l.NextToken()
		if err == nil {
			t.Fatalf("input %q: expected an error", tt.input)
		}
	}
}
