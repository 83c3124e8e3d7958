package lexer

import (
	"fmt"

	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/pos"
)

// maxErrorWindow bounds how much trailing input a Syntax error quotes back
// to the caller, per spec §4.2 ("a short window of remaining text").
const maxErrorWindow = 40

// Lexer is a single-pass, rune-based scanner over a JMESPath expression.
// It is grounded on a prior lexer's readChar/peekChar position-tracking
// structure, generalized to operate on runes (JMESPath
// string handling is defined in terms of Unicode scalar values, not bytes)
// and to surface lexical failure as a jmerr.Error instead of an ILLEGAL
// token, per spec §4.2's "failure yields a Syntax error".
type Lexer struct {
	input []rune
	pos   int
	ch    rune
	line  int
	col   int
}

// New creates a Lexer over input, primed to read its first rune.
func New(input string) *Lexer {
	l := &Lexer{input: []rune(input), line: 1}
	l.readChar()

	return l
}

func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}

	l.pos++
}

func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}

	return l.input[l.pos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' || l.ch == '\v' || l.ch == '\b' {
		l.readChar()
	}
}

func (l *Lexer) remainingWindow() string {
	end := l.pos - 1 + maxErrorWindow
	if end > len(l.input) {
		end = len(l.input)
	}

	return string(l.input[l.pos-1 : end])
}

func (l *Lexer) syntaxError(category string) error {
	reason := fmt.Sprintf("invalid %s near ->%s<-", category, l.remainingWindow())
	return jmerr.SyntaxAt(reason, pos.New(l.line, l.col))
}

// NextToken scans and returns the next token, or a Syntax error naming the
// unfinished category per spec §4.2.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	line, col := l.line, l.col

	tok := func(k Kind, lit string) (Token, error) {
		return Token{Kind: k, Literal: lit, Line: line, Column: col}, nil
	}

	switch l.ch {
	case 0:
		return tok(EOF, "")

	case '[':
		switch l.peekChar() {
		case '?':
			l.readChar()
			l.readChar()

			return tok(Filter, "[?")
		case ']':
			l.readChar()
			l.readChar()

			return tok(Flatten, "[]")
		default:
			l.readChar()
			return tok(LBracket, "[")
		}

	case ']':
		l.readChar()
		return tok(RBracket, "]")
	case '{':
		l.readChar()
		return tok(LBrace, "{")
	case '}':
		l.readChar()
		return tok(RBrace, "}")
	case '(':
		l.readChar()
		return tok(LParen, "(")
	case ')':
		l.readChar()
		return tok(RParen, ")")

	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()

			return tok(Equal, "==")
		}

		l.readChar()

		return tok(Assign, "=")

	case ':':
		l.readChar()
		return tok(Colon, ":")
	case ',':
		l.readChar()
		return tok(Comma, ",")
	case '.':
		l.readChar()
		return tok(Dot, ".")

	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()

			return tok(Or, "||")
		}

		l.readChar()

		return tok(Pipe, "|")

	case '*':
		l.readChar()
		return tok(Star, "*")
	case '@':
		l.readChar()
		return tok(Current, "@")

	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()

			return tok(And, "&&")
		}

		l.readChar()

		return tok(ExpRef, "&")

	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()

			return tok(NotEqual, "!=")
		}

		l.readChar()

		return tok(Not, "!")

	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()

			return tok(LessThanOrEqual, "<=")
		}

		l.readChar()

		return tok(LessThan, "<")

	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()

			return tok(GreaterThanOrEqual, ">=")
		}

		l.readChar()

		return tok(GreaterThan, ">")

	case '+':
		l.readChar()
		return tok(Plus, "+")

	case '-', '−':
		if isDigit(l.peekChar()) {
			return l.readNumber(line, col)
		}

		minus := string(l.ch)
		l.readChar()

		return tok(Minus, minus)

	case '×':
		l.readChar()
		return tok(Multiply, "×")

	case '/':
		if l.peekChar() == '/' {
			l.readChar()
			l.readChar()

			return tok(Div, "//")
		}

		l.readChar()

		return tok(Divide, "/")

	case '÷':
		l.readChar()
		return tok(Divide, "÷")

	case '%':
		l.readChar()
		return tok(Mod, "%")

	case '"':
		return l.readQuotedString(line, col)
	case '\'':
		return l.readRawString(line, col)
	case '`':
		return l.readJSONValue(line, col)

	case '$':
		if isIdentStart(l.peekChar()) {
			return l.readVariableRef(line, col)
		}

		l.readChar()

		return tok(Root, "$")
	}

	if isDigit(l.ch) {
		return l.readNumber(line, col)
	}

	if isIdentStart(l.ch) {
		start := l.pos - 1
		for isIdentPart(l.ch) {
			l.readChar()
		}

		lit := string(l.input[start : l.pos-1])

		return Token{Kind: lookupIdent(lit), Literal: lit, Line: line, Column: col}, nil
	}

	return Token{}, l.syntaxError("expression")
}

func (l *Lexer) readNumber(line, col int) (Token, error) {
	start := l.pos - 1

	if l.ch == '-' || l.ch == '−' {
		l.readChar()
	}

	for isDigit(l.ch) {
		l.readChar()
	}

	lit := string(l.input[start : l.pos-1])

	return Token{Kind: Number, Literal: lit, Line: line, Column: col}, nil
}

func (l *Lexer) readQuotedString(line, col int) (Token, error) {
	start := l.pos - 1
	l.readChar() // opening quote

	for {
		switch l.ch {
		case '"':
			l.readChar()
			return Token{Kind: QuotedString, Literal: string(l.input[start : l.pos-1]), Line: line, Column: col}, nil
		case 0, '\n':
			return Token{}, l.syntaxErrorAt(line, col, "quoted-string", start)
		case '\\':
			l.readChar()

			switch l.ch {
			case '\\', '"', '/', 'b', 'f', 'n', 'r', 't':
				l.readChar()
			case 'u':
				l.readChar()

				for i := 0; i < 4; i++ {
					if !isHexDigit(l.ch) {
						return Token{}, l.syntaxErrorAt(line, col, "quoted-string", start)
					}

					l.readChar()
				}
			default:
				return Token{}, l.syntaxErrorAt(line, col, "quoted-string", start)
			}
		default:
			l.readChar()
		}
	}
}

func (l *Lexer) readRawString(line, col int) (Token, error) {
	start := l.pos - 1
	l.readChar() // opening quote

	var content []rune

	for {
		switch l.ch {
		case '\'':
			l.readChar()
			return Token{Kind: RawString, Literal: string(content), Line: line, Column: col}, nil
		case 0, '\n':
			return Token{}, l.syntaxErrorAt(line, col, "raw-string", start)
		case '\\':
			if peek := l.peekChar(); peek == '\\' || peek == '\'' {
				l.readChar()
				content = append(content, l.ch)
				l.readChar()

				continue
			}

			content = append(content, l.ch)
			l.readChar()
		default:
			content = append(content, l.ch)
			l.readChar()
		}
	}
}

func (l *Lexer) readJSONValue(line, col int) (Token, error) {
	start := l.pos - 1
	l.readChar() // opening backtick

	var content []rune

	for {
		switch l.ch {
		case '`':
			if len(content) == 0 {
				return Token{}, l.syntaxErrorAt(line, col, "JSON literal", start)
			}

			l.readChar()

			return Token{Kind: JSONValue, Literal: string(content), Line: line, Column: col}, nil
		case 0:
			return Token{}, l.syntaxErrorAt(line, col, "JSON literal", start)
		case '\\':
			if l.peekChar() == '`' {
				l.readChar()
				content = append(content, l.ch)
				l.readChar()

				continue
			}

			content = append(content, l.ch)
			l.readChar()
		default:
			content = append(content, l.ch)
			l.readChar()
		}
	}
}

func (l *Lexer) readVariableRef(line, col int) (Token, error) {
	l.readChar() // '$'
	start := l.pos - 1

	for isIdentPart(l.ch) {
		l.readChar()
	}

	name := string(l.input[start : l.pos-1])

	return Token{Kind: VariableRef, Literal: name, Line: line, Column: col}, nil
}

// syntaxErrorAt reports a Syntax error for an unterminated literal that
// started at (line, col); the error is positioned at the literal's opening
// delimiter, and the window is taken from windowStart onwards.
func (l *Lexer) syntaxErrorAt(line, col int, category string, windowStart int) error {
	end := windowStart + maxErrorWindow
	if end > len(l.input) {
		end = len(l.input)
	}

	reason := fmt.Sprintf("invalid %s near ->%s<-", category, string(l.input[windowStart:end]))

	return jmerr.SyntaxAt(reason, pos.New(line, col))
}
