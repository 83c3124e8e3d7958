// Package lexer turns a JMESPath expression into a stream of tokens for the
// parser.
//
// The scanner makes a single pass over the input's runes, tracking the line
// and column at which every token starts. Whitespace (space, tab, newline,
// carriage return, vertical tab and backspace) is skipped; the language has
// no comments.
//
// Token Recognition:
//   - Identifiers, quoted identifiers, raw strings ('...'), backtick JSON
//     literals and integer numbers
//   - `$name` variable references and the bare `$` root reference
//   - The keywords let and in
//   - Two-rune tokens recognized by one rune of lookahead: `[?`, `[]`,
//     `==`, `!=`, `<=`, `>=`, `&&`, `||`, `//`
//   - Arithmetic operators, including the glyphs `−`, `×` and `÷`; a minus
//     sign is folded into a number token only when a digit follows it
//
// Error Handling:
//
// NextToken returns (Token, error). A failure is a jmerr Syntax error naming
// the unfinished category (quoted-string, raw-string, JSON literal or
// expression) together with a window of at most 40 runes of the input.
//
// Usage Example:
//
//	l := lexer.New("foo.bar[0]")
//	for {
//	    tok, err := l.NextToken()
//	    if err != nil {
//	        return err
//	    }
//	    if tok.Kind == lexer.EOF {
//	        break
//	    }
//	    fmt.Printf("%s: %s\n", tok.Kind, tok.Literal)
//	}
package lexer
