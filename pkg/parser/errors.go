package parser

import (
	"fmt"

	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/pos"
)

// parseErrors accumulates Syntax errors encountered while parsing, in the
// order they were raised. Grounded on a prior parser's ParseErrors, adapted
// to hold jmerr.Error values directly (spec §4.1 has exactly one error type)
// instead of a parser-local ParseError.
type parseErrors struct {
	errors []jmerr.Error
}

func (p *parseErrors) add(line, col int, format string, args ...interface{}) {
	p.errors = append(p.errors, jmerr.SyntaxAt(fmt.Sprintf(format, args...), pos.New(line, col)))
}

func (p *parseErrors) addError(err jmerr.Error) {
	p.errors = append(p.errors, err)
}

func (p *parseErrors) hasErrors() bool {
	return len(p.errors) > 0
}

// first returns the first recorded error. Per spec §4.3 "the parser returns
// the first parse tree" — on failure it symmetrically returns only the
// first error, not the full accumulated set.
func (p *parseErrors) first() error {
	if len(p.errors) == 0 {
		return nil
	}

	err := p.errors[0]

	return err
}
