package registry

import (
	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/pos"
	"github.com/jmespath-go/jmespath/internal/value"
)

// Context is the capability passed to a Function's Execute callback. It
// carries the call site's position (for error attribution) and exposes the
// single operation spec §4.6 grants a function body: turning an
// expression-reference argument into a by-function closure.
type Context struct {
	Position pos.Position
	eval     Evaluator
}

func newContext(at pos.Position, eval Evaluator) *Context {
	return &Context{Position: at, eval: eval}
}

// ByFunctionClosure validates that arg is an Expression value, then returns
// a closure that evaluates the captured AST against whatever input it is
// given and type-checks the result against expected, surfacing InvalidType
// on mismatch. funcName and paramName identify the expression parameter for
// error messages. This is the only mechanism `_by` functions (min_by,
// max_by, sort_by, group_by) and map use to consume an expression-reference
// argument per element.
func (c *Context) ByFunctionClosure(funcName, paramName string, expected TypeConstraint, arg value.Value) (func(value.Value) (value.Value, error), error) {
	if arg.Kind() != value.KindExpression {
		return nil, jmerr.NewInvalidType().
			ForFunction(funcName).
			ForParameter(paramName).
			ExpectedDataTypes(value.KindExpression).
			Received(arg).
			At(c.Position).
			Build()
	}

	node := arg.Expr()

	return func(input value.Value) (value.Value, error) {
		result, err := c.eval(node, input)
		if err != nil {
			return value.Value{}, err
		}

		if !expected.Matches(result.Kind()) {
			return value.Value{}, jmerr.NewInvalidType().
				ForFunction(funcName).
				ForExpressionParameter(paramName).
				ExpectedDataTypes(expected.kinds()...).
				Received(result).
				At(c.Position).
				Build()
		}

		return result, nil
	}, nil
}
