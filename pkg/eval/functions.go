package eval

import (
	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/scope"
	"github.com/jmespath-go/jmespath/internal/value"
	"github.com/jmespath-go/jmespath/pkg/registry"
)

// evalFunctionCall looks up n.Name in the interpreter's registry, evaluates
// every argument against the current value (an `&expr` argument needs no
// special handling here: the ExpressionRef leaf case in eval already
// produces a value.Expression when evaluated like any other node), then
// delegates arity/type checking and execution to the registry.
func (it *Interpreter) evalFunctionCall(n *ast.FunctionCall, sc *scope.Scope, cur value.Value) (value.Value, error) {
	fn, ok := it.reg.Lookup(n.Name)
	if !ok {
		return value.Value{}, jmerr.NewUnknownFunction().
			ForFunction(n.Name).
			At(n.Position()).
			Build()
	}

	args := make([]value.Value, len(n.Args))

	for i, a := range n.Args {
		v, err := it.eval(a, sc, cur)
		if err != nil {
			return value.Value{}, err
		}

		args[i] = v
	}

	evalFn := registry.Evaluator(func(node ast.Node, input value.Value) (value.Value, error) {
		return it.eval(node, sc, input)
	})

	return it.reg.Call(fn, args, n.Position(), evalFn)
}
