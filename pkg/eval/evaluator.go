package eval

import (
	"fmt"

	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/scope"
	"github.com/jmespath-go/jmespath/internal/value"
	"github.com/jmespath-go/jmespath/pkg/registry"
)

// maxDepth bounds expression nesting, per spec §9's recursion-depth
// mandate: a pathological or hand-crafted deeply-nested expression fails
// with a Syntax error instead of exhausting the goroutine stack.
const maxDepth = 512

// Interpreter evaluates a parsed AST against a document root.
type Interpreter struct {
	root  value.Value
	reg   *registry.Registry
	depth int
}

// New returns an Interpreter that evaluates expressions against root,
// resolving function calls through reg.
func New(root value.Value, reg *registry.Registry) *Interpreter {
	return &Interpreter{root: root, reg: reg}
}

// Evaluate runs node against the interpreter's root value, both as the
// initial current value and as the RootNode anchor.
func (it *Interpreter) Evaluate(node ast.Node) (value.Value, error) {
	return it.eval(node, scope.Empty, it.root)
}

// eval is the central evaluation dispatcher. Every recursive descent,
// regardless of which helper triggers it, passes through here, so the
// depth guard below applies uniformly.
func (it *Interpreter) eval(node ast.Node, sc *scope.Scope, cur value.Value) (value.Value, error) {
	it.depth++
	defer func() { it.depth-- }()

	if it.depth > maxDepth {
		return value.Value{}, jmerr.NewSyntax().
			ForReason("expression nesting too deep").
			At(node.Position()).
			Build()
	}

	switch n := node.(type) {
	case *ast.Current:
		return cur, nil

	case *ast.Root:
		return it.root, nil

	case *ast.Identifier:
		if cur.Kind() != value.KindObject {
			return value.Null, nil
		}

		v, ok := cur.Object().Get(n.Name)
		if !ok {
			return value.Null, nil
		}

		return v, nil

	case *ast.QuotedIdentifier:
		key, err := decodeJSONText(n.Raw, n.Position())
		if err != nil {
			return value.Value{}, err
		}

		if cur.Kind() != value.KindObject {
			return value.Null, nil
		}

		v, ok := cur.Object().Get(key.Str())
		if !ok {
			return value.Null, nil
		}

		return v, nil

	case *ast.RawStringLiteral:
		return value.Str(n.Value), nil

	case *ast.JSONLiteral:
		return decodeJSONText(n.Raw, n.Position())

	case *ast.NumberLiteral:
		return value.Num(float64(n.Value)), nil

	case *ast.VariableRef:
		v, ok := sc.Lookup(n.Name)
		if !ok {
			return value.Value{}, jmerr.NewUndefinedVariable().
				ForVariable(n.Name).
				At(n.Position()).
				Build()
		}

		return v, nil

	case *ast.SubExpression:
		lhs, err := it.eval(n.LHS, sc, cur)
		if err != nil {
			return value.Value{}, err
		}

		if lhs.IsNull() {
			return value.Null, nil
		}

		return it.eval(n.RHS, sc, lhs)

	case *ast.Pipe:
		lhs, err := it.eval(n.LHS, sc, cur)
		if err != nil {
			return value.Value{}, err
		}

		return it.eval(n.RHS, sc, lhs)

	case *ast.Paren:
		return it.eval(n.Inner, sc, cur)

	case *ast.Index:
		base := cur

		if n.Left != nil {
			v, err := it.eval(n.Left, sc, cur)
			if err != nil {
				return value.Value{}, err
			}

			base = v
		}

		if base.Kind() != value.KindArray {
			return value.Null, nil
		}

		items := base.Items()
		idx := int(n.Value)

		if idx < 0 {
			idx += len(items)
		}

		if idx < 0 || idx >= len(items) {
			return value.Null, nil
		}

		return items[idx], nil

	case *ast.Arithmetic:
		return it.evalArithmetic(n, sc, cur)

	case *ast.Comparator:
		return it.evalComparator(n, sc, cur)

	case *ast.Logical:
		return it.evalLogical(n, sc, cur)

	case *ast.FunctionCall:
		return it.evalFunctionCall(n, sc, cur)

	case *ast.ExpressionRef:
		return value.Expr(n.Inner), nil

	case *ast.MultiSelectList:
		items := make([]value.Value, len(n.Items))

		for i, item := range n.Items {
			v, err := it.eval(item, sc, cur)
			if err != nil {
				return value.Value{}, err
			}

			items[i] = v
		}

		return value.Arr(items), nil

	case *ast.MultiSelectHash:
		pairs := make([]value.Pair, len(n.Pairs))

		for i, p := range n.Pairs {
			v, err := it.eval(p.Value, sc, cur)
			if err != nil {
				return value.Value{}, err
			}

			pairs[i] = value.Pair{Key: p.Key, Value: v}
		}

		return value.ObjFromPairs(pairs), nil

	case *ast.Let:
		return it.evalLet(n, sc, cur)

	case *ast.Projection:
		return it.evalProjection(n, sc, cur)

	case *ast.HashWildcardProjection:
		return it.evalHashWildcardProjection(n, sc, cur)

	default:
		panic(fmt.Sprintf("eval: unreachable AST node kind %T", node))
	}
}
