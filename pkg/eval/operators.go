package eval

import (
	"fmt"
	"math"

	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/pos"
	"github.com/jmespath-go/jmespath/internal/scope"
	"github.com/jmespath-go/jmespath/internal/value"
)

// evalArithmetic implements spec §4.5's arithmetic rules: both operands
// must be numbers (a Syntax error, not InvalidType, names the offending
// side and its received kind), a non-finite result is a NotANumber error,
// and unary +/- (LHS == nil) apply only to RHS.
func (it *Interpreter) evalArithmetic(n *ast.Arithmetic, sc *scope.Scope, cur value.Value) (value.Value, error) {
	rhs, err := it.eval(n.RHS, sc, cur)
	if err != nil {
		return value.Value{}, err
	}

	if n.LHS == nil {
		if rhs.Kind() != value.KindNumber {
			return value.Value{}, arithmeticTypeError("right", rhs, n.Position())
		}

		if n.Op == ast.ArithSub {
			return value.Num(-rhs.Num()), nil
		}

		return rhs, nil
	}

	lhs, err := it.eval(n.LHS, sc, cur)
	if err != nil {
		return value.Value{}, err
	}

	if lhs.Kind() != value.KindNumber {
		return value.Value{}, arithmeticTypeError("left", lhs, n.Position())
	}

	if rhs.Kind() != value.KindNumber {
		return value.Value{}, arithmeticTypeError("right", rhs, n.Position())
	}

	a, b := lhs.Num(), rhs.Num()

	var result float64

	switch n.Op {
	case ast.ArithAdd:
		result = a + b
	case ast.ArithSub:
		result = a - b
	case ast.ArithMul:
		result = a * b
	case ast.ArithDiv:
		result = a / b
	case ast.ArithModulo:
		result = saturateInt64(math.Trunc(math.Mod(a, b)))
	case ast.ArithFloorDiv:
		result = saturateInt64(math.Trunc(a / b))
	default:
		panic(fmt.Sprintf("evalArithmetic: unreachable ArithOp %v", n.Op))
	}

	v, ok := value.NumChecked(result)
	if !ok {
		return value.Value{}, jmerr.NewNotANumber().
			ForReason(fmt.Sprintf("arithmetic expression %q produced a non-finite result", n.String())).
			At(n.Position()).
			Build()
	}

	return v, nil
}

// saturateInt64 clamps a truncated `%`/`//` result to the range representable
// by an int64, per SPEC_FULL.md §9's overflow resolution: such a result
// saturates rather than wraps. A non-finite f (division by zero) is passed
// through unchanged rather than clamped, so NumChecked still rejects it as
// NotANumber instead of silently saturating +/-Inf into a finite MaxInt64.
func saturateInt64(f float64) float64 {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return f
	case f > math.MaxInt64:
		return math.MaxInt64
	case f < math.MinInt64:
		return math.MinInt64
	default:
		return f
	}
}

func arithmeticTypeError(side string, got value.Value, at pos.Position) error {
	return jmerr.NewSyntax().
		ForReason(fmt.Sprintf("the %s-hand side of an arithmetic expression must be a number, got %s", side, got.Kind())).
		At(at).
		Build()
}

// evalComparator implements spec §4.5: ==/!= use structural equality on any
// values; the ordering comparators require both numbers and evaluate to
// Null (not an error) when that is not the case.
func (it *Interpreter) evalComparator(n *ast.Comparator, sc *scope.Scope, cur value.Value) (value.Value, error) {
	lhs, err := it.eval(n.LHS, sc, cur)
	if err != nil {
		return value.Value{}, err
	}

	rhs, err := it.eval(n.RHS, sc, cur)
	if err != nil {
		return value.Value{}, err
	}

	switch n.Op {
	case ast.CompareEqual:
		return value.Bool(value.Equal(lhs, rhs)), nil
	case ast.CompareNotEqual:
		return value.Bool(!value.Equal(lhs, rhs)), nil
	}

	if lhs.Kind() != value.KindNumber || rhs.Kind() != value.KindNumber {
		return value.Null, nil
	}

	a, b := lhs.Num(), rhs.Num()

	switch n.Op {
	case ast.CompareLessThan:
		return value.Bool(a < b), nil
	case ast.CompareLessThanOrEqual:
		return value.Bool(a <= b), nil
	case ast.CompareGreaterThan:
		return value.Bool(a > b), nil
	case ast.CompareGreaterThanOrEqual:
		return value.Bool(a >= b), nil
	default:
		panic(fmt.Sprintf("evalComparator: unreachable CompareOp %v", n.Op))
	}
}

// evalLogical implements spec §4.5's logical operators, which return the
// actual operand value rather than a coerced boolean, and short-circuit:
// `x && y` evaluates y only if x is truthy, `x || y` evaluates y only if x
// is not truthy.
func (it *Interpreter) evalLogical(n *ast.Logical, sc *scope.Scope, cur value.Value) (value.Value, error) {
	if n.Op == ast.LogicalNot {
		rhs, err := it.eval(n.RHS, sc, cur)
		if err != nil {
			return value.Value{}, err
		}

		return value.Bool(!rhs.Truthy()), nil
	}

	lhs, err := it.eval(n.LHS, sc, cur)
	if err != nil {
		return value.Value{}, err
	}

	switch n.Op {
	case ast.LogicalAnd:
		if !lhs.Truthy() {
			return lhs, nil
		}

		return it.eval(n.RHS, sc, cur)
	case ast.LogicalOr:
		if lhs.Truthy() {
			return lhs, nil
		}

		return it.eval(n.RHS, sc, cur)
	default:
		panic(fmt.Sprintf("evalLogical: unreachable LogicalOp %v", n.Op))
	}
}
