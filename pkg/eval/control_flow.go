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

// evalLet implements spec §4.5's let-expression rule: each binding's
// right-hand side is evaluated against the scope frame accumulated so far
// (so a later binding may reference an earlier one) and the ORIGINAL
// current value, not whatever the previous binding evaluated to. The body
// sees the fully accumulated frame.
func (it *Interpreter) evalLet(n *ast.Let, sc *scope.Scope, cur value.Value) (value.Value, error) {
	frame := sc

	for _, b := range n.Bindings {
		v, err := it.eval(b.Value, frame, cur)
		if err != nil {
			return value.Value{}, err
		}

		frame = frame.Bind(b.Var, v)
	}

	return it.eval(n.Body, frame, cur)
}

// evalProjection dispatches on the projection's kind. All four share the
// "project a base array then apply Right to each surviving element,
// omitting Null results" pattern, implemented once in projectElements.
func (it *Interpreter) evalProjection(n *ast.Projection, sc *scope.Scope, cur value.Value) (value.Value, error) {
	base := cur

	if n.Left != nil {
		v, err := it.eval(n.Left, sc, cur)
		if err != nil {
			return value.Value{}, err
		}

		base = v
	}

	switch n.Kind {
	case ast.ProjListWildcard:
		if base.Kind() != value.KindArray {
			return value.Null, nil
		}

		return it.projectElements(base.Items(), n.Right, sc)

	case ast.ProjFilter:
		if base.Kind() != value.KindArray {
			return value.Null, nil
		}

		var kept []value.Value

		for _, el := range base.Items() {
			p, err := it.eval(n.Predicate, sc, el)
			if err != nil {
				return value.Value{}, err
			}

			if p.Truthy() {
				kept = append(kept, el)
			}
		}

		return it.projectElements(kept, n.Right, sc)

	case ast.ProjFlatten:
		if base.Kind() != value.KindArray {
			return value.Null, nil
		}

		var flattened []value.Value

		for _, el := range base.Items() {
			if el.Kind() == value.KindArray {
				flattened = append(flattened, el.Items()...)
			} else {
				flattened = append(flattened, el)
			}
		}

		return it.projectElements(flattened, n.Right, sc)

	case ast.ProjSlice:
		return it.evalSliceProjection(n, sc, base)

	default:
		panic(fmt.Sprintf("evalProjection: unreachable ProjKind %v", n.Kind))
	}
}

// evalSliceProjection handles both the array case (a projection like every
// other) and the string case, which is special: the result is the sliced
// string itself when Right is absent, and Right is evaluated directly
// against the sliced string (not per-character) when present.
func (it *Interpreter) evalSliceProjection(n *ast.Projection, sc *scope.Scope, base value.Value) (value.Value, error) {
	switch base.Kind() {
	case value.KindArray:
		items := base.Items()

		idxs, err := sliceIndices(len(items), n.Start, n.Stop, n.Step, n.Position())
		if err != nil {
			return value.Value{}, err
		}

		sliced := make([]value.Value, len(idxs))
		for i, idx := range idxs {
			sliced[i] = items[idx]
		}

		return it.projectElements(sliced, n.Right, sc)

	case value.KindString:
		runes := []rune(base.Str())

		idxs, err := sliceIndices(len(runes), n.Start, n.Stop, n.Step, n.Position())
		if err != nil {
			return value.Value{}, err
		}

		slicedRunes := make([]rune, len(idxs))
		for i, idx := range idxs {
			slicedRunes[i] = runes[idx]
		}

		slicedStr := value.Str(string(slicedRunes))

		if n.Right == nil {
			return slicedStr, nil
		}

		return it.eval(n.Right, sc, slicedStr)

	default:
		return value.Null, nil
	}
}

// sliceIndices implements spec §4.5's slice algorithm exactly: step
// defaults to 1 and a step of 0 is a Syntax error; an explicit negative
// start/stop is adjusted by +length; an absent start/stop defaults to
// (0, length) when step > 0 or (length-1, -1) when step < 0; the number of
// candidate indices is ceil((stop-start)/step), and each candidate
// start+n*step is kept only if it falls within [0, length).
func sliceIndices(length int, start, stop, step *int64, at pos.Position) ([]int, error) {
	st := int64(1)
	if step != nil {
		st = *step
	}

	if st == 0 {
		return nil, jmerr.NewSyntax().ForReason("slice step cannot be 0").At(at).Build()
	}

	var startVal, stopVal int64

	switch {
	case start != nil:
		startVal = *start
		if startVal < 0 {
			startVal += int64(length)
		}
	case st > 0:
		startVal = 0
	default:
		startVal = int64(length) - 1
	}

	switch {
	case stop != nil:
		stopVal = *stop
		if stopVal < 0 {
			stopVal += int64(length)
		}
	case st > 0:
		stopVal = int64(length)
	default:
		stopVal = -1
	}

	n := int64(math.Ceil(float64(stopVal-startVal) / float64(st)))
	if n < 0 {
		n = 0
	}

	var out []int

	for i := int64(0); i < n; i++ {
		idx := startVal + i*st
		if idx >= 0 && idx < int64(length) {
			out = append(out, int(idx))
		}
	}

	return out, nil
}

// projectElements applies right to each element, dropping Null results, per
// the null-omitting projection rule shared by all four projection kinds. A
// nil right (the projection sits at the tail of its chain) returns elements
// unchanged.
func (it *Interpreter) projectElements(elements []value.Value, right ast.Node, sc *scope.Scope) (value.Value, error) {
	if right == nil {
		return value.Arr(elements), nil
	}

	var out []value.Value

	for _, el := range elements {
		v, err := it.eval(right, sc, el)
		if err != nil {
			return value.Value{}, err
		}

		if v.IsNull() {
			continue
		}

		out = append(out, v)
	}

	return value.Arr(out), nil
}

// evalHashWildcardProjection implements `*` applied to an object: the base
// projected set is the object's values with nulls already dropped, before
// Right is ever applied.
func (it *Interpreter) evalHashWildcardProjection(n *ast.HashWildcardProjection, sc *scope.Scope, cur value.Value) (value.Value, error) {
	base := cur

	if n.Left != nil {
		v, err := it.eval(n.Left, sc, cur)
		if err != nil {
			return value.Value{}, err
		}

		base = v
	}

	if base.Kind() != value.KindObject {
		return value.Null, nil
	}

	var elements []value.Value

	for _, p := range base.Object().Pairs() {
		if p.Value.IsNull() {
			continue
		}

		elements = append(elements, p.Value)
	}

	return it.projectElements(elements, n.Right, sc)
}
