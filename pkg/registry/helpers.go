package registry

import (
	"math"

	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/pos"
	"github.com/jmespath-go/jmespath/internal/value"
)

// requireInt rejects a Number argument that is not integral, producing
// InvalidValue (an arity/type check has already confirmed it is a Number).
func requireInt(funcName, paramName string, v value.Value, at pos.Position) (int, error) {
	f := v.Num()
	if f != math.Trunc(f) {
		return 0, jmerr.NewInvalidValue().
			ForFunction(funcName).
			ForParameter(paramName).
			Expected("an integer").
			Received(v).
			At(at).
			Build()
	}

	return int(f), nil
}

// clampIndex implements spec §4.6's negative-index rule for functions that
// take a raw start/end offset (as opposed to the slice operator's own
// step-aware index math): a negative n adds length first, then the result
// clamps to [0, length].
func clampIndex(n, length int) int {
	if n < 0 {
		n += length
	}

	switch {
	case n < 0:
		return 0
	case n > length:
		return length
	default:
		return n
	}
}

func requireNonNegativeInt(funcName, paramName string, v value.Value, at pos.Position) (int, error) {
	n, err := requireInt(funcName, paramName, v, at)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, jmerr.NewInvalidValue().
			ForFunction(funcName).
			ForParameter(paramName).
			Expected("a non-negative integer").
			Received(v).
			At(at).
			Build()
	}

	return n, nil
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// keyLess orders two same-kind sort keys (Number or String), as produced by
// evalSortKeys.
func keyLess(a, b value.Value) bool {
	if a.Kind() == value.KindNumber {
		return a.Num() < b.Num()
	}

	return a.Str() < b.Str()
}

// evalSortKeys evaluates closure against every element of items, requiring
// every result to be a Number or a String and all of one consistent kind,
// per the `_by` function contract in spec §4.6.1.
func evalSortKeys(funcName string, items []value.Value, closure func(value.Value) (value.Value, error)) ([]value.Value, error) {
	keys := make([]value.Value, len(items))

	var kind value.Kind

	for i, it := range items {
		k, err := closure(it)
		if err != nil {
			return nil, err
		}

		if k.Kind() != value.KindNumber && k.Kind() != value.KindString {
			return nil, jmerr.NewInvalidType().
				ForFunction(funcName).
				ForExpressionParameter("expr").
				ExpectedDataTypes(value.KindNumber, value.KindString).
				Received(k).
				Build()
		}

		if i == 0 {
			kind = k.Kind()
		} else if k.Kind() != kind {
			return nil, jmerr.NewInvalidValue().
				ForFunction(funcName).
				ForParameter("expr").
				Expected("every element to evaluate to the same type, number or string").
				Received(k).
				Build()
		}

		keys[i] = k
	}

	return keys, nil
}

// toJSONString renders v as JSON text for `to_string`'s object/array case,
// delegating to value.MarshalJSON so object key order is preserved instead
// of routing through map[string]interface{} (which encoding/json would
// re-sort alphabetically on Marshal).
func toJSONString(v value.Value) string {
	return value.MarshalJSON(v)
}
