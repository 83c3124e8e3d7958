package registry

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/value"
)

// registerSupplemental registers the functions SPEC_FULL.md §4.6.1 adds on
// top of the core set in registerInitial.
func registerSupplemental(r *Registry) {
	r.Register(&Function{
		Name: "max",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return extreme("max", args[0].Items(), ctx, false)
		},
	})

	r.Register(&Function{
		Name: "min",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return extreme("min", args[0].Items(), ctx, true)
		},
	})

	r.Register(&Function{
		Name: "max_by",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
			{Name: "expr", Kind: Required, Types: TypeConstraint{value.KindExpression}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			items := args[0].Items()
			if len(items) == 0 {
				return value.Null, nil
			}

			closure, err := ctx.ByFunctionClosure("max_by", "expr", TypeConstraint{value.KindNumber, value.KindString}, args[1])
			if err != nil {
				return value.Value{}, err
			}

			keys, err := evalSortKeys("max_by", items, closure)
			if err != nil {
				return value.Value{}, err
			}

			best := 0

			for i := 1; i < len(items); i++ {
				if keyLess(keys[best], keys[i]) {
					best = i
				}
			}

			return items[best], nil
		},
	})

	r.Register(&Function{
		Name: "sort",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			items := args[0].Items()

			keys, err := evalSortKeys("sort", items, func(v value.Value) (value.Value, error) { return v, nil })
			if err != nil {
				return value.Value{}, err
			}

			return value.Arr(sortByKeys(items, keys)), nil
		},
	})

	r.Register(&Function{
		Name: "sort_by",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
			{Name: "expr", Kind: Required, Types: TypeConstraint{value.KindExpression}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			items := args[0].Items()

			closure, err := ctx.ByFunctionClosure("sort_by", "expr", TypeConstraint{value.KindNumber, value.KindString}, args[1])
			if err != nil {
				return value.Value{}, err
			}

			keys, err := evalSortKeys("sort_by", items, closure)
			if err != nil {
				return value.Value{}, err
			}

			return value.Arr(sortByKeys(items, keys)), nil
		},
	})

	r.Register(&Function{
		Name: "join",
		Params: Signature{
			{Name: "glue", Kind: Required, Types: TypeConstraint{value.KindString}},
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			items := args[1].Items()
			parts := make([]string, len(items))

			for i, it := range items {
				if it.Kind() != value.KindString {
					return value.Value{}, jmerr.NewInvalidType().
						ForFunction("join").
						ForParameter("array").
						ExpectedDataTypes(value.KindString).
						Received(it).
						At(ctx.Position).
						Build()
				}

				parts[i] = it.Str()
			}

			return value.Str(strings.Join(parts, args[0].Str())), nil
		},
	})

	r.Register(&Function{
		Name: "to_string",
		Params: Signature{
			{Name: "value", Kind: Required, Types: Any()},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			if args[0].Kind() == value.KindString {
				return args[0], nil
			}

			return value.Str(toJSONString(args[0])), nil
		},
	})

	r.Register(&Function{
		Name: "to_number",
		Params: Signature{
			{Name: "value", Kind: Required, Types: Any()},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			switch args[0].Kind() {
			case value.KindNumber:
				return args[0], nil
			case value.KindString:
				f, err := strconv.ParseFloat(args[0].Str(), 64)
				if err != nil {
					return value.Null, nil
				}

				n, ok := value.NumChecked(f)
				if !ok {
					return value.Null, nil
				}

				return n, nil
			default:
				return value.Null, nil
			}
		},
	})

	r.Register(&Function{
		Name: "to_array",
		Params: Signature{
			{Name: "value", Kind: Required, Types: Any()},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			if args[0].Kind() == value.KindArray {
				return args[0], nil
			}

			return value.Arr([]value.Value{args[0]}), nil
		},
	})

	r.Register(&Function{
		Name: "not_null",
		Params: Signature{
			{Name: "value", Kind: Variadic, Types: Any()},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			for _, a := range args {
				if a.Kind() != value.KindNull {
					return a, nil
				}
			}

			return value.Null, nil
		},
	})

	r.Register(&Function{
		Name: "type",
		Params: Signature{
			{Name: "value", Kind: Required, Types: Any()},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return value.Str(args[0].Kind().String()), nil
		},
	})

	r.Register(&Function{
		Name: "values",
		Params: Signature{
			{Name: "object", Kind: Required, Types: TypeConstraint{value.KindObject}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			pairs := args[0].Object().Pairs()
			out := make([]value.Value, len(pairs))

			for i, p := range pairs {
				out[i] = p.Value
			}

			return value.Arr(out), nil
		},
	})

	r.Register(&Function{
		Name: "merge",
		Params: Signature{
			{Name: "object", Kind: Variadic, Types: TypeConstraint{value.KindObject}, ZeroOrMore: true},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			var pairs []value.Pair

			seen := make(map[string]int)

			for _, obj := range args {
				for _, p := range obj.Object().Pairs() {
					if idx, ok := seen[p.Key]; ok {
						pairs[idx] = p
						continue
					}

					seen[p.Key] = len(pairs)
					pairs = append(pairs, p)
				}
			}

			return value.ObjFromPairs(pairs), nil
		},
	})

	r.Register(&Function{
		Name: "map",
		Params: Signature{
			{Name: "expr", Kind: Required, Types: TypeConstraint{value.KindExpression}},
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			closure, err := ctx.ByFunctionClosure("map", "expr", Any(), args[0])
			if err != nil {
				return value.Value{}, err
			}

			items := args[1].Items()
			out := make([]value.Value, len(items))

			for i, it := range items {
				v, err := closure(it)
				if err != nil {
					return value.Value{}, err
				}

				out[i] = v
			}

			return value.Arr(out), nil
		},
	})

	r.Register(&Function{
		Name: "sum",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			sum := 0.0

			for _, it := range args[0].Items() {
				if it.Kind() != value.KindNumber {
					return value.Value{}, jmerr.NewInvalidType().
						ForFunction("sum").
						ForParameter("array").
						ExpectedDataTypes(value.KindNumber).
						Received(it).
						At(ctx.Position).
						Build()
				}

				sum += it.Num()
			}

			return value.Num(sum), nil
		},
	})

	r.Register(&Function{
		Name: "group_by",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
			{Name: "expr", Kind: Required, Types: TypeConstraint{value.KindExpression}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			closure, err := ctx.ByFunctionClosure("group_by", "expr", TypeConstraint{value.KindString}, args[1])
			if err != nil {
				return value.Value{}, err
			}

			var pairs []value.Pair

			index := make(map[string]int)

			for _, it := range args[0].Items() {
				k, err := closure(it)
				if err != nil {
					return value.Value{}, err
				}

				key := k.Str()

				if idx, ok := index[key]; ok {
					pairs[idx].Value = value.Arr(append(pairs[idx].Value.Items(), it))
					continue
				}

				index[key] = len(pairs)
				pairs = append(pairs, value.Pair{Key: key, Value: value.Arr([]value.Value{it})})
			}

			return value.ObjFromPairs(pairs), nil
		},
	})
}

func extreme(name string, items []value.Value, ctx *Context, min bool) (value.Value, error) {
	if len(items) == 0 {
		return value.Null, nil
	}

	var kind value.Kind

	for i, it := range items {
		if it.Kind() != value.KindNumber && it.Kind() != value.KindString {
			return value.Value{}, jmerr.NewInvalidType().
				ForFunction(name).
				ForParameter("array").
				ExpectedDataTypes(value.KindNumber, value.KindString).
				Received(it).
				At(ctx.Position).
				Build()
		}

		if i == 0 {
			kind = it.Kind()
		} else if it.Kind() != kind {
			return value.Value{}, jmerr.NewInvalidValue().
				ForFunction(name).
				ForParameter("array").
				Expected("every element to be the same type, number or string").
				Received(it).
				At(ctx.Position).
				Build()
		}
	}

	best := items[0]

	for _, it := range items[1:] {
		if min {
			if keyLess(it, best) {
				best = it
			}
		} else if keyLess(best, it) {
			best = it
		}
	}

	return best, nil
}

func sortByKeys(items, keys []value.Value) []value.Value {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return keyLess(keys[idx[i]], keys[idx[j]])
	})

	out := make([]value.Value, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}

	return out
}
