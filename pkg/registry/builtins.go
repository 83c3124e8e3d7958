package registry

import (
	"math"
	"strings"

	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/value"
)

// registerBuiltins seeds r with every built-in function: the core set from
// spec §4.6 plus the supplemental set SPEC_FULL.md §4.6.1 adds.
func registerBuiltins(r *Registry) {
	registerInitial(r)
	registerSupplemental(r)
}

// registerInitial registers the core built-in set described in spec §4.6.
func registerInitial(r *Registry) {
	r.Register(&Function{
		Name: "abs",
		Params: Signature{
			{Name: "value", Kind: Required, Types: TypeConstraint{value.KindNumber}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return value.Num(math.Abs(args[0].Num())), nil
		},
	})

	r.Register(&Function{
		Name: "ceil",
		Params: Signature{
			{Name: "value", Kind: Required, Types: TypeConstraint{value.KindNumber}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return value.Num(math.Ceil(args[0].Num())), nil
		},
	})

	r.Register(&Function{
		Name: "floor",
		Params: Signature{
			{Name: "value", Kind: Required, Types: TypeConstraint{value.KindNumber}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return value.Num(math.Floor(args[0].Num())), nil
		},
	})

	r.Register(&Function{
		Name: "avg",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			items := args[0].Items()
			if len(items) == 0 {
				return value.Null, nil
			}

			sum := 0.0

			for _, it := range items {
				if it.Kind() != value.KindNumber {
					return value.Value{}, jmerr.NewInvalidType().
						ForFunction("avg").
						ForParameter("array").
						ExpectedDataTypes(value.KindNumber).
						Received(it).
						At(ctx.Position).
						Build()
				}

				sum += it.Num()
			}

			return value.Num(sum / float64(len(items))), nil
		},
	})

	r.Register(&Function{
		Name: "length",
		Params: Signature{
			{Name: "subject", Kind: Required, Types: TypeConstraint{value.KindString, value.KindArray, value.KindObject}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			switch args[0].Kind() {
			case value.KindString:
				return value.Num(float64(args[0].RuneLen())), nil
			case value.KindArray:
				return value.Num(float64(len(args[0].Items()))), nil
			default:
				return value.Num(float64(args[0].Object().Len())), nil
			}
		},
	})

	r.Register(&Function{
		Name: "reverse",
		Params: Signature{
			{Name: "subject", Kind: Required, Types: TypeConstraint{value.KindString, value.KindArray}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			if args[0].Kind() == value.KindString {
				r := []rune(args[0].Str())
				for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
					r[i], r[j] = r[j], r[i]
				}

				return value.Str(string(r)), nil
			}

			items := args[0].Items()
			out := make([]value.Value, len(items))

			for i, it := range items {
				out[len(items)-1-i] = it
			}

			return value.Arr(out), nil
		},
	})

	r.Register(&Function{
		Name: "contains",
		Params: Signature{
			{Name: "subject", Kind: Required, Types: TypeConstraint{value.KindString, value.KindArray}},
			{Name: "search", Kind: Required, Types: Any()},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			subject, search := args[0], args[1]

			if subject.Kind() == value.KindString {
				if search.Kind() != value.KindString {
					return value.Bool(false), nil
				}

				return value.Bool(strings.Contains(subject.Str(), search.Str())), nil
			}

			for _, it := range subject.Items() {
				if value.Equal(it, search) {
					return value.Bool(true), nil
				}
			}

			return value.Bool(false), nil
		},
	})

	r.Register(&Function{
		Name: "starts_with",
		Params: Signature{
			{Name: "subject", Kind: Required, Types: TypeConstraint{value.KindString}},
			{Name: "prefix", Kind: Required, Types: TypeConstraint{value.KindString}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return value.Bool(strings.HasPrefix(args[0].Str(), args[1].Str())), nil
		},
	})

	r.Register(&Function{
		Name: "ends_with",
		Params: Signature{
			{Name: "subject", Kind: Required, Types: TypeConstraint{value.KindString}},
			{Name: "suffix", Kind: Required, Types: TypeConstraint{value.KindString}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return value.Bool(strings.HasSuffix(args[0].Str(), args[1].Str())), nil
		},
	})

	r.Register(&Function{
		Name: "find_first",
		Params: Signature{
			{Name: "subject", Kind: Required, Types: TypeConstraint{value.KindString}},
			{Name: "search", Kind: Required, Types: TypeConstraint{value.KindString}},
			{Name: "start", Kind: Optional, Types: TypeConstraint{value.KindNumber}},
			{Name: "end", Kind: Optional, Types: TypeConstraint{value.KindNumber}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			subject := []rune(args[0].Str())
			search := []rune(args[1].Str())

			start, end := 0, len(subject)

			if len(args) > 2 {
				n, err := requireInt("find_first", "start", args[2], ctx.Position)
				if err != nil {
					return value.Value{}, err
				}

				start = clampIndex(n, len(subject))
			}

			if len(args) > 3 {
				n, err := requireInt("find_first", "end", args[3], ctx.Position)
				if err != nil {
					return value.Value{}, err
				}

				end = clampIndex(n, len(subject))
			}

			for i := start; i+len(search) <= end; i++ {
				if runesEqual(subject[i:i+len(search)], search) {
					return value.Num(float64(i)), nil
				}
			}

			return value.Null, nil
		},
	})

	r.Register(&Function{
		Name: "keys",
		Params: Signature{
			{Name: "object", Kind: Required, Types: TypeConstraint{value.KindObject}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			keys := args[0].Object().Keys()
			out := make([]value.Value, len(keys))

			for i, k := range keys {
				out[i] = value.Str(k)
			}

			return value.Arr(out), nil
		},
	})

	r.Register(&Function{
		Name: "items",
		Params: Signature{
			{Name: "object", Kind: Required, Types: TypeConstraint{value.KindObject}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			pairs := args[0].Object().Pairs()
			out := make([]value.Value, len(pairs))

			for i, p := range pairs {
				out[i] = value.Arr([]value.Value{value.Str(p.Key), p.Value})
			}

			return value.Arr(out), nil
		},
	})

	r.Register(&Function{
		Name: "from_items",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			pairs := make([]value.Pair, 0, len(args[0].Items()))

			for _, it := range args[0].Items() {
				if it.Kind() != value.KindArray || len(it.Items()) != 2 || it.Items()[0].Kind() != value.KindString {
					return value.Value{}, jmerr.NewInvalidValue().
						ForFunction("from_items").
						ForParameter("array").
						Expected("each element to be a [string, value] pair").
						Received(it).
						At(ctx.Position).
						Build()
				}

				pairs = append(pairs, value.Pair{Key: it.Items()[0].Str(), Value: it.Items()[1]})
			}

			return value.ObjFromPairs(pairs), nil
		},
	})

	r.Register(&Function{
		Name: "min_by",
		Params: Signature{
			{Name: "array", Kind: Required, Types: TypeConstraint{value.KindArray}},
			{Name: "expr", Kind: Required, Types: TypeConstraint{value.KindExpression}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			items := args[0].Items()
			if len(items) == 0 {
				return value.Null, nil
			}

			closure, err := ctx.ByFunctionClosure("min_by", "expr", TypeConstraint{value.KindNumber, value.KindString}, args[1])
			if err != nil {
				return value.Value{}, err
			}

			keys, err := evalSortKeys("min_by", items, closure)
			if err != nil {
				return value.Value{}, err
			}

			best := 0

			for i := 1; i < len(items); i++ {
				if keyLess(keys[i], keys[best]) {
					best = i
				}
			}

			return items[best], nil
		},
	})

	r.Register(&Function{
		Name: "pad_left",
		Params: Signature{
			{Name: "subject", Kind: Required, Types: TypeConstraint{value.KindString}},
			{Name: "width", Kind: Required, Types: TypeConstraint{value.KindNumber}},
			{Name: "pad", Kind: Optional, Types: TypeConstraint{value.KindString}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return padString(args, ctx, true)
		},
	})

	r.Register(&Function{
		Name: "pad_right",
		Params: Signature{
			{Name: "subject", Kind: Required, Types: TypeConstraint{value.KindString}},
			{Name: "width", Kind: Required, Types: TypeConstraint{value.KindNumber}},
			{Name: "pad", Kind: Optional, Types: TypeConstraint{value.KindString}},
		},
		Execute: func(args []value.Value, ctx *Context) (value.Value, error) {
			return padString(args, ctx, false)
		},
	})
}

func padString(args []value.Value, ctx *Context, left bool) (value.Value, error) {
	name := "pad_right"
	if left {
		name = "pad_left"
	}

	width, err := requireNonNegativeInt(name, "width", args[1], ctx.Position)
	if err != nil {
		return value.Value{}, err
	}

	pad := " "
	if len(args) > 2 {
		pad = args[2].Str()
		if pad == "" {
			return value.Value{}, jmerr.NewInvalidValue().
				ForFunction(name).
				ForParameter("pad").
				Expected("a non-empty pad string").
				Received(args[2]).
				At(ctx.Position).
				Build()
		}
	}

	subject := []rune(args[0].Str())
	padRunes := []rune(pad)

	need := width - len(subject)
	if need <= 0 {
		return args[0], nil
	}

	var b strings.Builder

	fill := make([]rune, need)
	for i := range fill {
		fill[i] = padRunes[i%len(padRunes)]
	}

	if left {
		b.WriteString(string(fill))
		b.WriteString(string(subject))
	} else {
		b.WriteString(string(subject))
		b.WriteString(string(fill))
	}

	return value.Str(b.String()), nil
}
