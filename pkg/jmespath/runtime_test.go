package jmespath

import (
	"strings"
	"testing"

	"github.com/jmespath-go/jmespath/internal/value"
	"github.com/jmespath-go/jmespath/pkg/eval"
	"github.com/jmespath-go/jmespath/pkg/registry"
)

func TestRuntimeSearch(t *testing.T) {
	rt := Create()

	root, err := eval.DecodeJSON(strings.NewReader(`{"foo":{"bar":42}}`))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	got, err := rt.Search("foo.bar", root)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if got.Num() != 42 {
		t.Fatalf("got %v, want 42", got)
	}
}

func TestRuntimeParseThenEvaluateReusesAST(t *testing.T) {
	rt := Create()

	parsed, err := rt.Parse("a + b")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	first, err := eval.DecodeJSON(strings.NewReader(`{"a":1,"b":2}`))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	second, err := eval.DecodeJSON(strings.NewReader(`{"a":10,"b":20}`))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	got1, err := parsed.Evaluate(first)
	if err != nil {
		t.Fatalf("Evaluate(first): %v", err)
	}

	got2, err := parsed.Evaluate(second)
	if err != nil {
		t.Fatalf("Evaluate(second): %v", err)
	}

	if got1.Num() != 3 || got2.Num() != 30 {
		t.Fatalf("got %v, %v, want 3, 30", got1, got2)
	}
}

func TestRuntimeShared(t *testing.T) {
	rt := Shared()

	got, err := rt.Search("`1` + `2`", value.Null)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if got.Num() != 3 {
		t.Fatalf("got %v, want 3", got)
	}
}

func TestRuntimeSharedRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Register on a shared runtime to panic")
		}
	}()

	Shared().Register(&registry.Function{
		Name:   "custom",
		Params: registry.Signature{},
		Execute: func(args []value.Value, ctx *registry.Context) (value.Value, error) {
			return value.Null, nil
		},
	})
}

func TestRuntimeCreateAllowsRegister(t *testing.T) {
	rt := Create()

	rt.Register(&registry.Function{
		Name:   "double",
		Params: registry.Signature{{Name: "n", Kind: registry.Required, Types: registry.TypeConstraint{value.KindNumber}}},
		Execute: func(args []value.Value, ctx *registry.Context) (value.Value, error) {
			return value.Num(args[0].Num() * 2), nil
		},
	})

	got, err := rt.Search("double(`21`)", value.Null)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if got.Num() != 42 {
		t.Fatalf("got %v, want 42", got)
	}
}

func TestASTStringRendersParsedExpression(t *testing.T) {
	rt := Create()

	parsed, err := rt.Parse("foo.bar")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if parsed.String() == "" {
		t.Fatal("expected a non-empty rendering")
	}
}
