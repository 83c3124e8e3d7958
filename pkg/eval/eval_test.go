package eval

import (
	"strings"
	"testing"

	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/value"
	"github.com/jmespath-go/jmespath/pkg/lexer"
	"github.com/jmespath-go/jmespath/pkg/parser"
	"github.com/jmespath-go/jmespath/pkg/registry"
)

func mustEval(t *testing.T, jsonInput, expr string) value.Value {
	t.Helper()

	root, err := DecodeJSON(strings.NewReader(jsonInput))
	if err != nil {
		t.Fatalf("DecodeJSON(%q): %v", jsonInput, err)
	}

	node, err := parser.New(lexer.New(expr)).Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", expr, err)
	}

	it := New(root, registry.NewWithBuiltins())

	result, err := it.Evaluate(node)
	if err != nil {
		t.Fatalf("Evaluate(%q): %v", expr, err)
	}

	return result
}

func mustFail(t *testing.T, jsonInput, expr string) error {
	t.Helper()

	root, err := DecodeJSON(strings.NewReader(jsonInput))
	if err != nil {
		t.Fatalf("DecodeJSON(%q): %v", jsonInput, err)
	}

	node, err := parser.New(lexer.New(expr)).Parse()
	if err != nil {
		return err
	}

	it := New(root, registry.NewWithBuiltins())

	_, evalErr := it.Evaluate(node)
	if evalErr == nil {
		t.Fatalf("Evaluate(%q): expected an error, got none", expr)
	}

	return evalErr
}

// End-to-end scenarios E1-E7.

func TestEndToEndScenarios(t *testing.T) {
	t.Run("E1 pipe after subexpression", func(t *testing.T) {
		got := mustEval(t, `{"foo":{"bar":{"baz":true}}}`, `foo.bar | baz`)
		if got.Kind() != value.KindBoolean || !got.Bool() {
			t.Fatalf("got %v, want true", got)
		}
	})

	t.Run("E2 filter projection", func(t *testing.T) {
		got := mustEval(t, `[{"ok":true},{"ok":false}]`, `[?ok]`)
		if got.Kind() != value.KindArray || len(got.Items()) != 1 {
			t.Fatalf("got %v, want a single-element array", got)
		}

		elem := got.Items()[0]

		v, ok := elem.Object().Get("ok")
		if !ok || !v.Bool() {
			t.Fatalf("got %v, want {\"ok\":true}", elem)
		}
	})

	t.Run("E3 flatten one level", func(t *testing.T) {
		got := mustEval(t, `{"foo":[1,[2,[3],[4,5],6]]}`, `foo[]`)

		items := got.Items()
		if len(items) != 5 {
			t.Fatalf("got %d items, want 5: %v", len(items), got)
		}

		if items[0].Num() != 1 || items[1].Num() != 2 || items[4].Num() != 6 {
			t.Fatalf("unexpected flatten result: %v", got)
		}

		if items[2].Kind() != value.KindArray || len(items[2].Items()) != 1 {
			t.Fatalf("expected items[2] == [3], got %v", items[2])
		}

		if items[3].Kind() != value.KindArray || len(items[3].Items()) != 2 {
			t.Fatalf("expected items[3] == [4,5], got %v", items[3])
		}
	})

	t.Run("E4 code point reverse slice", func(t *testing.T) {
		got := mustEval(t, `"élément"`, `[::-1]`)
		if got.Kind() != value.KindString || got.Str() != "tnemélé" {
			t.Fatalf("got %q, want %q", got.Str(), "tnemélé")
		}
	})

	t.Run("E5 floor division", func(t *testing.T) {
		got := mustEval(t, `{"foo":21,"bar":2}`, `foo // bar`)
		if got.Num() != 10 {
			t.Fatalf("got %v, want 10", got.Num())
		}
	})

	t.Run("E6 let scope chaining", func(t *testing.T) {
		got := mustEval(t, `{"bar":"bar","qux":"quux"}`, `let $foo = bar, $baz = qux in $baz`)
		if got.Str() != "quux" {
			t.Fatalf("got %q, want %q", got.Str(), "quux")
		}
	})

	t.Run("E7 min_by with expression reference", func(t *testing.T) {
		got := mustEval(t, `{"foo":[{"name":"alice","age":26},{"name":"bob","age":31}]}`, `min_by(foo, &age)`)

		name, ok := got.Object().Get("name")
		if !ok || name.Str() != "alice" {
			t.Fatalf("got %v, want the alice record", got)
		}
	})
}

// Error scenarios X2-X6 (X1, `foo.@`, is a parser-level grammar restriction
// rejected by pkg/parser's parseDot).

func TestErrorScenarios(t *testing.T) {
	t.Run("X2 unknown function", func(t *testing.T) {
		err := mustFail(t, `{}`, `unknown(1,2)`)
		asJMErr(t, err, jmerr.KindUnknownFunction)
	})

	t.Run("X3 too few arguments", func(t *testing.T) {
		err := mustFail(t, `{}`, `length()`)
		asJMErr(t, err, jmerr.KindInvalidArity)
	})

	t.Run("X4 wrong argument type", func(t *testing.T) {
		err := mustFail(t, `{"foo":"x"}`, `abs(foo)`)
		asJMErr(t, err, jmerr.KindInvalidType)
	})

	t.Run("X5 zero slice step", func(t *testing.T) {
		err := mustFail(t, `[1,2,3]`, `[::0]`)

		je, ok := err.(jmerr.Error)
		if !ok {
			t.Fatalf("got %T, want jmerr.Error", err)
		}

		if je.Kind != jmerr.KindInvalidValue && je.Kind != jmerr.KindSyntax {
			t.Fatalf("got kind %v, want InvalidValue or Syntax", je.Kind)
		}
	})

	t.Run("X6 undefined variable", func(t *testing.T) {
		err := mustFail(t, `{}`, `$undef`)
		asJMErr(t, err, jmerr.KindUndefinedVariable)
	})
}

func asJMErr(t *testing.T, err error, want jmerr.Kind) {
	t.Helper()

	je, ok := err.(jmerr.Error)
	if !ok {
		t.Fatalf("got %T (%v), want jmerr.Error", err, err)
	}

	if je.Kind != want {
		t.Fatalf("got kind %v, want %v", je.Kind, want)
	}
}

// Targeted coverage beyond the scenario tables.

func TestIdentifierOnNonObjectIsNull(t *testing.T) {
	got := mustEval(t, `[1,2,3]`, `foo`)
	if !got.IsNull() {
		t.Fatalf("got %v, want Null", got)
	}
}

func TestMissingKeyIsNull(t *testing.T) {
	got := mustEval(t, `{"a":1}`, `b`)
	if !got.IsNull() {
		t.Fatalf("got %v, want Null", got)
	}
}

func TestSubExpressionShortCircuitsOnNull(t *testing.T) {
	got := mustEval(t, `{"a":1}`, `missing.nested`)
	if !got.IsNull() {
		t.Fatalf("got %v, want Null", got)
	}
}

func TestOrderingComparatorOnNonNumbersIsNull(t *testing.T) {
	got := mustEval(t, `{"a":"x","b":1}`, `a < b`)
	if !got.IsNull() {
		t.Fatalf("got %v, want Null", got)
	}
}

func TestLogicalReturnsOperandNotBoolean(t *testing.T) {
	got := mustEval(t, `{"a":"hello"}`, "a || `false`")
	if got.Kind() != value.KindString || got.Str() != "hello" {
		t.Fatalf("got %v, want \"hello\"", got)
	}
}

func TestScopeShadowing(t *testing.T) {
	got := mustEval(t, `{}`, "let $x = `1` in let $x = `2` in $x")
	if got.Num() != 2 {
		t.Fatalf("got %v, want 2", got.Num())
	}
}

func TestHashWildcardDropsNulls(t *testing.T) {
	got := mustEval(t, `{"a":1,"b":null,"c":3}`, `*`)
	if len(got.Items()) != 2 {
		t.Fatalf("got %v, want 2 items", got)
	}
}

func TestNegativeIndex(t *testing.T) {
	got := mustEval(t, `[1,2,3]`, `[-1]`)
	if got.Num() != 3 {
		t.Fatalf("got %v, want 3", got.Num())
	}
}

func TestIndexOutOfRangeIsNull(t *testing.T) {
	got := mustEval(t, `[1,2,3]`, `[10]`)
	if !got.IsNull() {
		t.Fatalf("got %v, want Null", got)
	}
}

func TestFloorDivisionByZeroIsNotANumber(t *testing.T) {
	err := mustFail(t, `{"foo":21,"bar":0}`, `foo // bar`)
	asJMErr(t, err, jmerr.KindNotANumber)
}

func TestModuloByZeroIsNotANumber(t *testing.T) {
	err := mustFail(t, `{"foo":21,"bar":0}`, `foo % bar`)
	asJMErr(t, err, jmerr.KindNotANumber)
}

func TestFindFirstNegativeStartClampsRatherThanErrors(t *testing.T) {
	got := mustEval(t, `{}`, "find_first('subject string', 'string', `-6`)")
	if got.Num() != 8 {
		t.Fatalf("got %v, want 8", got)
	}
}

func TestFindFirstFarNegativeStartClampsToZero(t *testing.T) {
	got := mustEval(t, `{}`, "find_first('subject string', 'string', `-99`, `100`)")
	if got.Num() != 8 {
		t.Fatalf("got %v, want 8", got)
	}
}
