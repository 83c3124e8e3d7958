package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cmpValue is a go-cmp Comparer delegating to Equal, so cmp.Diff can be used
// on structures containing Value (slices of Pair, []Value, and so on)
// without cmp reaching into Value's unexported fields.
var cmpValue = cmp.Comparer(Equal)

func TestObjWithAddsOrOverwritesPreservingOrder(t *testing.T) {
	base := NewObj([]Pair{
		{Key: "a", Value: Num(1)},
		{Key: "b", Value: Num(2)},
	})

	overwritten := base.With("a", Num(99))
	want := []Pair{
		{Key: "a", Value: Num(99)},
		{Key: "b", Value: Num(2)},
	}

	if diff := cmp.Diff(want, overwritten.Pairs(), cmpValue); diff != "" {
		t.Fatalf("With overwrite mismatch (-want +got):\n%s", diff)
	}

	appended := base.With("c", Num(3))
	want = []Pair{
		{Key: "a", Value: Num(1)},
		{Key: "b", Value: Num(2)},
		{Key: "c", Value: Num(3)},
	}

	if diff := cmp.Diff(want, appended.Pairs(), cmpValue); diff != "" {
		t.Fatalf("With append mismatch (-want +got):\n%s", diff)
	}

	// base itself must be untouched by either With call.
	want = []Pair{
		{Key: "a", Value: Num(1)},
		{Key: "b", Value: Num(2)},
	}

	if diff := cmp.Diff(want, base.Pairs(), cmpValue); diff != "" {
		t.Fatalf("base mutated by With (-want +got):\n%s", diff)
	}
}

func TestObjPairsRespectsPreserveInsertionOrder(t *testing.T) {
	obj := NewObj([]Pair{
		{Key: "z", Value: Str("last-declared")},
		{Key: "a", Value: Str("first-declared")},
	})

	want := []Pair{
		{Key: "z", Value: Str("last-declared")},
		{Key: "a", Value: Str("first-declared")},
	}

	if diff := cmp.Diff(want, obj.Pairs(), cmpValue); diff != "" {
		t.Fatalf("insertion-order Pairs mismatch (-want +got):\n%s", diff)
	}

	PreserveInsertionOrder = false
	defer func() { PreserveInsertionOrder = true }()

	want = []Pair{
		{Key: "a", Value: Str("first-declared")},
		{Key: "z", Value: Str("last-declared")},
	}

	if diff := cmp.Diff(want, obj.Pairs(), cmpValue); diff != "" {
		t.Fatalf("lexical-order Pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestEqualArraysAreOrderSensitive(t *testing.T) {
	a := Arr([]Value{Num(1), Num(2)})
	b := Arr([]Value{Num(2), Num(1)})

	if diff := cmp.Diff(a, b, cmpValue); diff == "" {
		t.Fatalf("expected reordered arrays to differ under Equal")
	}
}

func TestEqualObjectsAreOrderIndependent(t *testing.T) {
	a := ObjFromPairs([]Pair{{Key: "x", Value: Num(1)}, {Key: "y", Value: Num(2)}})
	b := ObjFromPairs([]Pair{{Key: "y", Value: Num(2)}, {Key: "x", Value: Num(1)}})

	if diff := cmp.Diff(a, b, cmpValue); diff != "" {
		t.Fatalf("expected reordered objects to be Equal, diff (-a +b):\n%s", diff)
	}
}
