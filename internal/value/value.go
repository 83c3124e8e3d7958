package value

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/jmespath-go/jmespath/internal/ast"
)

// PreserveInsertionOrder controls how Obj.Keys iterates. The engine keeps
// object insertion order throughout evaluation by default, matching how
// JSON documents are decoded; toggling this to false switches every Object
// to lexical key order instead. See SPEC_FULL.md §10.3.
var PreserveInsertionOrder = true

// Kind tags the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
	KindExpression
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindExpression:
		return "expref"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the tagged-sum runtime value. The zero Value is Null.
//
// Only one of the typed fields is meaningful for a given Kind; callers use
// the typed accessors (Bool, Num, Str, Items, Object, Expr) rather than
// touching the fields directly.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Obj
	expr ast.Node
}

// Null is the shared null value.
var Null = Value{kind: KindNull}

// Bool constructs a Boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// Num constructs a Number value. It panics if f is NaN or infinite; callers
// that might produce such a float (arithmetic results) must use NumChecked
// instead and turn a false result into a NotANumber error.
func Num(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("value: Num called with non-finite float %v", f))
	}

	return Value{kind: KindNumber, n: f}
}

// NumChecked constructs a Number value, reporting ok=false when f is NaN or
// infinite rather than panicking.
func NumChecked(f float64) (Value, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, false
	}

	return Value{kind: KindNumber, n: f}, true
}

// Str constructs a String value.
func Str(s string) Value {
	return Value{kind: KindString, s: s}
}

// Arr constructs an Array value from a slice the caller gives up ownership
// of.
func Arr(items []Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{kind: KindArray, arr: items}
}

// ObjFromPairs constructs an Object value from key/value pairs, preserving
// the order they are given in.
func ObjFromPairs(pairs []Pair) Value {
	return Value{kind: KindObject, obj: newObj(pairs)}
}

// ObjFrom wraps an already-built Obj as a Value.
func ObjFrom(o *Obj) Value {
	return Value{kind: KindObject, obj: o}
}

// Expr constructs an Expression value wrapping an unevaluated AST node. Expr
// values are produced only by the `&expr` operator.
func Expr(node ast.Node) Value {
	return Value{kind: KindExpression, expr: node}
}

// Kind reports v's variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; only meaningful when Kind() ==
// KindBoolean.
func (v Value) Bool() bool { return v.b }

// Num returns the float64 payload; only meaningful when Kind() ==
// KindNumber. The returned float is always finite and non-NaN.
func (v Value) Num() float64 { return v.n }

// Str returns the string payload; only meaningful when Kind() == KindString.
func (v Value) Str() string { return v.s }

// Items returns the array payload; only meaningful when Kind() ==
// KindArray. The returned slice must not be mutated by callers.
func (v Value) Items() []Value { return v.arr }

// Object returns the object payload; only meaningful when Kind() ==
// KindObject.
func (v Value) Object() *Obj { return v.obj }

// Expr returns the wrapped AST node; only meaningful when Kind() ==
// KindExpression.
func (v Value) Expr() ast.Node { return v.expr }

// Truthy implements the JMESPath truth table: false, null, "", [] and {}
// are falsy; every number (0 included) and every expression reference is
// truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBoolean:
		return v.b
	case KindNumber:
		return true
	case KindString:
		return utf8.RuneCountInString(v.s) > 0
	case KindArray:
		return len(v.arr) > 0
	case KindObject:
		return v.obj.Len() > 0
	case KindExpression:
		return true
	default:
		return false
	}
}

// RuneLen returns the length of a String value measured in Unicode scalar
// values, not bytes, per spec §4.6.
func (v Value) RuneLen() int {
	return utf8.RuneCountInString(v.s)
}

const numberEpsilon = 1e-10

// Equal implements JMESPath's deep structural equality: arrays compare
// order-sensitively element by element, objects compare order-independently
// by key set and value, numbers compare within an absolute epsilon, and two
// Expression values are never equal, even to themselves.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBoolean:
		return a.b == b.b
	case KindNumber:
		return math.Abs(a.n-b.n) <= numberEpsilon
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}

		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		return objectsEqual(a.obj, b.obj)
	case KindExpression:
		return false
	default:
		return false
	}
}

func objectsEqual(a, b *Obj) bool {
	if a.Len() != b.Len() {
		return false
	}

	for _, k := range a.Keys() {
		av, _ := a.Get(k)

		bv, ok := b.Get(k)
		if !ok || !Equal(av, bv) {
			return false
		}
	}

	return true
}

// String renders v for CLI / debug output. It is not a JMESPath or JSON
// serializer: object key order follows Obj.Keys and expressions render via
// their AST's String method.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return fmt.Sprintf("%t", v.b)
	case KindNumber:
		return formatNumber(v.n)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}

		return "[" + joinComma(parts) + "]"
	case KindObject:
		pairs := v.obj.Pairs()
		parts := make([]string, len(pairs))

		for i, p := range pairs {
			parts[i] = fmt.Sprintf("%q: %s", p.Key, p.Value)
		}

		return "{" + joinComma(parts) + "}"
	case KindExpression:
		return "&" + v.expr.String()
	default:
		return "<invalid value>"
	}
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%d", int64(f))
	}

	return fmt.Sprintf("%g", f)
}

func joinComma(parts []string) string {
	out := ""

	for i, p := range parts {
		if i > 0 {
			out += ", "
		}

		out += p
	}

	return out
}

// Pair is a single object entry used when building an Obj.
type Pair struct {
	Key   string
	Value Value
}

// Obj is an ordered, string-keyed mapping. It is immutable once built: With
// returns a new Obj rather than mutating the receiver.
type Obj struct {
	keys   []string
	values map[string]Value
}

func newObj(pairs []Pair) *Obj {
	o := &Obj{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]Value, len(pairs)),
	}

	for _, p := range pairs {
		if _, exists := o.values[p.Key]; !exists {
			o.keys = append(o.keys, p.Key)
		}

		o.values[p.Key] = p.Value
	}

	return o
}

// NewObj builds an Obj from key/value pairs, preserving declaration order
// and keeping the last value for a repeated key.
func NewObj(pairs []Pair) *Obj {
	return newObj(pairs)
}

// EmptyObj is the shared empty object.
var EmptyObj = newObj(nil)

// Get looks up a key, reporting whether it was present.
func (o *Obj) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len reports the number of entries.
func (o *Obj) Len() int {
	return len(o.keys)
}

// Keys returns the object's keys, ordered per PreserveInsertionOrder:
// insertion order when true, lexical order when false. The returned slice
// must not be mutated.
func (o *Obj) Keys() []string {
	if PreserveInsertionOrder {
		return o.keys
	}

	sorted := make([]string, len(o.keys))
	copy(sorted, o.keys)
	sort.Strings(sorted)

	return sorted
}

// Pairs returns the object's entries in Keys() order.
func (o *Obj) Pairs() []Pair {
	keys := o.Keys()
	pairs := make([]Pair, len(keys))

	for i, k := range keys {
		pairs[i] = Pair{Key: k, Value: o.values[k]}
	}

	return pairs
}

// With returns a new Obj with key set to val, added or overwritten; o is
// left unmodified.
func (o *Obj) With(key string, val Value) *Obj {
	pairs := o.Pairs()

	for i, p := range pairs {
		if p.Key == key {
			pairs[i].Value = val
			return newObj(pairs)
		}
	}

	return newObj(append(pairs, Pair{Key: key, Value: val}))
}
