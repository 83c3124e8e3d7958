package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmespath-go/jmespath/internal/pos"
)

// Node represents any node in the JMESPath AST. Every node carries the
// source position of the token that introduced it.
type Node interface {
	// String returns a human-readable, JMESPath-like rendering of the node.
	// It is used for CLI debugging output and is not guaranteed to
	// re-tokenize byte-for-byte (see DESIGN.md Open Question resolution).
	String() string

	// Position returns the source position of the node, or pos.Unknown.
	Position() pos.Position
}

type Base struct {
	at pos.Position
}

func (b Base) Position() pos.Position { return b.at }

// At attaches a position to a freshly built node.
func At(p pos.Position) Base { return Base{at: p} }

// ============================================================================
// Leaves
// ============================================================================

// Current represents the `@` current-node reference.
type Current struct{ Base }

func (Current) String() string { return "@" }

// Root is the `$` reference: it evaluates to the document root, whatever
// the current value is.
type Root struct{ Base }

func (Root) String() string { return "$" }

// Identifier is an unquoted field name reference, e.g. `foo`.
type Identifier struct {
	Base
	Name string
}

func (n *Identifier) String() string { return n.Name }

// QuotedIdentifier is a double-quoted field name reference. Raw retains the
// original lexeme including its surrounding quotes; escape decoding happens
// at evaluation time per spec §4.5.
type QuotedIdentifier struct {
	Base
	Raw string
}

func (n *QuotedIdentifier) String() string { return n.Raw }

// RawStringLiteral is a `'...'` literal: always a string, no escape
// processing beyond `\\` and `\'`.
type RawStringLiteral struct {
	Base
	Value string
}

func (n *RawStringLiteral) String() string {
	return "'" + strings.ReplaceAll(n.Value, "'", `\'`) + "'"
}

// JSONLiteral is a `` `...` `` literal: the raw text is parsed as JSON at
// evaluation time.
type JSONLiteral struct {
	Base
	Raw string
}

func (n *JSONLiteral) String() string { return "`" + n.Raw + "`" }

// NumberLiteral is a signed integer literal, used only where the grammar
// demands one: array indices and slice bounds.
type NumberLiteral struct {
	Base
	Value int64
}

func (n *NumberLiteral) String() string { return strconv.FormatInt(n.Value, 10) }

// VariableRef is a `$name` reference into the scope chain.
type VariableRef struct {
	Base
	Name string
}

func (n *VariableRef) String() string { return "$" + n.Name }

// ============================================================================
// Structural composition
// ============================================================================

// SubExpression is `LHS . RHS`; evaluation short-circuits to Null when LHS
// evaluates to Null.
type SubExpression struct {
	Base
	LHS, RHS Node
}

func (n *SubExpression) String() string { return n.LHS.String() + "." + n.RHS.String() }

// Pipe is `LHS | RHS`; unlike SubExpression it never short-circuits on Null
// and is never folded into a projection's tail.
type Pipe struct {
	Base
	LHS, RHS Node
}

func (n *Pipe) String() string { return n.LHS.String() + " | " + n.RHS.String() }

// Paren is a parenthesized expression, transparent at evaluation time.
type Paren struct {
	Base
	Inner Node
}

func (n *Paren) String() string { return "(" + n.Inner.String() + ")" }

// Index is `left[N]`; Left is nil when the index applies to the current
// value, as for a bare `[N]` or an index folded into a projection's Right.
type Index struct {
	Base
	Left  Node
	Value int64
}

func (n *Index) String() string {
	left := ""
	if n.Left != nil {
		left = n.Left.String()
	}

	return fmt.Sprintf("%s[%d]", left, n.Value)
}

// ============================================================================
// Operators
// ============================================================================

// ArithOp enumerates arithmetic operators.
type ArithOp int

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
	ArithDiv
	ArithModulo
	ArithFloorDiv
)

func (op ArithOp) String() string {
	switch op {
	case ArithAdd:
		return "+"
	case ArithSub:
		return "-"
	case ArithMul:
		return "*"
	case ArithDiv:
		return "/"
	case ArithModulo:
		return "%"
	case ArithFloorDiv:
		return "//"
	default:
		return fmt.Sprintf("ArithOp(%d)", int(op))
	}
}

// Arithmetic is a binary or unary (LHS == nil) arithmetic expression. Unary
// `+`/`-` are represented with Op == ArithAdd/ArithSub and LHS == nil.
type Arithmetic struct {
	Base
	LHS Node // nil for unary +/-
	Op  ArithOp
	RHS Node
}

func (n *Arithmetic) String() string {
	if n.LHS == nil {
		return n.Op.String() + n.RHS.String()
	}

	return fmt.Sprintf("(%s %s %s)", n.LHS, n.Op, n.RHS)
}

// CompareOp enumerates comparison operators.
type CompareOp int

const (
	CompareEqual CompareOp = iota
	CompareNotEqual
	CompareLessThan
	CompareLessThanOrEqual
	CompareGreaterThan
	CompareGreaterThanOrEqual
)

func (op CompareOp) String() string {
	switch op {
	case CompareEqual:
		return "=="
	case CompareNotEqual:
		return "!="
	case CompareLessThan:
		return "<"
	case CompareLessThanOrEqual:
		return "<="
	case CompareGreaterThan:
		return ">"
	case CompareGreaterThanOrEqual:
		return ">="
	default:
		return fmt.Sprintf("CompareOp(%d)", int(op))
	}
}

// Comparator is a binary comparison expression.
type Comparator struct {
	Base
	LHS, RHS Node
	Op       CompareOp
}

func (n *Comparator) String() string {
	return fmt.Sprintf("(%s %s %s)", n.LHS, n.Op, n.RHS)
}

// LogicalOp enumerates logical operators, including unary Not.
type LogicalOp int

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
	LogicalNot
)

func (op LogicalOp) String() string {
	switch op {
	case LogicalAnd:
		return "&&"
	case LogicalOr:
		return "||"
	case LogicalNot:
		return "!"
	default:
		return fmt.Sprintf("LogicalOp(%d)", int(op))
	}
}

// Logical is a binary (&&, ||) or unary (Not, LHS == nil) logical
// expression.
type Logical struct {
	Base
	LHS Node // nil when Op == LogicalNot
	Op  LogicalOp
	RHS Node
}

func (n *Logical) String() string {
	if n.Op == LogicalNot {
		return "!" + n.RHS.String()
	}

	return fmt.Sprintf("(%s %s %s)", n.LHS, n.Op, n.RHS)
}

// ============================================================================
// Functions and expression references
// ============================================================================

// FunctionCall is a call to a built-in or registered function.
type FunctionCall struct {
	Base
	Name string
	Args []Node
}

func (n *FunctionCall) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}

	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))
}

// ExpressionRef is `&expr`: an unevaluated AST captured as a first-class
// value, consumable only by functions declaring an expression-typed
// parameter.
type ExpressionRef struct {
	Base
	Inner Node
}

func (n *ExpressionRef) String() string { return "&" + n.Inner.String() }

// ============================================================================
// Multi-select
// ============================================================================

// MultiSelectList is `[ e1, e2, ... ]` evaluated against the current value.
type MultiSelectList struct {
	Base
	Items []Node
}

func (n *MultiSelectList) String() string {
	items := make([]string, len(n.Items))
	for i, it := range n.Items {
		items[i] = it.String()
	}

	return "[" + strings.Join(items, ", ") + "]"
}

// HashPair is a single `key: expr` entry of a MultiSelectHash.
type HashPair struct {
	// Key is the key name, already decoded by the parser; Quoted only
	// records whether the source used a quoted identifier.
	Key    string
	Quoted bool
	Value  Node
}

// MultiSelectHash is `{ k1: e1, k2: e2, ... }` evaluated against the
// current value; iteration order follows declaration order.
type MultiSelectHash struct {
	Base
	Pairs []HashPair
}

func (n *MultiSelectHash) String() string {
	parts := make([]string, len(n.Pairs))
	for i, p := range n.Pairs {
		parts[i] = fmt.Sprintf("%s: %s", p.Key, p.Value)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// ============================================================================
// Let
// ============================================================================

// LetBinding is a single `$var = expr` entry of a Let node.
type LetBinding struct {
	Var   string
	Value Node
}

// Let is `let $v1 = e1, $v2 = e2, ... in body`.
type Let struct {
	Base
	Bindings []LetBinding
	Body     Node
}

func (n *Let) String() string {
	parts := make([]string, len(n.Bindings))
	for i, b := range n.Bindings {
		parts[i] = fmt.Sprintf("$%s = %s", b.Var, b.Value)
	}

	return fmt.Sprintf("let %s in %s", strings.Join(parts, ", "), n.Body)
}

// ============================================================================
// Projections
// ============================================================================

// ProjKind tags the four projection shapes named in spec §4.3/§4.5.
type ProjKind int

const (
	ProjListWildcard ProjKind = iota
	ProjFilter
	ProjFlatten
	ProjSlice
)

func (k ProjKind) String() string {
	switch k {
	case ProjListWildcard:
		return "ListWildcard"
	case ProjFilter:
		return "Filter"
	case ProjFlatten:
		return "Flatten"
	case ProjSlice:
		return "Slice"
	default:
		return fmt.Sprintf("ProjKind(%d)", int(k))
	}
}

// Projection is the canonical 3-tuple [kind, left, right] shape described in
// spec §4.3: Left is the sub-expression being projected (nil when this
// projection sits at the head of the chain, i.e. projects the current
// value), Right is the continuation applied to each projected element (nil
// to return the intermediate array as-is).
type Projection struct {
	Base
	Kind      ProjKind
	Predicate Node // set when Kind == ProjFilter
	Start     *int64
	Stop      *int64
	Step      *int64 // set when Kind == ProjSlice
	Left      Node
	Right     Node
}

func (n *Projection) String() string {
	left := "<current>"
	if n.Left != nil {
		left = n.Left.String()
	}

	var mid string

	switch n.Kind {
	case ProjListWildcard:
		mid = "[*]"
	case ProjFlatten:
		mid = "[]"
	case ProjFilter:
		mid = fmt.Sprintf("[?%s]", n.Predicate)
	case ProjSlice:
		mid = fmt.Sprintf("[%s:%s:%s]", sliceBound(n.Start), sliceBound(n.Stop), sliceBound(n.Step))
	}

	if n.Right == nil {
		return left + mid
	}

	return left + mid + "." + n.Right.String()
}

func sliceBound(b *int64) string {
	if b == nil {
		return ""
	}

	return strconv.FormatInt(*b, 10)
}

// HashWildcardProjection is the 2-tuple [left, right] shape for `*` applied
// to an object.
type HashWildcardProjection struct {
	Base
	Left  Node
	Right Node
}

func (n *HashWildcardProjection) String() string {
	left := "<current>"
	if n.Left != nil {
		left = n.Left.String()
	}

	if n.Right == nil {
		return left + ".*"
	}

	return left + ".*." + n.Right.String()
}
