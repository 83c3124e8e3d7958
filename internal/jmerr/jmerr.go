// Package jmerr implements the single Error type used throughout the
// JMESPath engine, along with a per-category builder for each error Kind.
//
// The builder pattern here is grounded on original_source/src/jmespath/errors
// (error_builder.rs and its per-kind implementations): each Kind gets a
// fluent builder that fills in the fields needed to format that kind's
// canonical message, then Build() produces the immutable Error value. Go has
// no trait objects, so the Rust ErrorBuilder/FunctionErrorBuilder/...
// trait hierarchy collapses into one concrete builder type per Kind with the
// superset of fields any of them need; unused fields on a given builder are
// simply never set.
package jmerr

import (
	"fmt"
	"strings"

	"github.com/jmespath-go/jmespath/internal/pos"
	"github.com/jmespath-go/jmespath/internal/value"
)

// Kind categorizes an Error.
type Kind int

const (
	KindInvalidArity Kind = iota
	KindInvalidType
	KindInvalidValue
	KindNotANumber
	KindSyntax
	KindUndefinedVariable
	KindUnknownFunction
)

// slug returns the kebab-case name used both in Error.Error() and as the
// sort key for Kind ordering.
func (k Kind) slug() string {
	switch k {
	case KindInvalidArity:
		return "invalid-arity"
	case KindInvalidType:
		return "invalid-type"
	case KindInvalidValue:
		return "invalid-value"
	case KindNotANumber:
		return "not-a-number"
	case KindSyntax:
		return "syntax"
	case KindUndefinedVariable:
		return "undefined-variable"
	case KindUnknownFunction:
		return "unknown-function"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) String() string { return k.slug() }

// Error is the single error type produced anywhere in the engine: the
// lexer, the parser, the interpreter and every built-in function.
type Error struct {
	Kind     Kind
	Message  string
	Position pos.Position
	hasPos   bool
}

// HasPosition reports whether e carries a source position.
func (e Error) HasPosition() bool { return e.hasPos }

// Error implements the error interface, rendering the
// "Error(line, column): kind, message" / "Error: kind, message" shape.
func (e Error) Error() string {
	if e.hasPos {
		return fmt.Sprintf("Error%s: %s, %s", e.Position, e.Kind, e.Message)
	}

	return fmt.Sprintf("Error: %s, %s", e.Kind, e.Message)
}

// WithPosition returns a copy of e with its position set. It is used by the
// parser and evaluator to annotate an error bubbled up from a builder that
// had no position available (typically because it is built far from any
// AST node, such as inside a function implementation).
func (e Error) WithPosition(p pos.Position) Error {
	e.Position = p
	e.hasPos = true

	return e
}

// Equal reports structural equality: positions are compared only when both
// errors carry one.
func Equal(a, b Error) bool {
	if a.Kind != b.Kind || a.Message != b.Message {
		return false
	}

	if a.hasPos && b.hasPos {
		return a.Position == b.Position
	}

	return true
}

// Compare orders errors by Kind slug, then by Message, matching the
// original implementation's Ord impl. It returns a negative number, zero,
// or a positive number as a < b, a == b, or a > b.
func Compare(a, b Error) int {
	if c := strings.Compare(a.Kind.slug(), b.Kind.slug()); c != 0 {
		return c
	}

	return strings.Compare(a.Message, b.Message)
}

// ============================================================================
// Syntax
// ============================================================================

// SyntaxBuilder builds a Syntax error.
type SyntaxBuilder struct {
	reason string
	pos    pos.Position
	hasPos bool
}

// NewSyntax starts building a Syntax error.
func NewSyntax() *SyntaxBuilder { return &SyntaxBuilder{} }

func (b *SyntaxBuilder) ForReason(reason string) *SyntaxBuilder {
	b.reason = reason
	return b
}

func (b *SyntaxBuilder) At(p pos.Position) *SyntaxBuilder {
	b.pos = p
	b.hasPos = true

	return b
}

func (b *SyntaxBuilder) Build() Error {
	return Error{Kind: KindSyntax, Message: b.reason, Position: b.pos, hasPos: b.hasPos}
}

// Syntax is a convenience constructor equivalent to NewSyntax().ForReason(reason).Build().
func Syntax(reason string) Error {
	return NewSyntax().ForReason(reason).Build()
}

// SyntaxAt is a convenience constructor for a positioned Syntax error.
func SyntaxAt(reason string, p pos.Position) Error {
	return NewSyntax().ForReason(reason).At(p).Build()
}

// ============================================================================
// InvalidArity
// ============================================================================

// InvalidArityBuilder builds an InvalidArity error.
type InvalidArityBuilder struct {
	functionName string
	count        int
	minCount     *int
	maxCount     *int
	variadic     bool
	pos          pos.Position
	hasPos       bool
}

func NewInvalidArity() *InvalidArityBuilder { return &InvalidArityBuilder{} }

func (b *InvalidArityBuilder) ForFunction(name string) *InvalidArityBuilder {
	b.functionName = name
	return b
}

func (b *InvalidArityBuilder) MinExpected(n int) *InvalidArityBuilder {
	b.minCount = &n
	return b
}

func (b *InvalidArityBuilder) MaxExpected(n int) *InvalidArityBuilder {
	b.maxCount = &n
	return b
}

func (b *InvalidArityBuilder) Supplied(n int) *InvalidArityBuilder {
	b.count = n
	return b
}

func (b *InvalidArityBuilder) Variadic(v bool) *InvalidArityBuilder {
	b.variadic = v
	return b
}

func (b *InvalidArityBuilder) At(p pos.Position) *InvalidArityBuilder {
	b.pos = p
	b.hasPos = true

	return b
}

func (b *InvalidArityBuilder) Build() Error {
	message := ""

	if b.minCount != nil {
		more := ""
		if b.variadic {
			more = "or more "
		}

		specified := fmt.Sprintf("only %d", b.count)
		if b.count == 0 {
			specified = "none"
		}

		plural := ""
		if *b.minCount > 1 {
			plural = "s"
		}

		message = fmt.Sprintf("the function '%s' expects %d argument%s %sbut %s were specified",
			b.functionName, *b.minCount, plural, more, specified)
	}

	if b.maxCount != nil {
		plural := ""
		if *b.maxCount > 1 {
			plural = "s"
		}

		message = fmt.Sprintf("the function '%s' expects at most %d argument%s but %d were specified",
			b.functionName, *b.maxCount, plural, b.count)
	}

	return Error{Kind: KindInvalidArity, Message: message, Position: b.pos, hasPos: b.hasPos}
}

// TooFewArguments is a convenience constructor matching the original
// implementation's Error::too_few_arguments.
func TooFewArguments(functionName string, minCount, count int, variadic bool) Error {
	return NewInvalidArity().
		ForFunction(functionName).
		MinExpected(minCount).
		Supplied(count).
		Variadic(variadic).
		Build()
}

// TooManyArguments is a convenience constructor matching the original
// implementation's Error::too_many_arguments.
func TooManyArguments(functionName string, maxCount, count int) Error {
	return NewInvalidArity().
		ForFunction(functionName).
		MaxExpected(maxCount).
		Supplied(count).
		Build()
}

// ============================================================================
// InvalidType
// ============================================================================

// InvalidTypeBuilder builds an InvalidType error.
type InvalidTypeBuilder struct {
	functionName  string
	parameterName string
	isExpRef      bool
	expected      []value.Kind
	received      value.Value
	hasReceived   bool
	pos           pos.Position
	hasPos        bool
}

func NewInvalidType() *InvalidTypeBuilder { return &InvalidTypeBuilder{} }

func (b *InvalidTypeBuilder) ForFunction(name string) *InvalidTypeBuilder {
	b.functionName = name
	return b
}

func (b *InvalidTypeBuilder) ForParameter(name string) *InvalidTypeBuilder {
	b.parameterName = name
	b.isExpRef = false

	return b
}

func (b *InvalidTypeBuilder) ForExpressionParameter(name string) *InvalidTypeBuilder {
	b.parameterName = name
	b.isExpRef = true

	return b
}

func (b *InvalidTypeBuilder) ExpectedDataTypes(kinds ...value.Kind) *InvalidTypeBuilder {
	b.expected = append(b.expected, kinds...)
	return b
}

func (b *InvalidTypeBuilder) Received(v value.Value) *InvalidTypeBuilder {
	b.received = v
	b.hasReceived = true

	return b
}

func (b *InvalidTypeBuilder) At(p pos.Position) *InvalidTypeBuilder {
	b.pos = p
	b.hasPos = true

	return b
}

func (b *InvalidTypeBuilder) Build() Error {
	names := make([]string, len(b.expected))
	for i, k := range b.expected {
		names[i] = k.String()
	}

	var message string

	if b.isExpRef {
		list := names[0]
		if len(names) > 1 {
			list = "[" + strings.Join(names, "|") + "]"
		}

		message = fmt.Sprintf(
			"while calling function '%s', the expression parameter '$%s' is expected to be expression->%s but the expression evaluated to '%s' (of type %s) instead",
			b.functionName, b.parameterName, list, b.received, b.received.Kind())
	} else {
		list := strings.Join(names, ", ")
		if len(names) > 1 {
			list = "either one of [" + list + "]"
		}

		message = fmt.Sprintf(
			"while calling function '%s', the parameter '$%s' is expected to be %s but the value '%s' (of type %s) was received instead",
			b.functionName, b.parameterName, list, b.received, b.received.Kind())
	}

	return Error{Kind: KindInvalidType, Message: message, Position: b.pos, hasPos: b.hasPos}
}

// ============================================================================
// InvalidValue
// ============================================================================

// InvalidValueBuilder builds an InvalidValue error.
type InvalidValueBuilder struct {
	functionName  string
	parameterName string
	expected      string
	received      value.Value
	hasReceived   bool
	pos           pos.Position
	hasPos        bool
}

func NewInvalidValue() *InvalidValueBuilder { return &InvalidValueBuilder{} }

func (b *InvalidValueBuilder) ForFunction(name string) *InvalidValueBuilder {
	b.functionName = name
	return b
}

func (b *InvalidValueBuilder) ForParameter(name string) *InvalidValueBuilder {
	b.parameterName = name
	return b
}

func (b *InvalidValueBuilder) Expected(reason string) *InvalidValueBuilder {
	b.expected = reason
	return b
}

func (b *InvalidValueBuilder) Received(v value.Value) *InvalidValueBuilder {
	b.received = v
	b.hasReceived = true

	return b
}

func (b *InvalidValueBuilder) At(p pos.Position) *InvalidValueBuilder {
	b.pos = p
	b.hasPos = true

	return b
}

func (b *InvalidValueBuilder) Build() Error {
	var message string

	if b.hasReceived {
		message = fmt.Sprintf(
			"while calling function '%s', the parameter '$%s' evaluated to '%s' (of type %s): expected %s instead",
			b.functionName, b.parameterName, b.received, b.received.Kind(), b.expected)
	} else {
		message = fmt.Sprintf(
			"while calling function '%s', the value for parameter '$%s' is invalid: expected %s instead",
			b.functionName, b.parameterName, b.expected)
	}

	return Error{Kind: KindInvalidValue, Message: message, Position: b.pos, hasPos: b.hasPos}
}

// ============================================================================
// NotANumber
// ============================================================================

// NotANumberBuilder builds a NotANumber error.
type NotANumberBuilder struct {
	reason string
	pos    pos.Position
	hasPos bool
}

func NewNotANumber() *NotANumberBuilder { return &NotANumberBuilder{} }

func (b *NotANumberBuilder) ForReason(reason string) *NotANumberBuilder {
	b.reason = reason
	return b
}

func (b *NotANumberBuilder) At(p pos.Position) *NotANumberBuilder {
	b.pos = p
	b.hasPos = true

	return b
}

func (b *NotANumberBuilder) Build() Error {
	return Error{Kind: KindNotANumber, Message: b.reason, Position: b.pos, hasPos: b.hasPos}
}

// NotANumber is a convenience constructor.
func NotANumber(reason string) Error {
	return NewNotANumber().ForReason(reason).Build()
}

// ============================================================================
// UndefinedVariable
// ============================================================================

// UndefinedVariableBuilder builds an UndefinedVariable error.
type UndefinedVariableBuilder struct {
	variableName string
	pos          pos.Position
	hasPos       bool
}

func NewUndefinedVariable() *UndefinedVariableBuilder { return &UndefinedVariableBuilder{} }

func (b *UndefinedVariableBuilder) ForVariable(name string) *UndefinedVariableBuilder {
	b.variableName = name
	return b
}

func (b *UndefinedVariableBuilder) At(p pos.Position) *UndefinedVariableBuilder {
	b.pos = p
	b.hasPos = true

	return b
}

func (b *UndefinedVariableBuilder) Build() Error {
	message := fmt.Sprintf("the variable '%s' is not defined", b.variableName)
	return Error{Kind: KindUndefinedVariable, Message: message, Position: b.pos, hasPos: b.hasPos}
}

// UndefinedVariable is a convenience constructor.
func UndefinedVariable(name string) Error {
	return NewUndefinedVariable().ForVariable(name).Build()
}

// ============================================================================
// UnknownFunction
// ============================================================================

// UnknownFunctionBuilder builds an UnknownFunction error.
type UnknownFunctionBuilder struct {
	functionName string
	pos          pos.Position
	hasPos       bool
}

func NewUnknownFunction() *UnknownFunctionBuilder { return &UnknownFunctionBuilder{} }

func (b *UnknownFunctionBuilder) ForFunction(name string) *UnknownFunctionBuilder {
	b.functionName = name
	return b
}

func (b *UnknownFunctionBuilder) At(p pos.Position) *UnknownFunctionBuilder {
	b.pos = p
	b.hasPos = true

	return b
}

func (b *UnknownFunctionBuilder) Build() Error {
	message := fmt.Sprintf("the function '%s' does not exist", b.functionName)
	return Error{Kind: KindUnknownFunction, Message: message, Position: b.pos, hasPos: b.hasPos}
}

// UnknownFunction is a convenience constructor.
func UnknownFunction(name string) Error {
	return NewUnknownFunction().ForFunction(name).Build()
}
