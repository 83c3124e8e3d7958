// Package value provides the runtime value system for the JMESPath engine.
//
// This package defines the tagged-sum Value type that both JSON input and
// every JMESPath expression result are represented as. The value system is
// immutable: operations never mutate an existing Value, they return a new
// one.
//
// Value Types:
//
// Primitive:
//   - Null: the null value
//   - Boolean: true/false
//   - Number: a finite, non-NaN float64
//   - String: a UTF-8 string, indexed and measured by Unicode scalar value
//
// Composite:
//   - Array: an ordered sequence of Values
//   - Object: a string-keyed mapping, iteration order controlled by
//     PreserveInsertionOrder
//
// Extensibility:
//   - Expression: an unevaluated AST fragment, produced only by the `&expr`
//     operator and consumed only by functions declaring an expression-typed
//     parameter
//
// Equality is structural and deep: arrays compare order-sensitively, objects
// order-independently, numbers within an absolute epsilon, and two
// Expression values are never equal to each other.
package value
