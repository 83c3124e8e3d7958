// Package registry implements the function runtime described in spec
// §4.6: parameter kinds, type constraints, arity and type checking, and the
// function context capability that lets an expression-reference argument be
// turned into a per-element closure ("by-function closure").
//
// A Registry is a name-to-Function table. The process-wide shared registry
// (Shared) is built exactly once and is never mutated after; per-call
// registries (New, NewWithBuiltins) may still be extended via Register.
//
// Grounded on a prior interpreter's flat `builtins map[string]value.Value`
// table (evaluator.go's registerBuiltins), generalized into a structured
// signature/arity/type-check layer because this language's function
// contract is considerably richer than an untyped builtin calling
// convention.
package registry
