// Package eval implements the tree-walking interpreter described in spec
// §4.5. An Interpreter evaluates a parsed AST against a root JSON value,
// resolving scope-chain variable bindings, projections, operators and
// function calls into a single result value.
//
// Architecture:
//
// The evaluator is a tree-walking interpreter with the following pieces:
//   - evaluator.go: the central eval dispatch loop and leaf-node rules
//   - operators.go: arithmetic, comparator and logical expressions
//   - control_flow.go: let-expressions and the four projection kinds
//   - functions.go: function-call dispatch into pkg/registry
//   - ingest.go: order-preserving JSON decoding for input documents and
//     backtick JSON literals
//
// Evaluation rules (identifier-on-non-object, missing-key, index
// out-of-range, and so on) return Null rather than an error; only a
// fixed set of failure categories — syntax, type, arity, invalid value,
// undefined variable, unknown function, not-a-number — ever produce one, per
// internal/jmerr.
//
// Grounded on a prior interpreter that walked a different language's AST
// against a lazily-forced attribute-set environment: the central dispatch
// loop, the short-circuiting operator helpers, and the recursive projection
// pattern carry over in shape even though the value model and node set are
// entirely different.
package eval
