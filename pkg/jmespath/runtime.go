package jmespath

import (
	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/internal/value"
	"github.com/jmespath-go/jmespath/pkg/eval"
	"github.com/jmespath-go/jmespath/pkg/lexer"
	"github.com/jmespath-go/jmespath/pkg/parser"
	"github.com/jmespath-go/jmespath/pkg/registry"
)

// Runtime wraps a function registry and exposes the search/parse entry
// points spec.md §6 names.
type Runtime struct {
	reg *registry.Registry
}

// Create returns a Runtime backed by a fresh, mutable registry seeded with
// every built-in function. Register may be called on it freely.
func Create() *Runtime {
	return &Runtime{reg: registry.NewWithBuiltins()}
}

// Shared returns a Runtime backed by the process-wide, immutable registry.
// Register panics if called on the result.
func Shared() *Runtime {
	return &Runtime{reg: registry.Shared()}
}

// Register adds fn to the runtime's registry. It panics if the runtime is
// backed by the shared, locked registry (a programming error, per spec
// §4.6) or if fn's signature is malformed.
func (rt *Runtime) Register(fn *registry.Function) {
	rt.reg.Register(fn)
}

// AST is a parsed expression, ready to evaluate against any number of root
// values.
type AST struct {
	node ast.Node
	reg  *registry.Registry
}

// Parse lexes and parses expression, returning an AST bound to the
// runtime's registry.
func (rt *Runtime) Parse(expression string) (*AST, error) {
	node, err := parser.New(lexer.New(expression)).Parse()
	if err != nil {
		return nil, err
	}

	return &AST{node: node, reg: rt.reg}, nil
}

// Evaluate walks the parsed tree against root, constructing a fresh
// interpreter (root value + empty scope chain + the runtime's registry) per
// call, per spec §4.7.
func (a *AST) Evaluate(root value.Value) (value.Value, error) {
	return eval.New(root, a.reg).Evaluate(a.node)
}

// String renders the parsed tree in the human-readable form AST nodes
// implement, for CLI debugging output (-v/--verbose).
func (a *AST) String() string {
	return a.node.String()
}

// Search parses expression and evaluates it against root in one step.
func (rt *Runtime) Search(expression string, root value.Value) (value.Value, error) {
	parsed, err := rt.Parse(expression)
	if err != nil {
		return value.Value{}, err
	}

	return parsed.Evaluate(root)
}
