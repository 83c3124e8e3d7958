package registry

import (
	"fmt"
	"sync"

	"github.com/jmespath-go/jmespath/internal/ast"
	"github.com/jmespath-go/jmespath/internal/jmerr"
	"github.com/jmespath-go/jmespath/internal/pos"
	"github.com/jmespath-go/jmespath/internal/value"
)

// ParamKind tags how a parameter consumes supplied call arguments.
type ParamKind int

const (
	Required ParamKind = iota
	Optional
	Variadic
)

// TypeConstraint is the set of value.Kind a parameter accepts. A nil or
// empty TypeConstraint is the "Any" constraint: it matches every kind,
// including Null. Use an explicit []value.Kind{value.KindNull, ...} entry
// to admit Null alongside other kinds; per spec §4.6, Null never satisfies
// a non-empty constraint that omits it.
type TypeConstraint []value.Kind

// Any returns the wildcard constraint.
func Any() TypeConstraint { return nil }

// Matches reports whether k satisfies the constraint.
func (c TypeConstraint) Matches(k value.Kind) bool {
	if len(c) == 0 {
		return true
	}

	for _, want := range c {
		if want == k {
			return true
		}
	}

	return false
}

func (c TypeConstraint) kinds() []value.Kind { return []value.Kind(c) }

// Param describes one formal parameter of a Function.
type Param struct {
	Name  string
	Kind  ParamKind
	Types TypeConstraint

	// ZeroOrMore relaxes the Variadic arity floor from 1 to 0. It is
	// meaningful only when Kind == Variadic; spec §4.6's default arity
	// formula (min = required + 1 for a variadic signature) is overridden
	// per-function where §4.6.1 says so explicitly (merge's zero-object
	// call, for one).
	ZeroOrMore bool
}

// Signature is a Function's ordered parameter list.
type Signature []Param

// validate enforces spec §4.6's shape rule: zero or more Required, then
// either zero or more Optional or exactly one trailing Variadic. A
// signature violating this is a programming error caught at Register time.
func (s Signature) validate() error {
	seenOptional := false
	seenVariadic := false

	for i, p := range s {
		switch p.Kind {
		case Required:
			if seenOptional || seenVariadic {
				return fmt.Errorf("parameter %d (%q): required cannot follow optional or variadic", i, p.Name)
			}
		case Optional:
			if seenVariadic {
				return fmt.Errorf("parameter %d (%q): optional cannot follow variadic", i, p.Name)
			}

			seenOptional = true
		case Variadic:
			if seenVariadic {
				return fmt.Errorf("parameter %d (%q): a signature may declare at most one variadic parameter", i, p.Name)
			}

			if i != len(s)-1 {
				return fmt.Errorf("parameter %d (%q): variadic parameter must be last", i, p.Name)
			}

			seenVariadic = true
		default:
			return fmt.Errorf("parameter %d (%q): unknown parameter kind %d", i, p.Name, p.Kind)
		}
	}

	return nil
}

func (s Signature) arity() (min, max int) {
	hasVariadic := false
	zeroOrMore := false

	for _, p := range s {
		switch p.Kind {
		case Required:
			min++
			max++
		case Optional:
			max++
		case Variadic:
			hasVariadic = true
			zeroOrMore = p.ZeroOrMore
		}
	}

	if hasVariadic {
		if !zeroOrMore {
			min++
		}

		max = -1
	}

	return min, max
}

func (s Signature) checkArity(name string, n int, at pos.Position) error {
	min, max := s.arity()
	variadic := max == -1

	if n < min {
		return jmerr.TooFewArguments(name, min, n, variadic).WithPosition(at)
	}

	if max != -1 && n > max {
		return jmerr.TooManyArguments(name, max, n).WithPosition(at)
	}

	return nil
}

// checkTypes enforces each positional parameter's type constraint against
// the first min(len(args), len(params)) arguments; any remaining arguments
// are checked against the trailing Variadic parameter's constraint, per
// spec §4.6. This runs only after checkArity has already passed, so a call
// with both an arity and a type violation reports InvalidArity (Testable
// Property 6).
func (s Signature) checkTypes(name string, args []value.Value, at pos.Position) error {
	idx := 0

	for _, p := range s {
		switch p.Kind {
		case Required, Optional:
			if idx >= len(args) {
				continue
			}

			if !p.Types.Matches(args[idx].Kind()) {
				return invalidType(name, p, args[idx], at)
			}

			idx++
		case Variadic:
			for ; idx < len(args); idx++ {
				if !p.Types.Matches(args[idx].Kind()) {
					return invalidType(name, p, args[idx], at)
				}
			}
		}
	}

	return nil
}

func invalidType(funcName string, p Param, got value.Value, at pos.Position) error {
	return jmerr.NewInvalidType().
		ForFunction(funcName).
		ForParameter(p.Name).
		ExpectedDataTypes(p.Types.kinds()...).
		Received(got).
		At(at).
		Build()
}

// Evaluator evaluates an AST fragment against an input value. It is
// supplied by pkg/eval so that registry — which knows nothing about scope
// chains or the tree-walking interpreter — can still offer by-function
// closures to the functions that need them.
type Evaluator func(node ast.Node, input value.Value) (value.Value, error)

// Function is one registered built-in (or user-supplied) function.
type Function struct {
	Name    string
	Params  Signature
	Execute func(args []value.Value, ctx *Context) (value.Value, error)
}

// Registry is a name-to-Function table.
type Registry struct {
	mu        sync.RWMutex
	functions map[string]*Function
	locked    bool
}

// New returns an empty, mutable registry.
func New() *Registry {
	return &Registry{functions: make(map[string]*Function)}
}

// NewWithBuiltins returns a fresh registry seeded with every built-in
// function, per spec §6's Runtime::create().
func NewWithBuiltins() *Registry {
	r := New()
	registerBuiltins(r)

	return r
}

// Register adds fn to r, keyed by fn.Name. It panics if fn's signature is
// malformed (a programming error, per spec §4.6) or if r is the
// process-wide shared registry, which is immutable after construction.
func (r *Registry) Register(fn *Function) {
	if r.locked {
		panic("registry: Register called on the shared, immutable registry")
	}

	if err := fn.Params.validate(); err != nil {
		panic(fmt.Sprintf("registry: invalid signature for %q: %v", fn.Name, err))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.functions[fn.Name] = fn
}

// Lookup returns the function registered under name, if any.
func (r *Registry) Lookup(name string) (*Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.functions[name]

	return fn, ok
}

// Call validates arity then types before invoking fn.Execute with a fresh
// Context wired to eval.
func (r *Registry) Call(fn *Function, args []value.Value, at pos.Position, eval Evaluator) (value.Value, error) {
	if err := fn.Params.checkArity(fn.Name, len(args), at); err != nil {
		return value.Value{}, err
	}

	if err := fn.Params.checkTypes(fn.Name, args, at); err != nil {
		return value.Value{}, err
	}

	return fn.Execute(args, newContext(at, eval))
}

var (
	sharedOnce sync.Once
	shared     *Registry
)

// Shared returns the process-wide registry, built on first use and never
// mutated after.
func Shared() *Registry {
	sharedOnce.Do(func() {
		shared = NewWithBuiltins()
		shared.locked = true
	})

	return shared
}
