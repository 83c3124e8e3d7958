// Package scope implements the JMESPath variable scope chain used by `let`
// expressions and the expression-reference functions that accept a scope to
// evaluate against.
//
// A Scope is an immutable linked list of binding frames, newest first. It is
// grounded on a prior interpreter's Env parent-chain shape, but Env.Set
// mutated a frame's bindings map in place; a Scope never does —
// every new binding set produced by `let` allocates a fresh frame and links
// it in front of the parent, so a previously-captured *Scope reference (for
// example one closed over by an expression-reference function) can never
// observe a later binding.
package scope

import "github.com/jmespath-go/jmespath/internal/value"

// Scope is one frame of the variable binding chain. The zero value is not
// usable; use Empty.
type Scope struct {
	name   string
	val    value.Value
	parent *Scope
}

// Empty is the root scope: it has no bindings and Lookup always misses.
var Empty = &Scope{}

// Bind returns a new Scope with name bound to val, chained in front of s.
// s is left unmodified.
func (s *Scope) Bind(name string, val value.Value) *Scope {
	return &Scope{name: name, val: val, parent: s}
}

// Lookup searches the chain starting at s for the nearest binding of name.
func (s *Scope) Lookup(name string) (value.Value, bool) {
	for frame := s; frame != nil && frame != Empty; frame = frame.parent {
		if frame.name == name {
			return frame.val, true
		}
	}

	return value.Value{}, false
}
