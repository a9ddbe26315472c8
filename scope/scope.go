/*
File    : Tupa/scope/scope.go
*/

// Package scope implements Tupã's environment model: a single Scope is
// a name-to-value map; a Chain is the ordered stack of scopes a running
// program sees at a point in time, bottom being the never-popped global
// scope.
package scope

import "github.com/Mathewsz/Tupa/values"

// Scope is one frame of name-to-value bindings; there is no const/let
// distinction in this language, so a single map suffices.
type Scope struct {
	vars map[string]values.Value
}

// NewScope creates an empty scope frame.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]values.Value)}
}

// Define binds name to val in this frame only.
func (s *Scope) Define(name string, val values.Value) {
	s.vars[name] = val
}

// Get looks up name in this frame only (no parent walk; that's Chain's
// job).
func (s *Scope) Get(name string) (values.Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Has reports whether name is bound in this frame.
func (s *Scope) Has(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Chain is an ordered stack of scopes, index 0 being the global scope
// created at interpreter construction; the highest index is the current
// "top" scope.
//
// A Chain is a plain slice of shared *Scope pointers. Function values
// capture a Chain through Clone (a fresh slice of the same pointers) at
// definition time; since the elements are pointers, the captured chain
// still observes later mutations to the scopes it shares with the
// defining context, and is unaffected by further pushes/pops on the live
// chain.
type Chain []*Scope

// NewChain creates a chain containing a single (global) scope.
func NewChain() Chain {
	return Chain{NewScope()}
}

// Push returns a new chain with a fresh scope on top. The receiver is not
// modified, so discarding the returned chain (on any exit path, including
// early return and errors) is enough to leave the new scope.
func (c Chain) Push() Chain {
	return append(c, NewScope())
}

// Pop returns the chain with its top scope removed. The global scope
// (index 0) is never popped; callers must not call Pop on a chain of
// length 1.
func (c Chain) Pop() Chain {
	return c[:len(c)-1]
}

// Top returns the innermost (current) scope.
func (c Chain) Top() *Scope {
	return c[len(c)-1]
}

// Global returns the outermost scope, which is never popped.
func (c Chain) Global() *Scope {
	return c[0]
}

// Lookup walks from the top of the chain toward the global scope and
// returns the first binding found.
func (c Chain) Lookup(name string) (values.Value, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if v, ok := c[i].Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in the current (top) scope.
func (c Chain) Define(name string, val values.Value) {
	c.Top().Define(name, val)
}

// Set deliberately keeps assignment simple: it always writes into the
// current scope, with no distinction between introduction and mutation
// and no walk up the chain to find an existing outer binding. While an
// inner scope is on top, an assignment never reaches an outer binding of
// the same name; it creates or replaces a binding in the inner scope.
func (c Chain) Set(name string, val values.Value) {
	c.Top().Define(name, val)
}

// Clone returns a snapshot: a new Chain slice (so future Push/Pop on the
// live chain don't affect it) sharing the same underlying *Scope
// pointers (so mutations to those scopes remain visible, which is what
// makes closures capture "live" outer variables, not a frozen copy).
// This is how Function.Closure is populated.
func (c Chain) Clone() Chain {
	cp := make(Chain, len(c))
	copy(cp, c)
	return cp
}
