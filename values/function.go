/*
File    : Tupa/values/function.go
*/
package values

import (
	"fmt"
	"strings"
)

// Body is satisfied by the parser's block-statement AST node. values
// does not import parser, so the evaluator supplies any concrete type
// implementing this marker when it builds a Function.
type Body interface {
	FunctionBodyMarker()
}

// ScopeChain stands in for scope.Chain. Declared as an opaque interface
// here (instead of importing package scope) to avoid an import cycle,
// since scope itself must depend on values (a Scope maps names to
// Values). The evaluator type-asserts back to scope.Chain when it needs
// to swap the active chain at call time.
type ScopeChain interface{}

// Function is a user-defined function value: a closure over its
// parameter names, its body, and the scope chain active when `função`
// was evaluated.
type Function struct {
	Name    string
	Params  []string
	Body    Body
	Closure ScopeChain
}

func (f *Function) Type() Type   { return FunctionType }
func (f *Function) Truthy() bool { return true }
func (f *Function) ToText() string {
	return fmt.Sprintf("<função %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}

// BoundMethod is the callable produced by reading a method off an
// Instance: calling it binds `self` to Instance and the remaining
// parameters positionally, per the captured Method's parameter list.
type BoundMethod struct {
	Receiver *Instance
	Method   *Function
}

func (b *BoundMethod) Type() Type   { return FunctionType }
func (b *BoundMethod) Truthy() bool { return true }
func (b *BoundMethod) ToText() string {
	return fmt.Sprintf("<método %s.%s>", b.Receiver.Class.Name, b.Method.Name)
}
