/*
File    : Tupa/values/class.go
*/
package values

import "fmt"

// AttrInit pairs an attribute name with the (opaque) initializer
// expression AST evaluated at instance-construction time. Expr is typed
// as interface{} because values does not import parser; the evaluator
// stores a parser.Expr here and type-asserts it back.
type AttrInit struct {
	Name string
	Expr interface{}
}

// Class is a constructor descriptor: the class's attribute initializers
// (evaluated fresh for every `Name()` call) and its method table. Tupã
// classes have no user-definable constructor: `Name()` always just
// evaluates AttrInits.
type Class struct {
	Name    string
	Attrs   []AttrInit
	Methods map[string]*Function
}

func (c *Class) Type() Type     { return ClassType }
func (c *Class) Truthy() bool   { return true }
func (c *Class) ToText() string { return fmt.Sprintf("<classe %s>", c.Name) }

// Instance is a constructed object: an attribute map plus a back
// reference to the class that produced it, used both for ToText and for
// falling back to the method table on attribute lookup.
type Instance struct {
	Class *Class
	Attrs map[string]Value
}

func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Attrs: make(map[string]Value)}
}

func (i *Instance) Type() Type     { return InstanceType }
func (i *Instance) Truthy() bool   { return true }
func (i *Instance) ToText() string { return fmt.Sprintf("<instância de %s>", i.Class.Name) }

// GetAttr implements the instance attribute-lookup invariant: the
// instance's attribute map first, then the class's method table as a
// bound method.
func (i *Instance) GetAttr(name string) (Value, bool) {
	if v, ok := i.Attrs[name]; ok {
		return v, true
	}
	if m, ok := i.Class.Methods[name]; ok {
		return &BoundMethod{Receiver: i, Method: m}, true
	}
	return nil, false
}
