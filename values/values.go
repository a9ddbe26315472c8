/*
File    : Tupa/values/values.go
*/

// Package values implements Tupã's dynamic value domain: a tagged union
// over Integer, Real, String, Bool, List, Dict, Function, Class,
// Instance, and Native. Every concrete type implements Value.
package values

import (
	"fmt"
	"strconv"
	"strings"
)

// Type tags the kind of a Value, used for dispatch in the evaluator and
// by the `tipo` builtin.
type Type string

const (
	IntegerType  Type = "inteiro"
	RealType     Type = "real"
	StringType   Type = "texto"
	BoolType     Type = "booleano"
	ListType     Type = "lista"
	DictType     Type = "dicionário"
	FunctionType Type = "função"
	ClassType    Type = "classe"
	InstanceType Type = "instância"
	NativeType   Type = "nativo"
	AbsentType   Type = "ausente"
)

// Value is implemented by every runtime value. ToText renders the
// canonical text form used for printing and nesting inside collections;
// Truthy implements the Boolean projection used by conditionals, `não`,
// `e`, and `ou`.
type Value interface {
	Type() Type
	ToText() string
	Truthy() bool
}

// Integer is a 64-bit whole number.
type Integer struct{ Value int64 }

func (i *Integer) Type() Type      { return IntegerType }
func (i *Integer) ToText() string  { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Truthy() bool    { return i.Value != 0 }

// Real is a 64-bit floating point number. Promotion to Real happens on
// any arithmetic mixing Integer and Real, on `/` always, and on any
// literal spelled with a '.'.
type Real struct{ Value float64 }

func (r *Real) Type() Type     { return RealType }
func (r *Real) Truthy() bool   { return r.Value != 0 }

// ToText uses Go's default (shortest round-tripping) float formatting.
func (r *Real) ToText() string {
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// String is a raw, unescaped text value: no escape processing, the inner
// text between quotes is the value verbatim.
type String struct{ Value string }

func (s *String) Type() Type     { return StringType }
func (s *String) ToText() string { return s.Value }
func (s *String) Truthy() bool   { return s.Value != "" }

// Bool is a boolean value, printed as True/False.
type Bool struct{ Value bool }

func (b *Bool) Type() Type   { return BoolType }
func (b *Bool) Truthy() bool { return b.Value }
func (b *Bool) ToText() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// List is an ordered, mutable sequence of values.
type List struct{ Elements []Value }

func (l *List) Type() Type   { return ListType }
func (l *List) Truthy() bool { return len(l.Elements) > 0 }
func (l *List) ToText() string {
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = elementText(el)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DictEntry is one key/value pair of a Dict, kept in insertion order.
type DictEntry struct {
	Key   Value
	Value Value
}

// Dict is an insertion-ordered, mutable mapping from value to value.
// Lookup is keyed on each key's type tag plus its canonical text form
// (dictKeyOf), which is adequate for the key domain Tupã programs
// actually construct (numbers, strings, booleans). Because the type tag
// is part of the key, the integer 1 and the real 1.0 are distinct keys.
type Dict struct {
	Entries []DictEntry
	index   map[string]int
}

// NewDict creates an empty dict ready for Set.
func NewDict() *Dict {
	return &Dict{index: make(map[string]int)}
}

func dictKeyOf(v Value) string {
	return string(v.Type()) + ":" + v.ToText()
}

// Get returns the value bound to key, if present.
func (d *Dict) Get(key Value) (Value, bool) {
	if d.index == nil {
		return nil, false
	}
	i, ok := d.index[dictKeyOf(key)]
	if !ok {
		return nil, false
	}
	return d.Entries[i].Value, true
}

// Set inserts or overwrites the binding for key (duplicate keys
// overwrite in place).
func (d *Dict) Set(key, val Value) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	k := dictKeyOf(key)
	if i, ok := d.index[k]; ok {
		d.Entries[i].Value = val
		return
	}
	d.index[k] = len(d.Entries)
	d.Entries = append(d.Entries, DictEntry{Key: key, Value: val})
}

func (d *Dict) Type() Type   { return DictType }
func (d *Dict) Truthy() bool { return len(d.Entries) > 0 }
func (d *Dict) ToText() string {
	parts := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		parts[i] = fmt.Sprintf("%s: %s", elementText(e.Key), elementText(e.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// elementText renders a value the way it should look nested inside a
// list/dict literal: strings keep no quotes, since mostrar never quotes
// strings, at top level or nested.
func elementText(v Value) string {
	return v.ToText()
}

// Native is a built-in function implemented by the host. Runtime is the
// subset of evaluator behavior native functions may call back into (used
// by higher-order builtins); most natives ignore it.
type Runtime interface {
	CallValue(fn Value, args []Value) (Value, error)
}

type NativeFunc func(rt Runtime, args []Value) (Value, error)

type Native struct {
	Name string
	Fn   NativeFunc
}

func (n *Native) Type() Type     { return NativeType }
func (n *Native) ToText() string { return fmt.Sprintf("<nativo %s>", n.Name) }
func (n *Native) Truthy() bool   { return true }

// Absent is the sentinel bound to a missing call argument. It is falsy
// and prints as a recognizable placeholder rather than panicking
// downstream code that prints it by mistake.
type Absent struct{}

func (Absent) Type() Type     { return AbsentType }
func (Absent) ToText() string { return "<ausente>" }
func (Absent) Truthy() bool   { return false }

var AbsentValue Value = Absent{}

// Equal implements structural equality: numeric cross-type by value,
// strings and booleans by content, lists/dicts element-wise, everything
// else (functions, classes, instances, natives) by reference identity.
func Equal(a, b Value) bool {
	af, aIsNum := asFloat(a)
	bf, bIsNum := asFloat(b)
	if aIsNum && bIsNum {
		return af == bf
	}
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *String:
		return av.Value == b.(*String).Value
	case *Bool:
		return av.Value == b.(*Bool).Value
	case *List:
		bv := b.(*List)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv := b.(*Dict)
		if len(av.Entries) != len(bv.Entries) {
			return false
		}
		for _, e := range av.Entries {
			bval, ok := bv.Get(e.Key)
			if !ok || !Equal(e.Value, bval) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func asFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case *Integer:
		return float64(n.Value), true
	case *Real:
		return n.Value, true
	default:
		return 0, false
	}
}
