/*
File    : Tupa/values/values_test.go
*/
package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerToText(t *testing.T) {
	assert.Equal(t, "42", (&Integer{Value: 42}).ToText())
}

func TestBoolCanonicalText(t *testing.T) {
	assert.Equal(t, "True", (&Bool{Value: true}).ToText())
	assert.Equal(t, "False", (&Bool{Value: false}).ToText())
}

func TestTruthiness(t *testing.T) {
	assert.False(t, (&Integer{Value: 0}).Truthy())
	assert.False(t, (&Real{Value: 0}).Truthy())
	assert.False(t, (&String{Value: ""}).Truthy())
	assert.False(t, (&List{}).Truthy())
	assert.False(t, NewDict().Truthy())
	assert.False(t, (&Bool{Value: false}).Truthy())

	assert.True(t, (&Integer{Value: -1}).Truthy())
	assert.True(t, (&String{Value: "0"}).Truthy())
}

func TestListToTextNoQuotesOnStrings(t *testing.T) {
	l := &List{Elements: []Value{&Integer{Value: 10}, &String{Value: "oi"}}}
	assert.Equal(t, "[10, oi]", l.ToText())
}

func TestDictInsertionOrderAndOverwrite(t *testing.T) {
	d := NewDict()
	d.Set(&String{Value: "a"}, &Integer{Value: 1})
	d.Set(&String{Value: "b"}, &Integer{Value: 2})
	d.Set(&String{Value: "a"}, &Integer{Value: 99})

	assert.Len(t, d.Entries, 2, "duplicate key overwrites rather than appending")
	v, ok := d.Get(&String{Value: "a"})
	assert.True(t, ok)
	assert.Equal(t, int64(99), v.(*Integer).Value)
	assert.Equal(t, "{a: 99, b: 2}", d.ToText())
}

func TestEqualCrossNumericType(t *testing.T) {
	assert.True(t, Equal(&Integer{Value: 2}, &Real{Value: 2.0}))
	assert.False(t, Equal(&Integer{Value: 2}, &Real{Value: 2.5}))
}

func TestEqualListsElementwise(t *testing.T) {
	a := &List{Elements: []Value{&Integer{Value: 1}, &String{Value: "x"}}}
	b := &List{Elements: []Value{&Integer{Value: 1}, &String{Value: "x"}}}
	c := &List{Elements: []Value{&Integer{Value: 1}, &String{Value: "y"}}}
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestAbsentIsFalsyAndDistinct(t *testing.T) {
	assert.False(t, AbsentValue.Truthy())
	assert.Equal(t, AbsentType, AbsentValue.Type())
}

func TestInstanceAttrFallsBackToBoundMethod(t *testing.T) {
	class := &Class{
		Name:    "Ponto",
		Methods: map[string]*Function{"soma": {Name: "soma", Params: []string{"n"}}},
	}
	inst := NewInstance(class)
	inst.Attrs["x"] = &Integer{Value: 1}

	v, ok := inst.GetAttr("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(*Integer).Value)

	v, ok = inst.GetAttr("soma")
	assert.True(t, ok)
	bound, isBound := v.(*BoundMethod)
	assert.True(t, isBound)
	assert.Equal(t, inst, bound.Receiver)

	_, ok = inst.GetAttr("nao_existe")
	assert.False(t, ok)
}
