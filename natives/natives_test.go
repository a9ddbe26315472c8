/*
File    : Tupa/natives/natives_test.go
*/
package natives

import (
	"testing"

	"github.com/Mathewsz/Tupa/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTamanhoAcrossKinds(t *testing.T) {
	b := Builtins()
	v, err := b["tamanho"].Fn(nil, []values.Value{&values.String{Value: "olá"}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.(*values.Integer).Value)

	v, err = b["tamanho"].Fn(nil, []values.Value{&values.List{Elements: []values.Value{&values.Integer{Value: 1}, &values.Integer{Value: 2}}}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*values.Integer).Value)
}

func TestTipo(t *testing.T) {
	b := Builtins()
	v, err := b["tipo"].Fn(nil, []values.Value{&values.Integer{Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, "inteiro", v.(*values.String).Value)
}

func TestParaNumeroIntegerVsReal(t *testing.T) {
	b := Builtins()
	v, err := b["para_numero"].Fn(nil, []values.Value{&values.String{Value: "42"}})
	require.NoError(t, err)
	assert.IsType(t, &values.Integer{}, v)

	v, err = b["para_numero"].Fn(nil, []values.Value{&values.String{Value: "3.5"}})
	require.NoError(t, err)
	assert.IsType(t, &values.Real{}, v)
}

func TestParaNumeroInvalidIsValueError(t *testing.T) {
	b := Builtins()
	_, err := b["para_numero"].Fn(nil, []values.Value{&values.String{Value: "abc"}})
	require.Error(t, err)
}

func TestParaListaFromDictUsesKeys(t *testing.T) {
	d := values.NewDict()
	d.Set(&values.String{Value: "a"}, &values.Integer{Value: 1})
	d.Set(&values.String{Value: "b"}, &values.Integer{Value: 2})

	b := Builtins()
	v, err := b["para_lista"].Fn(nil, []values.Value{d})
	require.NoError(t, err)
	lst := v.(*values.List)
	require.Len(t, lst.Elements, 2)
	assert.Equal(t, "a", lst.Elements[0].(*values.String).Value)
}

func TestRaizBuiltin(t *testing.T) {
	b := Builtins()
	v, err := b["raiz"].Fn(nil, []values.Value{&values.Integer{Value: 9}})
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.(*values.Real).Value)
}

func TestMatematicaConstantsAndFunctions(t *testing.T) {
	m := Matematica()
	assert.InDelta(t, 3.14159, m["pi"].(*values.Real).Value, 0.001)

	v, err := m["potencia"].(*values.Native).Fn(nil, []values.Value{&values.Integer{Value: 2}, &values.Integer{Value: 3}})
	require.NoError(t, err)
	assert.Equal(t, int64(8), v.(*values.Integer).Value)

	v, err = m["teto"].(*values.Native).Fn(nil, []values.Value{&values.Real{Value: 3.2}})
	require.NoError(t, err)
	assert.Equal(t, float64(4), v.(*values.Real).Value)
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	exports, ok := r.Lookup("matematica")
	require.True(t, ok)
	assert.Contains(t, exports, "pi")

	_, ok = r.Lookup("nao_existe")
	assert.False(t, ok)
}
