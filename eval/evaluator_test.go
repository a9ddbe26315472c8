/*
File    : Tupa/eval/evaluator_test.go
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	err := RunSource(src, &buf)
	require.NoError(t, err)
	return buf.String()
}

func TestIfSenaoFim(t *testing.T) {
	out := run(t, "criar n = 10\nse n > 5 então\nmostrar \"grande\"\nsenão\nmostrar \"pequeno\"\nfim")
	assert.Equal(t, "grande\n", out)
}

func TestWhileLoop(t *testing.T) {
	out := run(t, "criar c = 0\nenquanto c < 3 fazer\nmostrar c\nc = c + 1\nfim")
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestForRangeInclusive(t *testing.T) {
	out := run(t, "para i de 1 até 3 fazer\nmostrar i\nfim")
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestForRangeSingleIteration(t *testing.T) {
	out := run(t, "para i de 5 até 5 fazer\nmostrar i\nfim")
	assert.Equal(t, "5\n", out)
}

func TestForEachList(t *testing.T) {
	out := run(t, "criar xs = [10,20,30]\npara x em xs fazer\nmostrar x\nfim")
	assert.Equal(t, "10\n20\n30\n", out)
}

func TestFuncDeclAndCall(t *testing.T) {
	out := run(t, "função dobrar(x)\ndevolver x * 2\nfim\nmostrar dobrar(21)")
	assert.Equal(t, "42\n", out)
}

func TestUseMatematicaModule(t *testing.T) {
	out := run(t, "usar matematica\nmostrar teto(3.2)")
	assert.Equal(t, "4\n", out)
}

func TestMissingArgumentBindsAbsent(t *testing.T) {
	out := run(t, "função saudar(nome)\ndevolver nome\nfim\nmostrar saudar()")
	assert.Equal(t, "<ausente>\n", out)
}

func TestClassInstantiationAndBoundMethod(t *testing.T) {
	src := "classe Contador\ncriar total = 0\nfunção incrementa(n)\ndevolver self.total + n\nfim\nfim\n" +
		"criar c = Contador()\nmostrar c.total\nmostrar c.incrementa(5)"
	out := run(t, src)
	assert.Equal(t, "0\n5\n", out)
}

func TestTryCatchBindsErrorMessage(t *testing.T) {
	src := "tentar\nmostrar 1 / 0\npegar erro_msg\nmostrar erro_msg\nfim"
	out := run(t, src)
	assert.True(t, strings.Contains(out, "divisão por zero"))
}

func TestUndefinedVariableIsNameError(t *testing.T) {
	var buf bytes.Buffer
	err := RunSource("mostrar nao_existe", &buf)
	require.Error(t, err)
}

func TestAssignmentWritesCurrentScopeOnly(t *testing.T) {
	// Assignment inside a function body never mutates the outer binding
	// of the same name; it shadows in the function's own call scope
	// instead, so the top-level mostrar below still sees the outer value.
	src := "criar x = 1\nfunção muda()\nx = 99\ndevolver 0\nfim\nmuda()\nmostrar x"
	out := run(t, src)
	assert.Equal(t, "1\n", out)
}

func TestListIndexAssignInRangeAndAppend(t *testing.T) {
	src := "criar xs = [1,2,3]\nxs[0] = 100\nmostrar xs\nxs[3] = 4\nmostrar xs"
	out := run(t, src)
	assert.Equal(t, "[100, 2, 3]\n[100, 2, 3, 4]\n", out)
}

func TestDictLiteralAndIndex(t *testing.T) {
	out := run(t, `criar d = {"a": 1, "b": 2}` + "\nmostrar d[\"a\"]\nmostrar d")
	assert.Equal(t, "1\n{a: 1, b: 2}\n", out)
}

func TestStringIndexing(t *testing.T) {
	out := run(t, `mostrar "abc"[1]`)
	assert.Equal(t, "b\n", out)
}

func TestLogicalShortCircuitReturnsOperand(t *testing.T) {
	out := run(t, "mostrar 0 ou 5\nmostrar 3 e 7")
	assert.Equal(t, "5\n7\n", out)
}

func TestRecursiveFunctionCall(t *testing.T) {
	src := "função fat(n)\nse n <= 1 então\ndevolver 1\nfim\ndevolver n * fat(n - 1)\nfim\nmostrar fat(5)"
	out := run(t, src)
	assert.Equal(t, "120\n", out)
}

func TestClosureCapturesDefiningScope(t *testing.T) {
	src := "criar base = 10\nfunção soma(n)\ndevolver base + n\nfim\nmostrar soma(5)"
	out := run(t, src)
	assert.Equal(t, "15\n", out)
}

func TestREPLSessionReusesGlobalScope(t *testing.T) {
	e := New()
	var buf bytes.Buffer
	e.SetWriter(&buf)
	require.NoError(t, e.EvalInSession("criar x = 1"))
	require.NoError(t, e.EvalInSession("x = x + 1"))
	require.NoError(t, e.EvalInSession("mostrar x"))
	assert.Equal(t, "2\n", buf.String())
}
