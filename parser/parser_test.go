/*
File    : Tupa/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVarDecl(t *testing.T) {
	prog, err := ParseProgram(`criar n = 10`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	vd := prog.Statements[0].(*VarDeclStmt)
	assert.Equal(t, "n", vd.Name)
	assert.Equal(t, "", vd.Kind)
	lit := vd.Init.(*LiteralExpr)
	assert.Equal(t, LiteralInt, lit.Kind)
	assert.Equal(t, int64(10), lit.Int)
}

func TestParseListAndDictKindVarDecl(t *testing.T) {
	prog, err := ParseProgram("criar lista xs = [1, 2]\ncriar dicionário d = {\"a\": 1}")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)
	assert.Equal(t, "lista", prog.Statements[0].(*VarDeclStmt).Kind)
	assert.Equal(t, "dicionário", prog.Statements[1].(*VarDeclStmt).Kind)
}

func TestParseIfSenaoFim(t *testing.T) {
	src := "se n > 5 então\nmostrar 1\nsenão\nmostrar 2\nfim"
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	ifs := prog.Statements[0].(*IfStmt)
	require.Len(t, ifs.Then, 1)
	require.Len(t, ifs.Else, 1)
	bin := ifs.Cond.(*BinaryExpr)
	assert.Equal(t, "n", bin.Left.(*VariableExpr).Name)
}

func TestParseWhile(t *testing.T) {
	src := "enquanto c < 3 fazer\nmostrar c\nc = c + 1\nfim"
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	ws := prog.Statements[0].(*WhileStmt)
	require.Len(t, ws.Body, 2)
}

func TestParseForRangeAndForEach(t *testing.T) {
	prog, err := ParseProgram("para i de 1 até 3 fazer\nmostrar i\nfim")
	require.NoError(t, err)
	fr := prog.Statements[0].(*ForRangeStmt)
	assert.Equal(t, "i", fr.Var)

	prog2, err := ParseProgram("para x em xs fazer\nmostrar x\nfim")
	require.NoError(t, err)
	fe := prog2.Statements[0].(*ForEachStmt)
	assert.Equal(t, "x", fe.Var)
}

func TestParseFuncDeclAndReturn(t *testing.T) {
	prog, err := ParseProgram("função dobrar(x)\ndevolver x * 2\nfim")
	require.NoError(t, err)
	fd := prog.Statements[0].(*FuncDeclStmt)
	assert.Equal(t, "dobrar", fd.Name)
	assert.Equal(t, []string{"x"}, fd.Params)
	require.Len(t, fd.Body.Statements, 1)
	_, ok := fd.Body.Statements[0].(*ReturnStmt)
	assert.True(t, ok)
}

func TestParseClassDecl(t *testing.T) {
	src := "classe Ponto\ncriar x = 0\nfunção soma(n)\ndevolver x + n\nfim\nfim"
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	cd := prog.Statements[0].(*ClassDeclStmt)
	assert.Equal(t, "Ponto", cd.Name)
	require.Len(t, cd.Attrs, 1)
	assert.Equal(t, "x", cd.Attrs[0].Name)
	require.Len(t, cd.Methods, 1)
	assert.Equal(t, "soma", cd.Methods[0].Name)
}

func TestParseTryCatch(t *testing.T) {
	src := "tentar\nmostrar 1\npegar msg\nmostrar msg\nfim"
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	tc := prog.Statements[0].(*TryCatchStmt)
	assert.Equal(t, "msg", tc.CatchVar)
	require.Len(t, tc.Try, 1)
	require.Len(t, tc.Catch, 1)
}

func TestParseUseStmt(t *testing.T) {
	prog, err := ParseProgram("usar matematica")
	require.NoError(t, err)
	us := prog.Statements[0].(*UseStmt)
	assert.Equal(t, "matematica", us.Module)
}

func TestOperatorPrecedence(t *testing.T) {
	prog, err := ParseProgram("mostrar 1 + 2 * 3")
	require.NoError(t, err)
	ps := prog.Statements[0].(*PrintStmt)
	bin := ps.Expr.(*BinaryExpr)
	assert.Equal(t, "+", string(bin.Op))
	_, ok := bin.Right.(*BinaryExpr)
	assert.True(t, ok, "multiplication must bind tighter than addition")
}

func TestLogicalShortCircuitNodeKind(t *testing.T) {
	prog, err := ParseProgram("mostrar a ou b e c")
	require.NoError(t, err)
	ps := prog.Statements[0].(*PrintStmt)
	lg := ps.Expr.(*LogicalExpr)
	assert.Equal(t, "ou", string(lg.Op))
	_, ok := lg.Right.(*LogicalExpr)
	assert.True(t, ok, "'e' must bind tighter than 'ou'")
}

func TestAssignmentRewriteTargets(t *testing.T) {
	prog, err := ParseProgram("x = 1\nxs[0] = 2\no.attr = 3")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 3)

	a := prog.Statements[0].(*ExprStmt).Expr.(*AssignExpr)
	assert.Equal(t, "x", a.Name)

	ia := prog.Statements[1].(*ExprStmt).Expr.(*IndexAssignExpr)
	assert.Equal(t, "xs", ia.Object.(*VariableExpr).Name)

	aa := prog.Statements[2].(*ExprStmt).Expr.(*AttrAssignExpr)
	assert.Equal(t, "attr", aa.Attr)
}

func TestInvalidAssignmentTargetIsSyntaxError(t *testing.T) {
	_, err := ParseProgram("1 = 2")
	require.Error(t, err)
}

func TestCallIndexAttrPostfixChaining(t *testing.T) {
	prog, err := ParseProgram("mostrar obj.itens[0](1, 2)")
	require.NoError(t, err)
	ps := prog.Statements[0].(*PrintStmt)
	call := ps.Expr.(*CallExpr)
	require.Len(t, call.Args, 2)
	idx := call.Callee.(*IndexExpr)
	_, ok := idx.Object.(*AttrExpr)
	assert.True(t, ok)
}

func TestListAndDictLiterals(t *testing.T) {
	prog, err := ParseProgram(`mostrar [1, 2, 3]`)
	require.NoError(t, err)
	ll := prog.Statements[0].(*PrintStmt).Expr.(*ListLitExpr)
	assert.Len(t, ll.Elements, 3)

	prog2, err := ParseProgram(`mostrar {"a": 1, "b": 2}`)
	require.NoError(t, err)
	dl := prog2.Statements[0].(*PrintStmt).Expr.(*DictLitExpr)
	assert.Len(t, dl.Keys, 2)
}

func TestMissingFimIsSyntaxError(t *testing.T) {
	_, err := ParseProgram("se verdadeiro então\nmostrar 1")
	require.Error(t, err)
}

func TestUnaryMinusAndNao(t *testing.T) {
	prog, err := ParseProgram("mostrar -1\nmostrar não verdadeiro")
	require.NoError(t, err)
	u1 := prog.Statements[0].(*PrintStmt).Expr.(*UnaryExpr)
	assert.Equal(t, "-", string(u1.Op))
	u2 := prog.Statements[1].(*PrintStmt).Expr.(*UnaryExpr)
	assert.Equal(t, "não", string(u2.Op))
}
