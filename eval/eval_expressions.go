/*
File    : Tupa/eval/eval_expressions.go
*/
package eval

import (
	"strings"

	"github.com/Mathewsz/Tupa/lexer"
	"github.com/Mathewsz/Tupa/parser"
	"github.com/Mathewsz/Tupa/scope"
	"github.com/Mathewsz/Tupa/tupaerr"
	"github.com/Mathewsz/Tupa/values"
)

// evalExpr dispatches a single expression node to its evaluator.
func (e *Evaluator) evalExpr(expr parser.Expr, env scope.Chain) (values.Value, error) {
	switch x := expr.(type) {
	case *parser.LiteralExpr:
		return e.evalLiteral(x), nil
	case *parser.VariableExpr:
		return e.evalVariable(x, env)
	case *parser.GroupExpr:
		return e.evalExpr(x.Inner, env)
	case *parser.UnaryExpr:
		return e.evalUnary(x, env)
	case *parser.BinaryExpr:
		return e.evalBinary(x, env)
	case *parser.LogicalExpr:
		return e.evalLogical(x, env)
	case *parser.AssignExpr:
		return e.evalAssign(x, env)
	case *parser.IndexAssignExpr:
		return e.evalIndexAssign(x, env)
	case *parser.AttrAssignExpr:
		return e.evalAttrAssign(x, env)
	case *parser.CallExpr:
		return e.evalCall(x, env)
	case *parser.IndexExpr:
		return e.evalIndex(x, env)
	case *parser.AttrExpr:
		return e.evalAttr(x, env)
	case *parser.ListLitExpr:
		return e.evalListLit(x, env)
	case *parser.DictLitExpr:
		return e.evalDictLit(x, env)
	default:
		return nil, unreachableToken(expr, "expression")
	}
}

func (e *Evaluator) evalLiteral(x *parser.LiteralExpr) values.Value {
	switch x.Kind {
	case parser.LiteralInt:
		return &values.Integer{Value: x.Int}
	case parser.LiteralReal:
		return &values.Real{Value: x.Real}
	case parser.LiteralString:
		return &values.String{Value: x.Str}
	case parser.LiteralBool:
		return &values.Bool{Value: x.Bool}
	default:
		return values.AbsentValue
	}
}

func (e *Evaluator) evalVariable(x *parser.VariableExpr, env scope.Chain) (values.Value, error) {
	if v, ok := env.Lookup(x.Name); ok {
		return v, nil
	}
	line, col := tokPos(x)
	return nil, tupaerr.NewNameError(line, col, "variável não definida: %s", x.Name)
}

// evalUnary implements Unary: `-` negates numerics, `não` returns the
// logical negation of truthiness. The lexer never produces a standalone
// `!`, so Op is always MINUS or NAO here.
func (e *Evaluator) evalUnary(x *parser.UnaryExpr, env scope.Chain) (values.Value, error) {
	v, err := e.evalExpr(x.Right, env)
	if err != nil {
		return nil, err
	}
	line, col := tokPos(x)
	switch x.Op {
	case lexer.MINUS:
		switch n := v.(type) {
		case *values.Integer:
			return &values.Integer{Value: -n.Value}, nil
		case *values.Real:
			return &values.Real{Value: -n.Value}, nil
		default:
			return nil, tupaerr.NewTypeError(line, col, "operador '-' unário exige número, recebeu %s", v.Type())
		}
	case lexer.NAO:
		return &values.Bool{Value: !v.Truthy()}, nil
	default:
		return nil, tupaerr.NewTypeError(line, col, "operador unário desconhecido: %s", x.Op)
	}
}

// evalLogical implements short-circuiting `e`/`ou`.
func (e *Evaluator) evalLogical(x *parser.LogicalExpr, env scope.Chain) (values.Value, error) {
	left, err := e.evalExpr(x.Left, env)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case lexer.E:
		if !left.Truthy() {
			return left, nil
		}
		return e.evalExpr(x.Right, env)
	case lexer.OU:
		if left.Truthy() {
			return left, nil
		}
		return e.evalExpr(x.Right, env)
	default:
		line, col := tokPos(x)
		return nil, tupaerr.NewTypeError(line, col, "operador lógico desconhecido: %s", x.Op)
	}
}

// evalBinary implements the eager binary operators.
func (e *Evaluator) evalBinary(x *parser.BinaryExpr, env scope.Chain) (values.Value, error) {
	left, err := e.evalExpr(x.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(x.Right, env)
	if err != nil {
		return nil, err
	}
	line, col := tokPos(x)

	switch x.Op {
	case lexer.PLUS:
		return evalPlus(left, right, line, col)
	case lexer.MINUS:
		return numericOp(left, right, line, col, "-", func(a, b float64) float64 { return a - b },
			func(a, b int64) int64 { return a - b })
	case lexer.STAR:
		return numericOp(left, right, line, col, "*", func(a, b float64) float64 { return a * b },
			func(a, b int64) int64 { return a * b })
	case lexer.SLASH:
		return evalDivide(left, right, line, col)
	case lexer.EQ:
		return &values.Bool{Value: values.Equal(left, right)}, nil
	case lexer.NOT_EQ:
		return &values.Bool{Value: !values.Equal(left, right)}, nil
	case lexer.LT, lexer.LT_EQ, lexer.GT, lexer.GT_EQ:
		return evalComparison(x.Op, left, right, line, col)
	default:
		return nil, tupaerr.NewTypeError(line, col, "operador binário desconhecido: %s", x.Op)
	}
}

func evalPlus(left, right values.Value, line, col int) (values.Value, error) {
	ls, lIsStr := left.(*values.String)
	rs, rIsStr := right.(*values.String)
	if lIsStr && rIsStr {
		return &values.String{Value: ls.Value + rs.Value}, nil
	}
	if lIsStr != rIsStr {
		return nil, tupaerr.NewTypeError(line, col, "'+' não pode misturar texto e número")
	}
	return numericOp(left, right, line, col, "+", func(a, b float64) float64 { return a + b },
		func(a, b int64) int64 { return a + b })
}

// numericOp applies an integer-preserving operator when both operands are
// Integer, else promotes to Real: integer + integer stays integer, any
// real operand produces a real.
func numericOp(left, right values.Value, line, col int, sym string, realFn func(a, b float64) float64, intFn func(a, b int64) int64) (values.Value, error) {
	li, lIsInt := left.(*values.Integer)
	ri, rIsInt := right.(*values.Integer)
	if lIsInt && rIsInt {
		return &values.Integer{Value: intFn(li.Value, ri.Value)}, nil
	}
	lf, lok := asFloatOperand(left)
	rf, rok := asFloatOperand(right)
	if !lok || !rok {
		return nil, tupaerr.NewTypeError(line, col, "'%s' exige operandos numéricos, recebeu %s e %s", sym, left.Type(), right.Type())
	}
	return &values.Real{Value: realFn(lf, rf)}, nil
}

// evalDivide always yields a real, even when both operands are integers.
func evalDivide(left, right values.Value, line, col int) (values.Value, error) {
	lf, lok := asFloatOperand(left)
	rf, rok := asFloatOperand(right)
	if !lok || !rok {
		return nil, tupaerr.NewTypeError(line, col, "'/' exige operandos numéricos, recebeu %s e %s", left.Type(), right.Type())
	}
	if rf == 0 {
		return nil, tupaerr.NewValueError(line, col, "divisão por zero")
	}
	return &values.Real{Value: lf / rf}, nil
}

func evalComparison(op lexer.TokenType, left, right values.Value, line, col int) (values.Value, error) {
	lf, lIsNum := asFloatOperand(left)
	rf, rIsNum := asFloatOperand(right)
	if lIsNum && rIsNum {
		return &values.Bool{Value: compareNums(op, lf, rf)}, nil
	}
	ls, lIsStr := left.(*values.String)
	rs, rIsStr := right.(*values.String)
	if lIsStr && rIsStr {
		return &values.Bool{Value: compareStrings(op, ls.Value, rs.Value)}, nil
	}
	return nil, tupaerr.NewTypeError(line, col, "operador de comparação exige dois números ou dois textos, recebeu %s e %s", left.Type(), right.Type())
}

func compareNums(op lexer.TokenType, a, b float64) bool {
	switch op {
	case lexer.LT:
		return a < b
	case lexer.LT_EQ:
		return a <= b
	case lexer.GT:
		return a > b
	case lexer.GT_EQ:
		return a >= b
	default:
		return false
	}
}

func compareStrings(op lexer.TokenType, a, b string) bool {
	c := strings.Compare(a, b)
	switch op {
	case lexer.LT:
		return c < 0
	case lexer.LT_EQ:
		return c <= 0
	case lexer.GT:
		return c > 0
	case lexer.GT_EQ:
		return c >= 0
	default:
		return false
	}
}

func asFloatOperand(v values.Value) (float64, bool) {
	switch n := v.(type) {
	case *values.Integer:
		return float64(n.Value), true
	case *values.Real:
		return n.Value, true
	default:
		return 0, false
	}
}

func (e *Evaluator) evalAssign(x *parser.AssignExpr, env scope.Chain) (values.Value, error) {
	v, err := e.evalExpr(x.Value, env)
	if err != nil {
		return nil, err
	}
	env.Set(x.Name, v)
	return v, nil
}

// evalIndexAssign implements IndexAssign for lists and dicts: a dict
// write always inserts/overwrites; a list write in range overwrites,
// and a write exactly at the current length appends, with anything
// further out of range raising an IndexError.
func (e *Evaluator) evalIndexAssign(x *parser.IndexAssignExpr, env scope.Chain) (values.Value, error) {
	obj, err := e.evalExpr(x.Object, env)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalExpr(x.Index, env)
	if err != nil {
		return nil, err
	}
	val, err := e.evalExpr(x.Value, env)
	if err != nil {
		return nil, err
	}
	line, col := tokPos(x)

	switch container := obj.(type) {
	case *values.List:
		i, ok := asInt(idx)
		if !ok {
			return nil, tupaerr.NewTypeError(line, col, "índice de lista deve ser inteiro")
		}
		switch {
		case i >= 0 && int(i) < len(container.Elements):
			container.Elements[i] = val
		case int(i) == len(container.Elements):
			container.Elements = append(container.Elements, val)
		default:
			return nil, tupaerr.NewIndexError(line, col, "índice fora dos limites: %d", i)
		}
		return val, nil
	case *values.Dict:
		container.Set(idx, val)
		return val, nil
	default:
		return nil, tupaerr.NewTypeError(line, col, "tipo %s não suporta atribuição por índice", obj.Type())
	}
}

// evalAttrAssign implements AttrAssign: write into an Instance's
// attribute map.
func (e *Evaluator) evalAttrAssign(x *parser.AttrAssignExpr, env scope.Chain) (values.Value, error) {
	obj, err := e.evalExpr(x.Object, env)
	if err != nil {
		return nil, err
	}
	val, err := e.evalExpr(x.Value, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*values.Instance)
	if !ok {
		line, col := tokPos(x)
		return nil, tupaerr.NewTypeError(line, col, "tipo %s não tem atributos", obj.Type())
	}
	inst.Attrs[x.Attr] = val
	return val, nil
}

// evalCall implements Call: evaluate the callee and arguments, then
// dispatch by value kind. Class is special-cased here (rather than
// folded into CallValue) because instantiation must evaluate attribute
// initializers in the call site's scope, which only this function has
// access to.
func (e *Evaluator) evalCall(x *parser.CallExpr, env scope.Chain) (values.Value, error) {
	callee, err := e.evalExpr(x.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]values.Value, len(x.Args))
	for i, a := range x.Args {
		v, err := e.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if cls, ok := callee.(*values.Class); ok {
		return e.instantiate(cls, env)
	}

	switch callee.(type) {
	case *values.Function, *values.BoundMethod, *values.Native:
		return e.CallValue(callee, args)
	default:
		line, col := tokPos(x)
		return nil, tupaerr.NewTypeError(line, col, "tipo %s não é chamável", callee.Type())
	}
}

// evalIndex implements Index for lists, dicts, and strings.
func (e *Evaluator) evalIndex(x *parser.IndexExpr, env scope.Chain) (values.Value, error) {
	obj, err := e.evalExpr(x.Object, env)
	if err != nil {
		return nil, err
	}
	idxV, err := e.evalExpr(x.Index, env)
	if err != nil {
		return nil, err
	}
	line, col := tokPos(x)

	switch container := obj.(type) {
	case *values.List:
		i, ok := asInt(idxV)
		if !ok || i < 0 || int(i) >= len(container.Elements) {
			return nil, tupaerr.NewIndexError(line, col, "índice de lista fora dos limites")
		}
		return container.Elements[i], nil
	case *values.Dict:
		v, ok := container.Get(idxV)
		if !ok {
			return nil, tupaerr.NewIndexError(line, col, "chave ausente no dicionário: %s", idxV.ToText())
		}
		return v, nil
	case *values.String:
		i, ok := asInt(idxV)
		runes := []rune(container.Value)
		if !ok || i < 0 || int(i) >= len(runes) {
			return nil, tupaerr.NewIndexError(line, col, "índice de texto fora dos limites")
		}
		return &values.String{Value: string(runes[i])}, nil
	default:
		return nil, tupaerr.NewTypeError(line, col, "tipo %s não suporta indexação", obj.Type())
	}
}

// evalAttr implements Attr: instance attribute/method lookup, producing
// a bound method when the name resolves through the method table.
func (e *Evaluator) evalAttr(x *parser.AttrExpr, env scope.Chain) (values.Value, error) {
	obj, err := e.evalExpr(x.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*values.Instance)
	if !ok {
		line, col := tokPos(x)
		return nil, tupaerr.NewTypeError(line, col, "tipo %s não tem atributos", obj.Type())
	}
	v, ok := inst.GetAttr(x.Name)
	if !ok {
		line, col := tokPos(x)
		return nil, tupaerr.NewAttrError(line, col, "atributo não encontrado: %s", x.Name)
	}
	return v, nil
}

func (e *Evaluator) evalListLit(x *parser.ListLitExpr, env scope.Chain) (values.Value, error) {
	elems := make([]values.Value, len(x.Elements))
	for i, el := range x.Elements {
		v, err := e.evalExpr(el, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &values.List{Elements: elems}, nil
}

// evalDictLit implements DictLit: evaluate pairs in order, duplicate
// keys overwrite.
func (e *Evaluator) evalDictLit(x *parser.DictLitExpr, env scope.Chain) (values.Value, error) {
	d := values.NewDict()
	for i := range x.Keys {
		k, err := e.evalExpr(x.Keys[i], env)
		if err != nil {
			return nil, err
		}
		v, err := e.evalExpr(x.Values[i], env)
		if err != nil {
			return nil, err
		}
		d.Set(k, v)
	}
	return d, nil
}
