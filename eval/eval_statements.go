/*
File    : Tupa/eval/eval_statements.go
*/
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mathewsz/Tupa/parser"
	"github.com/Mathewsz/Tupa/scope"
	"github.com/Mathewsz/Tupa/tupaerr"
	"github.com/Mathewsz/Tupa/values"
)

// evalStatement dispatches a single statement node to its evaluator.
// The returned Value is meaningful only for ExprStmt. Return yields a nil
// Value and carries its result in a ctrlReturn error; every other
// statement kind returns values.AbsentValue.
func (e *Evaluator) evalStatement(stmt parser.Statement, env scope.Chain) (values.Value, error) {
	switch s := stmt.(type) {
	case *parser.VarDeclStmt:
		return e.evalVarDecl(s, env)
	case *parser.PrintStmt:
		return e.evalPrintStmt(s, env)
	case *parser.InputStmt:
		return e.evalInputStmt(s, env)
	case *parser.IfStmt:
		return e.evalIfStmt(s, env)
	case *parser.WhileStmt:
		return e.evalWhileStmt(s, env)
	case *parser.ForRangeStmt:
		return e.evalForRangeStmt(s, env)
	case *parser.ForEachStmt:
		return e.evalForEachStmt(s, env)
	case *parser.FuncDeclStmt:
		return e.evalFuncDecl(s, env)
	case *parser.ReturnStmt:
		return e.evalReturnStmt(s, env)
	case *parser.ClassDeclStmt:
		return e.evalClassDecl(s, env)
	case *parser.TryCatchStmt:
		return e.evalTryCatchStmt(s, env)
	case *parser.UseStmt:
		return e.evalUseStmt(s, env)
	case *parser.ExprStmt:
		return e.evalExpr(s.Expr, env)
	default:
		return nil, unreachableToken(stmt, "statement")
	}
}

// evalVarDecl implements VarDecl: evaluate initializer, define in the
// current scope. The lista/dicionário kind tag is informational only;
// there is no runtime enforcement of it.
func (e *Evaluator) evalVarDecl(s *parser.VarDeclStmt, env scope.Chain) (values.Value, error) {
	v, err := e.evalExpr(s.Init, env)
	if err != nil {
		return nil, err
	}
	env.Define(s.Name, v)
	return values.AbsentValue, nil
}

// evalPrintStmt implements Print: write the canonical text form
// followed by a newline.
func (e *Evaluator) evalPrintStmt(s *parser.PrintStmt, env scope.Chain) (values.Value, error) {
	v, err := e.evalExpr(s.Expr, env)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.Writer, v.ToText())
	return values.AbsentValue, nil
}

// evalInputStmt implements Input: read one line, try integer then real,
// else keep the raw string.
func (e *Evaluator) evalInputStmt(s *parser.InputStmt, env scope.Chain) (values.Value, error) {
	line, _ := e.Reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")

	var v values.Value
	if n, convErr := strconv.ParseInt(line, 10, 64); convErr == nil {
		v = &values.Integer{Value: n}
	} else if f, convErr := strconv.ParseFloat(line, 64); convErr == nil {
		v = &values.Real{Value: f}
	} else {
		v = &values.String{Value: line}
	}
	env.Define(s.Name, v)
	return values.AbsentValue, nil
}

// evalUseStmt implements Use: splice the named module's exports into the
// current scope.
func (e *Evaluator) evalUseStmt(s *parser.UseStmt, env scope.Chain) (values.Value, error) {
	exports, ok := e.Modules.Lookup(s.Module)
	if !ok {
		line, col := tokPos(s)
		return nil, tupaerr.NewNameError(line, col, "módulo desconhecido: %s", s.Module)
	}
	for name, val := range exports {
		env.Define(name, val)
	}
	return values.AbsentValue, nil
}
