/*
File    : Tupa/eval/eval_functions.go
*/
package eval

import (
	"github.com/Mathewsz/Tupa/parser"
	"github.com/Mathewsz/Tupa/scope"
	"github.com/Mathewsz/Tupa/tupaerr"
	"github.com/Mathewsz/Tupa/values"
)

// evalFuncDecl implements FuncDecl: build a Function capturing parameter
// names, body, and a snapshot of the current scope chain, bind it under
// its name in the current scope.
func (e *Evaluator) evalFuncDecl(s *parser.FuncDeclStmt, env scope.Chain) (values.Value, error) {
	fn := &values.Function{
		Name:    s.Name,
		Params:  s.Params,
		Body:    s.Body,
		Closure: env.Clone(),
	}
	env.Define(s.Name, fn)
	return values.AbsentValue, nil
}

// evalReturnStmt implements Return: evaluate the expression and raise it
// as a ctrlReturn signal that unwinds to the nearest call boundary.
func (e *Evaluator) evalReturnStmt(s *parser.ReturnStmt, env scope.Chain) (values.Value, error) {
	v, err := e.evalExpr(s.Expr, env)
	if err != nil {
		return nil, err
	}
	return nil, &ctrlReturn{Value: v}
}

// CallValue implements values.Runtime, letting native functions call back
// into user-defined functions. It is the same dispatch evalCall uses for
// a Call node's callee, except that evalCall instantiates a Class in the
// call site's scope while CallValue uses the global scope.
func (e *Evaluator) CallValue(fn values.Value, args []values.Value) (values.Value, error) {
	switch callee := fn.(type) {
	case *values.Function:
		return e.callFunction(callee, args)
	case *values.BoundMethod:
		return e.callBoundMethod(callee, args)
	case *values.Native:
		return callee.Fn(e, args)
	case *values.Class:
		return e.instantiate(callee, e.Global)
	default:
		return nil, tupaerr.NewTypeError(0, 0, "tipo %s não é chamável", fn.Type())
	}
}

// callFunction runs a Function's body: push a scope parented to its
// captured closure (not the caller's scope), bind parameters
// positionally with missing arguments bound to the absent-value
// sentinel, execute, and unwrap any ctrlReturn into a plain value. Each
// call gets its own fresh scope, so nested and recursive calls never
// share return state.
func (e *Evaluator) callFunction(fn *values.Function, args []values.Value) (values.Value, error) {
	closure, ok := fn.Closure.(scope.Chain)
	if !ok {
		return nil, tupaerr.NewTypeError(0, 0, "função %s sem cadeia de escopo válida", fn.Name)
	}
	body, ok := fn.Body.(*parser.BlockStatementNode)
	if !ok {
		return nil, tupaerr.NewTypeError(0, 0, "função %s sem corpo válido", fn.Name)
	}

	callEnv := closure.Push()
	bindParams(callEnv, fn.Params, args)

	err := e.evalStatements(body.Statements, callEnv)
	if err == nil {
		return values.AbsentValue, nil
	}
	if ret, isReturn := err.(*ctrlReturn); isReturn {
		return ret.Value, nil
	}
	return nil, err
}

// callBoundMethod calls a method with `self` bound ahead of the
// positional parameters: calling it pushes a scope, binds self to the
// instance, and binds the remaining parameters positionally.
func (e *Evaluator) callBoundMethod(bm *values.BoundMethod, args []values.Value) (values.Value, error) {
	closure, ok := bm.Method.Closure.(scope.Chain)
	if !ok {
		return nil, tupaerr.NewTypeError(0, 0, "método %s sem cadeia de escopo válida", bm.Method.Name)
	}
	body, ok := bm.Method.Body.(*parser.BlockStatementNode)
	if !ok {
		return nil, tupaerr.NewTypeError(0, 0, "método %s sem corpo válido", bm.Method.Name)
	}

	callEnv := closure.Push()
	callEnv.Define("self", bm.Receiver)
	bindParams(callEnv, bm.Method.Params, args)

	err := e.evalStatements(body.Statements, callEnv)
	if err == nil {
		return values.AbsentValue, nil
	}
	if ret, isReturn := err.(*ctrlReturn); isReturn {
		return ret.Value, nil
	}
	return nil, err
}

// bindParams binds args to params positionally; a missing argument binds
// to the absent-value sentinel.
func bindParams(env scope.Chain, params []string, args []values.Value) {
	for i, name := range params {
		if i < len(args) {
			env.Define(name, args[i])
		} else {
			env.Define(name, values.AbsentValue)
		}
	}
}
