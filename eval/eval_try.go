/*
File    : Tupa/eval/eval_try.go
*/
package eval

import (
	"github.com/Mathewsz/Tupa/parser"
	"github.com/Mathewsz/Tupa/scope"
	"github.com/Mathewsz/Tupa/tupaerr"
	"github.com/Mathewsz/Tupa/values"
)

// evalTryCatchStmt implements TryCatch: run the try block; a language-
// level error (or any other host error) is caught by pushing a fresh
// scope, binding the error's message under the catch variable, and
// running the catch block. A devolver propagating through the try
// block is not an error and is left to keep unwinding.
func (e *Evaluator) evalTryCatchStmt(s *parser.TryCatchStmt, env scope.Chain) (values.Value, error) {
	err := e.evalStatements(s.Try, env)
	if err == nil {
		return values.AbsentValue, nil
	}
	if _, isReturn := err.(*ctrlReturn); isReturn {
		return nil, err
	}

	catchEnv := env.Push()
	catchEnv.Define(s.CatchVar, &values.String{Value: errorMessage(err)})
	return values.AbsentValue, e.evalStatements(s.Catch, catchEnv)
}

func errorMessage(err error) string {
	if te, ok := tupaerr.As(err); ok {
		return te.Message
	}
	return err.Error()
}
