/*
File    : Tupa/eval/eval_controls.go
*/
package eval

import (
	"github.com/Mathewsz/Tupa/parser"
	"github.com/Mathewsz/Tupa/scope"
	"github.com/Mathewsz/Tupa/tupaerr"
	"github.com/Mathewsz/Tupa/values"
)

// evalIfStmt implements If: both branches execute in the enclosing
// scope, no fresh scope pushed.
func (e *Evaluator) evalIfStmt(s *parser.IfStmt, env scope.Chain) (values.Value, error) {
	cond, err := e.evalExpr(s.Cond, env)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return values.AbsentValue, e.evalStatements(s.Then, env)
	}
	return values.AbsentValue, e.evalStatements(s.Else, env)
}

// evalWhileStmt implements While: re-evaluate the condition each
// iteration, body runs in the enclosing scope. There is no
// break/continue in the language.
func (e *Evaluator) evalWhileStmt(s *parser.WhileStmt, env scope.Chain) (values.Value, error) {
	for {
		cond, err := e.evalExpr(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			return values.AbsentValue, nil
		}
		if err := e.evalStatements(s.Body, env); err != nil {
			return nil, err
		}
	}
}

// evalForRangeStmt implements ForRange: push a fresh scope, evaluate
// start/end once, bind the loop variable, run body while loop_var <= end
// incrementing by one each pass, pop on every exit. The upper bound is
// inclusive, so `para i de 5 até 5` runs exactly once.
func (e *Evaluator) evalForRangeStmt(s *parser.ForRangeStmt, env scope.Chain) (values.Value, error) {
	loopEnv := env.Push()

	startV, err := e.evalExpr(s.Start, env)
	if err != nil {
		return nil, err
	}
	endV, err := e.evalExpr(s.End, env)
	if err != nil {
		return nil, err
	}
	start, ok1 := asInt(startV)
	end, ok2 := asInt(endV)
	if !ok1 || !ok2 {
		line, col := tokPos(s)
		return nil, tupaerr.NewTypeError(line, col, "limites de 'para ... de ... até' devem ser inteiros")
	}

	for i := start; i <= end; i++ {
		loopEnv.Define(s.Var, &values.Integer{Value: i})
		if err := e.evalStatements(s.Body, loopEnv); err != nil {
			return nil, err
		}
	}
	return values.AbsentValue, nil
}

// evalForEachStmt implements ForEach: push a fresh scope, iterate the
// collection (list elements, dict keys, or string characters), pop on
// every exit.
func (e *Evaluator) evalForEachStmt(s *parser.ForEachStmt, env scope.Chain) (values.Value, error) {
	loopEnv := env.Push()

	collV, err := e.evalExpr(s.Collection, env)
	if err != nil {
		return nil, err
	}

	var elements []values.Value
	switch c := collV.(type) {
	case *values.List:
		elements = c.Elements
	case *values.Dict:
		for _, entry := range c.Entries {
			elements = append(elements, entry.Key)
		}
	case *values.String:
		for _, r := range c.Value {
			elements = append(elements, &values.String{Value: string(r)})
		}
	default:
		line, col := tokPos(s)
		return nil, tupaerr.NewTypeError(line, col, "'para ... em' exige lista, dicionário ou texto, recebeu %s", collV.Type())
	}

	for _, el := range elements {
		loopEnv.Define(s.Var, el)
		if err := e.evalStatements(s.Body, loopEnv); err != nil {
			return nil, err
		}
	}
	return values.AbsentValue, nil
}

func asInt(v values.Value) (int64, bool) {
	switch n := v.(type) {
	case *values.Integer:
		return n.Value, true
	case *values.Real:
		return int64(n.Value), true
	default:
		return 0, false
	}
}
