/*
File    : Tupa/eval/eval_classes.go
*/
package eval

import (
	"github.com/Mathewsz/Tupa/parser"
	"github.com/Mathewsz/Tupa/scope"
	"github.com/Mathewsz/Tupa/values"
)

// evalClassDecl implements ClassDecl: build a Class value holding the
// attribute initializers (as AST, evaluated fresh per instance) and the
// method table, then bind it under its name. Classes have no
// user-defined constructor; there is no hook run automatically on
// instantiation beyond the attribute initializers.
func (e *Evaluator) evalClassDecl(s *parser.ClassDeclStmt, env scope.Chain) (values.Value, error) {
	methods := make(map[string]*values.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name] = &values.Function{
			Name:    m.Name,
			Params:  m.Params,
			Body:    m.Body,
			Closure: env.Clone(),
		}
	}

	attrs := make([]values.AttrInit, len(s.Attrs))
	for i, a := range s.Attrs {
		attrs[i] = values.AttrInit{Name: a.Name, Expr: a.Init}
	}

	cls := &values.Class{Name: s.Name, Attrs: attrs, Methods: methods}
	env.Define(s.Name, cls)
	return values.AbsentValue, nil
}

// instantiate implements Class invocation: allocate the attribute map and
// evaluate every initializer expression in the scope active at the call
// site, not the class's defining scope (unlike methods, which close over
// it).
func (e *Evaluator) instantiate(cls *values.Class, env scope.Chain) (values.Value, error) {
	inst := values.NewInstance(cls)
	for _, attr := range cls.Attrs {
		expr, ok := attr.Expr.(parser.Expr)
		if !ok {
			continue
		}
		v, err := e.evalExpr(expr, env)
		if err != nil {
			return nil, err
		}
		inst.Attrs[attr.Name] = v
	}
	return inst, nil
}
