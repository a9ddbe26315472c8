/*
File    : Tupa/cmd/tupa/ast_print.go
*/
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Mathewsz/Tupa/parser"
)

const astIndentSize = 2

// astPrinter walks a parsed Program and prints one line per node,
// indented by nesting depth, via a type switch over the full
// statement/expression set rather than an Accept/Visit pair per node
// type.
type astPrinter struct {
	indent int
	out    io.Writer
}

func printAST(w io.Writer, prog *parser.Program) {
	p := &astPrinter{out: w}
	p.line("Program")
	p.indented(func() {
		for _, stmt := range prog.Statements {
			p.statement(stmt)
		}
	})
}

func (p *astPrinter) line(format string, args ...any) {
	fmt.Fprintf(p.out, "%s%s\n", strings.Repeat(" ", p.indent), fmt.Sprintf(format, args...))
}

func (p *astPrinter) indented(body func()) {
	p.indent += astIndentSize
	body()
	p.indent -= astIndentSize
}

func (p *astPrinter) block(stmts []parser.Statement) {
	p.indented(func() {
		for _, s := range stmts {
			p.statement(s)
		}
	})
}

func (p *astPrinter) statement(s parser.Statement) {
	switch n := s.(type) {
	case *parser.VarDeclStmt:
		p.line("VarDecl %s", n.Name)
		p.indented(func() { p.expr(n.Init) })
	case *parser.PrintStmt:
		p.line("Print")
		p.indented(func() { p.expr(n.Expr) })
	case *parser.InputStmt:
		p.line("Input %s", n.Name)
	case *parser.IfStmt:
		p.line("If")
		p.indented(func() { p.expr(n.Cond) })
		p.line("Then")
		p.block(n.Then)
		if n.Else != nil {
			p.line("Else")
			p.block(n.Else)
		}
	case *parser.WhileStmt:
		p.line("While")
		p.indented(func() { p.expr(n.Cond) })
		p.block(n.Body)
	case *parser.ForRangeStmt:
		p.line("ForRange %s", n.Var)
		p.indented(func() {
			p.expr(n.Start)
			p.expr(n.End)
		})
		p.block(n.Body)
	case *parser.ForEachStmt:
		p.line("ForEach %s", n.Var)
		p.indented(func() { p.expr(n.Collection) })
		p.block(n.Body)
	case *parser.FuncDeclStmt:
		p.line("FuncDecl %s(%s)", n.Name, strings.Join(n.Params, ", "))
		p.block(n.Body.Statements)
	case *parser.ReturnStmt:
		p.line("Return")
		p.indented(func() { p.expr(n.Expr) })
	case *parser.ClassDeclStmt:
		p.line("ClassDecl %s", n.Name)
		p.indented(func() {
			for _, a := range n.Attrs {
				p.line("Attr %s", a.Name)
				p.indented(func() { p.expr(a.Init) })
			}
			for _, m := range n.Methods {
				p.statement(m)
			}
		})
	case *parser.TryCatchStmt:
		p.line("TryCatch pegar %s", n.CatchVar)
		p.block(n.Try)
		p.block(n.Catch)
	case *parser.UseStmt:
		p.line("Use %s", n.Module)
	case *parser.ExprStmt:
		p.line("ExprStmt")
		p.indented(func() { p.expr(n.Expr) })
	default:
		p.line("? (%T)", s)
	}
}

func (p *astPrinter) expr(e parser.Expr) {
	if e == nil {
		p.line("<nil>")
		return
	}
	switch n := e.(type) {
	case *parser.LiteralExpr:
		p.line("Literal %v", literalValue(n))
	case *parser.VariableExpr:
		p.line("Variable %s", n.Name)
	case *parser.GroupExpr:
		p.line("Group")
		p.indented(func() { p.expr(n.Inner) })
	case *parser.UnaryExpr:
		p.line("Unary %s", n.Op)
		p.indented(func() { p.expr(n.Right) })
	case *parser.BinaryExpr:
		p.line("Binary %s", n.Op)
		p.indented(func() {
			p.expr(n.Left)
			p.expr(n.Right)
		})
	case *parser.LogicalExpr:
		p.line("Logical %s", n.Op)
		p.indented(func() {
			p.expr(n.Left)
			p.expr(n.Right)
		})
	case *parser.AssignExpr:
		p.line("Assign %s", n.Name)
		p.indented(func() { p.expr(n.Value) })
	case *parser.IndexAssignExpr:
		p.line("IndexAssign")
		p.indented(func() {
			p.expr(n.Object)
			p.expr(n.Index)
			p.expr(n.Value)
		})
	case *parser.AttrAssignExpr:
		p.line("AttrAssign %s", n.Attr)
		p.indented(func() {
			p.expr(n.Object)
			p.expr(n.Value)
		})
	case *parser.CallExpr:
		p.line("Call")
		p.indented(func() {
			p.expr(n.Callee)
			for _, a := range n.Args {
				p.expr(a)
			}
		})
	case *parser.IndexExpr:
		p.line("Index")
		p.indented(func() {
			p.expr(n.Object)
			p.expr(n.Index)
		})
	case *parser.AttrExpr:
		p.line("Attr %s", n.Name)
		p.indented(func() { p.expr(n.Object) })
	case *parser.ListLitExpr:
		p.line("ListLit")
		p.indented(func() {
			for _, el := range n.Elements {
				p.expr(el)
			}
		})
	case *parser.DictLitExpr:
		p.line("DictLit")
		p.indented(func() {
			for i, k := range n.Keys {
				p.expr(k)
				p.expr(n.Values[i])
			}
		})
	default:
		p.line("? (%T)", e)
	}
}

func literalValue(n *parser.LiteralExpr) any {
	switch n.Kind {
	case parser.LiteralInt:
		return n.Int
	case parser.LiteralReal:
		return n.Real
	case parser.LiteralString:
		return n.Str
	case parser.LiteralBool:
		return n.Bool
	default:
		return nil
	}
}
