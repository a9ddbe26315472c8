/*
File    : Tupa/eval/evaluator.go
*/

// Package eval walks the AST the parser builds, threading a scope.Chain
// through every node and producing (values.Value, error) results. Scopes
// form a chain of shared, pointer-backed frames rather than a single
// linked environment, and control-flow signals (errors, returns) flow
// through Go's ordinary (Value, error) channel rather than a boxed
// interpreter object.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/Mathewsz/Tupa/natives"
	"github.com/Mathewsz/Tupa/parser"
	"github.com/Mathewsz/Tupa/scope"
	"github.com/Mathewsz/Tupa/tupaerr"
	"github.com/Mathewsz/Tupa/values"
)

// Evaluator is a single interpreter instance: a persistent global scope
// chain, the fixed module registry, and the I/O streams `mostrar`/`pegar`
// read and write. The REPL reuses one Evaluator across lines; file mode
// builds one and discards it.
type Evaluator struct {
	Global  scope.Chain
	Modules *natives.Registry
	Writer  io.Writer
	Reader  *bufio.Reader
}

// New creates a fully initialized Evaluator: global scope populated with
// the fixed built-ins, stdout/stdin as the default streams.
func New() *Evaluator {
	e := &Evaluator{
		Global:  scope.NewChain(),
		Modules: natives.NewRegistry(),
		Writer:  os.Stdout,
		Reader:  bufio.NewReader(os.Stdin),
	}
	for name, fn := range natives.Builtins() {
		e.Global.Define(name, fn)
	}
	return e
}

// SetWriter redirects `mostrar` output, primarily for tests capturing
// program output into a buffer.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects `pegar` input, primarily for tests feeding
// scripted stdin.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// ctrlReturn is the internal non-local-transfer signal `devolver`
// raises, propagating the value up through the current call frame. It
// implements error so it can travel through the same (Value, error)
// channel ordinary failures use, while never being mistaken for one:
// callers that mean to surface failures check tupaerr.As first.
// callFunction and callBoundMethod consume it at the call boundary, and
// EvalInSession drops it when it reaches the top level.
type ctrlReturn struct {
	Value values.Value
}

func (c *ctrlReturn) Error() string { return "devolver fora de uma chamada" }

// RunSource parses and evaluates text with a brand-new Evaluator,
// writing `mostrar` output to w. This is the file-mode entry point: one
// interpreter instance, used once, discarded.
func RunSource(text string, w io.Writer) error {
	e := New()
	e.SetWriter(w)
	return e.EvalInSession(text)
}

// EvalInSession parses text and evaluates it against the Evaluator's
// persistent global chain, the REPL's entry point: each line (or pasted
// block) reuses the same global scope as the ones before it.
func (e *Evaluator) EvalInSession(text string) error {
	prog, err := parser.ParseProgram(text)
	if err != nil {
		return err
	}
	for _, stmt := range prog.Statements {
		_, err := e.evalStatement(stmt, e.Global)
		if err != nil {
			if _, isReturn := err.(*ctrlReturn); isReturn {
				continue // devolver at top level is a no-op
			}
			return err
		}
	}
	return nil
}

// evalStatements runs a statement list under env, stopping at (and
// returning) the first error, including a propagating ctrlReturn, which
// callers that represent a call boundary must intercept themselves.
func (e *Evaluator) evalStatements(stmts []parser.Statement, env scope.Chain) error {
	for _, stmt := range stmts {
		if _, err := e.evalStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func tokPos(n parser.Node) (int, int) {
	tok := n.Token()
	return tok.Line, tok.Column
}

// unreachableToken builds a position-carrying error for an AST shape the
// parser should never actually hand the evaluator.
func unreachableToken(n parser.Node, what string) error {
	line, col := tokPos(n)
	return tupaerr.NewTypeError(line, col, "forma de nó não suportada: %s", what)
}
