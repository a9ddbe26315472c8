/*
File    : Tupa/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop for Tupã,
// started when "tupa" runs with no file argument. It reuses a single
// eval.Evaluator across lines and exits the session on "sair".
package repl

import (
	"io"
	"strings"

	"github.com/Mathewsz/Tupa/eval"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output: separators in blue, the banner in
// green, version/info lines in cyan, errors in red.
var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
)

const exitWord = "sair"

// Repl holds the display configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New builds a Repl with Tupã's banner, version, and prompt.
func New() *Repl {
	return &Repl{
		Banner:  banner,
		Version: "0.1.0",
		Line:    strings.Repeat("-", 48),
		Prompt:  ">>> ",
	}
}

const banner = `
  _____ _   _ ____   _
 |_   _| | | |  _ \ / \
   | | | | | | |_) / _ \
   | | | |_| |  __/ ___ \
   |_|  \___/|_| /_/   \_\
`

// printBanner shows the startup banner and basic usage instructions.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "Tupã %s (um interpretador de Tupã)\n", r.Version)
	cyanColor.Fprintf(w, "Digite seu código e pressione enter.\n")
	cyanColor.Fprintf(w, "Digite '%s' para sair.\n", exitWord)
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL main loop: one eval.Evaluator persists across every
// line so top-level `criar` bindings accumulate in a single global
// scope, matching file-mode semantics line by line instead of statement
// by statement.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	interp := eval.New()
	interp.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Até logo!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == exitWord {
			w.Write([]byte("Até logo!\n"))
			return
		}
		rl.SaveHistory(line)

		r.evalLine(w, line, interp)
	}
}

// evalLine evaluates one line against the REPL's running session,
// recovering from any host panic so a single bad line never kills the
// session.
func (r *Repl) evalLine(w io.Writer, line string, interp *eval.Evaluator) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[erro interno] %v\n", rec)
		}
	}()

	if err := interp.EvalInSession(line); err != nil {
		redColor.Fprintf(w, "Erro: %s\n", err)
	}
}
