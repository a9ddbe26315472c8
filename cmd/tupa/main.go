/*
File    : Tupa/cmd/tupa/main.go
*/

// Command tupa is the entry point for the Tupã interpreter. It provides
// three modes of operation:
//  1. REPL mode (default, no arguments): interactive read-eval-print loop
//  2. File mode: execute a Tupã source file
//  3. AST mode (--ast <file>): parse a file and print its AST, no evaluation
//
// There is no networked-REPL "server" mode; Tupã has no networking
// surface.
package main

import (
	"os"

	"github.com/Mathewsz/Tupa/eval"
	"github.com/Mathewsz/Tupa/parser"
	"github.com/Mathewsz/Tupa/repl"
	"github.com/fatih/color"
)

const version = "0.1.0"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		repl.New().Start(os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "--ast":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "[ERRO DE USO] faltando arquivo para --ast. Uso: tupa --ast <arquivo>")
			os.Exit(1)
		}
		runAST(args[1])
	default:
		runFile(args[0])
	}
}

func showHelp() {
	cyanColor.Println("Tupã - uma linguagem de script interpretada")
	cyanColor.Println("")
	cyanColor.Println("USO:")
	yellowColor.Println("  tupa                     inicia o modo REPL interativo")
	yellowColor.Println("  tupa <arquivo>           executa um arquivo Tupã")
	yellowColor.Println("  tupa --ast <arquivo>     imprime a árvore sintática do arquivo, sem executar")
	yellowColor.Println("  tupa --help              exibe esta mensagem")
	yellowColor.Println("  tupa --version           exibe a versão")
}

func showVersion() {
	cyanColor.Printf("Tupã versão %s\n", version)
}

// runFile reads and executes a Tupã source file with the file-mode error
// policy: a parse or runtime error is reported and the process exits
// non-zero, unlike the REPL which recovers and keeps the session alive.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[ERRO DE ARQUIVO] não foi possível ler '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	if err := eval.RunSource(string(content), os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// runAST parses (but does not evaluate) a file and prints its AST.
func runAST(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[ERRO DE ARQUIVO] não foi possível ler '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	prog, err := parser.ParseProgram(string(content))
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	printAST(os.Stdout, prog)
}
