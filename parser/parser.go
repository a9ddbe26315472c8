/*
File    : Tupa/parser/parser.go
*/
package parser

import (
	"fmt"

	"github.com/Mathewsz/Tupa/lexer"
	"github.com/Mathewsz/Tupa/tupaerr"
)

// Parser turns a token stream into an AST using two-token lookahead:
// CurrToken/NextToken plus advance()/expectNext()/expectAdvance(), with a
// collected Errors slice instead of panicking on the first mistake.
type Parser struct {
	lex *lexer.Lexer

	CurrToken lexer.Token
	NextToken lexer.Token

	Errors []*tupaerr.Error
}

// New creates a Parser positioned at the first two tokens of src.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

// advance shifts NextToken into CurrToken and pulls a fresh token from the
// lexer. A lex error is recorded (not panicked) so the parser can keep
// going and report everything it can.
func (p *Parser) advance() {
	p.CurrToken = p.NextToken
	tok, err := p.lex.NextToken()
	if err != nil {
		if te, ok := tupaerr.As(err); ok {
			p.Errors = append(p.Errors, te)
		}
		tok = lexer.Token{Type: lexer.INVALID, Line: p.CurrToken.Line, Column: p.CurrToken.Column}
	}
	p.NextToken = tok
}

func (p *Parser) currIs(t lexer.TokenType) bool { return p.CurrToken.Type == t }
func (p *Parser) nextIs(t lexer.TokenType) bool { return p.NextToken.Type == t }

// expectNext reports whether NextToken matches expected, recording an
// error if not.
func (p *Parser) expectNext(expected lexer.TokenType) bool {
	if p.NextToken.Type != expected {
		p.errorf(p.NextToken, "esperado %s, encontrado %s", expected, p.NextToken.Type)
		return false
	}
	return true
}

// expectAdvance checks expectNext and, on success, advances past it.
func (p *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !p.expectNext(expected) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...interface{}) {
	p.Errors = append(p.Errors, tupaerr.NewSyntaxError(tok.Line, tok.Column, format, args...))
}

// HasErrors reports whether any parse errors were collected.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// Err folds all collected errors into a single error value, nil if none.
// The REPL and file driver only need to surface the first failure;
// the Errors field remains available for callers that want the whole
// list.
func (p *Parser) Err() error {
	if len(p.Errors) == 0 {
		return nil
	}
	return p.Errors[0]
}

// ParseProgram parses the whole token stream into a Program, stopping at
// EOF. It always returns a non-nil *Program (possibly with some
// statements missing where errors occurred) alongside the first error,
// so callers get positional diagnostics instead of a generic failure.
func ParseProgram(src string) (*Program, error) {
	p := New(src)
	prog := &Program{base: base{tok: p.CurrToken}}
	for !p.currIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.advance()
	}
	return prog, p.Err()
}

// unexpectedTokenErr is a convenience for a primary/statement parse
// function that ran into a token it has no rule for.
func (p *Parser) unexpectedTokenErr(tok lexer.Token) {
	p.errorf(tok, "token inesperado: %s", tok.Type)
}

// String aids debugging/tests.
func (p *Parser) String() string {
	return fmt.Sprintf("curr=%s next=%s", p.CurrToken, p.NextToken)
}
