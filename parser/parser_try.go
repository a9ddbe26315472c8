/*
File    : Tupa/parser/parser_try.go
*/
package parser

import "github.com/Mathewsz/Tupa/lexer"

// parseTryStmt parses `tentar statement* pegar IDENT statement* fim`.
func (p *Parser) parseTryStmt() Statement {
	tok := p.CurrToken
	p.advance()
	tryBlock := p.parseBlock(lexer.PEGAR)
	if !p.currIs(lexer.PEGAR) {
		p.errorf(p.CurrToken, "esperado 'pegar', encontrado %s", p.CurrToken.Type)
		return nil
	}
	if !p.expectAdvance(lexer.IDENT) {
		return nil
	}
	catchVar := p.CurrToken.Literal
	p.advance()
	catchBlock := p.parseBlock(lexer.FIM)
	if !p.currIs(lexer.FIM) {
		p.errorf(p.CurrToken, "esperado 'fim', encontrado %s", p.CurrToken.Type)
		return nil
	}
	return &TryCatchStmt{base: base{tok}, Try: tryBlock, CatchVar: catchVar, Catch: catchBlock}
}
