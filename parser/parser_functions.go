/*
File    : Tupa/parser/parser_functions.go
*/
package parser

import "github.com/Mathewsz/Tupa/lexer"

// parseBlockNode wraps parseBlock's statement list in a
// *BlockStatementNode, the shape values.Function.Body expects.
func (p *Parser) parseBlockNode(stopAt ...lexer.TokenType) *BlockStatementNode {
	tok := p.CurrToken
	stmts := p.parseBlock(stopAt...)
	return &BlockStatementNode{base: base{tok}, Statements: stmts}
}

// parseFuncDecl parses `função IDENT "(" (IDENT ("," IDENT)*)? ")"
// statement* "fim"`.
func (p *Parser) parseFuncDecl() Statement {
	tok := p.CurrToken
	if !p.expectAdvance(lexer.IDENT) {
		return nil
	}
	name := p.CurrToken.Literal
	if !p.expectAdvance(lexer.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	p.advance() // onto first body token
	body := p.parseBlockNode(lexer.FIM)
	if !p.currIs(lexer.FIM) {
		p.errorf(p.CurrToken, "esperado 'fim', encontrado %s", p.CurrToken.Type)
		return nil
	}
	return &FuncDeclStmt{base: base{tok}, Name: name, Params: params, Body: body}
}

// parseParamList parses `(IDENT ("," IDENT)*)?`; CurrToken is '(' on
// entry, ')' on exit.
func (p *Parser) parseParamList() []string {
	var params []string
	if p.nextIs(lexer.RPAREN) {
		p.advance()
		return params
	}
	if !p.expectAdvance(lexer.IDENT) {
		return params
	}
	params = append(params, p.CurrToken.Literal)
	for p.nextIs(lexer.COMMA) {
		p.advance() // onto ','
		if !p.expectAdvance(lexer.IDENT) {
			return params
		}
		params = append(params, p.CurrToken.Literal)
	}
	p.expectAdvance(lexer.RPAREN)
	return params
}
