/*
File    : Tupa/parser/parser_classes.go
*/
package parser

import "github.com/Mathewsz/Tupa/lexer"

// parseClassDecl parses `classe IDENT (varDecl | funcDecl)* fim`,
// splitting the body into attribute initializers and methods as it goes.
func (p *Parser) parseClassDecl() Statement {
	tok := p.CurrToken
	if !p.expectAdvance(lexer.IDENT) {
		return nil
	}
	name := p.CurrToken.Literal
	p.advance()

	var attrs []AttrDeclNode
	var methods []*FuncDeclStmt
	for !p.currIs(lexer.FIM) {
		if p.currIs(lexer.EOF) {
			p.errorf(p.CurrToken, "classe não terminada: esperado 'fim'")
			return &ClassDeclStmt{base: base{tok}, Name: name, Attrs: attrs, Methods: methods}
		}
		switch p.CurrToken.Type {
		case lexer.CRIAR:
			if vd, ok := p.parseVarDecl().(*VarDeclStmt); ok {
				attrs = append(attrs, AttrDeclNode{Name: vd.Name, Init: vd.Init})
			}
		case lexer.FUNCAO:
			if fd, ok := p.parseFuncDecl().(*FuncDeclStmt); ok {
				methods = append(methods, fd)
			}
		default:
			p.errorf(p.CurrToken, "esperado 'criar' ou 'função' no corpo da classe, encontrado %s", p.CurrToken.Type)
		}
		p.advance()
	}
	return &ClassDeclStmt{base: base{tok}, Name: name, Attrs: attrs, Methods: methods}
}
