/*
File    : Tupa/parser/parser_statements.go
*/
package parser

import "github.com/Mathewsz/Tupa/lexer"

// parseStatement dispatches on CurrToken to the matching statement parser:
// varDecl | print | input | if | while | for | funcDecl | return |
// classDecl | try | use | exprStmt. Returns nil on a parse error recorded
// into p.Errors.
func (p *Parser) parseStatement() Statement {
	switch p.CurrToken.Type {
	case lexer.CRIAR:
		return p.parseVarDecl()
	case lexer.MOSTRAR:
		return p.parsePrintStmt()
	case lexer.PEGAR:
		return p.parseInputStmt()
	case lexer.SE:
		return p.parseIfStmt()
	case lexer.ENQUANTO:
		return p.parseWhileStmt()
	case lexer.PARA:
		return p.parseForStmt()
	case lexer.FUNCAO:
		return p.parseFuncDecl()
	case lexer.DEVOLVER:
		return p.parseReturnStmt()
	case lexer.CLASSE:
		return p.parseClassDecl()
	case lexer.TENTAR:
		return p.parseTryStmt()
	case lexer.USAR:
		return p.parseUseStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseBlock consumes statements until CurrToken is one of stopAt (left
// positioned ON the stop token, never consuming it) or EOF, which is a
// SyntaxError: missing `fim`.
func (p *Parser) parseBlock(stopAt ...lexer.TokenType) []Statement {
	var stmts []Statement
	for {
		if p.currIs(lexer.EOF) {
			p.errorf(p.CurrToken, "bloco não terminado: esperado 'fim'")
			return stmts
		}
		for _, t := range stopAt {
			if p.currIs(t) {
				return stmts
			}
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.advance()
	}
}

// parseVarDecl parses `criar ("lista"|"dicionário")? IDENT "=" expr`.
func (p *Parser) parseVarDecl() Statement {
	tok := p.CurrToken
	kind := ""
	if p.nextIs(lexer.LISTA) || p.nextIs(lexer.DICIONARIO) {
		p.advance()
		kind = string(p.CurrToken.Type)
	}
	if !p.expectAdvance(lexer.IDENT) {
		return nil
	}
	name := p.CurrToken.Literal
	if !p.expectAdvance(lexer.ASSIGN) {
		return nil
	}
	p.advance()
	init := p.parseExpression(LOWEST)
	return &VarDeclStmt{base: base{tok}, Kind: kind, Name: name, Init: init}
}

func (p *Parser) parsePrintStmt() Statement {
	tok := p.CurrToken
	p.advance()
	expr := p.parseExpression(LOWEST)
	return &PrintStmt{base: base{tok}, Expr: expr}
}

func (p *Parser) parseInputStmt() Statement {
	tok := p.CurrToken
	if !p.expectAdvance(lexer.IDENT) {
		return nil
	}
	return &InputStmt{base: base{tok}, Name: p.CurrToken.Literal}
}

// parseIfStmt parses `se expr então stmt* (senão stmt*)? fim`.
func (p *Parser) parseIfStmt() Statement {
	tok := p.CurrToken
	p.advance()
	cond := p.parseExpression(LOWEST)
	if !p.expectAdvance(lexer.ENTAO) {
		return nil
	}
	p.advance()
	then := p.parseBlock(lexer.SENAO, lexer.FIM)

	var elseBlock []Statement
	if p.currIs(lexer.SENAO) {
		p.advance()
		elseBlock = p.parseBlock(lexer.FIM)
	}
	if !p.currIs(lexer.FIM) {
		p.errorf(p.CurrToken, "esperado 'fim', encontrado %s", p.CurrToken.Type)
		return nil
	}
	return &IfStmt{base: base{tok}, Cond: cond, Then: then, Else: elseBlock}
}

// parseWhileStmt parses `enquanto expr fazer stmt* fim`.
func (p *Parser) parseWhileStmt() Statement {
	tok := p.CurrToken
	p.advance()
	cond := p.parseExpression(LOWEST)
	if !p.expectAdvance(lexer.FAZER) {
		return nil
	}
	p.advance()
	body := p.parseBlock(lexer.FIM)
	if !p.currIs(lexer.FIM) {
		p.errorf(p.CurrToken, "esperado 'fim', encontrado %s", p.CurrToken.Type)
		return nil
	}
	return &WhileStmt{base: base{tok}, Cond: cond, Body: body}
}

// parseForStmt parses `para IDENT ("em" expr | "de" expr "até" expr)
// "fazer" stmt* "fim"`, branching into ForEach or ForRange depending on
// which keyword follows the loop variable.
func (p *Parser) parseForStmt() Statement {
	tok := p.CurrToken
	if !p.expectAdvance(lexer.IDENT) {
		return nil
	}
	varName := p.CurrToken.Literal

	switch p.NextToken.Type {
	case lexer.EM:
		p.advance() // onto EM
		p.advance() // onto collection expr
		coll := p.parseExpression(LOWEST)
		if !p.expectAdvance(lexer.FAZER) {
			return nil
		}
		p.advance()
		body := p.parseBlock(lexer.FIM)
		if !p.currIs(lexer.FIM) {
			p.errorf(p.CurrToken, "esperado 'fim', encontrado %s", p.CurrToken.Type)
			return nil
		}
		return &ForEachStmt{base: base{tok}, Var: varName, Collection: coll, Body: body}
	case lexer.DE:
		p.advance() // onto DE
		p.advance() // onto start expr
		start := p.parseExpression(LOWEST)
		if !p.expectAdvance(lexer.ATE) {
			return nil
		}
		p.advance()
		end := p.parseExpression(LOWEST)
		if !p.expectAdvance(lexer.FAZER) {
			return nil
		}
		p.advance()
		body := p.parseBlock(lexer.FIM)
		if !p.currIs(lexer.FIM) {
			p.errorf(p.CurrToken, "esperado 'fim', encontrado %s", p.CurrToken.Type)
			return nil
		}
		return &ForRangeStmt{base: base{tok}, Var: varName, Start: start, End: end, Body: body}
	default:
		p.errorf(p.NextToken, "esperado 'em' ou 'de', encontrado %s", p.NextToken.Type)
		return nil
	}
}

func (p *Parser) parseReturnStmt() Statement {
	tok := p.CurrToken
	p.advance()
	expr := p.parseExpression(LOWEST)
	return &ReturnStmt{base: base{tok}, Expr: expr}
}

func (p *Parser) parseUseStmt() Statement {
	tok := p.CurrToken
	if !p.expectAdvance(lexer.IDENT) {
		return nil
	}
	return &UseStmt{base: base{tok}, Module: p.CurrToken.Literal}
}

func (p *Parser) parseExprStmt() Statement {
	tok := p.CurrToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	return &ExprStmt{base: base{tok}, Expr: expr}
}
