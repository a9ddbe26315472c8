/*
File    : Tupa/parser/parser_expressions.go
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/Mathewsz/Tupa/lexer"
)

// Precedence levels, lowest to highest: assignment (handled separately,
// as a post-parse rewrite), logical ou, logical e, equality, comparison,
// additive, multiplicative, unary, call/index/attr, primary.
const (
	LOWEST = iota
	OR
	AND
	EQUALITY
	COMPARISON
	ADDITIVE
	MULTIPLICATIVE
	UNARY
	CALL
)

var precedences = map[lexer.TokenType]int{
	lexer.OU:       OR,
	lexer.E:        AND,
	lexer.EQ:       EQUALITY,
	lexer.NOT_EQ:   EQUALITY,
	lexer.LT:       COMPARISON,
	lexer.GT:       COMPARISON,
	lexer.LT_EQ:    COMPARISON,
	lexer.GT_EQ:    COMPARISON,
	lexer.PLUS:     ADDITIVE,
	lexer.MINUS:    ADDITIVE,
	lexer.STAR:     MULTIPLICATIVE,
	lexer.SLASH:    MULTIPLICATIVE,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: CALL,
	lexer.DOT:      CALL,
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.NextToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) currPrecedence() int {
	if pr, ok := precedences[p.CurrToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// parseExpression implements the precedence climb. The assignment
// rewrite is applied by every call made at LOWEST precedence (statement
// level, and inside groups, brackets, braces and argument lists).
func (p *Parser) parseExpression(prec int) Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for !p.nextIs(lexer.EOF) && prec < p.peekPrecedence() {
		switch p.NextToken.Type {
		case lexer.OU, lexer.E:
			p.advance()
			left = p.parseLogical(left)
		case lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH,
			lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.GT, lexer.LT_EQ, lexer.GT_EQ:
			p.advance()
			left = p.parseBinary(left)
		case lexer.LPAREN:
			p.advance()
			left = p.parseCall(left)
		case lexer.LBRACKET:
			p.advance()
			left = p.parseIndex(left)
		case lexer.DOT:
			p.advance()
			left = p.parseAttr(left)
		default:
			return left
		}
	}

	if prec == LOWEST && p.nextIs(lexer.ASSIGN) {
		p.advance() // onto '='
		tok := p.CurrToken
		p.advance() // onto value's first token
		value := p.parseExpression(LOWEST)
		return p.rewriteAssign(tok, left, value)
	}

	return left
}

// rewriteAssign validates that target is a Variable, Index, or Attr
// expression and re-emits the corresponding assignment node. Any other
// target is a SyntaxError.
func (p *Parser) rewriteAssign(tok lexer.Token, target, value Expr) Expr {
	switch t := target.(type) {
	case *VariableExpr:
		return &AssignExpr{base: base{tok}, Name: t.Name, Value: value}
	case *IndexExpr:
		return &IndexAssignExpr{base: base{tok}, Object: t.Object, Index: t.Index, Value: value}
	case *AttrExpr:
		return &AttrAssignExpr{base: base{tok}, Object: t.Object, Attr: t.Name, Value: value}
	default:
		p.errorf(tok, "alvo de atribuição inválido")
		return target
	}
}

func (p *Parser) parseLogical(left Expr) Expr {
	op := p.CurrToken
	prec := p.currPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	return &LogicalExpr{base: base{op}, Op: op.Type, Left: left, Right: right}
}

func (p *Parser) parseBinary(left Expr) Expr {
	op := p.CurrToken
	prec := p.currPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	return &BinaryExpr{base: base{op}, Op: op.Type, Left: left, Right: right}
}

// parsePrefix dispatches on CurrToken for everything that can start an
// expression: literals, identifiers, grouping, unary operators, and
// collection literals.
func (p *Parser) parsePrefix() Expr {
	switch p.CurrToken.Type {
	case lexer.NUMBER:
		return p.parseNumberLiteral()
	case lexer.STRING:
		return &LiteralExpr{base: base{p.CurrToken}, Kind: LiteralString, Str: p.CurrToken.Literal}
	case lexer.BOOL:
		return &LiteralExpr{base: base{p.CurrToken}, Kind: LiteralBool, Bool: p.CurrToken.Literal == "verdadeiro"}
	case lexer.IDENT:
		return &VariableExpr{base: base{p.CurrToken}, Name: p.CurrToken.Literal}
	case lexer.LPAREN:
		return p.parseGroup()
	case lexer.LBRACKET:
		return p.parseListLit()
	case lexer.LBRACE:
		return p.parseDictLit()
	case lexer.MINUS, lexer.NAO:
		return p.parseUnary()
	default:
		p.unexpectedTokenErr(p.CurrToken)
		return nil
	}
}

func (p *Parser) parseNumberLiteral() Expr {
	tok := p.CurrToken
	if strings.Contains(tok.Literal, ".") {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf(tok, "número real inválido: %s", tok.Literal)
			return nil
		}
		return &LiteralExpr{base: base{tok}, Kind: LiteralReal, Real: f}
	}
	n, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf(tok, "número inteiro inválido: %s", tok.Literal)
		return nil
	}
	return &LiteralExpr{base: base{tok}, Kind: LiteralInt, Int: n}
}

func (p *Parser) parseGroup() Expr {
	tok := p.CurrToken
	p.advance()
	inner := p.parseExpression(LOWEST)
	if !p.expectAdvance(lexer.RPAREN) {
		return inner
	}
	return &GroupExpr{base: base{tok}, Inner: inner}
}

func (p *Parser) parseUnary() Expr {
	tok := p.CurrToken
	p.advance()
	right := p.parseExpression(UNARY)
	return &UnaryExpr{base: base{tok}, Op: tok.Type, Right: right}
}

// parseCall parses the argument list of a call whose callee has already
// been parsed; CurrToken is the '(' on entry.
func (p *Parser) parseCall(callee Expr) Expr {
	tok := p.CurrToken
	args := p.parseExprList(lexer.RPAREN)
	return &CallExpr{base: base{tok}, Callee: callee, Args: args}
}

// parseExprList parses a comma-separated expression list up to (and
// consuming) the closing token; CurrToken is the opening delimiter on
// entry.
func (p *Parser) parseExprList(closing lexer.TokenType) []Expr {
	var list []Expr
	if p.nextIs(closing) {
		p.advance()
		return list
	}
	p.advance()
	list = append(list, p.parseExpression(LOWEST))
	for p.nextIs(lexer.COMMA) {
		p.advance() // onto ','
		p.advance() // onto next element
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expectAdvance(closing) {
		return list
	}
	return list
}

func (p *Parser) parseIndex(object Expr) Expr {
	tok := p.CurrToken
	p.advance()
	idx := p.parseExpression(LOWEST)
	if !p.expectAdvance(lexer.RBRACKET) {
		return &IndexExpr{base: base{tok}, Object: object, Index: idx}
	}
	return &IndexExpr{base: base{tok}, Object: object, Index: idx}
}

func (p *Parser) parseAttr(object Expr) Expr {
	tok := p.CurrToken
	if !p.expectAdvance(lexer.IDENT) {
		return object
	}
	return &AttrExpr{base: base{tok}, Object: object, Name: p.CurrToken.Literal}
}

func (p *Parser) parseListLit() Expr {
	tok := p.CurrToken
	elems := p.parseExprList(lexer.RBRACKET)
	return &ListLitExpr{base: base{tok}, Elements: elems}
}

// parseDictLit parses `{ key: value, ... }`.
func (p *Parser) parseDictLit() Expr {
	tok := p.CurrToken
	var keys, vals []Expr
	if p.nextIs(lexer.RBRACE) {
		p.advance()
		return &DictLitExpr{base: base{tok}, Keys: keys, Values: vals}
	}
	for {
		p.advance()
		k := p.parseExpression(LOWEST)
		if !p.expectAdvance(lexer.COLON) {
			break
		}
		p.advance()
		v := p.parseExpression(LOWEST)
		keys = append(keys, k)
		vals = append(vals, v)
		if !p.nextIs(lexer.COMMA) {
			break
		}
		p.advance()
	}
	p.expectAdvance(lexer.RBRACE)
	return &DictLitExpr{base: base{tok}, Keys: keys, Values: vals}
}
