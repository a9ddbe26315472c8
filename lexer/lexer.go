/*
File    : Tupa/lexer/lexer.go
*/
package lexer

import (
	"strings"
	"unicode"

	"github.com/Mathewsz/Tupa/tupaerr"
)

// Lexer performs lexical analysis of Tupã source code. It scans the
// source rune by rune (not byte by byte, so that the language's accented
// identifier characters are handled correctly) and tracks line/column for
// diagnostics.
type Lexer struct {
	src    []rune
	pos    int // index of Current in src
	length int
	Line   int
	Column int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{
		src:    []rune(src),
		pos:    0,
		length: len([]rune(src)),
		Line:   1,
		Column: 1,
	}
}

// Tokenize scans the whole source and returns the full token sequence,
// terminated by an EOF token.
func Tokenize(src string) ([]Token, error) {
	lex := New(src)
	var toks []Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) current() rune {
	if l.pos >= l.length {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peek(offset int) rune {
	idx := l.pos + offset
	if idx >= l.length {
		return 0
	}
	return l.src[idx]
}

func (l *Lexer) advance() {
	if l.pos < l.length {
		if l.src[l.pos] == '\n' {
			l.Line++
			l.Column = 1
		} else {
			l.Column++
		}
		l.pos++
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < l.length {
		c := l.current()
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			l.advance()
			continue
		}
		if c == '/' && l.peek(1) == '/' {
			for l.pos < l.length && l.current() != '\n' {
				l.advance()
			}
			continue
		}
		break
	}
}

// isIdentStart reports whether r can start an identifier: ASCII letters,
// underscore, or an accented letter (unicode.IsLetter covers upper and
// lower case accented characters without enumerating each one).
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// NextToken scans and returns the next token, advancing the lexer. It
// never produces a signed-number literal: a leading '-' is always the
// MINUS operator token, with unary minus left to the parser.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespaceAndComments()

	line, col := l.Line, l.Column

	if l.pos >= l.length {
		return Token{Type: EOF, Literal: "", Line: line, Column: col}, nil
	}

	c := l.current()

	switch {
	case isDigit(c):
		return l.readNumber(line, col), nil
	case c == '"' || c == '\'':
		return l.readString(line, col, c)
	case isIdentStart(c):
		return l.readIdentifier(line, col), nil
	}

	// Two-character operators first.
	two := string(c) + string(l.peek(1))
	switch two {
	case "==":
		l.advance()
		l.advance()
		return Token{Type: EQ, Literal: "==", Line: line, Column: col}, nil
	case "!=":
		l.advance()
		l.advance()
		return Token{Type: NOT_EQ, Literal: "!=", Line: line, Column: col}, nil
	case "<=":
		l.advance()
		l.advance()
		return Token{Type: LT_EQ, Literal: "<=", Line: line, Column: col}, nil
	case ">=":
		l.advance()
		l.advance()
		return Token{Type: GT_EQ, Literal: ">=", Line: line, Column: col}, nil
	}

	single := map[rune]TokenType{
		'+': PLUS,
		'-': MINUS,
		'*': STAR,
		'/': SLASH,
		'(': LPAREN,
		')': RPAREN,
		'[': LBRACKET,
		']': RBRACKET,
		'{': LBRACE,
		'}': RBRACE,
		',': COMMA,
		'.': DOT,
		':': COLON,
		'<': LT,
		'>': GT,
		'=': ASSIGN,
	}
	if typ, ok := single[c]; ok {
		l.advance()
		return Token{Type: typ, Literal: string(c), Line: line, Column: col}, nil
	}

	if c == '!' {
		l.advance()
		return Token{}, tupaerr.NewLexError(line, col, "caractere inválido: '!' (use 'não' para negação)")
	}

	l.advance()
	return Token{}, tupaerr.NewLexError(line, col, "caractere inválido: '%c'", c)
}

func (l *Lexer) readNumber(line, col int) Token {
	var sb strings.Builder
	for l.pos < l.length && isDigit(l.current()) {
		sb.WriteRune(l.current())
		l.advance()
	}
	// A single '.' followed by a digit promotes the literal to real.
	if l.current() == '.' && isDigit(l.peek(1)) {
		sb.WriteRune('.')
		l.advance()
		for l.pos < l.length && isDigit(l.current()) {
			sb.WriteRune(l.current())
			l.advance()
		}
	}
	return Token{Type: NUMBER, Literal: sb.String(), Line: line, Column: col}
}

func (l *Lexer) readString(line, col int, quote rune) (Token, error) {
	l.advance() // consume opening quote
	var sb strings.Builder
	for {
		if l.pos >= l.length {
			return Token{}, tupaerr.NewLexError(line, col, "string não terminada")
		}
		if l.current() == quote {
			l.advance()
			break
		}
		sb.WriteRune(l.current())
		l.advance()
	}
	return Token{Type: STRING, Literal: sb.String(), Line: line, Column: col}, nil
}

func (l *Lexer) readIdentifier(line, col int) Token {
	var sb strings.Builder
	for l.pos < l.length && isIdentPart(l.current()) {
		sb.WriteRune(l.current())
		l.advance()
	}
	lit := sb.String()
	return Token{Type: lookupIdent(lit), Literal: lit, Line: line, Column: col}
}
