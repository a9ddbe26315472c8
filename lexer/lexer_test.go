/*
File    : Tupa/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typesOf(t *testing.T, src string) []TokenType {
	t.Helper()
	toks, err := Tokenize(src)
	require.NoError(t, err)
	types := make([]TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeKeywordsAndPunctuation(t *testing.T) {
	src := `criar n = 10
se n > 5 então
mostrar "grande"
senão
mostrar "pequeno"
fim`
	types := typesOf(t, src)
	assert.Equal(t, []TokenType{
		CRIAR, IDENT, ASSIGN, NUMBER,
		SE, IDENT, GT, NUMBER, ENTAO,
		MOSTRAR, STRING,
		SENAO,
		MOSTRAR, STRING,
		FIM,
		EOF,
	}, types)
}

func TestTokenizeOperators(t *testing.T) {
	src := `+ - * / ( ) [ ] { } , . : == != <= >= =`
	types := typesOf(t, src)
	assert.Equal(t, []TokenType{
		PLUS, MINUS, STAR, SLASH, LPAREN, RPAREN, LBRACKET, RBRACKET,
		LBRACE, RBRACE, COMMA, DOT, COLON, EQ, NOT_EQ, LT_EQ, GT_EQ, ASSIGN, EOF,
	}, types)
}

func TestTokenizeNumberPromotesToRealOnDot(t *testing.T) {
	toks, err := Tokenize("3.14")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, NUMBER, toks[0].Type)
	assert.Equal(t, "3.14", toks[0].Literal)
}

func TestTokenizeMinusNeverJoinsNumber(t *testing.T) {
	toks, err := Tokenize("-5")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, MINUS, toks[0].Type)
	assert.Equal(t, NUMBER, toks[1].Type)
	assert.Equal(t, "5", toks[1].Literal)
}

func TestTokenizeStringNoEscapeProcessing(t *testing.T) {
	toks, err := Tokenize(`"ol\n\"a""`)
	require.NoError(t, err)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, `ol\n\`, toks[0].Literal)
}

func TestTokenizeUnterminatedStringIsLexError(t *testing.T) {
	_, err := Tokenize(`"abc`)
	require.Error(t, err)
	lexErr, ok := err.(interface{ Error() string })
	require.True(t, ok)
	assert.Contains(t, lexErr.Error(), "não terminada")
}

func TestTokenizeAccentedIdentifiers(t *testing.T) {
	toks, err := Tokenize("criar situação = verdadeiro")
	require.NoError(t, err)
	assert.Equal(t, IDENT, toks[1].Type)
	assert.Equal(t, "situação", toks[1].Literal)
	assert.Equal(t, BOOL, toks[2+1].Type)
}

func TestTokenizeBangAloneIsLexError(t *testing.T) {
	_, err := Tokenize("!")
	require.Error(t, err)
}

func TestTokenizeBangEqualIsNotEqualOperator(t *testing.T) {
	toks, err := Tokenize("1 != 2")
	require.NoError(t, err)
	assert.Equal(t, NOT_EQ, toks[1].Type)
}

func TestTokenizeLineComment(t *testing.T) {
	toks, err := Tokenize("criar x = 1 // comentário até o fim da linha\nmostrar x")
	require.NoError(t, err)
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{CRIAR, IDENT, ASSIGN, NUMBER, MOSTRAR, IDENT, EOF}, types)
}

func TestLineColumnTracking(t *testing.T) {
	toks, err := Tokenize("criar x = 1\nmostrar x")
	require.NoError(t, err)
	// "mostrar" is the first token on line 2.
	var mostrarTok Token
	for _, tok := range toks {
		if tok.Type == MOSTRAR {
			mostrarTok = tok
			break
		}
	}
	assert.Equal(t, 2, mostrarTok.Line)
	assert.Equal(t, 1, mostrarTok.Column)
}
