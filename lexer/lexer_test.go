package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokensOf(src string) []Token {
	l := New(src)

	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}

	return toks
}

func TestLexer_NumberForms(t *testing.T) {
	for _, src := range []string{"3", "3.14", ".5", "1e10", "1.5e+3", "2E-2"} {
		toks := tokensOf(src)
		assert.Equal(t, Number, toks[0].Kind, src)
		assert.Equal(t, src, toks[0].Lexeme)
	}
}

func TestLexer_ExponentWithoutDigitsIsNotConsumed(t *testing.T) {
	toks := tokensOf("1e")
	assert.Equal(t, Number, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Lexeme)
	assert.Equal(t, ID, toks[1].Kind)
	assert.Equal(t, "e", toks[1].Lexeme)
}

func TestLexer_KeywordsVsIdentifiers(t *testing.T) {
	toks := tokensOf("table tableau")
	assert.Equal(t, Keyword, toks[0].Kind)
	assert.Equal(t, ID, toks[2].Kind)
}

func TestLexer_DdPunctVsIdentifier(t *testing.T) {
	toks := tokensOf("d/d")
	assert.Equal(t, Punct, toks[0].Kind)
	assert.Equal(t, "d/d", toks[0].Lexeme)

	toks = tokensOf("dx")
	assert.Equal(t, ID, toks[0].Kind)
	assert.Equal(t, "dx", toks[0].Lexeme)
}

func TestLexer_MultiCharPunctBeforePrefix(t *testing.T) {
	cases := map[string]string{
		"->": "->", "<=": "<=", ">=": ">=", "...": "...", "@{": "@{", "#{": "#{",
	}
	for src, want := range cases {
		toks := tokensOf(src)
		assert.Equal(t, Punct, toks[0].Kind, src)
		assert.Equal(t, want, toks[0].Lexeme, src)
	}

	// Prefixes still work alone.
	toks := tokensOf("<")
	assert.Equal(t, "<", toks[0].Lexeme)
}

func TestLexer_StringEscapes(t *testing.T) {
	toks := tokensOf(`"a\"b"`)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, `"a\"b"`, toks[0].Lexeme)
}

func TestLexer_PrimeRun(t *testing.T) {
	toks := tokensOf("f'''(x)")
	assert.Equal(t, ID, toks[0].Kind)
	assert.Equal(t, Prime, toks[1].Kind)
	assert.Equal(t, "'''", toks[1].Lexeme)
}

func TestLexer_SemiVsSpace(t *testing.T) {
	toks := tokensOf("a\n\nb")
	assert.Equal(t, ID, toks[0].Kind)
	assert.Equal(t, Semi, toks[1].Kind)
	assert.Equal(t, ID, toks[2].Kind)

	toks = tokensOf("a b")
	assert.Equal(t, Space, toks[1].Kind)

	toks = tokensOf("a;b")
	assert.Equal(t, Semi, toks[1].Kind)
	assert.Equal(t, ";", toks[1].Lexeme)
}

func TestLexer_CommentToEndOfLine(t *testing.T) {
	toks := tokensOf("x // trailing\ny")
	assert.Equal(t, ID, toks[0].Kind)
	assert.Equal(t, Space, toks[1].Kind)
	assert.Equal(t, Comment, toks[2].Kind)
	assert.Equal(t, "// trailing", toks[2].Lexeme)
}

func TestLexer_InvalidCharacter(t *testing.T) {
	toks := tokensOf("a$b")
	assert.Equal(t, Invalid, toks[1].Kind)
	assert.Equal(t, "$", toks[1].Lexeme)
}

func TestLexer_EOFIsStableAtEnd(t *testing.T) {
	l := New("x")
	tok := l.Next()
	assert.Equal(t, ID, tok.Kind)
	tok = l.Next()
	assert.Equal(t, EOF, tok.Kind)
	end := tok.Offset
	tok = l.Next()
	assert.Equal(t, EOF, tok.Kind)
	assert.Equal(t, end, tok.Offset)
}

func TestLexer_EmptyInputYieldsOnlyEOF(t *testing.T) {
	toks := tokensOf("")
	assert.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
}
