package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/token"
)

func TestKindStringKnown(t *testing.T) {
	assert.Equal(t, "(", token.LeftParen.String())
	assert.Equal(t, "while", token.KwWhile.String())
	assert.Equal(t, "identifier", token.Identifier.String())
}

func TestKindStringUnknownFallsBackToQuestionMark(t *testing.T) {
	assert.Equal(t, "?", token.Kind(-1).String())
}

func TestKeywordsNeverMapToIdentifier(t *testing.T) {
	for word, kind := range token.Keywords {
		assert.NotEqual(t, token.Identifier, kind, "keyword %q must not map to Identifier", word)
		assert.NotEmpty(t, kind.String())
	}
}

func TestTokenStringIncludesLexeme(t *testing.T) {
	tok := token.Token{Kind: token.Identifier, Lexeme: "foo"}
	assert.Equal(t, "identifier(foo)", tok.String())
}
