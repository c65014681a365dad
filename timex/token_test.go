package timex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ploteq/timex/timex"
)

func TestNewToken(t *testing.T) {
	tok := timex.NewToken("Monday/NNP")
	assert.Equal(t, "monday", tok.Word())
	tag, ok := tok.POS()
	assert.True(t, ok)
	assert.Equal(t, "NNP", tag)

	bare := timex.NewToken("yesterday")
	assert.Equal(t, "yesterday", bare.Word())
	_, ok = bare.POS()
	assert.False(t, ok)
}

func TestTokenize(t *testing.T) {
	toks := timex.Tokenize("Next Sunday, please.")
	var words []string
	for _, tok := range toks {
		words = append(words, tok.Word())
	}
	assert.Equal(t, []string{"next", "sunday", "please"}, words)
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "next", timex.NewToken("next").String())
	assert.Equal(t, "next/JJ", timex.NewToken("next/JJ").String())
}
