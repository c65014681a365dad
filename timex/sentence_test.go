package timex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ploteq/timex/timex"
)

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "a b c", timex.NormalizeSpace("  a   b\tc\n"))
	assert.Equal(t, "", timex.NormalizeSpace("   "))
}

func TestSplitSentences(t *testing.T) {
	got := timex.SplitSentences("He left on Monday. She arrives next Sunday!  What time is that?")
	assert.Equal(t, []string{
		"He left on Monday.",
		"She arrives next Sunday!",
		"What time is that?",
	}, got)
}

func TestSplitSentencesEmpty(t *testing.T) {
	assert.Nil(t, timex.SplitSentences("   "))
}
