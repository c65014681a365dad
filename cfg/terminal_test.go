package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ploteq/timex/cfg"
)

type wordTok struct {
	word string
	pos  string
}

func (w wordTok) Word() string { return w.word }
func (w wordTok) POS() (string, bool) {
	if w.pos == "" {
		return "", false
	}
	return w.pos, true
}

func TestLiteralMatches(t *testing.T) {
	lit := cfg.Literal("October")

	assert.True(t, lit.Matches("october"))
	assert.True(t, lit.Matches("OCTOBER"))
	assert.False(t, lit.Matches("november"))
	assert.False(t, lit.Matches(""))
	assert.False(t, lit.Matches(nil))
}

func TestRegexpTerminalAnchoredAtStart(t *testing.T) {
	re, err := cfg.NewRegexpTerminal(`[0-9]+`, "digits")
	require.NoError(t, err)

	assert.True(t, re.Matches("1985"))
	assert.False(t, re.Matches("october"))
}

func TestAcronymMatchesBothForms(t *testing.T) {
	a, err := cfg.NewAcronym("a.d.")
	require.NoError(t, err)

	assert.True(t, a.Matches("a.d."))
	assert.True(t, a.Matches("ad"))
	assert.False(t, a.Matches("ab"))

	bare, err := cfg.NewAcronym("ad")
	require.NoError(t, err)
	assert.True(t, bare.Matches("a.d."))
	assert.True(t, bare.Matches("ad"))

	_, err = cfg.NewAcronym("a..d")
	assert.Error(t, err)
}

func TestAbbrevPrefixAndMinLen(t *testing.T) {
	abbr, err := cfg.NewAbbrev("September", 3)
	require.NoError(t, err)

	assert.True(t, abbr.Matches("sep"))
	assert.True(t, abbr.Matches("sep."))
	assert.True(t, abbr.Matches("september"))
	assert.False(t, abbr.Matches("se"))
	assert.False(t, abbr.Matches("october"))
}

func TestPOSTerminal(t *testing.T) {
	p := cfg.POSTerminal("NN")

	assert.True(t, p.Matches(wordTok{word: "monday", pos: "NN"}))
	assert.False(t, p.Matches(wordTok{word: "monday", pos: "VB"}))
	assert.False(t, p.Matches(wordTok{word: "monday"}))
	assert.False(t, p.Matches("monday"))
}

func TestAnyMatchesEveryNonNilToken(t *testing.T) {
	var a cfg.Any
	assert.True(t, a.Matches("anything"))
	assert.True(t, a.Matches(42))
	assert.False(t, a.Matches(nil))
}
