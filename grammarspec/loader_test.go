package grammarspec_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ploteq/timex/cfg"
	"github.com/ploteq/timex/earley"
	"github.com/ploteq/timex/grammarspec"
)

func identity(args []string) (cfg.Action, error) {
	return cfg.DefaultAction, nil
}

func upperAction(args []string) (cfg.Action, error) {
	return func(rhs []cfg.Value) (cfg.Value, error) {
		s, _ := rhs[0].(string)
		out := ""
		for _, r := range s {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out += string(r)
		}
		return out, nil
	}, nil
}

func digitsTerminal(args []string) (cfg.Terminal, error) {
	return cfg.NewRegexpTerminal(`[0-9]+`, "digits")
}

func testBindings() grammarspec.Bindings {
	return grammarspec.Bindings{
		Actions: map[string]grammarspec.ActionFactory{
			"identity": identity,
			"upper":    upperAction,
		},
		Terminals: map[string]grammarspec.TerminalFactory{
			"digits": digitsTerminal,
		},
	}
}

const src = `month -> "october" { upper }
           | "november" { upper }
year -> digits() { identity }
date -> month year { identity }
`

func TestLoadCompilesProductionsAndActions(t *testing.T) {
	g, err := grammarspec.Load(src, "date", testBindings(), zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.Equal(t, cfg.Nonterminal("date"), g.Start())

	monthProds, ok := g.Productions("month")
	require.True(t, ok)
	assert.Len(t, monthProds, 2)

	dateProds, ok := g.Productions("date")
	require.True(t, ok)
	assert.Len(t, dateProds, 1)
}

func TestLoadedGrammarParsesAndEvaluates(t *testing.T) {
	g, err := grammarspec.Load(src, "date", testBindings(), zerolog.Nop())
	require.NoError(t, err)

	trees := earley.Parse([]cfg.Token{"october", "1985"}, g.Grammar)
	require.Len(t, trees, 1)

	v, err := g.Eval(trees[0])
	require.NoError(t, err)
	assert.Equal(t, "OCTOBER", v)
}

func TestLoadUnknownActionNameFails(t *testing.T) {
	bad := `month -> "october" { nonexistent }
`
	_, err := grammarspec.Load(bad, "month", testBindings(), zerolog.Nop())
	require.Error(t, err)

	var actionErr *grammarspec.InvalidActionError
	assert.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "nonexistent", actionErr.Name)
}

func TestLoadUnknownTerminalFactoryFails(t *testing.T) {
	bad := `year -> bogus() { identity }
`
	_, err := grammarspec.Load(bad, "year", testBindings(), zerolog.Nop())
	require.Error(t, err)

	var actionErr *grammarspec.InvalidActionError
	assert.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "bogus", actionErr.Name)
}

func TestTokenizeBalancesDelimitersAndStrings(t *testing.T) {
	toks, err := grammarspec.Tokenize(`sym -> "a, b" { f(1, "x, y") }
`)
	require.NoError(t, err)

	var kinds []grammarspec.TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, grammarspec.EXPR)
	assert.Contains(t, kinds, grammarspec.STRING)
	assert.Contains(t, kinds, grammarspec.ENDMARKER)
}
