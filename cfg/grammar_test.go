package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ploteq/timex/cfg"
)

func TestNewGrammarPreservesDeclarationOrder(t *testing.T) {
	pMonth := cfg.NewProduction("month", cfg.Literal("october"))
	pDay := cfg.NewProduction("day", cfg.Literal("monday"))
	pMonth2 := cfg.NewProduction("month", cfg.Literal("november"))

	g := cfg.NewGrammar("month", []*cfg.Production{pMonth, pDay, pMonth2})

	assert.Equal(t, cfg.Nonterminal("month"), g.Start())
	assert.Equal(t, []cfg.Nonterminal{"month", "day"}, g.Symbols())

	ps, ok := g.Productions("month")
	require.True(t, ok)
	assert.Equal(t, []*cfg.Production{pMonth, pMonth2}, ps)

	_, ok = g.Productions("year")
	assert.False(t, ok)
}

func TestParseTreeLeavesAndEqual(t *testing.T) {
	p := cfg.NewProduction("month", cfg.Literal("october"))
	t1 := cfg.NewParseTree(p, []any{"october"})
	t2 := cfg.NewParseTree(p, []any{"october"})
	t3 := cfg.NewParseTree(p, []any{"november"})

	assert.Equal(t, []cfg.Token{"october"}, t1.Leaves())
	assert.True(t, t1.Equal(t2))
	assert.False(t, t1.Equal(t3))

	wrapper := cfg.NewProduction("date", cfg.Nonterminal("month"))
	nested := cfg.NewParseTree(wrapper, []any{t1})
	assert.Equal(t, []cfg.Token{"october"}, nested.Leaves())
}

func TestAttributeGrammarEvalDefaultAndCustomAction(t *testing.T) {
	litOct := cfg.NewProduction("month", cfg.Literal("october"))
	wrap := cfg.NewProduction("date", cfg.Nonterminal("month"))

	upper := func(rhs []cfg.Value) (cfg.Value, error) {
		s, _ := rhs[0].(string)
		out := ""
		for _, r := range s {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out += string(r)
		}
		return out, nil
	}

	ag := cfg.NewAttributeGrammar("date", []cfg.Rule{
		{Production: litOct, Action: upper},
		{Production: wrap},
	})

	tree := cfg.NewParseTree(wrap, []any{
		cfg.NewParseTree(litOct, []any{"october"}),
	})

	v, err := ag.Eval(tree)
	require.NoError(t, err)
	assert.Equal(t, "OCTOBER", v)
}

func TestErrors(t *testing.T) {
	err := &cfg.ErrUnknownSymbol{Symbol: "bogus"}
	assert.Contains(t, err.Error(), "bogus")

	wrapped := &cfg.InvalidGrammarSpecError{Reason: "bad acronym", Err: assert.AnError}
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Contains(t, wrapped.Error(), "bad acronym")
}
