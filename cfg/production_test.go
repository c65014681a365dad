package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ploteq/timex/cfg"
)

func TestProductionStringRendersLiteralsAndNonterminals(t *testing.T) {
	p := cfg.NewProduction("date", cfg.Nonterminal("month"), cfg.Literal("the"), cfg.Nonterminal("day"))

	assert.Equal(t, "date -> month the day", p.String())
}

func TestProductionIdentityNotValue(t *testing.T) {
	p1 := cfg.NewProduction("month", cfg.Literal("october"))
	p2 := cfg.NewProduction("month", cfg.Literal("october"))

	assert.NotSame(t, p1, p2)
	assert.Equal(t, p1.LHS, p2.LHS)

	m := map[*cfg.Production]int{p1: 1}
	_, ok := m[p2]
	assert.False(t, ok, "distinct Production pointers must not collide as map keys even with equal contents")
}
