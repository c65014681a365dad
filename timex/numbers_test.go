package timex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ploteq/timex/cfg"
	"github.com/ploteq/timex/earley"
	"github.com/ploteq/timex/timex"
)

func parseNumber(t *testing.T, words ...string) int {
	t.Helper()
	g := timex.NewCardinalGrammar()
	input := make([]cfg.Token, len(words))
	for i, w := range words {
		input[i] = timex.NewToken(w)
	}
	trees := earley.Parse(input, g.Grammar)
	require.NotEmpty(t, trees, "no parse for %v", words)
	v, err := g.Eval(trees[0])
	require.NoError(t, err)
	n, ok := v.(int)
	require.True(t, ok, "expected int, got %T", v)
	return n
}

func TestCardinalGrammar(t *testing.T) {
	for _, tt := range []struct {
		words []string
		want  int
	}{
		{[]string{"twenty-one"}, 21},
		{[]string{"one", "hundred", "and", "thirty-seven"}, 137},
		{[]string{"nineteen", "ninety-nine"}, 1999},
		{[]string{"four", "hundred", "thousand", "nine", "hundred", "and", "one"}, 400901},
	} {
		t.Run(tt.words[0], func(t *testing.T) {
			require.Equal(t, tt.want, parseNumber(t, tt.words...))
		})
	}
}
