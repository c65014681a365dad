package timex_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ploteq/timex/cfg"
	"github.com/ploteq/timex/timex"
)

// doNotParseGrammar builds a tiny grammar (following NewCardinalGrammar's
// precedent of assembling cfg combinators directly) whose sole production
// flags a two-word phrase as non-temporal, exercising timex.Parse's
// DoNotParse-flattening branch without relying on the English grammar.
func doNotParseGrammar() *cfg.AttributeGrammar {
	isWord := func(want string) cfg.FuncTerminal {
		return cfg.FuncTerminal{Name: want, Fn: func(tok cfg.Token) bool {
			t, ok := tok.(timex.Token)
			return ok && t.Word() == want
		}}
	}

	greeting := cfg.NewProduction("timex", isWord("good"), isWord("morning"))
	rules := []cfg.Rule{
		{Production: greeting, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return timex.DoNotParse{Members: []timex.Term{rhs[0], rhs[1]}}, nil
		}},
	}
	return cfg.NewAttributeGrammar("timex", rules)
}

func TestParseFlattensDoNotParse(t *testing.T) {
	g := doNotParseGrammar()
	terms := timex.Parse(timex.Tokenize("good morning"), g, zerolog.Nop())
	require.Len(t, terms, 2)
}

func TestParseFallsBackToRawTokenOnEvalError(t *testing.T) {
	failing := cfg.NewProduction("timex", cfg.Any{})
	g := cfg.NewAttributeGrammar("timex", []cfg.Rule{
		{Production: failing, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return nil, assertErr
		}},
	})
	terms := timex.Parse(timex.Tokenize("whatever"), g, zerolog.Nop())
	require.Len(t, terms, 1)
	_, ok := terms[0].(timex.Token)
	require.True(t, ok, "expected raw Token fallback, got %T", terms[0])
}

var assertErr = errDoNotParseEval{}

type errDoNotParseEval struct{}

func (errDoNotParseEval) Error() string { return "eval failed" }
