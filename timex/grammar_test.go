package timex_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	chrono "github.com/ploteq/timex"
	"github.com/ploteq/timex/cfg"
	"github.com/ploteq/timex/timex"
)

func mustGrammar(t *testing.T) *cfg.AttributeGrammar {
	t.Helper()
	g, err := timex.NewEnglishGrammar(zerolog.Nop())
	require.NoError(t, err)
	return g
}

func TestTwoWeeksAgo(t *testing.T) {
	g := mustGrammar(t)
	terms := timex.Parse(timex.Tokenize("two weeks ago"), g, zerolog.Nop())
	require.Len(t, terms, 1)

	interval, ok := terms[0].(timex.PastAnchoredInterval)
	require.True(t, ok, "expected PastAnchoredInterval, got %T", terms[0])

	wd, ok := interval.Duration.(chrono.WeeksDuration)
	require.True(t, ok, "expected WeeksDuration, got %T", interval.Duration)
	require.Equal(t, 2, wd.Weeks.Value)
}

func TestInThreeDays(t *testing.T) {
	g := mustGrammar(t)
	terms := timex.Parse(timex.Tokenize("in three days"), g, zerolog.Nop())
	require.Len(t, terms, 1)

	interval, ok := terms[0].(timex.FutureAnchoredInterval)
	require.True(t, ok, "expected FutureAnchoredInterval, got %T", terms[0])

	d, ok := interval.Duration.(chrono.Duration)
	require.True(t, ok, "expected Duration, got %T", interval.Duration)
	require.NotNil(t, d.Days)
	require.Equal(t, 3, d.Days.Value)
}

func TestNextSunday(t *testing.T) {
	g := mustGrammar(t)
	terms := timex.Parse(timex.Tokenize("next sunday"), g, zerolog.Nop())
	require.Len(t, terms, 1)

	next, ok := terms[0].(timex.NextInstance)
	require.True(t, ok, "expected NextInstance, got %T", terms[0])
	require.Equal(t, 0, next.TimePoint)
}

func TestEverySunday(t *testing.T) {
	g := mustGrammar(t)
	terms := timex.Parse(timex.Tokenize("every sunday"), g, zerolog.Nop())
	require.Len(t, terms, 1)

	freq, ok := terms[0].(timex.Freq)
	require.True(t, ok, "expected Freq, got %T", terms[0])
	require.Equal(t, "every", freq.Frequency)
}

func TestUnmatchedTextYieldsRawTokens(t *testing.T) {
	g := mustGrammar(t)
	terms := timex.Parse(timex.Tokenize("hello world"), g, zerolog.Nop())
	require.Len(t, terms, 2)
	for _, term := range terms {
		_, ok := term.(timex.Token)
		require.True(t, ok, "expected raw Token, got %T", term)
	}
}

func TestOctoberTwentyFifth(t *testing.T) {
	g := mustGrammar(t)
	terms := timex.Parse(timex.Tokenize("october 25th"), g, zerolog.Nop())
	require.Len(t, terms, 1)

	pd, ok := terms[0].(timex.PartialDate)
	require.True(t, ok, "expected PartialDate, got %T", terms[0])
	require.NotNil(t, pd.Month)
	require.Equal(t, chrono.Month(10), *pd.Month)
	require.NotNil(t, pd.Day)
	require.Equal(t, chrono.DayOfMonth(25), *pd.Day)
}
