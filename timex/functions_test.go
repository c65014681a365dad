package timex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chrono "github.com/ploteq/timex"
	"github.com/ploteq/timex/timex"
)

func utteranceAnchor(t *testing.T) chrono.TimeRep {
	t.Helper()
	y, err := chrono.NewYear(1985)
	require.NoError(t, err)
	m := chrono.Month(4)
	d, err := chrono.NewDayOfMonth(12)
	require.NoError(t, err)
	cd, err := chrono.NewCalendarDate(y, &m, &d)
	require.NoError(t, err)
	return cd
}

func TestApplyAnchorFillsUnresolvedSlotOnce(t *testing.T) {
	anchor := utteranceAnchor(t)
	other, err := chrono.NewYear(1999)
	require.NoError(t, err)

	ip := timex.IndefPast{}
	resolved := ip.ApplyAnchor(anchor)
	got, ok := resolved.(timex.IndefPast)
	require.True(t, ok)
	assert.Equal(t, anchor, got.Anchor)

	// a second ApplyAnchor must not overwrite an already-resolved anchor
	reResolved := got.ApplyAnchor(other)
	got2, ok := reResolved.(timex.IndefPast)
	require.True(t, ok)
	assert.Equal(t, anchor, got2.Anchor)
}

func TestApplyAnchorOnConstantsIsNoop(t *testing.T) {
	anchor := utteranceAnchor(t)
	assert.Equal(t, timex.UtteranceTime{}, timex.UtteranceTime{}.ApplyAnchor(anchor))
	assert.Equal(t, timex.ReferenceTime{}, timex.ReferenceTime{}.ApplyAnchor(anchor))
	assert.Equal(t, timex.GenericPlural{Unit: "month"}, timex.GenericPlural{Unit: "month"}.ApplyAnchor(anchor))
}

func TestApplyAnchorRecursesThroughWrappers(t *testing.T) {
	anchor := utteranceAnchor(t)
	mod := timex.Mod{Modifier: "approximately", Inner: timex.IndefFuture{}}

	resolved := mod.ApplyAnchor(anchor)
	got, ok := resolved.(timex.Mod)
	require.True(t, ok)

	inner, ok := got.Inner.(timex.IndefFuture)
	require.True(t, ok)
	assert.Equal(t, anchor, inner.Anchor)
}

func TestApplyAnchorOnPartialDate(t *testing.T) {
	anchor := utteranceAnchor(t)
	month := chrono.Month(10)
	day := chrono.DayOfMonth(25)
	pd := timex.PartialDate{Month: &month, Day: &day}

	resolved := pd.ApplyAnchor(anchor)
	got, ok := resolved.(timex.PartialDate)
	require.True(t, ok)
	assert.Equal(t, anchor, got.Anchor)
	assert.Same(t, pd.Month, got.Month)
}

func TestApplyAnchorOnBeginEndAnchoredTimex(t *testing.T) {
	anchor := utteranceAnchor(t)
	begin := timex.BeginAnchoredTimex{Timex: timex.IndefPast{}, TID: "t1", AnchorTID: "t0"}

	resolved := begin.ApplyAnchor(anchor)
	got, ok := resolved.(timex.BeginAnchoredTimex)
	require.True(t, ok)
	assert.Equal(t, "t1", got.TID)

	inner, ok := got.Timex.(timex.IndefPast)
	require.True(t, ok)
	assert.Equal(t, anchor, inner.Anchor)
}

func TestDoNotParseString(t *testing.T) {
	dnp := timex.DoNotParse{Members: []timex.Term{timex.NewToken("hello"), timex.NewToken("world")}}
	assert.Equal(t, "DoNotParse(2 members)", dnp.String())
}
