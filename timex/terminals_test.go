package timex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ploteq/timex/timex"
)

func TestDayOfMonth(t *testing.T) {
	for _, tt := range []struct {
		word string
		want bool
	}{
		{"25th", true},
		{"3rd", true},
		{"1st", true},
		{"31st", true},
		{"32nd", false},
		{"0th", false},
		{"25", false},
		{"monday", false},
	} {
		assert.Equal(t, tt.want, timex.DayOfMonth.Matches(timex.NewToken(tt.word)), tt.word)
	}
}

func TestMonthNumber(t *testing.T) {
	for _, tt := range []struct {
		word string
		want bool
	}{
		{"1", true},
		{"12", true},
		{"0", false},
		{"13", false},
		{"january", false},
	} {
		assert.Equal(t, tt.want, timex.MonthNumber.Matches(timex.NewToken(tt.word)), tt.word)
	}
}

func TestMMDD(t *testing.T) {
	for _, tt := range []struct {
		word string
		want bool
	}{
		{"10/25", true},
		{"10/25/85", true},
		{"10/25/1985", true},
		{"13/25", false},
		{"10/32", false},
		{"10/25/850", false},
		{"10-25", false},
	} {
		assert.Equal(t, tt.want, timex.MMDD.Matches(timex.NewToken(tt.word)), tt.word)
	}
}

func TestHHMM(t *testing.T) {
	assert.True(t, timex.HHMM.Matches(timex.NewToken("10:15")))
	assert.False(t, timex.HHMM.Matches(timex.NewToken("10:15:30")))
	assert.False(t, timex.HHMM.Matches(timex.NewToken("24:00")))
	assert.False(t, timex.HHMM.Matches(timex.NewToken("10:60")))
}

func TestHHMMSS(t *testing.T) {
	assert.True(t, timex.HHMMSS.Matches(timex.NewToken("10:15:30")))
	assert.False(t, timex.HHMMSS.Matches(timex.NewToken("10:15")))
	assert.False(t, timex.HHMMSS.Matches(timex.NewToken("10:15:61")))
}

func TestOther(t *testing.T) {
	lits := map[string]struct{}{"ago": {}, "next": {}}
	other := timex.Other(lits)
	assert.True(t, other.Matches(timex.NewToken("yesterday")))
	assert.False(t, other.Matches(timex.NewToken("ago")))
	assert.False(t, other.Matches(timex.NewToken("Next")))
}
