package chrono_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ploteq/timex"
)

func TestFormat_CalendarDate(t *testing.T) {
	day := chrono.DayOfMonthOf(12)
	month := chrono.MonthOf(4)
	cd, err := chrono.NewCalendarDate(chrono.YearOf(1985), &month, &day)
	require.NoError(t, err)

	out, err := chrono.FormatOf("YYYY-MM-DD").Format(cd)
	require.NoError(t, err)
	require.Equal(t, "1985-04-12", out)

	read, err := chrono.FormatOf("YYYY-MM-DD").Read(out)
	require.NoError(t, err)
	require.Equal(t, cd, read)
}

func TestFormat_CalendarDate_ReducedAccuracy(t *testing.T) {
	month := chrono.MonthOf(4)
	cd, err := chrono.NewCalendarDate(chrono.YearOf(1985), &month, nil)
	require.NoError(t, err)

	out, err := chrono.FormatOf("YYYY-MM-DD").Format(cd)
	require.NoError(t, err)
	require.Equal(t, "1985-04", out)
}

func TestFormat_Time_ReducedAccuracy(t *testing.T) {
	tm, err := chrono.NewTime(chrono.HourOf(23), nil, nil, nil)
	require.NoError(t, err)

	out, err := chrono.FormatOf("hh:mm").Format(tm)
	require.NoError(t, err)
	require.Equal(t, "23", out)
}

func TestFormat_Duration(t *testing.T) {
	dur := chrono.Duration{
		Years:  cardinal(2),
		Months: cardinal(10),
		Days:   cardinal(15),
		Time: &chrono.TimeDuration{
			Hours:   cardinal(10),
			Minutes: cardinal(30),
			Seconds: cardinal(20),
		},
	}

	out, err := chrono.FormatOf("Pnn̲Ynn̲Mnn̲DTnn̲Hnn̲Mnn̲S").Format(dur)
	require.NoError(t, err)
	require.Equal(t, "P2Y10M15DT10H30M20S", out)
}

func TestFormat_Time_Offset(t *testing.T) {
	minute := chrono.MinuteOf(0)
	offset, err := chrono.NewUTCOffset(true, chrono.HourOf(5), &minute)
	require.NoError(t, err)

	want, err := chrono.NewTime(chrono.HourOf(15), minuteP(27), secondP(46), &offset)
	require.NoError(t, err)

	read, err := chrono.FormatOf("hh:mm:ss±hh:mm").Read("15:27:46-05:00")
	require.NoError(t, err)
	require.Equal(t, want, read)
}

func TestFormat_RecurringTimeInterval(t *testing.T) {
	day := chrono.DayOfMonthOf(12)
	month := chrono.MonthOf(4)
	cd, err := chrono.NewCalendarDate(chrono.YearOf(1985), &month, &day)
	require.NoError(t, err)
	tm, err := chrono.NewTime(chrono.HourOf(23), minuteP(20), secondP(50), nil)
	require.NoError(t, err)
	start := chrono.DateTime{Date: cd, Time: tm}

	dur := chrono.Duration{
		Years:  cardinal(1),
		Months: cardinal(2),
		Days:   cardinal(15),
		Time: &chrono.TimeDuration{
			Hours:   cardinal(12),
			Minutes: cardinal(30),
			Seconds: cardinal(0),
		},
	}
	n := 12
	want := chrono.RecurringTimeInterval{
		N:        &n,
		Interval: chrono.TimeInterval{Start: &start, Dur: dur},
	}

	read, err := chrono.FormatOf("Rn̲/YYYYMMDDThhmmss/Pnn̲Ynn̲Mnn̲DTnn̲Hnn̲Mnn̲S").
		Read("R12/19850412T232050/P1Y2M15DT12H30M0S")
	require.NoError(t, err)
	require.Equal(t, want, read)
}

func cardinal(v int) *chrono.CardinalUnit {
	c := chrono.CardinalUnitOf(v)
	return &c
}

func minuteP(v int) *chrono.Minute {
	m := chrono.MinuteOf(v)
	return &m
}

func secondP(v int) *chrono.Second {
	s := chrono.SecondOf(v)
	return &s
}
