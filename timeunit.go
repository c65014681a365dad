package chrono

import (
	"fmt"
	"strconv"
)

// TimeUnit is an ISO 8601 calendar/clock component with a fixed valid range,
// as used inside a TimePoint-shaped TimeRep (CalendarDate, OrdinalDate,
// WeekDate, Time, UTCOffset). The set of concrete TimeUnits is closed to this
// package: isTimeUnit is unexported.
//
// This generalizes original_source/iso8601.py's TimeUnit, whose range check
// and arithmetic lived in one base class shared (via Python's MRO) by every
// ordinal component; Go instead gives each component its own struct and
// range-checked constructor, consistent with the redesign flag calling for
// "an exhaustive pattern match over a sum type" in place of deep inheritance.
type TimeUnit interface {
	isTimeUnit()
	Int() int
}

// InvalidTimeUnitError reports a TimeUnit value outside its valid range,
// grounded on iso8601.py's InvalidTimeUnit.
type InvalidTimeUnitError struct {
	Unit  string
	Value int
}

func (e *InvalidTimeUnitError) Error() string {
	return fmt.Sprintf("chrono: invalid %s: %d", e.Unit, e.Value)
}

// rangeCheck reports whether value falls within [min, max] (inclusive).
func rangeCheck(value, min, max int) bool {
	return min <= value && value <= max
}

// Year is a proleptic Gregorian year in [0, 9999].
type Year int

func NewYear(value int) (Year, error) {
	if !rangeCheck(value, 0, 9999) {
		return 0, &InvalidTimeUnitError{Unit: "year", Value: value}
	}
	return Year(value), nil
}

func YearOf(value int) Year {
	y, err := NewYear(value)
	if err != nil {
		panic(err)
	}
	return y
}

func (Year) isTimeUnit()  {}
func (y Year) Int() int   { return int(y) }
func (y Year) String() string { return strconv.Itoa(int(y)) }

// isTimeUnit/Int for the existing Month enum (consts.go): Month's range,
// 1..12, already matches iso8601.py's Month(TimeUnit) range, so the enum is
// reused as-is rather than duplicated.
func (Month) isTimeUnit() {}
func (m Month) Int() int  { return int(m) }

// NewMonth range-checks value into a Month.
func NewMonth(value int) (Month, error) {
	if !rangeCheck(value, 1, 12) {
		return 0, &InvalidTimeUnitError{Unit: "month", Value: value}
	}
	return Month(value), nil
}

func MonthOf(value int) Month {
	m, err := NewMonth(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Week is an ISO week-of-year number in [1, 53].
type Week int

func NewWeek(value int) (Week, error) {
	if !rangeCheck(value, 1, 53) {
		return 0, &InvalidTimeUnitError{Unit: "week", Value: value}
	}
	return Week(value), nil
}

func WeekOf(value int) Week {
	w, err := NewWeek(value)
	if err != nil {
		panic(err)
	}
	return w
}

func (Week) isTimeUnit()      {}
func (w Week) Int() int       { return int(w) }
func (w Week) String() string { return strconv.Itoa(int(w)) }

// DayOfMonth is a day-of-month number in [1, 31].
type DayOfMonth int

func NewDayOfMonth(value int) (DayOfMonth, error) {
	if !rangeCheck(value, 1, 31) {
		return 0, &InvalidTimeUnitError{Unit: "day of month", Value: value}
	}
	return DayOfMonth(value), nil
}

func DayOfMonthOf(value int) DayOfMonth {
	d, err := NewDayOfMonth(value)
	if err != nil {
		panic(err)
	}
	return d
}

func (DayOfMonth) isTimeUnit()      {}
func (d DayOfMonth) Int() int       { return int(d) }
func (d DayOfMonth) String() string { return strconv.Itoa(int(d)) }

// DayOfYear is a day-of-year ordinal in [1, 366].
type DayOfYear int

func NewDayOfYear(value int) (DayOfYear, error) {
	if !rangeCheck(value, 1, 366) {
		return 0, &InvalidTimeUnitError{Unit: "day of year", Value: value}
	}
	return DayOfYear(value), nil
}

func DayOfYearOf(value int) DayOfYear {
	d, err := NewDayOfYear(value)
	if err != nil {
		panic(err)
	}
	return d
}

func (DayOfYear) isTimeUnit()      {}
func (d DayOfYear) Int() int       { return int(d) }
func (d DayOfYear) String() string { return strconv.Itoa(int(d)) }

// DayOfWeek is an ISO day-of-week number in [1, 7] (Monday = 1, Sunday = 7),
// distinct from consts.go's zero-based Weekday used elsewhere in the
// library: the two numbering schemes disagree, and conflating them would
// silently shift every week-date computed from a WeekDate's DayOfWeek.
type DayOfWeek int

func NewDayOfWeek(value int) (DayOfWeek, error) {
	if !rangeCheck(value, 1, 7) {
		return 0, &InvalidTimeUnitError{Unit: "day of week", Value: value}
	}
	return DayOfWeek(value), nil
}

func DayOfWeekOf(value int) DayOfWeek {
	d, err := NewDayOfWeek(value)
	if err != nil {
		panic(err)
	}
	return d
}

func (DayOfWeek) isTimeUnit() {}
func (d DayOfWeek) Int() int  { return int(d) }

// Weekday converts d to the library's zero-based Weekday (Monday = 0).
func (d DayOfWeek) Weekday() Weekday { return Weekday(int(d) - 1) }

func (d DayOfWeek) String() string { return strconv.Itoa(int(d)) }

// Hour is an hour-of-day in [0, 24] (24 being the end-of-day notation
// "24:00:00"; neither NewHour nor NewTime checks that the minute and second
// that go with it are zero).
type Hour int

func NewHour(value int) (Hour, error) {
	if !rangeCheck(value, 0, 24) {
		return 0, &InvalidTimeUnitError{Unit: "hour", Value: value}
	}
	return Hour(value), nil
}

func HourOf(value int) Hour {
	h, err := NewHour(value)
	if err != nil {
		panic(err)
	}
	return h
}

func (Hour) isTimeUnit()      {}
func (h Hour) Int() int       { return int(h) }
func (h Hour) String() string { return strconv.Itoa(int(h)) }

// Minute is a minute-of-hour in [0, 59].
type Minute int

func NewMinute(value int) (Minute, error) {
	if !rangeCheck(value, 0, 59) {
		return 0, &InvalidTimeUnitError{Unit: "minute", Value: value}
	}
	return Minute(value), nil
}

func MinuteOf(value int) Minute {
	m, err := NewMinute(value)
	if err != nil {
		panic(err)
	}
	return m
}

func (Minute) isTimeUnit()      {}
func (m Minute) Int() int       { return int(m) }
func (m Minute) String() string { return strconv.Itoa(int(m)) }

// Second is a second-of-minute in [0, 60] (60 permitted for a leap second).
type Second int

func NewSecond(value int) (Second, error) {
	if !rangeCheck(value, 0, 60) {
		return 0, &InvalidTimeUnitError{Unit: "second", Value: value}
	}
	return Second(value), nil
}

func SecondOf(value int) Second {
	s, err := NewSecond(value)
	if err != nil {
		panic(err)
	}
	return s
}

func (Second) isTimeUnit()      {}
func (s Second) Int() int       { return int(s) }
func (s Second) String() string { return strconv.Itoa(int(s)) }
