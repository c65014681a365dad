package chrono

import "fmt"

// Calendar arithmetic (Julian Day Number conversions, leap-year and
// ISO-week-number computation) adapted from the teacher's date.go. The
// teacher's LocalDate et al. wrapped these functions in an always-fully-
// specified int32 JDN type, which has no room for the reduced-accuracy
// CalendarDate/OrdinalDate/WeekDate variants this module needs; the JDN
// arithmetic itself is reused unchanged; only the proleptic-Gregorian JDN
// bounds are dropped in favor of the Year TimeUnit's own [0, 9999] range.

const unixEpochJDN = 2440588

var daysInMonths = [12]int{
	January - 1:   31,
	February - 1:  28,
	March - 1:     31,
	April - 1:     30,
	May - 1:       31,
	June - 1:      30,
	July - 1:      31,
	August - 1:    31,
	September - 1: 30,
	October - 1:   31,
	November - 1:  30,
	December - 1:  31,
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func getDaysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

func daysInMonth(year, month int) int {
	if isLeapYear(year) && month == int(February) {
		return 29
	}
	return daysInMonths[month-1]
}

func isDateValid(year, month, day int) bool {
	if month < int(January) || month > int(December) {
		return false
	}
	return day > 0 && day <= daysInMonth(year, month)
}

// getOrdinalDate returns the 1-based day-of-year for a valid (year, month,
// day) calendar date.
func getOrdinalDate(year, month, day int) int {
	out := day
	for m := int(January); m < month; m++ {
		out += daysInMonths[m-1]
		if m == int(February) && isLeapYear(year) {
			out++
		}
	}
	return out
}

// makeJDN converts a proleptic Gregorian calendar date to a Julian Day
// Number, following the teacher's makeJDN.
func makeJDN(y, m, d int64) int64 {
	return (1461*(y+4800+(m-14)/12))/4 + (367*(m-2-12*((m-14)/12)))/12 -
		(3*((y+4900+(m-14)/12)/100))/4 + d - 32075 - unixEpochJDN
}

// makeDate range-checks (year, month, day) and returns its JDN.
func makeDate(year, month, day int) (int64, error) {
	if !isDateValid(year, month, day) {
		return 0, fmt.Errorf("chrono: invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return makeJDN(int64(year), int64(month), int64(day)), nil
}

// fromJDN inverts makeJDN, following the teacher's fromDate.
func fromJDN(v int64) (year, month, day int) {
	dd := v + unixEpochJDN

	f := dd + 1401 + ((((4*dd + 274277) / 146097) * 3) / 4) - 38
	e := 4*f + 3
	g := (e % 1461) / 4
	h := 5*g + 2

	day = int((h%153)/5) + 1
	month = int((h/153+2)%12) + 1
	year = int(e/1461 - 4716 + (14-int64(month))/12)
	return
}

func getWeekday(jdn int64) int {
	return int(((jdn+unixEpochJDN)%7+7)%7) + 1
}

// ofDayOfYear converts a 1-based (year, dayOfYear) ordinal date to
// (year, month, day).
func ofDayOfYear(year, day int) (month, dayOfMonth int, err error) {
	isLeap := isLeapYear(year)
	if (!isLeap && day > 365) || day > 366 || day < 1 {
		return 0, 0, fmt.Errorf("chrono: invalid day of year %d for %04d", day, year)
	}

	total := 0
	for m, n := range daysInMonths {
		if isLeap && m == 1 {
			n = 29
		}
		if total+n >= day {
			return m + 1, day - total, nil
		}
		total += n
	}
	return 0, 0, fmt.Errorf("chrono: invalid day of year %d for %04d", day, year)
}

// ofISOWeek converts an ISO (year, week, dayOfWeek) to a JDN, following the
// teacher's ofISOWeek.
func ofISOWeek(year, week, day int) (int64, error) {
	if week < 1 || week > 53 {
		return 0, fmt.Errorf("chrono: invalid week number %d", week)
	}

	jan4th, err := makeDate(year, int(January), 4)
	if err != nil {
		return 0, err
	}

	v := week*7 + day - (getWeekday(jan4th) + 3)

	daysThisYear := getDaysInYear(year)
	switch {
	case v <= 0:
		month, dom, err := ofDayOfYear(year-1, v+getDaysInYear(year-1))
		if err != nil {
			return 0, err
		}
		return makeDate(year-1, month, dom)
	case v > daysThisYear:
		month, dom, err := ofDayOfYear(year+1, v-daysThisYear)
		if err != nil {
			return 0, err
		}
		return makeDate(year+1, month, dom)
	default:
		month, dom, err := ofDayOfYear(year, v)
		if err != nil {
			return 0, err
		}
		return makeDate(year, month, dom)
	}
}

// getISOWeek returns the ISO (year, week) that (year, month, day) falls in,
// following the teacher's getISOWeek (which accounts for the ISO rule that
// the first week of a year is the one containing that year's first
// Thursday, so early-January dates can fall in the previous ISO year and
// late-December dates can fall in the next one).
func getISOWeek(year, month, day int) (isoYear, isoWeek int, err error) {
	jdn, err := makeDate(year, month, day)
	if err != nil {
		return 0, 0, err
	}

	isoYear = year
	isoWeek = int((10 + getOrdinalDate(isoYear, month, day) - getWeekday(jdn)) / 7)
	switch {
	case isoWeek == 0:
		if isLeapYear(isoYear - 1) {
			return isoYear - 1, 53, nil
		}
		return isoYear - 1, 52, nil
	case isoWeek == 53 && !isLeapYear(year):
		return isoYear + 1, 1, nil
	default:
		return isoYear, isoWeek, nil
	}
}

// weekdayOf returns the ISO day-of-week (Monday = 1, ..., Sunday = 7) of a
// valid calendar date.
func weekdayOf(year, month, day int) (DayOfWeek, error) {
	jdn, err := makeDate(year, month, day)
	if err != nil {
		return 0, err
	}
	return DayOfWeekOf(getWeekday(jdn)), nil
}
