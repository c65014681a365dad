package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// This file compiles an ISO 8601 "format representation" string — a template
// written in the standard's own numeral/designator/separator alphabet, e.g.
// "YYYY-MM-DD" or "Pnn̲Ynn̲Mnn̲DTnn̲Hnn̲Mnn̲S" — into an ordered list of fops
// (format operations) that a tiny stack-free machine then runs forwards,
// either to format a TimeRep or to read one. This mirrors the shape of
// iso8601.py's FormatReprParser/FormatOp hierarchy (Literal, Separator,
// Designator, Coerce, Element), simplified from its per-class object stack
// into a single pass over a handful of context flags, since a format
// representation never nests more than "inside a Duration" and "inside that
// Duration's time part".
//
// Digit letters (runs of a repeated character select a field and a width):
//
//	Y  year                               (date context)
//	M  month                              (date context, before any 'T'/'D')
//	D  day of month, day of year, or day  (date context; which, depends on
//	   of week                            whether 'M' or the 'W' designator
//	                                      appeared first in the template)
//	w  week number                        (date context, paired with 'W')
//	h  hour                               (time context, or offset context
//	                                      after a leading '±')
//	m  minute                             (time or offset context)
//	s  second                             (time context)
//	n  generic cardinal numeral, retyped  (duration/recurring-count context)
//	   by the designator letter that follows it
//
// A run's last character may carry a trailing combining low line (U+0332):
// this marks the field as a variable-width numeral (no zero-padding, any
// number of digits) rather than a fixed width equal to the run length — used
// throughout Duration's components, whose magnitudes are unbounded.
//
// Designators are single literal characters that carry no numeral of their
// own: T (date/time separator; also opens a Duration's time part), W (week
// marker before a date context's w/D run), P (opens a Duration), R (opens a
// RecurringTimeInterval's count), Z (UTC marker, read-only). A leading '±'
// is not a standalone designator; it marks the digit run that immediately
// follows it as a signed offset-hour field and switches into offset context.
//
// A Coerce is a designator that also retypes the immediately preceding
// generic 'n' element: inside a Duration's date part, Y/M/D/W; inside its
// time part (after 'T'), H/M/S.
//
// '/' separates the halves of a TimeInterval/RecurringTimeInterval and is
// required on read. Any other character not covered above is a soft
// separator, optional on read. On format, every separator ('/' included) is
// only written if a
// later element in the template actually produces a value (this is what
// lets CalendarDate(1985, 4) format against "YYYY-MM-DD" as "1985-04"
// instead of "1985-04-").
const (
	ISO8601                    = ISO8601DateTimeExtended
	ISO8601DateSimple          = "YYYYMMDD"
	ISO8601DateExtended        = "YYYY-MM-DD"
	ISO8601DateTruncated       = "YYYY-MM"
	ISO8601TimeSimple          = "hhmmss"
	ISO8601TimeExtended        = "hh:mm:ss"
	ISO8601TimeTruncatedMins   = "hh:mm"
	ISO8601TimeTruncatedHours  = "hh"
	ISO8601DateTimeSimple      = ISO8601DateSimple + "T" + ISO8601TimeSimple
	ISO8601DateTimeExtended    = ISO8601DateExtended + "T" + ISO8601TimeExtended
	ISO8601WeekSimple          = "YYYYWww"
	ISO8601WeekExtended        = "YYYY-Www"
	ISO8601WeekDaySimple       = "YYYYWwwD"
	ISO8601WeekDayExtended     = "YYYY-Www-D"
	ISO8601OrdinalDateSimple   = "YYYYDDD"
	ISO8601OrdinalDateExtended = "YYYY-DDD"
	ISO8601OffsetExtended      = "±hh:mm"
	ISO8601OffsetSimple        = "±hhmm"
)

// unitClass identifies which field of which TimeRep an elementOp reads from
// or writes to. ucNone marks a generic duration numeral not yet retyped by a
// following Coerce letter.
type unitClass int

const (
	ucNone unitClass = iota
	ucYear
	ucMonth
	ucWeek
	ucDayOfMonth
	ucDayOfYear
	ucDayOfWeek
	ucHour
	ucMinute
	ucSecond
	ucOffsetHour
	ucOffsetMinute
	ucRecurCount
	ucDurYear
	ucDurMonth
	ucDurDay
	ucDurWeek
	ucDurHour
	ucDurMinute
	ucDurSecond
)

type fopKind int

const (
	literalOp fopKind = iota
	separatorOp
	designatorOp
	coerceOp
	elementOp
)

// fop is one compiled step of a Format's template, corresponding to a single
// FormatOp in iso8601.py's format machine.
type fop struct {
	kind      fopKind
	lit       string    // literal text for literalOp/separatorOp/designatorOp/coerceOp
	optional  bool      // separatorOp/designatorOp: may be absent without error
	utcMarker bool      // designatorOp "Z": reading it sets a zero UTC offset
	unit      unitClass // elementOp: which field this numeral reads/writes
	width     int       // elementOp: digit width (run length)
	unbounded bool      // elementOp: run ended in a combining low line (U+0332)
	signed    bool      // elementOp: preceded by '±' in the template
}

// Format compiles an ISO 8601 format representation and uses it to render a
// TimeRep to text (Format) or parse text into one (Read).
type Format struct {
	ops []fop
}

// NewFormat compiles repr into a Format, or reports the first construct in
// repr it does not recognize.
func NewFormat(repr string) (Format, error) {
	ops, err := compileRepr(repr)
	if err != nil {
		return Format{}, err
	}
	return Format{ops: ops}, nil
}

// FormatOf is NewFormat for callers that have already validated repr, such
// as the ISO8601* constants above; it panics on error.
func FormatOf(repr string) Format {
	f, err := NewFormat(repr)
	if err != nil {
		panic(err)
	}
	return f
}

const combiningLowLine = '̲'

// scanRun counts the run of ch starting at runes[i], then checks for a
// trailing combining low line marking the run as variable-width. It returns
// the run's width (not counting the combining mark) and the total number of
// runes consumed (including the combining mark, if present).
func scanRun(runes []rune, i int, ch rune) (width, consumed int, unbounded bool) {
	j := i
	for j < len(runes) && runes[j] == ch {
		j++
	}
	width = j - i
	consumed = width
	if j < len(runes) && runes[j] == combiningLowLine {
		unbounded = true
		consumed++
	}
	return width, consumed, unbounded
}

// compileRepr walks repr once, tracking just enough context (whether we are
// inside a Duration's date or time part, which kind of date the template
// names, and whether we are past a '±') to resolve each letter's meaning.
func compileRepr(repr string) ([]fop, error) {
	if repr == "" {
		return nil, fmt.Errorf("chrono: empty format representation")
	}
	runes := []rune(repr)

	const (
		durNone = iota
		durDate
		durTime
	)
	durState := durNone
	dateKind := "" // "", "calendar", "week", "ordinal"
	inOffset := false
	recurPending := false

	var ops []fop

	coerce := func(unit unitClass, lit string) error {
		if len(ops) == 0 || ops[len(ops)-1].kind != elementOp || ops[len(ops)-1].unit != ucNone {
			return fmt.Errorf("chrono: invalid format representation %q: %q has no preceding numeral to retype", repr, lit)
		}
		ops[len(ops)-1].unit = unit
		ops = append(ops, fop{kind: coerceOp, lit: lit})
		return nil
	}

	i := 0
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == '±':
			i++
			if i >= len(runes) || runes[i] != 'h' {
				return nil, fmt.Errorf("chrono: invalid format representation %q: '±' must precede an hour field", repr)
			}
			width, consumed, unbounded := scanRun(runes, i, 'h')
			ops = append(ops, fop{kind: elementOp, unit: ucOffsetHour, width: width, unbounded: unbounded, signed: true})
			inOffset = true
			i += consumed

		case ch == '/':
			ops = append(ops, fop{kind: separatorOp, lit: "/"})
			durState = durNone
			dateKind = ""
			inOffset = false
			i++

		case ch == 'P':
			ops = append(ops, fop{kind: designatorOp, lit: "P"})
			durState = durDate
			i++

		case ch == 'R':
			ops = append(ops, fop{kind: designatorOp, lit: "R"})
			recurPending = true
			i++

		case ch == 'Z':
			ops = append(ops, fop{kind: designatorOp, lit: "Z", optional: true, utcMarker: true})
			i++

		case ch == 'T':
			ops = append(ops, fop{kind: designatorOp, lit: "T", optional: true})
			if durState == durDate {
				durState = durTime
			}
			i++

		case ch == 'W' && durState == durNone:
			ops = append(ops, fop{kind: designatorOp, lit: "W"})
			dateKind = "week"
			i++

		case ch == 'W':
			if err := coerce(ucDurWeek, "W"); err != nil {
				return nil, err
			}
			i++

		case ch == 'Y' && durState != durNone:
			if err := coerce(ucDurYear, "Y"); err != nil {
				return nil, err
			}
			i++

		case ch == 'M' && durState == durDate:
			if err := coerce(ucDurMonth, "M"); err != nil {
				return nil, err
			}
			i++

		case ch == 'M' && durState == durTime:
			if err := coerce(ucDurMinute, "M"); err != nil {
				return nil, err
			}
			i++

		case ch == 'H' && durState == durTime:
			if err := coerce(ucDurHour, "H"); err != nil {
				return nil, err
			}
			i++

		case ch == 'S' && durState == durTime:
			if err := coerce(ucDurSecond, "S"); err != nil {
				return nil, err
			}
			i++

		case ch == 'D' && durState != durNone:
			if err := coerce(ucDurDay, "D"); err != nil {
				return nil, err
			}
			i++

		case ch == 'Y' || ch == 'M' || ch == 'D' || ch == 'w' || ch == 'h' || ch == 'm' || ch == 's' || ch == 'n':
			width, consumed, unbounded := scanRun(runes, i, ch)
			var unit unitClass
			switch {
			case ch == 'n' && recurPending:
				unit = ucRecurCount
				recurPending = false
			case ch == 'Y':
				unit = ucYear
			case ch == 'M':
				unit = ucMonth
				if dateKind == "" {
					dateKind = "calendar"
				}
			case ch == 'D':
				switch dateKind {
				case "week":
					unit = ucDayOfWeek
				case "calendar":
					unit = ucDayOfMonth
				default:
					unit = ucDayOfYear
					dateKind = "ordinal"
				}
			case ch == 'w':
				unit = ucWeek
			case ch == 'h':
				if inOffset {
					unit = ucOffsetHour
				} else {
					unit = ucHour
				}
			case ch == 'm':
				if inOffset {
					unit = ucOffsetMinute
				} else {
					unit = ucMinute
				}
			case ch == 's':
				unit = ucSecond
			default: // 'n', not a recurrence count: generic, awaits a Coerce
				unit = ucNone
			}
			ops = append(ops, fop{kind: elementOp, unit: unit, width: width, unbounded: unbounded})
			i += consumed

		default:
			ops = append(ops, fop{kind: separatorOp, lit: string(ch), optional: ch != '/'})
			i++
		}
	}
	return ops, nil
}

// renderUnit renders val (with sign neg) according to op's width/unbounded/
// signed settings: fixed-width fields are zero-padded, unbounded fields
// (Duration's components) are printed at their natural width.
func renderUnit(val int, neg bool, op fop) string {
	s := strconv.Itoa(val)
	if !op.unbounded {
		for len(s) < op.width {
			s = "0" + s
		}
	}
	switch {
	case op.signed:
		if neg {
			return "-" + s
		}
		return "+" + s
	case neg:
		return "-" + s
	default:
		return s
	}
}

func datePartOf(tr TimeRep) (DatePart, bool) {
	switch v := tr.(type) {
	case CalendarDate:
		return v, true
	case OrdinalDate:
		return v, true
	case WeekDate:
		return v, true
	case DateTime:
		return v.Date, v.Date != nil
	}
	return nil, false
}

func timeOf(tr TimeRep) (Time, bool) {
	switch v := tr.(type) {
	case Time:
		return v, true
	case DateTime:
		return v.Time, true
	}
	return Time{}, false
}

func offsetOf(tr TimeRep) (UTCOffset, bool) {
	switch v := tr.(type) {
	case UTCOffset:
		return v, true
	case Time:
		if v.Offset != nil {
			return *v.Offset, true
		}
	case DateTime:
		if v.Time.Offset != nil {
			return *v.Time.Offset, true
		}
	}
	return UTCOffset{}, false
}

func yearOf(dp DatePart) (int, bool) {
	switch v := dp.(type) {
	case CalendarDate:
		return int(v.Year), true
	case OrdinalDate:
		return int(v.Year), true
	case WeekDate:
		return int(v.Year), true
	}
	return 0, false
}

func monthOf(dp DatePart) (int, bool) {
	if cd, ok := dp.(CalendarDate); ok && cd.Month != nil {
		return int(*cd.Month), true
	}
	return 0, false
}

func weekOf(dp DatePart) (int, bool) {
	if wd, ok := dp.(WeekDate); ok && wd.Week != nil {
		return int(*wd.Week), true
	}
	return 0, false
}

func dayOf(dp DatePart) (int, bool) {
	switch v := dp.(type) {
	case CalendarDate:
		if v.Day != nil {
			return int(*v.Day), true
		}
	case OrdinalDate:
		if v.Day != nil {
			return int(*v.Day), true
		}
	case WeekDate:
		if v.Day != nil {
			return int(*v.Day), true
		}
	}
	return 0, false
}

func cardinalVal(c *CardinalUnit) (int, bool, bool) {
	if c == nil {
		return 0, false, false
	}
	return c.Value, c.Negative, true
}

func durationUnit(tr TimeRep, u unitClass) (int, bool, bool) {
	switch v := tr.(type) {
	case Duration:
		switch u {
		case ucDurYear:
			return cardinalVal(v.Years)
		case ucDurMonth:
			return cardinalVal(v.Months)
		case ucDurDay:
			return cardinalVal(v.Days)
		case ucDurHour:
			if v.Time != nil {
				return cardinalVal(v.Time.Hours)
			}
		case ucDurMinute:
			if v.Time != nil {
				return cardinalVal(v.Time.Minutes)
			}
		case ucDurSecond:
			if v.Time != nil {
				return cardinalVal(v.Time.Seconds)
			}
		}
	case WeeksDuration:
		if u == ucDurWeek {
			return cardinalVal(&v.Weeks)
		}
	}
	return 0, false, false
}

// lookupElement extracts the value for unit class u out of tr, reporting
// whether that field is actually present (a reduced-accuracy TimeRep may be
// missing trailing fields, which is how accuracy elision works on format).
func lookupElement(tr TimeRep, u unitClass) (val int, neg bool, present bool) {
	switch u {
	case ucYear:
		if dp, ok := datePartOf(tr); ok {
			if v, ok := yearOf(dp); ok {
				return v, false, true
			}
		}
	case ucMonth:
		if dp, ok := datePartOf(tr); ok {
			if v, ok := monthOf(dp); ok {
				return v, false, true
			}
		}
	case ucWeek:
		if dp, ok := datePartOf(tr); ok {
			if v, ok := weekOf(dp); ok {
				return v, false, true
			}
		}
	case ucDayOfMonth, ucDayOfYear, ucDayOfWeek:
		if dp, ok := datePartOf(tr); ok {
			_, isCal := dp.(CalendarDate)
			_, isOrd := dp.(OrdinalDate)
			_, isWeek := dp.(WeekDate)
			sameKind := (u == ucDayOfMonth && isCal) || (u == ucDayOfYear && isOrd) || (u == ucDayOfWeek && isWeek)
			if v, ok := dayOf(dp); ok && sameKind {
				return v, false, true
			}
		}
	case ucHour:
		if t, ok := timeOf(tr); ok {
			return int(t.Hour), false, true
		}
	case ucMinute:
		if t, ok := timeOf(tr); ok && t.Minute != nil {
			return int(*t.Minute), false, true
		}
	case ucSecond:
		if t, ok := timeOf(tr); ok && t.Second != nil {
			return int(*t.Second), false, true
		}
	case ucOffsetHour:
		if o, ok := offsetOf(tr); ok {
			return int(o.Hour), o.Negative, true
		}
	case ucOffsetMinute:
		if o, ok := offsetOf(tr); ok && o.Minute != nil {
			return int(*o.Minute), o.Negative, true
		}
	case ucRecurCount:
		if r, ok := tr.(RecurringTimeInterval); ok && r.N != nil {
			return *r.N, false, true
		}
	case ucDurYear, ucDurMonth, ucDurDay, ucDurWeek, ucDurHour, ucDurMinute, ucDurSecond:
		return durationUnit(tr, u)
	}
	return 0, false, false
}

// Format renders tr against f's template. Fields tr does not have (a
// reduced-accuracy date missing its day, a Time missing its seconds) are
// elided along with any separator/designator that would otherwise have
// preceded them.
func (f Format) Format(tr TimeRep) (string, error) {
	var out strings.Builder
	var pending strings.Builder
	lastWritten := false

	for _, op := range f.ops {
		switch op.kind {
		case literalOp:
			out.WriteString(pending.String())
			pending.Reset()
			out.WriteString(op.lit)
			lastWritten = true
		case separatorOp, designatorOp:
			pending.WriteString(op.lit)
		case coerceOp:
			if lastWritten {
				out.WriteString(op.lit)
			}
		case elementOp:
			val, neg, present := lookupElement(tr, op.unit)
			if !present {
				lastWritten = false
				continue
			}
			out.WriteString(pending.String())
			pending.Reset()
			out.WriteString(renderUnit(val, neg, op))
			lastWritten = true
		}
	}
	return out.String(), nil
}

// FormatReadError reports where and why Read failed to match value against
// its template.
type FormatReadError struct {
	Value string
	Pos   int
	Want  string
}

func (e *FormatReadError) Error() string {
	return fmt.Sprintf("chrono: reading %q: at position %d: expected %s", e.Value, e.Pos, e.Want)
}

func matchLiteral(v string, pos int, lit string) (bool, int) {
	end := pos + len(lit)
	if end > len(v) || v[pos:end] != lit {
		return false, pos
	}
	return true, end
}

// readDigits consumes an optional leading sign and then either exactly
// op.width digits (fixed-width fields, which may sit directly against a
// following field with no separator) or a greedy run of digits (unbounded
// fields). It reports ok=false, without error, when no digits are present at
// all, which is how trailing fields are elided on read.
func readDigits(v string, pos int, op fop) (digits string, newpos int, neg bool, ok bool) {
	p := pos
	if p < len(v) && (v[p] == '+' || v[p] == '-') {
		neg = v[p] == '-'
		p++
	}
	start := p
	if op.unbounded {
		for p < len(v) && v[p] >= '0' && v[p] <= '9' {
			p++
		}
	} else {
		for k := 0; k < op.width && p < len(v) && v[p] >= '0' && v[p] <= '9'; k++ {
			p++
		}
	}
	if p == start {
		return "", pos, false, false
	}
	return v[start:p], p, neg, true
}

// assembly accumulates the fields Read matches before they are assembled
// into a concrete TimeRep.
type assembly struct {
	haveYear bool
	year     int

	haveMonth bool
	month     int

	haveWeek bool
	week     int

	haveDayOfMonth bool
	dayOfMonth     int

	haveDayOfYear bool
	dayOfYear     int

	haveDayOfWeek bool
	dayOfWeek     int

	haveHour bool
	hour     int

	haveMinute bool
	minute     int

	haveSecond bool
	second     int

	haveOffset       bool
	offsetNeg        bool
	offsetHour       int
	haveOffsetMinute bool
	offsetMinute     int

	sawR      bool
	haveRecur bool
	recur     int

	haveDurYear bool
	durYear     CardinalUnit

	haveDurMonth bool
	durMonth     CardinalUnit

	haveDurDay bool
	durDay     CardinalUnit

	haveDurWeek bool
	durWeek     CardinalUnit

	haveDurHour bool
	durHour     CardinalUnit

	haveDurMinute bool
	durMinute     CardinalUnit

	haveDurSecond bool
	durSecond     CardinalUnit
}

func setAssembly(a *assembly, u unitClass, val int, neg bool) {
	switch u {
	case ucYear:
		a.haveYear, a.year = true, val
	case ucMonth:
		a.haveMonth, a.month = true, val
	case ucWeek:
		a.haveWeek, a.week = true, val
	case ucDayOfMonth:
		a.haveDayOfMonth, a.dayOfMonth = true, val
	case ucDayOfYear:
		a.haveDayOfYear, a.dayOfYear = true, val
	case ucDayOfWeek:
		a.haveDayOfWeek, a.dayOfWeek = true, val
	case ucHour:
		a.haveHour, a.hour = true, val
	case ucMinute:
		a.haveMinute, a.minute = true, val
	case ucSecond:
		a.haveSecond, a.second = true, val
	case ucOffsetHour:
		a.haveOffset, a.offsetNeg, a.offsetHour = true, neg, val
	case ucOffsetMinute:
		a.haveOffsetMinute, a.offsetMinute = true, val
	case ucRecurCount:
		a.haveRecur, a.recur = true, val
	case ucDurYear:
		a.haveDurYear, a.durYear = true, CardinalUnit{Negative: neg, Value: val}
	case ucDurMonth:
		a.haveDurMonth, a.durMonth = true, CardinalUnit{Negative: neg, Value: val}
	case ucDurDay:
		a.haveDurDay, a.durDay = true, CardinalUnit{Negative: neg, Value: val}
	case ucDurWeek:
		a.haveDurWeek, a.durWeek = true, CardinalUnit{Negative: neg, Value: val}
	case ucDurHour:
		a.haveDurHour, a.durHour = true, CardinalUnit{Negative: neg, Value: val}
	case ucDurMinute:
		a.haveDurMinute, a.durMinute = true, CardinalUnit{Negative: neg, Value: val}
	case ucDurSecond:
		a.haveDurSecond, a.durSecond = true, CardinalUnit{Negative: neg, Value: val}
	}
}

// assembleDateTime builds whichever of CalendarDate/OrdinalDate/WeekDate/
// Time/UTCOffset/DateTime the fields a actually set call for, returning nil
// if none of them were set at all.
func assembleDateTime(a assembly) (TimeRep, error) {
	var datePart DatePart
	if a.haveYear {
		switch {
		case a.haveWeek || a.haveDayOfWeek:
			var week *Week
			if a.haveWeek {
				w := WeekOf(a.week)
				week = &w
			}
			var day *DayOfWeek
			if a.haveDayOfWeek {
				d := DayOfWeekOf(a.dayOfWeek)
				day = &d
			}
			wd, err := NewWeekDate(YearOf(a.year), week, day)
			if err != nil {
				return nil, err
			}
			datePart = wd
		case a.haveDayOfYear:
			d := DayOfYearOf(a.dayOfYear)
			od, err := NewOrdinalDate(YearOf(a.year), &d)
			if err != nil {
				return nil, err
			}
			datePart = od
		default:
			var month *Month
			if a.haveMonth {
				m := MonthOf(a.month)
				month = &m
			}
			var day *DayOfMonth
			if a.haveDayOfMonth {
				d := DayOfMonthOf(a.dayOfMonth)
				day = &d
			}
			cd, err := NewCalendarDate(YearOf(a.year), month, day)
			if err != nil {
				return nil, err
			}
			datePart = cd
		}
	}

	var timePart *Time
	if a.haveHour {
		var minute *Minute
		if a.haveMinute {
			m := MinuteOf(a.minute)
			minute = &m
		}
		var second *Second
		if a.haveSecond {
			s := SecondOf(a.second)
			second = &s
		}
		t, err := NewTime(HourOf(a.hour), minute, second, nil)
		if err != nil {
			return nil, err
		}
		timePart = &t
	}

	var offset *UTCOffset
	if a.haveOffset {
		var minute *Minute
		if a.haveOffsetMinute {
			m := MinuteOf(a.offsetMinute)
			minute = &m
		}
		o, err := NewUTCOffset(a.offsetNeg, HourOf(a.offsetHour), minute)
		if err != nil {
			return nil, err
		}
		offset = &o
	}

	switch {
	case datePart != nil && timePart != nil:
		dt := DateTime{Date: datePart, Time: *timePart}
		if offset != nil {
			dt = dt.WithOffset(*offset)
		}
		return dt, nil
	case datePart != nil:
		return datePart, nil
	case timePart != nil:
		t := *timePart
		if offset != nil {
			t = t.WithOffset(*offset)
		}
		return t, nil
	case offset != nil:
		return *offset, nil
	default:
		return nil, nil
	}
}

func assembleDuration(a assembly) TimeRep {
	if a.haveDurWeek && !(a.haveDurYear || a.haveDurMonth || a.haveDurDay || a.haveDurHour || a.haveDurMinute || a.haveDurSecond) {
		return WeeksDuration{Weeks: a.durWeek}
	}

	var td *TimeDuration
	if a.haveDurHour || a.haveDurMinute || a.haveDurSecond {
		t := TimeDuration{}
		if a.haveDurHour {
			h := a.durHour
			t.Hours = &h
		}
		if a.haveDurMinute {
			m := a.durMinute
			t.Minutes = &m
		}
		if a.haveDurSecond {
			s := a.durSecond
			t.Seconds = &s
		}
		td = &t
	}

	d := Duration{Time: td}
	if a.haveDurYear {
		y := a.durYear
		d.Years = &y
	}
	if a.haveDurMonth {
		m := a.durMonth
		d.Months = &m
	}
	if a.haveDurDay {
		dd := a.durDay
		d.Days = &dd
	}
	return d
}

// assembleResult turns the fields Read collected into whatever shape the
// template asked for: a bare date/time/offset value, a Duration/
// WeeksDuration, or (when the template opened with 'R') a
// RecurringTimeInterval.
func assembleResult(value string, a assembly) (TimeRep, error) {
	haveDur := a.haveDurYear || a.haveDurMonth || a.haveDurDay || a.haveDurWeek || a.haveDurHour || a.haveDurMinute || a.haveDurSecond

	var dur TimeRep
	if haveDur {
		dur = assembleDuration(a)
	}

	dt, err := assembleDateTime(a)
	if err != nil {
		return nil, err
	}

	switch {
	case a.sawR:
		ti := TimeInterval{Dur: dur}
		switch v := dt.(type) {
		case DateTime:
			ti.Start = &v
		case Time:
			ti.Start = &DateTime{Time: v}
		}
		var n *int
		if a.haveRecur {
			r := a.recur
			n = &r
		}
		return RecurringTimeInterval{N: n, Interval: ti}, nil
	case haveDur && dt != nil:
		d, ok := dt.(DateTime)
		if !ok {
			return nil, fmt.Errorf("chrono: reading %q: a duration cannot combine with a bare %T", value, dt)
		}
		return NewTimeIntervalStartDuration(d, dur)
	case haveDur:
		return dur, nil
	case dt != nil:
		return dt, nil
	default:
		return nil, fmt.Errorf("chrono: reading %q: matched no fields against this layout", value)
	}
}

// Read parses value against f's template. Matching stops as soon as value
// runs out of characters; whatever fields were read are assembled as-is,
// which is how accuracy-elided strings like "1985-04" round-trip against
// the full "YYYY-MM-DD" layout.
func (f Format) Read(value string) (TimeRep, error) {
	v := strings.ToUpper(value)
	var a assembly
	pos := 0
	lastElementPresent := false

	for _, op := range f.ops {
		if pos >= len(v) {
			break
		}
		switch op.kind {
		case literalOp:
			ok, newpos := matchLiteral(v, pos, op.lit)
			if !ok {
				return nil, &FormatReadError{Value: value, Pos: pos, Want: strconv.Quote(op.lit)}
			}
			pos = newpos
		case separatorOp, designatorOp:
			ok, newpos := matchLiteral(v, pos, op.lit)
			if ok {
				pos = newpos
				if op.lit == "R" {
					a.sawR = true
				}
				if op.utcMarker {
					a.haveOffset = true
					a.haveOffsetMinute = true
				}
			} else if !op.optional {
				return nil, &FormatReadError{Value: value, Pos: pos, Want: strconv.Quote(op.lit)}
			}
		case coerceOp:
			if !lastElementPresent {
				continue
			}
			ok, newpos := matchLiteral(v, pos, op.lit)
			if !ok {
				return nil, &FormatReadError{Value: value, Pos: pos, Want: strconv.Quote(op.lit)}
			}
			pos = newpos
		case elementOp:
			digits, newpos, neg, ok := readDigits(v, pos, op)
			lastElementPresent = ok
			if ok {
				val, err := strconv.Atoi(digits)
				if err != nil {
					return nil, &FormatReadError{Value: value, Pos: pos, Want: "a number"}
				}
				setAssembly(&a, op.unit, val, neg)
				pos = newpos
			}
		}
	}
	if pos != len(v) {
		return nil, &FormatReadError{Value: value, Pos: pos, Want: "end of input"}
	}
	return assembleResult(value, a)
}
