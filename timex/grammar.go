package timex

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	chrono "github.com/ploteq/timex"
	"github.com/ploteq/timex/cfg"
	"github.com/ploteq/timex/grammarspec"
)

// englishGrammarSource is the English timex grammar, in grammarspec's
// Yacc-like DSL (spec.md §6). It covers the spec's worked examples: plain
// and counted durations, past/future anchored intervals ("two weeks ago",
// "in three days"), next/last weekday references, "every <unit>" frequency,
// indefinite mentions ("recently", "someday"), an "approximately" modifier,
// month/day-of-month partial dates, and MM/DD and HH:MM(:SS) literals.
//
// original_source/ ships no grammar-spec text file itself (timex.py's
// read_grammar loads one from disk at runtime, outside the filtered
// code-and-build-config pack), so this vocabulary is grounded directly on
// spec.md §8's worked examples and glossary entries rather than a ported
// source file; POS tags are intentionally unused here since those worked
// examples are given as bare lowercase words.
const englishGrammarSource = `timex -> duration { id }
       | pastinterval { id }
       | futureinterval { id }
       | nextweekday { id }
       | lastweekday { id }
       | everyunit { id }
       | indefinite { id }
       | modified { id }
       | partialdate { id }
       | numericdate { id }
       | clocktime { id }
count -> "one" { word(1) }
       | "two" { word(2) }
       | "three" { word(3) }
       | "four" { word(4) }
       | "five" { word(5) }
       | "six" { word(6) }
       | "seven" { word(7) }
       | "eight" { word(8) }
       | "nine" { word(9) }
       | "ten" { word(10) }
       | "eleven" { word(11) }
       | "twelve" { word(12) }
       | digits() { parseInt }
unit -> "year" { unitName(year) }
      | "years" { unitName(year) }
      | "month" { unitName(month) }
      | "months" { unitName(month) }
      | "week" { unitName(week) }
      | "weeks" { unitName(week) }
      | "day" { unitName(day) }
      | "days" { unitName(day) }
      | "hour" { unitName(hour) }
      | "hours" { unitName(hour) }
      | "minute" { unitName(minute) }
      | "minutes" { unitName(minute) }
      | "second" { unitName(second) }
      | "seconds" { unitName(second) }
duration -> count unit { countedDuration }
          | "a" unit { singleDuration }
          | "an" unit { singleDuration }
pastinterval -> duration "ago" { pastAnchored }
futureinterval -> "in" duration { futureAnchored }
weekdayname -> "sunday" { word(0) }
             | "monday" { word(1) }
             | "tuesday" { word(2) }
             | "wednesday" { word(3) }
             | "thursday" { word(4) }
             | "friday" { word(5) }
             | "saturday" { word(6) }
nextweekday -> "next" weekdayname { nextInstance }
lastweekday -> "last" weekdayname { lastInstance }
everyunit -> "every" unit { everyUnit }
           | "every" weekdayname { everyWeekday }
indefinite -> "recently" { indefPast }
            | "soon" { indefFuture }
            | "someday" { indefFuture }
            | "sometime" { indefTimePoint }
modified -> "approximately" timex { approxMod }
          | "about" timex { approxMod }
          | "at" "least" timex { leastQuant }
monthname -> "january" { word(1) }
           | "february" { word(2) }
           | "march" { word(3) }
           | "april" { word(4) }
           | "may" { word(5) }
           | "june" { word(6) }
           | "july" { word(7) }
           | "august" { word(8) }
           | "september" { word(9) }
           | "october" { word(10) }
           | "november" { word(11) }
           | "december" { word(12) }
partialdate -> monthname dayofmonth() { monthDay }
             | monthname { monthOnly }
numericdate -> mmdd() { readMMDD }
clocktime -> hhmmss() { readHHMMSS }
           | hhmm() { readHHMM }
`

func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("timex: missing argument %d", i)
	}
	return strconv.Atoi(args[i])
}

// EnglishBindings builds the Bindings registry the englishGrammarSource is
// resolved against: one ActionFactory per named action, one TerminalFactory
// per custom terminal funcall. Exported so a caller can load its own grammar
// spec file (cmd/timexctl's "parse" subcommand) against the same action and
// terminal vocabulary instead of the embedded englishGrammarSource.
func EnglishBindings() grammarspec.Bindings {
	return grammarspec.Bindings{
		Actions: map[string]grammarspec.ActionFactory{
			"id": func(args []string) (cfg.Action, error) { return cfg.DefaultAction, nil },
			"word": func(args []string) (cfg.Action, error) {
				n, err := intArg(args, 0)
				if err != nil {
					return nil, err
				}
				return func(rhs []cfg.Value) (cfg.Value, error) { return n, nil }, nil
			},
			"unitName": func(args []string) (cfg.Action, error) {
				if len(args) == 0 {
					return nil, fmt.Errorf("timex: unitName requires a unit argument")
				}
				name := args[0]
				return func(rhs []cfg.Value) (cfg.Value, error) { return name, nil }, nil
			},
			"parseInt": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					w, _ := wordForm(rhs[0])
					return strconv.Atoi(w)
				}, nil
			},
			"countedDuration": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					return durationOf(rhs[1].(string), rhs[0].(int))
				}, nil
			},
			"singleDuration": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					return durationOf(rhs[1].(string), 1)
				}, nil
			},
			"pastAnchored": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					return PastAnchoredInterval{Duration: rhs[0].(chrono.TimeRep)}, nil
				}, nil
			},
			"futureAnchored": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					return FutureAnchoredInterval{Duration: rhs[1].(chrono.TimeRep)}, nil
				}, nil
			},
			"nextInstance": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					return NextInstance{TimePoint: rhs[1]}, nil
				}, nil
			},
			"lastInstance": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					return LastInstance{TimePoint: rhs[1]}, nil
				}, nil
			},
			"everyUnit": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					return Freq{Frequency: "every", Inner: GenericPlural{Unit: rhs[1].(string)}}, nil
				}, nil
			},
			"everyWeekday": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					return Freq{Frequency: "every", Inner: NextInstance{TimePoint: rhs[1]}}, nil
				}, nil
			},
			"indefPast":      func(args []string) (cfg.Action, error) { return constAction(IndefPast{}), nil },
			"indefFuture":    func(args []string) (cfg.Action, error) { return constAction(IndefFuture{}), nil },
			"indefTimePoint": func(args []string) (cfg.Action, error) { return constAction(IndefTimePoint{}), nil },
			"approxMod": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					inner, ok := rhs[1].(TemporalFunction)
					if !ok {
						return nil, fmt.Errorf("timex: approximately requires a temporal function, got %T", rhs[1])
					}
					return Mod{Modifier: "approximately", Inner: inner}, nil
				}, nil
			},
			"leastQuant": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					inner, ok := rhs[2].(TemporalFunction)
					if !ok {
						return nil, fmt.Errorf("timex: at least requires a temporal function, got %T", rhs[2])
					}
					return Quant{Quantifier: "at least", Inner: inner}, nil
				}, nil
			},
			"monthDay": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					m, err := chrono.NewMonth(rhs[0].(int))
					if err != nil {
						return nil, err
					}
					day, err := dayFromOrdinal(rhs[1])
					if err != nil {
						return nil, err
					}
					return PartialDate{Month: &m, Day: &day}, nil
				}, nil
			},
			"monthOnly": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					m, err := chrono.NewMonth(rhs[0].(int))
					if err != nil {
						return nil, err
					}
					return PartialDate{Month: &m}, nil
				}, nil
			},
			"readMMDD": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) { return parseMMDD(rhs[0]) }, nil
			},
			"readHHMM": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					w, _ := wordForm(rhs[0])
					return chrono.FormatOf(chrono.ISO8601TimeTruncatedMins).Read(w)
				}, nil
			},
			"readHHMMSS": func(args []string) (cfg.Action, error) {
				return func(rhs []cfg.Value) (cfg.Value, error) {
					w, _ := wordForm(rhs[0])
					return chrono.FormatOf(chrono.ISO8601TimeExtended).Read(w)
				}, nil
			},
		},
		Terminals: map[string]grammarspec.TerminalFactory{
			"digits":     func(args []string) (cfg.Terminal, error) { return cfg.NewRegexpTerminal(`[0-9]+`, "digits") },
			"dayofmonth": func(args []string) (cfg.Terminal, error) { return DayOfMonth, nil },
			"monthnum":   func(args []string) (cfg.Terminal, error) { return MonthNumber, nil },
			"mmdd":       func(args []string) (cfg.Terminal, error) { return MMDD, nil },
			"hhmm":       func(args []string) (cfg.Terminal, error) { return HHMM, nil },
			"hhmmss":     func(args []string) (cfg.Terminal, error) { return HHMMSS, nil },
			"any":        func(args []string) (cfg.Terminal, error) { return cfg.Any{}, nil },
			"other": func(args []string) (cfg.Terminal, error) {
				lits := make(map[string]struct{}, len(args))
				for _, a := range args {
					lits[a] = struct{}{}
				}
				return Other(lits), nil
			},
		},
	}
}

func constAction(v TemporalFunction) cfg.Action {
	return func(rhs []cfg.Value) (cfg.Value, error) { return v, nil }
}

// durationOf builds a chrono.Duration (or chrono.WeeksDuration, for "week")
// representing n units, for the duration grammar rules.
func durationOf(unit string, n int) (chrono.TimeRep, error) {
	cu, err := chrono.NewCardinalUnit(false, n, 0, false)
	if err != nil {
		return nil, err
	}
	switch unit {
	case "week":
		return chrono.WeeksDuration{Weeks: cu}, nil
	case "year":
		return chrono.Duration{Years: &cu}, nil
	case "month":
		return chrono.Duration{Months: &cu}, nil
	case "day":
		return chrono.Duration{Days: &cu}, nil
	case "hour":
		return chrono.Duration{Time: &chrono.TimeDuration{Hours: &cu}}, nil
	case "minute":
		return chrono.Duration{Time: &chrono.TimeDuration{Minutes: &cu}}, nil
	case "second":
		return chrono.Duration{Time: &chrono.TimeDuration{Seconds: &cu}}, nil
	default:
		return nil, fmt.Errorf("timex: unknown duration unit %q", unit)
	}
}

// dayFromOrdinal extracts the day-of-month from a raw matched DayOfMonth
// token ("25th" -> 25).
func dayFromOrdinal(tok cfg.Token) (chrono.DayOfMonth, error) {
	w, ok := wordForm(tok)
	if !ok {
		return 0, fmt.Errorf("timex: invalid day-of-month token %v", tok)
	}
	digits, ok := stripOrdinalSuffix(w)
	if !ok {
		return 0, fmt.Errorf("timex: invalid day-of-month token %q", w)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	return chrono.NewDayOfMonth(n)
}

// parseMMDD turns a raw "MM/DD" or "MM/DD/YY(YY)" token into a PartialDate
// (or, with a year present, a resolved chrono.CalendarDate).
func parseMMDD(tok cfg.Token) (Term, error) {
	w, ok := wordForm(tok)
	if !ok {
		return nil, fmt.Errorf("timex: invalid mm/dd token %v", tok)
	}
	var month, day, year int
	parts := 0
	if n, err := fmt.Sscanf(w, "%d/%d/%d", &month, &day, &year); err == nil && n == 3 {
		parts = 3
	} else if n, err := fmt.Sscanf(w, "%d/%d", &month, &day); err == nil && n == 2 {
		parts = 2
	} else {
		return nil, fmt.Errorf("timex: invalid mm/dd token %q", w)
	}

	m, err := chrono.NewMonth(month)
	if err != nil {
		return nil, err
	}
	d, err := chrono.NewDayOfMonth(day)
	if err != nil {
		return nil, err
	}
	if parts == 2 {
		return PartialDate{Month: &m, Day: &d}, nil
	}
	if year < 100 {
		year += 2000
	}
	y, err := chrono.NewYear(year)
	if err != nil {
		return nil, err
	}
	return chrono.NewCalendarDate(y, &m, &d)
}

// NewEnglishGrammar compiles the embedded English timex grammar, rooted at
// "timex". logger receives grammarspec.Load's compile diagnostics.
func NewEnglishGrammar(logger zerolog.Logger) (*cfg.AttributeGrammar, error) {
	return grammarspec.Load(englishGrammarSource, "timex", EnglishBindings(), logger)
}
