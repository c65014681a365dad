package timex

import (
	"strconv"
	"strings"

	"github.com/ploteq/timex/cfg"
)

// Custom terminals used by the timex grammar (spec.md §3: "day-of-month with
// ordinal suffix, month number 1-12, MM/DD or MM/DD/YY(YY), HH:MM, HH:MM:SS,
// a universal Any, and an Other that matches anything not appearing as a
// literal in the grammar"). None of these fit Literal/RegexpTerminal/Acronym/
// Abbrev/POSTerminal, so each is a cfg.FuncTerminal wrapping a predicate over
// the token's word form, grounded on original_source/timex.py's custom
// terminal classes (DayOfMonth, Month, MMDD, HHMM, HHMMSS).

func stripOrdinalSuffix(w string) (string, bool) {
	if len(w) < 3 {
		return w, false
	}
	suffix := w[len(w)-2:]
	switch suffix {
	case "st", "nd", "rd", "th":
		digits := w[:len(w)-2]
		if digits == "" {
			return "", false
		}
		for _, r := range digits {
			if r < '0' || r > '9' {
				return "", false
			}
		}
		return digits, true
	default:
		return w, false
	}
}

// DayOfMonth matches a token such as "25th" or "3rd": digits followed by an
// ordinal suffix, value in [1, 31].
var DayOfMonth = cfg.FuncTerminal{
	Name: "<day-of-month>",
	Fn: func(tok cfg.Token) bool {
		w, ok := wordForm(tok)
		if !ok {
			return false
		}
		digits, hasSuffix := stripOrdinalSuffix(w)
		if !hasSuffix {
			return false
		}
		n, err := strconv.Atoi(digits)
		return err == nil && n >= 1 && n <= 31
	},
}

// MonthNumber matches a bare token holding an integer in [1, 12].
var MonthNumber = cfg.FuncTerminal{
	Name: "<month-number>",
	Fn: func(tok cfg.Token) bool {
		w, ok := wordForm(tok)
		if !ok {
			return false
		}
		n, err := strconv.Atoi(w)
		return err == nil && n >= 1 && n <= 12
	},
}

// MMDD matches "MM/DD" or "MM/DD/YY" or "MM/DD/YYYY" with valid ranges.
var MMDD = cfg.FuncTerminal{
	Name: "<mm/dd>",
	Fn: func(tok cfg.Token) bool {
		w, ok := wordForm(tok)
		if !ok {
			return false
		}
		parts := strings.Split(w, "/")
		if len(parts) != 2 && len(parts) != 3 {
			return false
		}
		month, err := strconv.Atoi(parts[0])
		if err != nil || month < 1 || month > 12 {
			return false
		}
		day, err := strconv.Atoi(parts[1])
		if err != nil || day < 1 || day > 31 {
			return false
		}
		if len(parts) == 3 {
			if _, err := strconv.Atoi(parts[2]); err != nil {
				return false
			}
			if len(parts[2]) != 2 && len(parts[2]) != 4 {
				return false
			}
		}
		return true
	},
}

// HHMM matches "HH:MM" with valid ranges.
var HHMM = cfg.FuncTerminal{
	Name: "<hh:mm>",
	Fn:   func(tok cfg.Token) bool { return matchesClock(tok, 2) },
}

// HHMMSS matches "HH:MM:SS" with valid ranges.
var HHMMSS = cfg.FuncTerminal{
	Name: "<hh:mm:ss>",
	Fn:   func(tok cfg.Token) bool { return matchesClock(tok, 3) },
}

func matchesClock(tok cfg.Token, wantParts int) bool {
	w, ok := wordForm(tok)
	if !ok {
		return false
	}
	parts := strings.Split(w, ":")
	if len(parts) != wantParts {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	if wantParts == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return false
		}
	}
	return true
}

// Other matches any non-empty token whose word form does not appear as a
// literal anywhere in literals. Per spec.md §9's open question on Other's
// under-documented semantics, this module takes the permissive, explicit
// reading: the caller supplies the grammar's literal table (collected from
// its cfg.Literal terminals) and Other matches its complement, rather than
// silently refusing to evaluate.
func Other(literals map[string]struct{}) cfg.FuncTerminal {
	return cfg.FuncTerminal{
		Name: "<other>",
		Fn: func(tok cfg.Token) bool {
			w, ok := wordForm(tok)
			if !ok {
				return false
			}
			_, isLiteral := literals[strings.ToLower(w)]
			return !isLiteral
		},
	}
}

func wordForm(tok cfg.Token) (string, bool) {
	switch t := tok.(type) {
	case Token:
		w := t.Word()
		return w, w != ""
	case cfg.WordToken:
		w := t.Word()
		return w, w != ""
	case string:
		return t, t != ""
	default:
		return "", false
	}
}
