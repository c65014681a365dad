package cfg

import (
	"fmt"
	"regexp"
	"strings"
)

// Terminal tests whether a Token should be considered a match. Terminal is
// also a Symbol, so it can appear directly on a Production's right-hand side.
type Terminal interface {
	Symbol
	Matches(tok Token) bool
}

// WordToken is implemented by tokens that expose the lower-cased word form
// Literal, RegexpTerminal, Acronym, Abbrev and POSTerminal match against, plus
// an optional part-of-speech tag.
//
// Word form and POS tag are split once at construction time rather than on
// every match, following timex.Token's "word/POS" convention (spec.md §3).
type WordToken interface {
	Word() string
	POS() (tag string, ok bool)
}

// wordOf extracts the word form from tok, as the token gives it and without
// changing its case, if it is a WordToken or a plain string, and reports false for anything else (including nil and the
// empty token, matching cfg.py's "empty/null token does not match").
func wordOf(tok Token) (string, bool) {
	switch t := tok.(type) {
	case WordToken:
		w := t.Word()
		return w, w != ""
	case string:
		return t, t != ""
	default:
		return "", false
	}
}

// Literal matches a token by exact, case-folded comparison of its word form.
type Literal string

func (Literal) symbol() {}

// Matches reports whether tok's word form equals l, ignoring case.
func (l Literal) Matches(tok Token) bool {
	w, ok := wordOf(tok)
	return ok && strings.EqualFold(w, string(l))
}

func (l Literal) String() string { return string(l) }

// RegexpTerminal matches a token whose word form is matched, from the start,
// by a compiled regular expression.
type RegexpTerminal struct {
	pattern *regexp.Regexp
	name    string
}

// NewRegexpTerminal compiles pat (case-insensitively) and names the terminal
// name for diagnostics; if name is empty, pat is used instead.
func NewRegexpTerminal(pat, name string) (RegexpTerminal, error) {
	re, err := regexp.Compile("(?i:" + pat + ")")
	if err != nil {
		return RegexpTerminal{}, fmt.Errorf("cfg: invalid regexp terminal %q: %w", pat, err)
	}
	if name == "" {
		name = pat
	}
	return RegexpTerminal{pattern: re, name: name}, nil
}

func (RegexpTerminal) symbol() {}

// Matches reports whether tok's word form is matched, anchored to its start,
// by the compiled pattern.
func (r RegexpTerminal) Matches(tok Token) bool {
	w, ok := wordOf(tok)
	if !ok {
		return false
	}
	loc := r.pattern.FindStringIndex(w)
	return loc != nil && loc[0] == 0
}

func (r RegexpTerminal) String() string { return r.name }

var acronymLetters = regexp.MustCompile(`^(\w\.)+$`)
var acronymBare = regexp.MustCompile(`^\w+$`)

// Acronym matches a token equal, case-folded, either to the acronym exactly
// as given or to the same acronym with dotted separators inserted or removed
// between initials ("a.d." ~ "ad").
type Acronym struct {
	forms [2]string
}

// NewAcronym builds an Acronym terminal from acronym, which must either be a
// bare run of word characters ("ad") or a dotted run of single letters
// ("a.d."). Any other shape is rejected.
func NewAcronym(acronym string) (Acronym, error) {
	switch {
	case acronymLetters.MatchString(acronym):
		return Acronym{forms: [2]string{acronym, strings.ReplaceAll(acronym, ".", "")}}, nil
	case acronymBare.MatchString(acronym):
		var dotted strings.Builder
		for _, r := range acronym {
			dotted.WriteRune(r)
			dotted.WriteByte('.')
		}
		return Acronym{forms: [2]string{acronym, dotted.String()}}, nil
	default:
		return Acronym{}, &InvalidGrammarSpecError{Reason: fmt.Sprintf("invalid acronym spec %q", acronym)}
	}
}

func (Acronym) symbol() {}

// Matches reports whether tok's word form equals, case-folded, either form of
// the acronym.
func (a Acronym) Matches(tok Token) bool {
	w, ok := wordOf(tok)
	if !ok {
		return false
	}
	return strings.EqualFold(w, a.forms[0]) || strings.EqualFold(w, a.forms[1])
}

func (a Acronym) String() string { return a.forms[0] }

// Abbrev matches a token that is a prefix, of at least minLen characters, of
// full, ignoring a trailing period and case.
type Abbrev struct {
	full string
	min  int
}

// NewAbbrev builds an Abbrev terminal. minLen must be positive.
func NewAbbrev(full string, minLen int) (Abbrev, error) {
	if minLen <= 0 {
		return Abbrev{}, &InvalidGrammarSpecError{Reason: fmt.Sprintf("invalid abbrev min length %d", minLen)}
	}
	return Abbrev{full: strings.ToLower(full), min: minLen}, nil
}

func (Abbrev) symbol() {}

// Matches reports whether tok's word form, stripped of a trailing period, is
// at least a.min characters long and a prefix of a.full.
func (a Abbrev) Matches(tok Token) bool {
	w, ok := wordOf(tok)
	if !ok {
		return false
	}
	w = strings.ToLower(strings.TrimSuffix(w, "."))
	return len(w) >= a.min && strings.HasPrefix(a.full, w)
}

func (a Abbrev) String() string { return a.full }

// POSTerminal matches a token whose part-of-speech tag equals tag, ignoring
// case. Tokens that carry no POS tag never match.
type POSTerminal string

func (POSTerminal) symbol() {}

// Matches reports whether tok carries a POS tag equal to p, ignoring case.
func (p POSTerminal) Matches(tok Token) bool {
	wt, ok := tok.(WordToken)
	if !ok {
		return false
	}
	tag, ok := wt.POS()
	return ok && strings.EqualFold(tag, string(p))
}

func (p POSTerminal) String() string { return "/" + string(p) }

// Any matches every non-nil token, regardless of shape (an empty string
// matches too).
type Any struct{}

func (Any) symbol() {}

// Matches reports whether tok is any non-nil token.
func (Any) Matches(tok Token) bool { return tok != nil }

func (Any) String() string { return "<any>" }

// FuncTerminal adapts an arbitrary predicate to the Terminal interface, for
// custom terminals (day-of-month with ordinal suffix, HH:MM, and the like)
// that don't fit Literal/RegexpTerminal/Acronym/Abbrev/POSTerminal.
type FuncTerminal struct {
	Name string
	Fn   func(tok Token) bool
}

func (FuncTerminal) symbol() {}

// Matches calls the wrapped predicate.
func (f FuncTerminal) Matches(tok Token) bool { return f.Fn(tok) }

func (f FuncTerminal) String() string {
	if f.Name == "" {
		return "<custom>"
	}
	return f.Name
}
