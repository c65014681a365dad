package timex

import "github.com/ploteq/timex/cfg"

// English cardinal-number grammar (spec.md §8's "Number grammar" testable
// property: "twenty-one" -> 21, "one hundred and thirty-seven" -> 137,
// "nineteen ninety-nine" -> 1999, "four hundred thousand nine hundred and
// one" -> 400901). Built directly with cfg combinators rather than the
// grammarspec DSL, following the precedent grammarspec's own metagrammar.go
// sets for a small bootstrap grammar assembled in Go.

var onesWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

var teensWords = map[string]int{
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var tensWords = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// hyphenWords covers the written-with-hyphen compounds a tokenizer keeps as
// one word ("twenty-one"), since Tokenize only splits on whitespace.
var hyphenWords = buildHyphenWords()

func buildHyphenWords() map[string]int {
	out := make(map[string]int)
	for tw, tv := range tensWords {
		for ow, ov := range onesWords {
			out[tw+"-"+ow] = tv + ov
		}
	}
	return out
}

func wordValue(tok cfg.Token) (int, bool) {
	w, ok := wordForm(tok)
	if !ok {
		return 0, false
	}
	if v, ok := onesWords[w]; ok {
		return v, true
	}
	if v, ok := teensWords[w]; ok {
		return v, true
	}
	if v, ok := tensWords[w]; ok {
		return v, true
	}
	if v, ok := hyphenWords[w]; ok {
		return v, true
	}
	return 0, false
}

func isWord(want string) cfg.FuncTerminal {
	return cfg.FuncTerminal{
		Name: want,
		Fn: func(tok cfg.Token) bool {
			w, ok := wordForm(tok)
			return ok && w == want
		},
	}
}

var smallNumberTerm = cfg.FuncTerminal{
	Name: "<0-99>",
	Fn: func(tok cfg.Token) bool {
		_, ok := wordValue(tok)
		return ok
	},
}

// NewCardinalGrammar builds a fresh instance of the compiled English
// cardinal-number grammar, rooted at "number"; the grammar is
// immutable and stateless, so callers may build one and reuse it freely.
func NewCardinalGrammar() *cfg.AttributeGrammar {
	small := cfg.NewProduction("small", smallNumberTerm)
	hundredWithAnd := cfg.NewProduction("hundreds", cfg.Nonterminal("small"), isWord("hundred"), isWord("and"), cfg.Nonterminal("small"))
	hundredBare := cfg.NewProduction("hundreds", cfg.Nonterminal("small"), isWord("hundred"), cfg.Nonterminal("small"))
	hundredOnly := cfg.NewProduction("hundreds", cfg.Nonterminal("small"), isWord("hundred"))
	belowThousand := cfg.NewProduction("below1000", cfg.Nonterminal("hundreds"))
	belowThousandSmall := cfg.NewProduction("below1000", cfg.Nonterminal("small"))

	thousandsFull := cfg.NewProduction("number", cfg.Nonterminal("below1000"), isWord("thousand"), cfg.Nonterminal("below1000"))
	thousandsBare := cfg.NewProduction("number", cfg.Nonterminal("below1000"), isWord("thousand"))
	// "nineteen ninety-nine" style year reading: two below-100 numbers spoken
	// back to back, read as hundreds (19, 99 -> 1900+99).
	yearPair := cfg.NewProduction("number", cfg.Nonterminal("small"), cfg.Nonterminal("small"))
	plain := cfg.NewProduction("number", cfg.Nonterminal("below1000"))

	rules := []cfg.Rule{
		{Production: small, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			v, _ := wordValue(rhs[0])
			return v, nil
		}},
		{Production: hundredWithAnd, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rhs[0].(int)*100 + rhs[3].(int), nil
		}},
		{Production: hundredBare, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rhs[0].(int)*100 + rhs[2].(int), nil
		}},
		{Production: hundredOnly, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rhs[0].(int) * 100, nil
		}},
		{Production: belowThousand, Action: cfg.DefaultAction},
		{Production: belowThousandSmall, Action: cfg.DefaultAction},
		{Production: thousandsFull, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rhs[0].(int)*1000 + rhs[2].(int), nil
		}},
		{Production: thousandsBare, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rhs[0].(int) * 1000, nil
		}},
		{Production: yearPair, Action: func(rhs []cfg.Value) (cfg.Value, error) {
			return rhs[0].(int)*100 + rhs[1].(int), nil
		}},
		{Production: plain, Action: cfg.DefaultAction},
	}

	return cfg.NewAttributeGrammar("number", rules)
}
