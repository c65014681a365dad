package timex

import (
	"github.com/rs/zerolog"

	"github.com/ploteq/timex/cfg"
	"github.com/ploteq/timex/earley"
)

// Parse drives the Earley parser repeatedly over tokens, per spec.md §4.6:
// run the parser over the remaining tokens, take the first completed parse,
// evaluate it through grammar's attribute evaluator; a DoNotParse result is
// flattened into its members, anything else is yielded as-is; the parse
// consumed some prefix of tokens, which is dropped before the next
// iteration. A token set with no completed parse yields its leading token
// verbatim and drops just that one token. Each iteration consumes at least
// one token, guaranteeing termination.
//
// logger receives one debug event per iteration (tokens remaining, whether a
// parse was found, how many tokens it consumed); the zero Logger is
// zerolog.Nop(), so Parse is silent unless the caller opts in (SPEC_FULL.md
// §4.7).
func Parse(tokens []Token, grammar *cfg.AttributeGrammar, logger zerolog.Logger) []Term {
	var out []Term
	remaining := tokens
	for len(remaining) > 0 {
		input := make([]cfg.Token, len(remaining))
		for i, t := range remaining {
			input[i] = t
		}

		p := earley.NewParser(grammar.Grammar)
		p.Parse(input)
		trees := p.Parses()

		if len(trees) == 0 {
			logger.Debug().Int("remaining", len(remaining)).Bool("matched", false).Msg("timex: no parse")
			out = append(out, remaining[0])
			remaining = remaining[1:]
			continue
		}

		tree := trees[0]
		consumed := len(tree.Leaves())
		if consumed == 0 {
			consumed = 1
		}

		value, err := grammar.Eval(tree)
		if err != nil {
			logger.Debug().Int("remaining", len(remaining)).Err(err).Msg("timex: eval failed")
			out = append(out, remaining[0])
			remaining = remaining[1:]
			continue
		}

		logger.Debug().Int("remaining", len(remaining)).Bool("matched", true).Int("consumed", consumed).Msg("timex: parsed")

		if dnp, ok := value.(DoNotParse); ok {
			out = append(out, dnp.Members...)
		} else {
			out = append(out, value)
		}

		if consumed > len(remaining) {
			consumed = len(remaining)
		}
		remaining = remaining[consumed:]
	}
	return out
}
