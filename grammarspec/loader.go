package grammarspec

import (
	"github.com/ploteq/timex/cfg"
	"github.com/ploteq/timex/earley"
	"github.com/rs/zerolog"
)

// ActionFactory builds a cfg.Action from the arguments given at its call
// site in a grammar spec ("{ name }" → args == nil, "{ name(a, b) }" → args
// == []string{"a", "b"}). Most actions ignore args and return a fixed
// function; parameterized actions (e.g. a "coerce to unit" action family)
// close over args to specialize the returned cfg.Action.
type ActionFactory func(args []string) (cfg.Action, error)

// TerminalFactory builds a cfg.Terminal from a funcall sym's arguments
// ("name(args...)" on a production's right-hand side).
type TerminalFactory func(args []string) (cfg.Terminal, error)

// Bindings is the vocabulary a grammar spec's action and funcall names are
// resolved against. This replaces grammarparser.py's action(expr), which
// compiled and exec'd an arbitrary Python expression string — Go has no safe
// analogue, so instead a grammar spec may only reference names the caller
// has explicitly registered (design note §9 recommendation (b)).
type Bindings struct {
	Actions   map[string]ActionFactory
	Terminals map[string]TerminalFactory
}

// Load compiles a grammar specification's source text into an
// AttributeGrammar whose start symbol is start. Every action name and
// terminal-factory name referenced in src must be present in bindings;
// otherwise Load returns an *InvalidActionError. logger receives compile
// diagnostics (by default zerolog.Nop(), i.e. silent, per SPEC_FULL.md §4.7).
func Load(src string, start cfg.Nonterminal, bindings Bindings, logger zerolog.Logger) (*cfg.AttributeGrammar, error) {
	toks, err := Tokenize(src)
	if err != nil {
		logger.Error().Err(err).Msg("grammarspec: tokenize failed")
		return nil, err
	}
	logger.Debug().Int("tokens", len(toks)).Msg("grammarspec: tokenized")

	input := make([]cfg.Token, len(toks))
	for i, t := range toks {
		input[i] = t
	}

	p := earley.NewParser(metaGrammar.Grammar)
	p.Parse(input)
	trees := p.Parses()
	if len(trees) == 0 {
		line := 0
		if len(toks) > 0 {
			line = toks[len(toks)-1].Line
		}
		return nil, &GrammarSpecSyntaxError{Line: line}
	}

	value, err := metaGrammar.Eval(trees[0])
	if err != nil {
		return nil, err
	}
	prods, ok := value.([]rawProd)
	if !ok {
		return nil, &GrammarSpecSyntaxError{}
	}

	var rules []cfg.Rule
	for _, rp := range prods {
		for _, alt := range rp.alts {
			rhs := make([]cfg.Symbol, len(alt.rhs))
			for i, sym := range alt.rhs {
				s, err := resolveSym(sym, bindings)
				if err != nil {
					return nil, err
				}
				rhs[i] = s
			}
			production := cfg.NewProduction(cfg.Nonterminal(rp.lhs), rhs...)

			action, err := resolveAction(alt.action, bindings)
			if err != nil {
				return nil, err
			}
			rules = append(rules, cfg.Rule{Production: production, Action: action})
		}
	}

	logger.Info().Int("productions", len(rules)).Str("start", string(start)).Msg("grammarspec: compiled grammar")
	return cfg.NewAttributeGrammar(start, rules), nil
}

func resolveSym(sym rawSym, bindings Bindings) (cfg.Symbol, error) {
	switch sym.kind {
	case symNonterminal:
		return cfg.Nonterminal(sym.name), nil
	case symLiteral:
		return cfg.Literal(sym.literal), nil
	case symFuncall:
		factory, ok := bindings.Terminals[sym.name]
		if !ok {
			return nil, &InvalidActionError{Name: sym.name, Kind: "terminal"}
		}
		term, err := factory(sym.args)
		if err != nil {
			return nil, &InvalidActionError{Name: sym.name, Kind: "terminal", Err: err}
		}
		return term, nil
	default:
		return nil, &InvalidActionError{Name: sym.name, Kind: "symbol"}
	}
}

func resolveAction(spec *actionSpec, bindings Bindings) (cfg.Action, error) {
	if spec == nil {
		return nil, nil
	}
	factory, ok := bindings.Actions[spec.name]
	if !ok {
		return nil, &InvalidActionError{Name: spec.name, Kind: "action"}
	}
	action, err := factory(spec.args)
	if err != nil {
		return nil, &InvalidActionError{Name: spec.name, Kind: "action", Err: err}
	}
	return action, nil
}
