package earley

import "github.com/ploteq/timex/cfg"

// startSymbol is a synthetic nonterminal used only as the left-hand side of
// the pseudo start-rule each parse begins with. The enclosing angle brackets
// make collision with a real grammar-spec nonterminal name vanishingly
// unlikely, playing the same role as earley.py's Parser.StartSymbol — a
// fresh object that can never equal anything a grammar defines.
const startSymbol cfg.Nonterminal = "⟨start⟩"

// Parser runs the Earley algorithm over grammar, producing a chart of State
// sets indexed by input position.
type Parser struct {
	grammar *cfg.Grammar
	chart   [][]*State
	cache   []map[key]bool
}

// NewParser builds a Parser for grammar. The same Parser can be reused for
// multiple calls to Parse; each call discards the previous chart.
func NewParser(grammar *cfg.Grammar) *Parser {
	return &Parser{grammar: grammar}
}

// ensure grows the chart, if necessary, so that state set i exists, and
// returns it.
func (p *Parser) ensure(i int) []*State {
	for len(p.chart) <= i {
		p.chart = append(p.chart, nil)
		p.cache = append(p.cache, map[key]bool{})
	}
	return p.chart[i]
}

func (p *Parser) add(i int, s *State) {
	k := s.key()
	if p.cache[i][k] {
		return
	}
	p.cache[i][k] = true
	p.chart[i] = append(p.chart[i], s)
}

func (p *Parser) complete(state *State, i int) {
	for _, prev := range p.chart[state.Start] {
		if prev.complete {
			continue
		}
		nextNT, ok := prev.next.(cfg.Nonterminal)
		if !ok || nextNT != state.Rule.LHS {
			continue
		}
		p.add(i, prev.advance(state))
	}
}

func (p *Parser) predict(state *State, i int) {
	nt := state.next.(cfg.Nonterminal)
	rules, _ := p.grammar.Productions(nt)
	for _, rule := range rules {
		p.add(i, NewState(rule, i))
	}
}

func (p *Parser) scan(state *State, i int, token cfg.Token) {
	term := state.next.(cfg.Terminal)
	if token == nil || !term.Matches(token) {
		return
	}
	p.ensure(i + 1)
	p.add(i+1, state.advance(token))
}

// Parse runs the algorithm over input, populating the chart. It always
// succeeds; the absence of a parse is reported by Parses returning no trees,
// not by an error, since a partial/failed parse chart is itself useful for
// diagnostics (§4.2 "Failure semantics").
func (p *Parser) Parse(input []cfg.Token) {
	p.chart = nil
	p.cache = nil
	p.ensure(0)
	p.add(0, NewState(cfg.NewProduction(startSymbol, p.grammar.Start()), 0))

	tokens := make([]cfg.Token, len(input)+1)
	copy(tokens, input)
	// tokens[len(input)] stays nil: one extra pass closes out states whose
	// next symbol is a Terminal that can never be scanned, matching
	// earley.py's itertools.chain(input, [None]) sentinel pass.

	for i, token := range tokens {
		p.ensure(i)
		for j := 0; j < len(p.chart[i]); j++ {
			state := p.chart[i][j]
			switch {
			case state.complete:
				p.complete(state, i)
			case isTerminal(state.next):
				p.scan(state, i, token)
			default:
				p.predict(state, i)
			}
		}
	}
}

func isTerminal(s cfg.Symbol) bool {
	_, ok := s.(cfg.Terminal)
	return ok
}

// Len reports the number of state sets in the chart (len(input) + 1 after a
// successful Parse).
func (p *Parser) Len() int { return len(p.chart) }

// StateSet returns the state set at position i, or nil if i is out of range.
func (p *Parser) StateSet(i int) []*State {
	if i < 0 || i >= len(p.chart) {
		return nil
	}
	return p.chart[i]
}

// Parses returns a parse tree for every completed instance of the synthetic
// start rule that begins at position 0, found by scanning the chart back to
// front (earley.py's Parser.parses). Trees that cover only a prefix of the
// input are included, so the result is ordered longest parse first.
func (p *Parser) Parses() []*cfg.ParseTree {
	var out []*cfg.ParseTree
	for i := len(p.chart) - 1; i >= 0; i-- {
		for _, state := range p.chart[i] {
			if state.Rule.LHS == startSymbol && state.complete && state.Start == 0 {
				if sub, ok := state.Matched[0].(*State); ok {
					out = append(out, sub.ParseTree())
				}
			}
		}
	}
	return out
}

// Parse is a convenience wrapper: it runs a fresh Parser over grammar and
// input and returns every resulting parse tree.
func Parse(input []cfg.Token, grammar *cfg.Grammar) []*cfg.ParseTree {
	p := NewParser(grammar)
	p.Parse(input)
	return p.Parses()
}
