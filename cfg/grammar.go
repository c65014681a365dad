package cfg

// Grammar is a collection of Productions indexed by left-hand side, plus a
// designated start symbol. Productions for a given nonterminal are returned
// in declaration order, since that order affects the order in which an
// Earley parser enumerates parses (§4.1, §4.2).
type Grammar struct {
	start       Nonterminal
	productions map[Nonterminal][]*Production
	order       []Nonterminal
}

// NewGrammar indexes productions by their left-hand side, preserving the
// order in which productions for the same LHS were given.
func NewGrammar(start Nonterminal, productions []*Production) *Grammar {
	g := &Grammar{
		start:       start,
		productions: make(map[Nonterminal][]*Production, len(productions)),
	}
	for _, p := range productions {
		if _, ok := g.productions[p.LHS]; !ok {
			g.order = append(g.order, p.LHS)
		}
		g.productions[p.LHS] = append(g.productions[p.LHS], p)
	}
	return g
}

// Start returns the grammar's designated start symbol.
func (g *Grammar) Start() Nonterminal { return g.start }

// Productions returns the productions whose left-hand side is lhs, in
// declaration order, or (nil, false) if lhs is unknown to the grammar.
func (g *Grammar) Productions(lhs Nonterminal) ([]*Production, bool) {
	ps, ok := g.productions[lhs]
	return ps, ok
}

// Symbols returns the nonterminals defined by the grammar, in the order their
// first production was added.
func (g *Grammar) Symbols() []Nonterminal {
	return g.order
}
