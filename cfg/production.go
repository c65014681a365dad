package cfg

import (
	"fmt"
	"strings"
)

// Production is a single grammar rule: a left-hand-side nonterminal and an
// ordered right-hand side of Symbols.
//
// Productions are shared by pointer throughout cfg, earley and grammarspec:
// two *Production values are the same rule if and only if they are the same
// pointer. This mirrors the original Python implementation's deliberate
// choice to rely on object identity for Production equality rather than
// hashing the right-hand-side tuple (cfg.py's Production defines __eq__ but
// not __hash__, with a comment noting this trades correctness-in-general for
// speed, "since it allows Python to just use object identity"). In Go, a
// *Production is naturally comparable and hashable as a map key, so the same
// trade lands for free as long as every Production is constructed once and
// referenced thereafter, which is how Grammar and the grammarspec loader
// build them.
type Production struct {
	LHS Nonterminal
	RHS []Symbol
}

// NewProduction constructs a Production from a left-hand side and a
// right-hand side of symbols.
func NewProduction(lhs Nonterminal, rhs ...Symbol) *Production {
	return &Production{LHS: lhs, RHS: rhs}
}

func (p *Production) String() string {
	var b strings.Builder
	b.WriteString(string(p.LHS))
	b.WriteString(" -> ")
	for i, s := range p.RHS {
		if i > 0 {
			b.WriteByte(' ')
		}
		if nt, ok := s.(Nonterminal); ok {
			b.WriteString(string(nt))
		} else {
			fmt.Fprintf(&b, "%v", s)
		}
	}
	return b.String()
}
