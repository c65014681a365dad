// Package earley implements the Earley parsing algorithm over a cfg.Grammar:
// a chart of States per input position, advanced by predict/scan/complete
// until every state set has been closed, yielding every valid cfg.ParseTree
// for the input.
package earley

import (
	"fmt"

	"github.com/ploteq/timex/cfg"
)

// State is a dotted rule paired with the origin position it started matching
// at and the matches accumulated so far for the symbols left of the dot.
//
// Two States are the "same" state, for the purposes of chart deduplication,
// if they share the same (rule, start, dot) triple — matched is deliberately
// excluded, since it is determined by the others during a single parse and
// comparing it would be both redundant and expensive (earley.py's State
// likewise hashes and compares only rule/start/dot).
type State struct {
	Rule     *cfg.Production
	Start    int
	Dot      int
	Matched  []any
	complete bool
	next     cfg.Symbol
}

// NewState builds a State for rule starting at start, with the dot at
// position 0 and no matches yet.
func NewState(rule *cfg.Production, start int) *State {
	return newState(rule, start, 0, nil)
}

func newState(rule *cfg.Production, start, dot int, matched []any) *State {
	s := &State{Rule: rule, Start: start, Dot: dot, Matched: matched}
	if dot > 0 {
		s.complete = dot == len(rule.RHS)
	} else {
		s.complete = len(rule.RHS) == 0
	}
	if !s.complete {
		s.next = rule.RHS[dot]
	}
	return s
}

// Complete reports whether the dot has reached the end of the rule's
// right-hand side.
func (s *State) Complete() bool { return s.complete }

// Next returns the symbol immediately to the right of the dot, or nil if the
// state is complete.
func (s *State) Next() cfg.Symbol { return s.next }

// advance returns a new State with the dot moved one position to the right
// and match appended to the accumulated matches. s itself is never mutated.
func (s *State) advance(match any) *State {
	if s.complete {
		panic("earley: cannot advance a complete state")
	}
	matched := make([]any, len(s.Matched)+1)
	copy(matched, s.Matched)
	matched[len(s.Matched)] = match
	return newState(s.Rule, s.Start, s.Dot+1, matched)
}

// ParseTree reconstructs the cfg.ParseTree rooted at s, recursively expanding
// any matched child that is itself a *State.
func (s *State) ParseTree() *cfg.ParseTree {
	children := make([]any, len(s.Matched))
	for i, m := range s.Matched {
		if sub, ok := m.(*State); ok {
			children[i] = sub.ParseTree()
		} else {
			children[i] = m
		}
	}
	return cfg.NewParseTree(s.Rule, children)
}

// key is the (rule, start, dot) triple used to deduplicate states within a
// single state set, mirroring earley.py's state_cache.
type key struct {
	rule  *cfg.Production
	start int
	dot   int
}

func (s *State) key() key { return key{s.Rule, s.Start, s.Dot} }

func (s *State) String() string {
	out := fmt.Sprintf("[%s →", s.Rule.LHS)
	for i, sym := range s.Rule.RHS {
		if i == s.Dot {
			out += "•"
		} else {
			out += " "
		}
		out += fmt.Sprintf("%v", sym)
	}
	if s.complete {
		out += "•"
	}
	out += fmt.Sprintf(", %d]", s.Start)
	return out
}
