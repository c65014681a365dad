package timex

import (
	"fmt"

	chrono "github.com/ploteq/timex"
)

// TemporalFunction is an algebraic term produced by a timex grammar action:
// an under-specified time representation that a caller resolves later by
// substituting an anchor. The set of concrete functions is closed to this
// package, following spec.md §3's TemporalFunction variant list.
//
// Grounded on spec.md §3's TemporalFunction variant list (the temporal-
// function term constructors live in the grammar spec text the original
// reads at runtime, not in original_source/timex.py's core itself, so there
// is no single Python class hierarchy to port here). Go closes the set with
// an unexported marker method and gives every variant its own ApplyAnchor,
// since the "substitute once, leave resolved subterms alone" behavior
// genuinely differs per variant shape rather than being pure boilerplate.
type TemporalFunction interface {
	isTemporalFunction()
	// ApplyAnchor substitutes this function's unresolved anchor slot with
	// anchor, returning a new TemporalFunction with the anchor filled in. Functions with no anchor slot, or whose anchor is already resolved, return
	// themselves unchanged.
	ApplyAnchor(anchor chrono.TimeRep) TemporalFunction
}

// Term is anything a grammar action or the top-level driver can produce: a
// resolved chrono.TimeRep, an unresolved TemporalFunction, or a raw Token
// surfaced verbatim when nothing matched.
type Term = any

// UtteranceTime and ReferenceTime are the two deictic/anaphoric anchor
// placeholders (spec.md glossary): UtteranceTime is "now" at speech time,
// ReferenceTime is the most recently established discourse time.
type UtteranceTime struct{}

func (UtteranceTime) isTemporalFunction()                           {}
func (u UtteranceTime) ApplyAnchor(chrono.TimeRep) TemporalFunction { return u }

type ReferenceTime struct{}

func (ReferenceTime) isTemporalFunction()                           {}
func (r ReferenceTime) ApplyAnchor(chrono.TimeRep) TemporalFunction { return r }

// IndefPast, IndefFuture and IndefTimePoint represent "sometime before/
// after/at" an anchor with no further qualification ("recently", "someday").
type IndefPast struct{ Anchor chrono.TimeRep }

func (IndefPast) isTemporalFunction() {}
func (i IndefPast) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if i.Anchor != nil {
		return i
	}
	return IndefPast{Anchor: anchor}
}

type IndefFuture struct{ Anchor chrono.TimeRep }

func (IndefFuture) isTemporalFunction() {}
func (i IndefFuture) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if i.Anchor != nil {
		return i
	}
	return IndefFuture{Anchor: anchor}
}

type IndefTimePoint struct{ Anchor chrono.TimeRep }

func (IndefTimePoint) isTemporalFunction() {}
func (i IndefTimePoint) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if i.Anchor != nil {
		return i
	}
	return IndefTimePoint{Anchor: anchor}
}

// PastAnchoredInterval and FutureAnchoredInterval represent "Duration before/
// after anchor" as an interval ("two weeks ago", "in three days"), per
// spec.md §8 scenario 6.
type PastAnchoredInterval struct {
	Duration chrono.TimeRep
	Anchor   chrono.TimeRep
}

func (PastAnchoredInterval) isTemporalFunction() {}
func (p PastAnchoredInterval) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if p.Anchor != nil {
		return p
	}
	p.Anchor = anchor
	return p
}

type FutureAnchoredInterval struct {
	Duration chrono.TimeRep
	Anchor   chrono.TimeRep
}

func (FutureAnchoredInterval) isTemporalFunction() {}
func (f FutureAnchoredInterval) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if f.Anchor != nil {
		return f
	}
	f.Anchor = anchor
	return f
}

// PastAnchoredTimePoint and FutureAnchoredTimePoint represent "the point
// Duration before/after anchor" as a single instant rather than a span.
type PastAnchoredTimePoint struct {
	Duration chrono.TimeRep
	Anchor   chrono.TimeRep
}

func (PastAnchoredTimePoint) isTemporalFunction() {}
func (p PastAnchoredTimePoint) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if p.Anchor != nil {
		return p
	}
	p.Anchor = anchor
	return p
}

type FutureAnchoredTimePoint struct {
	Duration chrono.TimeRep
	Anchor   chrono.TimeRep
}

func (FutureAnchoredTimePoint) isTemporalFunction() {}
func (f FutureAnchoredTimePoint) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if f.Anchor != nil {
		return f
	}
	f.Anchor = anchor
	return f
}

// Increment and Decrement shift an anchor by one unit ("next year", "last
// week"), distinct from NextInstance/LastInstance which search forward/
// backward for the next occurrence of a TimePoint-shaped value ("next
// Sunday").
type Increment struct {
	Unit   string
	Anchor chrono.TimeRep
}

func (Increment) isTemporalFunction() {}
func (i Increment) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if i.Anchor != nil {
		return i
	}
	i.Anchor = anchor
	return i
}

type Decrement struct {
	Unit   string
	Anchor chrono.TimeRep
}

func (Decrement) isTemporalFunction() {}
func (d Decrement) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if d.Anchor != nil {
		return d
	}
	d.Anchor = anchor
	return d
}

// NextInstance and LastInstance locate the nearest future/past occurrence of
// a TimePoint-shaped value relative to an anchor ("the first Sunday",
// spec.md §8 scenario 5). TimePoint is a Term rather than a chrono.TimeRep
// because it is often only a bare weekday or month reference ("Sunday"),
// which has no standalone chrono.TimeRep shape of its own (a WeekDate always
// needs a year); it is the anchor substitution that later pins it down.
type NextInstance struct {
	TimePoint Term
	Anchor    chrono.TimeRep
}

func (NextInstance) isTemporalFunction() {}
func (n NextInstance) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if n.Anchor != nil {
		return n
	}
	n.Anchor = anchor
	return n
}

type LastInstance struct {
	TimePoint Term
	Anchor    chrono.TimeRep
}

func (LastInstance) isTemporalFunction() {}
func (l LastInstance) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if l.Anchor != nil {
		return l
	}
	l.Anchor = anchor
	return l
}

// CoercedTimePoint records a scale change: "the month" applied to a
// day-precision anchor reinterprets it at Month granularity, resolved once
// the anchor is substituted (spec.md §8 scenario 5, §9 glossary "Coercion").
type CoercedTimePoint struct {
	TimePoint Term // nil until ApplyAnchor runs
	Unit      string
}

func (CoercedTimePoint) isTemporalFunction() {}
func (c CoercedTimePoint) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if c.TimePoint != nil {
		return c
	}
	c.TimePoint = anchor
	return c
}

// GenericPlural represents a bare plural unit mention with no anchor of its
// own ("months", "Sundays") used where the grammar defers anchoring to an
// enclosing construct.
type GenericPlural struct {
	Unit string
}

func (GenericPlural) isTemporalFunction() {}
func (g GenericPlural) ApplyAnchor(chrono.TimeRep) TemporalFunction { return g }

// BeginAnchoredTimex and EndAnchoredTimex mark the begin/end point of a
// timex span that participates in a TimeML-style linking relation, carrying
// the wrapped timex plus its own id and the id of the timex it anchors to.
// ("tid"/"anchor_tid" mirror the corpus attributes that a downstream linker
// consumes; this core only carries them through, per spec.md §1's Non-goal
// that corpus ingestion itself is a collaborator's job.)
type BeginAnchoredTimex struct {
	Timex     TemporalFunction
	TID       string
	AnchorTID string
}

func (BeginAnchoredTimex) isTemporalFunction() {}
func (b BeginAnchoredTimex) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	b.Timex = b.Timex.ApplyAnchor(anchor)
	return b
}

type EndAnchoredTimex struct {
	Timex     TemporalFunction
	TID       string
	AnchorTID string
}

func (EndAnchoredTimex) isTemporalFunction() {}
func (e EndAnchoredTimex) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	e.Timex = e.Timex.ApplyAnchor(anchor)
	return e
}

// Mod, Freq and Quant wrap an inner timex with a modifier ("approximately",
// "every", "at least"), carried through unresolved until the inner term is
// anchored.
type Mod struct {
	Modifier string
	Inner    TemporalFunction
}

func (Mod) isTemporalFunction() {}
func (m Mod) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	m.Inner = m.Inner.ApplyAnchor(anchor)
	return m
}

type Freq struct {
	Frequency string
	Inner     TemporalFunction
}

func (Freq) isTemporalFunction() {}
func (f Freq) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	f.Inner = f.Inner.ApplyAnchor(anchor)
	return f
}

type Quant struct {
	Quantifier string
	Inner      TemporalFunction
}

func (Quant) isTemporalFunction() {}
func (q Quant) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	q.Inner = q.Inner.ApplyAnchor(anchor)
	return q
}

// PartialDate is a month/day (optionally bare day, or bare month) mention
// with no year, such as "October 25" (spec.md §8 scenario 5's
// "CalendarDate(-, 10, 25)"). chrono.CalendarDate cannot represent this
// directly: its reduced-accuracy invariant only ever drops trailing
// components, never the leading year, so a year-less date is a
// TemporalFunction whose anchor supplies the missing year rather than a
// TimeRep in its own right.
type PartialDate struct {
	Month  *chrono.Month
	Day    *chrono.DayOfMonth
	Anchor chrono.TimeRep
}

func (PartialDate) isTemporalFunction() {}
func (p PartialDate) ApplyAnchor(anchor chrono.TimeRep) TemporalFunction {
	if p.Anchor != nil {
		return p
	}
	p.Anchor = anchor
	return p
}

// DoNotParse is a flattening sentinel (spec.md §4.6): a grammar action that
// wants to surface several terms without them being treated as a single
// consumed unit wraps them in a DoNotParse, and the top-level driver splices
// Members into the output sequence instead of yielding the DoNotParse
// itself.
type DoNotParse struct {
	Members []Term
}

func (d DoNotParse) String() string {
	return fmt.Sprintf("DoNotParse(%d members)", len(d.Members))
}
