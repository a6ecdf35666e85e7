// Package search: the Engine and its best-first traversal.
//
// The traversal is a label-setting expansion over the time-expanded graph:
// a global min-heap orders candidate itineraries by accumulated cost, and
// each pop either emits a completed itinerary or extends the state with
// every admissible next flight. Stale or over-budget states are discarded
// lazily when popped, the same way a lazy-decrease-key Dijkstra ignores
// outdated heap entries.

package search

import (
	"container/heap"
	"context"
	"sort"
	"time"

	"github.com/kaverin/avipath/core"
)

// Engine runs itinerary searches against a shared airports registry. It
// is stateless across calls and never mutates the registry, so one Engine
// may serve any number of concurrent Find calls.
type Engine struct {
	airports *core.Airports
	opts     Options
}

// New builds an Engine over the given registry with optional tunable
// overrides. Validation of the registry happens at Find time so that a
// zero Engine fails with a typed error rather than a panic.
func New(airports *core.Airports, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{airports: airports, opts: cfg}
}

// Find returns up to q.ResultCap itineraries from q.From to q.To starting
// on q.Date, sorted by ascending total cost.
//
// An unknown source or target airport, an empty seed window, and an
// exhausted search space all yield an empty list with a nil error — "no
// path" and "unknown endpoint" are indistinguishable by design. The
// context is observed between expansions: on cancellation Find returns
// the itineraries found so far together with ctx.Err().
func (e *Engine) Find(ctx context.Context, q Query) ([]*Itinerary, error) {
	if e.airports == nil {
		return nil, ErrNilAirports
	}
	if q.HopBudget < 0 {
		return nil, ErrBadHopBudget
	}
	if q.ResultCap <= 0 {
		return nil, ErrBadResultCap
	}

	source, ok := e.airports.Airport(q.From)
	if !ok {
		return nil, nil
	}
	target, ok := e.airports.Airport(q.To)
	if !ok {
		return nil, nil
	}

	windowStart := midnight(q.Date)
	t := &traversal{
		opts:        e.opts,
		source:      source,
		target:      target,
		windowStart: windowStart,
		windowEnd:   windowStart.Add(e.opts.SeedWindow),
		horizon:     windowStart.Add(e.opts.Horizon),
		budget:      q.HopBudget,
		resultCap:   q.ResultCap,
		// Sized from the number of distinct flights known now; flights
		// ingested mid-search simply start counting on first expansion.
		counts: make(map[int]int, e.airports.Flights().Len()),
	}

	return t.run(ctx)
}

// traversal holds the mutable state of a single Find execution.
type traversal struct {
	opts   Options
	source *core.Airport
	target *core.Airport

	windowStart time.Time // query date at 00:00
	windowEnd   time.Time // latest first-leg departure
	horizon     time.Time // latest admissible arrival

	budget    int         // per-flight expansion cap
	resultCap int         // stop after this many completed itineraries
	counts    map[int]int // flight ID → expansions so far

	frontier stateHeap
	results  []*Itinerary
}

// run seeds the frontier and drives the expansion loop to completion,
// cap, or cancellation.
func (t *traversal) run(ctx context.Context) ([]*Itinerary, error) {
	for _, f := range t.source.FlightsBetween(t.windowStart, t.windowEnd) {
		if f.DepartAt.Before(t.windowStart) {
			continue
		}
		heap.Push(&t.frontier, &Itinerary{cost: f.Cost, legs: []*core.Flight{f}, last: f})
	}

	for t.frontier.Len() > 0 {
		select {
		case <-ctx.Done():
			return t.sorted(), ctx.Err()
		default:
		}

		state := heap.Pop(&t.frontier).(*Itinerary)
		last := state.last

		// Expansion budget: each flight ID may act as a branching point
		// at most budget times across the whole search.
		t.counts[last.ID]++
		if t.counts[last.ID] > t.budget {
			continue
		}

		if last.To.ID == t.target.ID {
			t.results = append(t.results, state)
			if len(t.results) == t.resultCap {
				break
			}
		}

		// Simple-path guard: never depart the same airport twice.
		if state.departedFrom(last.To.ID) {
			continue
		}

		connection := last.ArriveAt.Add(t.opts.MinConnection)
		if connection.After(t.horizon) {
			continue
		}

		for _, f := range last.To.FlightsBetween(connection, t.horizon) {
			if f.ArriveAt.After(t.horizon) {
				continue
			}
			if f.To.ID == t.source.ID {
				continue
			}
			heap.Push(&t.frontier, state.extend(f))
		}
	}

	return t.sorted(), nil
}

// sorted returns the completed itineraries by ascending total cost. Pops
// already arrive in non-decreasing cost order; the explicit stable sort
// pins the output contract without imposing a tie order.
func (t *traversal) sorted() []*Itinerary {
	sort.SliceStable(t.results, func(i, j int) bool {
		return t.results[i].cost < t.results[j].cost
	})

	return t.results
}

// midnight truncates an instant to its calendar date.
func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// stateHeap is a min-heap of itinerary states ordered by ascending
// accumulated cost; ties are broken arbitrarily.
type stateHeap []*Itinerary

func (h stateHeap) Len() int            { return len(h) }
func (h stateHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h stateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *stateHeap) Push(x interface{}) { *h = append(*h, x.(*Itinerary)) }

func (h *stateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
