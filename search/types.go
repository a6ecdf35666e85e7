// Package search: query, options, itinerary states, and sentinel errors.

package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/kaverin/avipath/core"
)

// Sentinel errors returned by Find.
var (
	// ErrNilAirports indicates the engine holds no airports registry.
	ErrNilAirports = errors.New("search: airports registry is nil")

	// ErrBadHopBudget indicates a negative per-flight expansion budget.
	ErrBadHopBudget = errors.New("search: hop budget must be non-negative")

	// ErrBadResultCap indicates a result cap that is zero or negative.
	ErrBadResultCap = errors.New("search: result cap must be positive")

	// ErrBadDuration indicates a non-positive duration passed to an Option.
	ErrBadDuration = errors.New("search: option duration must be positive")
)

// Default traversal tunables.
const (
	// DefaultMinConnection is the minimum gap between an arrival and the
	// next departure on the same itinerary.
	DefaultMinConnection = 15 * time.Minute

	// DefaultSeedWindow is how long after the query date's midnight a
	// first-leg departure may be.
	DefaultSeedWindow = 24 * time.Hour

	// DefaultHorizon is the latest arrival, relative to the query date's
	// midnight, any itinerary flight may have.
	DefaultHorizon = 48 * time.Hour
)

// Query describes one itinerary search.
//
// Date is interpreted as a calendar date: the traversal window opens at
// that date's midnight. HopBudget caps how many times any single flight ID
// may be expanded across the whole search (see the package documentation —
// this is not a leg-count limit). ResultCap bounds the number of returned
// itineraries.
type Query struct {
	From      int       // source airport ID
	To        int       // target airport ID
	Date      time.Time // first-leg calendar date
	HopBudget int       // per-flight expansion budget
	ResultCap int       // maximum itineraries to return
}

// Options configures the traversal constraints.
//
// MinConnection — arrival→departure minimum gap (default 15m).
// SeedWindow    — first-leg departure window after Date@00:00 (default 24h).
// Horizon       — absolute arrival cutoff after Date@00:00 (default 48h).
type Options struct {
	MinConnection time.Duration
	SeedWindow    time.Duration
	Horizon       time.Duration
}

// Option is a functional option for configuring an Engine.
type Option func(*Options)

// WithMinConnection overrides the minimum connection gap.
// Must be positive; non-positive values cause ErrBadDuration.
func WithMinConnection(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadDuration.Error())
		}
		o.MinConnection = d
	}
}

// WithSeedWindow overrides the first-leg departure window.
// Must be positive; non-positive values cause ErrBadDuration.
func WithSeedWindow(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadDuration.Error())
		}
		o.SeedWindow = d
	}
}

// WithHorizon overrides the absolute arrival cutoff.
// Must be positive; non-positive values cause ErrBadDuration.
func WithHorizon(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadDuration.Error())
		}
		o.Horizon = d
	}
}

// DefaultOptions returns the traversal tunables used when no Option
// overrides them.
func DefaultOptions() Options {
	return Options{
		MinConnection: DefaultMinConnection,
		SeedWindow:    DefaultSeedWindow,
		Horizon:       DefaultHorizon,
	}
}

// Itinerary is one candidate (or completed) path through the
// time-expanded graph: the ordered flights from the source airport to the
// current frontier flight, with their accumulated cost.
//
// Itineraries are immutable: expansion builds a fresh state from a parent
// and one more flight, never mutating the parent.
type Itinerary struct {
	cost int64
	legs []*core.Flight
	last *core.Flight // frontier cursor: == legs[len(legs)-1]
}

// Cost returns the sum of the constituent flight costs.
func (it *Itinerary) Cost() int64 { return it.cost }

// Legs returns the ordered flight sequence from source to frontier.
// The returned slice is owned by the itinerary; callers must not modify it.
func (it *Itinerary) Legs() []*core.Flight { return it.legs }

// Last returns the frontier flight, the one most recently added.
func (it *Itinerary) Last() *core.Flight { return it.last }

// Lines renders the itinerary for human consumption: one line per leg
// plus a trailing total-cost line.
func (it *Itinerary) Lines() []string {
	lines := make([]string, 0, len(it.legs)+1)
	for _, f := range it.legs {
		lines = append(lines, f.String())
	}

	return append(lines, fmt.Sprintf("Total cost: %d", it.cost))
}

// extend derives a new state by appending f; the receiver is untouched.
func (it *Itinerary) extend(f *core.Flight) *Itinerary {
	legs := make([]*core.Flight, len(it.legs), len(it.legs)+1)
	copy(legs, it.legs)

	return &Itinerary{
		cost: it.cost + f.Cost,
		legs: append(legs, f),
		last: f,
	}
}

// departedFrom reports whether any leg departs the given airport —
// the simple-path guard against reusing an airport as a connection point.
func (it *Itinerary) departedFrom(airportID int) bool {
	for _, f := range it.legs {
		if f.From.ID == airportID {
			return true
		}
	}

	return false
}
