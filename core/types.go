// Package core: entity types and sentinel errors.
//
// This file declares Airport, Flight, FlightSpec, the timestamp layout,
// and the sentinel errors shared by both registries.

package core

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Sentinel errors for registry operations.
var (
	// ErrAirportNotFound indicates an operation referenced an airport ID
	// that is not registered.
	ErrAirportNotFound = errors.New("core: airport not found")

	// ErrFlightNotFound indicates an operation referenced a flight ID that
	// is not present in the Flights registry.
	ErrFlightNotFound = errors.New("core: flight not found")

	// ErrBadTimestamp indicates a timestamp text that does not match
	// TimeLayout after end-of-day normalization.
	ErrBadTimestamp = errors.New("core: malformed timestamp")
)

// TimeLayout is the timestamp text format accepted by the registries.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultWindow is the departure window applied by FlightsBetween when no
// explicit end instant is given.
const DefaultWindow = 24 * time.Hour

// Airport is a node of the flight graph.
//
// ID and Name are immutable after registration. The departure index is
// guarded by the record's own RWMutex: exclusive access is required to
// mutate the index, shared access suffices to range over it. Airports are
// never deleted during a run, so a *Airport held by a Flight or a search
// stays valid for the process lifetime.
type Airport struct {
	// ID uniquely identifies this airport within its registry.
	ID int

	// Name is a human-readable code or label (e.g. "SEA").
	Name string

	mu  sync.RWMutex // guards out
	out departures   // outgoing flights, ordered by departure then cost
}

// FlightsBetween returns every outgoing flight whose departure instant
// falls in [start, end] inclusive, in ascending departure order and, for
// flights sharing one departure instant, in ascending cost order. A zero
// end defaults to start + DefaultWindow.
// Complexity: O(log B + K) for B occupied instants and K returned flights.
func (a *Airport) FlightsBetween(start, end time.Time) []*Flight {
	if end.IsZero() {
		end = start.Add(DefaultWindow)
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.out.between(start, end)
}

// addDeparture links a stored flight into the departure index, creating
// the time bucket if absent. Caller must guarantee f.From == a.
func (a *Airport) addDeparture(f *Flight) {
	a.mu.Lock()
	a.out.add(f)
	a.mu.Unlock()
}

// removeDeparture unlinks the flight with the given ID from the bucket at
// its departure instant, dropping the bucket if it becomes empty. Unknown
// IDs are a no-op.
func (a *Airport) removeDeparture(id int, departAt time.Time) {
	a.mu.Lock()
	a.out.remove(id, departAt)
	a.mu.Unlock()
}

// Flight is a directed, time-stamped, cost-weighted edge of the graph.
//
// A Flight is immutable after construction and is shared by up to three
// owners at once: the Flights registry, the origin airport's departure
// index, and any itinerary state produced by a search. Identity is the ID
// alone; cost and times matter only for ordering.
type Flight struct {
	// ID uniquely identifies this flight in the Flights registry.
	ID int

	// From is the origin airport. The flight does not own it.
	From *Airport

	// To is the destination airport. The flight does not own it.
	To *Airport

	// Cost is an opaque non-negative weight (the schedule's distance).
	Cost int64

	// DepartAt is the departure instant.
	DepartAt time.Time

	// ArriveAt is the arrival instant, always >= DepartAt after
	// overnight normalization.
	ArriveAt time.Time
}

// String renders the flight as a single human-readable leg line.
func (f *Flight) String() string {
	return fmt.Sprintf("Flight %d from %s to %s, from %s to %s",
		f.ID, f.From.Name, f.To.Name,
		f.DepartAt.Format(TimeLayout), f.ArriveAt.Format(TimeLayout))
}

// FlightSpec is the data-transfer form of a flight, as supplied by a
// loader: endpoint airport IDs plus timestamp texts in TimeLayout form.
type FlightSpec struct {
	ID        int
	From      int
	To        int
	Cost      int64
	Departure string // "YYYY-MM-DD HH:MM:SS"
	Arrival   string // "YYYY-MM-DD HH:MM:SS"
}

// edge materializes the spec against resolved endpoints, parsing both
// timestamps and applying the overnight-arrival inference: an arrival
// instant earlier than the departure instant advances one calendar day.
func (s FlightSpec) edge(from, to *Airport) (*Flight, error) {
	departAt, err := ParseTimestamp(s.Departure)
	if err != nil {
		return nil, err
	}
	arriveAt, err := ParseTimestamp(s.Arrival)
	if err != nil {
		return nil, err
	}
	if arriveAt.Before(departAt) {
		arriveAt = arriveAt.AddDate(0, 0, 1)
	}

	return &Flight{
		ID:       s.ID,
		From:     from,
		To:       to,
		Cost:     s.Cost,
		DepartAt: departAt,
		ArriveAt: arriveAt,
	}, nil
}
