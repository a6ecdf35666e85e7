// Package core: the Airports registry.
//
// Airports owns the airport ID map and the shared Flights registry, and
// provides the mutation API consumed by loaders: AddAirport-style inserts,
// two-registry flight linking, and time-window lookups.

package core

import (
	"fmt"
	"sync"
	"time"
)

// Airports is the concurrent airport ID → *Airport registry. It holds the
// shared Flights registry so that AddFlight and RemoveFlight can keep both
// sides of the graph in step.
type Airports struct {
	mu   sync.RWMutex
	byID map[int]*Airport

	flights *Flights
}

// NewAirports returns an empty registry with a fresh Flights registry.
func NewAirports() *Airports {
	return &Airports{
		byID:    make(map[int]*Airport),
		flights: NewFlights(),
	}
}

// Add registers an airport record for the given ID. Registering an ID
// twice overwrites the record (last write wins); airport IDs are expected
// to be unique and stable. Airports are never deleted during a run.
// Complexity: O(1).
func (r *Airports) Add(id int, name string) {
	r.mu.Lock()
	r.byID[id] = &Airport{ID: id, Name: name}
	r.mu.Unlock()
}

// Has reports whether an airport with the given ID is registered.
// Complexity: O(1).
func (r *Airports) Has(id int) bool {
	r.mu.RLock()
	_, ok := r.byID[id]
	r.mu.RUnlock()

	return ok
}

// Airport returns the shared record for the given ID. The record's own
// RWMutex mediates read vs. exclusive access to its departure index; the
// registry hands out the same handle to every caller.
// Complexity: O(1).
func (r *Airports) Airport(id int) (*Airport, bool) {
	r.mu.RLock()
	a, ok := r.byID[id]
	r.mu.RUnlock()

	return a, ok
}

// Flights exposes the shared flight registry.
func (r *Airports) Flights() *Flights {
	return r.flights
}

// AddFlight materializes spec into a Flight, stores it in the Flights
// registry, and links it into the origin airport's departure index
// (creating the time bucket if absent).
//
// Both endpoints must already be registered: a missing origin or
// destination reports ErrAirportNotFound and leaves both registries
// untouched. Malformed timestamp text reports ErrBadTimestamp.
// Complexity: O(log B + bucket size) for the index insert.
func (r *Airports) AddFlight(spec FlightSpec) (*Flight, error) {
	from, ok := r.Airport(spec.From)
	if !ok {
		return nil, fmt.Errorf("%w: origin %d", ErrAirportNotFound, spec.From)
	}
	to, ok := r.Airport(spec.To)
	if !ok {
		return nil, fmt.Errorf("%w: destination %d", ErrAirportNotFound, spec.To)
	}

	f, err := spec.edge(from, to)
	if err != nil {
		return nil, err
	}

	stored := r.flights.Add(f)
	from.addDeparture(stored)

	return stored, nil
}

// RemoveFlight deletes the flight with the given ID from both owners: the
// origin airport's departure index and the Flights registry. Returns
// ErrFlightNotFound when the ID is unknown.
//
// Removal is not transactional across the two registries; a concurrent
// reader may briefly observe the flight in one but not the other.
func (r *Airports) RemoveFlight(id int) error {
	f, ok := r.flights.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrFlightNotFound, id)
	}

	if from, ok := r.Airport(f.From.ID); ok {
		from.removeDeparture(id, f.DepartAt)
	}

	return r.flights.Remove(id)
}

// FlightsBetween returns the flights departing the given airport within
// [start, end] inclusive, ordered by departure instant and then ascending
// cost. A zero end defaults to start + DefaultWindow. Returns
// ErrAirportNotFound for an unregistered airport.
func (r *Airports) FlightsBetween(id int, start, end time.Time) ([]*Flight, error) {
	a, ok := r.Airport(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrAirportNotFound, id)
	}

	return a.FlightsBetween(start, end), nil
}
