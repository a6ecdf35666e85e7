// Package core: the Flights registry.

package core

import (
	"fmt"
	"sync"
)

// Flights is the concurrent flight ID → *Flight registry and the
// canonical owner of edge lifetime. A stored *Flight is simultaneously
// referenced by its origin airport's departure index and by any itinerary
// state holding it; because flights are immutable, those references stay
// valid after removal.
type Flights struct {
	mu   sync.RWMutex
	byID map[int]*Flight
}

// NewFlights returns an empty registry.
func NewFlights() *Flights {
	return &Flights{byID: make(map[int]*Flight)}
}

// Add inserts f by its ID — the last insert for a given ID wins — and
// returns the stored shared reference for the caller to index elsewhere.
// Complexity: O(1).
func (c *Flights) Add(f *Flight) *Flight {
	c.mu.Lock()
	c.byID[f.ID] = f
	c.mu.Unlock()

	return f
}

// Get looks a flight up by ID.
// Complexity: O(1).
func (c *Flights) Get(id int) (*Flight, bool) {
	c.mu.RLock()
	f, ok := c.byID[id]
	c.mu.RUnlock()

	return f, ok
}

// Remove deletes the flight with the given ID. Returns ErrFlightNotFound
// (wrapped with the ID) when absent.
// Complexity: O(1).
func (c *Flights) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrFlightNotFound, id)
	}
	delete(c.byID, id)

	return nil
}

// Len reports the number of registered flights.
func (c *Flights) Len() int {
	c.mu.RLock()
	n := len(c.byID)
	c.mu.RUnlock()

	return n
}
