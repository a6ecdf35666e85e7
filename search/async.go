// Package search: asynchronous offload for long-running searches.

package search

import "context"

// Result is the single value delivered by FindAsync: the itineraries Find
// produced and its error, if any.
type Result struct {
	Itineraries []*Itinerary
	Err         error
}

// FindAsync runs Find on its own goroutine and returns a channel that
// delivers exactly one Result before closing. The traversal may block for
// its full duration; the caller's goroutine never does. Cancel the context
// to abandon the search early — the Result then carries the partial
// findings and the context error.
func (e *Engine) FindAsync(ctx context.Context, q Query) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		itineraries, err := e.Find(ctx, q)
		out <- Result{Itineraries: itineraries, Err: err}
	}()

	return out
}
