// Package search implements constrained best-first itinerary search over
// the time-expanded flight graph held by a core.Airports registry.
//
// A traversal state is not "at an airport" but "at an airport having just
// arrived via a specific timed flight", so the expansion loop can enforce
// time-dependent constraints that a static shortest-path walk cannot:
//
//   - Connection minimum: the next flight departs no earlier than the
//     frontier flight's arrival plus MinConnection (default 15 minutes).
//   - Horizon: no flight on an itinerary arrives later than the query
//     date's midnight plus Horizon (default 48 hours).
//   - Source return: no flight lands back at the original source airport.
//   - Simple path: no airport is departed from twice within one itinerary.
//   - Expansion budget: each flight ID may be used as a branching point at
//     most HopBudget times across the whole search. This bounds how many
//     partial paths branch out of one timed edge in the time-expanded
//     graph — it is a combinatorial safety valve, not a limit on the
//     number of legs in an itinerary.
//
// States are ordered by ascending accumulated cost in a min-heap (lazy
// queue, no decrease-key), so itineraries are emitted cheapest-first up to
// the query's result cap. The traversal observes its context between
// expansions; on cancellation it returns what it found so far together
// with the context error.
//
// The engine only reads the registries. Any number of searches may run
// concurrently against the same registries, including concurrently with
// loader mutation.
//
// Complexity: O(S log S) for S pushed states; S is bounded by the
// expansion budgets rather than by the graph size.
//
// Errors (sentinel):
//
//	ErrNilAirports  if the engine was built without a registry.
//	ErrBadHopBudget if the query's hop budget is negative.
//	ErrBadResultCap if the query's result cap is not positive.
package search
