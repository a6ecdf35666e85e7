// Package avipath is an in-memory itinerary search library over a
// time-varying directed multigraph of scheduled flights: airports are
// nodes, flights are time-stamped, cost-weighted directed edges, and a
// query asks for the N cheapest itineraries between two airports starting
// on a given date.
//
// The module is organized into three subpackages plus a demo CLI:
//
//	core/   — Airport and Flight entities, the concurrent registries that
//	          own them, and the per-airport departure index ordered by
//	          departure time and cost.
//	search/ — the constrained best-first search over the time-expanded
//	          graph (connection-time minimum, arrival horizon, per-flight
//	          expansion budgets, simple-path loop avoidance), with an
//	          asynchronous offload surface.
//	ingest/ — CSV loaders that populate the registries from airport and
//	          flight schedule files.
//
// Registries are safe for concurrent mutation and concurrent searches:
// each airport record is guarded independently, the top-level ID maps are
// guarded by registry-level read-write locks, and flights are immutable
// once constructed, so references captured by an in-flight search stay
// valid even if a flight is removed from the registries mid-run.
//
//	go get github.com/kaverin/avipath
package avipath
