// Package core defines the flight-graph entity model — Airport nodes and
// immutable Flight edges — together with the concurrent registries that
// own them.
//
// Two registries share ownership of the graph:
//
//	Flights  — flight ID → *Flight, the canonical owner of edge lifetime.
//	Airports — airport ID → *Airport, holding the shared Flights registry.
//	           Each airport carries its own index of outgoing flights,
//	           ordered by departure instant and, within one instant, by
//	           ascending cost.
//
// Locking model: the registry ID maps are guarded by one RWMutex each,
// and every Airport record guards its departure index with its own
// RWMutex, so mutating one airport's schedule never blocks reads of
// another. Flights are immutable after construction; removal only
// detaches index entries and never invalidates references already held
// by a running search.
//
// Note that no transaction spans the two registries: a concurrent reader
// may observe a flight present in the Flights registry but not yet linked
// into its origin airport's index (or the reverse during removal).
//
// Errors:
//
//	ErrAirportNotFound — an operation referenced an unregistered airport.
//	ErrFlightNotFound  — an operation referenced an unknown flight ID.
//	ErrBadTimestamp    — a timestamp text did not match TimeLayout.
package core
