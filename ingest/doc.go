// Package ingest populates the core registries from CSV schedule files.
//
// Two loaders cover the two source files:
//
//	LoadAirports — airport catalog rows: ID in column 0, display name in
//	               column 3.
//	LoadFlights  — flight schedule rows in the (wide) on-time performance
//	               layout: endpoint airport IDs and codes, a flight date,
//	               HHMM departure/arrival clocks, and a distance that is
//	               used directly as the flight's cost.
//
// The loader owns all raw-format parsing: it normalizes HHMM clocks into
// the registries' timestamp layout, registers unseen airports lazily, and
// assigns strictly increasing flight IDs starting from the size of the
// flight registry at the start of the batch. Rows with missing dates or
// clocks, identical endpoints, or unparsable IDs are skipped — logged at
// debug level, never fatal. Only I/O and CSV framing errors abort a load.
package ingest
