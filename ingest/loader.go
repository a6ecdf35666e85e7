// Package ingest: CSV loaders for the airport catalog and the flight
// schedule.

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kaverin/avipath/core"
)

// ErrNilAirports indicates a Loader constructed without a registry.
var ErrNilAirports = errors.New("ingest: airports registry is nil")

// Flight-schedule column indices (on-time performance layout).
const (
	colFlightDate = 5  // "YYYY-MM-DD"
	colOriginID   = 20 // numeric origin airport ID
	colOriginCode = 23 // origin display code
	colDestID     = 29 // numeric destination airport ID
	colDestCode   = 32 // destination display code
	colDepClock   = 38 // scheduled departure, HHMM digits
	colArrClock   = 49 // scheduled arrival, HHMM digits
	colDistance   = 63 // distance, used directly as cost
)

// Airport-catalog column indices.
const (
	colAirportID   = 0
	colAirportName = 3
)

// Loader reads CSV schedule files into a core.Airports registry.
type Loader struct {
	airports *core.Airports
	log      *zap.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger attaches a structured logger; skipped rows are reported at
// debug level. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// New returns a Loader bound to the given registry.
func New(airports *core.Airports, opts ...Option) *Loader {
	l := &Loader{airports: airports, log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoadAirports reads an airport catalog (header row first) and registers
// every well-formed row. Returns the number of airports registered.
func (l *Loader) LoadAirports(r io.Reader) (int, error) {
	if l.airports == nil {
		return 0, ErrNilAirports
	}

	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1

	loaded := 0
	for first := true; ; first = false {
		rec, err := rd.Read()
		if err == io.EOF {
			return loaded, nil
		}
		if err != nil {
			return loaded, fmt.Errorf("ingest: reading airports: %w", err)
		}
		if first || len(rec) <= colAirportName {
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[colAirportID]))
		if err != nil {
			l.log.Debug("skipping airport row with bad ID", zap.String("id", rec[colAirportID]))
			continue
		}

		l.airports.Add(id, rec[colAirportName])
		loaded++
	}
}

// LoadFlights reads a flight schedule (header row first) and adds every
// well-formed row to the registries. Flight IDs are assigned sequentially
// starting from the flight registry's size at the start of the batch.
// Returns the number of flights added.
//
// Skipped (never fatal): rows with unparsable endpoint IDs, identical
// origin and destination, or empty date/clock fields, and rows the
// registry rejects (e.g. a clock that normalizes to nonsense). Unseen
// airports are registered lazily from the row's code columns.
func (l *Loader) LoadFlights(r io.Reader) (int, error) {
	if l.airports == nil {
		return 0, ErrNilAirports
	}

	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1

	nextID := l.airports.Flights().Len()
	loaded := 0
	for first := true; ; first = false {
		rec, err := rd.Read()
		if err == io.EOF {
			return loaded, nil
		}
		if err != nil {
			return loaded, fmt.Errorf("ingest: reading flights: %w", err)
		}
		if first || len(rec) <= colDistance {
			continue
		}

		originID, err := strconv.Atoi(strings.TrimSpace(rec[colOriginID]))
		if err != nil {
			continue
		}
		destID, err := strconv.Atoi(strings.TrimSpace(rec[colDestID]))
		if err != nil {
			continue
		}
		if originID == destID {
			l.log.Debug("skipping flight with identical endpoints", zap.Int("airport", originID))
			continue
		}

		date := strings.TrimSpace(rec[colFlightDate])
		dep := strings.TrimSpace(rec[colDepClock])
		arr := strings.TrimSpace(rec[colArrClock])
		if date == "" || dep == "" || arr == "" {
			l.log.Debug("skipping flight with missing date or clocks",
				zap.Int("origin", originID), zap.Int("destination", destID))
			continue
		}

		// Unparsable distance means cost 0, not a skip.
		cost, err := strconv.ParseInt(strings.TrimSpace(rec[colDistance]), 10, 64)
		if err != nil {
			cost = 0
		}

		if !l.airports.Has(originID) {
			l.airports.Add(originID, rec[colOriginCode])
		}
		if !l.airports.Has(destID) {
			l.airports.Add(destID, rec[colDestCode])
		}

		spec := core.FlightSpec{
			ID:        nextID,
			From:      originID,
			To:        destID,
			Cost:      cost,
			Departure: date + " " + clockText(dep),
			Arrival:   date + " " + clockText(arr),
		}
		if _, err := l.airports.AddFlight(spec); err != nil {
			l.log.Debug("skipping rejected flight row",
				zap.Int("origin", originID), zap.Int("destination", destID), zap.Error(err))
			continue
		}

		nextID++
		loaded++
	}
}

// clockText converts HHMM schedule digits into the registries' HH:MM:SS
// clock form, zero-padding short values ("800" → "08:00:00"). A "2400"
// clock becomes "24:00:00", which core normalizes to the next day.
func clockText(s string) string {
	for len(s) < 4 {
		s = "0" + s
	}

	return s[:len(s)-2] + ":" + s[len(s)-2:] + ":00"
}
