// Package ingest_test exercises the CSV loaders against the registries.
package ingest_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kaverin/avipath/core"
	"github.com/kaverin/avipath/ingest"
)

// flightRow builds one 64-column schedule row with only the consumed
// columns populated.
func flightRow(date, originID, originCode, destID, destCode, dep, arr, dist string) string {
	fields := make([]string, 64)
	fields[5] = date
	fields[20] = originID
	fields[23] = originCode
	fields[29] = destID
	fields[32] = destCode
	fields[38] = dep
	fields[49] = arr
	fields[63] = dist

	return strings.Join(fields, ",")
}

// flightHeader is a placeholder header row; loaders skip the first record.
var flightHeader = strings.Repeat(",", 63)

// legSummary is the comparable projection of a loaded flight.
type legSummary struct {
	ID       int
	From, To string
	Cost     int64
	Depart   string
	Arrive   string
}

func summarize(f *core.Flight) legSummary {
	return legSummary{
		ID:     f.ID,
		From:   f.From.Name,
		To:     f.To.Name,
		Cost:   f.Cost,
		Depart: f.DepartAt.Format(core.TimeLayout),
		Arrive: f.ArriveAt.Format(core.TimeLayout),
	}
}

func TestLoadAirports(t *testing.T) {
	csvText := strings.Join([]string{
		"id,x,y,name",
		"1,foo,bar,Seattle",
		"2,foo,bar,Boston",
		"shortrow",         // too few columns
		"oops,foo,bar,Bad", // unparsable ID
	}, "\n")

	r := core.NewAirports()
	loaded, err := ingest.New(r).LoadAirports(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("LoadAirports: %v", err)
	}
	if loaded != 2 {
		t.Fatalf("loaded = %d; want 2", loaded)
	}

	got := map[int]string{}
	for _, id := range []int{1, 2} {
		a, ok := r.Airport(id)
		if !ok {
			t.Fatalf("airport %d not registered", id)
		}
		got[id] = a.Name
	}
	want := map[int]string{1: "Seattle", 2: "Boston"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("airports mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFlights(t *testing.T) {
	csvText := strings.Join([]string{
		flightHeader,
		flightRow("2024-01-14", "1", "SEA", "2", "BOS", "800", "1630", "2496"),
		flightRow("2024-01-14", "2", "BOS", "1", "SEA", "2330", "45", "2496"), // overnight
	}, "\n")

	r := core.NewAirports()
	loaded, err := ingest.New(r).LoadFlights(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("LoadFlights: %v", err)
	}
	if loaded != 2 {
		t.Fatalf("loaded = %d; want 2", loaded)
	}

	var got []legSummary
	for id := 0; id < loaded; id++ {
		f, ok := r.Flights().Get(id)
		if !ok {
			t.Fatalf("flight %d not registered", id)
		}
		got = append(got, summarize(f))
	}
	want := []legSummary{
		{ID: 0, From: "SEA", To: "BOS", Cost: 2496,
			Depart: "2024-01-14 08:00:00", Arrive: "2024-01-14 16:30:00"},
		{ID: 1, From: "BOS", To: "SEA", Cost: 2496,
			Depart: "2024-01-14 23:30:00", Arrive: "2024-01-15 00:45:00"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flights mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFlights_SkipRules(t *testing.T) {
	csvText := strings.Join([]string{
		flightHeader,
		flightRow("2024-01-14", "1", "SEA", "1", "SEA", "800", "900", "10"),  // same endpoints
		flightRow("2024-01-14", "1", "SEA", "2", "BOS", "", "900", "10"),     // missing departure
		flightRow("", "1", "SEA", "2", "BOS", "800", "900", "10"),            // missing date
		flightRow("2024-01-14", "x", "SEA", "2", "BOS", "800", "900", "10"),  // bad origin ID
		flightRow("2024-01-14", "1", "SEA", "2", "BOS", "800", "900", "bad"), // bad distance → cost 0
		"short,row",
	}, "\n")

	r := core.NewAirports()
	loaded, err := ingest.New(r).LoadFlights(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("LoadFlights: %v", err)
	}
	if loaded != 1 {
		t.Fatalf("loaded = %d; want 1", loaded)
	}

	f, ok := r.Flights().Get(0)
	if !ok {
		t.Fatal("surviving flight not registered")
	}
	if f.Cost != 0 {
		t.Errorf("cost = %d; want 0 for unparsable distance", f.Cost)
	}
}

// Flight IDs continue from the registry's size at the start of the batch.
func TestLoadFlights_SequentialIDsAcrossBatches(t *testing.T) {
	r := core.NewAirports()

	first := strings.Join([]string{
		flightHeader,
		flightRow("2024-01-14", "1", "SEA", "2", "BOS", "800", "1630", "100"),
	}, "\n")
	second := strings.Join([]string{
		flightHeader,
		flightRow("2024-01-14", "2", "BOS", "3", "JFK", "900", "1200", "200"),
		flightRow("2024-01-14", "3", "JFK", "1", "SEA", "1400", "1700", "300"),
	}, "\n")

	l := ingest.New(r)
	if _, err := l.LoadFlights(strings.NewReader(first)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.LoadFlights(strings.NewReader(second)); err != nil {
		t.Fatal(err)
	}

	for id := 0; id < 3; id++ {
		if _, ok := r.Flights().Get(id); !ok {
			t.Errorf("expected flight ID %d to exist", id)
		}
	}
	if n := r.Flights().Len(); n != 3 {
		t.Errorf("registry holds %d flights; want 3", n)
	}
}

// Unseen airports are registered lazily from the row's code columns, and
// the loaded schedule is immediately searchable by departure window.
func TestLoadFlights_LazyAirportsAndIndexing(t *testing.T) {
	csvText := strings.Join([]string{
		flightHeader,
		flightRow("2024-01-14", "7", "PDX", "8", "DEN", "2400", "300", "50"),
	}, "\n")

	r := core.NewAirports()
	if _, err := ingest.New(r).LoadFlights(strings.NewReader(csvText)); err != nil {
		t.Fatal(err)
	}

	for id, name := range map[int]string{7: "PDX", 8: "DEN"} {
		a, ok := r.Airport(id)
		if !ok || a.Name != name {
			t.Fatalf("airport %d = %v; want %q", id, a, name)
		}
	}

	// A 2400 departure clock rolls over to the 15th at midnight.
	dep := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	listed, err := r.FlightsBetween(7, dep, dep)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0].ArriveAt != dep.Add(3*time.Hour) {
		t.Fatalf("unexpected window result: %v", listed)
	}
}
