package search_test

import (
	"context"
	"fmt"
	"time"

	"github.com/kaverin/avipath/core"
	"github.com/kaverin/avipath/search"
)

// ExampleEngine_Find builds a three-airport schedule and asks for the
// cheapest itineraries from A to C on 2024-01-14.
func ExampleEngine_Find() {
	airports := core.NewAirports()
	airports.Add(1, "A")
	airports.Add(2, "B")
	airports.Add(3, "C")

	airports.AddFlight(core.FlightSpec{
		ID: 10, From: 1, To: 2, Cost: 100,
		Departure: "2024-01-14 08:00:00", Arrival: "2024-01-14 10:00:00",
	})
	airports.AddFlight(core.FlightSpec{
		ID: 11, From: 2, To: 3, Cost: 50,
		Departure: "2024-01-14 10:30:00", Arrival: "2024-01-14 12:00:00",
	})

	engine := search.New(airports)
	itineraries, _ := engine.Find(context.Background(), search.Query{
		From: 1, To: 3,
		Date:      time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		HopBudget: 2,
		ResultCap: 5,
	})

	for _, it := range itineraries {
		for _, line := range it.Lines() {
			fmt.Println(line)
		}
	}
	// Output:
	// Flight 10 from A to B, from 2024-01-14 08:00:00 to 2024-01-14 10:00:00
	// Flight 11 from B to C, from 2024-01-14 10:30:00 to 2024-01-14 12:00:00
	// Total cost: 150
}
