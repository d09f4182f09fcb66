package search

import (
	"testing"

	"github.com/railscout/railscout/pkg/networkindex"
	"github.com/railscout/railscout/pkg/timetable"
)

func TestDirectSingleConnection(t *testing.T) {
	index := networkindex.Build([]timetable.ScheduledConnection{
		testConnection("r1", "Amsterdam", "Brussels", "09:00", "10:00", 50, 30),
	})

	query := Query{FromCity: "amsterdam", ToCity: "brussels"}
	query.Normalize()

	results := Direct(index, query)

	if len(results) != 1 {
		t.Fatalf("Direct returned %d itineraries, want 1", len(results))
	}

	itinerary := results[0]
	if !itinerary.Direct() {
		t.Errorf("result has %d legs, want 1", len(itinerary.Legs))
	}
	if itinerary.TotalDurationMinutes != 60 {
		t.Errorf("TotalDurationMinutes = %d, want 60", itinerary.TotalDurationMinutes)
	}
	if itinerary.TotalFirstClassPrice != 50 {
		t.Errorf("TotalFirstClassPrice = %d, want 50", itinerary.TotalFirstClassPrice)
	}
	if itinerary.TotalSecondClassPrice != 30 {
		t.Errorf("TotalSecondClassPrice = %d, want 30", itinerary.TotalSecondClassPrice)
	}
}

// TestDirectUnconstrainedOrigin exists because a query without an origin
// cannot use the departure-city index and has to scan every connection.
func TestDirectUnconstrainedOrigin(t *testing.T) {
	index := networkindex.Build([]timetable.ScheduledConnection{
		testConnection("r1", "Amsterdam", "Brussels", "09:00", "10:00", 50, 30),
		testConnection("r2", "Paris", "Brussels", "08:00", "09:30", 70, 45),
		testConnection("r3", "Paris", "Lyon", "10:00", "12:00", 60, 35),
	})

	query := Query{ToCity: "brussels"}
	query.Normalize()

	results := Direct(index, query)

	if len(results) != 2 {
		t.Fatalf("Direct returned %d itineraries, want 2", len(results))
	}
	for _, itinerary := range results {
		if itinerary.DestinationCity() != "Brussels" {
			t.Errorf("result arrives at %q, want Brussels", itinerary.DestinationCity())
		}
	}
}

func TestDirectAppliesQueryFilter(t *testing.T) {
	index := networkindex.Build([]timetable.ScheduledConnection{
		testConnection("early", "Amsterdam", "Brussels", "07:00", "08:00", 50, 30),
		testConnection("late", "Amsterdam", "Brussels", "12:00", "13:00", 50, 30),
	})

	query := Query{FromCity: "amsterdam", ToCity: "brussels", DepartureAfter: "09:00"}
	query.Normalize()

	results := Direct(index, query)

	if len(results) != 1 {
		t.Fatalf("Direct returned %d itineraries, want 1", len(results))
	}
	if results[0].Legs[0].Connection.ConnectionID != "late" {
		t.Errorf("filter kept %q, want late", results[0].Legs[0].Connection.ConnectionID)
	}
}

// TestDirectRanksResults verifies the query's sort key and direction are
// applied before the itineraries come back.
func TestDirectRanksResults(t *testing.T) {
	index := networkindex.Build([]timetable.ScheduledConnection{
		testConnection("pricey", "Amsterdam", "Brussels", "09:00", "10:00", 90, 60),
		testConnection("cheap", "Amsterdam", "Brussels", "10:00", "11:00", 50, 30),
		testConnection("middle", "Amsterdam", "Brussels", "11:00", "12:00", 70, 45),
	})

	query := Query{FromCity: "amsterdam", ToCity: "brussels", SortBy: SortByPriceSecond}
	query.Normalize()

	ascending := Direct(index, query)
	if got := connectionIDs(ascending); got[0] != "cheap" || got[2] != "pricey" {
		t.Errorf("ascending second class order = %v, want cheapest first", got)
	}

	query.SortDir = SortDescending
	descending := Direct(index, query)
	if got := connectionIDs(descending); got[0] != "pricey" || got[2] != "cheap" {
		t.Errorf("descending second class order = %v, want priciest first", got)
	}
}
