package networkindex

import (
	"testing"

	"github.com/railscout/railscout/pkg/timetable"
)

func testNetwork() []timetable.ScheduledConnection {
	return []timetable.ScheduledConnection{
		{ConnectionID: "r1", DepartureCity: "Vienna", ArrivalCity: "Munich", DepartureTime: "09:00", ArrivalTime: "13:00"},
		{ConnectionID: "r2", DepartureCity: "Vienna", ArrivalCity: "Munich", DepartureTime: "15:00", ArrivalTime: "19:10"},
		{ConnectionID: "r3", DepartureCity: "Vienna", ArrivalCity: "Prague", DepartureTime: "08:30", ArrivalTime: "12:30"},
		{ConnectionID: "r4", DepartureCity: "Munich", ArrivalCity: "Berlin", DepartureTime: "14:00", ArrivalTime: "18:00"},
	}
}

func TestConnectionsBetween(t *testing.T) {
	index := Build(testNetwork())

	pair := index.ConnectionsBetween("Vienna", "Munich")
	if len(pair) != 2 {
		t.Fatalf("ConnectionsBetween(Vienna, Munich) returned %d connections, want 2", len(pair))
	}

	// City matching is case-insensitive and trimmed.
	pair = index.ConnectionsBetween("  vienna ", "MUNICH")
	if len(pair) != 2 {
		t.Errorf("normalized lookup returned %d connections, want 2", len(pair))
	}

	if got := index.ConnectionsBetween("Munich", "Vienna"); len(got) != 0 {
		t.Errorf("reversed pair returned %d connections, want 0", len(got))
	}
}

func TestDeparturesFrom(t *testing.T) {
	index := Build(testNetwork())

	if got := index.DeparturesFrom("vienna"); len(got) != 3 {
		t.Errorf("DeparturesFrom(vienna) = %d connections, want 3", len(got))
	}
	if got := index.DeparturesFrom("Berlin"); len(got) != 0 {
		t.Errorf("DeparturesFrom(Berlin) = %d connections, want 0", len(got))
	}
	if got := index.DeparturesFrom("  "); len(got) != 0 {
		t.Errorf("blank city returned %d connections, want 0", len(got))
	}
}

func TestDirectDuration(t *testing.T) {
	index := Build(testNetwork())

	duration, exists := index.DirectDuration("Vienna", "Munich")
	if !exists || duration != 240 {
		t.Errorf("DirectDuration(Vienna, Munich) = (%d, %v), want (240, true)", duration, exists)
	}

	_, exists = index.DirectDuration("Vienna", "Berlin")
	if exists {
		t.Errorf("DirectDuration(Vienna, Berlin) reported a direct connection")
	}
}

// TestPublishSwapsAtomically verifies a load publishes a complete new index
// rather than mutating the live one.
func TestPublishSwapsAtomically(t *testing.T) {
	first := Build(testNetwork())
	Publish(first)

	if Published() != first {
		t.Fatalf("Published did not return the published index")
	}

	second := Build(testNetwork()[:1])
	Publish(second)

	if Published() != second {
		t.Errorf("Published did not return the replacement index")
	}
	if len(first.AllConnections()) != 4 {
		t.Errorf("publishing a replacement mutated the previous index")
	}
}
