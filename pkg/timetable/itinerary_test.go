package timetable

import "testing"

func testConnection(id string, from string, to string, dep string, arr string, first int, second int) ScheduledConnection {
	return ScheduledConnection{
		ConnectionID:     id,
		DepartureCity:    from,
		ArrivalCity:      to,
		DepartureTime:    dep,
		ArrivalTime:      arr,
		TrainType:        "ICE",
		OperatingDays:    []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"},
		FirstClassPrice:  first,
		SecondClassPrice: second,
	}
}

func TestConnectionDurationOvernight(t *testing.T) {
	daytime := testConnection("r1", "Vienna", "Munich", "09:00", "13:00", 80, 50)
	if got := daytime.DurationMinutes(); got != 240 {
		t.Errorf("daytime duration = %d, want 240", got)
	}

	overnight := testConnection("r2", "Vienna", "Hamburg", "23:00", "07:30", 120, 70)
	if got := overnight.DurationMinutes(); got != 510 {
		t.Errorf("overnight duration = %d, want 510", got)
	}
}

func TestRecomputeTotals(t *testing.T) {
	itinerary := Itinerary{}
	itinerary.AppendLeg(NewLeg(testConnection("r1", "A", "B", "09:00", "10:00", 50, 30), 0))
	itinerary.AppendLeg(NewLeg(testConnection("r2", "B", "C", "10:20", "11:00", 40, 20), 20))
	itinerary.RecomputeTotals()

	if itinerary.TotalTravelMinutes != 100 {
		t.Errorf("TotalTravelMinutes = %d, want 100", itinerary.TotalTravelMinutes)
	}
	if itinerary.TotalTransferMinutes != 20 {
		t.Errorf("TotalTransferMinutes = %d, want 20", itinerary.TotalTransferMinutes)
	}
	if itinerary.TotalDurationMinutes != 120 {
		t.Errorf("TotalDurationMinutes = %d, want 120", itinerary.TotalDurationMinutes)
	}
	if itinerary.TotalFirstClassPrice != 90 {
		t.Errorf("TotalFirstClassPrice = %d, want 90", itinerary.TotalFirstClassPrice)
	}
	if itinerary.TotalSecondClassPrice != 50 {
		t.Errorf("TotalSecondClassPrice = %d, want 50", itinerary.TotalSecondClassPrice)
	}

	// Totals must be idempotent over an unchanged leg sequence.
	beforeDuration := itinerary.TotalDurationMinutes
	beforeFirst := itinerary.TotalFirstClassPrice
	itinerary.RecomputeTotals()
	if itinerary.TotalDurationMinutes != beforeDuration || itinerary.TotalFirstClassPrice != beforeFirst {
		t.Errorf("recomputing totals on unchanged legs altered them")
	}

	// Total duration can never be below the sum of the leg durations.
	if itinerary.TotalDurationMinutes < itinerary.TotalTravelMinutes {
		t.Errorf("total duration %d below travel total %d",
			itinerary.TotalDurationMinutes, itinerary.TotalTravelMinutes)
	}
}

func TestItineraryEndpoints(t *testing.T) {
	itinerary := Itinerary{}
	itinerary.AppendLeg(NewLeg(testConnection("r1", "Paris", "Lyon", "08:00", "10:00", 60, 35), 0))
	itinerary.AppendLeg(NewLeg(testConnection("r2", "Lyon", "Marseille", "10:30", "12:00", 45, 25), 30))
	itinerary.RecomputeTotals()

	if got := itinerary.OriginCity(); got != "Paris" {
		t.Errorf("OriginCity = %q, want Paris", got)
	}
	if got := itinerary.DestinationCity(); got != "Marseille" {
		t.Errorf("DestinationCity = %q, want Marseille", got)
	}
	if got := itinerary.DepartureTime(); got != "08:00" {
		t.Errorf("DepartureTime = %q, want 08:00", got)
	}
	if got := itinerary.ArrivalTime(); got != "12:00" {
		t.Errorf("ArrivalTime = %q, want 12:00", got)
	}
	if got := itinerary.TransferCount(); got != 1 {
		t.Errorf("TransferCount = %d, want 1", got)
	}
	if itinerary.Direct() {
		t.Errorf("two leg itinerary reported as direct")
	}
}

// TestSignatureFallsBackToCityTimeTuple exists because imported rows are not
// guaranteed to carry an identifier; dedup must still work structurally.
func TestSignatureFallsBackToCityTimeTuple(t *testing.T) {
	withID := SingleLegItinerary(testConnection("r1", "A", "B", "09:00", "10:00", 50, 30))
	if got := withID.Signature(); got != "r1|" {
		t.Errorf("Signature = %q, want r1|", got)
	}

	withoutID := SingleLegItinerary(testConnection("", "A", "B", "09:00", "10:00", 50, 30))
	if got := withoutID.Signature(); got != "a>b@09:00-10:00|" {
		t.Errorf("Signature = %q, want a>b@09:00-10:00|", got)
	}

	if !withID.Equal(&withID) {
		t.Errorf("itinerary not equal to itself")
	}
	if withID.Equal(&withoutID) {
		t.Errorf("differently keyed itineraries reported equal")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := SingleLegItinerary(testConnection("r1", "A", "B", "09:00", "10:00", 50, 30))

	copied := original.Clone()
	copied.AppendLeg(NewLeg(testConnection("r2", "B", "C", "10:20", "11:00", 40, 20), 20))
	copied.RecomputeTotals()

	if len(original.Legs) != 1 {
		t.Errorf("clone extension leaked into the original: %d legs", len(original.Legs))
	}
	if len(copied.Legs) != 2 {
		t.Errorf("clone has %d legs, want 2", len(copied.Legs))
	}
}
