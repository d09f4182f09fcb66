package search

import (
	"testing"

	"github.com/railscout/railscout/pkg/timetable"
)

func TestMinimumDwellMinutes(t *testing.T) {
	testCases := []struct {
		name          string
		arrivalCity   string
		departureCity string
		firstType     string
		nextType      string
		want          int
	}{
		{"same city same type", "Munich", "Munich", "ICE", "ICE", 15},
		{"same city ignoring case", "munich", "MUNICH", "ICE", "ICE", 15},
		{"different city same type", "Munich", "Munich Ost", "ICE", "ICE", 60},
		{"same city type change", "Munich", "Munich", "ICE", "RJ", 25},
		{"different city type change", "Munich", "Munich Ost", "ICE", "RJ", 70},
	}

	for _, testCase := range testCases {
		first := testConnection("r1", "Vienna", testCase.arrivalCity, "09:00", "13:00", 80, 50)
		first.TrainType = testCase.firstType
		next := testConnection("r2", testCase.departureCity, "Berlin", "14:00", "18:00", 80, 50)
		next.TrainType = testCase.nextType

		if got := MinimumDwellMinutes(&first, &next); got != testCase.want {
			t.Errorf("%s: MinimumDwellMinutes = %d, want %d", testCase.name, got, testCase.want)
		}
	}
}

func TestFeasibleTransfer(t *testing.T) {
	first := testConnection("r1", "Vienna", "Munich", "09:00", "13:00", 80, 50)

	// 10 minutes is under the same-city minimum of 15.
	tooTight := testConnection("r2", "Munich", "Berlin", "13:10", "17:00", 80, 50)
	if FeasibleTransfer(&first, &tooTight) {
		t.Errorf("10 minute same-city transfer accepted, minimum is 15")
	}

	exact := testConnection("r3", "Munich", "Berlin", "13:15", "17:00", 80, 50)
	if !FeasibleTransfer(&first, &exact) {
		t.Errorf("exact 15 minute same-city transfer rejected")
	}

	elsewhere := testConnection("r4", "Stuttgart", "Berlin", "15:00", "19:00", 80, 50)
	if FeasibleTransfer(&first, &elsewhere) {
		t.Errorf("transfer accepted without city continuity")
	}
}

func TestLayoverCeilings(t *testing.T) {
	testCases := []struct {
		name        string
		arrivalTime string
		nextDep     string
		want        bool
	}{
		{"daytime within ceiling", "13:00", "15:00", true},
		{"daytime over ceiling", "13:00", "15:01", false},
		{"night within ceiling", "23:00", "23:30", true},
		{"night over ceiling", "23:00", "23:45", false},
		{"early morning counts as night", "05:00", "06:30", false},
	}

	for _, testCase := range testCases {
		first := testConnection("r1", "Vienna", "Munich", "09:00", testCase.arrivalTime, 80, 50)
		next := testConnection("r2", "Munich", "Berlin", testCase.nextDep, "23:59", 80, 50)

		if got := LayoverAllowed(&first, &next); got != testCase.want {
			t.Errorf("%s: LayoverAllowed(arrive %s, depart %s) = %v, want %v",
				testCase.name, testCase.arrivalTime, testCase.nextDep, got, testCase.want)
		}
	}
}

func TestWithinDetourCeiling(t *testing.T) {
	itinerary := timetable.Itinerary{TotalDurationMinutes: 360}

	if WithinDetourCeiling(&itinerary, 60, true) {
		t.Errorf("360 minute itinerary accepted against a 60 minute direct trip")
	}
	if !WithinDetourCeiling(&itinerary, 180, true) {
		t.Errorf("itinerary exactly at direct plus 180 rejected")
	}
	if !WithinDetourCeiling(&itinerary, 0, false) {
		t.Errorf("itinerary rejected although no direct trip exists")
	}
}
