package search

import (
	"strings"

	"github.com/railscout/railscout/pkg/timetable"
	"github.com/railscout/railscout/pkg/util"
)

// Transfer rules for chaining two connections inside one itinerary.
// Feasibility is the hard physical constraint; the layover and detour
// ceilings are the business reasonableness constraints on top of it.
const (
	sameCityMinimumDwell      = 15
	differentCityMinimumDwell = 60
	trainTypeChangePenalty    = 10

	maxDayLayoverMinutes   = 120
	maxNightLayoverMinutes = 30

	maxExtraVersusDirectMinutes = 180
)

// MinimumDwellMinutes is the minimum layover required between two
// connections: 15 minutes at the same station city, 60 otherwise, plus 10
// when the train types differ.
func MinimumDwellMinutes(first *timetable.ScheduledConnection, next *timetable.ScheduledConnection) int {
	dwell := differentCityMinimumDwell
	if strings.EqualFold(first.ArrivalCity, next.DepartureCity) {
		dwell = sameCityMinimumDwell
	}

	if !strings.EqualFold(first.TrainType, next.TrainType) {
		dwell += trainTypeChangePenalty
	}

	return dwell
}

// TransferGapMinutes is the layover between one connection's arrival and the
// next one's departure, wrapped past midnight when the departure clock is
// earlier.
func TransferGapMinutes(first *timetable.ScheduledConnection, next *timetable.ScheduledConnection) int {
	return util.ClockDifference(first.ArrivalTime, next.DepartureTime)
}

// FeasibleTransfer reports whether the second connection can physically
// follow the first: city continuity plus the minimum dwell.
func FeasibleTransfer(first *timetable.ScheduledConnection, next *timetable.ScheduledConnection) bool {
	if !strings.EqualFold(first.ArrivalCity, next.DepartureCity) {
		return false
	}

	return TransferGapMinutes(first, next) >= MinimumDwellMinutes(first, next)
}

// LayoverAllowed applies the reasonableness ceiling on top of feasibility.
// The ceiling depends on the time of day at the first connection's arrival:
// waiting around past 22:00 or before 06:00 is capped much harder.
func LayoverAllowed(first *timetable.ScheduledConnection, next *timetable.ScheduledConnection) bool {
	if !FeasibleTransfer(first, next) {
		return false
	}

	gap := TransferGapMinutes(first, next)

	maxAllowed := maxDayLayoverMinutes
	if util.IsNightClock(first.ArrivalTime) {
		maxAllowed = maxNightLayoverMinutes
	}

	return gap <= maxAllowed
}

// WithinDetourCeiling reports whether a completed itinerary is acceptably
// slower than the direct trip. Without a direct connection on the pair there
// is nothing to compare against and any duration passes.
func WithinDetourCeiling(itinerary *timetable.Itinerary, directDurationMinutes int, directExists bool) bool {
	if !directExists {
		return true
	}

	return itinerary.TotalDurationMinutes <= directDurationMinutes+maxExtraVersusDirectMinutes
}
