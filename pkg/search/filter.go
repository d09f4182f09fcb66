package search

import (
	"strings"

	"github.com/railscout/railscout/pkg/timetable"
)

// MatchesQuery evaluates one scheduled connection against a normalized query.
// All five predicates must pass.
func MatchesQuery(query *Query, connection *timetable.ScheduledConnection) bool {
	return matchesCities(query, connection) &&
		matchesTimeWindows(query, connection) &&
		matchesTrainType(query, connection) &&
		matchesOperatingDays(query, connection) &&
		matchesPrice(query, connection)
}

func matchesCities(query *Query, connection *timetable.ScheduledConnection) bool {
	if query.FromCity != "" && !strings.EqualFold(connection.DepartureCity, query.FromCity) {
		return false
	}

	if query.ToCity != "" && !strings.EqualFold(connection.ArrivalCity, query.ToCity) {
		return false
	}

	return true
}

// Zero-padded "HH:mm" strings order lexicographically the same as their
// numeric clock values, and a window deliberately never unwraps past
// midnight.
func matchesTimeWindows(query *Query, connection *timetable.ScheduledConnection) bool {
	departure := connection.DepartureTime
	arrival := connection.ArrivalTime

	if query.DepartureAfter != "" && departure < query.DepartureAfter {
		return false
	}
	if query.DepartureBefore != "" && departure > query.DepartureBefore {
		return false
	}

	if query.ArrivalAfter != "" && arrival < query.ArrivalAfter {
		return false
	}
	if query.ArrivalBefore != "" && arrival > query.ArrivalBefore {
		return false
	}

	return true
}

func matchesTrainType(query *Query, connection *timetable.ScheduledConnection) bool {
	if query.TrainType == "" {
		return true
	}

	return strings.EqualFold(strings.TrimSpace(connection.TrainType), query.TrainType)
}

// Any overlap between the accepted days and the operating days passes; the
// connection does not have to run on every requested day.
func matchesOperatingDays(query *Query, connection *timetable.ScheduledConnection) bool {
	if len(query.Days) == 0 {
		return true
	}

	return connection.OperatesOnAny(query.Days)
}

func matchesPrice(query *Query, connection *timetable.ScheduledConnection) bool {
	if query.MaxPrice == nil {
		return true
	}

	maximum := *query.MaxPrice

	switch query.PriceClass {
	case PriceClassFirst:
		return connection.FirstClassPrice <= maximum
	case PriceClassSecond:
		return connection.SecondClassPrice <= maximum
	default:
		return connection.FirstClassPrice <= maximum || connection.SecondClassPrice <= maximum
	}
}
