package search

import (
	"github.com/railscout/railscout/pkg/networkindex"
	"github.com/railscout/railscout/pkg/timetable"
)

// Direct runs a single-leg search: candidate connections are filtered through
// the query and returned as one-leg itineraries ranked by the query's sort
// key. Starting from the departure-city index when the origin is constrained
// avoids scanning the whole network.
func Direct(index *networkindex.Index, query Query) []timetable.Itinerary {
	var candidates []timetable.ScheduledConnection
	if query.FromCity != "" {
		candidates = index.DeparturesFrom(query.FromCity)
	} else {
		candidates = index.AllConnections()
	}

	var results []timetable.Itinerary

	for _, connection := range candidates {
		if !MatchesQuery(&query, &connection) {
			continue
		}

		results = append(results, timetable.SingleLegItinerary(connection))
	}

	Rank(results, StrategyForSortKey(query.SortBy), query.SortDir)

	return results
}
