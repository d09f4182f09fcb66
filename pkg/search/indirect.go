package search

import (
	"github.com/railscout/railscout/pkg/networkindex"
	"github.com/railscout/railscout/pkg/timetable"
	"github.com/railscout/railscout/pkg/util"
)

type PlanOptions struct {
	MaxTransfers int
	MaxResults   int
}

type frontierEntry struct {
	itinerary     timetable.Itinerary
	visitedCities map[string]bool
}

// Plan builds multi-leg itineraries from the query's origin to its
// destination by breadth-first expansion over the network index. Expanding in
// discovery order guarantees an itinerary with fewer transfers is found no
// later than any longer alternative. Results are feasible, layover and detour
// reasonable, deduplicated by signature and capped at MaxResults. A blank
// origin or destination is a normal empty result, not an error.
func Plan(index *networkindex.Index, query Query, options PlanOptions) []timetable.Itinerary {
	origin := util.NormalizeCity(query.FromCity)
	destination := util.NormalizeCity(query.ToCity)

	if origin == "" || destination == "" {
		return nil
	}

	// The detour ceiling compares against the direct trip, computed once
	// up front.
	directDuration, directExists := index.DirectDuration(query.FromCity, query.ToCity)

	seedQuery := query.withoutDestination()
	legQuery := query.withoutCities()

	var frontier []frontierEntry

	for _, connection := range index.DeparturesFrom(query.FromCity) {
		if !MatchesQuery(&seedQuery, &connection) {
			continue
		}

		itinerary := timetable.Itinerary{}
		itinerary.AppendLeg(timetable.NewLeg(connection, 0))
		itinerary.RecomputeTotals()

		frontier = append(frontier, frontierEntry{
			itinerary: itinerary,
			visitedCities: map[string]bool{
				origin: true,
				util.NormalizeCity(connection.ArrivalCity): true,
			},
		})
	}

	var results []timetable.Itinerary
	seenSignatures := map[string]bool{}

	for len(frontier) > 0 && len(results) < options.MaxResults {
		current := frontier[0]
		frontier = frontier[1:]

		lastLeg := current.itinerary.Legs[len(current.itinerary.Legs)-1]
		lastConnection := lastLeg.Connection
		atCity := util.NormalizeCity(lastConnection.ArrivalCity)

		if atCity == destination {
			current.itinerary.RecomputeTotals()

			if !WithinDetourCeiling(&current.itinerary, directDuration, directExists) {
				continue
			}

			signature := current.itinerary.Signature()
			if !seenSignatures[signature] {
				seenSignatures[signature] = true
				results = append(results, current.itinerary)
			}

			// The branch terminates at the destination either way.
			continue
		}

		if current.itinerary.TransferCount() >= options.MaxTransfers {
			continue
		}

		for _, next := range index.DeparturesFrom(lastConnection.ArrivalCity) {
			if !MatchesQuery(&legQuery, &next) {
				continue
			}

			if !LayoverAllowed(&lastConnection, &next) {
				continue
			}

			// Revisiting a city makes a cycle, except arriving at
			// the destination itself, where the itinerary ends.
			nextCity := util.NormalizeCity(next.ArrivalCity)
			if current.visitedCities[nextCity] && nextCity != destination {
				continue
			}

			gap := TransferGapMinutes(&lastConnection, &next)

			extended := current.itinerary.Clone()
			extended.AppendLeg(timetable.NewLeg(next, gap))
			extended.RecomputeTotals()

			visited := make(map[string]bool, len(current.visitedCities)+1)
			for city := range current.visitedCities {
				visited[city] = true
			}
			visited[nextCity] = true

			frontier = append(frontier, frontierEntry{itinerary: extended, visitedCities: visited})
		}
	}

	return results
}
