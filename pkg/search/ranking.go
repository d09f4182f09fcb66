package search

import (
	"sort"

	"github.com/railscout/railscout/pkg/timetable"
	"github.com/railscout/railscout/pkg/util"
)

// RankingStrategy is one member of the closed set of itinerary orderings.
// Modelling the set as typed values instead of dispatching on raw strings
// makes an unknown strategy a construction-time failure.
type RankingStrategy struct {
	name string
	less func(a *timetable.Itinerary, b *timetable.Itinerary) bool
}

func (strategy RankingStrategy) Name() string {
	return strategy.name
}

var (
	RankByDuration = RankingStrategy{
		name: "duration",
		less: func(a *timetable.Itinerary, b *timetable.Itinerary) bool {
			return a.TotalDurationMinutes < b.TotalDurationMinutes
		},
	}
	RankByTransfers = RankingStrategy{
		name: "transfers",
		less: func(a *timetable.Itinerary, b *timetable.Itinerary) bool {
			return a.TransferCount() < b.TransferCount()
		},
	}
	RankByFirstClassPrice = RankingStrategy{
		name: "first-class-price",
		less: func(a *timetable.Itinerary, b *timetable.Itinerary) bool {
			return a.TotalFirstClassPrice < b.TotalFirstClassPrice
		},
	}
	RankBySecondClassPrice = RankingStrategy{
		name: "second-class-price",
		less: func(a *timetable.Itinerary, b *timetable.Itinerary) bool {
			return a.TotalSecondClassPrice < b.TotalSecondClassPrice
		},
	}
	RankByArrivalTime = RankingStrategy{
		name: "arrival-time",
		less: func(a *timetable.Itinerary, b *timetable.Itinerary) bool {
			return util.ClockMinutes(a.ArrivalTime()) < util.ClockMinutes(b.ArrivalTime())
		},
	}
)

// StrategyForSortKey maps a validated query sort key onto its strategy.
func StrategyForSortKey(key SortKey) RankingStrategy {
	switch key {
	case SortByPriceFirst:
		return RankByFirstClassPrice
	case SortByPriceSecond:
		return RankBySecondClassPrice
	default:
		return RankByDuration
	}
}

// Rank orders itineraries in place. Descending is the exact reversal of
// ascending over the same elements; the stable sort keeps equal-keyed
// itineraries in discovery order either way.
func Rank(itineraries []timetable.Itinerary, strategy RankingStrategy, direction SortDirection) {
	sort.SliceStable(itineraries, func(i, j int) bool {
		if direction == SortDescending {
			return strategy.less(&itineraries[j], &itineraries[i])
		}

		return strategy.less(&itineraries[i], &itineraries[j])
	})
}
