package source

import (
	"errors"
	"reflect"

	"github.com/railscout/railscout/pkg/dataaggregator/query"
	"github.com/railscout/railscout/pkg/networkindex"
	"github.com/railscout/railscout/pkg/search"
	"github.com/railscout/railscout/pkg/timetable"
)

// NetworkIndexSource answers search queries against the published in-memory
// network index. The index pointer is resolved per lookup so an import
// landing mid-flight swaps cleanly between queries.
type NetworkIndexSource struct {
}

func (s NetworkIndexSource) GetName() string {
	return "Network Index"
}

func (s NetworkIndexSource) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(timetable.Itinerary{}),
	}
}

func (s NetworkIndexSource) Lookup(q any) (interface{}, error) {
	switch lookupQuery := q.(type) {
	case query.Connections:
		searchQuery := lookupQuery.Query
		searchQuery.Normalize()
		if err := searchQuery.Validate(); err != nil {
			return nil, err
		}

		return search.Direct(networkindex.Published(), searchQuery), nil
	case query.Plan:
		searchQuery := lookupQuery.Query
		searchQuery.Normalize()
		if err := searchQuery.Validate(); err != nil {
			return nil, err
		}

		itineraries := search.Plan(networkindex.Published(), searchQuery, search.PlanOptions{
			MaxTransfers: lookupQuery.MaxTransfers,
			MaxResults:   lookupQuery.MaxResults,
		})

		search.Rank(itineraries, search.StrategyForSortKey(searchQuery.SortBy), searchQuery.SortDir)

		return itineraries, nil
	}

	return nil, errors.New("Unsupported query type")
}
