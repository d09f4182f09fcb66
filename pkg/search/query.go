package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/railscout/railscout/pkg/timetable"
)

type PriceClass string

const (
	PriceClassFirst  PriceClass = "FIRST"
	PriceClassSecond PriceClass = "SECOND"
	PriceClassAny    PriceClass = "ANY"
)

type SortKey string

const (
	SortByDuration    SortKey = "DURATION"
	SortByPriceFirst  SortKey = "PRICE_FIRST"
	SortByPriceSecond SortKey = "PRICE_SECOND"
)

type SortDirection string

const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

var clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// Query is a normalized, validated description of a search request. Zero
// values mean unconstrained: empty cities match anywhere, empty time bounds
// leave a window open, an empty day set accepts every operating day.
type Query struct {
	FromCity string
	ToCity   string

	// Inclusive "HH:mm" bounds. A window never spans midnight.
	DepartureAfter  string
	DepartureBefore string
	ArrivalAfter    string
	ArrivalBefore   string

	TrainType string

	Days []string

	PriceClass PriceClass
	MaxPrice   *int

	SortBy  SortKey
	SortDir SortDirection
}

// Normalize folds the query into canonical form: cities and train type
// trimmed and lower-cased, weekday tokens canonicalized (unknown tokens
// silently dropped), defaults applied. Runs before Validate.
func (query *Query) Normalize() {
	query.FromCity = strings.ToLower(strings.TrimSpace(query.FromCity))
	query.ToCity = strings.ToLower(strings.TrimSpace(query.ToCity))
	query.TrainType = strings.ToLower(strings.TrimSpace(query.TrainType))

	query.Days = timetable.CanonicalWeekdays(query.Days)

	if query.SortBy == "" {
		query.SortBy = SortByDuration
	}
	if query.SortDir == "" {
		query.SortDir = SortAscending
	}
	if query.PriceClass == "" {
		query.PriceClass = PriceClassAny
	}
}

// Validate checks the query against the legal enumerations and the "HH:mm"
// pattern. The returned error names the offending field.
func (query *Query) Validate() error {
	switch query.SortBy {
	case SortByDuration, SortByPriceFirst, SortByPriceSecond:
	default:
		return fmt.Errorf("invalid sortBy: %s", query.SortBy)
	}

	switch query.SortDir {
	case SortAscending, SortDescending:
	default:
		return fmt.Errorf("invalid sortDir: %s", query.SortDir)
	}

	switch query.PriceClass {
	case PriceClassFirst, PriceClassSecond, PriceClassAny:
	default:
		return fmt.Errorf("invalid priceClass: %s", query.PriceClass)
	}

	if query.DepartureAfter != "" && !clockPattern.MatchString(query.DepartureAfter) {
		return fmt.Errorf("invalid departureAfter: %s", query.DepartureAfter)
	}
	if query.DepartureBefore != "" && !clockPattern.MatchString(query.DepartureBefore) {
		return fmt.Errorf("invalid departureBefore: %s", query.DepartureBefore)
	}
	if query.ArrivalAfter != "" && !clockPattern.MatchString(query.ArrivalAfter) {
		return fmt.Errorf("invalid arrivalAfter: %s", query.ArrivalAfter)
	}
	if query.ArrivalBefore != "" && !clockPattern.MatchString(query.ArrivalBefore) {
		return fmt.Errorf("invalid arrivalBefore: %s", query.ArrivalBefore)
	}

	if query.MaxPrice != nil && *query.MaxPrice < 0 {
		return fmt.Errorf("invalid maxPrice: %d", *query.MaxPrice)
	}

	return nil
}

// withoutDestination is the seed-leg variant: the first leg of a multi-leg
// itinerary must still depart from the origin but may arrive anywhere.
func (query Query) withoutDestination() Query {
	query.ToCity = ""
	return query
}

// withoutCities is the intermediate-leg variant: time, type, day and price
// constraints stay, both city constraints drop.
func (query Query) withoutCities() Query {
	query.FromCity = ""
	query.ToCity = ""
	return query
}
