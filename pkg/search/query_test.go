package search

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	query := Query{
		FromCity: "  Vienna ",
		ToCity:   "MUNICH",
		Days:     []string{"Monday", "fri", "blursday"},
	}
	query.Normalize()

	if query.FromCity != "vienna" {
		t.Errorf("FromCity = %q, want vienna", query.FromCity)
	}
	if query.ToCity != "munich" {
		t.Errorf("ToCity = %q, want munich", query.ToCity)
	}
	if !reflect.DeepEqual(query.Days, []string{"MON", "FRI"}) {
		t.Errorf("Days = %v, want [MON FRI]", query.Days)
	}

	if query.SortBy != SortByDuration {
		t.Errorf("SortBy default = %q, want %q", query.SortBy, SortByDuration)
	}
	if query.SortDir != SortAscending {
		t.Errorf("SortDir default = %q, want %q", query.SortDir, SortAscending)
	}
	if query.PriceClass != PriceClassAny {
		t.Errorf("PriceClass default = %q, want %q", query.PriceClass, PriceClassAny)
	}
}

// TestValidateNamesTheOffendingField exists because callers surface these
// errors directly to API clients; the message has to say which input to fix.
func TestValidateNamesTheOffendingField(t *testing.T) {
	negative := -1

	testCases := []struct {
		name  string
		query Query
		field string
	}{
		{"bad sort key", Query{SortBy: "SPEED", SortDir: SortAscending, PriceClass: PriceClassAny}, "sortBy"},
		{"bad direction", Query{SortBy: SortByDuration, SortDir: "SIDEWAYS", PriceClass: PriceClassAny}, "sortDir"},
		{"bad price class", Query{SortBy: SortByDuration, SortDir: SortAscending, PriceClass: "THIRD"}, "priceClass"},
		{"bad departure bound", Query{SortBy: SortByDuration, SortDir: SortAscending, PriceClass: PriceClassAny, DepartureAfter: "25:00"}, "departureAfter"},
		{"bad arrival bound", Query{SortBy: SortByDuration, SortDir: SortAscending, PriceClass: PriceClassAny, ArrivalBefore: "9am"}, "arrivalBefore"},
		{"negative price cap", Query{SortBy: SortByDuration, SortDir: SortAscending, PriceClass: PriceClassAny, MaxPrice: &negative}, "maxPrice"},
	}

	for _, testCase := range testCases {
		err := testCase.query.Validate()
		if err == nil {
			t.Errorf("%s: Validate accepted the query", testCase.name)
			continue
		}
		if !strings.Contains(err.Error(), testCase.field) {
			t.Errorf("%s: error %q does not name field %q", testCase.name, err, testCase.field)
		}
	}
}

func TestValidateAcceptsNormalizedQuery(t *testing.T) {
	query := Query{FromCity: "Vienna", ToCity: "Munich", DepartureAfter: "08:00"}
	query.Normalize()

	if err := query.Validate(); err != nil {
		t.Errorf("Validate rejected a well formed query: %v", err)
	}
}

func TestLegQueryVariants(t *testing.T) {
	query := Query{FromCity: "vienna", ToCity: "munich", TrainType: "ice"}

	seed := query.withoutDestination()
	if seed.FromCity != "vienna" || seed.ToCity != "" {
		t.Errorf("withoutDestination = (%q, %q), want (vienna, '')", seed.FromCity, seed.ToCity)
	}

	leg := query.withoutCities()
	if leg.FromCity != "" || leg.ToCity != "" {
		t.Errorf("withoutCities = (%q, %q), want ('', '')", leg.FromCity, leg.ToCity)
	}
	if leg.TrainType != "ice" {
		t.Errorf("withoutCities dropped the train type constraint")
	}

	// Both variants are value copies; the original keeps its cities.
	if query.FromCity != "vienna" || query.ToCity != "munich" {
		t.Errorf("variant construction mutated the original query")
	}
}
