package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/railscout/railscout/pkg/dataaggregator/source"
)

type Aggregator struct {
	Sources []DataSource
}

var globalAggregator Aggregator

func GlobalSetup() {
	globalAggregator = Aggregator{}

	globalAggregator.RegisterSource(source.NetworkIndexSource{})
	globalAggregator.RegisterSource(source.DatabaseLookupSource{})
}

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup dispatches a query to the first registered source that supports the
// requested result type.
func Lookup[T any](query any) (T, error) {
	var empty T

	for _, source := range globalAggregator.Sources {
		matches := false

		lookupType := reflect.TypeOf(*new(T))
		if lookupType.Kind() == reflect.Pointer || lookupType.Kind() == reflect.Slice {
			lookupType = lookupType.Elem()
		}
		if lookupType.Kind() == reflect.Pointer {
			lookupType = lookupType.Elem()
		}

		for _, supportedType := range source.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if matches {
			returnValue, returnError := source.Lookup(query)

			if returnValue == nil {
				return empty, returnError
			} else {
				return returnValue.(T), returnError
			}
		}
	}

	return empty, errors.New("Failed to find a matching Data Source for type")
}
