package networkindex

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/railscout/railscout/pkg/timetable"
	"github.com/railscout/railscout/pkg/util"
)

// Index is an immutable lookup structure over a loaded set of scheduled
// connections. Both maps are built once in Build; readers may share an Index
// across goroutines without synchronization because nothing mutates it after
// publication.
type Index struct {
	connections []timetable.ScheduledConnection

	byCityPair  map[string][]timetable.ScheduledConnection
	byDeparture map[string][]timetable.ScheduledConnection
}

// published is the live index readers resolve against. Loads construct a
// fresh Index and swap this pointer, so a reader never observes a partially
// built index.
var published atomic.Pointer[Index]

func Build(connections []timetable.ScheduledConnection) *Index {
	index := &Index{
		connections: connections,
		byCityPair:  map[string][]timetable.ScheduledConnection{},
		byDeparture: map[string][]timetable.ScheduledConnection{},
	}

	for _, connection := range connections {
		pairKey := cityPairKey(connection.DepartureCity, connection.ArrivalCity)
		index.byCityPair[pairKey] = append(index.byCityPair[pairKey], connection)

		departureKey := util.NormalizeCity(connection.DepartureCity)
		index.byDeparture[departureKey] = append(index.byDeparture[departureKey], connection)
	}

	return index
}

func Publish(index *Index) {
	published.Store(index)

	log.Info().Int("connections", len(index.connections)).Msg("Published network index")
}

// Published returns the live index, or an empty one before any load.
func Published() *Index {
	if index := published.Load(); index != nil {
		return index
	}

	return Build(nil)
}

func (index *Index) AllConnections() []timetable.ScheduledConnection {
	return index.connections
}

// ConnectionsBetween returns every connection on the exact (normalized)
// ordered city pair.
func (index *Index) ConnectionsBetween(departureCity string, arrivalCity string) []timetable.ScheduledConnection {
	return index.byCityPair[cityPairKey(departureCity, arrivalCity)]
}

// DeparturesFrom returns every connection leaving the city. A blank city has
// no departures.
func (index *Index) DeparturesFrom(city string) []timetable.ScheduledConnection {
	key := util.NormalizeCity(city)
	if key == "" {
		return nil
	}

	return index.byDeparture[key]
}

// DirectDuration is the duration of the first direct connection on the pair.
// The second return is false when no direct connection exists, which lifts
// the detour ceiling entirely.
func (index *Index) DirectDuration(departureCity string, arrivalCity string) (int, bool) {
	connections := index.ConnectionsBetween(departureCity, arrivalCity)
	if len(connections) == 0 {
		return 0, false
	}

	return connections[0].DurationMinutes(), true
}

// City-pair identity is plain normalized string equality. Visually distinct
// names for the same place stay distinct.
func cityPairKey(departureCity string, arrivalCity string) string {
	return util.NormalizeCity(departureCity) + "→" + util.NormalizeCity(arrivalCity)
}
