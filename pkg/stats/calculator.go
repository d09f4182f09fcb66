package stats

import (
	"sort"
	"strings"

	"github.com/railscout/railscout/pkg/networkindex"
	"github.com/railscout/railscout/pkg/util"
	"golang.org/x/exp/maps"
)

// NetworkStats summarizes the shape of the published network.
type NetworkStats struct {
	TotalConnections int `groups:"basic"`

	Cities     int `groups:"basic"`
	TrainTypes int `groups:"basic"`

	ConnectionsPerCity      map[string]int `groups:"detailed"`
	ConnectionsPerTrainType map[string]int `groups:"detailed"`
}

func CalculateNetworkStats(index *networkindex.Index) NetworkStats {
	connectionsPerCity := map[string]int{}
	connectionsPerTrainType := map[string]int{}

	cities := map[string]bool{}

	for _, connection := range index.AllConnections() {
		departureCity := util.NormalizeCity(connection.DepartureCity)
		arrivalCity := util.NormalizeCity(connection.ArrivalCity)

		connectionsPerCity[departureCity] += 1

		cities[departureCity] = true
		cities[arrivalCity] = true

		trainType := strings.ToLower(strings.TrimSpace(connection.TrainType))
		connectionsPerTrainType[trainType] += 1
	}

	return NetworkStats{
		TotalConnections:        len(index.AllConnections()),
		Cities:                  len(cities),
		TrainTypes:              len(connectionsPerTrainType),
		ConnectionsPerCity:      connectionsPerCity,
		ConnectionsPerTrainType: connectionsPerTrainType,
	}
}

// SortedCities lists the counted departure cities in alphabetical order for
// stable display.
func (stats *NetworkStats) SortedCities() []string {
	cities := maps.Keys(stats.ConnectionsPerCity)
	sort.Strings(cities)

	return cities
}
