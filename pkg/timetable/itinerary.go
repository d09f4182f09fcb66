package timetable

import (
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/railscout/railscout/pkg/util"
)

// Itinerary is an ordered chain of legs from an origin city to a destination
// city. The search engine appends legs one at a time; city continuity between
// adjacent legs is the appender's responsibility and is not re-validated on
// read. Totals are derived and must be recomputed after the legs change.
type Itinerary struct {
	Legs []Leg `groups:"basic"`

	TotalTravelMinutes    int `groups:"basic"`
	TotalTransferMinutes  int `groups:"basic"`
	TotalDurationMinutes  int `groups:"basic"`
	TotalFirstClassPrice  int `groups:"basic"`
	TotalSecondClassPrice int `groups:"basic"`
}

func SingleLegItinerary(connection ScheduledConnection) Itinerary {
	itinerary := Itinerary{}
	itinerary.AppendLeg(NewLeg(connection, 0))
	itinerary.RecomputeTotals()

	return itinerary
}

func (itinerary *Itinerary) AppendLeg(leg Leg) {
	itinerary.Legs = append(itinerary.Legs, leg)
}

// RecomputeTotals rebuilds every derived total from the leg sequence. Prices
// are plain sums per class, no interline discounting.
func (itinerary *Itinerary) RecomputeTotals() {
	travel := 0
	transfers := 0
	firstClass := 0
	secondClass := 0

	for index, leg := range itinerary.Legs {
		travel += leg.DurationMinutes
		if index > 0 {
			transfers += leg.TransferMinutes
		}

		firstClass += leg.Connection.FirstClassPrice
		secondClass += leg.Connection.SecondClassPrice
	}

	itinerary.TotalTravelMinutes = travel
	itinerary.TotalTransferMinutes = transfers
	itinerary.TotalDurationMinutes = travel + transfers
	itinerary.TotalFirstClassPrice = firstClass
	itinerary.TotalSecondClassPrice = secondClass
}

func (itinerary *Itinerary) Direct() bool {
	return len(itinerary.Legs) == 1
}

func (itinerary *Itinerary) TransferCount() int {
	if len(itinerary.Legs) == 0 {
		return 0
	}

	return len(itinerary.Legs) - 1
}

func (itinerary *Itinerary) OriginCity() string {
	if len(itinerary.Legs) == 0 {
		return ""
	}

	return itinerary.Legs[0].Connection.DepartureCity
}

func (itinerary *Itinerary) DestinationCity() string {
	if len(itinerary.Legs) == 0 {
		return ""
	}

	return itinerary.Legs[len(itinerary.Legs)-1].Connection.ArrivalCity
}

func (itinerary *Itinerary) DepartureTime() string {
	if len(itinerary.Legs) == 0 {
		return ""
	}

	return itinerary.Legs[0].Connection.DepartureTime
}

func (itinerary *Itinerary) ArrivalTime() string {
	if len(itinerary.Legs) == 0 {
		return ""
	}

	return itinerary.Legs[len(itinerary.Legs)-1].Connection.ArrivalTime
}

// Signature is a structural identity key over the leg sequence. Connection
// identifiers are preferred; legs without one fall back to a city/time tuple.
func (itinerary *Itinerary) Signature() string {
	var builder strings.Builder

	for _, leg := range itinerary.Legs {
		connection := leg.Connection

		if connection.ConnectionID != "" {
			builder.WriteString(connection.ConnectionID)
		} else {
			builder.WriteString(util.NormalizeCity(connection.DepartureCity))
			builder.WriteString(">")
			builder.WriteString(util.NormalizeCity(connection.ArrivalCity))
			builder.WriteString("@")
			builder.WriteString(connection.DepartureTime)
			builder.WriteString("-")
			builder.WriteString(connection.ArrivalTime)
		}

		builder.WriteString("|")
	}

	return builder.String()
}

// Equal compares itineraries by their leg sequence alone; totals are derived
// and carry no extra identity.
func (itinerary *Itinerary) Equal(other *Itinerary) bool {
	return itinerary.Signature() == other.Signature()
}

// Clone deep-copies the itinerary so a search expansion can extend it without
// touching the frontier entry it came from.
func (itinerary *Itinerary) Clone() Itinerary {
	var copied Itinerary

	err := copier.CopyWithOption(&copied, *itinerary, copier.Option{DeepCopy: true})
	if err != nil {
		log.Error().Err(err).Msg("Failed to copy itinerary")
	}

	return copied
}
