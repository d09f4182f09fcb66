package timetable

import (
	"fmt"

	"github.com/railscout/railscout/pkg/util"
)

// ScheduledConnection is one scheduled train between two cities. Records are
// immutable facts once imported; the search engine never mutates them.
type ScheduledConnection struct {
	ConnectionID string `groups:"basic" bson:",omitempty"`

	DepartureCity string `groups:"basic"`
	ArrivalCity   string `groups:"basic"`

	DepartureTime string `groups:"basic"` // "HH:mm"
	ArrivalTime   string `groups:"basic"` // "HH:mm"

	TrainType string `groups:"basic"`

	// OperatingDays holds canonical 3 letter weekday codes (MON..SUN).
	// An empty set means the connection never runs.
	OperatingDays []string `groups:"detailed"`

	FirstClassPrice  int `groups:"basic"`
	SecondClassPrice int `groups:"basic"`

	CreationDateTime     string `groups:"internal" bson:",omitempty"`
	ModificationDateTime string `groups:"internal" bson:",omitempty"`
}

// DurationMinutes is the scheduled travel time. An arrival clock earlier than
// the departure clock means the trip crosses midnight once; journeys longer
// than a day are not representable in "HH:mm" data.
func (connection *ScheduledConnection) DurationMinutes() int {
	return util.ClockDifference(connection.DepartureTime, connection.ArrivalTime)
}

// OperatesOnAny reports whether the connection runs on at least one of the
// given weekday codes.
func (connection *ScheduledConnection) OperatesOnAny(days []string) bool {
	for _, day := range days {
		for _, operating := range connection.OperatingDays {
			if day == operating {
				return true
			}
		}
	}

	return false
}

func (connection *ScheduledConnection) String() string {
	return fmt.Sprintf("%s → %s (%s → %s, %s, type %s)",
		connection.DepartureCity, connection.ArrivalCity,
		connection.DepartureTime, connection.ArrivalTime,
		util.FormatMinutesDuration(connection.DurationMinutes()),
		connection.TrainType,
	)
}
