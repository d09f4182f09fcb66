package timetable

import "fmt"

// Leg is one connection embedded at a position within an itinerary.
type Leg struct {
	Connection ScheduledConnection `groups:"basic"`

	// TransferMinutes is the layover since the previous leg arrived.
	// Always 0 on the first leg.
	TransferMinutes int `groups:"basic"`

	// DurationMinutes caches Connection.DurationMinutes() so total
	// recomputation never re-derives it.
	DurationMinutes int `groups:"basic"`
}

func NewLeg(connection ScheduledConnection, transferMinutes int) Leg {
	return Leg{
		Connection:      connection,
		TransferMinutes: transferMinutes,
		DurationMinutes: connection.DurationMinutes(),
	}
}

func (leg Leg) String() string {
	return fmt.Sprintf("%s (transfer %dm)", leg.Connection.String(), leg.TransferMinutes)
}
