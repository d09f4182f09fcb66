package booking

import (
	"time"

	"github.com/railscout/railscout/pkg/timetable"
)

type ReservationStatus string

const (
	ReservationStatusReserved  ReservationStatus = "Reserved"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

// Reservation pins a passenger to a chosen itinerary. The itinerary is an
// opaque snapshot of what the search returned; booking never re-runs any
// search logic over it.
type Reservation struct {
	ReservationID string `groups:"basic"`

	PassengerName string `groups:"basic"`

	PriceClass string              `groups:"basic"`
	Itinerary  timetable.Itinerary `groups:"detailed"`

	// Price is locked in at reservation time from the itinerary totals.
	Price int `groups:"basic"`

	Status ReservationStatus `groups:"basic"`

	CreationDateTime     time.Time `groups:"detailed"`
	ModificationDateTime time.Time `groups:"detailed"`
}

type Ticket struct {
	TicketID      string `groups:"basic"`
	ReservationID string `groups:"basic"`

	PassengerName string `groups:"basic"`
	Price         int    `groups:"basic"`

	IssuedDateTime time.Time `groups:"basic"`
}
