package query

import "github.com/railscout/railscout/pkg/search"

// Connections is a direct search over the published network index.
type Connections struct {
	Query search.Query
}

// Plan is a multi-leg itinerary search over the published network index.
type Plan struct {
	Query search.Query

	MaxTransfers int
	MaxResults   int
}

// Reservation looks a stored reservation up by identifier.
type Reservation struct {
	ReservationID string
}

// Ticket looks a stored ticket up by identifier.
type Ticket struct {
	TicketID string
}
