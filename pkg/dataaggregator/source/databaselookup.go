package source

import (
	"context"
	"errors"
	"reflect"

	"github.com/railscout/railscout/pkg/booking"
	"github.com/railscout/railscout/pkg/database"
	"github.com/railscout/railscout/pkg/dataaggregator/query"
	"go.mongodb.org/mongo-driver/bson"
)

type DatabaseLookupSource struct {
}

func (d DatabaseLookupSource) GetName() string {
	return "Database Lookup"
}

func (d DatabaseLookupSource) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(booking.Reservation{}),
		reflect.TypeOf(booking.Ticket{}),
	}
}

func (d DatabaseLookupSource) Lookup(q any) (interface{}, error) {
	switch lookupQuery := q.(type) {
	case query.Reservation:
		reservation, err := booking.GetReservation(context.Background(), lookupQuery.ReservationID)
		if err != nil {
			return nil, err
		}

		return reservation, nil
	case query.Ticket:
		ticketsCollection := database.GetCollection("tickets")

		var ticket *booking.Ticket
		ticketsCollection.FindOne(context.Background(), bson.M{"ticketid": lookupQuery.TicketID}).Decode(&ticket)

		if ticket == nil {
			return nil, errors.New("Could not find a matching Ticket")
		}

		return ticket, nil
	}

	return nil, errors.New("Unsupported query type")
}
