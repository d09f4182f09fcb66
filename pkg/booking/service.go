package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/railscout/railscout/pkg/database"
	"github.com/railscout/railscout/pkg/search"
	"github.com/railscout/railscout/pkg/timetable"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrReservationNotFound = errors.New("reservation not found")

// CreateReservation stores a reservation for the chosen itinerary with the
// price locked to the requested class (ANY books the cheaper class).
func CreateReservation(ctx context.Context, passengerName string, priceClass search.PriceClass, itinerary timetable.Itinerary) (*Reservation, error) {
	if passengerName == "" {
		return nil, fmt.Errorf("invalid passengerName: must not be empty")
	}
	if len(itinerary.Legs) == 0 {
		return nil, fmt.Errorf("invalid itinerary: has no legs")
	}

	itinerary.RecomputeTotals()

	var price int
	switch priceClass {
	case search.PriceClassFirst:
		price = itinerary.TotalFirstClassPrice
	case search.PriceClassSecond:
		price = itinerary.TotalSecondClassPrice
	case search.PriceClassAny, "":
		priceClass = search.PriceClassSecond
		price = itinerary.TotalSecondClassPrice
		if itinerary.TotalFirstClassPrice < price {
			priceClass = search.PriceClassFirst
			price = itinerary.TotalFirstClassPrice
		}
	default:
		return nil, fmt.Errorf("invalid priceClass: %s", priceClass)
	}

	now := time.Now()

	reservation := &Reservation{
		ReservationID:        uuid.New().String(),
		PassengerName:        passengerName,
		PriceClass:           string(priceClass),
		Itinerary:            itinerary,
		Price:                price,
		Status:               ReservationStatusReserved,
		CreationDateTime:     now,
		ModificationDateTime: now,
	}

	reservationsCollection := database.GetCollection("reservations")
	if _, err := reservationsCollection.InsertOne(ctx, reservation); err != nil {
		return nil, err
	}

	log.Info().
		Str("reservation", reservation.ReservationID).
		Str("origin", itinerary.OriginCity()).
		Str("destination", itinerary.DestinationCity()).
		Msg("Created reservation")

	return reservation, nil
}

func GetReservation(ctx context.Context, reservationID string) (*Reservation, error) {
	reservationsCollection := database.GetCollection("reservations")

	var reservation Reservation
	err := reservationsCollection.FindOne(ctx, bson.M{"reservationid": reservationID}).Decode(&reservation)
	if err == mongo.ErrNoDocuments {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

// ConfirmReservation issues a ticket for a reserved itinerary. Confirming an
// already confirmed or cancelled reservation is rejected.
func ConfirmReservation(ctx context.Context, reservationID string) (*Ticket, error) {
	reservation, err := GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Status != ReservationStatusReserved {
		return nil, fmt.Errorf("reservation %s is %s", reservationID, reservation.Status)
	}

	ticket := &Ticket{
		TicketID:       uuid.New().String(),
		ReservationID:  reservation.ReservationID,
		PassengerName:  reservation.PassengerName,
		Price:          reservation.Price,
		IssuedDateTime: time.Now(),
	}

	ticketsCollection := database.GetCollection("tickets")
	if _, err := ticketsCollection.InsertOne(ctx, ticket); err != nil {
		return nil, err
	}

	if err := updateReservationStatus(ctx, reservationID, ReservationStatusConfirmed); err != nil {
		return nil, err
	}

	log.Info().Str("reservation", reservationID).Str("ticket", ticket.TicketID).Msg("Issued ticket")

	return ticket, nil
}

func CancelReservation(ctx context.Context, reservationID string) error {
	reservation, err := GetReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	if reservation.Status == ReservationStatusCancelled {
		return fmt.Errorf("reservation %s is already cancelled", reservationID)
	}

	return updateReservationStatus(ctx, reservationID, ReservationStatusCancelled)
}

func updateReservationStatus(ctx context.Context, reservationID string, status ReservationStatus) error {
	reservationsCollection := database.GetCollection("reservations")

	_, err := reservationsCollection.UpdateOne(ctx,
		bson.M{"reservationid": reservationID},
		bson.M{"$set": bson.M{
			"status":               status,
			"modificationdatetime": time.Now(),
		}},
	)

	return err
}
