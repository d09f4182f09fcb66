package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createConnectionsIndexes()
	createBookingIndexes()
}

func createConnectionsIndexes() {
	connectionsCollection := GetCollection("connections")
	connectionsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "connectionid", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "departurecity", Value: 1},
				{Key: "arrivalcity", Value: 1},
			},
		},
	}

	opts := options.CreateIndexes()
	_, err := connectionsCollection.Indexes().CreateMany(context.Background(), connectionsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createBookingIndexes() {
	reservationsCollection := GetCollection("reservations")
	reservationsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "reservationid", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := reservationsCollection.Indexes().CreateMany(context.Background(), reservationsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	ticketsCollection := GetCollection("tickets")
	ticketsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "ticketid", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "reservationid", Value: 1}},
		},
	}

	opts = options.CreateIndexes()
	_, err = ticketsCollection.Indexes().CreateMany(context.Background(), ticketsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
