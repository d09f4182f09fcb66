package dataimporter

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/railscout/railscout/pkg/database"
	"github.com/railscout/railscout/pkg/dataimporter/datasets"
	"github.com/railscout/railscout/pkg/dataimporter/formats/railcsv"
	"github.com/railscout/railscout/pkg/networkindex"
	"github.com/railscout/railscout/pkg/timetable"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImportFile parses a timetable source, replaces the stored connection set
// and publishes a freshly built network index. The old index stays live for
// readers until the swap.
func ImportFile(reader io.Reader, format datasets.DataSetFormat) error {
	var connections []timetable.ScheduledConnection
	var err error

	switch format {
	case datasets.DataSetFormatRailCSV:
		connections, err = railcsv.ParseFile(reader)
	default:
		return fmt.Errorf("unsupported dataset format %s", format)
	}

	if err != nil {
		return err
	}

	log.Info().Int("connections", len(connections)).Msg("Parsed timetable source")

	if err := replaceStoredConnections(connections); err != nil {
		return err
	}

	networkindex.Publish(networkindex.Build(connections))

	return nil
}

// LoadIndexFromDatabase rebuilds and publishes the network index from the
// stored connection set. Run at startup by anything that serves queries.
func LoadIndexFromDatabase() error {
	connectionsCollection := database.GetCollection("connections")

	cursor, err := connectionsCollection.Find(context.Background(), bson.M{})
	if err != nil {
		return err
	}

	var connections []timetable.ScheduledConnection
	if err := cursor.All(context.Background(), &connections); err != nil {
		return err
	}

	networkindex.Publish(networkindex.Build(connections))

	return nil
}

func replaceStoredConnections(connections []timetable.ScheduledConnection) error {
	connectionsCollection := database.GetCollection("connections")

	for _, connection := range connections {
		filter := bson.M{"connectionid": connection.ConnectionID}
		if connection.ConnectionID == "" {
			filter = bson.M{
				"departurecity": connection.DepartureCity,
				"arrivalcity":   connection.ArrivalCity,
				"departuretime": connection.DepartureTime,
			}
		}

		opts := options.Replace().SetUpsert(true)

		_, err := connectionsCollection.ReplaceOne(context.Background(), filter, connection, opts)
		if err != nil {
			log.Error().Err(err).Str("id", connection.ConnectionID).Msg("Failed to upsert connection")
		}
	}

	return nil
}
