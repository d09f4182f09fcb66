package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/railscout/railscout/pkg/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var GlobalInstance *MongoInstance

const defaultConnectionString = "mongodb://localhost:27017/"
const defaultDatabase = "railscout"

func Connect() error {
	connectionString := util.EnvironmentVariable("RAILSCOUT_MONGODB_CONNECTION", defaultConnectionString)
	databaseName := util.EnvironmentVariable("RAILSCOUT_MONGODB_DATABASE", defaultDatabase)

	connect := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
		if err != nil {
			return err
		}

		if err := client.Ping(ctx, nil); err != nil {
			return err
		}

		GlobalInstance = &MongoInstance{
			Client:   client,
			Database: client.Database(databaseName),
		}

		return nil
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = 2 * time.Minute

	err := backoff.RetryNotify(connect, retryBackoff, func(err error, wait time.Duration) {
		log.Warn().Err(err).Dur("wait", wait).Msg("Failed to connect to MongoDB, retrying")
	})
	if err != nil {
		return err
	}

	createIndexes()

	return nil
}

func GetCollection(name string) *mongo.Collection {
	return GlobalInstance.Database.Collection(name)
}
