package redis_client

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/railscout/railscout/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultDatabase = 0

func Connect() error {
	address := util.EnvironmentVariable("RAILSCOUT_REDIS_ADDRESS", defaultConnectionAddress)
	password := util.EnvironmentVariable("RAILSCOUT_REDIS_PASSWORD", "")

	database := defaultDatabase
	if value := util.EnvironmentVariable("RAILSCOUT_REDIS_DATABASE", ""); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		database = n
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	return Client.Ping(context.Background()).Err()
}
