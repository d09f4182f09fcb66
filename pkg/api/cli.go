package api

import (
	"github.com/rs/zerolog/log"
	"github.com/railscout/railscout/pkg/api/routes"
	"github.com/railscout/railscout/pkg/dataaggregator"
	"github.com/railscout/railscout/pkg/database"
	"github.com/railscout/railscout/pkg/dataimporter"
	"github.com/railscout/railscout/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					// The plan cache is an optimization; the API
					// still serves live searches without redis.
					if err := redis_client.Connect(); err != nil {
						log.Warn().Err(err).Msg("Failed to connect to Redis, plan caching disabled")
					} else {
						routes.SetupPlanCache()
					}

					if err := dataimporter.LoadIndexFromDatabase(); err != nil {
						return err
					}

					dataaggregator.GlobalSetup()

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
