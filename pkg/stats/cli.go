package stats

import (
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/railscout/railscout/pkg/database"
	"github.com/railscout/railscout/pkg/dataimporter"
	"github.com/railscout/railscout/pkg/networkindex"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Network statistics",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "calculate stats over the stored network",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					if err := dataimporter.LoadIndexFromDatabase(); err != nil {
						return err
					}

					networkStats := CalculateNetworkStats(networkindex.Published())
					pretty.Println(networkStats)

					for _, city := range networkStats.SortedCities() {
						log.Info().
							Str("city", city).
							Int("departures", networkStats.ConnectionsPerCity[city]).
							Msg("Departures")
					}

					return nil
				},
			},
		},
	}
}
