package search

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
		Name:  "search",
		Usage: "Query the rail network",
		Subcommands: []*cli.Command{
			{
				Name:  "plan",
				Usage: "find itineraries between two cities",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin city",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination city",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-transfers",
						Value: 2,
						Usage: "maximum number of transfers",
					},
					&cli.IntFlag{
						Name:  "max-results",
						Value: 10,
						Usage: "maximum number of itineraries",
					},
					&cli.StringFlag{
						Name:  "sort-by",
						Value: string(SortByDuration),
						Usage: "DURATION, PRICE_FIRST or PRICE_SECOND",
					},
					&cli.StringSliceFlag{
						Name:  "day",
						Usage: "restrict to operating days, e.g. --day MON --day FRI",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					if err := dataimporter.LoadIndexFromDatabase(); err != nil {
						return err
					}

					query := Query{
						FromCity: c.String("from"),
						ToCity:   c.String("to"),
						Days:     c.StringSlice("day"),
						SortBy:   SortKey(c.String("sort-by")),
					}
					query.Normalize()
					if err := query.Validate(); err != nil {
						return err
					}

					itineraries := Plan(networkindex.Published(), query, PlanOptions{
						MaxTransfers: c.Int("max-transfers"),
						MaxResults:   c.Int("max-results"),
					})

					Rank(itineraries, StrategyForSortKey(query.SortBy), query.SortDir)

					if len(itineraries) == 0 {
						log.Info().
							Str("from", query.FromCity).
							Str("to", query.ToCity).
							Msg("No itineraries satisfy the constraints")
						return nil
					}

					for _, itinerary := range itineraries {
						pretty.Println(itinerary)
					}

					return nil
				},
			},
		},
	}
}
