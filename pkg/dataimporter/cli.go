package dataimporter

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/railscout/railscout/pkg/database"
	"github.com/railscout/railscout/pkg/dataimporter/datasets"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Import timetable datasets into the network",
		Subcommands: []*cli.Command{
			{
				Name:      "dataset",
				Usage:     "Import a registered dataset",
				ArgsUsage: "<identifier>",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					dataset, err := datasets.GetDataSet(c.Args().First())
					if err != nil {
						return err
					}

					file, err := os.Open(dataset.Source)
					if err != nil {
						return err
					}
					defer file.Close()

					log.Info().
						Str("dataset", dataset.Identifier).
						Str("source", dataset.Source).
						Msg("Importing dataset")

					return ImportFile(file, dataset.Format)
				},
			},
			{
				Name:      "file",
				Usage:     "Import a timetable file",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: string(datasets.DataSetFormatRailCSV),
						Usage: "format of the source file",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					file, err := os.Open(c.Args().First())
					if err != nil {
						return err
					}
					defer file.Close()

					return ImportFile(file, datasets.DataSetFormat(c.String("format")))
				},
			},
		},
	}
}
