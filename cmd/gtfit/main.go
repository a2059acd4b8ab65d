package main

import (
	"context"
	"os"
	"runtime"

	"github.com/airbusgeo/geotransform/interface/catalog"
	"github.com/airbusgeo/geotransform/interface/catalog/bolt"
	"github.com/airbusgeo/geotransform/interface/storage/filesystem"
	"github.com/airbusgeo/geotransform/internal/log"
	"github.com/airbusgeo/geotransform/internal/svc"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var (
	service *svc.Service
	cat     catalog.Catalog
)

func setupService(ctx context.Context, c *cli.Context) error {
	if c.Bool("log-console") {
		log.Console()
	}
	storage, err := filesystem.NewFileSystemStrategy(ctx)
	if err != nil {
		return err
	}
	if path := c.String("catalog"); path != "" {
		if cat, err = bolt.New(ctx, path); err != nil {
			return err
		}
	}
	service, err = svc.New(nil, storage, cat, c.Int("workers"))
	return err
}

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Logger(ctx).Warn("failed to load .env", zap.Error(err))
	}

	app := cli.NewApp()
	app.Name = "gtfit"
	app.Usage = "estimate geometric transformations from tie points"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "log-console",
			Usage:  "human-readable logs (default: json)",
			EnvVar: "GTFIT_LOG_CONSOLE",
		},
		cli.StringFlag{
			Name:   "catalog",
			Usage:  "path to the catalog of fits (bolt database)",
			EnvVar: "GTFIT_CATALOG",
		},
		cli.IntFlag{
			Name:   "workers",
			Value:  runtime.NumCPU(),
			Usage:  "number of parallel workers to map points",
			EnvVar: "GTFIT_WORKERS",
		},
	}
	app.Before = func(c *cli.Context) error {
		return setupService(ctx, c)
	}
	app.After = func(c *cli.Context) error {
		if cat != nil {
			return cat.Close()
		}
		return nil
	}

	fitFlags := []cli.Flag{
		cli.StringFlag{Name: "fit", Usage: "path to a fit document (see fit --out)"},
		cli.StringFlag{Name: "id", Usage: "id of a fit of the catalog (requires --catalog)"},
	}

	app.Commands = []cli.Command{
		{
			Name:   "models",
			Usage:  "list the available models",
			Action: cliModels,
		},
		{
			Name:        "fit",
			Usage:       "estimate a transformation from tie points",
			Action:      cliFit,
			Description: "ex: gtfit fit --model Affine --tiepoints gcp.csv --out fit.json --ransac --max-error 0.5",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "model", Value: "Affine", Usage: "name of the model (see models)"},
				cli.StringFlag{Name: "tiepoints", Usage: "tie points file (.csv, .json or .geojson)"},
				cli.StringFlag{Name: "out", Usage: "write the fit to this file"},
				cli.BoolFlag{Name: "store", Usage: "store the fit in the catalog"},
				cli.BoolFlag{Name: "ransac", Usage: "remove the outliers before the estimation"},
				cli.Float64Flag{Name: "max-error", Value: 1, Usage: "ransac: tolerance on the mapping errors"},
				cli.IntFlag{Name: "max-iterations", Usage: "ransac: maximum number of iterations"},
				cli.Int64Flag{Name: "seed", Usage: "ransac: seed of the random generator"},
			},
		},
		{
			Name:        "map",
			Usage:       "map coordinates",
			Action:      cliMap,
			Description: "ex: gtfit map --fit fit.json 10.5,20 30,40",
			ArgsUsage:   "x,y [x,y...]",
			Flags:       append([]cli.Flag{cli.BoolFlag{Name: "inverse", Usage: "map from target to source"}}, fitFlags...),
		},
		{
			Name:   "decompose",
			Usage:  "decompose an affine or RST fit",
			Action: cliDecompose,
			Flags:  fitFlags,
		},
		{
			Name:  "catalog",
			Usage: "manage the catalog of fits",
			Subcommands: []cli.Command{
				{
					Name:   "list",
					Usage:  "list the fits",
					Action: cliListFits,
				},
				{
					Name:   "get",
					Usage:  "print a fit",
					Action: cliGetFit,
					Flags:  []cli.Flag{cli.StringFlag{Name: "id"}},
				},
				{
					Name:   "delete",
					Usage:  "delete a fit",
					Action: cliDeleteFit,
					Flags:  []cli.Flag{cli.StringFlag{Name: "id"}},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Logger(ctx).Fatal("gtfit", zap.Error(err))
	}
}
