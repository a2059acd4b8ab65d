package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/airbusgeo/geotransform/internal/gtfilter"
	"github.com/airbusgeo/geotransform/internal/svc"
	"github.com/airbusgeo/geotransform/internal/utils"
	"github.com/google/uuid"
	"github.com/urfave/cli"
)

func cliModels(c *cli.Context) error {
	for _, name := range service.Models() {
		fmt.Println(name)
	}
	return nil
}

func cliFit(c *cli.Context) error {
	ctx := context.Background()
	if !c.IsSet("tiepoints") {
		return fmt.Errorf("--tiepoints is required")
	}
	tps, err := service.LoadTiePoints(ctx, c.String("tiepoints"))
	if err != nil {
		return err
	}
	req := svc.FitRequest{Model: c.String("model"), TiePoints: tps}
	if c.Bool("ransac") {
		req.Filter = &gtfilter.RANSAC{
			MaxDirectError: c.Float64("max-error"),
			MaxIterations:  c.Int("max-iterations"),
			Seed:           c.Int64("seed"),
		}
	}
	fit, err := service.Fit(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("id:                %s\n", fit.ID)
	fmt.Printf("model:             %s\n", fit.Model)
	fmt.Printf("tie points:        %d/%d\n", len(fit.Parameters.TiePoints), len(tps))
	fmt.Printf("direct rmse:       %g\n", fit.Quality.DirectRMSE)
	fmt.Printf("inverse rmse:      %g\n", fit.Quality.InverseRMSE)
	fmt.Printf("max direct error:  %g\n", fit.Quality.MaxDirectError)
	fmt.Printf("max inverse error: %g\n", fit.Quality.MaxInverseError)

	if out := c.String("out"); out != "" {
		if err := service.SaveFit(ctx, out, fit); err != nil {
			return err
		}
	}
	if c.Bool("store") {
		return service.StoreFit(ctx, fit)
	}
	return nil
}

func getFit(ctx context.Context, c *cli.Context) (*geotransform.Fit, error) {
	switch {
	case c.IsSet("id"):
		id, err := uuid.Parse(c.String("id"))
		if err != nil {
			return nil, fmt.Errorf("invalid id: %w", err)
		}
		return service.GetFit(ctx, id)
	case c.IsSet("fit"):
		return service.LoadFit(ctx, c.String("fit"))
	}
	return nil, fmt.Errorf("--fit or --id is required")
}

func parseCoordinate(s string) (geotransform.Coordinate2D, error) {
	xy := strings.Split(s, ",")
	if len(xy) != 2 {
		return geotransform.Coordinate2D{}, fmt.Errorf("invalid coordinate %s (expecting x,y)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
	if err != nil {
		return geotransform.Coordinate2D{}, fmt.Errorf("invalid coordinate %s: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
	if err != nil {
		return geotransform.Coordinate2D{}, fmt.Errorf("invalid coordinate %s: %w", s, err)
	}
	return geotransform.Coordinate2D{X: x, Y: y}, nil
}

// formatCoordinate prints c as "x,y" with the full float precision, so that it can be parsed back
func formatCoordinate(c geotransform.Coordinate2D) string {
	return utils.F64ToS(c.X) + "," + utils.F64ToS(c.Y)
}

func cliMap(c *cli.Context) error {
	ctx := context.Background()
	fit, err := getFit(ctx, c)
	if err != nil {
		return err
	}
	coords := make([]geotransform.Coordinate2D, c.NArg())
	for i, arg := range c.Args() {
		if coords[i], err = parseCoordinate(arg); err != nil {
			return err
		}
	}
	res, err := service.MapPoints(ctx, fit, coords, c.Bool("inverse"))
	if err != nil {
		return err
	}
	for i := range res {
		fmt.Printf("%s -> %s\n", formatCoordinate(coords[i]), formatCoordinate(res[i]))
	}
	return nil
}

func cliDecompose(c *cli.Context) error {
	ctx := context.Background()
	fit, err := getFit(ctx, c)
	if err != nil {
		return err
	}
	d, err := service.Decompose(ctx, fit)
	if err != nil {
		return err
	}
	return printJSON(d)
}

func cliListFits(c *cli.Context) error {
	fits, err := service.ListFits(context.Background())
	if err != nil {
		return err
	}
	for _, fit := range fits {
		fmt.Printf("%s %-24s %s rmse=%g\n", fit.ID, fit.Model, fit.CreatedAt.Format("2006-01-02T15:04:05"), fit.Quality.DirectRMSE)
	}
	return nil
}

func cliGetFit(c *cli.Context) error {
	fit, err := getFit(context.Background(), c)
	if err != nil {
		return err
	}
	return printJSON(fit)
}

func cliDeleteFit(c *cli.Context) error {
	id, err := uuid.Parse(c.String("id"))
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	return service.DeleteFit(context.Background(), id)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
