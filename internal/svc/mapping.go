package svc

import (
	"context"
	"fmt"

	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/airbusgeo/geotransform/internal/log"
	"github.com/airbusgeo/geotransform/internal/utils"
	"golang.org/x/sync/errgroup"
)

const mapBlockSize = 4096

type block struct {
	from, to int
}

// MapPoints maps the coordinates with the direct (or inverse) parameters of the fit.
// The coordinates are split into blocks mapped in parallel by the workers of the service,
// which share the parameters of the fit: fit must not be modified during the call.
func (svc *Service) MapPoints(ctx context.Context, fit *geotransform.Fit, coords []geotransform.Coordinate2D, inverse bool) ([]geotransform.Coordinate2D, error) {
	s, err := svc.fitStrategy(fit)
	if err != nil {
		return nil, fmt.Errorf("MapPoints.%w", err)
	}
	ctx = log.WithFit(ctx, fit.ID, fit.Model)
	mapFn := s.DirectMap
	if inverse {
		mapFn = s.InverseMap
	}

	res := make([]geotransform.Coordinate2D, len(coords))
	blocks := make(chan block, len(coords)/mapBlockSize+1)
	for from := 0; from < len(coords); from += mapBlockSize {
		blocks <- block{from: from, to: utils.MinI(from+mapBlockSize, len(coords))}
	}
	close(blocks)

	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < utils.MinI(svc.workers, len(blocks)); i++ {
		g.Go(func() error {
			for b := range blocks {
				if err := gCtx.Err(); err != nil {
					return err
				}
				for j := b.from; j < b.to; j++ {
					c, err := mapFn(fit.Parameters, coords[j])
					if err != nil {
						return err
					}
					res[j] = c
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("MapPoints.%w", err)
	}
	log.Logger(ctx).Sugar().Debugf("%d points mapped (inverse: %t)", len(coords), inverse)
	return res, nil
}
