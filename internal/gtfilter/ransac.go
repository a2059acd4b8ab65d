// Package gtfilter removes outlier tie points before the estimation of a geometric transformation.
package gtfilter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/airbusgeo/geotransform/internal/log"
	"github.com/airbusgeo/geotransform/internal/utils"
	"go.uber.org/zap"
)

const (
	DefaultMaxIterations = 1000
	DefaultConfidence    = 0.99
)

// ErrNoConsensus is returned when no sample gathers enough inliers to estimate the transformation
var ErrNoConsensus = errors.New("no consensus")

// RANSAC configures a random sample consensus filter.
//
// Each iteration estimates the parameters from a random minimal sample of tie points.
// A tie point is an inlier of the sample if its direct mapping error is below MaxDirectError
// and its inverse mapping error is below MaxInverseError.
// The parameters are finally re-estimated using all the inliers of the best sample.
type RANSAC struct {
	// MaxIterations is an upper bound of the number of samples (default: DefaultMaxIterations)
	MaxIterations int
	// MaxDirectError is the tolerance on the direct mapping error, in target units
	MaxDirectError float64
	// MaxInverseError is the tolerance on the inverse mapping error, in source units (default: MaxDirectError)
	MaxInverseError float64
	// Confidence is the probability to draw at least one sample without outlier.
	// It is used to stop the iterations early (default: DefaultConfidence)
	Confidence float64
	// Seed of the random generator: the same seed gives the same result
	Seed int64
}

// Result of the filter
type Result struct {
	// Parameters estimated with the inliers
	Parameters *geotransform.Parameters
	// Inliers are the indices of the inlier tie points, in increasing order
	Inliers []int
	// Iterations is the number of samples that were drawn
	Iterations int
}

// Outliers returns the indices of the tie points that are not inliers
func (r *Result) Outliers(n int) []int {
	outliers := make([]int, 0, n-len(r.Inliers))
	j := 0
	for i := 0; i < n; i++ {
		if j < len(r.Inliers) && r.Inliers[j] == i {
			j++
			continue
		}
		outliers = append(outliers, i)
	}
	return outliers
}

func (r RANSAC) withDefaults() (RANSAC, error) {
	if r.MaxDirectError <= 0 || math.IsNaN(r.MaxDirectError) {
		return r, fmt.Errorf("MaxDirectError must be positive, got %f", r.MaxDirectError)
	}
	if r.MaxInverseError <= 0 {
		r.MaxInverseError = r.MaxDirectError
	}
	if r.MaxIterations <= 0 {
		r.MaxIterations = DefaultMaxIterations
	}
	if r.Confidence <= 0 || r.Confidence >= 1 {
		r.Confidence = DefaultConfidence
	}
	return r, nil
}

// requiredIterations returns the number of samples needed to draw one sample without outlier
// with the given confidence
func requiredIterations(confidence, inlierRatio float64, sampleSize int) int {
	p := math.Pow(inlierRatio, float64(sampleSize))
	switch {
	case p >= 1:
		return 1
	case p <= 0:
		return math.MaxInt32
	}
	n := math.Ceil(math.Log(1-confidence) / math.Log(1-p))
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

type consensus struct {
	inliers []int
	// sum of the direct and inverse errors of the inliers, used to break ties
	residual float64
}

func (c consensus) betterThan(o consensus) bool {
	return len(c.inliers) > len(o.inliers) || (len(c.inliers) == len(o.inliers) && c.residual < o.residual)
}

func (r RANSAC) consensus(s geotransform.Strategy, params *geotransform.Parameters, tiePoints []geotransform.TiePoint) (consensus, error) {
	var c consensus
	for i, tp := range tiePoints {
		direct, err := geotransform.DirectMappingError(s, params, tp)
		if err != nil {
			return c, err
		}
		inverse, err := geotransform.InverseMappingError(s, params, tp)
		if err != nil {
			return c, err
		}
		if direct <= r.MaxDirectError && inverse <= r.MaxInverseError {
			c.inliers = append(c.inliers, i)
			c.residual += direct + inverse
		}
	}
	return c, nil
}

func subset(tiePoints []geotransform.TiePoint, indices []int) []geotransform.TiePoint {
	res := make([]geotransform.TiePoint, len(indices))
	for i, idx := range indices {
		res[i] = tiePoints[idx]
	}
	return res
}

// Apply filters the tie points and estimates the parameters of the strategy with the inliers.
// Samples whose estimation fails with SingularSystem are skipped.
// It returns InsufficientTiePoints if there are less tie points than required by the strategy
// and ErrNoConsensus if no sample can be estimated or has enough inliers.
func (r RANSAC) Apply(ctx context.Context, s geotransform.Strategy, tiePoints []geotransform.TiePoint) (*Result, error) {
	r, err := r.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("RANSAC.%w", err)
	}
	n, m := len(tiePoints), s.MinRequiredTiePoints()
	if n < m {
		return nil, geotransform.NewInsufficientTiePoints(s.Name(), n, m)
	}

	logger := log.Logger(ctx).With(zap.String(log.KeyModel, s.Name()), zap.Int(log.KeyTiePoints, n))
	rng := rand.New(rand.NewSource(r.Seed))

	var best consensus
	limit, it, skipped := r.MaxIterations, 0, 0
	for ; it < limit; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sample := rng.Perm(n)[:m]
		params, err := s.Estimate(subset(tiePoints, sample))
		if err != nil {
			if geotransform.IsError(err, geotransform.SingularSystem) {
				skipped++
				continue
			}
			return nil, fmt.Errorf("RANSAC.%w", err)
		}
		c, err := r.consensus(s, params, tiePoints)
		if err != nil {
			return nil, fmt.Errorf("RANSAC.%w", err)
		}
		if c.betterThan(best) {
			best = c
			limit = utils.MinI(r.MaxIterations, requiredIterations(r.Confidence, float64(len(best.inliers))/float64(n), m))
		}
	}

	if len(best.inliers) < m {
		return nil, fmt.Errorf("RANSAC: %w (%d iterations, %d degenerated samples, best sample has %d inliers)", ErrNoConsensus, it, skipped, len(best.inliers))
	}

	params, err := s.Estimate(subset(tiePoints, best.inliers))
	if err != nil {
		return nil, fmt.Errorf("RANSAC.%w", err)
	}
	logger.Debug("ransac done", zap.Int("iterations", it), zap.Int("degenerated", skipped), zap.Int("inliers", len(best.inliers)))

	return &Result{
		Parameters: params,
		Inliers:    best.inliers,
		Iterations: it,
	}, nil
}
