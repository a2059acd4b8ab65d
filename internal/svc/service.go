package svc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/airbusgeo/geotransform/interface/catalog"
	"github.com/airbusgeo/geotransform/interface/storage"
	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/airbusgeo/geotransform/internal/gtfilter"
	"github.com/airbusgeo/geotransform/internal/log"
	"go.uber.org/zap"
)

var (
	ErrNoStorage = errors.New("no storage configured")
	ErrNoCatalog = errors.New("no catalog configured")
)

// Service implements the business logic on top of the geometric transformations
type Service struct {
	// registry is not safe for concurrent use
	registryLock sync.RWMutex
	registry     *geotransform.Registry
	storage      storage.Strategy
	catalog      catalog.Catalog
	workers      int
}

// New returns a new business service.
// If registry is nil, the default registry is used.
// storage and catalog are optional: the corresponding operations fail with ErrNoStorage and ErrNoCatalog.
func New(registry *geotransform.Registry, storage storage.Strategy, catalog catalog.Catalog, workers int) (*Service, error) {
	if registry == nil {
		registry = geotransform.NewDefaultRegistry()
	}
	if workers <= 0 {
		workers = 1
	}
	return &Service{registry: registry, storage: storage, catalog: catalog, workers: workers}, nil
}

// RegisterStrategy adds a strategy that can be used by name by Fit
func (svc *Service) RegisterStrategy(name string, ctor geotransform.Constructor) {
	svc.registryLock.Lock()
	defer svc.registryLock.Unlock()
	svc.registry.Register(name, ctor)
}

// Models returns the names of the registered strategies
func (svc *Service) Models() []string {
	svc.registryLock.RLock()
	defer svc.registryLock.RUnlock()
	return svc.registry.Names()
}

func (svc *Service) strategy(name string) (geotransform.Strategy, error) {
	svc.registryLock.RLock()
	defer svc.registryLock.RUnlock()
	return svc.registry.Build(name)
}

// fitStrategy returns the strategy of the fit, checking its parameters
func (svc *Service) fitStrategy(fit *geotransform.Fit) (geotransform.Strategy, error) {
	svc.registryLock.RLock()
	defer svc.registryLock.RUnlock()
	return fit.Strategy(svc.registry)
}

// FitRequest describes an estimation
type FitRequest struct {
	Model     string
	TiePoints []geotransform.TiePoint
	// Filter is optional. If set, the outliers are removed before the final estimation
	Filter *gtfilter.RANSAC
}

// Fit estimates the parameters of the requested model and evaluates their quality
func (svc *Service) Fit(ctx context.Context, req FitRequest) (*geotransform.Fit, error) {
	s, err := svc.strategy(req.Model)
	if err != nil {
		return nil, fmt.Errorf("Fit.%w", err)
	}
	ctx = log.WithFields(ctx, zap.String(log.KeyModel, s.Name()), zap.Int(log.KeyTiePoints, len(req.TiePoints)))

	var (
		params  *geotransform.Parameters
		inliers []int
	)
	if req.Filter != nil {
		res, err := req.Filter.Apply(ctx, s, req.TiePoints)
		if err != nil {
			return nil, fmt.Errorf("Fit.%w", err)
		}
		params, inliers = res.Parameters, res.Inliers
	} else if params, err = s.Estimate(req.TiePoints); err != nil {
		return nil, fmt.Errorf("Fit.%w", err)
	}

	fit, err := geotransform.NewFit(s, params)
	if err != nil {
		return nil, fmt.Errorf("Fit.%w", err)
	}
	fit.Model = req.Model
	fit.Inliers = inliers

	log.Logger(ctx).Info("fit estimated",
		zap.Stringer(log.KeyFitID, fit.ID),
		zap.Float64("direct_rmse", fit.Quality.DirectRMSE),
		zap.Float64("inverse_rmse", fit.Quality.InverseRMSE),
		zap.Int("inliers", len(fit.Parameters.TiePoints)))
	return fit, nil
}

// Decompose returns the affine decomposition of an affine or an RST fit
func (svc *Service) Decompose(ctx context.Context, fit *geotransform.Fit) (geotransform.AffineDecomposition, error) {
	s, err := svc.fitStrategy(fit)
	if err != nil {
		return geotransform.AffineDecomposition{}, fmt.Errorf("Decompose.%w", err)
	}
	p := fit.Parameters.DirectParameters
	switch s.(type) {
	case geotransform.AffineGT:
	case geotransform.RSTGT:
		p = []float64{p[0], -p[1], p[2], p[1], p[0], p[3]}
	default:
		return geotransform.AffineDecomposition{}, geotransform.NewDecompositionFailed("Decompose: %s is not a linear model", fit.Model)
	}
	return geotransform.DecomposeAffine(p)
}
