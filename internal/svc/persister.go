package svc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/airbusgeo/geotransform/internal/log"
	"github.com/airbusgeo/geotransform/internal/tiepoints"
	"github.com/google/uuid"
)

// LoadTiePoints downloads the tie points from the storage and decodes them according to the extension of the uri
func (svc *Service) LoadTiePoints(ctx context.Context, uri string) ([]geotransform.TiePoint, error) {
	if svc.storage == nil {
		return nil, fmt.Errorf("LoadTiePoints: %w", ErrNoStorage)
	}
	data, err := svc.storage.Download(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("LoadTiePoints[%s]: %w", uri, err)
	}
	tps, err := tiepoints.Read(uri, data)
	if err != nil {
		return nil, fmt.Errorf("LoadTiePoints[%s]: %w", uri, err)
	}
	log.Logger(ctx).Sugar().Debugf("%d tie points loaded from %s", len(tps), uri)
	return tps, nil
}

// SaveFit writes the fit as a JSON document
func (svc *Service) SaveFit(ctx context.Context, uri string, fit *geotransform.Fit) error {
	if svc.storage == nil {
		return fmt.Errorf("SaveFit: %w", ErrNoStorage)
	}
	data, err := json.MarshalIndent(fit, "", "  ")
	if err != nil {
		return fmt.Errorf("SaveFit: %w", err)
	}
	if err := svc.storage.Upload(ctx, uri, data); err != nil {
		return fmt.Errorf("SaveFit[%s]: %w", uri, err)
	}
	log.Logger(log.WithFit(ctx, fit.ID, fit.Model)).Sugar().Debugf("fit saved to %s", uri)
	return nil
}

// LoadFit reads a fit written by SaveFit. Its model must be registered and its parameters valid.
func (svc *Service) LoadFit(ctx context.Context, uri string) (*geotransform.Fit, error) {
	if svc.storage == nil {
		return nil, fmt.Errorf("LoadFit: %w", ErrNoStorage)
	}
	data, err := svc.storage.Download(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("LoadFit[%s]: %w", uri, err)
	}
	fit := &geotransform.Fit{}
	if err := json.Unmarshal(data, fit); err != nil {
		return nil, fmt.Errorf("LoadFit[%s]: %w", uri, err)
	}
	if _, err := svc.fitStrategy(fit); err != nil {
		return nil, fmt.Errorf("LoadFit[%s].%w", uri, err)
	}
	return fit, nil
}

// StoreFit inserts the fit in the catalog
func (svc *Service) StoreFit(ctx context.Context, fit *geotransform.Fit) error {
	if svc.catalog == nil {
		return fmt.Errorf("StoreFit: %w", ErrNoCatalog)
	}
	if _, err := svc.fitStrategy(fit); err != nil {
		return fmt.Errorf("StoreFit.%w", err)
	}
	if err := svc.catalog.Put(ctx, fit); err != nil {
		return fmt.Errorf("StoreFit: %w", err)
	}
	log.Logger(log.WithFit(ctx, fit.ID, fit.Model)).Info("fit stored")
	return nil
}

// GetFit returns the fit from the catalog
func (svc *Service) GetFit(ctx context.Context, id uuid.UUID) (*geotransform.Fit, error) {
	if svc.catalog == nil {
		return nil, fmt.Errorf("GetFit: %w", ErrNoCatalog)
	}
	fit, err := svc.catalog.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("GetFit: %w", err)
	}
	return fit, nil
}

// ListFits returns all the fits of the catalog
func (svc *Service) ListFits(ctx context.Context) ([]*geotransform.Fit, error) {
	if svc.catalog == nil {
		return nil, fmt.Errorf("ListFits: %w", ErrNoCatalog)
	}
	fits, err := svc.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListFits: %w", err)
	}
	return fits, nil
}

// DeleteFit removes the fit from the catalog
func (svc *Service) DeleteFit(ctx context.Context, id uuid.UUID) error {
	if svc.catalog == nil {
		return fmt.Errorf("DeleteFit: %w", ErrNoCatalog)
	}
	if err := svc.catalog.Delete(ctx, id); err != nil {
		return fmt.Errorf("DeleteFit: %w", err)
	}
	log.Logger(log.With(ctx, log.KeyFitID, id.String())).Info("fit deleted")
	return nil
}
