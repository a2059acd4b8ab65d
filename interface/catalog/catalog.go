package catalog

import (
	"context"
	"errors"

	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/google/uuid"
)

var (
	ErrFitNotFound = errors.New("fit not found")
)

// Catalog stores the fits
type Catalog interface {
	// Put inserts or replaces the fit with the same ID
	Put(ctx context.Context, fit *geotransform.Fit) error
	// Get returns ErrFitNotFound if the fit does not exist
	Get(ctx context.Context, id uuid.UUID) (*geotransform.Fit, error)
	// List returns all the fits, ordered by creation date
	List(ctx context.Context) ([]*geotransform.Fit, error)
	// Delete returns ErrFitNotFound if the fit does not exist
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}
