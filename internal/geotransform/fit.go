package geotransform

import (
	"time"

	"github.com/google/uuid"
)

// Fit is an estimated transformation: the name of the strategy and its parameters.
// It is the unit of persistence: the strategy can be rebuilt from Model with a Registry.
type Fit struct {
	ID         uuid.UUID   `json:"id"`
	Model      string      `json:"model"`
	Parameters *Parameters `json:"parameters"`
	Quality    Quality     `json:"quality"`
	// Inliers are the indices of the tie points kept by the filter (nil if not filtered)
	Inliers   []int     `json:"inliers,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFit creates a fit of the strategy with a new ID and evaluates its quality
func NewFit(s Strategy, params *Parameters) (*Fit, error) {
	quality, err := Evaluate(s, params)
	if err != nil {
		return nil, err
	}
	return &Fit{
		ID:         uuid.New(),
		Model:      s.Name(),
		Parameters: params,
		Quality:    quality,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Strategy builds the strategy of the fit using the registry and checks that the parameters are valid
func (f *Fit) Strategy(r *Registry) (Strategy, error) {
	s, err := r.Build(f.Model)
	if err != nil {
		return nil, err
	}
	if err := checkParameters(s, f.Parameters); err != nil {
		return nil, err
	}
	return s, nil
}
