package geotransform

import (
	"github.com/airbusgeo/geotransform/internal/utils"
)

// Strategy is a 2D geometric transformation model that can be fitted from tie points.
// Implementations are stateless: they can be shared between goroutines, as well as
// the Parameters they estimate, as long as the arguments are not concurrently modified.
type Strategy interface {
	// Name of the strategy (e.g. "Affine")
	Name() string
	// MinRequiredTiePoints is the minimum number of tie points to estimate the parameters
	MinRequiredTiePoints() int
	// ParameterCount is the size of both the direct and the inverse parameter vectors
	ParameterCount() int
	// IsValid returns true if both parameter vectors have the size required by the strategy
	IsValid(params *Parameters) bool
	// DirectMap maps a coordinate from the source frame to the target frame
	DirectMap(params *Parameters, source Coordinate2D) (Coordinate2D, error)
	// InverseMap maps a coordinate from the target frame to the source frame
	InverseMap(params *Parameters, target Coordinate2D) (Coordinate2D, error)
	// Estimate fits the direct and inverse parameters from the tie points
	Estimate(tiePoints []TiePoint) (*Parameters, error)
	// Clone returns a new instance of the strategy
	Clone() Strategy
}

// checkTiePoints returns InsufficientTiePoints if there are not enough tie points for s
func checkTiePoints(s Strategy, tiePoints []TiePoint) error {
	if len(tiePoints) < s.MinRequiredTiePoints() {
		return NewInsufficientTiePoints(s.Name(), len(tiePoints), s.MinRequiredTiePoints())
	}
	return nil
}

// checkParameters returns InvalidParameters if params are not valid for s
func checkParameters(s Strategy, params *Parameters) error {
	if !s.IsValid(params) {
		if params.IsEmpty() {
			return NewInvalidParameters("%s: parameters have not been estimated", s.Name())
		}
		return NewInvalidParameters("%s: expecting %d direct and inverse parameters, got %d and %d",
			s.Name(), s.ParameterCount(), len(params.DirectParameters), len(params.InverseParameters))
	}
	return nil
}

// DirectMappingError returns the distance between the target of the tie point
// and its source mapped with the direct parameters
func DirectMappingError(s Strategy, params *Parameters, tp TiePoint) (float64, error) {
	c, err := s.DirectMap(params, tp.Source)
	if err != nil {
		return 0, err
	}
	return c.Distance(tp.Target), nil
}

// InverseMappingError returns the distance between the source of the tie point
// and its target mapped with the inverse parameters
func InverseMappingError(s Strategy, params *Parameters, tp TiePoint) (float64, error) {
	c, err := s.InverseMap(params, tp.Target)
	if err != nil {
		return 0, err
	}
	return c.Distance(tp.Source), nil
}

func mappingErrors(s Strategy, params *Parameters, tiePoints []TiePoint, inverse bool) ([]float64, error) {
	errs := make([]float64, len(tiePoints))
	for i, tp := range tiePoints {
		var err error
		if inverse {
			errs[i], err = InverseMappingError(s, params, tp)
		} else {
			errs[i], err = DirectMappingError(s, params, tp)
		}
		if err != nil {
			return nil, err
		}
	}
	return errs, nil
}

// DirectMapRMSE returns the root mean square of the direct mapping errors of the tie points
func DirectMapRMSE(s Strategy, params *Parameters, tiePoints []TiePoint) (float64, error) {
	errs, err := mappingErrors(s, params, tiePoints, false)
	if err != nil {
		return 0, err
	}
	return utils.RootMeanSquare(errs), nil
}

// InverseMapRMSE returns the root mean square of the inverse mapping errors of the tie points
func InverseMapRMSE(s Strategy, params *Parameters, tiePoints []TiePoint) (float64, error) {
	errs, err := mappingErrors(s, params, tiePoints, true)
	if err != nil {
		return 0, err
	}
	return utils.RootMeanSquare(errs), nil
}

// MaxDirectMappingError returns the largest direct mapping error of the tie points
func MaxDirectMappingError(s Strategy, params *Parameters, tiePoints []TiePoint) (float64, error) {
	errs, err := mappingErrors(s, params, tiePoints, false)
	if err != nil {
		return 0, err
	}
	return utils.MaxElemF(errs), nil
}

// MaxInverseMappingError returns the largest inverse mapping error of the tie points
func MaxInverseMappingError(s Strategy, params *Parameters, tiePoints []TiePoint) (float64, error) {
	errs, err := mappingErrors(s, params, tiePoints, true)
	if err != nil {
		return 0, err
	}
	return utils.MaxElemF(errs), nil
}

// Quality summarizes the residuals of a fit on its tie points
type Quality struct {
	DirectRMSE      float64 `json:"direct_rmse"`
	InverseRMSE     float64 `json:"inverse_rmse"`
	MaxDirectError  float64 `json:"max_direct_error"`
	MaxInverseError float64 `json:"max_inverse_error"`
}

// Evaluate computes the quality of the parameters on their own tie points
func Evaluate(s Strategy, params *Parameters) (Quality, error) {
	if err := checkParameters(s, params); err != nil {
		return Quality{}, err
	}
	direct, err := mappingErrors(s, params, params.TiePoints, false)
	if err != nil {
		return Quality{}, err
	}
	inverse, err := mappingErrors(s, params, params.TiePoints, true)
	if err != nil {
		return Quality{}, err
	}
	return Quality{
		DirectRMSE:      utils.RootMeanSquare(direct),
		InverseRMSE:     utils.RootMeanSquare(inverse),
		MaxDirectError:  utils.MaxElemF(direct),
		MaxInverseError: utils.MaxElemF(inverse),
	}, nil
}
