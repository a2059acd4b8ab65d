package geotransform

import (
	"errors"
	"fmt"
)

type ErrorCode int

const (
	InsufficientTiePoints ErrorCode = iota
	SingularSystem
	InvalidParameters
	UnknownStrategy
	DecompositionFailed
)

// Access details
const (
	DetailSingularSystemDirection = 0
	DetailUnknownStrategyName     = 0
)

// Direction of a fit, used as detail of SingularSystem errors
const (
	DirectionDirect  = "direct"
	DirectionInverse = "inverse"
)

type GeotransformError struct {
	code    ErrorCode
	desc    string
	details []string
}

// NewInsufficientTiePoints creates a new error stating that fewer tie points than required were supplied
func NewInsufficientTiePoints(strategy string, got, required int) error {
	return GeotransformError{code: InsufficientTiePoints, desc: fmt.Sprintf("%s requires at least %d tie points, got %d", strategy, required, got)}
}

// NewSingularSystem creates a new error stating that the system of the given direction cannot be solved
func NewSingularSystem(direction, desc string, a ...interface{}) error {
	return GeotransformError{code: SingularSystem, desc: fmt.Sprintf(desc, a...), details: []string{direction}}
}

// NewInvalidParameters creates a new error stating that the parameters do not fit the strategy
func NewInvalidParameters(desc string, a ...interface{}) error {
	return GeotransformError{code: InvalidParameters, desc: fmt.Sprintf(desc, a...)}
}

// NewUnknownStrategy creates a new error stating that no strategy is registered with this name
func NewUnknownStrategy(name string) error {
	return GeotransformError{code: UnknownStrategy, desc: fmt.Sprintf("no strategy registered with name '%s'", name), details: []string{name}}
}

// NewDecompositionFailed creates a new error stating that the parameters cannot be decomposed
func NewDecompositionFailed(desc string, a ...interface{}) error {
	return GeotransformError{code: DecompositionFailed, desc: fmt.Sprintf(desc, a...)}
}

// Error implements error
func (e GeotransformError) Error() string {
	var s string
	switch e.code {
	case InsufficientTiePoints:
		s = "InsufficientTiePoints"
	case SingularSystem:
		s = "SingularSystem"
	case InvalidParameters:
		s = "InvalidParameters"
	case UnknownStrategy:
		s = "UnknownStrategy"
	case DecompositionFailed:
		s = "DecompositionFailed"
	}
	return s + ": " + e.desc
}

// Desc returns a description of the error
func (e GeotransformError) Desc() string {
	return e.desc
}

// Code returns the code of the error
func (e GeotransformError) Code() ErrorCode {
	return e.code
}

// Detail returns a detail of the error (see const above)
func (e GeotransformError) Detail(i int) string {
	if i < 0 || i >= len(e.details) {
		return ""
	}
	return e.details[i]
}

// IsError tests whether error is a GeotransformError
func IsError(err error, code ErrorCode) bool {
	var gterr GeotransformError
	return errors.As(err, &gterr) && gterr.Code() == code
}

// AsError tests whether error is a GeotransformError and returns it
func AsError(err error, code ErrorCode) (GeotransformError, bool) {
	var gterr GeotransformError
	ok := errors.As(err, &gterr) && gterr.Code() == code
	return gterr, ok
}
