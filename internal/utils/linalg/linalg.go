// Package linalg wraps the few gonum operations needed to fit transformations:
// normal-equation least squares, small matrix inversion and SVD pseudo-inverse.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a matrix is not invertible (or not full rank)
// to the numerical tolerance of the package.
var ErrSingular = errors.New("singular matrix")

// Inverse returns the inverse of the square matrix a.
// Inverse returns ErrSingular if a is singular, if its condition number exceeds
// mat.ConditionTolerance or if the result is not finite.
func Inverse(a mat.Matrix) (*mat.Dense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("Inverse: matrix is not square (%dx%d)", r, c)
	}
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return nil, fmt.Errorf("Inverse: %w (%v)", ErrSingular, err)
	}
	if !IsFinite(&inv) {
		return nil, fmt.Errorf("Inverse: %w (non-finite result)", ErrSingular)
	}
	return &inv, nil
}

// SolveNormalEquations solves the least-squares problem A.X = L by inverting
// the normal matrix AᵀA: X = (AᵀA)⁻¹.AᵀL
func SolveNormalEquations(a *mat.Dense, l *mat.VecDense) (*mat.VecDense, error) {
	var ata mat.Dense
	ata.Mul(a.T(), a)

	ataInv, err := Inverse(&ata)
	if err != nil {
		return nil, fmt.Errorf("SolveNormalEquations.%w", err)
	}

	var atl mat.VecDense
	atl.MulVec(a.T(), l)

	var x mat.VecDense
	x.MulVec(ataInv, &atl)
	if !IsFinite(&x) {
		return nil, fmt.Errorf("SolveNormalEquations: %w (non-finite solution)", ErrSingular)
	}
	return &x, nil
}

// PseudoInverse computes the Moore-Penrose pseudo-inverse of a (m x n, m >= n)
// using its singular value decomposition.
// PseudoInverse returns ErrSingular if a is rank deficient.
func PseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	m, n := a.Dims()
	if m < n {
		return nil, fmt.Errorf("PseudoInverse: %w (%d rows < %d columns)", ErrSingular, m, n)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("PseudoInverse: %w (svd factorization failed)", ErrSingular)
	}
	values := svd.Values(nil)
	if len(values) == 0 || values[0] == 0 || math.IsNaN(values[0]) {
		return nil, fmt.Errorf("PseudoInverse: %w (null matrix)", ErrSingular)
	}

	// Same rank tolerance as numpy/matlab: max(m, n) * eps * sigma_max
	tol := float64(m) * values[0] * epsilon
	for i, v := range values {
		if v <= tol {
			return nil, fmt.Errorf("PseudoInverse: %w (rank %d < %d)", ErrSingular, i, n)
		}
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// A⁺ = V.Σ⁻¹.Uᵀ
	sigmaInv := mat.NewDense(n, n, nil)
	for i, s := range values {
		sigmaInv.Set(i, i, 1/s)
	}
	var vs, pinv mat.Dense
	vs.Mul(&v, sigmaInv)
	pinv.Mul(&vs, u.T())
	if !IsFinite(&pinv) {
		return nil, fmt.Errorf("PseudoInverse: %w (non-finite result)", ErrSingular)
	}
	return &pinv, nil
}

// LeastSquares solves A.X = L using the pseudo-inverse of A.
func LeastSquares(a *mat.Dense, l *mat.VecDense) (*mat.VecDense, error) {
	pinv, err := PseudoInverse(a)
	if err != nil {
		return nil, fmt.Errorf("LeastSquares.%w", err)
	}
	var x mat.VecDense
	x.MulVec(pinv, l)
	return &x, nil
}

// IsFinite returns true if no element of m is NaN or Inf
func IsFinite(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

const epsilon = 2.220446049250313e-16
