package geotransform

import (
	"math"

	"github.com/airbusgeo/geotransform/internal/utils/affine"
	"github.com/airbusgeo/geotransform/internal/utils/linalg"
	"gonum.org/v1/gonum/mat"
)

const rstParameterCount = 4

// RSTGT is a rotation, uniform scale and translation transformation:
//
//	X = a*x - b*y + c
//	Y = b*x + a*y + d
//
// Parameters are stored as [a, b, c, d], with a = s.cos(θ) and b = s.sin(θ).
// The inverse parameters are the algebraic inverse of the direct ones.
type RSTGT struct{}

func (RSTGT) Name() string {
	return ModelRST.String()
}

func (RSTGT) MinRequiredTiePoints() int {
	return 2
}

func (RSTGT) ParameterCount() int {
	return rstParameterCount
}

func (RSTGT) IsValid(params *Parameters) bool {
	return params.hasSize(rstParameterCount)
}

func (g RSTGT) Clone() Strategy {
	return RSTGT{}
}

func (g RSTGT) DirectMap(params *Parameters, source Coordinate2D) (Coordinate2D, error) {
	if err := checkParameters(g, params); err != nil {
		return Coordinate2D{}, err
	}
	return rstMap(params.DirectParameters, source), nil
}

func (g RSTGT) InverseMap(params *Parameters, target Coordinate2D) (Coordinate2D, error) {
	if err := checkParameters(g, params); err != nil {
		return Coordinate2D{}, err
	}
	return rstMap(params.InverseParameters, target), nil
}

func rstMap(p []float64, c Coordinate2D) Coordinate2D {
	return Coordinate2D{X: p[0]*c.X - p[1]*c.Y + p[2], Y: p[1]*c.X + p[0]*c.Y + p[3]}
}

// rstParameters extracts [a, b, c, d] from an affine transform with the RST layout
func rstParameters(a *affine.Affine) []float64 {
	rm := a.RowMajor()
	return []float64{rm[0], rm[3], rm[2], rm[5]}
}

// Estimate solves the normal equations (AᵀA).X = AᵀL with two coupled rows per tie point,
// built from the normalized coordinates (see normalization):
//
//	[x -y 1 0] . X = tx
//	[y  x 0 1] . X = ty
//
// The normalization is isotropic, so the denormalized transform keeps the RST layout.
// The inverse parameters are the algebraic inverse of the result.
func (g RSTGT) Estimate(tiePoints []TiePoint) (*Parameters, error) {
	if err := checkTiePoints(g, tiePoints); err != nil {
		return nil, err
	}
	set := NewTiePointSet(tiePoints...)
	src, dst := newNormalization(set.Sources()), newNormalization(set.Targets())

	n := set.Len()
	a := mat.NewDense(2*n, rstParameterCount, nil)
	l := mat.NewVecDense(2*n, nil)
	for i := 0; i < n; i++ {
		s, t := src.apply(set.At(i).Source), dst.apply(set.At(i).Target)
		a.Set(2*i, 0, s.X)
		a.Set(2*i, 1, -s.Y)
		a.Set(2*i, 2, 1)
		l.SetVec(2*i, t.X)

		a.Set(2*i+1, 0, s.Y)
		a.Set(2*i+1, 1, s.X)
		a.Set(2*i+1, 3, 1)
		l.SetVec(2*i+1, t.Y)
	}

	x, err := linalg.SolveNormalEquations(a, l)
	if err != nil {
		return nil, NewSingularSystem(DirectionDirect, "%s: %v", g.Name(), err)
	}
	p := x.RawVector().Data

	direct, inverse, err := denormalizeAffine(affine.FromRowMajor(p[0], -p[1], p[2], p[1], p[0], p[3]), src, dst)
	if err != nil {
		return nil, NewSingularSystem(DirectionInverse, "%s: %v", g.Name(), err)
	}

	return &Parameters{
		TiePoints:         set.TiePoints(),
		DirectParameters:  rstParameters(direct),
		InverseParameters: rstParameters(inverse),
	}, nil
}

// RSTRotationScale returns the rotation (radians) and the uniform scale of RST parameters
func RSTRotationScale(params []float64) (rotation, scale float64, err error) {
	if len(params) != rstParameterCount {
		return 0, 0, NewInvalidParameters("RSTRotationScale: expecting %d parameters, got %d", rstParameterCount, len(params))
	}
	scale = math.Hypot(params[0], params[1])
	if scale == 0 {
		return 0, 0, NewDecompositionFailed("RSTRotationScale: null scale")
	}
	return math.Atan2(params[1], params[0]), scale, nil
}
