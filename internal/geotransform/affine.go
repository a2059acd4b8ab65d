package geotransform

import (
	"fmt"

	"github.com/airbusgeo/geotransform/internal/utils/affine"
	"github.com/airbusgeo/geotransform/internal/utils/linalg"
	"gonum.org/v1/gonum/mat"
)

const affineParameterCount = 6

// AffineGT is a first-degree transformation:
//
//	X = a*x + b*y + c
//	Y = d*x + e*y + f
//
// Parameters are stored as [a, b, c, d, e, f].
// The inverse parameters are the algebraic inverse of the direct ones.
type AffineGT struct{}

func (AffineGT) Name() string {
	return ModelAffine.String()
}

func (AffineGT) MinRequiredTiePoints() int {
	return 3
}

func (AffineGT) ParameterCount() int {
	return affineParameterCount
}

func (AffineGT) IsValid(params *Parameters) bool {
	return params.hasSize(affineParameterCount)
}

func (g AffineGT) Clone() Strategy {
	return AffineGT{}
}

func (g AffineGT) DirectMap(params *Parameters, source Coordinate2D) (Coordinate2D, error) {
	if err := checkParameters(g, params); err != nil {
		return Coordinate2D{}, err
	}
	return affineMap(params.DirectParameters, source), nil
}

func (g AffineGT) InverseMap(params *Parameters, target Coordinate2D) (Coordinate2D, error) {
	if err := checkParameters(g, params); err != nil {
		return Coordinate2D{}, err
	}
	return affineMap(params.InverseParameters, target), nil
}

// affineMap maps c with the row-major parameters [a, b, c, d, e, f]
func affineMap(p []float64, c Coordinate2D) Coordinate2D {
	return Coordinate2D{X: p[0]*c.X + p[1]*c.Y + p[2], Y: p[3]*c.X + p[4]*c.Y + p[5]}
}

// Estimate solves the normal equations (AᵀA).X = AᵀL with two rows per tie point,
// built from the normalized coordinates (see normalization):
//
//	[x y 1 0 0 0] . X = tx
//	[0 0 0 x y 1] . X = ty
//
// The inverse parameters are the algebraic inverse of the result.
func (g AffineGT) Estimate(tiePoints []TiePoint) (*Parameters, error) {
	if err := checkTiePoints(g, tiePoints); err != nil {
		return nil, err
	}
	set := NewTiePointSet(tiePoints...)
	src, dst := newNormalization(set.Sources()), newNormalization(set.Targets())

	n := set.Len()
	a := mat.NewDense(2*n, affineParameterCount, nil)
	l := mat.NewVecDense(2*n, nil)
	for i := 0; i < n; i++ {
		s, t := src.apply(set.At(i).Source), dst.apply(set.At(i).Target)
		a.Set(2*i, 0, s.X)
		a.Set(2*i, 1, s.Y)
		a.Set(2*i, 2, 1)
		l.SetVec(2*i, t.X)

		a.Set(2*i+1, 3, s.X)
		a.Set(2*i+1, 4, s.Y)
		a.Set(2*i+1, 5, 1)
		l.SetVec(2*i+1, t.Y)
	}

	x, err := linalg.SolveNormalEquations(a, l)
	if err != nil {
		return nil, NewSingularSystem(DirectionDirect, "%s: %v", g.Name(), err)
	}
	p := x.RawVector().Data

	direct, inverse, err := denormalizeAffine(affine.FromRowMajor(p[0], p[1], p[2], p[3], p[4], p[5]), src, dst)
	if err != nil {
		return nil, NewSingularSystem(DirectionInverse, "%s: %v", g.Name(), err)
	}
	drm, irm := direct.RowMajor(), inverse.RowMajor()

	return &Parameters{
		TiePoints:         set.TiePoints(),
		DirectParameters:  drm[:],
		InverseParameters: irm[:],
	}, nil
}

// GeoTransform exports the direct parameters following the GDAL geotransform convention
func (g AffineGT) GeoTransform(params *Parameters) (*affine.Affine, error) {
	if err := checkParameters(g, params); err != nil {
		return nil, fmt.Errorf("GeoTransform.%w", err)
	}
	p := params.DirectParameters
	return affine.FromRowMajor(p[0], p[1], p[2], p[3], p[4], p[5]), nil
}
