package geotransform

import (
	"math"

	"github.com/airbusgeo/geotransform/internal/utils/affine"
	"github.com/airbusgeo/geotransform/internal/utils/linalg"
	"gonum.org/v1/gonum/mat"
)

// normalization maps coordinates to a frame centered on their centroid where the
// root mean square distance to the origin is 1: p' = (p - center) / scale.
// Strategies fit their parameters between the normalized frames, then express
// them back in the original ones.
type normalization struct {
	center Coordinate2D
	scale  float64
}

// newNormalization computes the centroid and the spread of cs.
// The scale falls back to 1 if the spread is null or not finite.
func newNormalization(cs []Coordinate2D) normalization {
	n := normalization{scale: 1}
	if len(cs) == 0 {
		return n
	}
	for _, c := range cs {
		n.center.X += c.X
		n.center.Y += c.Y
	}
	n.center.X /= float64(len(cs))
	n.center.Y /= float64(len(cs))

	var s float64
	for _, c := range cs {
		dx, dy := c.X-n.center.X, c.Y-n.center.Y
		s += dx*dx + dy*dy
	}
	if s = math.Sqrt(s / float64(len(cs))); s > 0 && !math.IsInf(s, 0) {
		n.scale = s
	}
	return n
}

func (n normalization) apply(c Coordinate2D) Coordinate2D {
	return Coordinate2D{X: (c.X - n.center.X) / n.scale, Y: (c.Y - n.center.Y) / n.scale}
}

// forward returns the transform p -> p'
func (n normalization) forward() *affine.Affine {
	return affine.Scale(1/n.scale, 1/n.scale).Multiply(affine.Translation(-n.center.X, -n.center.Y))
}

// backward returns the transform p' -> p
func (n normalization) backward() *affine.Affine {
	return affine.Translation(n.center.X, n.center.Y).Multiply(affine.Scale(n.scale, n.scale))
}

// denormalizeAffine expresses the transform fitted between the normalized frames
// in the original frames, and returns it with its algebraic inverse.
// It returns linalg.ErrSingular if the linear part of fitted is singular or ill-conditioned.
func denormalizeAffine(fitted *affine.Affine, src, dst normalization) (direct, inverse *affine.Affine, err error) {
	rm := fitted.RowMajor()
	if _, err := linalg.Inverse(mat.NewDense(2, 2, []float64{rm[0], rm[1], rm[3], rm[4]})); err != nil {
		return nil, nil, err
	}
	direct = dst.backward().Multiply(fitted.Multiply(src.forward()))
	if inverse, err = direct.Inverse(); err != nil {
		return nil, nil, err
	}
	return direct, inverse, nil
}

// denormalizePolynomial expresses the coefficients p of a second-degree polynomial of the
// normalized source coordinates as coefficients of the original ones.
// The output of the polynomial is then scaled and offset back to the original frame.
func denormalizePolynomial(p []float64, src normalization, offset, scale float64) []float64 {
	cx, cy, k := src.center.X, src.center.Y, src.scale
	k2 := k * k
	q := []float64{
		p[0] - (p[1]*cx+p[2]*cy)/k + (p[3]*cx*cy+p[4]*cx*cx+p[5]*cy*cy)/k2,
		p[1]/k - (p[3]*cy+2*p[4]*cx)/k2,
		p[2]/k - (p[3]*cx+2*p[5]*cy)/k2,
		p[3] / k2,
		p[4] / k2,
		p[5] / k2,
	}
	for i := range q {
		q[i] *= scale
	}
	q[0] += offset
	return q
}
