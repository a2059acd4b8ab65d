// Package affine handles 2D affine transformations, following the GDAL geotransform convention:
//
//	X = GT[0] + x*GT[1] + y*GT[2]
//	Y = GT[3] + x*GT[4] + y*GT[5]
package affine

import (
	"errors"
	"math"
	"math/big"
)

// ErrNotInvertible is returned when the linear part of the transform has a null determinant
var ErrNotInvertible = errors.New("affine transform is not invertible")

// Affine follows the GDAL transform convention
type Affine [6]float64

func NewAffine(a, b, c, d, e, f float64) *Affine {
	res := Affine([6]float64{a, b, c, d, e, f})
	return &res
}

// FromRowMajor creates an affine from the coefficients of the row-major matrix
//
//	[a b c]
//	[d e f]
//
// such that X = a*x + b*y + c and Y = d*x + e*y + f
func FromRowMajor(a, b, c, d, e, f float64) *Affine {
	return NewAffine(c, a, b, f, d, e)
}

// Translation creates a translation transform from (offx, offy)
func Translation(offx, offy float64) *Affine {
	return NewAffine(offx, 1.0, 0, offy, 0, 1.0)
}

// Scale creates a scale transform from (scalex, scaley)
func Scale(scalex, scaley float64) *Affine {
	return NewAffine(0, scalex, 0, 0, 0, scaley)
}

// RowMajor returns the coefficients (a, b, c, d, e, f) of the row-major matrix (see FromRowMajor)
func (a *Affine) RowMajor() [6]float64 {
	return [6]float64{a[1], a[2], a[0], a[4], a[5], a[3]}
}

// Determinant of the linear part of the transform
func (a *Affine) Determinant() float64 {
	return a[1]*a[5] - a[2]*a[4]
}

// IsInvertible returns true if the transformation is invertible
func (a *Affine) IsInvertible() bool {
	return a.Determinant() != 0
}

// Inverse creates the inverse of the affine transform.
// Inverse returns ErrNotInvertible if the determinant is null.
func (a *Affine) Inverse() (*Affine, error) {
	if !a.IsInvertible() {
		return nil, ErrNotInvertible
	}
	idet := 1.0 / a.Determinant()
	res := Affine([6]float64{0, a[5] * idet, -a[2] * idet, 0, -a[4] * idet, a[1] * idet})
	res[0], res[3] = res.Transform(-a[0], -a[3])
	return &res, nil
}

const (
	prec = 128
)

// highPrecisionTransform, such as highPrecisionTransform(xs, x+1, sy, y+1, o) = highPrecisionTransform(xs, x, sy, y, o) + highPrecisionTransform(xs, 1, sy, 1, 0)
// Non-finite inputs are evaluated in float64, as math/big does not handle NaN.
func highPrecisionTransform(sx, x, sy, y, o float64) float64 {
	if !finite(sx, x, sy, y, o) {
		return o + sx*x + sy*y
	}
	sX := big.NewFloat(sx).SetPrec(prec)
	sY := big.NewFloat(sy).SetPrec(prec)
	X := big.NewFloat(x).SetPrec(prec)
	Y := big.NewFloat(y).SetPrec(prec)
	O := big.NewFloat(o).SetPrec(prec)
	r, _ := O.Add(O, sX.Mul(sX, X)).Add(O, sY.Mul(sY, Y)).Float64() // o + sx*x + sy*y
	return r
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Multiply merges the two affines transforms into one: a.Multiply(b) applies b then a.
func (a *Affine) Multiply(b *Affine) *Affine {
	return NewAffine(
		highPrecisionTransform(a[1], b[0], a[2], b[3], a[0]),
		highPrecisionTransform(a[1], b[1], a[2], b[4], 0),
		highPrecisionTransform(a[1], b[2], a[2], b[5], 0),
		highPrecisionTransform(a[4], b[0], a[5], b[3], a[3]),
		highPrecisionTransform(a[4], b[1], a[5], b[4], 0),
		highPrecisionTransform(a[4], b[2], a[5], b[5], 0),
	)
}

// Transform applies the affine transform to the point (x, y)
func (a *Affine) Transform(x float64, y float64) (float64, float64) {
	return highPrecisionTransform(a[1], x, a[2], y, a[0]), highPrecisionTransform(a[4], x, a[5], y, a[3])
}
