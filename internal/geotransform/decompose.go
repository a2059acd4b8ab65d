package geotransform

import (
	"math"

	"github.com/airbusgeo/geotransform/internal/utils/affine"
)

// AffineDecomposition describes affine parameters as a composition of
// a translation, a rotation, a skew and a (possibly anisotropic) scaling.
type AffineDecomposition struct {
	TranslationX float64 `json:"translation_x"`
	TranslationY float64 `json:"translation_y"`
	ScaleX       float64 `json:"scale_x"`
	ScaleY       float64 `json:"scale_y"`
	Skew         float64 `json:"skew"`
	// Squeeze is the aspect ratio term: ScaleX = Scaling*Squeeze, ScaleY = Scaling/Squeeze
	Squeeze float64 `json:"squeeze"`
	// Scaling is the geometric mean of the scales: sqrt(|det|)
	Scaling float64 `json:"scaling"`
	// Rotation in radians
	Rotation float64 `json:"rotation"`
	// Mirrored is true if the determinant of the linear part is negative.
	// In this case, the roles of the (a, d) and (b, e) parameter pairs are swapped before decomposition.
	Mirrored bool `json:"mirrored"`
}

// DecomposeAffine decomposes the affine parameters [a, b, c, d, e, f] (see AffineGT).
// It returns DecompositionFailed if the determinant of the linear part is null.
func DecomposeAffine(params []float64) (AffineDecomposition, error) {
	if len(params) != affineParameterCount {
		return AffineDecomposition{}, NewDecompositionFailed("expecting %d parameters, got %d", affineParameterCount, len(params))
	}
	for _, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return AffineDecomposition{}, NewDecompositionFailed("non-finite parameters: %v", params)
		}
	}

	pa, pb, pc, pd := params[0], params[1], params[3], params[4]
	det := affine.FromRowMajor(params[0], params[1], params[2], params[3], params[4], params[5]).Determinant()
	mirrored := false
	switch {
	case det == 0:
		return AffineDecomposition{}, NewDecompositionFailed("null determinant")
	case det < 0:
		pa, pb, pc, pd = params[1], params[0], params[4], params[3]
		det = pa*pd - pb*pc
		mirrored = true
	}

	f := 1 / (pa*pa + pc*pc)
	squeeze := 1 / math.Sqrt(f*det)
	scaling := math.Sqrt(det)

	return AffineDecomposition{
		TranslationX: params[2],
		TranslationY: params[5],
		ScaleX:       scaling * squeeze,
		ScaleY:       scaling / squeeze,
		Skew:         (pa*pb + pc*pd) * f,
		Squeeze:      squeeze,
		Scaling:      scaling,
		Rotation:     math.Atan2(pc, pa),
		Mirrored:     mirrored,
	}, nil
}
