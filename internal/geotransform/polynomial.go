package geotransform

import (
	"github.com/airbusgeo/geotransform/internal/utils/linalg"
	"gonum.org/v1/gonum/mat"
)

const (
	polynomialTermCount      = 6
	polynomialParameterCount = 2 * polynomialTermCount
)

// SecondDegreePolynomialGT maps each coordinate with an independent second-degree polynomial:
//
//	X = a0 + a1*x + a2*y + a3*x*y + a4*x² + a5*y²
//	Y = b0 + b1*x + b2*y + b3*x*y + b4*x² + b5*y²
//
// Parameters are stored as [a0..a5, b0..b5].
//
// A second-degree polynomial has no closed-form inverse: the inverse parameters are
// fitted separately, by regressing the source coordinates on the target ones.
// As a consequence, InverseMap(DirectMap(p)) is only approximately p.
type SecondDegreePolynomialGT struct{}

func (SecondDegreePolynomialGT) Name() string {
	return ModelSecondDegreePolynomial.String()
}

// MinRequiredTiePoints is one more than the number of terms per axis,
// to keep the system over-determined.
func (SecondDegreePolynomialGT) MinRequiredTiePoints() int {
	return polynomialTermCount + 1
}

func (SecondDegreePolynomialGT) ParameterCount() int {
	return polynomialParameterCount
}

func (SecondDegreePolynomialGT) IsValid(params *Parameters) bool {
	return params.hasSize(polynomialParameterCount)
}

func (g SecondDegreePolynomialGT) Clone() Strategy {
	return SecondDegreePolynomialGT{}
}

func (g SecondDegreePolynomialGT) DirectMap(params *Parameters, source Coordinate2D) (Coordinate2D, error) {
	if err := checkParameters(g, params); err != nil {
		return Coordinate2D{}, err
	}
	return polynomialMap(params.DirectParameters, source), nil
}

func (g SecondDegreePolynomialGT) InverseMap(params *Parameters, target Coordinate2D) (Coordinate2D, error) {
	if err := checkParameters(g, params); err != nil {
		return Coordinate2D{}, err
	}
	return polynomialMap(params.InverseParameters, target), nil
}

func polynomialTerms(c Coordinate2D) [polynomialTermCount]float64 {
	return [polynomialTermCount]float64{1, c.X, c.Y, c.X * c.Y, c.X * c.X, c.Y * c.Y}
}

func polynomialMap(p []float64, c Coordinate2D) Coordinate2D {
	terms := polynomialTerms(c)
	var res Coordinate2D
	for i, t := range terms {
		res.X += p[i] * t
		res.Y += p[polynomialTermCount+i] * t
	}
	return res
}

// Estimate fits the direct polynomials by least squares on the design matrix W
// built from the normalized source coordinates (see normalization), then the inverse
// polynomials on the design matrix built from the normalized target coordinates.
// Each fit returns its own SingularSystem error (see DetailSingularSystemDirection).
func (g SecondDegreePolynomialGT) Estimate(tiePoints []TiePoint) (*Parameters, error) {
	if err := checkTiePoints(g, tiePoints); err != nil {
		return nil, err
	}
	set := NewTiePointSet(tiePoints...)

	direct, err := fitPolynomial(set)
	if err != nil {
		return nil, NewSingularSystem(DirectionDirect, "%s: %v", g.Name(), err)
	}

	inverse, err := fitPolynomial(set.Swapped())
	if err != nil {
		return nil, NewSingularSystem(DirectionInverse, "%s: %v", g.Name(), err)
	}

	return &Parameters{
		TiePoints:         set.TiePoints(),
		DirectParameters:  direct,
		InverseParameters: inverse,
	}, nil
}

// fitPolynomial regresses target.X and target.Y on the second-degree terms of the source
func fitPolynomial(set *TiePointSet) ([]float64, error) {
	src, dst := newNormalization(set.Sources()), newNormalization(set.Targets())

	n := set.Len()
	w := mat.NewDense(n, polynomialTermCount, nil)
	lx := mat.NewVecDense(n, nil)
	ly := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		terms := polynomialTerms(src.apply(set.At(i).Source))
		t := dst.apply(set.At(i).Target)
		w.SetRow(i, terms[:])
		lx.SetVec(i, t.X)
		ly.SetVec(i, t.Y)
	}

	px, err := linalg.LeastSquares(w, lx)
	if err != nil {
		return nil, err
	}
	py, err := linalg.LeastSquares(w, ly)
	if err != nil {
		return nil, err
	}

	params := make([]float64, 0, polynomialParameterCount)
	params = append(params, denormalizePolynomial(px.RawVector().Data, src, dst.center.X, dst.scale)...)
	params = append(params, denormalizePolynomial(py.RawVector().Data, src, dst.center.Y, dst.scale)...)
	return params, nil
}
