package geotransform

//go:generate enumer -json -type Model -trimprefix Model

// Model identifies a built-in transformation strategy.
// Its string is the name of the strategy and its default registry key.
type Model int32

const (
	ModelAffine Model = iota
	ModelRST
	ModelSecondDegreePolynomial
)

// constructor returns a constructor of the strategy implementing the model
func (m Model) constructor() Constructor {
	switch m {
	case ModelAffine:
		return func() Strategy { return AffineGT{} }
	case ModelRST:
		return func() Strategy { return RSTGT{} }
	case ModelSecondDegreePolynomial:
		return func() Strategy { return SecondDegreePolynomialGT{} }
	}
	return nil
}
