package geotransform

// Parameters holds the tie points used for the estimation and the two parameter
// vectors fitted from them.
// DirectParameters maps source to target, InverseParameters maps target to source.
// They are computed independently by the strategy (see each strategy).
type Parameters struct {
	TiePoints         []TiePoint `json:"tie_points"`
	DirectParameters  []float64  `json:"direct_parameters"`
	InverseParameters []float64  `json:"inverse_parameters"`
}

// NewParameters creates parameters from tie points and both vectors (copied)
func NewParameters(tiePoints []TiePoint, direct, inverse []float64) *Parameters {
	return &Parameters{
		TiePoints:         copyTiePoints(tiePoints),
		DirectParameters:  copyFloats(direct),
		InverseParameters: copyFloats(inverse),
	}
}

// IsEmpty returns true if the parameters have not been estimated
func (p *Parameters) IsEmpty() bool {
	return p == nil || (len(p.DirectParameters) == 0 && len(p.InverseParameters) == 0)
}

// Clone returns a deep copy of p
func (p *Parameters) Clone() *Parameters {
	if p == nil {
		return nil
	}
	return NewParameters(p.TiePoints, p.DirectParameters, p.InverseParameters)
}

// hasSize returns true if both vectors have exactly n elements
func (p *Parameters) hasSize(n int) bool {
	return p != nil && len(p.DirectParameters) == n && len(p.InverseParameters) == n
}

func copyFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	res := make([]float64, len(v))
	copy(res, v)
	return res
}
