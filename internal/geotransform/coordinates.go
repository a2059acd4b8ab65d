package geotransform

import "math"

// Coordinate2D is a point in a planar reference frame.
// Coordinates are expected to be finite: NaN or Inf are not sanitized.
type Coordinate2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the euclidean distance between c and o
func (c Coordinate2D) Distance(o Coordinate2D) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// TiePoint is an observed correspondence between a coordinate in the source frame
// and a coordinate in the target frame.
type TiePoint struct {
	Source Coordinate2D `json:"source"`
	Target Coordinate2D `json:"target"`
}

// NewTiePoint creates a tie point from (sx, sy) -> (tx, ty)
func NewTiePoint(sx, sy, tx, ty float64) TiePoint {
	return TiePoint{Source: Coordinate2D{X: sx, Y: sy}, Target: Coordinate2D{X: tx, Y: ty}}
}

// Swap returns the tie point with source and target exchanged
func (tp TiePoint) Swap() TiePoint {
	return TiePoint{Source: tp.Target, Target: tp.Source}
}

// TiePointSet is an ordered collection of tie points.
// The order does not change the fit, but it is kept to make fits reproducible.
type TiePointSet struct {
	tiePoints []TiePoint
}

// NewTiePointSet creates a set with a copy of tps
func NewTiePointSet(tps ...TiePoint) *TiePointSet {
	s := &TiePointSet{}
	s.Add(tps...)
	return s
}

// Add appends copies of the tie points to the set
func (s *TiePointSet) Add(tps ...TiePoint) {
	s.tiePoints = append(s.tiePoints, tps...)
}

// Len returns the number of tie points
func (s *TiePointSet) Len() int {
	return len(s.tiePoints)
}

// At returns the i-th tie point
func (s *TiePointSet) At(i int) TiePoint {
	return s.tiePoints[i]
}

// TiePoints returns a copy of the tie points
func (s *TiePointSet) TiePoints() []TiePoint {
	return copyTiePoints(s.tiePoints)
}

// Sources returns the source coordinates, in order
func (s *TiePointSet) Sources() []Coordinate2D {
	res := make([]Coordinate2D, len(s.tiePoints))
	for i, tp := range s.tiePoints {
		res[i] = tp.Source
	}
	return res
}

// Targets returns the target coordinates, in order
func (s *TiePointSet) Targets() []Coordinate2D {
	res := make([]Coordinate2D, len(s.tiePoints))
	for i, tp := range s.tiePoints {
		res[i] = tp.Target
	}
	return res
}

// Swapped returns a new set where the source and target of each tie point are exchanged
func (s *TiePointSet) Swapped() *TiePointSet {
	return &TiePointSet{tiePoints: swapTiePoints(s.tiePoints)}
}

func copyTiePoints(tps []TiePoint) []TiePoint {
	if tps == nil {
		return nil
	}
	res := make([]TiePoint, len(tps))
	copy(res, tps)
	return res
}

func swapTiePoints(tps []TiePoint) []TiePoint {
	res := make([]TiePoint, len(tps))
	for i, tp := range tps {
		res[i] = tp.Swap()
	}
	return res
}
