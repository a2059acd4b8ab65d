package geotransform

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// MapGeometry returns a copy of g where every vertex is mapped with the direct
// (or inverse) parameters. Layout and SRID are preserved; Z and M are left untouched.
func MapGeometry(s Strategy, params *Parameters, g geom.T, inverse bool) (geom.T, error) {
	if err := checkParameters(s, params); err != nil {
		return nil, fmt.Errorf("MapGeometry.%w", err)
	}
	mapFn := s.DirectMap
	if inverse {
		mapFn = s.InverseMap
	}

	var res geom.T
	switch g := g.(type) {
	case *geom.Point:
		res = g.Clone()
	case *geom.LineString:
		res = g.Clone()
	case *geom.LinearRing:
		res = g.Clone()
	case *geom.Polygon:
		res = g.Clone()
	case *geom.MultiPoint:
		res = g.Clone()
	case *geom.MultiLineString:
		res = g.Clone()
	case *geom.MultiPolygon:
		res = g.Clone()
	case *geom.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for _, child := range g.Geoms() {
			mchild, err := MapGeometry(s, params, child, inverse)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(mchild); err != nil {
				return nil, fmt.Errorf("MapGeometry: %w", err)
			}
		}
		return gc.SetSRID(g.SRID()), nil
	default:
		return nil, fmt.Errorf("MapGeometry: unsupported geometry type %T", g)
	}

	flat, stride := res.FlatCoords(), res.Stride()
	if stride < 2 {
		return res, nil
	}
	for i := 0; i+1 < len(flat); i += stride {
		c, err := mapFn(params, Coordinate2D{X: flat[i], Y: flat[i+1]})
		if err != nil {
			return nil, fmt.Errorf("MapGeometry.%w", err)
		}
		flat[i], flat[i+1] = c.X, c.Y
	}
	return res, nil
}
