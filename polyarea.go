// Package polyarea computes the area of planar polygons given as float64
// coordinates.
//
// This package covers the common case. The geom package underneath is generic
// over the coordinate type, accepts any vertex representation, and has an
// allocation-free fixed polygon with pluggable area strategies.
package polyarea

import "github.com/osuushi/polyarea/geom"

type Point = geom.Point[float64]
type Ring = geom.Ring[float64, Point]

// Quadrilateral is a fixed four vertex polygon measured with the diagonal
// cross product instead of the general shoelace loop.
type Quadrilateral = geom.Fixed[float64, geom.Quad[float64]]

func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}

// Area returns the area of the polygon with the given vertices, listed in
// either winding order. The closing edge is implicit. Fewer than three
// points have zero area.
func Area(points ...Point) float64 {
	return Ring(points).Area()
}

// Quad returns a pointer because Fixed methods have pointer receivers, so
// Quad(a, b, c, d).Area() works without a temporary. Callers that must not
// allocate should build the value with geom.FixedOf instead.
func Quad(a, b, c, d Point) *Quadrilateral {
	q := geom.FixedOf[float64, geom.Quad[float64], Point](a, b, c, d)
	return &q
}
