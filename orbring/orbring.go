// Package orbring lets paulmach/orb geometries be measured by geom.
//
// orb.Point already has X and Y accessors, so it is a geom.Vertex as is and
// an orb.Ring converts to a Ring without copying.
package orbring

import (
	"github.com/osuushi/polyarea/geom"
	"github.com/paulmach/orb"
)

// Ring is an orb.Ring that satisfies geom.Polygon[float64, orb.Point].
//
// orb rings are usually closed (the last point repeats the first). The
// shoelace sum is unaffected by the repeated point, so open and closed rings
// give the same area.
type Ring orb.Ring

func (r Ring) Vertices() []orb.Point { return r }

func (r Ring) Area() float64 {
	return geom.VertexArea[float64, orb.Point](r)
}

func (r Ring) IsClockwise() bool {
	return geom.IsClockwise[float64, orb.Point](r)
}

// PolygonArea returns the area of the outer ring of p minus the areas of its
// holes. Ring orientation is ignored.
func PolygonArea(p orb.Polygon) float64 {
	if len(p) == 0 {
		return 0
	}
	area := Ring(p[0]).Area()
	for _, hole := range p[1:] {
		area -= Ring(hole).Area()
	}
	return area
}

// MultiPolygonArea sums PolygonArea over every polygon in mp.
func MultiPolygonArea(mp orb.MultiPolygon) float64 {
	var area float64
	for _, p := range mp {
		area += PolygonArea(p)
	}
	return area
}

// Fixed copies r into a fixed polygon, which no longer references r. Points
// past geom.MaxVertices are dropped.
func Fixed[A geom.Strategy[float64]](r orb.Ring) geom.Fixed[float64, A] {
	return geom.FixedOf[float64, A, orb.Point](r...)
}
