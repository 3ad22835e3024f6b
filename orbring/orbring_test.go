package orbring

import (
	"math"
	"testing"

	"github.com/osuushi/polyarea/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

var rings = map[string]orb.Ring{
	"closed triangle": {{0, 0}, {3, 0}, {0, 4}, {0, 0}},
	"open triangle":   {{0, 0}, {3, 0}, {0, 4}},
	"clockwise":       {{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}},
	"star": {
		{0, 0}, {0.5, 0.25}, {1, 0}, {0.75, 0.5},
		{1, 1}, {0.5, 0.75}, {0, 1}, {0.25, 0.5}, {0, 0},
	},
	"irregular": {{-2.5, 1.1}, {4.2, -0.7}, {6.9, 3.3}, {1.4, 5.8}, {-1.3, 4.1}, {-2.5, 1.1}},
}

func TestRingMatchesPlanar(t *testing.T) {
	for name, ring := range rings {
		if !ring.Closed() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			// planar.Area is signed for rings.
			signed := planar.Area(ring)
			assert.InDelta(t, math.Abs(signed), Ring(ring).Area(), epsilon)
			assert.Equal(t, signed < 0, Ring(ring).IsClockwise())
		})
	}
}

func TestOpenRingMatchesClosed(t *testing.T) {
	assert.Equal(t, Ring(rings["closed triangle"]).Area(), Ring(rings["open triangle"]).Area())
}

func TestRingIsPolygon(t *testing.T) {
	var p geom.Polygon[float64, orb.Point] = Ring(rings["closed triangle"])
	assert.Equal(t, 6.0, geom.AreaOf(p))
}

func TestIsClockwise(t *testing.T) {
	assert.True(t, Ring(rings["clockwise"]).IsClockwise())
	assert.False(t, Ring(rings["closed triangle"]).IsClockwise())
}

func TestPolygonArea(t *testing.T) {
	outer := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	hole := orb.Ring{{2, 2}, {2, 4}, {4, 4}, {4, 2}, {2, 2}}
	polygon := orb.Polygon{outer, hole}

	assert.Equal(t, 96.0, PolygonArea(polygon))
	assert.InDelta(t, math.Abs(planar.Area(polygon)), PolygonArea(polygon), epsilon)
	assert.Equal(t, 0.0, PolygonArea(nil))

	multi := orb.MultiPolygon{polygon, {rings["open triangle"]}}
	assert.Equal(t, 102.0, MultiPolygonArea(multi))
}

func TestFixed(t *testing.T) {
	ring := rings["irregular"]
	f := Fixed[geom.Shoelace[float64]](ring)
	assert.Equal(t, Ring(ring).Area(), f.Area())

	square := Fixed[geom.Quad[float64]](orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	assert.Equal(t, 1.0, square.Area())
}
