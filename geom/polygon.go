package geom

// Polygon gives access to the ordered vertices of a closed polygon. The
// closing edge from the last vertex back to the first is implicit, so the
// first vertex should not be repeated (though repeating it does no harm to the
// area).
//
// Vertices may wind in either direction. Winding is never validated.
type Polygon[S Scalar, V Vertex[S]] interface {
	Vertices() []V
}

// AreaOf returns the area of p using the shoelace formula. Polygons with fewer
// than three vertices have zero area.
func AreaOf[S Scalar, V Vertex[S]](p Polygon[S, V]) S {
	return VertexArea[S, V](p.Vertices())
}

// Ring is a polygon backed by a slice of vertices. Converting an existing
// slice to a Ring does not copy it.
type Ring[S Scalar, V Vertex[S]] []V

func (r Ring[S, V]) Vertices() []V { return r }

func (r Ring[S, V]) Len() int { return len(r) }

// Area returns the unsigned area of the ring.
func (r Ring[S, V]) Area() S {
	return VertexArea[S, V](r)
}

// SignedArea is positive for counterclockwise rings in a y-up frame.
func (r Ring[S, V]) SignedArea() S {
	return SignedArea[S, V](r)
}

func (r Ring[S, V]) IsClockwise() bool {
	return IsClockwise[S, V](r)
}

// Reverse returns a new ring with the vertices in the opposite order. The
// receiver is left untouched.
func (r Ring[S, V]) Reverse() Ring[S, V] {
	reversed := make(Ring[S, V], len(r))
	for i, v := range r {
		reversed[len(r)-1-i] = v
	}
	return reversed
}

// VertexArea applies the shoelace formula to vs: the absolute value of the
// summed edge cross products, halved. The result does not depend on the
// winding direction or on which vertex is listed first.
func VertexArea[S Scalar, V Vertex[S]](vs []V) S {
	if len(vs) < 3 {
		return 0
	}
	return Abs(DoubledSignedArea[S, V](vs)) / 2
}

// DoubledSignedArea returns the raw shoelace sum over vs. It is exact for
// integer scalars, barring overflow.
func DoubledSignedArea[S Scalar, V Vertex[S]](vs []V) S {
	n := len(vs)
	if n < 3 {
		return 0
	}
	var sum S
	for i, v := range vs {
		sum += Cross[S, V](v, vs[CircularIndex(i+1, n)])
	}
	return sum
}

func SignedArea[S Scalar, V Vertex[S]](vs []V) S {
	return DoubledSignedArea[S, V](vs) / 2
}

// IsClockwise reports whether vs winds clockwise in a y-up frame. Degenerate
// polygons are not clockwise.
func IsClockwise[S Scalar, V Vertex[S]](vs []V) bool {
	return DoubledSignedArea[S, V](vs) < 0
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
