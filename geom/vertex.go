package geom

// Vertex is read access to the two coordinates of a point. Nothing in this
// package mutates a vertex.
type Vertex[S Scalar] interface {
	X() S
	Y() S
}

// Array is a vertex stored as a two element array, x first. This is the same
// layout as orb.Point and most GeoJSON decoders.
type Array[S Scalar] [2]S

func Arr[S Scalar](x, y S) Array[S] {
	return Array[S]{x, y}
}

func (a Array[S]) X() S { return a[0] }
func (a Array[S]) Y() S { return a[1] }

// Point is a vertex stored as a coordinate pair.
type Point[S Scalar] struct {
	x, y S
}

// Pt is a convenience function to create a Point.
func Pt[S Scalar](x, y S) Point[S] {
	return Point[S]{x: x, y: y}
}

func (p Point[S]) X() S { return p.x }
func (p Point[S]) Y() S { return p.y }

// Array converts p to the array encoding.
func (p Point[S]) Array() Array[S] {
	return Array[S]{p.x, p.y}
}

// Cross returns a.x*b.y - a.y*b.x, which is the contribution of the edge a->b
// to the doubled signed area of a polygon.
func Cross[S Scalar, V Vertex[S]](a, b V) S {
	return a.X()*b.Y() - a.Y()*b.X()
}
