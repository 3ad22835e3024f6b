package geom

// Strategy computes an area from two parallel coordinate slices, xs[i] and
// ys[i] being the coordinates of the i-th vertex. Keeping the coordinates in
// separate slices lets a specialized formula index them directly instead of
// going through Vertex.
//
// Strategies are stateless. Fixed uses the zero value of its strategy type,
// so a strategy must work as a zero value and must not panic on any input,
// including slices of different lengths.
type Strategy[S Scalar] interface {
	Area(xs, ys []S) S
}

// Shoelace is the general strategy. It gives the same result as VertexArea
// for the same vertices, and zero for fewer than three vertices. When the
// slices differ in length the extra coordinates are ignored.
type Shoelace[S Scalar] struct{}

func (Shoelace[S]) Area(xs, ys []S) S {
	n := min(len(xs), len(ys))
	if n < 3 {
		return 0
	}
	var sum S
	for i := 0; i < n; i++ {
		j := CircularIndex(i+1, n)
		sum += xs[i]*ys[j] - ys[i]*xs[j]
	}
	return Abs(sum) / 2
}

// Quad is specialized for quadrilaterals. The shoelace sum of four vertices
// equals the cross product of the two diagonals p0->p2 and p1->p3, which takes
// two multiplications instead of eight.
//
// Any other vertex count is handed to Shoelace.
type Quad[S Scalar] struct{}

func (Quad[S]) Area(xs, ys []S) S {
	if len(xs) != 4 || len(ys) != 4 {
		return Shoelace[S]{}.Area(xs, ys)
	}
	sum := (xs[2]-xs[0])*(ys[3]-ys[1]) - (ys[2]-ys[0])*(xs[3]-xs[1])
	return Abs(sum) / 2
}

// Unit always returns one. It is not an area; it exists to check that a
// container really calls the strategy it was given.
type Unit[S Scalar] struct{}

func (Unit[S]) Area(_, _ []S) S { return 1 }

// Func adapts an ordinary function to a Strategy.
type Func[S Scalar] func(xs, ys []S) S

func (f Func[S]) Area(xs, ys []S) S { return f(xs, ys) }
