package geom

// MaxVertices is the capacity of a Fixed polygon.
const MaxVertices = 64

// Fixed is a polygon of at most MaxVertices vertices whose coordinates are
// stored inline as two parallel arrays. Its area is computed by the strategy
// type A. Neither construction nor Area allocates, so a Fixed can be used
// where the heap is off limits.
//
// Methods take a pointer receiver so the arrays are never copied.
type Fixed[S Scalar, A Strategy[S]] struct {
	n      int
	xs, ys [MaxVertices]S
}

// NewFixed builds a Fixed from parallel coordinate slices. Nothing is
// validated: if the slices differ in length the shorter one wins, and
// coordinates past MaxVertices are dropped.
func NewFixed[S Scalar, A Strategy[S]](xs, ys []S) Fixed[S, A] {
	var f Fixed[S, A]
	f.n = copy(f.xs[:], xs)
	if m := copy(f.ys[:], ys); m < f.n {
		f.n = m
	}
	return f
}

// FixedOf builds a Fixed from vertices. Vertices past MaxVertices are dropped.
func FixedOf[S Scalar, A Strategy[S], V Vertex[S]](vs ...V) Fixed[S, A] {
	var f Fixed[S, A]
	for _, v := range vs {
		if f.n == MaxVertices {
			break
		}
		f.xs[f.n] = v.X()
		f.ys[f.n] = v.Y()
		f.n++
	}
	return f
}

func (f *Fixed[S, A]) Len() int { return f.n }

// Area returns the area computed by the zero value of A.
func (f *Fixed[S, A]) Area() S {
	var strategy A
	return strategy.Area(f.xs[:f.n], f.ys[:f.n])
}

// AreaWith computes the area with an explicit strategy instead of A.
func (f *Fixed[S, A]) AreaWith(strategy Strategy[S]) S {
	return strategy.Area(f.xs[:f.n], f.ys[:f.n])
}

// At returns the i-th vertex.
func (f *Fixed[S, A]) At(i int) (Point[S], bool) {
	if i < 0 || i >= f.n {
		return Point[S]{}, false
	}
	return Pt(f.xs[i], f.ys[i]), true
}

// Vertices copies the vertices out into a new slice, which makes *Fixed a
// Polygon. Unlike Area, this allocates.
func (f *Fixed[S, A]) Vertices() []Point[S] {
	vs := make([]Point[S], f.n)
	for i := range vs {
		vs[i] = Pt(f.xs[i], f.ys[i])
	}
	return vs
}
