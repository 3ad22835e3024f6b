// Package geom computes the area of planar polygons.
//
// Vertices can be stored however the caller already stores them: anything
// with X and Y accessors is a Vertex, and any type that hands out a slice of
// vertices is a Polygon. The default area algorithm is the shoelace formula.
//
// For code that must not allocate, Fixed keeps its coordinates inline as two
// parallel arrays and hands them to a Strategy, which can be swapped for a
// formula specialized to one vertex count.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the coordinate types the area functions can
// handle. Unsigned integers are left out because the shoelace sum subtracts.
//
// Integer scalars work, but the final halving truncates toward zero. Use
// DoubledSignedArea when an exact integer result is needed.
type Scalar interface {
	constraints.Signed | constraints.Float
}

func Zero[S Scalar]() S { return 0 }
func One[S Scalar]() S  { return 1 }
func Two[S Scalar]() S  { return 2 }

// Abs returns the absolute value of v. NaN is returned unchanged.
func Abs[S Scalar](v S) S {
	if v < 0 {
		return -v
	}
	return v
}
