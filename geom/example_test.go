package geom_test

import (
	"fmt"

	"github.com/osuushi/polyarea/geom"
)

func ExampleRing() {
	triangle := geom.Ring[float64, geom.Array[float64]]{{0, 0}, {1, 0}, {0, 1}}
	fmt.Println(triangle.Area())
	// Output:
	// 0.5
}

func ExampleFixed() {
	square := geom.NewFixed[float32, geom.Quad[float32]](
		[]float32{0, 1, 1, 0},
		[]float32{0, 0, 1, 1},
	)
	fmt.Println(square.Area())
	// Output:
	// 1
}

func ExampleStrategy() {
	xs := []float64{0, 0.5, 1, 0.75, 1, 0.5, 0, 0.25}
	ys := []float64{0, 0.25, 0, 0.5, 1, 0.75, 1, 0.5}
	star := geom.NewFixed[float64, geom.Shoelace[float64]](xs, ys)
	fmt.Println(star.Area())
	fmt.Println(star.AreaWith(geom.Unit[float64]{}))
	// Output:
	// 0.5
	// 1
}
