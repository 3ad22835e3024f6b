package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, 2.5, Abs(2.5))
	assert.Equal(t, float32(3), Abs(float32(-3)))
	assert.Equal(t, 7, Abs(-7))
	assert.Equal(t, int8(0), Abs(int8(0)))
	assert.True(t, math.IsNaN(Abs(math.NaN())))
	assert.True(t, math.IsInf(Abs(math.Inf(-1)), 1))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 0.0, Zero[float64]())
	assert.Equal(t, float32(1), One[float32]())
	assert.Equal(t, int64(2), Two[int64]())
	assert.Equal(t, Two[float64](), One[float64]()+One[float64]())
}

func TestCross(t *testing.T) {
	a := Pt(2.0, 3.0)
	b := Pt(-1.0, 4.0)
	assert.Equal(t, 11.0, Cross[float64](a, b))
	assert.Equal(t, -11.0, Cross[float64](b, a))
	assert.Equal(t, 11, Cross[int](Arr(2, 3), Arr(-1, 4)))
}

func TestVertexAccessors(t *testing.T) {
	p := Pt(1.5, -2.0)
	assert.Equal(t, 1.5, p.X())
	assert.Equal(t, -2.0, p.Y())
	assert.Equal(t, Arr(1.5, -2.0), p.Array())

	a := Array[int]{4, 9}
	assert.Equal(t, 4, a.X())
	assert.Equal(t, 9, a.Y())
}
