package polyarea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestArea(t *testing.T) {
	assert.Equal(t, 4.0, Area(Pt(1, -1), Pt(1, 1), Pt(-1, 1), Pt(-1, -1)))
	assert.Equal(t, 0.0, Area(Pt(1, -1), Pt(1, 1)))
}

func TestQuad(t *testing.T) {
	q := Quad(Pt(1, -1), Pt(1, 1), Pt(-1, 1), Pt(-1, -1))
	assert.Equal(t, Area(Pt(1, -1), Pt(1, 1), Pt(-1, 1), Pt(-1, -1)), q.Area())
	assert.Equal(t, 4, q.Len())

	// Chained, with the vertices listed clockwise.
	assert.Equal(t, 2.0, Quad(Pt(0, 0), Pt(0, 1), Pt(2, 1), Pt(2, 0)).Area())
}
