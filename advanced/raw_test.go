package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaw(t *testing.T) {
	raw := Raw{
		Vertices:        []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0},
		TriangleIndices: []int{3, 0, 1, 1, 2, 3},
	}
	first := Triangle{Coord{0, 10}, Coord{0, 0}, Coord{10, 0}}
	second := Triangle{Coord{10, 0}, Coord{10, 10}, Coord{0, 10}}

	assert.Equal(t, 2, raw.Len())
	assert.Equal(t, first, raw.Triangle(0))
	assert.Equal(t, second, raw.Triangle(1))
	assert.Equal(t, []Triangle{first, second}, raw.All())

	t.Run("restartable", func(t *testing.T) {
		var count int
		for range raw.Triangles() {
			count++
		}
		for range raw.Triangles() {
			count++
		}
		assert.Equal(t, 4, count)
	})

	t.Run("early break", func(t *testing.T) {
		var seen []Triangle
		for tri := range raw.Triangles() {
			seen = append(seen, tri)
			break
		}
		assert.Equal(t, []Triangle{first}, seen)
	})

	t.Run("does not modify the buffers", func(t *testing.T) {
		raw.All()
		assert.Equal(t, []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}, raw.Vertices)
		assert.Equal(t, []int{3, 0, 1, 1, 2, 3}, raw.TriangleIndices)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Zero(t, Raw{}.Len())
		assert.Empty(t, Raw{}.All())
	})
}

func TestTriangulate(t *testing.T) {
	p := Polygon{Exterior: Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	raw := DefaultOptions.Triangulate(p)
	assert.Equal(t, Flatten(p).Vertices, raw.Vertices)
	assert.Equal(t, []int{3, 0, 1, 1, 2, 3}, raw.TriangleIndices)

	// Holes that are empty are dropped without shifting indices
	p.Interiors = []Ring{{}}
	assert.Equal(t, raw, DefaultOptions.Triangulate(p))
}
