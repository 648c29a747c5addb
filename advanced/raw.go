package advanced

import "iter"

// Raw is the engine's result in buffer form: the flat vertex buffer it was
// given (two numbers per vertex) and three vertex indices per triangle. This
// is the form graphics and meshing code usually wants to upload directly.
type Raw struct {
	Vertices        []float64
	TriangleIndices []int
}

// Number of triangles.
func (r Raw) Len() int {
	return len(r.TriangleIndices) / 3
}

func (r Raw) coord(index int) Coord {
	return Coord{X: r.Vertices[index*2], Y: r.Vertices[index*2+1]}
}

// Triangle i, built from three lookups into the vertex buffer.
func (r Raw) Triangle(i int) Triangle {
	t := r.TriangleIndices[i*3 : i*3+3]
	return Triangle{r.coord(t[0]), r.coord(t[1]), r.coord(t[2])}
}

// Triangles yields each triangle in the order the engine emitted it. The
// sequence is lazy and can be ranged over any number of times; it never
// modifies the buffers.
func (r Raw) Triangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for i := 0; i < r.Len(); i++ {
			if !yield(r.Triangle(i)) {
				return
			}
		}
	}
}

func (r Raw) All() []Triangle {
	triangles := make([]Triangle, 0, r.Len())
	for t := range r.Triangles() {
		triangles = append(triangles, t)
	}
	return triangles
}
