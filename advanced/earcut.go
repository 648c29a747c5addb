// Ear clipping triangulation of polygons with holes.
//
// This package exposes the engine directly: flat vertex buffers in, vertex
// index triples out. The root earcut package wraps it with polygon-level
// helpers.
//
// The algorithm links the exterior ring counterclockwise, splices every hole
// into it through a bridge, then repeatedly cuts off ears until three
// vertices remain. Large inputs index the ring along a z-order curve so the
// "is this ear empty" check only visits nearby vertices. When clipping gets
// stuck on degenerate or self-intersecting input, the engine filters and
// cures the ring, then splits it along a diagonal, and finally gives up,
// returning whatever triangles it has. It never fails on geometry.
package advanced

// Options tune the engine. The zero value disables nothing; it indexes every
// non-empty input.
type Options struct {
	// The z-order index is built when the total vertex count exceeds this
	// threshold. Negative disables indexing. Results are identical either way.
	IndexThreshold int
}

var DefaultOptions = Options{IndexThreshold: 80}

// Earcut triangulates a flat buffer with the default options. data holds dim
// numbers per vertex, of which the first two are x and y. holeIndices holds
// the vertex index at which each hole starts. The result holds three vertex
// indices per triangle.
//
// An error is returned only for a malformed buffer. Degenerate geometry gives
// an empty or partial result instead.
func Earcut(data []float64, holeIndices []int, dim int) ([]int, error) {
	return DefaultOptions.Earcut(data, holeIndices, dim)
}

func (o Options) Earcut(data []float64, holeIndices []int, dim int) (result []int, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	f := Flat{Vertices: data, Holes: holeIndices, Dim: dim}
	f.validate()
	return o.triangulate(f), nil
}

// Triangulate flattens the polygon and triangulates it. Flatten always
// produces a well formed buffer, so this cannot fail.
func (o Options) Triangulate(p Polygon) Raw {
	f := Flatten(p)
	return Raw{
		Vertices:        f.Vertices,
		TriangleIndices: o.triangulate(f),
	}
}

func (o Options) triangulate(f Flat) []int {
	n := f.VertexCount()
	outerLen := n
	if len(f.Holes) > 0 {
		outerLen = f.Holes[0]
	}

	// Bridges add two nodes per hole. Splits may add more, which append
	// handles.
	r := newRing(n + 2*len(f.Holes))
	outer := r.linkRing(f, 0, outerLen, true)
	if outer == nilRef || r.at(outer).next == r.at(outer).prev {
		return []int{}
	}
	if len(f.Holes) > 0 {
		outer = r.eliminateHoles(f, outer)
	}

	c := &clipper{
		r:         r,
		test:      newEarTest(f, outerLen, o.IndexThreshold),
		triangles: make([]int, 0, max(n+2*len(f.Holes)-2, 0)*3),
	}
	return c.run(outer)
}
