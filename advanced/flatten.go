package advanced

// Flat is the buffer form consumed by the engine. Vertices holds Dim numbers
// per vertex, and Holes holds the vertex index (not the buffer offset) where
// each hole starts.
type Flat struct {
	Vertices []float64
	Holes    []int
	Dim      int
}

// Flatten lays out the exterior ring followed by each hole, in input order.
// Empty holes are skipped so that hole offsets stay strictly increasing.
func Flatten(p Polygon) Flat {
	count := len(p.Exterior)
	for _, hole := range p.Interiors {
		count += len(hole)
	}

	flat := Flat{
		Vertices: make([]float64, 0, count*2),
		Dim:      2,
	}
	flat.Vertices = appendRing(flat.Vertices, p.Exterior)
	for _, hole := range p.Interiors {
		if len(hole) == 0 {
			continue
		}
		flat.Holes = append(flat.Holes, len(flat.Vertices)/2)
		flat.Vertices = appendRing(flat.Vertices, hole)
	}
	return flat
}

func appendRing(vertices []float64, ring Ring) []float64 {
	for _, p := range ring {
		vertices = append(vertices, p.X, p.Y)
	}
	return vertices
}

func (f Flat) VertexCount() int {
	if f.Dim == 0 {
		return 0
	}
	return len(f.Vertices) / f.Dim
}

// The vertex range [start, end) of ring i, where ring 0 is the exterior and
// ring i > 0 is hole i-1.
func (f Flat) ringRange(i int) (start, end int) {
	if i > 0 {
		start = f.Holes[i-1]
	}
	if i < len(f.Holes) {
		end = f.Holes[i]
	} else {
		end = f.VertexCount()
	}
	return start, end
}

// Check the buffer shape. Violations are thrown, and recovered into errors
// by the public entry points.
func (f Flat) validate() {
	if f.Dim < 2 {
		fatalf("dimension must be at least 2, got %d", f.Dim)
	}
	if len(f.Vertices)%f.Dim != 0 {
		fatalf("vertex buffer length %d is not a multiple of dimension %d", len(f.Vertices), f.Dim)
	}
	n := f.VertexCount()
	previous := 0
	for i, start := range f.Holes {
		if start <= previous || start >= n {
			fatalf("hole %d starts at vertex %d, expected a value in (%d, %d)", i, start, previous, n)
		}
		previous = start
	}
}
