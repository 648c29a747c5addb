// Ear clipping triangulation for Go.
//
// This package converts a simple polygon, which may be non-convex and may
// contain holes, into a set of non-overlapping triangles that cover it
// exactly, using only the polygon's own points.
//
// The result comes in two shapes. Raw is a flat vertex buffer plus a flat
// index buffer, ready for upload to a GPU or a mesher. Triangles are built on
// demand from it. See the advanced package for the buffer level API.
package earcut

import (
	"iter"

	"github.com/osuushi/earcut/advanced"
)

type Coord = advanced.Coord
type Ring = advanced.Ring
type Polygon = advanced.Polygon
type Triangle = advanced.Triangle
type Raw = advanced.Raw

// Triangulate the polygon and return its triangles.
//
// The exterior and holes may wind either way. Holes must lie inside the
// exterior and must not overlap; this is not checked. Invalid or degenerate
// geometry never causes an error, but can produce fewer triangles than
// expected, or none at all.
func Triangulate(polygon Polygon) []Triangle {
	return TriangulateRaw(polygon).All()
}

// Like Triangulate, but the triangles are built lazily as the sequence is
// ranged over.
func TriangulateIter(polygon Polygon) iter.Seq[Triangle] {
	return TriangulateRaw(polygon).Triangles()
}

// Triangulate the polygon and return the flattened vertices together with
// three vertex indices per triangle.
func TriangulateRaw(polygon Polygon) Raw {
	return advanced.DefaultOptions.Triangulate(polygon)
}

// Earcut triangulates a flat buffer of vertices, dim numbers per vertex, with
// holes starting at the given vertex indices. It only fails on a malformed
// buffer.
func Earcut(data []float64, holeIndices []int, dim int) ([]int, error) {
	return advanced.Earcut(data, holeIndices, dim)
}
