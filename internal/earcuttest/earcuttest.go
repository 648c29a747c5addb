// Package earcuttest holds assertions shared by the triangulation tests.
package earcuttest

// This contains no actual tests. It is just a helper for testing triangulation
// validity. The rules are:
// 1. Every index refers to a vertex of the buffer.
// 2. Every triangle is counterclockwise. Nearly collinear vertices can round
//    to a sliver with zero or slightly negative area, so orientation is
//    checked against a tolerance scaled to the polygon's size.
// 3. The sum of the areas of all triangles is equal to the area of the polygon.
// 4. Sampled points are covered by exactly one triangle when inside the
//    polygon, and by none when outside.

import (
	"math"
	"testing"

	"github.com/osuushi/earcut/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const Epsilon = 1e-9

func AssertValidTriangulation(t *testing.T, polygon advanced.Polygon, raw advanced.Raw) {
	t.Helper()
	require.Zero(t, len(raw.TriangleIndices)%3, "index count must be a multiple of 3")

	vertexCount := len(raw.Vertices) / 2
	for _, index := range raw.TriangleIndices {
		require.True(t, index >= 0 && index < vertexCount, "index %d out of range [0, %d)", index, vertexCount)
	}

	require.True(t, AssertCounterclockwise(t, polygon, raw))

	var triangleArea float64
	for tri := range raw.Triangles() {
		triangleArea += tri.Area()
	}

	expectedArea := polygon.Area()
	assert.InDelta(t, expectedArea, triangleArea, Epsilon*math.Max(1, expectedArea),
		"sum of the areas of all triangles must equal the area of the polygon")

	AssertCoverageBySampling(t, polygon, raw)
}

// How far below zero a triangle's signed area may round. Areas scale with the
// square of the polygon's extent.
func SliverTolerance(polygon advanced.Polygon) float64 {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Exterior {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	extent := 1.0
	if minX <= maxX {
		extent = math.Max(extent, math.Max(maxX-minX, maxY-minY))
	}
	return Epsilon * extent * extent
}

func AssertCounterclockwise(t assert.TestingT, polygon advanced.Polygon, raw advanced.Raw) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	tolerance := SliverTolerance(polygon)
	for tri := range raw.Triangles() {
		if !assert.GreaterOrEqual(t, tri.SignedArea(), -tolerance, "triangle is not counterclockwise: %v", tri) {
			return false
		}
	}
	return true
}

// The number of triangles a clean polygon yields: one per distinct vertex,
// plus two per hole bridge, minus two.
func ExpectedTriangleCount(polygon advanced.Polygon) int {
	count := DistinctVertexCount(polygon.Exterior)
	holes := 0
	for _, hole := range polygon.Interiors {
		if len(hole) == 0 {
			continue
		}
		count += DistinctVertexCount(hole)
		holes++
	}
	return max(count+2*holes-2, 0)
}

// Vertices of a ring, ignoring consecutive repeats and a closing repeat of the
// first vertex.
func DistinctVertexCount(ring advanced.Ring) int {
	count := 0
	for i, p := range ring {
		if i > 0 && ring[i-1] == p {
			continue
		}
		count++
	}
	if count > 1 && ring[0] == ring[len(ring)-1] {
		count--
	}
	return count
}

func AssertTriangleCount(t *testing.T, polygon advanced.Polygon, raw advanced.Raw) {
	t.Helper()
	assert.Equal(t, ExpectedTriangleCount(polygon), raw.Len(), "triangle count")
}

// Even-odd containment over every ring of the polygon.
func ContainsPointByEvenOdd(polygon advanced.Polygon, p advanced.Coord) bool {
	crossings := CrossingCount(polygon.Exterior, p)
	for _, hole := range polygon.Interiors {
		crossings += CrossingCount(hole, p)
	}
	return crossings%2 == 1
}

// Number of ring edges crossed by a ray from p toward +x.
func CrossingCount(ring advanced.Ring, p advanced.Coord) int {
	count := 0
	for i, a := range ring {
		b := ring[advanced.CircularIndex(i+1, len(ring))]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			count++
		}
	}
	return count
}

func triangleContains(tri advanced.Triangle, p advanced.Coord) bool {
	d1 := advanced.Triangle{A: tri.A, B: tri.B, C: p}.SignedArea()
	d2 := advanced.Triangle{A: tri.B, B: tri.C, C: p}.SignedArea()
	d3 := advanced.Triangle{A: tri.C, B: tri.A, C: p}.SignedArea()
	return d1 >= 0 && d2 >= 0 && d3 >= 0
}

// Walk a grid over the padded bounding box, checking that the triangles cover
// the polygon without overlapping.
func AssertCoverageBySampling(t assert.TestingT, polygon advanced.Polygon, raw advanced.Raw) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Exterior {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if minX > maxX {
		return
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50
	triangles := raw.All()

	// Odd offsets keep samples off axis-aligned and diagonal edges
	for y := minY + step*0.613; y <= maxY; y += step {
		for x := minX + step*0.377; x <= maxX; x += step {
			p := advanced.Coord{X: x, Y: y}
			covered := 0
			for _, tri := range triangles {
				if triangleContains(tri, p) {
					covered++
				}
			}
			if ContainsPointByEvenOdd(polygon, p) {
				if !assert.Equal(t, 1, covered, "point %v should be covered by exactly one triangle", p) {
					return
				}
			} else if !assert.Zero(t, covered, "point %v should not be covered", p) {
				return
			}
		}
	}
}
