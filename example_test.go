package earcut_test

import (
	"fmt"

	"github.com/osuushi/earcut"
)

func ExampleTriangulateRaw() {
	square := earcut.Polygon{
		Exterior: earcut.Ring{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
	}
	raw := earcut.TriangulateRaw(square)
	fmt.Println(raw.TriangleIndices)
	for tri := range raw.Triangles() {
		fmt.Println(tri.A, tri.B, tri.C)
	}
	// Output:
	// [3 0 1 1 2 3]
	// {0 10} {0 0} {10 0}
	// {10 0} {10 10} {0 10}
}

func ExampleEarcut() {
	indices, err := earcut.Earcut([]float64{0, 0, 10, 0, 10, 10, 0, 0}, nil, 2)
	fmt.Println(indices, err)
	// Output: [2 0 1] <nil>
}
