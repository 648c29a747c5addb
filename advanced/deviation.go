package advanced

import "math"

// Deviation measures how far a triangulation is from covering the polygon:
// the difference between the total triangle area and the polygon area,
// relative to the polygon area. A correct triangulation gives 0, up to float
// rounding. The arguments are those of Earcut plus its result, and are not
// validated.
func Deviation(data []float64, holeIndices []int, dim int, triangles []int) float64 {
	f := Flat{Vertices: data, Holes: holeIndices, Dim: dim}

	start, end := f.ringRange(0)
	polygonArea := math.Abs(signedArea(f, start, end))
	for i := range holeIndices {
		start, end = f.ringRange(i + 1)
		polygonArea -= math.Abs(signedArea(f, start, end))
	}

	var trianglesArea float64
	for i := 0; i+2 < len(triangles); i += 3 {
		a := triangles[i] * dim
		b := triangles[i+1] * dim
		c := triangles[i+2] * dim
		trianglesArea += math.Abs(
			(data[a]-data[c])*(data[b+1]-data[a+1]) -
				(data[a]-data[b])*(data[c+1]-data[a+1]))
	}

	if polygonArea == 0 && trianglesArea == 0 {
		return 0
	}
	return math.Abs((trianglesArea - polygonArea) / polygonArea)
}
