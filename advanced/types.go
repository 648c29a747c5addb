package advanced

import "math"

type Coord struct {
	X float64
	Y float64
}

// A ring is a closed loop of coordinates. Input rings usually repeat the first
// point at the end. That duplicate is harmless; the engine drops it.
type Ring []Coord

// A polygon is one exterior ring plus any number of holes. Holes must lie
// inside the exterior and must not overlap each other. Neither is checked.
type Polygon struct {
	Exterior  Ring
	Interiors []Ring
}

type Triangle struct {
	A, B, C Coord
}

// Twice the signed area of the ring, positive when the ring winds
// counterclockwise in a y-up frame.
func (r Ring) SignedArea() float64 {
	var sum float64
	for i, p := range r {
		q := r[CircularIndex(i+1, len(r))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (r Ring) Reverse() Ring {
	reversed := make(Ring, len(r))
	for i, p := range r {
		reversed[len(r)-1-i] = p
	}
	return reversed
}

// Area of the polygon with holes subtracted.
func (p Polygon) Area() float64 {
	area := math.Abs(p.Exterior.SignedArea())
	for _, hole := range p.Interiors {
		area -= math.Abs(hole.SignedArea())
	}
	return area
}

// Positive for counterclockwise triangles, negative for clockwise ones.
func (t Triangle) SignedArea() float64 {
	return ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
