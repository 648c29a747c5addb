package advanced

// Predicates on ring nodes. All of them reduce to the sign of a doubled
// signed area, with no tolerance.

// Doubled signed area of the triangle pqr, with the sign flipped relative to
// the usual convention: negative means p, q, r turn counterclockwise, which
// makes q convex in a counterclockwise ring.
func area(p, q, r *node) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

// Is (px, py) inside or on the counterclockwise triangle abc?
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// For collinear p, q, r: does q lie within the bounding box of segment pr?
func onSegment(p, q, r *node) bool {
	return q.x <= max(p.x, r.x) && q.x >= min(p.x, r.x) && q.y <= max(p.y, r.y) && q.y >= min(p.y, r.y)
}

// Do segments p1q1 and p2q2 intersect, including touching?
func intersects(p1, q1, p2, q2 *node) bool {
	o1 := sign(area(p1, q1, p2))
	o2 := sign(area(p1, q1, q2))
	o3 := sign(area(p2, q2, p1))
	o4 := sign(area(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true
	}
	// Collinear cases
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// Does the diagonal ab intersect any edge of the ring, other than edges
// incident to a or b?
func (r *ring) intersectsPolygon(a, b ref) bool {
	an, bn := r.at(a), r.at(b)
	p := a
	for {
		pn := r.at(p)
		nn := r.at(pn.next)
		if pn.i != an.i && nn.i != an.i && pn.i != bn.i && nn.i != bn.i &&
			intersects(pn, nn, an, bn) {
			return true
		}
		p = pn.next
		if p == a {
			return false
		}
	}
}

// Does the diagonal from a toward b start into the interior of the ring at a?
func (r *ring) locallyInside(a, b ref) bool {
	an, bn := r.at(a), r.at(b)
	prev, next := r.at(an.prev), r.at(an.next)
	if area(prev, an, next) < 0 {
		return area(an, bn, next) >= 0 && area(an, prev, bn) >= 0
	}
	return area(an, bn, prev) < 0 || area(an, next, bn) < 0
}

// Is the midpoint of the diagonal ab inside the ring? Even-odd crossing
// count, as in Polygon.ContainsPointByEvenOdd.
func (r *ring) middleInside(a, b ref) bool {
	an, bn := r.at(a), r.at(b)
	px := (an.x + bn.x) / 2
	py := (an.y + bn.y) / 2

	inside := false
	p := a
	for {
		pn := r.at(p)
		nn := r.at(pn.next)
		if (pn.y > py) != (nn.y > py) && nn.y != pn.y &&
			px < (nn.x-pn.x)*(py-pn.y)/(nn.y-pn.y)+pn.x {
			inside = !inside
		}
		p = pn.next
		if p == a {
			return inside
		}
	}
}

// Can the ring be split along ab?
func (r *ring) isValidDiagonal(a, b ref) bool {
	an, bn := r.at(a), r.at(b)
	if r.at(an.next).i == bn.i || r.at(an.prev).i == bn.i || r.intersectsPolygon(a, b) {
		return false
	}

	// Locally visible, and does not create opposite-facing sectors
	if r.locallyInside(a, b) && r.locallyInside(b, a) && r.middleInside(a, b) &&
		(area(r.at(an.prev), an, r.at(bn.prev)) != 0 || area(an, r.at(bn.prev), bn) != 0) {
		return true
	}

	// Zero-length diagonal between two coincident reflex corners
	return r.equals(a, b) &&
		area(r.at(an.prev), an, r.at(an.next)) > 0 &&
		area(r.at(bn.prev), bn, r.at(bn.next)) > 0
}

// Does the sector at m contain the sector at p? Both are in the same
// location, so this is a tiebreak for bridges.
func (r *ring) sectorContainsSector(m, p ref) bool {
	mn, pn := r.at(m), r.at(p)
	return area(r.at(mn.prev), mn, r.at(pn.prev)) < 0 && area(r.at(pn.next), mn, r.at(mn.next)) < 0
}
