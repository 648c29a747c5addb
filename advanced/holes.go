package advanced

import (
	"math"
	"slices"
)

// Hole elimination. Each hole is spliced into the outer ring through a bridge
// from its rightmost vertex to a visible vertex of the outer ring to its
// right. Holes are bridged right to left: when a hole is processed, every
// hole that is still separate lies entirely left of the bridge's starting x,
// so no bridge can cross an unmerged hole.
//
//	outer -------------+
//	                   |
//	   hole +----+     |
//	        |    h=====m   <- bridge, h and m are duplicated
//	        +----+     |
//	                   |
//	outer -------------+

func (r *ring) eliminateHoles(f Flat, outer ref) ref {
	queue := make([]ref, 0, len(f.Holes))
	for i := range f.Holes {
		start, end := f.ringRange(i + 1)
		list := r.linkRing(f, start, end, false)
		if list == nilRef {
			continue
		}
		if list == r.at(list).next {
			r.at(list).steiner = true
		}
		queue = append(queue, r.rightmost(list))
	}

	// Stable, so holes with the same rightmost x stay in input order.
	slices.SortStableFunc(queue, func(a, b ref) int {
		ax, bx := r.at(a).x, r.at(b).x
		switch {
		case ax > bx:
			return -1
		case ax < bx:
			return 1
		}
		return 0
	})

	for _, hole := range queue {
		outer = r.eliminateHole(hole, outer)
	}
	return outer
}

func (r *ring) eliminateHole(hole, outer ref) ref {
	bridge := r.findHoleBridge(hole, outer)
	if bridge == nilRef {
		Logger().Debug("no bridge found for hole, skipping it", "hole", r.describe(hole))
		return outer
	}

	bridgeReverse := r.splitPolygon(bridge, hole)

	// Filter collinear points around the cuts
	r.filterPoints(bridgeReverse, r.at(bridgeReverse).next)
	return r.filterPoints(bridge, r.at(bridge).next)
}

// Find a vertex of the outer ring that the hole's rightmost vertex can be
// bridged to without crossing any edge.
func (r *ring) findHoleBridge(hole, outer ref) ref {
	h := r.at(hole)
	hx, hy := h.x, h.y
	qx := math.Inf(1)
	m := nilRef

	// Find the nearest segment crossed by a ray from the hole point to the
	// right. Edges to the right of the interior point upward in a
	// counterclockwise ring. The segment's endpoint with greater x is the
	// candidate, unless the ray touches the segment at the hole point.
	p := outer
	for {
		pn := r.at(p)
		nn := r.at(pn.next)
		if hy >= pn.y && hy <= nn.y && nn.y != pn.y {
			x := pn.x + (hy-pn.y)*(nn.x-pn.x)/(nn.y-pn.y)
			if x >= hx && x < qx {
				qx = x
				if pn.x > nn.x {
					m = p
				} else {
					m = pn.next
				}
				if x == hx {
					// Hole touches the outer segment; take its right endpoint
					return m
				}
			}
		}
		p = pn.next
		if p == outer {
			break
		}
	}

	if m == nilRef {
		return nilRef
	}

	// Look for ring vertices inside the triangle formed by the hole point, the
	// ray intersection and the candidate. If there are none, the candidate is
	// visible. Otherwise take the vertex making the smallest angle with the
	// ray, preferring vertices nearer the hole on ties.
	/*
		           m
		         / |
		       /   |
		 h---------q   (m above the ray; mirrored when below)
	*/
	stop := m
	mn := r.at(m)
	mx, my := mn.x, mn.y
	tanMin := math.Inf(1)

	// pointInTriangle wants a counterclockwise triangle
	ax, bx := qx, hx
	if hy > my {
		ax, bx = hx, qx
	}

	p = m
	for {
		pn := r.at(p)
		if hx <= pn.x && pn.x <= mx && hx != pn.x &&
			pointInTriangle(ax, hy, mx, my, bx, hy, pn.x, pn.y) {
			tan := math.Abs(hy-pn.y) / (pn.x - hx)
			if r.locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (pn.x < r.at(m).x || (pn.x == r.at(m).x && r.sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = pn.next
		if p == stop {
			break
		}
	}
	return m
}

// Rightmost node of a ring. Ties go to the higher node.
func (r *ring) rightmost(start ref) ref {
	p := start
	best := start
	for {
		pn, bn := r.at(p), r.at(best)
		if pn.x > bn.x || (pn.x == bn.x && pn.y > bn.y) {
			best = p
		}
		p = pn.next
		if p == start {
			return best
		}
	}
}
