package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// An earTest decides whether a convex vertex is an ear, i.e. whether no other
// vertex of the ring lies inside the triangle it forms with its neighbors.
// The two implementations must always agree; they differ only in how many
// vertices they visit.
type earTest interface {
	// Called at the start of every clipping job on a ring.
	prepare(r *ring, start ref)
	isEar(r *ring, ear ref) bool
}

// Pick the ear test for a buffer. Large inputs get a z-order index.
func newEarTest(f Flat, outerLen int, threshold int) earTest {
	if threshold < 0 || f.VertexCount() <= threshold || outerLen == 0 {
		return scanTest{}
	}

	bounds := r2.EmptyRect()
	for v := 0; v < outerLen; v++ {
		bounds = bounds.AddPoint(r2.Point{X: f.Vertices[v*f.Dim], Y: f.Vertices[v*f.Dim+1]})
	}
	size := bounds.Size()
	extent := math.Max(size.X, size.Y)
	if extent == 0 {
		return scanTest{}
	}
	lo := bounds.Lo()
	// Coordinates are mapped into a 15-bit integer range
	return &zOrderTest{minX: lo.X, minY: lo.Y, invSize: 32767 / extent}
}

// Triangle bounding box, shared by both tests.
func earBounds(a, b, c *node) (x0, y0, x1, y1 float64) {
	return min(a.x, b.x, c.x), min(a.y, b.y, c.y), max(a.x, b.x, c.x), max(a.y, b.y, c.y)
}

// Does p block the ear abc? It must be inside or on the triangle, and itself
// reflex or flat; a convex vertex touching the triangle cannot lie inside it.
func blocksEar(r *ring, a, b, c *node, x0, y0, x1, y1 float64, p *node) bool {
	return p.x >= x0 && p.x <= x1 && p.y >= y0 && p.y <= y1 &&
		pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, p.x, p.y) &&
		area(r.at(p.prev), p, r.at(p.next)) >= 0
}

// Visit every other vertex of the ring.
type scanTest struct{}

func (scanTest) prepare(*ring, ref) {}

func (scanTest) isEar(r *ring, ear ref) bool {
	b := r.at(ear)
	a, c := r.at(b.prev), r.at(b.next)
	if area(a, b, c) >= 0 {
		return false // reflex, can't be an ear
	}
	x0, y0, x1, y1 := earBounds(a, b, c)

	for p := c.next; p != b.prev; p = r.at(p).next {
		if blocksEar(r, a, b, c, x0, y0, x1, y1, r.at(p)) {
			return false
		}
	}
	return true
}

// Visit only vertices whose z-order value falls between those of the ear's
// bounding box corners.
type zOrderTest struct {
	minX, minY, invSize float64
}

func (t *zOrderTest) zOrder(x, y float64) uint32 {
	ix := uint32(int32((x - t.minX) * t.invSize))
	iy := uint32(int32((y - t.minY) * t.invSize))
	return interleave(ix) | interleave(iy)<<1
}

// Spread the low 16 bits of v over the even bits of the result.
func interleave(v uint32) uint32 {
	v = (v | v<<8) & 0x00FF00FF
	v = (v | v<<4) & 0x0F0F0F0F
	v = (v | v<<2) & 0x33333333
	v = (v | v<<1) & 0x55555555
	return v
}

// Link the ring's nodes in z-order.
func (t *zOrderTest) prepare(r *ring, start ref) {
	p := start
	for {
		n := r.at(p)
		if n.z == 0 {
			n.z = t.zOrder(n.x, n.y)
		}
		n.prevZ = n.prev
		n.nextZ = n.next
		p = n.next
		if p == start {
			break
		}
	}
	tail := r.at(start).prevZ
	r.at(tail).nextZ = nilRef
	r.at(start).prevZ = nilRef

	r.sortLinked(start)
}

func (t *zOrderTest) isEar(r *ring, ear ref) bool {
	b := r.at(ear)
	prev, next := b.prev, b.next
	a, c := r.at(prev), r.at(next)
	if area(a, b, c) >= 0 {
		return false
	}
	x0, y0, x1, y1 := earBounds(a, b, c)
	minZ := t.zOrder(x0, y0)
	maxZ := t.zOrder(x1, y1)

	blocks := func(p ref) bool {
		return p != prev && p != next && blocksEar(r, a, b, c, x0, y0, x1, y1, r.at(p))
	}

	p, n := b.prevZ, b.nextZ

	// Look for points inside the triangle in both directions
	for p != nilRef && r.at(p).z >= minZ && n != nilRef && r.at(n).z <= maxZ {
		if blocks(p) {
			return false
		}
		p = r.at(p).prevZ
		if blocks(n) {
			return false
		}
		n = r.at(n).nextZ
	}

	// Remaining points in decreasing z-order
	for p != nilRef && r.at(p).z >= minZ {
		if blocks(p) {
			return false
		}
		p = r.at(p).prevZ
	}

	// Remaining points in increasing z-order
	for n != nilRef && r.at(n).z <= maxZ {
		if blocks(n) {
			return false
		}
		n = r.at(n).nextZ
	}
	return true
}

// Sort the z-order list starting at list by z value. This is Simon Tatham's
// bottom-up merge sort for linked lists, which needs no extra memory. Returns
// the new head.
func (r *ring) sortLinked(list ref) ref {
	inSize := 1
	for {
		p := list
		list = nilRef
		tail := nilRef
		numMerges := 0

		for p != nilRef {
			numMerges++
			q := p
			pSize := 0
			for i := 0; i < inSize; i++ {
				pSize++
				q = r.at(q).nextZ
				if q == nilRef {
					break
				}
			}
			qSize := inSize

			for pSize > 0 || (qSize > 0 && q != nilRef) {
				var e ref
				if pSize != 0 && (qSize == 0 || q == nilRef || r.at(p).z <= r.at(q).z) {
					e = p
					p = r.at(p).nextZ
					pSize--
				} else {
					e = q
					q = r.at(q).nextZ
					qSize--
				}

				if tail != nilRef {
					r.at(tail).nextZ = e
				} else {
					list = e
				}
				r.at(e).prevZ = tail
				tail = e
			}
			p = q
		}

		r.at(tail).nextZ = nilRef
		inSize *= 2
		if numMerges <= 1 {
			return list
		}
	}
}
