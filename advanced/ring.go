package advanced

// The working ring is a circular doubly linked list of vertices, stored in an
// arena and addressed by handle. Bridging holes and splitting rings only ever
// append to the arena, and removal just unlinks a node, so handles stay valid
// for the whole run.
//
// Note that appending may move the backing array. Never hold a *node across a
// call that creates nodes.

type ref int32

const nilRef ref = -1

type node struct {
	// Vertex index in the flat buffer. Bridge duplicates share it with the
	// node they copy.
	i    int
	x, y float64

	prev, next ref

	// z-order curve value and neighbors in z-order, only set when the ring is
	// indexed.
	z            uint32
	prevZ, nextZ ref

	// A steiner node is a one-vertex hole. It must never be filtered away.
	steiner bool
}

type ring struct {
	nodes []node
}

func newRing(capacity int) *ring {
	return &ring{nodes: make([]node, 0, capacity)}
}

func (r *ring) at(h ref) *node {
	return &r.nodes[h]
}

func (r *ring) createNode(i int, x, y float64) ref {
	r.nodes = append(r.nodes, node{
		i: i, x: x, y: y,
		prev: nilRef, next: nilRef,
		prevZ: nilRef, nextZ: nilRef,
	})
	return ref(len(r.nodes) - 1)
}

// Create a node and link it after last. If last is nil, the node becomes a
// ring of its own.
func (r *ring) insertNode(i int, x, y float64, last ref) ref {
	p := r.createNode(i, x, y)
	n := r.at(p)
	if last == nilRef {
		n.prev = p
		n.next = p
	} else {
		l := r.at(last)
		n.next = l.next
		n.prev = last
		r.at(l.next).prev = p
		l.next = p
	}
	return p
}

// Unlink a node from the ring and from the z-order list. The node keeps its
// own links, so callers may still step from it to its former neighbors.
func (r *ring) removeNode(p ref) {
	n := r.at(p)
	r.at(n.next).prev = n.prev
	r.at(n.prev).next = n.next
	if n.prevZ != nilRef {
		r.at(n.prevZ).nextZ = n.nextZ
	}
	if n.nextZ != nilRef {
		r.at(n.nextZ).prevZ = n.prevZ
	}
}

func (r *ring) equals(a, b ref) bool {
	p, q := r.at(a), r.at(b)
	return p.x == q.x && p.y == q.y
}

// Link vertices [start, end) of the buffer into a ring with the requested
// winding. Vertices equal to their predecessor are skipped, and so is a
// closing vertex equal to the first. Returns nil if the range is empty.
func (r *ring) linkRing(f Flat, start, end int, counterclockwise bool) ref {
	last := nilRef
	insert := func(v int) {
		x, y := f.Vertices[v*f.Dim], f.Vertices[v*f.Dim+1]
		if last != nilRef {
			l := r.at(last)
			if l.x == x && l.y == y {
				return
			}
		}
		last = r.insertNode(v, x, y, last)
	}

	if counterclockwise == (signedArea(f, start, end) > 0) {
		for v := start; v < end; v++ {
			insert(v)
		}
	} else {
		for v := end - 1; v >= start; v-- {
			insert(v)
		}
	}

	if last != nilRef && last != r.at(last).next && r.equals(last, r.at(last).next) {
		next := r.at(last).next
		r.removeNode(last)
		last = next
	}
	return last
}

// Link two vertices with a bridge. If they belong to the same ring, this
// splits it in two. If one belongs to the outer ring and the other to a hole,
// the hole is merged in. Returns the copy of b, which starts the second ring
// in the split case.
func (r *ring) splitPolygon(a, b ref) ref {
	an, bp := r.at(a), r.at(b)
	ai, ax, ay := an.i, an.x, an.y
	bi, bx, by := bp.i, bp.x, bp.y

	a2 := r.createNode(ai, ax, ay)
	b2 := r.createNode(bi, bx, by)

	aNext := r.at(a).next
	bPrev := r.at(b).prev

	r.at(a).next = b
	r.at(b).prev = a

	r.at(a2).next = aNext
	r.at(aNext).prev = a2

	r.at(b2).next = a2
	r.at(a2).prev = b2

	r.at(bPrev).next = b2
	r.at(b2).prev = bPrev

	return b2
}

// Remove duplicate and collinear vertices between start and end. Returns a
// node that is still in the ring.
func (r *ring) filterPoints(start, end ref) ref {
	if start == nilRef {
		return start
	}
	if end == nilRef {
		end = start
	}

	p := start
	for {
		again := false
		n := r.at(p)
		if !n.steiner && (r.equals(p, n.next) || area(r.at(n.prev), n, r.at(n.next)) == 0) {
			r.removeNode(p)
			p = n.prev
			end = p
			if p == r.at(p).next {
				break
			}
			again = true
		} else {
			p = n.next
		}

		if !again && p == end {
			break
		}
	}
	return end
}

// Number of nodes still linked into the ring containing p.
func (r *ring) size(p ref) int {
	if p == nilRef {
		return 0
	}
	count := 0
	q := p
	for {
		count++
		q = r.at(q).next
		if q == p {
			return count
		}
	}
}

// Twice the signed area of vertices [start, end), positive when
// counterclockwise in a y-up frame.
func signedArea(f Flat, start, end int) float64 {
	var sum float64
	j := end - 1
	for i := start; i < end; i++ {
		sum += (f.Vertices[j*f.Dim] - f.Vertices[i*f.Dim]) * (f.Vertices[i*f.Dim+1] + f.Vertices[j*f.Dim+1])
		j = i
	}
	return sum
}
