package advanced

// Ear clipping. Work is a stack of jobs, each naming a ring (by any node in
// it) and the phase to run it in. A job that gets stuck pushes its follow-up
// instead of recursing:
//
//	Clipping -> Recovering -> Curing -> Splitting -+-> Clipping (two halves)
//	                                               +-> exhausted, give up
//
// Splitting pushes the second half before the first, so each half is fully
// finished, recovery included, before the next one starts.

type phase int

const (
	// Plain ear clipping.
	phaseClipping phase = iota
	// Duplicate and collinear vertices have been filtered.
	phaseRecovering
	// Small local self-intersections have been cut off.
	phaseCuring
	// Look for a diagonal that splits the ring into two.
	phaseSplitting
)

func (p phase) String() string {
	switch p {
	case phaseClipping:
		return "clipping"
	case phaseRecovering:
		return "recovering"
	case phaseCuring:
		return "curing"
	case phaseSplitting:
		return "splitting"
	}
	return "unknown"
}

type job struct {
	start ref
	phase phase
}

type jobStack []job

func (s *jobStack) Push(j job) {
	*s = append(*s, j)
}

func (s *jobStack) Pop() (job, bool) {
	if len(*s) == 0 {
		return job{}, false
	}
	j := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return j, true
}

func (s *jobStack) Empty() bool {
	return len(*s) == 0
}

type clipper struct {
	r         *ring
	test      earTest
	triangles []int
	stack     jobStack
}

func (c *clipper) run(start ref) []int {
	c.stack.Push(job{start, phaseClipping})
	for {
		j, ok := c.stack.Pop()
		if !ok {
			return c.triangles
		}
		if j.phase == phaseSplitting {
			c.split(j.start)
		} else {
			c.clip(j)
		}
	}
}

func (c *clipper) clip(j job) {
	r := c.r
	ear := j.start
	if ear == nilRef {
		return
	}
	if j.phase == phaseClipping {
		c.test.prepare(r, ear)
	}

	stop := ear
	for {
		n := r.at(ear)
		// Fewer than three vertices left
		if n.prev == n.next {
			return
		}
		prev, next := n.prev, n.next

		if c.test.isEar(r, ear) {
			c.triangles = append(c.triangles, r.at(prev).i, n.i, r.at(next).i)
			r.removeNode(ear)

			// Skipping the next vertex leads to fewer sliver triangles
			ear = r.at(next).next
			stop = ear
			continue
		}

		ear = next
		if ear != stop {
			continue
		}

		// A full lap without finding an ear.
		if debugEnabled() {
			Logger().Debug("no ear found", "phase", j.phase, "at", r.describe(ear), "remaining", r.size(ear))
		}
		switch j.phase {
		case phaseClipping:
			c.stack.Push(job{r.filterPoints(ear, nilRef), phaseRecovering})
		case phaseRecovering:
			cured := c.cureLocalIntersections(r.filterPoints(ear, nilRef))
			c.stack.Push(job{cured, phaseCuring})
		case phaseCuring:
			c.stack.Push(job{ear, phaseSplitting})
		}
		return
	}
}

// Go through the ring and cut off small local self-intersections, where edge
// a-p crosses edge p.next-b. Returns a node still in the ring.
func (c *clipper) cureLocalIntersections(start ref) ref {
	r := c.r
	p := start
	for {
		pn := r.at(p)
		a := pn.prev
		next := pn.next
		b := r.at(next).next

		if !r.equals(a, b) && intersects(r.at(a), pn, r.at(next), r.at(b)) &&
			r.locallyInside(a, b) && r.locallyInside(b, a) {
			c.triangles = append(c.triangles, r.at(a).i, pn.i, r.at(b).i)

			// Remove the two nodes involved
			r.removeNode(p)
			r.removeNode(next)
			p = b
			start = b
		}
		p = r.at(p).next
		if p == start {
			break
		}
	}
	return r.filterPoints(p, nilRef)
}

// Try splitting the ring into two along a valid diagonal, and queue both
// halves for clipping.
func (c *clipper) split(start ref) {
	r := c.r
	a := start
	for {
		b := r.at(r.at(a).next).next
		for b != r.at(a).prev {
			if r.at(a).i != r.at(b).i && r.isValidDiagonal(a, b) {
				other := r.splitPolygon(a, b)

				// Filter collinear points around the cuts
				a = r.filterPoints(a, r.at(a).next)
				other = r.filterPoints(other, r.at(other).next)

				Logger().Debug("split ring", "a", r.describe(a), "b", r.describe(other))
				c.stack.Push(job{other, phaseClipping})
				c.stack.Push(job{a, phaseClipping})
				return
			}
			b = r.at(b).next
		}

		a = r.at(a).next
		if a == start {
			if debugEnabled() {
				Logger().Debug("ring exhausted, keeping partial result",
					"at", r.describe(start), "remaining", r.size(start), "triangles", len(c.triangles)/3)
			}
			return
		}
	}
}
