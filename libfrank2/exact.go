package libfrank2

import (
	"github.com/plan-systems/klog"
)

// FindFrankNumber runs the exact engine: enumerate every orientation of
// the graph, keep the strongly connected ones, and look for a pair of
// orientations whose deletable-edge sets cover E(G). Returns 2 when such
// a pair exists, 0 otherwise (Frank number >= 3, or inconclusive under
// single-graph sharding).
func (s *Solver[B]) FindFrankNumber() int {
	s.pool = NewPool[B](s.opt.PoolSize)
	s.orient.Reset()

	fn := s.generateOrientations(-1, -1)

	if s.opt.BruteForce {
		s.cnt.StoredBitsets = uint64(s.pool.Used())
		if s.pool.Used() > s.opt.PoolSize {
			s.opt.PoolSize = s.pool.Cap()
		}
		if s.opt.Verbose {
			klog.Infof("\tBitsets stored: %d, size of array %d", s.cnt.StoredBitsets, s.opt.PoolSize)
		}

		var union B
		for _, e := range s.pool.Entries() {
			if e.IsEmpty() {
				s.cnt.EmptyBitsetsStored++
			}
			union = union.Union(e)
		}
		if s.opt.Verbose {
			klog.Infof("\tEmpty bitsets stored: %d", s.cnt.EmptyBitsetsStored)
		}
		// Under -s only a slice of the orientations was seen, so the
		// stored sets need not cover E(G).
		if !s.opt.SingleGraph && union != s.allEdges() {
			panic("brute-force pool: stored deletable sets do not cover all edges")
		}
	}
	return fn
}

// generateOrientations walks the edges in canonical order (ascending u,
// then neighbors v > u ascending) and branches on the two directions of
// each edge. e2 == -1 means vertex e1 has no further higher neighbors.
func (s *Solver[B]) generateOrientations(e1, e2 int) int {
	if e2 == -1 && e1 < s.g.N-1 {
		return s.generateOrientations(e1+1, s.g.Adj[e1+1].Next(e1+1))
	}
	if e2 == -1 && e1 == s.g.N-1 {
		return s.evaluateOrientation()
	}

	fn := 0
	o := s.orient

	o.AddArc(e1, e2)
	// A strongly connected orientation of a cubic graph has out- and
	// in-degree 1 or 2 everywhere.
	if o.Out[e1].Count() != 3 && o.In[e2].Count() != 3 {
		fn = s.generateOrientations(e1, s.g.Adj[e1].Next(e2))
	}
	o.RemoveArc(e1, e2)
	if fn != 0 {
		return fn
	}

	o.AddArc(e2, e1)
	if o.In[e1].Count() != 3 && o.Out[e2].Count() != 3 {
		fn = s.generateOrientations(e1, s.g.Adj[e1].Next(e2))
	}
	o.RemoveArc(e2, e1)
	return fn
}

func (s *Solver[B]) evaluateOrientation() int {
	s.cnt.TotalOrientationsGenerated++

	if s.opt.SingleGraph &&
		s.cnt.TotalOrientationsGenerated%uint64(s.opt.Modulo) != uint64(s.opt.Remainder) {
		return 0
	}

	if !s.stronglyConnected(s.orient) {
		return 0
	}

	deletable := s.deletableEdges(s.orient)

	// A vertex with three non-deletable incident edges kills every
	// complementary pairing this orientation could take part in.
	for v := 0; v < s.g.N; v++ {
		anyDeletable := false
		for nbr := s.g.Adj[v].Next(-1); nbr != -1; nbr = s.g.Adj[v].Next(nbr) {
			if deletable.Contains(s.en.Index(v, nbr)) {
				anyDeletable = true
			}
		}
		if !anyDeletable {
			return 0
		}
	}

	s.cnt.GeneratedOrientations++

	if !s.opt.BruteForce {
		if s.hasComplementaryOrientation(deletable) {
			if s.opt.Print {
				WriteDeletableEdges(s.dump, s.orient, &s.en, deletable)
				s.orient.WriteTo(s.dump)
			}
			return 2
		}
		return 0
	}

	return s.pool.Offer(deletable, s.allEdges(), s.cnt)
}

// hasComplementaryOrientation searches for an orientation whose
// deletable set joins with deletable to cover E(G). The first edge at
// vertex 0 is fixed outward: reversing every arc keeps the deletable
// set, so half the search space is symmetric.
func (s *Solver[B]) hasComplementaryOrientation(deletable B) bool {
	comp := NewDiGraph[B](s.g.N)
	first := s.g.Adj[0].Next(-1)
	if !s.canAddNewArc(comp, 0, first, deletable) {
		return false
	}
	return s.canCompleteOrientation(comp, deletable, 0, first)
}

// canCompleteOrientation branches over the still-unoriented edges in
// canonical order. Each trial snapshots the partial orientation first:
// canAddNewArc propagates eagerly and leaves partial work behind on
// failure.
func (s *Solver[B]) canCompleteOrientation(o *DiGraph[B], deletable B, e1, e2 int) bool {
	if e2 == -1 && e1 < s.g.N-1 {
		return s.canCompleteOrientation(o, deletable, e1+1, s.g.Adj[e1+1].Next(e1+1))
	}

	if e2 == -1 && e1 == s.g.N-1 {
		if o.Arcs != s.en.EdgeCount() {
			klog.Errorf("constraint search reached a leaf with %d of %d arcs", o.Arcs, s.en.EdgeCount())
		}

		// The local rules are necessary, not sufficient: confirm with
		// the real deletable set.
		compDeletable := s.deletableEdges(o)
		if deletable.Union(compDeletable) == s.allEdges() {
			if s.opt.Print {
				WriteDeletableEdges(s.dump, o, &s.en, compDeletable)
				o.WriteTo(s.dump)
			}
			return true
		}
		return false
	}

	if o.Out[e1].Contains(e2) || o.Out[e2].Contains(e1) {
		return s.canCompleteOrientation(o, deletable, e1, s.g.Adj[e1].Next(e2))
	}

	saveOut := make([]B, s.g.N)
	saveIn := make([]B, s.g.N)
	copy(saveOut, o.Out)
	copy(saveIn, o.In)
	saveArcs := o.Arcs

	if s.canAddNewArc(o, e1, e2, deletable) {
		if s.canCompleteOrientation(o, deletable, e1, s.g.Adj[e1].Next(e2)) {
			return true
		}
	}

	copy(o.Out, saveOut)
	copy(o.In, saveIn)
	o.Arcs = saveArcs

	if s.canAddNewArc(o, e2, e1, deletable) {
		if s.canCompleteOrientation(o, deletable, e1, s.g.Adj[e1].Next(e2)) {
			return true
		}
	}
	return false
}

// otherEdgesNonDeletable reports whether both edges at x other than xy
// lie outside deletable.
func (s *Solver[B]) otherEdgesNonDeletable(x, y int, deletable B) bool {
	for el := s.g.Adj[x].Next(-1); el != -1; el = s.g.Adj[x].Next(el) {
		if el == y {
			continue
		}
		if deletable.Contains(s.en.Index(x, el)) {
			return false
		}
	}
	return true
}

// canAddNewArc tries to orient x->y in o and propagates every forced
// consequence. Returns false on contradiction, possibly leaving o
// partially updated (callers snapshot).
//
// The rules: at most two out-arcs and two in-arcs per vertex; edges of
// deletable incident to a common vertex alternate direction there; an
// edge outside deletable must become deletable in o, which for a cubic
// graph pins its endpoints to one in- and one out-arc among their other
// edges; and a vertex with two same-direction arcs forces its third
// edge.
func (s *Solver[B]) canAddNewArc(o *DiGraph[B], x, y int, deletable B) bool {
	if o.Out[x].Contains(y) {
		return true
	}
	if o.Out[y].Contains(x) {
		return false
	}
	if o.Out[x].Count() >= 2 {
		return false
	}
	if o.In[y].Count() >= 2 {
		return false
	}

	if deletable.Contains(s.en.Index(x, y)) {
		for el := s.g.Adj[x].Next(-1); el != -1; el = s.g.Adj[x].Next(el) {
			if el == y {
				continue
			}
			if deletable.Contains(s.en.Index(x, el)) && o.Out[x].Contains(el) {
				return false
			}
		}
		for el := s.g.Adj[y].Next(-1); el != -1; el = s.g.Adj[y].Next(el) {
			if el == x {
				continue
			}
			if deletable.Contains(s.en.Index(y, el)) && o.In[y].Contains(el) {
				return false
			}
		}
	} else {
		// xy must end up deletable in o: x needs one incoming and one
		// outgoing among its other edges, same for y.
		if o.Out[x].Count() >= 2 || o.In[x].Count() >= 2 {
			return false
		}
		if o.Out[y].Count() >= 2 || o.In[y].Count() >= 2 {
			return false
		}

		// A non-deletable edge is oriented opposite to the other
		// non-deletable edge at each endpoint.
		for el := s.g.Adj[x].Next(-1); el != -1; el = s.g.Adj[x].Next(el) {
			if el == y {
				continue
			}
			if !deletable.Contains(s.en.Index(x, el)) {
				if o.In[x].Contains(y) {
					return false
				}
				break
			}
		}
		for el := s.g.Adj[y].Next(-1); el != -1; el = s.g.Adj[y].Next(el) {
			if el == x {
				continue
			}
			if !deletable.Contains(s.en.Index(y, el)) {
				if o.Out[y].Contains(x) {
					return false
				}
				break
			}
		}
	}

	o.AddArc(x, y)

	// Two outgoing and none incoming at x: the third edge points in.
	if o.Out[x].Count() == 2 && o.In[x].Count() < 1 {
		last := s.g.Adj[x].Diff(o.Out[x]).Next(-1)
		if !s.canAddNewArc(o, last, x, deletable) {
			return false
		}
	}

	// No outgoing and two incoming at y: the third edge points out.
	if o.Out[y].Count() == 0 && o.In[y].Count() == 2 {
		last := s.g.Adj[y].Diff(o.In[y]).Next(-1)
		if !s.canAddNewArc(o, y, last, deletable) {
			return false
		}
	}

	if deletable.Contains(s.en.Index(x, y)) {
		for el := s.g.Adj[x].Next(-1); el != -1; el = s.g.Adj[x].Next(el) {
			if el == y {
				continue
			}
			if deletable.Contains(s.en.Index(x, el)) {
				if !s.canAddNewArc(o, el, x, deletable) {
					return false
				}
			}
		}
		for el := s.g.Adj[y].Next(-1); el != -1; el = s.g.Adj[y].Next(el) {
			if el == x {
				continue
			}
			if deletable.Contains(s.en.Index(y, el)) {
				if !s.canAddNewArc(o, y, el, deletable) {
					return false
				}
			}
		}

		// One deletable and two non-deletable edges at an endpoint:
		// the non-deletable ones run opposite to the deletable one.
		if s.otherEdgesNonDeletable(x, y, deletable) {
			for el := s.g.Adj[x].Next(-1); el != -1; el = s.g.Adj[x].Next(el) {
				if el == y {
					continue
				}
				if !s.canAddNewArc(o, el, x, deletable) {
					return false
				}
			}
		}
		if s.otherEdgesNonDeletable(y, x, deletable) {
			for el := s.g.Adj[y].Next(-1); el != -1; el = s.g.Adj[y].Next(el) {
				if el == x {
					continue
				}
				if !s.canAddNewArc(o, y, el, deletable) {
					return false
				}
			}
		}
	} else {
		if o.Out[y].Count() == 0 && o.In[y].Count() == 2 {
			last := s.g.Adj[y].Diff(o.Out[y]).Next(-1)
			if !s.canAddNewArc(o, y, last, deletable) {
				return false
			}
		}

		if o.Out[y].Count() == 1 && o.In[y].Count() == 1 {
			last := s.g.Adj[y].Diff(o.Out[y].Union(o.In[y])).Next(-1)
			if !s.canAddNewArc(o, last, y, deletable) {
				return false
			}
		}

		for el := s.g.Adj[x].Next(-1); el != -1; el = s.g.Adj[x].Next(el) {
			if el == y {
				continue
			}
			if !deletable.Contains(s.en.Index(x, el)) {
				if !s.canAddNewArc(o, x, el, deletable) {
					return false
				}
				break
			}
		}
		for el := s.g.Adj[y].Next(-1); el != -1; el = s.g.Adj[y].Next(el) {
			if el == x {
				continue
			}
			if !deletable.Contains(s.en.Index(y, el)) {
				if !s.canAddNewArc(o, el, y, deletable) {
					return false
				}
				break
			}
		}
	}
	return true
}
