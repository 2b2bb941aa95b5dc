package libfrank2

import (
	"github.com/plan-systems/klog"

	"github.com/2x3systems/frank2/libfrank2/bitset"
)

// oddCycle is one cycle of the 2-factor G-F, as a membership set plus
// the vertices in cycle order.
type oddCycle[B bitset.Bits[B]] struct {
	elems B
	verts []int
}

// HasSufficientCondition enumerates the perfect matchings F of G and
// checks each complementary 2-factor for one of the two certifying
// configurations: exactly two odd cycles joined by a matching edge
// (direct bridge), or joined through a length-2 path over a third
// cycle. Either configuration yields two complementary orientations,
// so success proves Frank number 2. Failure proves nothing.
//
// Correct only for cyclically 4-edge-connected inputs.
func (s *Solver[B]) HasSufficientCondition() bool {
	F := make([]int, s.g.N)
	return s.sufficientCondition(bitset.Universe[B](s.g.N), F)
}

func (s *Solver[B]) sufficientCondition(remaining B, F []int) bool {
	u := remaining.Next(-1)
	if u == -1 {
		return s.checkConfigurations(F)
	}

	free := s.g.Adj[u].Intersect(remaining)
	for w := free.Next(-1); w != -1; w = free.Next(w) {
		F[w] = u
		F[u] = w
		next := remaining.Diff(bitset.Single[B](u).Add(w))
		if s.sufficientCondition(next, F) {
			return true
		}
	}
	return false
}

func (s *Solver[B]) checkConfigurations(F []int) bool {
	var cycles [2]oddCycle[B]
	cycles[0].verts = make([]int, 0, s.g.N)
	cycles[1].verts = make([]int, 0, s.g.N)
	M := make([]int, s.g.N)

	if !s.containsTwoOddCycles(F, &cycles, M) {
		return false
	}

	for u := cycles[0].elems.Next(-1); u != -1; u = cycles[0].elems.Next(u) {
		v := F[u]
		if cycles[1].elems.Contains(v) {
			if s.tryDirectBridge(F, &cycles, M, u, v) {
				return true
			}
			continue
		}
		if !cycles[0].elems.Contains(v) {
			if s.tryTwoEdgePath(F, &cycles, M, u, v) {
				return true
			}
		}
	}
	return false
}

// containsTwoOddCycles walks the cycles of G-F, counts the odd ones and
// records the first two. Along the way M greedily pairs consecutive
// cycle vertices; for even cycles this is already a perfect matching of
// the cycle, odd cycles are rematched later around the chosen bridge
// endpoints.
func (s *Solver[B]) containsTwoOddCycles(F []int, cycles *[2]oddCycle[B], M []int) bool {
	for i := range M {
		M[i] = -1
	}
	numOdd := 0
	unchecked := bitset.Universe[B](s.g.N)

	for el := unchecked.Next(-1); el != -1; el = unchecked.Next(el) {
		cur := el
		prev := -1
		odd := false
		var cyc B
		if numOdd < 2 {
			cycles[numOdd].verts = cycles[numOdd].verts[:0]
		}
		for {
			unchecked = unchecked.Remove(cur)
			cyc = cyc.Add(cur)
			if numOdd < 2 {
				cycles[numOdd].verts = append(cycles[numOdd].verts, cur)
			}
			next := s.g.Adj[cur].Next(-1)
			for next == prev || next == F[cur] {
				next = s.g.Adj[cur].Next(next)
			}
			if M[cur] == -1 {
				M[cur] = next
				M[next] = cur
			}
			prev = cur
			cur = next
			odd = !odd
			if cur == el {
				break
			}
		}

		if odd {
			if numOdd < 2 {
				cycles[numOdd].elems = cyc
			}
			numOdd++
			if numOdd > 2 {
				return false
			}
		}
	}
	return numOdd == 2
}

// oddCycleMatching rebuilds M on the two odd cycles as a maximum
// matching of C1-{x1} and C2-{x2}, pairing alternately starting just
// past the given indices.
func oddCycleMatching[B bitset.Bits[B]](cycles *[2]oddCycle[B], ix1, ix2 int, M []int) {
	for c, start := range [2]int{ix1, ix2} {
		verts := cycles[c].verts
		cur := start
		addToMatching := false
		for {
			next := (cur + 1) % len(verts)
			if addToMatching {
				M[verts[next]] = verts[cur]
				M[verts[cur]] = verts[next]
			}
			addToMatching = !addToMatching
			cur = next
			if cur == start {
				break
			}
		}
	}
}

func indexOf(u int, verts []int) int {
	for i, w := range verts {
		if w == u {
			return i
		}
	}
	return -1
}

// tryDirectBridge handles the configuration where the two odd cycles
// are joined by the matching edge {x1, x2} = {u, v}.
func (s *Solver[B]) tryDirectBridge(F []int, cycles *[2]oddCycle[B], M []int, u, v int) bool {
	ix1 := indexOf(u, cycles[0].verts)
	ix2 := indexOf(v, cycles[1].verts)
	oddCycleMatching(cycles, ix1, ix2, M)

	n0 := len(cycles[0].verts)
	n1 := len(cycles[1].verts)
	u1 := cycles[0].verts[(ix1+1)%n0]
	u2 := cycles[1].verts[(ix2+1)%n1]
	v1 := cycles[0].verts[(n0+ix1-1)%n0]
	v2 := cycles[1].verts[(n1+ix2-1)%n1]

	circuit := make([]int, s.g.N)
	for i := range circuit {
		circuit[i] = -1
	}

	if !s.circuitConsistent(M, F, circuit, u1, v1) ||
		!s.circuitConsistent(M, F, circuit, u2, v2) {
		return false
	}

	between := []int{u, v}
	if !s.suppressedEdgesAreDeletable(circuit, between) {
		if s.opt.Verbose {
			klog.Infof("Not deletable: first")
		}
		return false
	}

	s.cnt.GraphsSatisfyingFirstOddness++
	if s.opt.DoubleCheck || s.opt.Print {
		s.verifyHeuristicOrientations(circuit, F, M, between)
	}
	return true
}

// tryTwoEdgePath handles the configuration where x1 = u on the first
// odd cycle reaches the second one through a two-edge path u - y1 - y2
// - x2, with {y1, y2} on some other (even) cycle of the 2-factor.
func (s *Solver[B]) tryTwoEdgePath(F []int, cycles *[2]oddCycle[B], M []int, u, y1 int) bool {
	for y2 := s.g.Adj[y1].Next(-1); y2 != -1; y2 = s.g.Adj[y1].Next(y2) {
		if y2 == u {
			continue
		}
		v := s.g.Adj[y2].Intersect(cycles[1].elems).Next(-1)
		if v == -1 {
			continue
		}

		ix1 := indexOf(u, cycles[0].verts)
		ix2 := indexOf(v, cycles[1].verts)
		oddCycleMatching(cycles, ix1, ix2, M)

		n0 := len(cycles[0].verts)
		n1 := len(cycles[1].verts)
		u1 := cycles[0].verts[(ix1+1)%n0]
		u2 := cycles[1].verts[(ix2+1)%n1]
		v1 := cycles[0].verts[(n0+ix1-1)%n0]
		v2 := cycles[1].verts[(n1+ix2-1)%n1]
		w1 := s.g.Adj[y1].Diff(bitset.Single[B](y2).Add(F[y1])).Next(-1)
		w2 := s.g.Adj[y2].Diff(bitset.Single[B](y1).Add(F[y2])).Next(-1)

		circuit := make([]int, s.g.N)
		for i := range circuit {
			circuit[i] = -1
		}

		// M must stay maximal on C - {x1, x2, y1, y2}; repair the even
		// cycle so that y1 pairs with y2.
		if M[y1] != y2 {
			s.rematch(M, F, y1, y2)
		}

		if s.circuitConsistent(M, F, circuit, u1, v1) &&
			s.circuitConsistent(M, F, circuit, u2, v2) &&
			s.circuitConsistent(M, F, circuit, w1, w2) {
			between := []int{u, y1, y2, v}
			if s.suppressedEdgesAreDeletable(circuit, between) {
				s.cnt.GraphsSatisfyingSecondOddness++
				if s.opt.DoubleCheck || s.opt.Print {
					s.verifyHeuristicOrientations(circuit, F, M, between)
				}
				return true
			}
			if s.opt.Verbose {
				klog.Infof("Not deletable")
			}
		}
	}
	return false
}

// circuitConsistent checks that the chosen bridge endpoints can agree
// on a cyclic direction of the circuits of F - {x1,x2,(y1,y2)} union M.
// If the circuit through u (or v) is not yet oriented, it is oriented
// now by walking it, alternating M and F edges.
func (s *Solver[B]) circuitConsistent(M, F, circuit []int, u, v int) bool {
	if circuit[u] == -1 {
		// Orient the edges incident to u consistently with those at v;
		// if v is also unoriented the starting direction is free.
		takeM := circuit[v] == F[v]
		cur := u
		for {
			var next int
			if takeM {
				next = M[cur]
			} else {
				next = F[cur]
			}
			circuit[cur] = next
			cur = next
			takeM = !takeM
			if cur == u {
				break
			}
		}
	}

	if circuit[v] == -1 {
		takeM := circuit[u] == F[u]
		cur := v
		for {
			var next int
			if takeM {
				next = M[cur]
			} else {
				next = F[cur]
			}
			circuit[cur] = next
			cur = next
			takeM = !takeM
			if cur == v {
				break
			}
		}
	}

	return (circuit[u] == F[u]) == (circuit[v] == M[v])
}

// rematch redoes M along the even cycle through y1 and y2 so that M
// pairs y1 with y2 and stays maximal on the rest of that cycle.
func (s *Solver[B]) rematch(M, F []int, y1, y2 int) {
	prev := y2
	cur := y1
	addToMatching := false
	for {
		next := s.g.Adj[cur].Diff(bitset.Single[B](F[cur]).Add(prev)).Next(-1)
		if addToMatching {
			M[cur] = next
			M[next] = cur
		}
		prev = cur
		cur = next
		addToMatching = !addToMatching
		if cur == y2 {
			break
		}
	}
	M[y1] = y2
	M[y2] = y1
}

// cyclicDFS explores one component of the (mutated) underlying graph,
// setting cycleFound when it meets an already-visited vertex other than
// its parent.
func (s *Solver[B]) cyclicDFS(component, unchecked *B, v, parent int, cycleFound *bool) {
	if (*component).Contains(v) {
		*cycleFound = true
		return
	}
	*unchecked = (*unchecked).Remove(v)
	*component = (*component).Add(v)

	nbrs := s.g.Adj[v]
	if parent >= 0 {
		nbrs = nbrs.Remove(parent)
	}
	for nbr := nbrs.Next(-1); nbr != -1; nbr = nbrs.Next(nbr) {
		s.cyclicDFS(component, unchecked, nbr, v, cycleFound)
	}
}

// cyclicallyConnected reports whether at most one component of the
// current (mutated) graph contains a cycle.
func (s *Solver[B]) cyclicallyConnected() bool {
	unchecked := bitset.Universe[B](s.g.N)
	withCycle := 0
	for v := unchecked.Next(-1); v != -1; v = unchecked.Next(v) {
		var component B
		cycleFound := false
		s.cyclicDFS(&component, &unchecked, v, -1, &cycleFound)
		if cycleFound {
			withCycle++
		}
		if withCycle >= 2 {
			return false
		}
	}
	return true
}

// edgeIsStrong2Edge checks that the edge {p, q}, valued 2 in the
// candidate nowhere-zero 4-flow, lies in no cycle-separating 3-edge cut
// together with two oriented circuit edges. Sufficient, not exact.
func (s *Solver[B]) edgeIsStrong2Edge(p, q int, circuit []int) bool {
	hasCut := false
	s.g.RemoveEdge(p, q)

	for i := 0; i < s.g.N; i++ {
		if circuit[i] == -1 {
			continue
		}
		s.g.RemoveEdge(i, circuit[i])

		for j := i + 1; j < s.g.N; j++ {
			if circuit[j] == -1 {
				continue
			}
			s.g.RemoveEdge(j, circuit[j])
			if !s.cyclicallyConnected() {
				hasCut = true
			}
			s.g.AddEdge(j, circuit[j])
			if hasCut {
				break
			}
		}

		s.g.AddEdge(i, circuit[i])
		if hasCut {
			break
		}
	}

	s.g.AddEdge(p, q)
	return !hasCut
}

// suppressedEdgesAreDeletable tests the strong-2-edge property at every
// endpoint of the suppressed inter-cycle edges, with those edges
// removed from the graph for the duration.
func (s *Solver[B]) suppressedEdgesAreDeletable(circuit []int, between []int) bool {
	ok := true
	for i := 0; i+1 < len(between); i += 2 {
		s.g.RemoveEdge(between[i], between[i+1])
	}
	for i := 0; i+1 < len(between); i += 2 {
		if !s.edgeIsStrong2Edge(between[i], s.g.Adj[between[i]].Next(-1), circuit) {
			ok = false
			break
		}
		if !s.edgeIsStrong2Edge(between[i+1], s.g.Adj[between[i+1]].Next(-1), circuit) {
			ok = false
			break
		}
	}
	for i := 0; i+1 < len(between); i += 2 {
		s.g.AddEdge(between[i], between[i+1])
	}
	return ok
}
