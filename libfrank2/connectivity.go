package libfrank2

import "github.com/2x3systems/frank2/libfrank2/bitset"

// stronglyConnected runs the two-pass Kosaraju test: a forward DFS over
// every component records the last vertex in post-order, then a reverse
// reachability pass from that vertex must cover all n vertices. Both
// passes are iterative over the solver's scratch buffers so the test
// allocates nothing; it runs once per generated orientation.
func (s *Solver[B]) stronglyConnected(d *DiGraph[B]) bool {
	n := d.N
	unvisited := bitset.Universe[B](n)
	last := -1

	for root := 0; root < n; root++ {
		if !unvisited.Contains(root) {
			continue
		}
		unvisited = unvisited.Remove(root)
		sp := 0
		s.frameV[0], s.frameN[0] = root, -1
		for sp >= 0 {
			v := s.frameV[sp]
			nbr := d.Out[v].Intersect(unvisited).Next(s.frameN[sp])
			if nbr == -1 {
				last = v
				sp--
				continue
			}
			s.frameN[sp] = nbr
			unvisited = unvisited.Remove(nbr)
			sp++
			s.frameV[sp], s.frameN[sp] = nbr, -1
		}
	}

	assigned := bitset.Single[B](last)
	s.stack[0] = last
	top := 1
	for top > 0 {
		top--
		v := s.stack[top]
		for w := d.In[v].Next(-1); w != -1; w = d.In[v].Next(w) {
			if !assigned.Contains(w) {
				assigned = assigned.Add(w)
				s.stack[top] = w
				top++
			}
		}
	}
	return assigned.Count() == n
}

// hasDirectedPath reports whether to is reachable from from in d.
func (s *Solver[B]) hasDirectedPath(d *DiGraph[B], from, to int) bool {
	if d.Out[from].Contains(to) {
		return true
	}
	visited := bitset.Single[B](from)
	s.stack[0] = from
	top := 1
	for top > 0 {
		top--
		v := s.stack[top]
		for w := d.Out[v].Next(-1); w != -1; w = d.Out[v].Next(w) {
			if w == to {
				return true
			}
			if !visited.Contains(w) {
				visited = visited.Add(w)
				s.stack[top] = w
				top++
			}
		}
	}
	return false
}

// deletableEdges returns the edges of a strongly connected orientation
// whose arc can be removed without breaking strong connectivity.
// Removing a single arc u->v only matters for the u-to-v direction, so
// one forward reachability probe per arc suffices.
func (s *Solver[B]) deletableEdges(d *DiGraph[B]) B {
	var deletable B
	for u := 0; u < d.N; u++ {
		for v := d.Out[u].Next(-1); v != -1; v = d.Out[u].Next(v) {
			d.RemoveArc(u, v)
			if s.hasDirectedPath(d, u, v) {
				deletable = deletable.Add(s.en.Index(u, v))
			}
			d.AddArc(u, v)
		}
	}
	return deletable
}
