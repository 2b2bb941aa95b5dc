package libfrank2

import (
	"github.com/2x3systems/frank2/libfrank2/bitset"
)

// orientFactorCycles walks the 2-factor cycle through start and orients
// it in both witness digraphs. The walk direction is chosen so that it
// agrees with the circuit orientation seen at the predecessor of start:
// an edge already oriented against the walk is reversed in the second
// witness, an edge oriented in neither direction enters both.
func (s *Solver[B]) orientFactorCycles(F, circuit []int, start int, unchecked *B, o1, o2 *DiGraph[B]) {
	cur := start

	prev := s.g.Adj[cur].Diff(bitset.Single[B](F[cur])).Next(-1)
	if circuit[prev] == -1 || circuit[prev] != F[prev] {
		prev = s.g.Adj[cur].Diff(bitset.Single[B](F[cur])).Next(prev)
	}

	for {
		*unchecked = (*unchecked).Remove(cur)
		next := s.g.Adj[cur].Next(-1)
		for next == prev || next == F[cur] {
			next = s.g.Adj[cur].Next(next)
		}
		if circuit[next] == cur {
			o2.AddArc(cur, next)
			o2.RemoveArc(next, cur)
		} else if circuit[cur] != next && circuit[next] != cur {
			o1.AddArc(cur, next)
			o2.AddArc(cur, next)
		}
		prev = cur
		cur = next
		if cur == start {
			break
		}
	}
}

// verifyHeuristicOrientations materializes the two complementary
// orientations a successful configuration promises and validates them.
// A failure here is a bug in the proof machinery, not bad input, and
// aborts.
func (s *Solver[B]) verifyHeuristicOrientations(circuit, F, M []int, between []int) {
	n := s.g.N
	o1 := NewDiGraph[B](n)
	o2 := NewDiGraph[B](n)

	// The suppressed inter-cycle edges run in opposite directions in
	// the two witnesses.
	var endpoints B
	for i := 0; i+1 < len(between); i += 2 {
		o1.AddArc(between[i], between[i+1])
		o2.AddArc(between[i+1], between[i])
		endpoints = endpoints.Add(between[i]).Add(between[i+1])
	}

	for i := 0; i < n; i++ {
		if endpoints.Contains(i) {
			continue
		}

		// Circuits untouched by the consistency checks are still
		// unoriented; orient them now.
		if circuit[i] == -1 {
			takeM := true
			cur := i
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
				if cur == i {
					break
				}
			}
		}
		o1.AddArc(circuit[i], i)
		o2.AddArc(i, circuit[i])
	}

	unchecked := bitset.Universe[B](n)
	for _, v := range between {
		if unchecked.Contains(v) {
			s.orientFactorCycles(F, circuit, v, &unchecked, o1, o2)
		}
	}
	for v := unchecked.Next(-1); v != -1; v = unchecked.Next(v) {
		s.orientFactorCycles(F, circuit, v, &unchecked, o1, o2)
	}

	if !s.stronglyConnected(o1) || !s.stronglyConnected(o2) {
		panic("orientations from oddness-2 heuristic are not strongly connected")
	}

	d1 := s.deletableEdges(o1)
	d2 := s.deletableEdges(o2)

	if s.opt.Print {
		WriteDeletableEdges(s.dump, o1, &s.en, d1)
		o1.WriteTo(s.dump)
		WriteDeletableEdges(s.dump, o2, &s.en, d2)
		o2.WriteTo(s.dump)
	}

	if d1.Union(d2) != s.allEdges() {
		panic("orientations from oddness-2 heuristic are not complementary")
	}
}
