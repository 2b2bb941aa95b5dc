// Package libfrank2 decides whether a 3-edge-connected cubic graph has
// Frank number 2. Two engines cooperate: a sufficient-condition
// heuristic built on perfect matchings whose complementary 2-factor has
// exactly two odd cycles, and an exact engine that enumerates strongly
// connected orientations and searches for a complementary one.
//
// Everything is generic over the bit-set width B so the same code runs
// as a 64-bit solver (n <= 42 for cubic graphs, since edge sets share
// the width) or a 128-bit solver (n <= 85).
package libfrank2

import (
	"io"
	"os"

	"github.com/2x3systems/frank2/frank2"
	"github.com/2x3systems/frank2/libfrank2/bitset"
)

// Solver holds one graph and the scratch state both engines share.
// A Solver is single-use per graph and not safe for concurrent use.
type Solver[B bitset.Bits[B]] struct {
	g   Graph[B]
	en  EdgeNumbering
	opt *frank2.Options
	cnt *frank2.Counters

	// dump receives -p orientation listings; defaults to stderr.
	dump io.Writer

	orient *DiGraph[B]
	pool   *Pool[B]

	// scratch buffers for the connectivity passes
	frameV []int
	frameN []int
	stack  []int
}

func NewSolver[B bitset.Bits[B]](g Graph[B], opt *frank2.Options, cnt *frank2.Counters) *Solver[B] {
	s := &Solver[B]{
		g:    g,
		en:   NumberEdges(&g),
		opt:  opt,
		cnt:  cnt,
		dump: os.Stderr,
	}
	s.orient = NewDiGraph[B](g.N)
	s.frameV = make([]int, g.N)
	s.frameN = make([]int, g.N)
	s.stack = make([]int, g.N)
	return s
}

// SetDumpWriter redirects -p orientation listings (tests use this).
func (s *Solver[B]) SetDumpWriter(w io.Writer) { s.dump = w }

// allEdges returns the edge-set universe E(G).
func (s *Solver[B]) allEdges() B {
	return bitset.Universe[B](s.en.EdgeCount())
}
