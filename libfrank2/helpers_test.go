package libfrank2

import (
	"github.com/2x3systems/frank2/frank2"
	"github.com/2x3systems/frank2/libfrank2/bitset"
)

// Test graphs, 64-bit width throughout (every test graph is small).

type set64 = bitset.Set64

func graphOf(n int, edges [][2]int) Graph[bitset.Set64] {
	return GraphFromEdges[bitset.Set64](n, edges)
}

func k4() Graph[bitset.Set64] {
	return graphOf(4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
}

func k33() Graph[bitset.Set64] {
	return graphOf(6, [][2]int{
		{0, 3}, {0, 4}, {0, 5},
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	})
}

// triPrism is the 3-prism: two triangles joined by a matching.
func triPrism() Graph[bitset.Set64] {
	return graphOf(6, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{0, 3}, {1, 4}, {2, 5},
	})
}

// pentaPrism is C5 x K2, cyclically 4-edge-connected; the rung matching
// leaves two odd 5-cycles, so the heuristic certifies it.
func pentaPrism() Graph[bitset.Set64] {
	return graphOf(10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 5},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	})
}

func petersen() Graph[bitset.Set64] {
	return graphOf(10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
	})
}

func testOptions() *frank2.Options {
	opt := frank2.DefaultOptions()
	opt.PoolSize = 64
	return opt
}

func newTestSolver(g Graph[bitset.Set64], opt *frank2.Options) (*Solver[bitset.Set64], *frank2.Counters) {
	cnt := &frank2.Counters{}
	return NewSolver(g, opt, cnt), cnt
}
