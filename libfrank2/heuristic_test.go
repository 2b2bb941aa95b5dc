package libfrank2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicK4NoOddCycles(t *testing.T) {
	// K4 minus any perfect matching is a single 4-cycle, so the
	// two-odd-cycles condition can never hold.
	s, cnt := newTestSolver(k4(), testOptions())
	assert.False(t, s.HasSufficientCondition())
	assert.Zero(t, cnt.GraphsSatisfyingFirstOddness)
	assert.Zero(t, cnt.GraphsSatisfyingSecondOddness)
}

func TestHeuristicK33EvenCyclesOnly(t *testing.T) {
	// Bipartite, so every 2-factor consists of even cycles.
	s, _ := newTestSolver(k33(), testOptions())
	assert.False(t, s.HasSufficientCondition())
}

func TestHeuristicPetersenFailsConsistency(t *testing.T) {
	// Every 2-factor of the Petersen graph is a pair of chordless
	// 5-cycles with all five matching edges crossing between them; the
	// circuit-orientation parity check rejects each bridge choice, so
	// the sufficient condition never fires even though the exact Frank
	// number is 2.
	s, _ := newTestSolver(petersen(), testOptions())
	assert.False(t, s.HasSufficientCondition())
}

func TestHeuristicPentaPrism(t *testing.T) {
	// The rung matching of C5 x K2 leaves two odd 5-cycles joined by
	// matching edges; the direct-bridge configuration certifies Frank
	// number 2.
	s, cnt := newTestSolver(pentaPrism(), testOptions())
	assert.True(t, s.HasSufficientCondition())
	assert.Equal(t, uint64(1), cnt.GraphsSatisfyingFirstOddness)
}

func TestHeuristicPentaPrismDoubleCheck(t *testing.T) {
	// With double-check on, the two witness orientations are built and
	// validated; a panic here means the proof machinery is broken.
	opt := testOptions()
	opt.DoubleCheck = true
	s, _ := newTestSolver(pentaPrism(), opt)
	assert.True(t, s.HasSufficientCondition())
}

func TestHeuristicAgreesWithExact(t *testing.T) {
	// A heuristic success must be confirmed by the exact engine.
	for name, build := range map[string]func() Graph[set64]{
		"pentaPrism": pentaPrism,
		"petersen":   petersen,
		"k33":        k33,
	} {
		h, _ := newTestSolver(build(), testOptions())
		if h.HasSufficientCondition() {
			e, _ := newTestSolver(build(), testOptions())
			require.Equal(t, 2, e.FindFrankNumber(), name)
		}
	}
}

func TestHeuristicLeavesGraphIntact(t *testing.T) {
	// The strong-2-edge test removes and restores edges; the adjacency
	// must be bit-identical afterwards.
	g := pentaPrism()
	want := make([]set64, len(g.Adj))
	copy(want, g.Adj)

	s, _ := newTestSolver(g, testOptions())
	s.HasSufficientCondition()
	assert.Equal(t, want, g.Adj)
}
