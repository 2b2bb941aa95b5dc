package libfrank2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2x3systems/frank2/libfrank2/bitset"
)

// orientedK4 returns K4 with the orientation 0->1->2->3->0, 0->2, 1->3.
func orientedK4() (*Solver[set64], *DiGraph[set64]) {
	s, _ := newTestSolver(k4(), testOptions())
	d := NewDiGraph[set64](4)
	for _, arc := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {1, 3}} {
		d.AddArc(arc[0], arc[1])
	}
	return s, d
}

func TestStronglyConnected(t *testing.T) {
	s, d := orientedK4()
	assert.True(t, s.stronglyConnected(d))

	// Breaking the only arc into vertex 1 kills strong connectivity.
	d.RemoveArc(0, 1)
	assert.False(t, s.stronglyConnected(d))
	d.AddArc(0, 1)
	assert.True(t, s.stronglyConnected(d))
}

func TestStronglyConnectedDirectedCycle(t *testing.T) {
	g := pentaPrism()
	s, _ := newTestSolver(g, testOptions())

	d := NewDiGraph[set64](10)
	for i := 0; i < 10; i++ {
		d.AddArc(i, (i+1)%10)
	}
	assert.True(t, s.stronglyConnected(d))

	d.RemoveArc(9, 0)
	assert.False(t, s.stronglyConnected(d))
}

func TestDeletableEdgesOrientedK4(t *testing.T) {
	s, d := orientedK4()
	require.True(t, s.stronglyConnected(d))

	deletable := s.deletableEdges(d)

	// With the canonical numbering (0,1)=0 (0,2)=1 (0,3)=2 (1,2)=3
	// (1,3)=4 (2,3)=5: the arcs 0->2, 1->2, 1->3 have detours, the
	// cycle arcs 0->1, 2->3, 3->0 do not.
	want := bitset.Single[set64](1).Add(3).Add(4)
	assert.Equal(t, want, deletable)
}

func TestDeletableEdgesReversalInvariant(t *testing.T) {
	s, d := orientedK4()
	deletable := s.deletableEdges(d)

	rev := NewDiGraph[set64](4)
	for u := 0; u < 4; u++ {
		for v := d.Out[u].Next(-1); v != -1; v = d.Out[u].Next(v) {
			rev.AddArc(v, u)
		}
	}
	require.True(t, s.stronglyConnected(rev))
	assert.Equal(t, deletable, s.deletableEdges(rev))
}

func TestHasDirectedPath(t *testing.T) {
	s, _ := newTestSolver(k4(), testOptions())
	d := NewDiGraph[set64](4)
	d.AddArc(0, 1)
	d.AddArc(1, 2)

	assert.True(t, s.hasDirectedPath(d, 0, 2))
	assert.True(t, s.hasDirectedPath(d, 1, 2))
	assert.False(t, s.hasDirectedPath(d, 2, 0))
	assert.False(t, s.hasDirectedPath(d, 0, 3))
}
