package libfrank2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberEdgesCanonical(t *testing.T) {
	g := k4()
	en := NumberEdges(&g)

	require.Equal(t, 6, en.EdgeCount())

	// Ascending u, then neighbors v > u ascending.
	want := map[[2]int]int{
		{0, 1}: 0, {0, 2}: 1, {0, 3}: 2,
		{1, 2}: 3, {1, 3}: 4,
		{2, 3}: 5,
	}
	for pair, idx := range want {
		assert.Equal(t, idx, en.Index(pair[0], pair[1]))
		assert.Equal(t, idx, en.Index(pair[1], pair[0]), "numbering must be symmetric")
	}
}

func TestNumberEdgesCoversAllIndices(t *testing.T) {
	for name, g := range map[string]Graph[set64]{
		"petersen":   petersen(),
		"pentaPrism": pentaPrism(),
		"k33":        k33(),
	} {
		en := NumberEdges(&g)
		require.Equal(t, g.EdgeCount(), en.EdgeCount(), name)

		seen := make(map[int]int)
		for u := 0; u < g.N; u++ {
			for v := g.Adj[u].Next(u); v != -1; v = g.Adj[u].Next(v) {
				seen[en.Index(u, v)]++
			}
		}
		require.Len(t, seen, g.EdgeCount(), name)
		for idx, count := range seen {
			assert.GreaterOrEqual(t, idx, 0, name)
			assert.Less(t, idx, g.EdgeCount(), name)
			assert.Equal(t, 1, count, name)
		}
	}
}

func TestDiGraphArcSymmetry(t *testing.T) {
	d := NewDiGraph[set64](4)
	d.AddArc(0, 1)
	d.AddArc(1, 2)
	d.AddArc(2, 0)

	assert.Equal(t, 3, d.Arcs)
	for u := 0; u < d.N; u++ {
		for v := d.Out[u].Next(-1); v != -1; v = d.Out[u].Next(v) {
			assert.True(t, d.In[v].Contains(u))
		}
	}

	d.RemoveArc(1, 2)
	assert.Equal(t, 2, d.Arcs)
	assert.False(t, d.Out[1].Contains(2))
	assert.False(t, d.In[2].Contains(1))
}

func TestIsCubic(t *testing.T) {
	g := k4()
	assert.True(t, g.IsCubic())

	p := graphOf(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	assert.False(t, p.IsCubic())
}
