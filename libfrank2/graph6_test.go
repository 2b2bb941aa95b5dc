package libfrank2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2x3systems/frank2/frank2"
)

func TestGraph6VertexCount(t *testing.T) {
	tests := []struct {
		line string
		n    int
		err  error
	}{
		{"C~\n", 4, nil},
		{"IsP@OkWHG\n", 10, nil},
		{">>graph6<<C~\n", 4, nil},
		{"", -1, frank2.ErrEmptyLine},
		{"\x01abc\n", -1, frank2.ErrBadGraph6Header},
	}
	for _, tt := range tests {
		n, err := Graph6VertexCount(tt.line)
		assert.Equal(t, tt.n, n, tt.line)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, tt.line)
		} else {
			assert.NoError(t, err, tt.line)
		}
	}
}

func TestLoadGraph6K4(t *testing.T) {
	n, err := Graph6VertexCount("C~\n")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	g, err := LoadGraph6[set64]("C~\n", n)
	require.NoError(t, err)

	want := k4()
	assert.Equal(t, want.Adj, g.Adj)
}

func TestLoadGraph6HeaderPassthrough(t *testing.T) {
	g, err := LoadGraph6[set64](">>graph6<<C~\n", 4)
	require.NoError(t, err)
	assert.Equal(t, k4().Adj, g.Adj)
}

func TestLoadGraph6Petersen(t *testing.T) {
	const line = "IsP@OkWHG\n"
	n, err := Graph6VertexCount(line)
	require.NoError(t, err)
	require.Equal(t, 10, n)

	g, err := LoadGraph6[set64](line, n)
	require.NoError(t, err)
	require.True(t, g.IsCubic())

	// Adjacency of this labelling, decoded by hand.
	want := graphOf(10, [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 4}, {1, 5},
		{2, 6}, {2, 9},
		{3, 7}, {3, 8},
		{4, 6}, {4, 8},
		{5, 7}, {5, 9},
		{6, 7},
		{8, 9},
	})
	assert.Equal(t, want.Adj, g.Adj)
}

func TestLoadGraph6MissingNewline(t *testing.T) {
	_, err := LoadGraph6[set64]("C~", 4)
	assert.ErrorIs(t, err, frank2.ErrMissingNewline)
}

func TestLoadGraph6RejectsBadBytes(t *testing.T) {
	_, err := LoadGraph6[set64]("C\x05\n", 4)
	assert.ErrorIs(t, err, frank2.ErrBadGraph6Header)
}
