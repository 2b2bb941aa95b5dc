package libfrank2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2x3systems/frank2/frank2"
	"github.com/2x3systems/frank2/libfrank2/bitset"
)

func edgeSet(members ...int) set64 {
	var s set64
	for _, m := range members {
		s = s.Add(m)
	}
	return s
}

func TestPoolSubsetDismissed(t *testing.T) {
	cnt := &frank2.Counters{}
	all := bitset.Universe[set64](6)
	p := NewPool[set64](4)

	require.Equal(t, 0, p.Offer(edgeSet(0, 1, 2), all, cnt))
	require.Equal(t, 0, p.Offer(edgeSet(0, 1), all, cnt))
	assert.Equal(t, uint64(1), cnt.OrientationsGivingSubset)
	assert.Equal(t, 1, p.Used())
}

func TestPoolSupersetRetiresEntry(t *testing.T) {
	cnt := &frank2.Counters{}
	all := bitset.Universe[set64](6)
	p := NewPool[set64](4)

	require.Equal(t, 0, p.Offer(edgeSet(0, 1), all, cnt))
	require.Equal(t, 0, p.Offer(edgeSet(0, 1, 2), all, cnt))
	assert.Equal(t, uint64(1), cnt.OrientationsGivingSuperset)

	// The dominated entry became the sentinel and its slot was reused.
	live := 0
	for _, e := range p.Entries() {
		if !e.IsEmpty() {
			live++
		}
	}
	assert.Equal(t, 1, live)
}

func TestPoolComplementaryPair(t *testing.T) {
	cnt := &frank2.Counters{}
	all := bitset.Universe[set64](6)
	p := NewPool[set64](4)

	require.Equal(t, 0, p.Offer(edgeSet(0, 1, 2), all, cnt))
	assert.Equal(t, 2, p.Offer(edgeSet(3, 4, 5), all, cnt))
	assert.Equal(t, uint64(1), cnt.ComplementaryBitsets)
}

func TestPoolNoComparableLiveEntries(t *testing.T) {
	cnt := &frank2.Counters{}
	all := bitset.Universe[set64](8)
	p := NewPool[set64](2)

	sets := []set64{
		edgeSet(0, 1, 2),
		edgeSet(2, 3, 4),
		edgeSet(0, 1),       // subset of the first: dismissed
		edgeSet(0, 1, 2, 3), // supersedes the first
		edgeSet(5, 6),
	}
	for _, d := range sets {
		require.Equal(t, 0, p.Offer(d, all, cnt))
	}

	entries := p.Entries()
	for i, a := range entries {
		if a.IsEmpty() {
			continue
		}
		for j, b := range entries {
			if i == j || b.IsEmpty() {
				continue
			}
			assert.False(t, a.Diff(b).IsEmpty(), "live entry %d is a subset of live entry %d", i, j)
		}
	}
}
