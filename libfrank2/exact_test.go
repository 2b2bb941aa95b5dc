package libfrank2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactK4(t *testing.T) {
	s, cnt := newTestSolver(k4(), testOptions())
	assert.Equal(t, 2, s.FindFrankNumber())
	assert.NotZero(t, cnt.TotalOrientationsGenerated)
}

func TestExactK4BruteForce(t *testing.T) {
	opt := testOptions()
	opt.BruteForce = true
	s, _ := newTestSolver(k4(), opt)
	assert.Equal(t, 2, s.FindFrankNumber())
}

func TestExactPetersen(t *testing.T) {
	s, _ := newTestSolver(petersen(), testOptions())
	assert.Equal(t, 2, s.FindFrankNumber())
}

func TestExactPentaPrism(t *testing.T) {
	s, _ := newTestSolver(pentaPrism(), testOptions())
	assert.Equal(t, 2, s.FindFrankNumber())
}

// The constraint search and the brute-force comparator must agree.
func TestSmartMatchesBruteForce(t *testing.T) {
	for name, build := range map[string]func() Graph[set64]{
		"k4":       k4,
		"k33":      k33,
		"triPrism": triPrism,
		"petersen": petersen,
	} {
		smart, _ := newTestSolver(build(), testOptions())
		smartFN := smart.FindFrankNumber()

		bruteOpt := testOptions()
		bruteOpt.BruteForce = true
		brute, _ := newTestSolver(build(), bruteOpt)
		bruteFN := brute.FindFrankNumber()

		assert.Equal(t, smartFN, bruteFN, name)
	}
}

// Splitting the orientation stream over shards must decide exactly like
// a full run: positive iff some shard is positive.
func TestSingleGraphShardUnion(t *testing.T) {
	full, _ := newTestSolver(k4(), testOptions())
	want := full.FindFrankNumber()

	const mod = 3
	got := 0
	for res := 0; res < mod; res++ {
		opt := testOptions()
		opt.SingleGraph = true
		opt.Modulo = mod
		opt.Remainder = res
		s, _ := newTestSolver(k4(), opt)
		if s.FindFrankNumber() == 2 {
			got = 2
		}
	}
	assert.Equal(t, want, got)
}

func TestBruteForcePoolRecyclesCapacity(t *testing.T) {
	opt := testOptions()
	opt.BruteForce = true
	opt.PoolSize = 1
	s, cnt := newTestSolver(petersen(), opt)
	require.Equal(t, 2, s.FindFrankNumber())
	assert.GreaterOrEqual(t, cnt.StoredBitsets, uint64(2))
	// The pool outgrew its initial capacity and reported the larger one
	// back for the next graph.
	assert.Greater(t, opt.PoolSize, 1)
}
