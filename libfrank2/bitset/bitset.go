// Package bitset provides the fixed-width vertex and edge sets the
// solvers are generic over. Sets are plain values; every operation
// returns a new set, so carrying one across a recursion is a copy.
package bitset

import "math/bits"

// Bits is the operation set shared by all widths. A cubic graph on n
// vertices needs both n and 3n/2 to fit the width, since edge sets use
// the same representation as vertex sets.
type Bits[B any] interface {
	comparable

	Add(i int) B
	Remove(i int) B
	Contains(i int) bool
	Union(other B) B
	Intersect(other B) B
	Diff(other B) B

	// UpTo returns the set {0, .., n-1}. The receiver is ignored; it
	// exists so generic code can reach a constructor from a zero value.
	UpTo(n int) B

	// Next returns the lowest member strictly greater than after, or -1.
	// Next(-1) is the lowest member.
	Next(after int) int

	Count() int
	IsEmpty() bool
	Width() int
}

// Universe returns {0, .., n-1} for the chosen width.
func Universe[B Bits[B]](n int) B {
	var zero B
	return zero.UpTo(n)
}

// Single returns {i}.
func Single[B Bits[B]](i int) B {
	var zero B
	return zero.Add(i)
}

// Set64 is a set over 0..63.
type Set64 uint64

func (s Set64) Add(i int) Set64        { return s | 1<<uint(i) }
func (s Set64) Remove(i int) Set64     { return s &^ (1 << uint(i)) }
func (s Set64) Contains(i int) bool    { return s&(1<<uint(i)) != 0 }
func (s Set64) Union(t Set64) Set64    { return s | t }
func (s Set64) Intersect(t Set64) Set64 { return s & t }
func (s Set64) Diff(t Set64) Set64     { return s &^ t }
func (s Set64) Count() int             { return bits.OnesCount64(uint64(s)) }
func (s Set64) IsEmpty() bool          { return s == 0 }
func (s Set64) Width() int             { return 64 }

func (s Set64) UpTo(n int) Set64 {
	if n >= 64 {
		return ^Set64(0)
	}
	return Set64(1)<<uint(n) - 1
}

func (s Set64) Next(after int) int {
	if after >= 63 {
		return -1
	}
	rest := uint64(s) &^ (uint64(1)<<uint(after+1) - 1)
	if rest == 0 {
		return -1
	}
	return bits.TrailingZeros64(rest)
}

// Set128 is a set over 0..127.
type Set128 struct {
	lo, hi uint64
}

func (s Set128) Add(i int) Set128 {
	if i < 64 {
		s.lo |= 1 << uint(i)
	} else {
		s.hi |= 1 << uint(i-64)
	}
	return s
}

func (s Set128) Remove(i int) Set128 {
	if i < 64 {
		s.lo &^= 1 << uint(i)
	} else {
		s.hi &^= 1 << uint(i-64)
	}
	return s
}

func (s Set128) Contains(i int) bool {
	if i < 64 {
		return s.lo&(1<<uint(i)) != 0
	}
	return s.hi&(1<<uint(i-64)) != 0
}

func (s Set128) Union(t Set128) Set128     { return Set128{s.lo | t.lo, s.hi | t.hi} }
func (s Set128) Intersect(t Set128) Set128 { return Set128{s.lo & t.lo, s.hi & t.hi} }
func (s Set128) Diff(t Set128) Set128      { return Set128{s.lo &^ t.lo, s.hi &^ t.hi} }
func (s Set128) Count() int                { return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi) }
func (s Set128) IsEmpty() bool             { return s.lo == 0 && s.hi == 0 }
func (s Set128) Width() int                { return 128 }

func (s Set128) UpTo(n int) Set128 {
	switch {
	case n >= 128:
		return Set128{^uint64(0), ^uint64(0)}
	case n >= 64:
		return Set128{^uint64(0), uint64(1)<<uint(n-64) - 1}
	default:
		return Set128{uint64(1)<<uint(n) - 1, 0}
	}
}

func (s Set128) Next(after int) int {
	if after < 63 {
		lo := s.lo
		if after >= 0 {
			lo &^= uint64(1)<<uint(after+1) - 1
		}
		if lo != 0 {
			return bits.TrailingZeros64(lo)
		}
		if s.hi != 0 {
			return 64 + bits.TrailingZeros64(s.hi)
		}
		return -1
	}
	if after >= 127 {
		return -1
	}
	hi := s.hi
	if after >= 64 {
		hi &^= uint64(1)<<uint(after-63) - 1
	}
	if hi == 0 {
		return -1
	}
	return 64 + bits.TrailingZeros64(hi)
}
