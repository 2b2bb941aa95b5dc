package libfrank2

import (
	"github.com/2x3systems/frank2/frank2"
	"github.com/2x3systems/frank2/libfrank2/bitset"
)

// Pool is the brute-force comparator's store of deletable-edge sets.
// Entries dominated by a later superset are replaced in place by the
// empty-set sentinel, so no two live entries are ever comparable under
// inclusion. The backing array grows geometrically and its capacity is
// recycled across graphs through Options.PoolSize.
type Pool[B bitset.Bits[B]] struct {
	entries []B
}

func NewPool[B bitset.Bits[B]](capacity int) *Pool[B] {
	return &Pool[B]{entries: make([]B, 0, capacity)}
}

func (p *Pool[B]) Used() int    { return len(p.entries) }
func (p *Pool[B]) Cap() int     { return cap(p.entries) }
func (p *Pool[B]) Entries() []B { return p.entries }

// Offer compares the candidate set d against every live entry. A live
// superset of d dismisses d; a live subset of d is retired; a live
// entry complementary to d (union is all of E(G)) proves Frank number 2
// and returns 2. Otherwise d is stored in the first sentinel slot, or
// appended, and 0 is returned.
func (p *Pool[B]) Offer(d B, allEdges B, cnt *frank2.Counters) int {
	insertPos := len(p.entries)

	for i := range p.entries {
		if !p.entries[i].IsEmpty() {
			if d.Diff(p.entries[i]).IsEmpty() { // d subset of entry
				cnt.OrientationsGivingSubset++
				return 0
			}

			if p.entries[i].Diff(d).IsEmpty() { // entry subset of d
				if insertPos == len(p.entries) {
					cnt.OrientationsGivingSuperset++
					insertPos = i
				}
				var zero B
				p.entries[i] = zero
			}

			if d.Union(p.entries[i]) == allEdges {
				cnt.ComplementaryBitsets++
				p.entries = append(p.entries, d)
				return 2
			}
		} else if insertPos == len(p.entries) {
			insertPos = i
		}
	}

	if insertPos != len(p.entries) {
		p.entries[insertPos] = d
	} else {
		p.entries = append(p.entries, d)
	}
	return 0
}
