// File: bitset.go
// Role: Fixed-width bitset over host vertex indices.

package matcher

import "math/bits"

// bitset is a dense set of small non-negative integers.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

func (b bitset) set(i int) { b[i>>6] |= 1 << (uint(i) & 63) }
func (b bitset) clear(i int) { b[i>>6] &^= 1 << (uint(i) & 63) }
func (b bitset) has(i int) bool { return b[i>>6]&(1<<(uint(i)&63)) != 0 }
func (b bitset) empty() bool { return b.count() == 0 }

func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}

	return n
}

// intersects reports whether b ∩ o ∖ minus is non-empty.
func (b bitset) intersects(o, minus bitset) bool {
	for i := range b {
		if b[i]&o[i]&^minus[i] != 0 {
			return true
		}
	}

	return false
}

// each calls fn for every member of b ∩ o ∖ minus in ascending order;
// fn returning false stops the walk.
func (b bitset) each(o, minus bitset, fn func(int) bool) bool {
	for i := range b {
		w := b[i] & o[i] &^ minus[i]
		for w != 0 {
			t := bits.TrailingZeros64(w)
			if !fn(i<<6 | t) {
				return false
			}
			w &= w - 1
		}
	}

	return true
}
