package bits

import (
	bitset "github.com/bits-and-blooms/bitset"
)

// Bits is a dense bitset over a conceptually unbounded, but practically
// length-tracked, index range. The tail of all-zero words is trimmed
// lazily by length tracking rather than physical truncation, since
// bitset.BitSet already owns its own word storage.
type Bits struct {
	b   *bitset.BitSet
	len uint // declared length; bits at index >= len are always 0
}

// New returns an empty Bits of the given declared length.
func New(length int) Bits {
	if length < 0 {
		length = 0
	}
	return Bits{b: bitset.New(uint(length)), len: uint(length)}
}

// Len returns the declared length of b.
func (x Bits) Len() int { return int(x.len) }

// Set sets bit i to 1, growing x's declared length if necessary.
func (x *Bits) Set(i int) {
	if i < 0 {
		return
	}
	u := uint(i)
	if u >= x.len {
		x.len = u + 1
	}
	x.b.Set(u)
}

// Reset clears bit i to 0.
func (x *Bits) Reset(i int) {
	if i < 0 || uint(i) >= x.len {
		return
	}
	x.b.Clear(uint(i))
}

// Test reports whether bit i is set.
func (x Bits) Test(i int) bool {
	if i < 0 || uint(i) >= x.len {
		return false
	}
	return x.b.Test(uint(i))
}

// SetUntil sets every bit in [0, k) to 1.
func (x *Bits) SetUntil(k int) {
	for i := 0; i < k; i++ {
		x.Set(i)
	}
}

// ResetFrom clears every bit in [k, Len()) to 0.
func (x *Bits) ResetFrom(k int) {
	if k < 0 {
		k = 0
	}
	for i := k; i < x.Len(); i++ {
		x.Reset(i)
	}
}

// CountOnes returns the number of set bits (popcount).
func (x Bits) CountOnes() int { return int(x.b.Count()) }

// CountOnesInUnion returns popcount(x | y).
func (x Bits) CountOnesInUnion(y Bits) int {
	u := x.b.Union(y.b)
	return int(u.Count())
}

// Union returns x | y, with declared length the max of the two.
func (x Bits) Union(y Bits) Bits {
	res := x.b.Union(y.b)
	return Bits{b: res, len: maxUint(x.len, y.len)}
}

// Intersect returns x & y.
func (x Bits) Intersect(y Bits) Bits {
	res := x.b.Intersection(y.b)
	return Bits{b: res, len: maxUint(x.len, y.len)}
}

// SubsetEq reports whether x is a subset of y, i.e. (x & ^y) == 0.
func (x Bits) SubsetEq(y Bits) bool {
	return x.b.DifferenceCardinality(y.b) == 0
}

// ProperSubset reports whether x is a proper subset of y (x ⊆ y and x != y).
func (x Bits) ProperSubset(y Bits) bool {
	return x.SubsetEq(y) && !x.Equal(y)
}

// Equal reports whether x and y have the same set bits.
func (x Bits) Equal(y Bits) bool { return x.b.Equal(y.b) }

// IsEmpty reports whether no bit is set.
func (x Bits) IsEmpty() bool { return x.b.None() }

// Clone returns an independent deep copy of x.
func (x Bits) Clone() Bits { return Bits{b: x.b.Clone(), len: x.len} }

// NextSet returns the smallest set index >= i, and true, or (0, false)
// if none.
func (x Bits) NextSet(i int) (int, bool) {
	if i < 0 {
		i = 0
	}
	idx, ok := x.b.NextSet(uint(i))
	if !ok || idx >= x.len {
		return 0, false
	}
	return int(idx), true
}

// Each calls fn for every set bit index, in ascending order.
func (x Bits) Each(fn func(i int)) {
	for i, ok := x.NextSet(0); ok; i, ok = x.NextSet(i + 1) {
		fn(i)
	}
}

// Indices returns the sorted list of set bit indices.
func (x Bits) Indices() []int {
	out := make([]int, 0, x.CountOnes())
	x.Each(func(i int) { out = append(out, i) })
	return out
}

// AddColumn extends x's declared length by one zero bit on the right
// (used by Sat.AddCols to grow every row in lockstep), spec.md §4.3.
func (x *Bits) AddColumn() { x.len++ }

// ShiftRight inserts k zero bits at index 0 (shifting every existing bit
// up by k) and drops whatever would land at or beyond Len(); this
// implements spec.md §3's "right-shift-in-place (insert k zero bits at
// the front and lose high bits)".
func (x *Bits) ShiftRight(k int) {
	if k <= 0 {
		return
	}
	shifted := bitset.New(x.len)
	x.Each(func(i int) {
		j := uint(i + k)
		if j < x.len {
			shifted.Set(j)
		}
	})
	x.b = shifted
}

// RemoveAll deletes the bits at the given sorted (ascending), 0-based,
// duplicate-free positions, renumbering every remaining bit as if those
// positions had never existed — spec.md §3's
// "Index_Set::remove_all(sorted_indices)".
func (x *Bits) RemoveAll(sorted []int) {
	if len(sorted) == 0 {
		return
	}
	newLen := x.len - uint(len(sorted))
	out := bitset.New(newLen)
	removed := 0
	for i := 0; i < int(x.len); i++ {
		for removed < len(sorted) && sorted[removed] < i {
			removed++
		}
		if removed < len(sorted) && sorted[removed] == i {
			continue
		}
		if x.b.Test(uint(i)) {
			out.Set(uint(i - removed))
		}
	}
	x.b = out
	x.len = newLen
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
