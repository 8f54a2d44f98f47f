package poly

// partition buckets the skeleton rows of one system (constraints or
// generators) by the sign of a scalar product against a single
// incoming row: Neg (violates), Eq (saturates), Pos (satisfies),
// mirroring Index_Partition.hh in the source this package generalizes.
type partition struct {
	Neg []int
	Eq  []int
	Pos []int
}

// newPartition classifies each index 0..n-1 by calling sign(i), which
// must return a negative, zero, or positive int.
func newPartition(n int, sign func(i int) int) partition {
	var p partition
	for i := 0; i < n; i++ {
		switch s := sign(i); {
		case s < 0:
			p.Neg = append(p.Neg, i)
		case s == 0:
			p.Eq = append(p.Eq, i)
		default:
			p.Pos = append(p.Pos, i)
		}
	}
	return p
}

// Len returns the total number of classified indices.
func (p partition) Len() int { return len(p.Neg) + len(p.Eq) + len(p.Pos) }

// IsRedundant reports whether the incoming row is implied by the
// existing system: no negative side means nothing is cut away, so
// adding it would not shrink the polyhedron... except when it is the
// unique new positivity witness, which callers must check separately.
func (p partition) IsRedundant() bool { return len(p.Neg) == 0 }

// IsFalse reports whether every existing row lies strictly on the
// negative side of the incoming row: none is positive and none
// saturates it.
func (p partition) IsFalse() bool { return len(p.Pos) == 0 && len(p.Eq) == 0 }

// remap rewrites every index in the partition through old2new, dropping
// indices that map to -1 (removed rows).
func (p partition) remap(old2new []int) partition {
	var out partition
	out.Neg = remapIndices(p.Neg, old2new)
	out.Eq = remapIndices(p.Eq, old2new)
	out.Pos = remapIndices(p.Pos, old2new)
	return out
}

func remapIndices(idx []int, old2new []int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if n := old2new[i]; n >= 0 {
			out = append(out, n)
		}
	}
	return out
}
