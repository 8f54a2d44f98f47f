package itv

import "golang.org/x/exp/constraints"

// BBox is a bounding box: a dense vector of per-dimension Interval
// values, with a lazily computed Volume cache invalidated on mutation.
type BBox struct {
	dims       []Interval
	volume     float64
	volumeOK   bool
	volumeInfp bool
}

// New returns a BBox of the given dimension, every coordinate unbounded
// (the universe box).
func New(dim int) *BBox {
	b := &BBox{dims: make([]Interval, dim)}
	for i := range b.dims {
		b.dims[i] = Universe()
	}
	return b
}

// Dim returns the space dimension of b.
func (b *BBox) Dim() int { return len(b.dims) }

// Get returns the interval of dimension i.
func (b *BBox) Get(i int) Interval { return b.dims[i] }

// Set assigns the interval of dimension i and invalidates the volume
// cache.
func (b *BBox) Set(i int, iv Interval) {
	b.dims[i] = iv
	b.volumeOK = false
}

// IsEmpty reports whether any dimension is empty.
func (b *BBox) IsEmpty() bool {
	for _, d := range b.dims {
		if d.IsEmpty() {
			return true
		}
	}
	return false
}

// Join returns the per-dimension Join of b and o (bounding box of the
// convex hull).
func (b *BBox) Join(o *BBox) *BBox {
	n := maxInt(b.Dim(), o.Dim())
	out := New(n)
	for i := 0; i < n; i++ {
		out.dims[i] = b.dimOrUniverse(i).Join(o.dimOrUniverse(i))
	}
	return out
}

// Meet returns the per-dimension Meet of b and o (bounding box of the
// intersection; may over-approximate the true intersection's box).
func (b *BBox) Meet(o *BBox) *BBox {
	n := maxInt(b.Dim(), o.Dim())
	out := New(n)
	for i := 0; i < n; i++ {
		out.dims[i] = b.dimOrUniverse(i).Meet(o.dimOrUniverse(i))
	}
	return out
}

func (b *BBox) dimOrUniverse(i int) Interval {
	if i >= len(b.dims) {
		return Universe()
	}
	return b.dims[i]
}

// Equal reports whether b and o have identical per-dimension intervals.
func (b *BBox) Equal(o *BBox) bool {
	if b.Dim() != o.Dim() {
		return false
	}
	for i := range b.dims {
		if !b.dims[i].Equal(o.dims[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep, independent copy of b.
func (b *BBox) Clone() *BBox {
	out := &BBox{dims: make([]Interval, len(b.dims)), volume: b.volume, volumeOK: b.volumeOK, volumeInfp: b.volumeInfp}
	copy(out.dims, b.dims)
	return out
}

// Volume returns the product of each bounded dimension's width, and
// whether the volume is infinite (an unbounded dimension). The result is
// cached until the next mutating Set call.
func (b *BBox) Volume() (vol float64, isInfinite bool) {
	if b.volumeOK {
		return b.volume, b.volumeInfp
	}
	vol, isInfinite = 1.0, false
	for _, d := range b.dims {
		if !d.IsBounded() {
			isInfinite = true
			continue
		}
		width := d.Upper.Sub(d.Lower).Float64()
		vol *= width
	}
	b.volume, b.volumeInfp, b.volumeOK = vol, isInfinite, true
	return vol, isInfinite
}

func maxInt[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}
