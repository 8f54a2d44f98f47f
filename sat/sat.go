package sat

import "github.com/ezaffanella/pplite/bits"

// Sat is a saturation matrix: one bits.Bits row per constraint (for
// sat_c) or per generator (for sat_g), with one column per skeleton
// row of the other system.
type Sat struct {
	rows []bits.Bits
	cols int
}

// New returns an empty Sat with the given initial column count.
func New(cols int) *Sat {
	return &Sat{cols: cols}
}

// NumRows returns the number of rows.
func (s *Sat) NumRows() int { return len(s.rows) }

// NumCols returns the number of columns.
func (s *Sat) NumCols() int { return s.cols }

// Row returns row i (read/write access to the underlying Bits value;
// callers that mutate it must write back via SetRow to preserve value
// semantics, since bits.Bits is a value type wrapping a pointer to its
// backing store — see bits.Bits.Clone).
func (s *Sat) Row(i int) bits.Bits { return s.rows[i] }

// SetRow replaces row i.
func (s *Sat) SetRow(i int, row bits.Bits) { s.rows[i] = row }

// AddRow appends a new all-zero row of the current column count and
// returns its index.
func (s *Sat) AddRow() int {
	s.rows = append(s.rows, bits.New(s.cols))
	return len(s.rows) - 1
}

// AddRowFrom appends row as a new row (its length is taken as-is; the
// caller is responsible for keeping it consistent with s.cols).
func (s *Sat) AddRowFrom(row bits.Bits) int {
	s.rows = append(s.rows, row)
	return len(s.rows) - 1
}

// AddCols extends every existing row (and the declared column count) by
// n zero bits on the right.
func (s *Sat) AddCols(n int) {
	for i := range s.rows {
		for k := 0; k < n; k++ {
			s.rows[i].AddColumn()
		}
	}
	s.cols += n
}

// Transpose returns the dual matrix: NumCols() rows, NumRows() columns.
func (s *Sat) Transpose() *Sat {
	t := New(len(s.rows))
	t.rows = make([]bits.Bits, s.cols)
	for j := 0; j < s.cols; j++ {
		t.rows[j] = bits.New(len(s.rows))
	}
	for i := range s.rows {
		s.rows[i].Each(func(j int) {
			t.rows[j].Set(i)
		})
	}
	return t
}

// RemoveRows deletes the rows at the given sorted, ascending, 0-based,
// duplicate-free indices and compacts the remainder.
func (s *Sat) RemoveRows(sorted []int) {
	if len(sorted) == 0 {
		return
	}
	out := make([]bits.Bits, 0, len(s.rows)-len(sorted))
	removed := 0
	for i, row := range s.rows {
		if removed < len(sorted) && sorted[removed] == i {
			removed++
			continue
		}
		out = append(out, row)
	}
	s.rows = out
}

// RemoveCols deletes the columns at the given sorted, ascending, 0-based
// indices from every row and updates the declared column count.
func (s *Sat) RemoveCols(sorted []int) {
	if len(sorted) == 0 {
		return
	}
	for i := range s.rows {
		s.rows[i].RemoveAll(sorted)
	}
	s.cols -= len(sorted)
}

// Clone returns a deep copy of s.
func (s *Sat) Clone() *Sat {
	out := New(s.cols)
	out.rows = make([]bits.Bits, len(s.rows))
	for i, r := range s.rows {
		out.rows[i] = r.Clone()
	}
	return out
}
