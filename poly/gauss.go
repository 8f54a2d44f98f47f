package poly

import (
	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
)

// gaussReduceCons puts the equality rows of cs into row-echelon form
// over the rationals (via exact integer combination), in place, using
// exact strong-normalized integer rows.
//
// Returns the pivot column for each surviving row, in row order; a
// dependent (all-zero) row is dropped.
func gaussReduceCons(rows []con.Con) ([]con.Con, []int) {
	exprs := make([]*linear.Expr, len(rows))
	inhomos := make([]*integer.Integer, len(rows))
	for i := range rows {
		e := rows[i].Expr.Clone()
		exprs[i] = &e
		inh := rows[i].Inhomo
		inhomos[i] = &inh
	}
	pivots := gaussEliminate(exprs, inhomos)

	out := make([]con.Con, 0, len(exprs))
	pivotCols := make([]int, 0, len(exprs))
	for i, piv := range pivots {
		if piv < 0 {
			continue
		}
		out = append(out, con.New(*exprs[i], *inhomos[i], con.EQ))
		pivotCols = append(pivotCols, piv)
	}
	return out, pivotCols
}

// gaussReduceGens is the generator-side analogue of gaussReduceCons,
// used to keep the line system of gs linearly independent.
func gaussReduceGens(rows []gen.Gen) ([]gen.Gen, []int) {
	exprs := make([]*linear.Expr, len(rows))
	inhomos := make([]*integer.Integer, len(rows))
	for i := range rows {
		e := rows[i].Expr.Clone()
		exprs[i] = &e
		inh := rows[i].Inhomo
		inhomos[i] = &inh
	}
	pivots := gaussEliminate(exprs, inhomos)

	out := make([]gen.Gen, 0, len(exprs))
	pivotCols := make([]int, 0, len(exprs))
	for i, piv := range pivots {
		if piv < 0 {
			continue
		}
		out = append(out, gen.NewLine(*exprs[i]))
		pivotCols = append(pivotCols, piv)
	}
	return out, pivotCols
}

// gaussEliminate runs forward elimination plus back-substitution over
// the given rows in place (exprs[i] paired with inhomos[i] as an
// augmented column), returning each row's pivot variable index, or -1
// for a row that became identically zero (linearly dependent).
func gaussEliminate(exprs []*linear.Expr, inhomos []*integer.Integer) []int {
	n := len(exprs)
	pivots := make([]int, n)
	for i := range pivots {
		pivots[i] = -1
	}
	dim := 0
	for _, e := range exprs {
		if e.Len() > dim {
			dim = e.Len()
		}
	}

	row := 0
	for col := 0; col < dim && row < n; col++ {
		pivotRow := -1
		for r := row; r < n; r++ {
			if exprs[r].Get(linear.Var(col)).Sign() != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			continue
		}
		exprs[row], exprs[pivotRow] = exprs[pivotRow], exprs[row]
		inhomos[row], inhomos[pivotRow] = inhomos[pivotRow], inhomos[row]

		pc := exprs[row].Get(linear.Var(col))
		for r := 0; r < n; r++ {
			if r == row {
				continue
			}
			rc := exprs[r].Get(linear.Var(col))
			if rc.IsZero() {
				continue
			}
			combineRow(exprs[r], inhomos[r], *exprs[row], *inhomos[row], pc, rc)
		}
		pivots[row] = col
		row++
	}
	return pivots
}

// combineRow replaces (x, xInh) with pc*x - rc*y (and the matching
// inhomogeneous term), the same cross-multiply-and-subtract step
// linear.Combine performs for constraint/generator rows, specialized
// here for Gaussian elimination where both sides are known nonzero at
// the pivot column.
func combineRow(x *linear.Expr, xInh *integer.Integer, y linear.Expr, yInh integer.Integer, pc, rc integer.Integer) {
	_ = linear.Combine(x, xInh, y, yInh, rc, pc)
	x.Resize(x.Len())
	g := x.Gcd()
	if !g.IsZero() && !g.IsOne() {
		_ = x.DivideExact(g)
		q, _ := xInh.ExactDiv(g)
		*xInh = q
	}
}
