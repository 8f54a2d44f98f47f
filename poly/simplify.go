package poly

import (
	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
)

// simplify brings a freshly converted Poly into the invariant-respecting
// form documented in types.go: singular rows reduced to a basis,
// redundant skeleton rows dropped, and (for NNC) exactly one positivity
// witness retained. It assumes cs.Sk/gs.Sk/satC/satG are consistent on
// entry (conversion.go's job) and only removes redundancy; it never
// discovers new rows.
func (p *Poly) simplify() {
	p.reduceSingular()
	p.dropRedundantGens()
	p.dropRedundantCons()
	if p.Topology == NNC {
		p.enforcePositivityInvariant()
	}
	if len(p.Gs.Sk) == 0 && len(p.Gs.Sing) == 0 {
		*p = *NewEmpty(p.Topology, p.Dim)
		return
	}
	p.rebuildNonSkeletonSupports()
}

// reduceSingular re-orthogonalizes cs.Sing and gs.Sing via Gaussian
// elimination so each stays a minimal linearly independent basis
// (invariant 1).
func (p *Poly) reduceSingular() {
	if len(p.Cs.Sing) > 1 {
		reduced, _ := gaussReduceCons(p.Cs.Sing)
		p.Cs.Sing = reduced
	}
	if len(p.Gs.Sing) > 1 {
		reduced, _ := gaussReduceGens(p.Gs.Sing)
		p.Gs.Sing = reduced
	}
}

// dropRedundantGens removes any skeleton generator whose saturated-
// constraint set is contained in another's: a non-extreme generator
// (e.g. an interior point of an edge reached by an over-eager combine)
// is tight on exactly the intersection of its neighbors' tight sets,
// which is a subset of each neighbor's own set. Only generators of the
// same class are compared (points with points, rays with rays): a ray
// also lies on the implicit positivity face that no point lies on.
// Ties (equal sets, the case duplicate combines produce) are broken in
// favor of the lower index.
func (p *Poly) dropRedundantGens() {
	keep := make([]bool, len(p.Gs.Sk))
	for i := range keep {
		keep[i] = true
	}
	for i := 0; i < len(p.Gs.Sk); i++ {
		if !keep[i] {
			continue
		}
		zi := p.SatG.Row(i)
		for j := 0; j < len(p.Gs.Sk); j++ {
			if i == j || !keep[j] {
				continue
			}
			if p.Gs.Sk[i].Kind.IsPoint() != p.Gs.Sk[j].Kind.IsPoint() {
				continue
			}
			zj := p.SatG.Row(j)
			if zi.SubsetEq(zj) && (!zj.SubsetEq(zi) || j < i) {
				keep[i] = false
				break
			}
		}
	}
	p.compactGens(keep)
}

// dropRedundantCons removes any constraint saturated by every generator
// (it is an implied equality, folded into cs.Sing instead), then drops
// any remaining constraint whose saturated-generator set is contained
// in another's: a constraint touching only a subset of the vertices
// another constraint is tight at can never itself be the binding facet,
// since a genuine facet of a polytope is tight at strictly more of its
// vertices than any row properly dominated by it. Ties (equal zero
// sets, i.e. exact duplicates) are broken in favor of the lower index.
func (p *Poly) dropRedundantCons() {
	keep := make([]bool, len(p.Cs.Sk))
	for i := range keep {
		keep[i] = true
	}
	for i := 0; i < len(p.Cs.Sk); i++ {
		if !keep[i] {
			continue
		}
		if p.Cs.Sk[i].Kind != con.EQ && p.allGensSaturate(i) {
			eq := p.Cs.Sk[i]
			eq.Kind = con.EQ
			eq.StrongNormalize()
			p.Cs.Sing = append(p.Cs.Sing, eq)
			keep[i] = false
		}
	}
	for i := 0; i < len(p.Cs.Sk); i++ {
		if !keep[i] {
			continue
		}
		zi := p.SatC.Row(i)
		for j := 0; j < len(p.Cs.Sk); j++ {
			if i == j || !keep[j] {
				continue
			}
			zj := p.SatC.Row(j)
			if zi.SubsetEq(zj) && (!zj.SubsetEq(zi) || j < i) {
				keep[i] = false
				break
			}
		}
	}
	p.compactCons(keep)
	if len(p.Cs.Sing) > 1 {
		reduced, _ := gaussReduceCons(p.Cs.Sing)
		p.Cs.Sing = reduced
	}
}

func (p *Poly) allGensSaturate(ci int) bool {
	for gi := range p.Gs.Sk {
		if p.SatC.Row(ci).Test(gi) == false {
			return false
		}
	}
	return true
}

func (p *Poly) compactGens(keep []bool) {
	newSk := make([]gen.Gen, 0, len(p.Gs.Sk))
	old2new := make([]int, len(p.Gs.Sk))
	for i, k := range keep {
		if k {
			old2new[i] = len(newSk)
			newSk = append(newSk, p.Gs.Sk[i])
		} else {
			old2new[i] = -1
		}
	}
	if len(newSk) == len(p.Gs.Sk) {
		return
	}
	newSat := p.SatC.Clone()
	var rows []int
	for i, k := range keep {
		if !k {
			rows = append(rows, i)
		}
	}
	newSat.RemoveCols(sortedUnique(rows))
	p.Gs.Sk = newSk
	p.SatC = newSat
	p.SatG = newSat.Transpose()
}

func (p *Poly) compactCons(keep []bool) {
	newSk := make([]con.Con, 0, len(p.Cs.Sk))
	for i, k := range keep {
		if k {
			newSk = append(newSk, p.Cs.Sk[i])
		}
	}
	if len(newSk) == len(p.Cs.Sk) {
		return
	}
	var rows []int
	for i, k := range keep {
		if !k {
			rows = append(rows, i)
		}
	}
	p.SatC.RemoveRows(sortedUnique(rows))
	p.Cs.Sk = newSk
	p.SatG = p.SatC.Transpose()
}

// enforcePositivityInvariant ensures exactly one NNC positivity witness
// survives simplification: a single skeleton strict inequality (the
// canonical "1 > 0"), kept as-is whenever one is already present and
// synthesized otherwise (invariant 6). The non-skeleton "empty-face
// cutter" alternative of invariant 6 is never produced by this
// package: the witness always lives as a standalone cs.Sk row, which
// rebuildNonSkeletonSupports then also uses to derive every other
// non-skeleton strict constraint.
func (p *Poly) enforcePositivityInvariant() {
	for _, c := range p.Cs.Sk {
		if c.IsStrictPositivity() {
			return
		}
	}
	for _, c := range p.Cs.Sing {
		if c.IsStrictPositivity() {
			return
		}
	}
	witness := con.StrictPositivity(p.Dim)
	p.Cs.Sk = append(p.Cs.Sk, witness)
	row := p.SatC.AddRow()
	rb := p.SatC.Row(row)
	for gi := range p.Gs.Sk {
		if scalarSignStrict(witness, p.Gs.Sk[gi]) == 0 {
			rb.Set(gi)
		}
	}
	p.SatC.SetRow(row, rb)
	p.SatG = p.SatC.Transpose()
}

// rebuildNonSkeletonSupports recomputes cs.NS and gs.NS for an NNC
// polyhedron. Every non-strict skeleton constraint has an implicit
// strict sibling obtained by adding the positivity witness (summing a
// row valid with "≥" and one valid with ">" always yields a row valid
// with ">", whose zero-set is the intersection of the two), and every
// skeleton point has an implicit coincident closure point. Closed
// polyhedra never populate either field (invariant 5).
func (p *Poly) rebuildNonSkeletonSupports() {
	p.Cs.NS = nil
	p.Gs.NS = nil
	if p.Topology != NNC {
		return
	}
	witness := -1
	for i, c := range p.Cs.Sk {
		if c.IsStrictPositivity() {
			witness = i
			break
		}
	}
	if witness >= 0 {
		for i, c := range p.Cs.Sk {
			if i == witness || c.Kind == con.SI {
				continue
			}
			p.Cs.NS = append(p.Cs.NS, []int{i, witness})
		}
	}
	for i, g := range p.Gs.Sk {
		if g.Kind == gen.POINT {
			p.Gs.NS = append(p.Gs.NS, []int{i})
		}
	}
}
