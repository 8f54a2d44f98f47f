// Package vhrep reads and writes the cdd/lcdd H-representation and
// V-representation text formats (spec.md §6 item 3), the exchange
// format used by the CLI front-end and by integration tests that must
// be byte-compatible with the reference tools.
package vhrep

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
	"github.com/ezaffanella/pplite/poly"
	"github.com/ezaffanella/pplite/rational"
)

// Mode selects which representation a file encodes.
type Mode int

const (
	// HRepresentation is the default: rows are constraints.
	HRepresentation Mode = iota
	// VRepresentation: rows are generators.
	VRepresentation
)

// NumberFormat controls how coefficients are printed and, on read, how
// they are expected to be formatted.
type NumberFormat int

const (
	FormatInteger NumberFormat = iota
	FormatRational
	FormatReal
)

func (f NumberFormat) String() string {
	switch f {
	case FormatRational:
		return "rational"
	case FormatReal:
		return "real"
	default:
		return "integer"
	}
}

// Doc is the parsed contents of an H/V-representation file before it
// is folded into a poly.Poly: rows, linearity markers, and the
// requested number format for Write.
type Doc struct {
	Mode       Mode
	Linearity  []int // 0-based row indices marked as equalities/lines
	Rows       [][]rational.Rational
	NumCols    int
	Format     NumberFormat
}

// Read parses an H/V-representation document from r.
func Read(r io.Reader) (*Doc, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	doc := &Doc{Mode: HRepresentation}
	sawBegin := false
	sawEnd := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}
		switch {
		case line == "V-representation":
			doc.Mode = VRepresentation
		case line == "H-representation":
			doc.Mode = HRepresentation
		case strings.HasPrefix(line, "linearity"):
			if sawEnd {
				return nil, poly.WrapParseErr("vhrep.Read", fmt.Errorf("linearity directive after end"))
			}
			lin, err := parseLinearity(line)
			if err != nil {
				return nil, err
			}
			doc.Linearity = lin
		case line == "begin":
			rows, cols, format, err := readMatrix(sc)
			if err != nil {
				return nil, err
			}
			doc.Rows = rows
			doc.Format = format
			doc.NumCols = cols
			sawBegin = true
		case line == "end":
			sawEnd = true
		default:
			// Unrecognized preamble directive; ignored (cdd files carry
			// several cosmetic ones this package does not need).
		}
	}
	if err := sc.Err(); err != nil {
		return nil, poly.WrapParseErr("vhrep.Read", err)
	}
	if !sawBegin {
		return nil, poly.WrapParseErr("vhrep.Read", fmt.Errorf("missing begin/end block"))
	}
	if doc.Mode == VRepresentation {
		hasPoint := false
		for _, row := range doc.Rows {
			if len(row) > 0 && row[0].Sign() != 0 {
				hasPoint = true
				break
			}
		}
		if len(doc.Rows) > 0 && !hasPoint {
			return nil, poly.WrapParseErr("vhrep.Read", fmt.Errorf("non-empty V-representation has no point row"))
		}
	}
	return doc, nil
}

func parseLinearity(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, poly.WrapParseErr("vhrep.parseLinearity", fmt.Errorf("malformed linearity directive %q", line))
	}
	k, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, poly.WrapParseErr("vhrep.parseLinearity", err)
	}
	if len(fields) != 2+k {
		return nil, poly.WrapParseErr("vhrep.parseLinearity", fmt.Errorf("linearity count mismatch in %q", line))
	}
	out := make([]int, 0, k)
	for _, f := range fields[2:] {
		idx, err := strconv.Atoi(f)
		if err != nil {
			return nil, poly.WrapParseErr("vhrep.parseLinearity", err)
		}
		out = append(out, idx-1) // 1-based to 0-based
	}
	return out, nil
}

func readMatrix(sc *bufio.Scanner) ([][]rational.Rational, int, NumberFormat, error) {
	if !sc.Scan() {
		return nil, 0, 0, poly.WrapParseErr("vhrep.readMatrix", io.ErrUnexpectedEOF)
	}
	header := strings.Fields(strings.TrimSpace(sc.Text()))
	if len(header) != 3 {
		return nil, 0, 0, poly.WrapParseErr("vhrep.readMatrix", fmt.Errorf("malformed matrix header %q", strings.Join(header, " ")))
	}
	rows, err1 := strconv.Atoi(header[0])
	cols, err2 := strconv.Atoi(header[1])
	if err1 != nil || err2 != nil {
		return nil, 0, 0, poly.WrapParseErr("vhrep.readMatrix", fmt.Errorf("malformed matrix dimensions"))
	}
	format, err := parseFormat(header[2])
	if err != nil {
		return nil, 0, 0, err
	}

	out := make([][]rational.Rational, 0, rows)
	for i := 0; i < rows; i++ {
		if !sc.Scan() {
			return nil, 0, 0, poly.WrapParseErr("vhrep.readMatrix", io.ErrUnexpectedEOF)
		}
		fields := strings.Fields(strings.TrimSpace(sc.Text()))
		if len(fields) != cols {
			return nil, 0, 0, poly.WrapParseErr("vhrep.readMatrix", fmt.Errorf("row %d has %d fields, want %d", i, len(fields), cols))
		}
		row := make([]rational.Rational, cols)
		for j, f := range fields {
			v, err := parseNumber(f, format)
			if err != nil {
				return nil, 0, 0, err
			}
			row[j] = v
		}
		out = append(out, row)
	}
	// The matching "end" line is left for Read's loop to consume.
	return out, cols, format, nil
}

func parseFormat(s string) (NumberFormat, error) {
	switch s {
	case "integer":
		return FormatInteger, nil
	case "rational":
		return FormatRational, nil
	case "real":
		return FormatReal, nil
	default:
		return 0, poly.WrapParseErr("vhrep.parseFormat", fmt.Errorf("unknown number format %q", s))
	}
}

func parseNumber(s string, format NumberFormat) (rational.Rational, error) {
	switch format {
	case FormatReal:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return rational.Rational{}, poly.WrapParseErr("vhrep.parseNumber", err)
		}
		r, err := rational.FromFloat64(f)
		if err != nil {
			return rational.Rational{}, poly.WrapParseErr("vhrep.parseNumber", err)
		}
		return r, nil
	case FormatRational:
		num, den, ok := strings.Cut(s, "/")
		n, okN := integer.NewFromString(num)
		if !okN {
			return rational.Rational{}, poly.WrapParseErr("vhrep.parseNumber", fmt.Errorf("bad numerator %q", num))
		}
		if !ok {
			return rational.FromInt(n), nil
		}
		d, okD := integer.NewFromString(den)
		if !okD {
			return rational.Rational{}, poly.WrapParseErr("vhrep.parseNumber", fmt.Errorf("bad denominator %q", den))
		}
		r, err := rational.New(n, d)
		if err != nil {
			return rational.Rational{}, poly.WrapParseErr("vhrep.parseNumber", err)
		}
		return r, nil
	default:
		n, ok := integer.NewFromString(s)
		if !ok {
			return rational.Rational{}, poly.WrapParseErr("vhrep.parseNumber", fmt.Errorf("bad integer %q", s))
		}
		return rational.FromInt(n), nil
	}
}

// ToPoly builds a Poly from a parsed Doc (spec.md §6's exchange step),
// clearing any fractional denominators by scaling each row by its
// denominators' lcm before handing it to the constraint/generator
// constructors, which require exact integer coefficients.
func ToPoly(doc *Doc, topology poly.Topology) (*poly.Poly, error) {
	if doc.NumCols == 0 {
		return poly.NewUniverse(topology, 0), nil
	}
	dim := doc.NumCols - 1
	isLinearity := make(map[int]bool, len(doc.Linearity))
	for _, i := range doc.Linearity {
		isLinearity[i] = true
	}

	p := poly.NewUniverse(topology, dim)
	if doc.Mode == HRepresentation {
		for i, row := range doc.Rows {
			e, inhomo := splitRow(row)
			kind := con.NSI
			if isLinearity[i] {
				kind = con.EQ
			}
			p.AddCon(con.New(e, inhomo, kind))
		}
		return p, nil
	}

	p = poly.NewEmpty(topology, dim)
	for i, row := range doc.Rows {
		marker := row[0]
		e, divisor := rowToExprWithDivisor(row[1:])
		if marker.Sign() != 0 {
			p.AddGen(gen.NewPoint(e, divisor, gen.POINT))
			continue
		}
		if isLinearity[i] {
			p.AddGen(gen.NewLine(e))
		} else {
			p.AddGen(gen.NewRay(e))
		}
	}
	return p, nil
}

// splitRow clears denominators of an H-representation row "b a_1..a_n"
// and returns (expr=a, inhomo=b) as exact integers.
func splitRow(row []rational.Rational) (linear.Expr, integer.Integer) {
	lcm := integer.One()
	for _, r := range row {
		lcm = lcm.Lcm(r.Den())
	}
	scaled := make([]integer.Integer, len(row))
	for i, r := range row {
		factor, _ := lcm.ExactDiv(r.Den())
		scaled[i] = r.Num().Mul(factor)
	}
	e := linear.FromSlice(scaled[1:])
	return e, scaled[0]
}

// rowToExprWithDivisor scales row by the lcm of its denominators so
// every coefficient becomes an exact integer, and returns that lcm as
// the shared divisor (callers ignore it for ray/line rows).
func rowToExprWithDivisor(row []rational.Rational) (linear.Expr, integer.Integer) {
	lcm := integer.One()
	for _, r := range row {
		lcm = lcm.Lcm(r.Den())
	}
	scaled := make([]integer.Integer, len(row))
	for i, r := range row {
		factor, _ := lcm.ExactDiv(r.Den())
		scaled[i] = r.Num().Mul(factor)
	}
	return linear.FromSlice(scaled), lcm
}

// Write serializes p in cdd/lcdd format, H-representation (constraints)
// when asH is true, V-representation (generators) otherwise.
func Write(w io.Writer, p *poly.Poly, asH bool, format NumberFormat) error {
	bw := bufio.NewWriter(w)
	if asH {
		fmt.Fprintln(bw, "H-representation")
	} else {
		fmt.Fprintln(bw, "V-representation")
	}

	p.Minimize()
	if asH {
		rows := append(append([]con.Con(nil), p.Cs.Sing...), p.Cs.Sk...)
		lin := linearityIndices(rows, func(c con.Con) bool { return c.Kind == con.EQ })
		writeLinearity(bw, lin)
		fmt.Fprintf(bw, "begin\n%d %d %s\n", len(rows), p.Dim+1, format)
		for _, c := range rows {
			fmt.Fprintf(bw, "%s %s\n", formatNumber(c.Inhomo, format), joinExprNumbers(c.Expr.Coefficients(), format))
		}
		fmt.Fprintln(bw, "end")
		return bw.Flush()
	}

	rows := append(append([]gen.Gen(nil), p.Gs.Sing...), p.Gs.Sk...)
	lin := linearityIndices(rows, func(g gen.Gen) bool { return g.Kind == gen.LINE })
	writeLinearity(bw, lin)
	fmt.Fprintf(bw, "begin\n%d %d %s\n", len(rows), p.Dim+1, format)
	for _, g := range rows {
		marker := "0"
		coeffs := g.Expr.Coefficients()
		if g.Kind.IsPoint() {
			// Points always render as exact num/den regardless of format,
			// since the divisor may not be 1; callers asking for the
			// "integer" format must only do so on integral polyhedra.
			marker = "1"
			d := g.Inhomo
			out := make([]string, len(coeffs))
			for i, c := range coeffs {
				r, _ := rational.New(c, d)
				out[i] = r.String()
			}
			fmt.Fprintf(bw, "%s %s\n", marker, strings.Join(out, " "))
			continue
		}
		fmt.Fprintf(bw, "%s %s\n", marker, joinExprNumbers(coeffs, format))
	}
	fmt.Fprintln(bw, "end")
	return bw.Flush()
}

func linearityIndices[T any](rows []T, isLin func(T) bool) []int {
	var out []int
	for i, r := range rows {
		if isLin(r) {
			out = append(out, i)
		}
	}
	return out
}

func writeLinearity(bw *bufio.Writer, lin []int) {
	if len(lin) == 0 {
		return
	}
	parts := make([]string, len(lin))
	for i, idx := range lin {
		parts[i] = strconv.Itoa(idx + 1)
	}
	fmt.Fprintf(bw, "linearity %d %s\n", len(lin), strings.Join(parts, " "))
}

func formatNumber(n integer.Integer, format NumberFormat) string {
	if format == FormatReal {
		return strconv.FormatFloat(n.Float64(), 'g', -1, 64)
	}
	return n.String()
}

func joinExprNumbers(coeffs []integer.Integer, format NumberFormat) string {
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = formatNumber(c, format)
	}
	return strings.Join(parts, " ")
}
