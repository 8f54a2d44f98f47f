// Package dump implements the reversible ascii textual serialization of
// a poly.Poly (spec.md §6 item 2), used by tests and by the CLI to save
// and restore a polyhedron without going through H/V-representation
// conversion.
package dump

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
	"github.com/ezaffanella/pplite/sat"
)

// Write serializes p to w in the ascii dump format:
//
//	topol {CLOSED|NNC}
//	dim <n>
//	status {EMPTY|MINIMIZED|PENDING}
//	=> cs sys
//	sing_rows <k>  <k rows>
//	sk_rows <k>    <k rows>
//	ns_rows <k>    <k bitsets>
//	=> gs sys
//	... (same shape)
//	sat_c <r> x <c>  <r rows of 0/1>
//	sat_g <r> x <c>  ...
//	=> cs_pending  <k rows>
//	=> gs_pending  <k rows>
func Write(w io.Writer, p *poly.Poly) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "topol %s\n", p.Topology)
	fmt.Fprintf(bw, "dim %d\n", p.Dim)
	fmt.Fprintf(bw, "status %s\n", p.Status)

	fmt.Fprintln(bw, "=> cs sys")
	writeCons(bw, "sing_rows", p.Cs.Sing)
	writeCons(bw, "sk_rows", p.Cs.Sk)
	writeSupports(bw, "ns_rows", p.Cs.NS)

	fmt.Fprintln(bw, "=> gs sys")
	writeGens(bw, "sing_rows", p.Gs.Sing)
	writeGens(bw, "sk_rows", p.Gs.Sk)
	writeSupports(bw, "ns_rows", p.Gs.NS)

	writeSat(bw, "sat_c", p.SatC)
	writeSat(bw, "sat_g", p.SatG)

	fmt.Fprintf(bw, "=> cs_pending %d\n", len(p.CsPending))
	for _, c := range p.CsPending {
		fmt.Fprintln(bw, formatCon(c))
	}
	fmt.Fprintf(bw, "=> gs_pending %d\n", len(p.GsPending))
	for _, g := range p.GsPending {
		fmt.Fprintln(bw, formatGen(g))
	}
	return bw.Flush()
}

func writeCons(bw *bufio.Writer, label string, cs []con.Con) {
	fmt.Fprintf(bw, "%s %d\n", label, len(cs))
	for _, c := range cs {
		fmt.Fprintln(bw, formatCon(c))
	}
}

func writeGens(bw *bufio.Writer, label string, gs []gen.Gen) {
	fmt.Fprintf(bw, "%s %d\n", label, len(gs))
	for _, g := range gs {
		fmt.Fprintln(bw, formatGen(g))
	}
}

func writeSupports(bw *bufio.Writer, label string, supports [][]int) {
	fmt.Fprintf(bw, "%s %d\n", label, len(supports))
	for _, s := range supports {
		parts := make([]string, len(s))
		for i, v := range s {
			parts[i] = strconv.Itoa(v)
		}
		fmt.Fprintln(bw, strings.Join(parts, " "))
	}
}

func writeSat(bw *bufio.Writer, label string, m *sat.Sat) {
	if m == nil {
		fmt.Fprintf(bw, "%s 0 x 0\n", label)
		return
	}
	fmt.Fprintf(bw, "%s %d x %d\n", label, m.NumRows(), m.NumCols())
	for i := 0; i < m.NumRows(); i++ {
		row := m.Row(i)
		parts := make([]string, m.NumCols())
		for j := range parts {
			parts[j] = "0"
			if row.Test(j) {
				parts[j] = "1"
			}
		}
		fmt.Fprintln(bw, strings.Join(parts, " "))
	}
}

func formatCon(c con.Con) string {
	return fmt.Sprintf("dim %d : %s ; %s %s", c.Expr.Len(), joinCoeffs(c.Expr.Coefficients()), c.Inhomo.String(), c.Kind.String())
}

func formatGen(g gen.Gen) string {
	return fmt.Sprintf("dim %d : %s ; %s %s", g.Expr.Len(), joinCoeffs(g.Expr.Coefficients()), g.Inhomo.String(), g.Kind.String())
}

func joinCoeffs(cs []integer.Integer) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Read parses the ascii dump format produced by Write back into a Poly.
// It returns poly.ErrParse (wrapped) on any structural mismatch, per
// spec.md §7's "parse error leaves the destination unspecified but
// valid" policy: on error the caller should discard the returned value
// rather than rely on partial state.
func Read(r io.Reader) (*poly.Poly, error) {
	sc := &scanner{s: bufio.NewScanner(r)}
	sc.s.Buffer(make([]byte, 0, 64*1024), 1<<20)

	topology, err := parseTopology(sc.next("topol"))
	if err != nil {
		return nil, err
	}
	dim, err := parseLabeledInt(sc.next("dim"))
	if err != nil {
		return nil, err
	}
	status, err := parseStatus(sc.next("status"))
	if err != nil {
		return nil, err
	}

	if err := sc.expect("=> cs sys"); err != nil {
		return nil, err
	}
	csSing, err := readCons(sc, "sing_rows", dim)
	if err != nil {
		return nil, err
	}
	csSk, err := readCons(sc, "sk_rows", dim)
	if err != nil {
		return nil, err
	}
	csNS, err := readSupports(sc, "ns_rows")
	if err != nil {
		return nil, err
	}

	if err := sc.expect("=> gs sys"); err != nil {
		return nil, err
	}
	gsSing, err := readGens(sc, "sing_rows", dim)
	if err != nil {
		return nil, err
	}
	gsSk, err := readGens(sc, "sk_rows", dim)
	if err != nil {
		return nil, err
	}
	gsNS, err := readSupports(sc, "ns_rows")
	if err != nil {
		return nil, err
	}

	satCRows, satCCols, err := readSatHeader(sc, "sat_c")
	if err != nil {
		return nil, err
	}
	satGRows, satGCols, err := readSatHeader(sc, "sat_g")
	if err != nil {
		return nil, err
	}

	csPending, err := readPendingCons(sc, "=> cs_pending", dim)
	if err != nil {
		return nil, err
	}
	gsPending, err := readPendingGens(sc, "=> gs_pending", dim)
	if err != nil {
		return nil, err
	}
	if sc.err != nil {
		return nil, sc.err
	}

	p := poly.NewEmpty(topology, dim)
	p.Status = status
	p.Cs.Sing = csSing
	p.Cs.Sk = csSk
	p.Cs.NS = csNS
	p.Gs.Sing = gsSing
	p.Gs.Sk = gsSk
	p.Gs.NS = gsNS
	p.CsPending = csPending
	p.GsPending = gsPending
	_ = satCRows
	_ = satCCols
	_ = satGRows
	_ = satGCols
	poly.RebuildSaturation(p)
	return p, nil
}

func readCons(sc *scanner, label string, dim int) ([]con.Con, error) {
	n, err := parseLabeledInt(sc.next(label))
	if err != nil {
		return nil, err
	}
	out := make([]con.Con, 0, n)
	for i := 0; i < n; i++ {
		line := sc.rawLine()
		c, err := parseCon(line)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func readGens(sc *scanner, label string, dim int) ([]gen.Gen, error) {
	n, err := parseLabeledInt(sc.next(label))
	if err != nil {
		return nil, err
	}
	out := make([]gen.Gen, 0, n)
	for i := 0; i < n; i++ {
		line := sc.rawLine()
		g, err := parseGen(line)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func readSupports(sc *scanner, label string) ([][]int, error) {
	n, err := parseLabeledInt(sc.next(label))
	if err != nil {
		return nil, err
	}
	out := make([][]int, 0, n)
	for i := 0; i < n; i++ {
		line := sc.rawLine()
		fields := strings.Fields(line)
		s := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, poly.WrapParseErr("dump.readSupports", err)
			}
			s = append(s, v)
		}
		out = append(out, s)
	}
	return out, nil
}

func readPendingCons(sc *scanner, header string, dim int) ([]con.Con, error) {
	n, err := parseLabeledInt(sc.expectPrefix(header))
	if err != nil {
		return nil, err
	}
	out := make([]con.Con, 0, n)
	for i := 0; i < n; i++ {
		c, err := parseCon(sc.rawLine())
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func readPendingGens(sc *scanner, header string, dim int) ([]gen.Gen, error) {
	n, err := parseLabeledInt(sc.expectPrefix(header))
	if err != nil {
		return nil, err
	}
	out := make([]gen.Gen, 0, n)
	for i := 0; i < n; i++ {
		g, err := parseGen(sc.rawLine())
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func readSatHeader(sc *scanner, label string) (rows, cols int, err error) {
	line := sc.next(label)
	// "sat_c <r> x <c>"
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return 0, 0, poly.WrapParseErr("dump.readSatHeader", fmt.Errorf("malformed header %q", line))
	}
	r, err1 := strconv.Atoi(fields[1])
	c, err2 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil {
		return 0, 0, poly.WrapParseErr("dump.readSatHeader", fmt.Errorf("malformed header %q", line))
	}
	for i := 0; i < r; i++ {
		sc.rawLine()
	}
	return r, c, nil
}

func parseTopology(line string) (poly.Topology, error) {
	// "topol <KEYWORD>": the keyword is the last field
	fields := strings.Fields(line)
	value := ""
	if len(fields) > 0 {
		value = fields[len(fields)-1]
	}
	switch value {
	case "CLOSED":
		return poly.Closed, nil
	case "NNC":
		return poly.NNC, nil
	default:
		return 0, poly.WrapParseErr("dump.parseTopology", fmt.Errorf("unknown topology %q", line))
	}
}

func parseStatus(line string) (poly.Status, error) {
	// "status <KEYWORD>": the keyword is the last field
	fields := strings.Fields(line)
	value := ""
	if len(fields) > 0 {
		value = fields[len(fields)-1]
	}
	switch value {
	case "EMPTY":
		return poly.Empty, nil
	case "MINIMIZED":
		return poly.Minimized, nil
	case "PENDING":
		return poly.Pending, nil
	default:
		return 0, poly.WrapParseErr("dump.parseStatus", fmt.Errorf("unknown status %q", line))
	}
}

func parseLabeledInt(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, poly.WrapParseErr("dump.parseLabeledInt", fmt.Errorf("empty line"))
	}
	v, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, poly.WrapParseErr("dump.parseLabeledInt", err)
	}
	return v, nil
}

// parseCon parses "dim <n> : <coeffs> ; <inhomo> <KIND>".
func parseCon(line string) (con.Con, error) {
	expr, inhomo, kindStr, err := parseRow(line)
	if err != nil {
		return con.Con{}, err
	}
	kind, err := parseConKind(kindStr)
	if err != nil {
		return con.Con{}, err
	}
	return con.New(expr, inhomo, kind), nil
}

func parseGen(line string) (gen.Gen, error) {
	expr, inhomo, kindStr, err := parseRow(line)
	if err != nil {
		return gen.Gen{}, err
	}
	switch kindStr {
	case "LINE":
		return gen.NewLine(expr), nil
	case "RAY":
		return gen.NewRay(expr), nil
	case "POINT":
		return gen.NewPoint(expr, inhomo, gen.POINT), nil
	case "CPOINT":
		return gen.NewPoint(expr, inhomo, gen.CPOINT), nil
	default:
		return gen.Gen{}, poly.WrapParseErr("dump.parseGen", fmt.Errorf("unknown generator kind %q", kindStr))
	}
}

func parseRow(line string) (linear.Expr, integer.Integer, string, error) {
	beforeSemi, afterSemi, ok := strings.Cut(line, ";")
	if !ok {
		return linear.Expr{}, integer.Integer{}, "", poly.WrapParseErr("dump.parseRow", fmt.Errorf("missing ';' in row %q", line))
	}
	head := strings.Fields(beforeSemi)
	if len(head) < 3 || head[0] != "dim" || head[2] != ":" {
		return linear.Expr{}, integer.Integer{}, "", poly.WrapParseErr("dump.parseRow", fmt.Errorf("malformed row header %q", beforeSemi))
	}
	n, err := strconv.Atoi(head[1])
	if err != nil {
		return linear.Expr{}, integer.Integer{}, "", poly.WrapParseErr("dump.parseRow", err)
	}
	coeffFields := head[3:]
	e := linear.NewExpr(n)
	for i, f := range coeffFields {
		v, ok := integer.NewFromString(f)
		if !ok {
			return linear.Expr{}, integer.Integer{}, "", poly.WrapParseErr("dump.parseRow", fmt.Errorf("bad coefficient %q", f))
		}
		e.Set(linear.Var(i), v)
	}

	tail := strings.Fields(afterSemi)
	if len(tail) != 2 {
		return linear.Expr{}, integer.Integer{}, "", poly.WrapParseErr("dump.parseRow", fmt.Errorf("malformed row tail %q", afterSemi))
	}
	inhomo, ok := integer.NewFromString(tail[0])
	if !ok {
		return linear.Expr{}, integer.Integer{}, "", poly.WrapParseErr("dump.parseRow", fmt.Errorf("bad inhomogeneous term %q", tail[0]))
	}
	return e, inhomo, tail[1], nil
}

func parseConKind(s string) (con.Type, error) {
	switch s {
	case "EQ":
		return con.EQ, nil
	case "NSI":
		return con.NSI, nil
	case "SI":
		return con.SI, nil
	default:
		return 0, poly.WrapParseErr("dump.parseConKind", fmt.Errorf("unknown constraint kind %q", s))
	}
}

// scanner wraps bufio.Scanner with the label-prefixed "key value..."
// line shape used throughout the dump format.
type scanner struct {
	s   *bufio.Scanner
	err error
}

func (sc *scanner) rawLine() string {
	if sc.err != nil {
		return ""
	}
	if !sc.s.Scan() {
		sc.err = poly.WrapParseErr("dump.scanner", io.ErrUnexpectedEOF)
		return ""
	}
	return sc.s.Text()
}

func (sc *scanner) next(label string) string {
	line := sc.rawLine()
	if sc.err != nil {
		return ""
	}
	if !strings.HasPrefix(strings.TrimSpace(line), label) {
		sc.err = poly.WrapParseErr("dump.scanner", fmt.Errorf("expected %q, got %q", label, line))
		return ""
	}
	return line
}

func (sc *scanner) expect(literal string) error {
	line := sc.rawLine()
	if sc.err != nil {
		return sc.err
	}
	if strings.TrimSpace(line) != literal {
		sc.err = poly.WrapParseErr("dump.scanner", fmt.Errorf("expected %q, got %q", literal, line))
	}
	return sc.err
}

func (sc *scanner) expectPrefix(prefix string) string {
	line := sc.rawLine()
	if sc.err != nil {
		return ""
	}
	if !strings.HasPrefix(strings.TrimSpace(line), prefix) {
		sc.err = poly.WrapParseErr("dump.scanner", fmt.Errorf("expected prefix %q, got %q", prefix, line))
		return ""
	}
	return line
}
