// Command pplite-lcdd converts between lcdd/cdd-compatible H- and
// V-representation files, mirroring the reference front-end's
// behavior (spec.md §6 item 4): it reads whichever representation the
// input carries and writes the other.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ezaffanella/pplite/poly"
	"github.com/ezaffanella/pplite/rational"
	"github.com/ezaffanella/pplite/vhrep"
)

const usage = `usage: pplite-lcdd [OPTION...] [FILE]

Converts an H-representation input to V-representation, or vice versa.
Reads FILE, or stdin if FILE is omitted.

  -h, --help            show this message and exit
  -o, --output PATH     write output to PATH instead of stdout (append)
  -s, --sort-input      sort input rows before conversion
  -t, --timings         report wall-clock elapsed time on stderr
  -v, --verbose         report row counts on stderr
  -c, --check PATH      compare output against PATH, fail if different
`

type options struct {
	output    string
	sortInput bool
	timings   bool
	verbose   bool
	check     string
	inputPath string
}

func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("pplite-lcdd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var o options
	fs.StringVar(&o.output, "o", "", "")
	fs.StringVar(&o.output, "output", "", "")
	fs.BoolVar(&o.sortInput, "s", false, "")
	fs.BoolVar(&o.sortInput, "sort-input", false, "")
	fs.BoolVar(&o.timings, "t", false, "")
	fs.BoolVar(&o.timings, "timings", false, "")
	fs.BoolVar(&o.verbose, "v", false, "")
	fs.BoolVar(&o.verbose, "verbose", false, "")
	fs.StringVar(&o.check, "c", "", "")
	fs.StringVar(&o.check, "check", "", "")
	help := fs.Bool("h", false, "")
	helpLong := fs.Bool("help", false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *help || *helpLong {
		return nil, flag.ErrHelp
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("too many positional arguments")
	}
	if fs.NArg() == 1 {
		o.inputPath = fs.Arg(0)
	}
	return &o, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err == flag.ErrHelp {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Fatal error: %s\n", err)
		return 1
	}

	start := startClock()

	in := stdin
	if opts.inputPath != "" {
		f, err := os.Open(opts.inputPath)
		if err != nil {
			fmt.Fprintf(stderr, "Fatal error: %s\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	src, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(stderr, "Fatal error: %s\n", err)
		return 1
	}

	doc, err := vhrep.Read(bytes.NewReader(src))
	if err != nil {
		fmt.Fprintf(stderr, "Fatal error: %s\n", err)
		return 1
	}
	if opts.sortInput {
		sortRows(doc)
	}

	p, err := vhrep.ToPoly(doc, poly.Closed)
	if err != nil {
		fmt.Fprintf(stderr, "Fatal error: %s\n", err)
		return 1
	}
	p.Minimize()

	// Convert to the opposite representation from what was read.
	asH := doc.Mode == vhrep.VRepresentation

	var buf bytes.Buffer
	if err := vhrep.Write(&buf, p, asH, vhrep.FormatInteger); err != nil {
		fmt.Fprintf(stderr, "Fatal error: %s\n", err)
		return 1
	}

	if opts.check != "" {
		expected, err := os.ReadFile(opts.check)
		if err != nil {
			fmt.Fprintf(stderr, "Fatal error: %s\n", err)
			return 1
		}
		if !bytes.Equal(buf.Bytes(), expected) {
			fmt.Fprintf(stderr, "Fatal error: output does not match %s\n", opts.check)
			return 1
		}
	}

	out := stdout
	if opts.output != "" {
		f, err := os.OpenFile(opts.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "Fatal error: %s\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		fmt.Fprintf(stderr, "Fatal error: %s\n", err)
		return 1
	}

	if opts.verbose {
		fmt.Fprintf(stderr, "cons=%d gens=%d\n", p.NumMinCons(), p.NumMinGens())
	}
	if opts.timings {
		fmt.Fprintf(stderr, "elapsed: %s\n", start.Elapsed())
	}
	return 0
}

// sortRows sorts doc.Rows lexicographically, remapping doc.Linearity
// so it still names the right rows by their post-sort positions.
func sortRows(doc *vhrep.Doc) {
	order := make([]int, len(doc.Rows))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := doc.Rows[order[i]], doc.Rows[order[j]]
		for k := 0; k < len(a) && k < len(b); k++ {
			if c := a[k].Cmp(b[k]); c != 0 {
				return c < 0
			}
		}
		return len(a) < len(b)
	})

	newIndexOf := make([]int, len(order))
	sorted := make([][]rational.Rational, len(order))
	for newPos, oldPos := range order {
		sorted[newPos] = doc.Rows[oldPos]
		newIndexOf[oldPos] = newPos
	}
	doc.Rows = sorted

	for i, oldIdx := range doc.Linearity {
		doc.Linearity[i] = newIndexOf[oldIdx]
	}
}
