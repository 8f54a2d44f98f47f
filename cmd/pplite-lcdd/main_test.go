package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezaffanella/pplite/vhrep"
)

const hRepSquare = `H-representation
begin
4 3 integer
0 1 0
1 -1 0
0 0 1
1 0 -1
end
`

func TestRunConvertsHToVOnStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(hRepSquare), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "V-representation")
	require.Empty(t, stderr.String())
}

func TestRunHelpPrintsUsageAndExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "usage: pplite-lcdd")
}

func TestRunUnknownOptionIsFatalError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--nope"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "Fatal error:")
}

func TestRunMalformedInputIsFatalError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("garbage\n"), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "Fatal error:")
}

func TestRunOutputFlagWritesToFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.ext")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", outPath}, strings.NewReader(hRepSquare), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Empty(t, stdout.String())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "V-representation")
}

func TestRunCheckMismatchFails(t *testing.T) {
	dir := t.TempDir()
	checkPath := filepath.Join(dir, "expected.ext")
	require.NoError(t, os.WriteFile(checkPath, []byte("not the right content"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", checkPath}, strings.NewReader(hRepSquare), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "Fatal error:")
}

func TestRunCheckMatchSucceeds(t *testing.T) {
	var convBuf, stderr bytes.Buffer
	code := run(nil, strings.NewReader(hRepSquare), &convBuf, &stderr)
	require.Equal(t, 0, code)

	dir := t.TempDir()
	checkPath := filepath.Join(dir, "expected.ext")
	require.NoError(t, os.WriteFile(checkPath, convBuf.Bytes(), 0o644))

	var stdout2, stderr2 bytes.Buffer
	code2 := run([]string{"-c", checkPath}, strings.NewReader(hRepSquare), &stdout2, &stderr2)
	require.Equal(t, 0, code2)
}

func TestRunVerboseReportsCounts(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v"}, strings.NewReader(hRepSquare), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stderr.String(), "cons=")
	require.Contains(t, stderr.String(), "gens=")
}

func TestRunTimingsReportsElapsed(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-t"}, strings.NewReader(hRepSquare), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stderr.String(), "elapsed:")
}

func TestRunSortInputPreservesLinearity(t *testing.T) {
	src := `H-representation
linearity 1 2
begin
2 2 integer
1 -1
0 1
end
`
	var stdout, stderr bytes.Buffer
	code := run([]string{"-s"}, strings.NewReader(src), &stdout, &stderr)
	require.Equal(t, 0, code)

	// sorting moves the equality row "0 1" to the front; its linearity
	// marker must follow it
	doc, err := vhrep.Read(strings.NewReader(src))
	require.NoError(t, err)
	sortRows(doc)
	require.Equal(t, []int{0}, doc.Linearity)
	require.Equal(t, 0, doc.Rows[0][0].Sign())
}
