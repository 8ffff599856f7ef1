// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a small quickstart header and body, followed by a
// one-line tip to discover full help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

// AlignExamples is the quickstart body for dnalign.
func AlignExamples(out io.Writer) {
	lines := []string{
		"  # Align two strands given inline",
		"  dnalign --top GATTACA --bottom GCATGCT",
		"",
		"  # Align consecutive FASTA records pairwise, gzip/zstd welcome",
		"  dnalign reads.fa.gz -o tsv",
		"",
		"  # Align a TSV of pairs (id top bottom) on 8 threads, as JSON lines",
		"  dnalign --pairs pairs.tsv -t 8 -o jsonl",
		"",
		"  # Ten reproducible random pairs with a custom scheme",
		"  dnalign --random 10 --seed 42 --match 2 --mismatch -1 --gap -3",
		"",
		"  # The classic demo loop; answer \"no\" to stop",
		"  dnalign --interactive",
	}
	for _, l := range lines {
		_, _ = fmt.Fprintln(out, l)
	}
}

// ServeExamples is the quickstart body for dnalign-serve.
func ServeExamples(out io.Writer) {
	lines := []string{
		"  # Serve on the default address",
		"  dnalign-serve",
		"",
		"  # Pick an address and a config file",
		"  dnalign-serve --addr :9000 --config dnalign.toml",
		"",
		"  # Then:",
		`  curl -s localhost:9000/v1/align -d '{"top":"GATTACA","bottom":"GCATGCT"}'`,
		"  curl -s 'localhost:9000/v1/align?format=text' -d '{\"top\":\"ACGT\",\"bottom\":\"AGT\"}'",
	}
	for _, l := range lines {
		_, _ = fmt.Fprintln(out, l)
	}
}
