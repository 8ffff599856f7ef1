package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"dnalign-core/strand"
	"dnalign/internal/cli"
	"dnalign/internal/engine"
	"dnalign/internal/pairs"
	"dnalign/internal/pretty"
)

const (
	prompt      = "Generate random DNA strands? "
	aligningTop = "Aligning these two strands: "
)

// runInteractive is the demo loop: each answer other than "no" draws a
// random pair, echoes it, and prints its alignment. End of input also stops
// the loop.
func runInteractive(ctx context.Context, opts cli.Options, eng *engine.Engine, popt pretty.Options, stdin io.Reader, out *bufio.Writer, stderr io.Writer) int {
	r := strand.NewRand(opts.Seed)
	sc := bufio.NewScanner(stdin)
	indent := strings.Repeat(" ", len(aligningTop))
	for {
		_, _ = out.WriteString(prompt)
		if code := flushCode(out, stderr, 0); code != 0 {
			return code
		}
		if !sc.Scan() {
			break
		}
		if strings.TrimSpace(sc.Text()) == "no" {
			break
		}
		if ctx.Err() != nil {
			return 130
		}
		list, err := pairs.Random(r, 1, opts.MinLen, opts.MaxLenRand)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return 2
		}
		p := list[0]
		fmt.Fprintf(out, "%s%s\n", aligningTop, p.Top)
		fmt.Fprintf(out, "%s%s\n", indent, p.Bottom)
		res, err := eng.Align(p)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return 2
		}
		_, _ = out.WriteString(pretty.RenderWith(res.Alignment, popt))
	}
	if err := sc.Err(); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 3
	}
	return flushCode(out, stderr, 0)
}
