package pretty

import (
	"fmt"
	"strings"

	"github.com/mgutz/ansi"

	"dnalign-core/align"
)

// Options control the block rendering.
type Options struct {
	// Columns per block. <=0 renders each row on one line.
	Wrap int

	// Colorize the strand rows per column (ANSI). Marker rows stay plain so
	// they can be grepped.
	Color bool

	// Print "# <id>" before the score line.
	ShowID bool

	// Glyphs on the minus row (below par) and the plus row.
	MismatchGlyph string // default "1"
	GapGlyph      string // default "2"
	MatchGlyph    string // default "1"

	// ansi style strings, e.g. "green+b". Used only with Color.
	MatchStyle    string
	MismatchStyle string
	GapStyle      string
}

// DefaultOptions reproduce the classic report byte for byte.
var DefaultOptions = Options{
	MismatchGlyph: "1",
	GapGlyph:      "2",
	MatchGlyph:    "1",
	MatchStyle:    "green",
	MismatchStyle: "red",
	GapStyle:      "yellow",
}

const (
	minusLabel = "   -  "
	plusLabel  = "   +  "
	rowIndent  = "      "
)

// Render formats a with DefaultOptions.
func Render(a align.Alignment) string {
	return RenderWith(a, DefaultOptions)
}

// RenderResult formats one labelled alignment.
func RenderResult(id string, a align.Alignment, opt Options) string {
	if !opt.ShowID || id == "" {
		return RenderWith(a, opt)
	}
	return "# " + id + "\n" + RenderWith(a, opt)
}

// RenderWith formats a as the score line followed by one or more four-row
// blocks: minus markers, top, bottom, plus markers. Each block ends with a
// blank line.
func RenderWith(a align.Alignment, opt Options) string {
	opt = withDefaults(opt)
	n := a.Len()
	minus, plus := markerRows(a, opt)

	var b strings.Builder
	fmt.Fprintf(&b, "Optimal alignment score is %d\n\n", a.Score)

	width := opt.Wrap
	if width <= 0 || width > n {
		width = n
	}
	for start := 0; ; start += width {
		end := start + width
		if end > n {
			end = n
		}
		b.WriteString(minusLabel + strings.Join(minus[start:end], "") + "\n")
		b.WriteString(rowIndent + strandRow(a, a.Top, start, end, opt) + "\n")
		b.WriteString(rowIndent + strandRow(a, a.Bottom, start, end, opt) + "\n")
		b.WriteString(plusLabel + strings.Join(plus[start:end], "") + "\n")
		b.WriteString("\n")
		if end >= n {
			break
		}
	}
	return b.String()
}

func withDefaults(o Options) Options {
	d := DefaultOptions
	if o.MismatchGlyph == "" {
		o.MismatchGlyph = d.MismatchGlyph
	}
	if o.GapGlyph == "" {
		o.GapGlyph = d.GapGlyph
	}
	if o.MatchGlyph == "" {
		o.MatchGlyph = d.MatchGlyph
	}
	if o.MatchStyle == "" {
		o.MatchStyle = d.MatchStyle
	}
	if o.MismatchStyle == "" {
		o.MismatchStyle = d.MismatchStyle
	}
	if o.GapStyle == "" {
		o.GapStyle = d.GapStyle
	}
	return o
}

// markerRows returns one cell per column for the minus and plus rows.
func markerRows(a align.Alignment, opt Options) (minus, plus []string) {
	kinds := a.Kinds()
	minus = make([]string, len(kinds))
	plus = make([]string, len(kinds))
	for i, k := range kinds {
		minus[i], plus[i] = " ", " "
		switch k {
		case align.Match:
			plus[i] = opt.MatchGlyph
		case align.Mismatch:
			minus[i] = opt.MismatchGlyph
		default:
			minus[i] = opt.GapGlyph
		}
	}
	return minus, plus
}

func strandRow(a align.Alignment, row []byte, start, end int, opt Options) string {
	if !opt.Color {
		return string(row[start:end])
	}
	var b strings.Builder
	for i := start; i < end; i++ {
		style := opt.GapStyle
		switch align.KindOf(a.Top[i], a.Bottom[i]) {
		case align.Match:
			style = opt.MatchStyle
		case align.Mismatch:
			style = opt.MismatchStyle
		}
		b.WriteString(ansi.Color(string(row[i]), style))
	}
	return b.String()
}
