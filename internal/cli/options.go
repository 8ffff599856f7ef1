// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"dnalign/internal/clibase"
	"dnalign/internal/cliutil"
	"dnalign/internal/config"
	"dnalign/internal/engine"
	"dnalign/internal/output"
	"dnalign/internal/runutil"
)

// Options holds all dnalign flags and arguments.
type Options struct {
	clibase.Common

	// Input (exactly one source)
	Top         string
	Bottom      string
	PairsFile   string
	SeqFiles    []string
	Random      int
	MinLen      int
	MaxLenRand  int
	Seed        uint64
	Interactive bool

	// Alignment
	Method string

	// Performance
	Threads  int
	Progress bool

	// Output
	Output          string // text|tsv|json|jsonl
	Sort            bool
	Header          bool // true unless --no-header
	Color           string
	Wrap            int
	NoInputExitCode int

	Examples bool

	// Config is the effective configuration after file and flag layering.
	Config config.File

	inline bool
}

// Inline reports whether the pair came from --top/--bottom.
func (o Options) Inline() bool { return o.inline }

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

func register(fs *flag.FlagSet, o *Options, noHeader *bool) {
	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.Top, "top", "", "top strand")
	fs.StringVar(&o.Top, "a", "", "alias of --top")
	fs.StringVar(&o.Bottom, "bottom", "", "bottom strand")
	fs.StringVar(&o.Bottom, "b", "", "alias of --bottom")
	fs.StringVar(&o.PairsFile, "pairs", "", "TSV of pairs: [id] top bottom")
	fs.StringVar(&o.PairsFile, "p", "", "alias of --pairs")
	seqVal := &sliceValue{dst: &o.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")
	fs.IntVar(&o.Random, "random", 0, "align N random pairs")
	fs.IntVar(&o.MinLen, "min-length", 60, "shortest random strand")
	fs.IntVar(&o.MaxLenRand, "max-length-random", 60, "longest random strand")
	fs.Uint64Var(&o.Seed, "seed", 0, "random seed (0=time based)")
	fs.BoolVar(&o.Interactive, "interactive", false, "prompt loop over random pairs")

	fs.StringVar(&o.Method, "method", engine.MethodTable, "table | memo")

	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0=all CPUs)")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")
	fs.BoolVar(&o.Progress, "progress", false, "progress bar on stderr")

	d := config.Default()
	fs.StringVar(&o.Output, "output", d.Output.Format, "output: text | tsv | json | jsonl")
	fs.StringVar(&o.Output, "o", d.Output.Format, "alias of --output")
	fs.BoolVar(&o.Sort, "sort", false, "sort outputs by id")
	fs.BoolVar(noHeader, "no-header", false, "suppress TSV header line")
	fs.StringVar(&o.Color, "color", d.Output.Color, "auto | always | never")
	fs.IntVar(&o.Wrap, "wrap", d.Output.Wrap, "text block width (0=no wrap)")
	fs.IntVar(&o.NoInputExitCode, "no-input-exit-code", 1, "exit code when there is nothing to align")

	fs.BoolVar(&o.Examples, "examples", false, "print quickstart examples and exit")
}

// ParseArgs registers and parses all flags, resolves the config layers, and
// validates the result. It returns flag.ErrHelp for -h and
// clibase.ErrPrintedAndExitOK for --examples.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	noHeader := false
	register(fs, &o, &noHeader)
	installUsage(fs)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if o.Help {
		return o, flag.ErrHelp
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if o.Version {
		return o, nil
	}
	o.Header = !noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		o.SeqFiles = append(o.SeqFiles, exp...)
	}

	cfg, err := clibase.Resolve(fs, &o.Common)
	if err != nil {
		return o, err
	}
	set := cliutil.SetFlags(fs)
	if !cliutil.AnySet(set, "output", "o") {
		o.Output = cfg.Output.Format
	}
	if !set["color"] {
		o.Color = cfg.Output.Color
	}
	if !set["wrap"] {
		o.Wrap = cfg.Output.Wrap
	}
	cfg.Output = config.Output{Format: o.Output, Color: o.Color, Wrap: o.Wrap}
	o.Config = cfg
	o.inline = cliutil.AnySet(set, "top", "a", "bottom", "b")

	if err := validate(o, set); err != nil {
		return o, err
	}
	return o, nil
}

func validate(o Options, set map[string]bool) error {
	sources := 0
	if o.inline {
		sources++
		if !cliutil.AnySet(set, "top", "a") || !cliutil.AnySet(set, "bottom", "b") {
			return errors.New("--top and --bottom must be supplied together")
		}
	}
	if o.PairsFile != "" {
		sources++
	}
	if len(o.SeqFiles) > 0 {
		sources++
	}
	if o.Random != 0 {
		sources++
	}
	if o.Interactive {
		sources++
	}
	switch {
	case sources == 0:
		return errors.New("provide --top/--bottom, --pairs, --sequences, --random or --interactive")
	case sources > 1:
		return errors.New("choose one input: --top/--bottom, --pairs, --sequences, --random or --interactive")
	}
	if o.Random < 0 {
		return errors.New("--random must be ≥ 0")
	}
	if o.MinLen < 1 || o.MaxLenRand < o.MinLen {
		return fmt.Errorf("random lengths need 1 ≤ --min-length ≤ --max-length-random, got %d and %d", o.MinLen, o.MaxLenRand)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Method {
	case engine.MethodTable, engine.MethodMemo:
	default:
		return fmt.Errorf("invalid --method %q", o.Method)
	}
	switch o.Output {
	case output.FormatText, output.FormatTSV, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	switch o.Color {
	case runutil.ColorAuto, runutil.ColorAlways, runutil.ColorNever:
	default:
		return fmt.Errorf("invalid --color %q", o.Color)
	}
	if o.Wrap < 0 {
		return errors.New("--wrap must be ≥ 0")
	}
	if o.NoInputExitCode < 0 || o.NoInputExitCode > 255 {
		return errors.New("--no-input-exit-code must be between 0 and 255")
	}
	return nil
}

func installUsage(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, "dnalign", "optimal pairwise DNA alignment", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  dnalign --top SEQ --bottom SEQ [flags]")
		fmt.Fprintln(out, "  dnalign [flags] file.fa [more.fa ...]")
		fmt.Fprintln(out, "  dnalign --interactive")

		fmt.Fprintln(out, "\nInput (choose one):")
		fmt.Fprintln(out, "  -a, --top string            Top strand")
		fmt.Fprintln(out, "  -b, --bottom string         Bottom strand")
		fmt.Fprintln(out, "  -p, --pairs file            TSV of pairs: [id] top bottom")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for STDIN; records pair up in order")
		fmt.Fprintln(out, "      --random int            Align N random pairs")
		fmt.Fprintf(out, "      --min-length int        Shortest random strand [%s]\n", def("min-length"))
		fmt.Fprintf(out, "      --max-length-random int Longest random strand [%s]\n", def("max-length-random"))
		fmt.Fprintf(out, "      --seed int              Random seed (0=time based) [%s]\n", def("seed"))
		fmt.Fprintln(out, "      --interactive           Prompt loop over random pairs")

		fmt.Fprintln(out, "\nAlignment:")
		fmt.Fprintf(out, "      --method string         table | memo [%s]\n", def("method"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --progress              Progress bar on stderr [%s]\n", def("progress"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         text | tsv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  Sort outputs by id [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress TSV header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --color string          auto | always | never [%s]\n", def("color"))
		fmt.Fprintf(out, "      --wrap int              Text block width (0=no wrap) [%s]\n", def("wrap"))
		fmt.Fprintf(out, "      --no-input-exit-code int  Exit code when there is nothing to align [%s]\n", def("no-input-exit-code"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
	})
}
