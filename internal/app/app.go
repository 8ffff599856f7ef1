// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"dnalign/internal/appcore"
	"dnalign/internal/cli"
	"dnalign/internal/clibase"
	"dnalign/internal/cmdutil"
	"dnalign/internal/engine"
	"dnalign/internal/pairs"
	"dnalign/internal/pretty"
	"dnalign/internal/runutil"
	"dnalign/internal/version"
	"dnalign/internal/writers"
)

// RunContext runs dnalign with os.Stdin as the interactive input.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunIO(parent, argv, os.Stdin, stdout, stderr)
}

// RunIO is RunContext with an explicit stdin.
func RunIO(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dnalign")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(outw, "dnalign", clibase.AlignExamples)
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprintln(stderr, "run 'dnalign --help' for usage")
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dnalign version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	cfg := opts.Config
	log.WithField("scheme", cfg.Scheme().String()).Debug("effective scoring")

	eng, err := engine.New(engine.Config{
		Scheme:    cfg.Scheme(),
		Method:    opts.Method,
		MaxLength: cfg.Limits.MaxLength,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	color, err := runutil.ColorEnabled(opts.Color, stdout)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	popt := pretty.DefaultOptions
	popt.Color = color
	popt.Wrap = opts.Wrap

	if opts.Interactive {
		return runInteractive(parent, opts, eng, popt, stdin, outw, stderr)
	}

	list, err := loadPairs(parent, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if list, err = pairs.Prepare(list, opts.Strict); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if err := checkLengths(list, cfg.Limits.MaxLength); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if len(list) == 0 {
		cmdutil.Warnf(log, opts.Quiet, "no input pairs")
	}

	// Label blocks unless the single pair came from --top/--bottom.
	popt.ShowID = !opts.Inline()

	wf := appcore.NewResultWriterFactory(opts.Output, opts.Sort, writers.Options{Header: opts.Header, Pretty: popt})
	coreOpts := appcore.Options{
		Threads:         opts.Threads,
		Quiet:           opts.Quiet,
		NoInputExitCode: opts.NoInputExitCode,
		Progress:        opts.Progress,
	}
	return appcore.Run[engine.Result](parent, stdout, stderr, log, coreOpts, list, eng, appcore.PassThrough, wf)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushCode flushes w and returns code, or 3 on a write failure other
// than a broken pipe.
func flushCode(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
