// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"dnalign-core/align"
	"dnalign/internal/cmdutil"
	"dnalign/internal/engine"
	"dnalign/internal/pairs"
	"dnalign/internal/pipeline"
	"dnalign/internal/progress"
	"dnalign/internal/runutil"
	"dnalign/internal/writers"
)

type Options struct {
	Threads         int
	Quiet           bool
	NoInputExitCode int
	Progress        bool
}

type VisitorFunc[T any] func(engine.Result) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// PassThrough keeps every result as-is.
func PassThrough(r engine.Result) (bool, engine.Result, error) { return true, r, nil }

// Run aligns pairs with eng, streams kept results through wf, and maps the
// outcome to an exit code: 0 ok, 2 strand over the length limit, 3 runtime
// or write failure, 130 cancelled, o.NoInputExitCode when nothing was kept.
// A broken pipe on stdout counts as success.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	log logrus.FieldLogger,
	o Options,
	list []pairs.Pair,
	eng pipeline.Aligner,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	thr := runutil.EffectiveThreads(o.Threads)
	log.WithFields(logrus.Fields{"pairs": len(list), "threads": thr}).Debug("aligning")

	bar := progress.New(stderr, len(list), runutil.ProgressEnabled(o.Progress, o.Quiet, len(list)))

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr, OnDone: bar.Increment},
		list,
		eng,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	bar.Done()

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		switch {
		case errors.Is(perr, context.Canceled):
			return 130
		case errors.Is(perr, align.ErrTooLong):
			fmt.Fprintln(stderr, "error:", perr)
			return 2
		}
		fmt.Fprintln(stderr, "error:", perr)
		return 3
	}
	log.WithField("written", total).Debug("done")
	if total == 0 {
		return o.NoInputExitCode
	}
	return 0
}
