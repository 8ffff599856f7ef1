// Package progress draws a job counter on stderr while alignments run.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Tracker counts finished jobs. Increment is safe for concurrent use.
type Tracker interface {
	Increment()
	// Done stops drawing and waits for the last frame. Call it once.
	Done()
}

type nop struct{}

func (nop) Increment() {}
func (nop) Done()      {}

// Nop returns a Tracker that draws nothing.
func Nop() Tracker { return nop{} }

type bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New returns a Tracker for total jobs drawn on w, or Nop when disabled.
func New(w io.Writer, total int, enabled bool) Tracker {
	if !enabled || total <= 0 {
		return Nop()
	}
	const task = "aligning"
	p := mpb.New(
		mpb.WithOutput(w),
		mpb.WithAutoRefresh(),
		mpb.WithWidth(48),
	)
	b := p.New(int64(total),
		mpb.BarStyle().Filler("#").Padding(" "),
		mpb.PrependDecorators(
			decor.Name(task, decor.WC{W: len(task) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return &bar{p: p, bar: b}
}

func (b *bar) Increment() { b.bar.Increment() }

func (b *bar) Done() {
	if !b.bar.Completed() {
		// Cancelled or failed run: stop the bar where it is.
		b.bar.Abort(false)
	}
	b.p.Wait()
}
