package appcore

import (
	"io"

	"dnalign/internal/engine"
	"dnalign/internal/writers"
)

// ResultWriterFactory starts a writer for engine.Result items.
type ResultWriterFactory struct {
	Format string
	Sort   bool
	Opts   writers.Options
}

func NewResultWriterFactory(format string, sort bool, opts writers.Options) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Sort: sort, Opts: opts}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Sort, w.Opts, bufSize)
}
