// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// EffectiveThreads returns n, or the CPU count when n <= 0.
func EffectiveThreads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// IsTerminal reports whether w is an *os.File attached to a terminal
// (including Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled resolves a --color mode against the destination.
// "auto" colors only a terminal, and never when NO_COLOR is set.
func ColorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto, "":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		return IsTerminal(w), nil
	}
	return false, fmt.Errorf("invalid --color %q (want auto, always or never)", mode)
}

// ProgressEnabled decides whether to draw a progress bar on w.
// Quiet wins over an explicit request.
func ProgressEnabled(want, quiet bool, jobs int) bool {
	return want && !quiet && jobs > 0
}
