// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"dnalign/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, inputs, output, etc.).
func UsageCommon(fs *flag.FlagSet, name, tagline string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, tagline)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintf(out, "      --match int             Score for a matching pair [%s]\n", def("match"))
		fmt.Fprintf(out, "      --mismatch int          Score for a mismatched pair [%s]\n", def("mismatch"))
		fmt.Fprintf(out, "      --gap int               Score for a gap column, < 0 [%s]\n", def("gap"))

		fmt.Fprintln(out, "\nLimits:")
		fmt.Fprintf(out, "      --max-length int        Max length of each strand (0=unlimited) [%s]\n", def("max-length"))
		fmt.Fprintf(out, "      --strict                Reject symbols outside A, C, G, T [%s]\n", def("strict"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           TOML or YAML config file (or $DNALIGN_CONFIG)")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
