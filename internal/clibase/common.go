// internal/clibase/common.go
package clibase

import (
	"flag"
	"fmt"

	"dnalign/internal/cliutil"
	"dnalign/internal/config"
)

// Common holds CLI fields shared by dnalign and dnalign-serve.
type Common struct {
	ConfigPath string

	// Scoring
	Match    int
	Mismatch int
	Gap      int

	// Limits
	MaxLength int
	Strict    bool

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
	Help    bool
}

// Register wires shared flags onto fs. Defaults come from config.Default so
// the help text shows what a run without a config file uses.
func Register(fs *flag.FlagSet, c *Common) {
	d := config.Default()

	fs.StringVar(&c.ConfigPath, "config", "", "TOML or YAML config file (default $"+config.EnvConfig+")")

	fs.IntVar(&c.Match, "match", d.Scoring.Match, "score for a matching pair")
	fs.IntVar(&c.Mismatch, "mismatch", d.Scoring.Mismatch, "score for a mismatched pair")
	fs.IntVar(&c.Gap, "gap", d.Scoring.Gap, "score for a gap column (must be < 0)")

	fs.IntVar(&c.MaxLength, "max-length", d.Limits.MaxLength, "max length of each strand (0=unlimited)")
	fs.BoolVar(&c.Strict, "strict", false, "reject symbols outside A, C, G, T")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging on stderr")
	fs.BoolVar(&c.Version, "v", false, "print version and exit")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
	fs.BoolVar(&c.Help, "h", false, "show this help and exit")
	fs.BoolVar(&c.Help, "help", false, "show this help and exit")
}

// Resolve loads the config file (or $DNALIGN_CONFIG) and lays every flag
// the user set explicitly on top. The result is validated as a whole.
func Resolve(fs *flag.FlagSet, c *Common) (config.File, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	set := cliutil.SetFlags(fs)
	if set["match"] {
		cfg.Scoring.Match = c.Match
	}
	if set["mismatch"] {
		cfg.Scoring.Mismatch = c.Mismatch
	}
	if set["gap"] {
		cfg.Scoring.Gap = c.Gap
	}
	if set["max-length"] {
		cfg.Limits.MaxLength = c.MaxLength
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	// Reflect the effective values back for callers that read Common.
	c.Match, c.Mismatch, c.Gap = cfg.Scoring.Match, cfg.Scoring.Mismatch, cfg.Scoring.Gap
	c.MaxLength = cfg.Limits.MaxLength
	return cfg, nil
}
