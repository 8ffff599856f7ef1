// Package config loads dnalign settings from TOML or YAML files.
//
// Precedence is defaults < file < command-line flags; the flag layer is
// applied by the callers in internal/cli and internal/serveapp.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dnalign-core/align"
)

// EnvConfig names a config file used when --config is not given.
const EnvConfig = "DNALIGN_CONFIG"

type Scoring struct {
	Match    int `toml:"match" yaml:"match"`
	Mismatch int `toml:"mismatch" yaml:"mismatch"`
	Gap      int `toml:"gap" yaml:"gap"`
}

type Limits struct {
	// MaxLength bounds each input strand; 0 disables the check.
	MaxLength int `toml:"max_length" yaml:"max_length"`
}

type Output struct {
	Format string `toml:"format" yaml:"format"`
	Color  string `toml:"color" yaml:"color"`
	Wrap   int    `toml:"wrap" yaml:"wrap"`
}

type Server struct {
	Addr              string   `toml:"addr" yaml:"addr"`
	ReadHeaderTimeout Duration `toml:"read_header_timeout" yaml:"read_header_timeout"`
	MaxBodyBytes      int64    `toml:"max_body_bytes" yaml:"max_body_bytes"`
}

// File is the on-disk configuration.
type File struct {
	Scoring Scoring `toml:"scoring" yaml:"scoring"`
	Limits  Limits  `toml:"limits" yaml:"limits"`
	Output  Output  `toml:"output" yaml:"output"`
	Server  Server  `toml:"server" yaml:"server"`
}

// Default returns the built-in settings.
func Default() File {
	s := align.DefaultScheme
	return File{
		Scoring: Scoring{Match: s.Match, Mismatch: s.Mismatch, Gap: s.Gap},
		Limits:  Limits{MaxLength: 20000},
		Output:  Output{Format: "text", Color: "auto"},
		Server: Server{
			Addr:              "127.0.0.1:8080",
			ReadHeaderTimeout: Duration(5 * time.Second),
			MaxBodyBytes:      1 << 20,
		},
	}
}

// Scheme converts the scoring section.
func (f File) Scheme() align.Scheme {
	return align.Scheme{Match: f.Scoring.Match, Mismatch: f.Scoring.Mismatch, Gap: f.Scoring.Gap}
}

// Load reads path over the defaults. An empty path falls back to
// $DNALIGN_CONFIG, and to the defaults alone when that is unset too.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := Decode(data, formatOf(path), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "toml"
}

// Decode parses data in the given format ("toml" or "yaml") into cfg.
// Keys missing from data keep their current values.
func Decode(data []byte, format string, cfg *File) error {
	switch format {
	case "yaml":
		return yaml.Unmarshal(data, cfg)
	case "toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return fmt.Errorf("unknown keys: %v", undec)
		}
		return nil
	}
	return fmt.Errorf("unsupported config format %q", format)
}

// Validate reports every problem at once.
func (f File) Validate() error {
	errs := &errors.M{}
	if err := f.Scheme().Validate(); err != nil {
		errs.Append(fmt.Errorf("scoring: %w", err))
	}
	if f.Limits.MaxLength < 0 {
		errs.Append(fmt.Errorf("limits.max_length must be >= 0, got %d", f.Limits.MaxLength))
	}
	switch f.Output.Format {
	case "text", "tsv", "json", "jsonl":
	default:
		errs.Append(fmt.Errorf("output.format: unknown format %q", f.Output.Format))
	}
	switch f.Output.Color {
	case "auto", "always", "never":
	default:
		errs.Append(fmt.Errorf("output.color: want auto|always|never, got %q", f.Output.Color))
	}
	if f.Output.Wrap < 0 {
		errs.Append(fmt.Errorf("output.wrap must be >= 0, got %d", f.Output.Wrap))
	}
	if f.Server.MaxBodyBytes <= 0 {
		errs.Append(fmt.Errorf("server.max_body_bytes must be > 0, got %d", f.Server.MaxBodyBytes))
	}
	return errs.Err()
}
