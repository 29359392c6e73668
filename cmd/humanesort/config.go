package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/humane-sort/internal/config"
	"github.com/DjordjeVuckovic/humane-sort/pkg/config/env"
)

type cliConfig struct {
	ConfigPath string
	Reverse    bool
	Unique     bool
	SkipEmpty  bool
	KeyField   int
	Output     string
	Verbose    bool
	Files      []string

	// set records the flags given on the command line, so they win over the config file.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{set: map[string]bool{}}

	fs := flag.NewFlagSet("humanesort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: humanesort [flags] [file ...]")
		fmt.Fprintln(fs.Output(), "Sorts lines so that embedded numbers compare by value.")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.ConfigPath, "config", "", "Path to YAML config file, defaults to $HUMANESORT_CONFIG")
	fs.BoolVar(&cfg.Reverse, "reverse", false, "Reverse the result")
	fs.BoolVar(&cfg.Unique, "unique", false, "Drop lines whose sort key equals the previous one")
	fs.BoolVar(&cfg.SkipEmpty, "skip-empty", false, "Drop blank lines")
	fs.IntVar(&cfg.KeyField, "k", 0, "Sort by the given 1-based whitespace field, 0 for the whole line")
	fs.StringVar(&cfg.Output, "output", "", "Write the result to this file instead of stdout")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })
	cfg.Files = fs.Args()

	return cfg, nil
}

// resolve layers .env, the YAML file, HUMANESORT_* variables and explicit flags, in that order.
func (c cliConfig) resolve() (*config.Config, error) {
	if err := env.LoadDotEnv(".env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	cfg := &config.Config{}
	path := c.ConfigPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	if path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("Loaded config file", "path", path)
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if c.set["reverse"] {
		cfg.Reverse = c.Reverse
	}
	if c.set["unique"] {
		cfg.Unique = c.Unique
	}
	if c.set["skip-empty"] {
		cfg.SkipEmpty = c.SkipEmpty
	}
	if c.set["k"] {
		cfg.KeyField = c.KeyField
	}
	if c.set["output"] {
		cfg.Output = c.Output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
