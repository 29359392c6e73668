package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/humane-sort/internal/config"
	"github.com/DjordjeVuckovic/humane-sort/internal/lines"
	"github.com/DjordjeVuckovic/humane-sort/pkg/humane"
	"github.com/DjordjeVuckovic/humane-sort/pkg/stringsutil"
)

func main() {
	cli, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if cli.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := cli.resolve()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, cli.Files, os.Stdin, os.Stdout); err != nil {
		slog.Error("Failed to sort", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, files []string, stdin io.Reader, stdout io.Writer) error {
	input, err := lines.ReadFiles(files, stdin)
	if err != nil {
		return err
	}
	slog.Debug("Read input", "lines", len(input), "files", len(files))

	if cfg.SkipEmpty {
		input = stringsutil.RemoveEmptyStrings(input)
	}

	sorted := sortLines(input, cfg)

	out := stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if len(sorted) == 0 {
		return nil
	}
	if _, err := io.WriteString(out, strings.Join(sorted, "\n")+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Debug("Wrote output", "lines", len(sorted))
	return nil
}

func sortLines(input []string, cfg *config.Config) []string {
	key := func(line string) string {
		return lines.Key(line, cfg.KeyField)
	}

	humane.SortFunc(input, key)
	if cfg.Unique {
		input = lines.Dedupe(input, func(a, b string) int {
			return humane.Compare(key(a), key(b))
		})
	}
	if cfg.Reverse {
		input = stringsutil.Reverse(input)
	}
	return input
}
