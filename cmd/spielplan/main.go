// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// spielplan turns a club schedule export into a JSON fixture list.
//
// Usage:
//
//	spielplan [flags] [file ...]
//	pbpaste | spielplan -
//
// Exit codes:
//   - 0: Success
//   - 1: Configuration, input or output error
//   - 2: Usage error
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ManuGH/spielplan/internal/config"
	"github.com/ManuGH/spielplan/internal/fixtures"
	xglog "github.com/ManuGH/spielplan/internal/log"
	"github.com/ManuGH/spielplan/internal/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// cliOptions holds the parsed command line.
type cliOptions struct {
	configPath  string
	outPath     string
	metricsPath string
	watch       bool
	report      bool
	showVersion bool
	assigns     assignFlags
	files       []string
}

// assignFlags collects repeated -assign ID=FIELD overrides.
type assignFlags []assignment

type assignment struct {
	id    string
	field fixtures.Field
}

func (a *assignFlags) String() string {
	parts := make([]string, len(*a))
	for i, x := range *a {
		parts[i] = x.id + "=" + string(x.field)
	}
	return strings.Join(parts, ",")
}

// Set parses ID=FIELD. IDs may contain '=' in the pairing text, field names may not,
// so the last '=' separates them. An empty FIELD clears the assignment.
func (a *assignFlags) Set(v string) error {
	i := strings.LastIndex(v, "=")
	if i <= 0 {
		return fmt.Errorf("want ID=FIELD, got %q", v)
	}
	*a = append(*a, assignment{
		id:    strings.TrimSpace(v[:i]),
		field: fixtures.Field(strings.TrimSpace(v[i+1:])),
	})
	return nil
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("spielplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "c", "", "path to club profile YAML (defaults to the built-in profile)")
	fs.StringVar(&opts.outPath, "o", "", "write JSON atomically to this file instead of stdout")
	fs.StringVar(&opts.metricsPath, "metrics-textfile", "", "write Prometheus metrics to this textfile after each run")
	fs.BoolVar(&opts.watch, "watch", false, "re-parse whenever an input file changes (needs files and -o)")
	fs.BoolVar(&opts.report, "report", false, "emit the full parse report instead of only the records")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.Var(&opts.assigns, "assign", "assign a field to a record, ID=FIELD (repeatable, empty FIELD clears)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  spielplan [flags] [file ...|-]")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.files = fs.Args()

	stdinCount := 0
	for _, f := range opts.files {
		if f == "-" {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return opts, errors.New("stdin (-) may be given only once")
	}
	if opts.watch {
		if len(opts.files) == 0 || stdinCount > 0 {
			return opts, errors.New("-watch needs input files, not stdin")
		}
		if opts.outPath == "" {
			return opts, errors.New("-watch needs -o")
		}
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	cfg, err := config.NewLoader(opts.configPath, version.Version).Load()
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitError
	}

	xglog.Configure(xglog.Config{Level: cfg.LogLevel, Output: stderr})
	xglog.SetLevel(cfg.LogLevel)
	logger := xglog.WithComponent("cli")

	a, err := newApp(cfg, opts, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitError
	}

	if err := a.runOnce(ctx); err != nil {
		logger.Error().Err(err).Str(xglog.FieldEvent, "cli.run_failed").Msg("parse run failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if opts.watch {
		if err := a.watch(ctx); err != nil {
			logger.Error().Err(err).Str(xglog.FieldEvent, "cli.watch_failed").Msg("watch stopped")
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}
	return exitOK
}
