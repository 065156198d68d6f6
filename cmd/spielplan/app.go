// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ManuGH/spielplan/internal/config"
	"github.com/ManuGH/spielplan/internal/fixtures"
	xglog "github.com/ManuGH/spielplan/internal/log"
	"github.com/ManuGH/spielplan/internal/metrics"
	"github.com/google/renameio/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// app holds what one parse run needs; watch mode reuses it across runs.
type app struct {
	parser   *fixtures.Parser
	plan     *fixtures.Plan
	opts     cliOptions
	stdin    io.Reader
	stdout   io.Writer
	logger   zerolog.Logger
	debounce time.Duration
}

func newApp(cfg config.AppConfig, opts cliOptions, stdin io.Reader, stdout io.Writer) (*app, error) {
	parser, err := fixtures.NewParser(cfg.ParserOptions())
	if err != nil {
		return nil, fmt.Errorf("build parser: %w", err)
	}
	return &app{
		parser:   parser,
		plan:     fixtures.NewPlan(nil, parser.Fields()),
		opts:     opts,
		stdin:    stdin,
		stdout:   stdout,
		logger:   xglog.WithComponent("cli"),
		debounce: 500 * time.Millisecond,
	}, nil
}

// runOnce reads all inputs, parses them, applies -assign overrides and
// writes the result.
func (a *app) runOnce(ctx context.Context) error {
	ctx = xglog.ContextWithRunID(ctx, uuid.New().String())
	logger := xglog.WithContext(ctx, a.logger)
	ctx = logger.WithContext(ctx)

	text, err := readInputs(ctx, a.opts.files, a.stdin)
	if err != nil {
		return err
	}

	parser := a.parser.WithLogger(xglog.WithContext(ctx, xglog.WithComponent("fixtures")))
	rep := parser.ParseReport(text)

	a.plan.Replace(rep.Records)
	if err := a.applyAssignments(logger); err != nil {
		return err
	}
	rep.Records = a.plan.Records()
	if rep.Records == nil {
		rep.Records = []fixtures.MatchRecord{}
	}

	metrics.RecordReport(rep.Stats)

	var payload any = rep.Records
	if a.opts.report {
		payload = rep
	}
	if err := a.writeOutput(ctx, payload); err != nil {
		return err
	}

	if a.opts.metricsPath != "" {
		if err := metrics.WriteTextfile(a.opts.metricsPath); err != nil {
			return err
		}
	}

	logger.Info().
		Str(xglog.FieldEvent, "cli.run_complete").
		Int(xglog.FieldRecorded, rep.Stats.Recorded).
		Int(xglog.FieldSkipped, rep.Stats.SkippedTotal()).
		Str(xglog.FieldOutputPath, a.opts.outPath).
		Msg("fixture list written")
	return nil
}

// applyAssignments replays the -assign overrides onto the fresh plan.
// A record that no longer exists is only logged, since watch mode
// re-parses edited exports; an unknown field is a user error.
func (a *app) applyAssignments(logger zerolog.Logger) error {
	for _, as := range a.opts.assigns {
		err := a.plan.Assign(as.id, as.field)
		metrics.IncAssignment(err)
		switch {
		case err == nil:
		case errors.Is(err, fixtures.ErrUnknownRecord):
			logger.Warn().
				Err(err).
				Str(xglog.FieldEvent, "cli.assign_skipped").
				Str(xglog.FieldRecordID, as.id).
				Msg("assignment refers to a record not in this export")
		default:
			return err
		}
	}
	return nil
}

// readInputs reads every file concurrently and joins them in argument order.
// No files, or "-", means stdin.
func readInputs(ctx context.Context, files []string, stdin io.Reader) (string, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	parts := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var (
				data []byte
				err  error
			)
			if name == "-" {
				data, err = io.ReadAll(stdin)
			} else {
				// #nosec G304 -- input paths are provided by the operator via CLI
				data, err = os.ReadFile(filepath.Clean(name))
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			parts[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(parts, "\n"), nil
}

func (a *app) writeOutput(ctx context.Context, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	data = append(data, '\n')

	if a.opts.outPath == "" {
		_, err := a.stdout.Write(data)
		return err
	}
	return writeFileAtomic(ctx, a.opts.outPath, data)
}

// writeFileAtomic replaces path so readers never see a half-written list.
func writeFileAtomic(ctx context.Context, path string, data []byte) error {
	logger := xglog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending output file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending output file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write output data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace output file: %w", err)
	}
	return nil
}
