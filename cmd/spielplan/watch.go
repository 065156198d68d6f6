// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	xglog "github.com/ManuGH/spielplan/internal/log"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// watch re-runs the parse whenever one of the input files is written or
// replaced, until ctx is cancelled.
func (a *app) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Editors often save by renaming a temp file over the original, which
	// drops a watch on the file itself. Watch the directories instead.
	targets := make(map[string]struct{}, len(a.opts.files))
	dirs := make(map[string]struct{})
	for _, f := range a.opts.files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = watcher.Close()
			return fmt.Errorf("resolve %s: %w", f, err)
		}
		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	a.logger.Info().
		Str(xglog.FieldEvent, "cli.watcher_started").
		Strs("files", a.opts.files).
		Msg("watching input files for changes")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return watcher.Close()
	})
	g.Go(func() error {
		return a.watchLoop(gctx, watcher, targets)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.logger.Info().Str(xglog.FieldEvent, "cli.watcher_stopped").Msg("input watcher stopped")
	return nil
}

func (a *app) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, targets map[string]struct{}) error {
	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return closedErr(ctx)
			}
			if _, tracked := targets[filepath.Clean(event.Name)]; !tracked {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			a.logger.Debug().
				Str(xglog.FieldEvent, "cli.input_changed").
				Str(xglog.FieldPath, event.Name).
				Str("op", event.Op.String()).
				Msg("input file changed")

			if debounce == nil {
				debounce = time.NewTimer(a.debounce)
			} else {
				debounce.Reset(a.debounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			if err := a.runOnce(ctx); err != nil {
				a.logger.Error().
					Err(err).
					Str(xglog.FieldEvent, "cli.rerun_failed").
					Msg("re-parse after change failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return closedErr(ctx)
			}
			a.logger.Error().
				Err(err).
				Str(xglog.FieldEvent, "cli.watcher_error").
				Msg("input watcher error")
		}
	}
}

// closedErr tells a shutdown from a watcher that went away on its own.
func closedErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.New("input watcher closed unexpectedly")
}
