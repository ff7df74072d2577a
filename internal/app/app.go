// Package app implements the application layer for stint.
package app

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"go.trai.ch/stint/internal/adapters/report" //nolint:depguard // Reporter is chosen per invocation
	"go.trai.ch/stint/internal/core/domain"
	"go.trai.ch/stint/internal/core/ports"
	"go.trai.ch/stint/internal/engine/replay"
	"go.trai.ch/zerr"
)

// ReplayOptions configures a replay run.
type ReplayOptions struct {
	// Format selects the report renderer ("text" or "json").
	Format string
	// Color enables styled text output.
	Color bool
	// Parallelism bounds how many sessions replay at once. Zero means one per CPU.
	Parallelism int
	// Intervals receives the recorded active intervals after the report, when set.
	Intervals io.Writer
}

// App represents the main application logic.
type App struct {
	loader ports.SessionLoader
	engine *replay.Engine
	logger ports.Logger
}

// New creates a new App instance.
func New(loader ports.SessionLoader, engine *replay.Engine, logger ports.Logger) *App {
	return &App{
		loader: loader,
		engine: engine,
		logger: logger,
	}
}

// Replay loads every session file, replays them and writes the report to w.
func (a *App) Replay(ctx context.Context, paths []string, w io.Writer, opts ReplayOptions) error {
	if len(paths) == 0 {
		return domain.ErrNoSessionsSpecified
	}

	reporter, err := report.New(opts.Format, opts.Color)
	if err != nil {
		return err
	}

	sessions := make([]*domain.Session, 0, len(paths))
	for _, path := range paths {
		session, err := a.loader.Load(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to load session"), "path", path)
		}
		a.logger.Debug(fmt.Sprintf("loaded session %s from %s", session.Name, path))
		sessions = append(sessions, session)
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	reports, err := a.engine.ReplayAll(ctx, sessions, parallelism)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrReplayFailed, err)
	}

	if err := reporter.Report(w, reports); err != nil {
		return err
	}

	if opts.Intervals == nil {
		return nil
	}
	return a.engine.RenderIntervals(opts.Intervals)
}

// SetVerbose toggles debug logging when the logger supports it.
func (a *App) SetVerbose(verbose bool) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(verbose)
	}
}

// Close shuts down the replay engine.
func (a *App) Close() error {
	return a.engine.Close()
}
