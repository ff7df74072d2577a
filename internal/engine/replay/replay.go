// Package replay drives sessions through their timelines on a manual clock.
package replay

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/stint/internal/adapters/clock" //nolint:depguard // Replays own their clock
	"go.trai.ch/stint/internal/core/domain"
	"go.trai.ch/stint/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Engine replays sessions.
type Engine struct {
	clock         ports.Clock
	fingerprinter ports.Fingerprinter
	telemetry     ports.Telemetry
	logger        ports.Logger
}

// NewEngine creates a new Engine. The clock only picks the wall-clock epoch of each
// replay; elapsed time inside a session comes from the timeline.
func NewEngine(
	clk ports.Clock,
	fingerprinter ports.Fingerprinter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Engine {
	return &Engine{
		clock:         clk,
		fingerprinter: fingerprinter,
		telemetry:     telemetry,
		logger:        logger,
	}
}

// ReplayAll replays sessions concurrently, at most parallelism at a time.
// Each session owns its board and clock. Reports are returned in input order.
func (e *Engine) ReplayAll(ctx context.Context, sessions []*domain.Session, parallelism int) ([]domain.Report, error) {
	reports := make([]domain.Report, len(sessions))

	g, groupCtx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, session := range sessions {
		g.Go(func() error {
			rep, err := e.Replay(groupCtx, session)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to replay session"), "session", session.Name)
			}
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Replay applies every event of the session to a fresh board and summarises the result.
func (e *Engine) Replay(ctx context.Context, session *domain.Session) (domain.Report, error) {
	if err := session.Validate(); err != nil {
		return domain.Report{}, err
	}

	epoch := e.clock.Now()
	timeline := clock.NewManual(epoch)
	board := domain.NewBoard(timeline)
	if err := session.Populate(board); err != nil {
		return domain.Report{}, err
	}

	run := &sessionRun{
		engine:   e,
		session:  session,
		board:    board,
		open:     make(map[domain.TaskPath]ports.Vertex),
		attempts: make(map[domain.TaskPath]int),
	}
	defer run.closeOpen()

	var last time.Duration
	for _, ev := range session.Events {
		if err := ctx.Err(); err != nil {
			return domain.Report{}, zerr.Wrap(err, "replay interrupted")
		}

		timeline.Set(epoch.Add(ev.At))
		last = ev.At

		if err := run.apply(ctx, ev); err != nil {
			return domain.Report{}, err
		}
	}

	e.logger.Info(fmt.Sprintf("replayed session %s: %d events over %s", session.Name, len(session.Events), last))

	return domain.Report{
		RunID:       uuid.NewString(),
		Session:     session.Name,
		Fingerprint: e.fingerprinter.Fingerprint(session),
		Events:      len(session.Events),
		Started:     epoch,
		Ended:       epoch.Add(last),
		Tasks:       board.Summaries(),
	}, nil
}

// sessionRun tracks telemetry vertices for the intervals open during one replay.
type sessionRun struct {
	engine   *Engine
	session  *domain.Session
	board    *domain.Board
	open     map[domain.TaskPath]ports.Vertex
	attempts map[domain.TaskPath]int
}

func (r *sessionRun) apply(ctx context.Context, ev domain.Event) error {
	task, err := r.board.Get(ev.Task)
	if err != nil {
		return zerr.With(err, "at", ev.At.String())
	}

	r.engine.logger.Debug(fmt.Sprintf("%s +%s %s %s", r.session.Name, ev.At, ev.Action, ev.Task))

	before := task.TimeTaken()
	ev.Action.Apply(task, ev.Text)

	switch {
	case ev.Action == domain.ActionStart:
		if v, ok := r.open[ev.Task]; ok {
			msg := "restarted at +" + ev.At.String() + ", interval discarded"
			r.engine.logger.Warn(fmt.Sprintf("%s/%s %s", r.session.Name, ev.Task, msg))
			v.Log(domain.LogLevelWarn, msg)
			v.Complete(nil)
		}
		r.attempts[ev.Task]++
		name := fmt.Sprintf("%s/%s#%d", r.session.Name, ev.Task, r.attempts[ev.Task])
		_, v := r.engine.telemetry.Record(ctx, name)
		v.Log(domain.LogLevelInfo, "started at +"+ev.At.String())
		r.open[ev.Task] = v

	case ev.Action.Flushes():
		v, ok := r.open[ev.Task]
		if !ok {
			return nil
		}
		v.Log(domain.LogLevelInfo, fmt.Sprintf("%s at +%s, counted %s", ev.Action, ev.At, task.TimeTaken()-before))
		v.Complete(nil)
		delete(r.open, ev.Task)
	}
	return nil
}

// closeOpen completes vertices for intervals still open when the session ends.
func (r *sessionRun) closeOpen() {
	for path := range r.board.Walk() {
		v, ok := r.open[path]
		if !ok {
			continue
		}
		r.engine.logger.Warn(fmt.Sprintf("%s/%s still open at end of session", r.session.Name, path))
		v.Log(domain.LogLevelWarn, "still open at end of session")
		v.Complete(nil)
		delete(r.open, path)
	}
}

// RenderIntervals writes the intervals recorded since the last call.
func (e *Engine) RenderIntervals(w io.Writer) error {
	return e.telemetry.Render(w)
}

// Close releases the telemetry backend.
func (e *Engine) Close() error {
	if err := e.telemetry.Close(); err != nil {
		return zerr.Wrap(err, "failed to close telemetry")
	}
	return nil
}
