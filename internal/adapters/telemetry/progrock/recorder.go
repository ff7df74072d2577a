// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/stint/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock recorder.
// Every active interval becomes one vertex, and every vertex is kept in a Journal.
type Recorder struct {
	journal *Journal
	rec     *progrock.Recorder
}

// New creates a new Recorder that only keeps the in-memory journal.
func New() *Recorder {
	return NewRecorder(nil)
}

// NewRecorder creates a new Recorder that also forwards updates to w. w may be nil.
func NewRecorder(w progrock.Writer) *Recorder {
	journal := NewJournal(w)
	return &Recorder{
		journal: journal,
		rec:     progrock.NewRecorder(journal),
	}
}

// Record starts recording a new vertex named after the interval.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Render writes the intervals recorded since the last Render.
func (r *Recorder) Render(w io.Writer) error {
	return r.journal.Render(w)
}

// Close closes the forwarded writer.
func (r *Recorder) Close() error {
	return r.journal.Close()
}
