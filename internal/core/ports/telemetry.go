package ports

import (
	"context"
	"io"

	"go.trai.ch/stint/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records active intervals as vertices.
type Telemetry interface {
	// Record starts a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Render writes the intervals recorded since the last Render.
	Render(w io.Writer) error
	// Close flushes the recording session.
	Close() error
}

// Vertex represents one recorded active interval.
type Vertex interface {
	// Log records a message associated with the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished.
	Complete(err error)
}
