package report

import (
	"strings"

	"go.trai.ch/stint/internal/core/domain"
	"go.trai.ch/stint/internal/core/ports"
	"go.trai.ch/zerr"
)

// Format names a report renderer.
type Format string

const (
	// FormatText renders the indented tree.
	FormatText Format = "text"
	// FormatJSON renders JSON.
	FormatJSON Format = "json"
)

// New returns the reporter for the named format.
func New(format string, color bool) (ports.Reporter, error) {
	switch Format(strings.ToLower(format)) {
	case FormatText, "":
		return NewTerminalText(color), nil
	case FormatJSON:
		return NewJSON(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownFormat, "format", format)
	}
}
