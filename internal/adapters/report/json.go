package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/stint/internal/core/domain"
	"go.trai.ch/stint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reporter = (*JSON)(nil)

// JSON renders reports as an indented JSON array.
type JSON struct{}

// NewJSON creates a JSON reporter.
func NewJSON() *JSON {
	return &JSON{}
}

// Report encodes the reports to w.
func (j *JSON) Report(w io.Writer, reports []domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return zerr.Wrap(err, "failed to encode report")
	}
	return nil
}
