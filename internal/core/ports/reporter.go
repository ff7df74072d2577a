package ports

import (
	"io"

	"go.trai.ch/stint/internal/core/domain"
)

// Reporter renders replay reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Report(w io.Writer, reports []domain.Report) error
}
