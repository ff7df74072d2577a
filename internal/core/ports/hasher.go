package ports

import "go.trai.ch/stint/internal/core/domain"

// Fingerprinter defines the interface for computing stable session fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a hex digest of the session definition.
	Fingerprint(session *domain.Session) string
}
