package ports

import "go.trai.ch/stint/internal/core/domain"

// SessionLoader defines the interface for loading replay sessions.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SessionLoader interface {
	// Load reads the session file at path.
	Load(path string) (*domain.Session, error)
}
