package ports

import "go.trai.ch/stint/internal/core/domain"

// Clock is the time source injected into tasks.
type Clock = domain.Clock
