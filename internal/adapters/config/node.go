package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stint/internal/adapters/logger"
	"go.trai.ch/stint/internal/core/ports"
)

// NodeID is the unique identifier for the session loader Graft node.
const NodeID graft.ID = "adapter.session_loader"

func init() {
	graft.Register(graft.Node[ports.SessionLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SessionLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
