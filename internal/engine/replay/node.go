package replay

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stint/internal/adapters/clock"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stint/internal/adapters/fingerprint"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stint/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stint/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stint/internal/core/ports"
)

// NodeID is the unique identifier for the replay engine Graft node.
const NodeID graft.ID = "engine.replay"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			clock.NodeID,
			fingerprint.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			clk, err := graft.Dep[ports.Clock](ctx)
			if err != nil {
				return nil, err
			}

			fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewEngine(clk, fingerprinter, telemetry, log), nil
		},
	})
}
