package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anybuild/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/anybuild/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/anybuild/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/anybuild/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ProbeNodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			probe, err := graft.Dep[ports.Probe](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(probe, executor, log), nil
		},
	})
}
