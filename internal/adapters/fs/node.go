package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anybuild/internal/core/ports"
)

// ProbeNodeID is the unique identifier for the probe Graft node.
const ProbeNodeID graft.ID = "adapter.fs.probe"

func init() {
	graft.Register(graft.Node[ports.Probe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Probe, error) {
			return NewProbe("."), nil
		},
	})
}
