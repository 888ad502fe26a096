package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anybuild/internal/core/ports"
)

// NodeID is the unique identifier for the rule loader Graft node.
const NodeID graft.ID = "adapter.rule_loader"

func init() {
	graft.Register(graft.Node[ports.RuleLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RuleLoader, error) {
			return NewLoader(), nil
		},
	})
}
