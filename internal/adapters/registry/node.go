package registry

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.static_registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Registry, error) {
			return New(), nil
		},
	})
}
