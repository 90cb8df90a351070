package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crew/internal/adapters/logger"
	"go.trai.ch/crew/internal/core/ports"
)

const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
