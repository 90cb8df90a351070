package modfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crew/internal/adapters/logger"
	"go.trai.ch/crew/internal/adapters/shell"
	"go.trai.ch/crew/internal/core/ports"
)

// DefaultDir is the modules directory used when no override is given.
const DefaultDir = "tasks"

const NodeID graft.ID = "adapter.group_repository"

func init() {
	graft.Register(graft.Node[ports.GroupRepository]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.GroupRepository, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			sh, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewRepository(DefaultDir, log, sh), nil
		},
	})
}
