package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crew/internal/adapters/hostrunner" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crew/internal/adapters/modfile"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crew/internal/core/domain"
	"go.trai.ch/crew/internal/core/ports"
)

// NodeID is the unique identifier for the loader Graft node.
const NodeID graft.ID = "engine.loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hostrunner.NodeID,
			modfile.NodeID,
		},
		Run: func(ctx context.Context) (*Loader, error) {
			host, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}
			repo, err := graft.Dep[ports.GroupRepository](ctx)
			if err != nil {
				return nil, err
			}
			return New(host, domain.SharedPolicy(), repo), nil
		},
	})
}
