package hostrunner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crew/internal/adapters/logger"
	"go.trai.ch/crew/internal/adapters/telemetry"
	"go.trai.ch/crew/internal/core/ports"
)

const NodeID graft.ID = "adapter.host"

func init() {
	graft.Register(graft.Node[ports.Host]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.Host, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, tracer), nil
		},
	})
}
