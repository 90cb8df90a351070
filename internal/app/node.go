package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crew/internal/adapters/hostrunner" //nolint:depguard // Wired in app layer
	"go.trai.ch/crew/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/crew/internal/adapters/shell"      //nolint:depguard // Wired in app layer
	"go.trai.ch/crew/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/crew/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hostrunner.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			shell.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			host, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			sh, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return New(host, log, tracer, sh), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(application, log), nil
		},
	})
}
