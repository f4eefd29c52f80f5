package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/idgov/internal/adapters/config"
	"go.trai.ch/idgov/internal/adapters/logger"
	"go.trai.ch/idgov/internal/adapters/metrics"
	"go.trai.ch/idgov/internal/adapters/watcher"
	"go.trai.ch/idgov/internal/core/ports"
)

// Components bundles the constructed application with the adapters the
// commands need direct access to.
type Components struct {
	App     *App
	Logger  ports.Logger
	Config  ports.ConfigLoader
	Metrics ports.Metrics
	Watcher ports.Watcher
}

// NodeID is the unique identifier for the application composition Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			metrics.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:     New(loader, log, m, w),
				Logger:  log,
				Config:  loader,
				Metrics: m,
				Watcher: w,
			}, nil
		},
	})
}
