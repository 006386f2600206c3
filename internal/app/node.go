package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/itzMRZ/usisportal/internal/adapters/cachefile" //nolint:depguard // Wired in app layer
	"github.com/itzMRZ/usisportal/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/itzMRZ/usisportal/internal/adapters/feed"      //nolint:depguard // Wired in app layer
	"github.com/itzMRZ/usisportal/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cachefile.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			catalogLoader, err := graft.Dep[ports.CatalogLoader](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			// The feed client needs the catalog's URL and data dir, which
			// are only known after the config file is read, so the source
			// is built lazily from the loaded catalog.
			newSource := func(catalog *domain.Catalog) ports.CourseSource {
				return feed.NewClient(catalog.FeedURL, catalog.DataDir)
			}

			return New(catalogLoader, cache, log, newSource), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
