package cmd

import (
	"context"
	"fmt"

	"datacache/core/config"
	"datacache/core/database"
	"datacache/core/logger"
	"datacache/core/persistence"

	"go.uber.org/zap"
)

// app bundles what every command needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *persistence.Store
}

// bootstrap loads configuration and the logger. When withDB is set it also connects
// to the database; a failed connection is fatal only if requireDB is set.
func bootstrap(ctx context.Context, withDB, requireDB bool) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, logger: l, store: persistence.NewStore(nil, l, cfg.Database.BatchSize)}
	if !withDB {
		return a, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		if requireDB {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		l.Warn("Optional database connection failed", zap.Error(err))
		return a, nil
	}
	l.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	a.store = persistence.NewStore(db, l, cfg.Database.BatchSize)
	if cfg.Database.AutoMigrate {
		if err := a.store.Migrate(ctx); err != nil {
			return nil, err
		}
	}
	return a, nil
}
