package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Ascendant_Go/internal/config"
	"github.com/osse101/Ascendant_Go/internal/database/memory"
	"github.com/osse101/Ascendant_Go/internal/database/postgres"
	"github.com/osse101/Ascendant_Go/internal/database/sqlite"
	"github.com/osse101/Ascendant_Go/internal/repository"
)

// OpenStorage opens the backend named by cfg.StorageDriver and applies its migrations.
// The caller closes the returned backend.
func OpenStorage(ctx context.Context, cfg *config.Config) (repository.Backend, error) {
	var (
		backend repository.Backend
		err     error
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		backend = memory.NewStore()
	case config.StorageSQLite:
		backend, err = sqlite.Open(ctx, cfg.SQLitePath)
	case config.StoragePostgres:
		backend, err = postgres.Open(ctx, postgres.Options{
			URL:         cfg.GetDBConnString(),
			MaxConns:    cfg.DBMaxConns,
			MaxIdleTime: cfg.DBMaxIdleTime,
			MaxLifetime: cfg.DBMaxLifetime,
		})
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", ErrMsgFailedOpenStorage, cfg.StorageDriver, err)
	}

	slog.Info(LogMsgStorageOpened, "driver", cfg.StorageDriver)
	return backend, nil
}
