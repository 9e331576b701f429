package main

import (
	"context"
	"fmt"

	"github.com/osse101/Ascendant_Go/internal/bootstrap"
	"github.com/osse101/Ascendant_Go/internal/config"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply pending migrations to the configured storage, or create a new one"
}

func (c *MigrateCommand) ArgsUsage() string {
	return "up | create <postgres|sqlite> <name>"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, create")
	}

	switch args[0] {
	case "up":
		return migrateUp()
	case "create":
		if len(args) < 3 {
			return fmt.Errorf("usage: migrate create <postgres|sqlite> <name>")
		}
		dialect := args[1]
		if dialect != config.StoragePostgres && dialect != config.StorageSQLite {
			return fmt.Errorf("unknown dialect %q", dialect)
		}
		// Files are created where the embedded migrations live
		dir := "internal/database/migrations/" + dialect
		return runCommandVerbose("go", "run", "github.com/pressly/goose/v3/cmd/goose", "-dir", dir, "create", args[2], "sql")
	default:
		return fmt.Errorf("unknown subcommand %q: use up or create", args[0])
	}
}

// migrateUp opens the configured backend, which applies the embedded migrations
func migrateUp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	PrintHeader(fmt.Sprintf("Migrating %s storage", cfg.StorageDriver))

	if cfg.StorageDriver == config.StorageMemory {
		PrintWarning("Memory storage has no schema; nothing to migrate")
		return nil
	}

	backend, err := bootstrap.OpenStorage(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	PrintSuccess("Migrations applied")
	return nil
}
