package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Ascendant_Go/internal/config"
)

type CreateDBCommand struct{}

func (c *CreateDBCommand) Name() string {
	return "create-db"
}

func (c *CreateDBCommand) Description() string {
	return "Create the PostgreSQL database named by DB_NAME if it is missing, then migrate it"
}

func (c *CreateDBCommand) Run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.StoragePostgres {
		PrintWarning("STORAGE_DRIVER is %s; create-db only applies to postgres", cfg.StorageDriver)
		return nil
	}

	PrintHeader(fmt.Sprintf("Creating database %s", cfg.DBName))
	ctx := context.Background()

	// Connect to the maintenance database to create the target
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		PrintInfo("Database %s already exists", cfg.DBName)
	} else {
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		PrintSuccess("Database %s created", cfg.DBName)
	}

	return migrateUp()
}
