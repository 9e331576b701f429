package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Ascendant_Go/internal/bootstrap"
	"github.com/osse101/Ascendant_Go/internal/config"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
	waitPingTimeout   = 5 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the configured storage to accept connections (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for storage...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	for i := 0; i < waitMaxRetries; i++ {
		err = pingStorage(cfg)
		if err == nil {
			PrintSuccess("Storage (%s) is ready", cfg.StorageDriver)
			return nil
		}
		fmt.Printf("Storage not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("storage failed to become ready after %d attempts", waitMaxRetries)
}

func pingStorage(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), waitPingTimeout)
	defer cancel()

	backend, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()
	return backend.Ping(ctx)
}
