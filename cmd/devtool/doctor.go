package main

import (
	"fmt"

	"github.com/osse101/Ascendant_Go/internal/bootstrap"
	"github.com/osse101/Ascendant_Go/internal/config"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose configuration, content files and storage"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	cfg, err := config.Load()
	if err != nil {
		PrintError("Configuration invalid: %v", err)
		return fmt.Errorf("doctor found issues")
	}
	PrintSuccess("Configuration OK (env=%s, storage=%s, tz=%s)", cfg.Environment, cfg.StorageDriver, cfg.Timezone)
	for _, w := range cfg.Warnings() {
		PrintWarning("%s", w)
	}

	hasError := false

	if cat, err := bootstrap.LoadCatalog(cfg); err != nil {
		PrintError("Catalog: %v", err)
		hasError = true
	} else {
		PrintSuccess("Catalog %s OK (%d main, %d side, %d missions)", cat.Version, len(cat.MainQuests), len(cat.SideQuests), len(cat.Missions))
	}

	if _, err := bootstrap.LoadRules(cfg); err != nil {
		PrintError("Rules: %v", err)
		hasError = true
	} else {
		PrintSuccess("Rules OK (%s)", cfg.RulesPath)
	}

	if err := pingStorage(cfg); err != nil {
		PrintError("Storage: %v", err)
		hasError = true
	} else {
		PrintSuccess("Storage OK")
	}

	if cfg.DiscordEnabled() {
		PrintInfo("Discord notifications enabled")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
