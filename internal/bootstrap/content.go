package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Ascendant_Go/internal/catalog"
	"github.com/osse101/Ascendant_Go/internal/config"
)

// LoadCatalog reads cfg.CatalogPath, or the embedded catalog when it is unset
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	var (
		cat    *catalog.Catalog
		err    error
		source = cfg.CatalogPath
	)
	if source == "" {
		source = CatalogSourceDefault
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(cfg.CatalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded,
		"source", source,
		"version", cat.Version,
		"main_quests", len(cat.MainQuests),
		"side_quests", len(cat.SideQuests),
		"missions", len(cat.Missions))
	return cat, nil
}

// LoadRules reads the TOML rules file; a missing file yields the built-in rules
func LoadRules(cfg *config.Config) (config.Rules, error) {
	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		return config.Rules{}, fmt.Errorf("%s: %w", ErrMsgFailedRules, err)
	}

	slog.Info(LogMsgRulesLoaded, "path", cfg.RulesPath, "reduced_journal", rules.ReducedJournal)
	return rules, nil
}
