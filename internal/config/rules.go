package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/journal"
	"github.com/osse101/Ascendant_Go/internal/quota"
)

// Rules are the tunable game rules read from a TOML file.
//
//	reduced_journal = true
//
//	[journal]
//	daily_quests = 4
//
//	[quota.S]
//	main_quests_per_day = 6
//
// Fields left out keep their built-in values.
type Rules struct {
	ReducedJournal bool
	Journal        journal.Requirements
	Quota          quota.Table
}

type rulesFile struct {
	ReducedJournal bool                          `toml:"reduced_journal"`
	Journal        journal.Requirements          `toml:"journal"`
	Quota          map[string]domain.QuotaLimits `toml:"quota"`
}

// DefaultRules returns the built-in rules
func DefaultRules() Rules {
	return Rules{
		Journal: journal.DefaultRequirements(),
		Quota:   quota.DefaultTable(),
	}
}

// EffectiveJournal returns the journal bars with reduced mode applied
func (r Rules) EffectiveJournal() journal.Requirements {
	if r.ReducedJournal {
		return r.Journal.Reduced()
	}
	return r.Journal
}

// LoadRules reads path; a missing file yields DefaultRules
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultRules(), nil
	}
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", ErrMsgReadRules, err)
	}
	return ParseRules(string(data))
}

// ParseRules decodes TOML rules over the defaults
func ParseRules(data string) (Rules, error) {
	defaults := DefaultRules()

	raw := rulesFile{Journal: defaults.Journal}
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", ErrMsgReadRules, err)
	}

	overrides := make(map[domain.Rank]domain.QuotaLimits, len(raw.Quota))
	for key, row := range raw.Quota {
		rank := domain.Rank(key)
		if !rank.Valid() {
			return Rules{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownRank, key)
		}
		// Keys absent from the row keep the default for that rank
		merged := defaults.Quota.Limits(rank)
		if md.IsDefined("quota", key, "main_quests_per_day") {
			merged.MainQuestsPerDay = row.MainQuestsPerDay
		}
		if md.IsDefined("quota", key, "side_quests_per_day") {
			merged.SideQuestsPerDay = row.SideQuestsPerDay
		}
		if md.IsDefined("quota", key, "daily_quests_per_day") {
			merged.DailyQuestsPerDay = row.DailyQuestsPerDay
		}
		if md.IsDefined("quota", key, "missions_per_day") {
			merged.MissionsPerDay = row.MissionsPerDay
		}
		overrides[rank] = merged
	}

	return Rules{
		ReducedJournal: raw.ReducedJournal,
		Journal:        raw.Journal,
		Quota:          defaults.Quota.Merge(overrides),
	}, nil
}
