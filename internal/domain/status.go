package domain

import "time"

// QuotaLimits is the per-rank daily cap table row
type QuotaLimits struct {
	MainQuestsPerDay  int `json:"main_quests_per_day" toml:"main_quests_per_day"`
	SideQuestsPerDay  int `json:"side_quests_per_day" toml:"side_quests_per_day"`
	DailyQuestsPerDay int `json:"daily_quests_per_day" toml:"daily_quests_per_day"`
	MissionsPerDay    int `json:"missions_per_day" toml:"missions_per_day"`
}

// QuotaUsage counts what has been used against QuotaLimits today
type QuotaUsage struct {
	MainQuests  int `json:"main_quests"`
	SideQuests  int `json:"side_quests"`
	DailyQuests int `json:"daily_quests"`
	Missions    int `json:"missions"`
}

// Status is the read model shown to the user after reconciliation
type Status struct {
	Version             uint64          `json:"version"`
	User                User            `json:"user"`
	ExpModifier         float64         `json:"exp_modifier"`
	RankBonus           float64         `json:"rank_bonus"`
	Punishment          PunishmentState `json:"punishment"`
	QuotaLimits         QuotaLimits     `json:"quota_limits"`
	QuotaUsage          QuotaUsage      `json:"quota_usage"`
	RedemptionAvailable bool            `json:"redemption_available"`
	SideQuestsLocked    bool            `json:"side_quests_locked"`
	At                  time.Time       `json:"at"`
}

// Outcome summarizes a completion for the caller
type Outcome struct {
	ItemKind      ItemKind       `json:"item_kind"`
	ItemID        string         `json:"item_id"`
	ExpAwarded    int64          `json:"exp_awarded"`
	GoldAwarded   int64          `json:"gold_awarded"`
	Missed        bool           `json:"missed"`
	LevelBefore   int            `json:"level_before"`
	LevelAfter    int            `json:"level_after"`
	Rank          Rank           `json:"rank"`
	Notifications []Notification `json:"notifications,omitempty"`
}
