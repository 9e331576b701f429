package domain

import "time"

// ChanceLimit is the number of weekly misses that exhausts the chances and curses the user
const ChanceLimit = 5

// PunishmentState is the penalty singleton.
// WeekStart is the Monday the counters belong to and drives the weekly reset.
type PunishmentState struct {
	ChanceCounter          int        `json:"chance_counter"`
	IsCursed               bool       `json:"is_cursed"`
	CursedUntil            *time.Time `json:"cursed_until,omitempty"`
	HasShadowFatigue       bool       `json:"has_shadow_fatigue"`
	ShadowFatigueUntil     *time.Time `json:"shadow_fatigue_until,omitempty"`
	LockedSideQuestsUntil  *time.Time `json:"locked_side_quests_until,omitempty"`
	MissedMainQuestStreak  int        `json:"missed_main_quest_streak"`
	LastRedemptionDate     *time.Time `json:"last_redemption_date,omitempty"`
	HasPendingRecovery     bool       `json:"has_pending_recovery"`
	ActiveRecoveryQuestIDs []string   `json:"active_recovery_quest_ids"`
	WeekStart              *time.Time `json:"week_start,omitempty"`
}

// SideQuestsLocked reports whether the side-quest lock is active at now
func (p PunishmentState) SideQuestsLocked(now time.Time) bool {
	return p.LockedSideQuestsUntil != nil && now.Before(*p.LockedSideQuestsUntil)
}

// Clone returns a deep copy
func (p PunishmentState) Clone() PunishmentState {
	p.CursedUntil = cloneTime(p.CursedUntil)
	p.ShadowFatigueUntil = cloneTime(p.ShadowFatigueUntil)
	p.LockedSideQuestsUntil = cloneTime(p.LockedSideQuestsUntil)
	p.LastRedemptionDate = cloneTime(p.LastRedemptionDate)
	p.WeekStart = cloneTime(p.WeekStart)
	if p.ActiveRecoveryQuestIDs != nil {
		p.ActiveRecoveryQuestIDs = append([]string(nil), p.ActiveRecoveryQuestIDs...)
	}
	return p
}
