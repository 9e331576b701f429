package domain

import "time"

// NotificationType values double as event bus types.
//
// Types follow the pattern <entity>.<action> (e.g., "curse.applied")
type NotificationType string

const (
	NotificationLevelUp              NotificationType = "level.up"
	NotificationLevelDown            NotificationType = "level.down"
	NotificationRankUp               NotificationType = "rank.up"
	NotificationExpAwarded           NotificationType = "exp.awarded"
	NotificationItemCompleted        NotificationType = "item.completed"
	NotificationItemMissed           NotificationType = "item.missed"
	NotificationCurseApplied         NotificationType = "curse.applied"
	NotificationCurseLifted          NotificationType = "curse.lifted"
	NotificationShadowFatigueApplied NotificationType = "shadow_fatigue.applied"
	NotificationShadowFatigueCleared NotificationType = "shadow_fatigue.cleared"
	NotificationSideQuestsLocked     NotificationType = "side_quests.locked"
	NotificationSideQuestsUnlocked   NotificationType = "side_quests.unlocked"
	NotificationQuotaRejected        NotificationType = "quota.rejected"
	NotificationRedemptionStarted    NotificationType = "redemption.started"
	NotificationRedemptionSucceeded  NotificationType = "redemption.succeeded"
	NotificationRedemptionFailed     NotificationType = "redemption.failed"
	NotificationRedemptionAbandoned  NotificationType = "redemption.abandoned"
	NotificationDailyWin             NotificationType = "daily_win"
	NotificationStreakUpdated        NotificationType = "streak.updated"
	NotificationWeeklyReset          NotificationType = "weekly_reset"
)

// AllNotificationTypes lists every type so subscribers can register for all of them
var AllNotificationTypes = []NotificationType{
	NotificationLevelUp,
	NotificationLevelDown,
	NotificationRankUp,
	NotificationExpAwarded,
	NotificationItemCompleted,
	NotificationItemMissed,
	NotificationCurseApplied,
	NotificationCurseLifted,
	NotificationShadowFatigueApplied,
	NotificationShadowFatigueCleared,
	NotificationSideQuestsLocked,
	NotificationSideQuestsUnlocked,
	NotificationQuotaRejected,
	NotificationRedemptionStarted,
	NotificationRedemptionSucceeded,
	NotificationRedemptionFailed,
	NotificationRedemptionAbandoned,
	NotificationDailyWin,
	NotificationStreakUpdated,
	NotificationWeeklyReset,
}

// Notification is an observational message; it never gates control flow.
type Notification struct {
	Type     NotificationType `json:"type"`
	Message  string           `json:"message"`
	ItemKind ItemKind         `json:"item_kind,omitempty"`
	ItemID   string           `json:"item_id,omitempty"`
	Amount   int64            `json:"amount,omitempty"`
	Level    int              `json:"level,omitempty"`
	Rank     Rank             `json:"rank,omitempty"`
	Category Category         `json:"category,omitempty"`
	Until    *time.Time       `json:"until,omitempty"`
	At       time.Time        `json:"at"`
}
