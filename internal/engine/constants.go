package engine

import "time"

// Operation names, used as metric labels and log attributes
const (
	OpLoad                = "load"
	OpReconcile           = "reconcile"
	OpStatus              = "status"
	OpCreateTask          = "create_task"
	OpCreateQuest         = "create_quest"
	OpCreateMission       = "create_mission"
	OpStartQuest          = "start_quest"
	OpStartMission        = "start_mission"
	OpCompleteTask        = "complete_task"
	OpCompleteQuest       = "complete_quest"
	OpCompleteMission     = "complete_mission"
	OpAddSubTask          = "add_sub_task"
	OpCompleteSubTask     = "complete_sub_task"
	OpCompleteMissionStep = "complete_mission_step"
	OpDeleteItem          = "delete_item"
	OpList                = "list"
	OpStartRedemption     = "start_redemption"
	OpAbandonRedemption   = "abandon_redemption"
	OpAttemptRedemption   = "attempt_redemption"
	OpDailyJournal        = "daily_journal"
	OpWeeklyJournal       = "weekly_journal"
)

// Persistence operations
const (
	PersistSaveItem    = "save_item"
	PersistDeleteItem  = "delete_item"
	PersistSaveProfile = "save_profile"
)

const (
	// PersistQueueSize bounds the write-behind backlog
	PersistQueueSize = 256

	// PersistTimeout bounds a single store call
	PersistTimeout = 10 * time.Second

	// JournalCacheSize is the number of journal reports kept
	JournalCacheSize = 64

	// JournalCacheTTL expires cached reports even when the state is unchanged
	JournalCacheTTL = 10 * time.Minute
)

// Notification messages
const (
	MsgItemCompleted     = "Completed %s %q"
	MsgItemCompletedLate = "Completed %s %q after its deadline"
	MsgItemMissed        = "Missed the deadline for %s %q"
	MsgExpAwarded        = "+%d EXP"
	MsgQuotaRejected     = "Quota: %s"
)

// Log messages
const (
	LogMsgStateLoaded        = "Engine state loaded"
	LogMsgLoadFailed         = "Failed to load state, starting from defaults"
	LogMsgCommitted          = "State committed"
	LogMsgPersistFailed      = "Persistence write failed, keeping in-memory state"
	LogMsgPersistDisabled    = "Persistence queue stopped, write skipped"
	LogMsgPersistDropped     = "Persistence queue full, write dropped"
	LogMsgPublishFailed      = "Failed to publish notification"
	LogMsgReconciled         = "Reconciled"
	LogMsgQuotaRejected      = "Rejected by quota"
	LogMsgShutdown           = "Engine shutting down"
	LogMsgShutdownComplete   = "Engine shutdown complete"
	LogMsgPersistQueueDrain  = "Draining persistence queue"
	LogMsgJournalCacheHit    = "Journal cache hit"
	LogMsgRedemptionResolved = "Redemption resolved"
)
