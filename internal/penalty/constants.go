package penalty

import "time"

// EXP modifiers
const (
	ModifierCursed   = 0.5
	ModifierFatigued = 0.75
	ModifierClear    = 1.0
)

const (
	// MainQuestMissLimit consecutive main-quest misses lock side quests
	MainQuestMissLimit = 3

	// SideQuestLockDuration is how long side quests stay locked
	SideQuestLockDuration = 7 * 24 * time.Hour
)

// Notification messages
const (
	MsgCurseApplied         = "Cursed! All chances are spent; EXP is halved until the week ends"
	MsgCurseLifted          = "The curse has lifted; shadow fatigue lingers until the week ends"
	MsgFatigueApplied       = "Shadow fatigue: EXP reduced to 75%% until the week ends (%d/%d chances used)"
	MsgFatigueCleared       = "Shadow fatigue has faded"
	MsgSideQuestsLocked     = "Three main quests missed in a row: side quests are locked for 7 days"
	MsgSideQuestsUnlocked   = "Side quests are unlocked"
	MsgWeeklyReset          = "A new week begins: chances restored"
	MsgRedemptionStarted    = "Redemption started: finish %d recovery quests before midnight"
	MsgRedemptionSucceeded  = "Redemption succeeded: the curse is lifted"
	MsgRedemptionFailed     = "Redemption failed: the curse remains"
	MsgRedemptionFailedHard = "Redemption failed: dropped to level %d"
	MsgRedemptionAbandoned  = "Redemption abandoned: the curse remains"
)
