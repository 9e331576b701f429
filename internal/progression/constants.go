package progression

import "github.com/osse101/Ascendant_Go/internal/domain"

// Curve constants
const (
	// BaseExpToNext is the EXP required to leave level 1
	BaseExpToNext = 100.0

	// LevelGrowth is the per-level multiplier: next(L) = BaseExpToNext * LevelGrowth^(L-1)
	LevelGrowth = 1.2

	// CurveCeilingLevel is the last level computed from the exponential; past it the
	// requirement grows by one per level so the curve stays strictly increasing in int64
	CurveCeilingLevel = 200

	// MaxLevel bounds level arithmetic
	MaxLevel = 1_000_000

	// StatBarSize is the EXP that levels one attribute
	StatBarSize = 100

	// SubTaskRewardFraction sizes sub-task rewards relative to the parent quest
	SubTaskRewardFraction = 0.1

	// MissedRewardFraction is the deadline self-penalty rate
	MissedRewardFraction = 0.5
)

// rankThresholds[i] is the first level of Ranks[i+1]
var rankThresholds = []int{30, 60, 90, 120, 150, 180, 270, 360}

var rankBonus = map[domain.Rank]float64{
	domain.RankF:   1.00,
	domain.RankE:   1.05,
	domain.RankD:   1.10,
	domain.RankC:   1.15,
	domain.RankB:   1.20,
	domain.RankA:   1.25,
	domain.RankS:   1.35,
	domain.RankSS:  1.45,
	domain.RankSSS: 1.60,
}

var baseExp = map[domain.Difficulty]int64{
	domain.DifficultyEasy:   5,
	domain.DifficultyMedium: 10,
	domain.DifficultyHard:   20,
	domain.DifficultyBoss:   50,
}

var baseGold = map[domain.Difficulty]int64{
	domain.DifficultyEasy:   1,
	domain.DifficultyMedium: 2,
	domain.DifficultyHard:   5,
	domain.DifficultyBoss:   10,
}

// Notification messages
const (
	MsgLevelUp      = "Level up! You reached level %d"
	MsgLevelDown    = "Redemption failed: dropped to level %d"
	MsgRankUp       = "Rank up! You are now rank %s"
	MsgDailyWin     = "First %s completion today"
	MsgStreak       = "Streak: %d day(s)"
	MsgStreakBroken = "Streak restarted"
)
