package progression

import (
	"math"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/utils"
)

var ceilingExp = curveAt(CurveCeilingLevel)

func curveAt(level int) int64 {
	return int64(math.Floor(BaseExpToNext*math.Pow(LevelGrowth, float64(level-1)) + 1e-9))
}

// ExpToNextLevel returns floor(100 * 1.2^(level-1)). Levels below 1 are treated as 1.
func ExpToNextLevel(level int) int64 {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	if level <= CurveCeilingLevel {
		return curveAt(level)
	}
	return ceilingExp + int64(level-CurveCeilingLevel)
}

// RankFromLevel maps a level onto the nine-tier ladder
func RankFromLevel(level int) domain.Rank {
	for i, threshold := range rankThresholds {
		if level < threshold {
			return domain.Ranks[i]
		}
	}
	return domain.RankSSS
}

// RankExpBonus returns the multiplicative EXP bonus for rank. Unknown ranks get 1.0.
func RankExpBonus(rank domain.Rank) float64 {
	if b, ok := rankBonus[rank]; ok {
		return b
	}
	return 1.0
}

// BaseExpForDifficulty returns the reward snapshotted at creation
func BaseExpForDifficulty(d domain.Difficulty) int64 {
	return baseExp[d.Normalize()]
}

// GoldForDifficulty returns the gold a quest or mission grants
func GoldForDifficulty(d domain.Difficulty) int64 {
	return baseGold[d.Normalize()]
}

// SubTaskReward sizes a child task from its parent's reward, minimum 1
func SubTaskReward(parentReward int64) int64 {
	r := utils.FloorScale(parentReward, SubTaskRewardFraction)
	if r < 1 {
		return 1
	}
	return r
}

// MissedReward is the deadline self-penalty reward; no other modifier applies
func MissedReward(expReward int64) int64 {
	return utils.FloorScale(expReward, MissedRewardFraction)
}

// ModifiedReward applies the penalty modifier and rank bonus multiplicatively
func ModifiedReward(expReward int64, penaltyModifier float64, rank domain.Rank) int64 {
	return utils.FloorScale(expReward, penaltyModifier*RankExpBonus(rank))
}
