package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

func TestExpToNextLevel(t *testing.T) {
	tests := []struct {
		level    int
		expected int64
	}{
		{0, 100},
		{1, 100},
		{2, 120},
		{3, 144},
		{4, 172},
		{5, 207},
		{10, 515},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExpToNextLevel(tt.level), "level %d", tt.level)
	}
}

func TestExpToNextLevelStrictlyIncreasing(t *testing.T) {
	prev := ExpToNextLevel(1)
	for level := 2; level <= CurveCeilingLevel+500; level++ {
		next := ExpToNextLevel(level)
		if !assert.Greater(t, next, prev, "level %d", level) {
			return
		}
		prev = next
	}
	assert.Greater(t, ExpToNextLevel(MaxLevel), ExpToNextLevel(MaxLevel-1))
}

func TestRankFromLevel(t *testing.T) {
	tests := []struct {
		level    int
		expected domain.Rank
	}{
		{1, domain.RankF},
		{29, domain.RankF},
		{30, domain.RankE},
		{59, domain.RankE},
		{60, domain.RankD},
		{90, domain.RankC},
		{120, domain.RankB},
		{150, domain.RankA},
		{180, domain.RankS},
		{269, domain.RankS},
		{270, domain.RankSS},
		{360, domain.RankSSS},
		{5000, domain.RankSSS},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RankFromLevel(tt.level), "level %d", tt.level)
	}
}

func TestRankFromLevelMonotonic(t *testing.T) {
	prev := RankFromLevel(1).Tier()
	for level := 2; level <= 500; level++ {
		tier := RankFromLevel(level).Tier()
		if !assert.GreaterOrEqual(t, tier, prev, "level %d", level) {
			return
		}
		prev = tier
	}
}

func TestRankExpBonusNonDecreasing(t *testing.T) {
	prev := 1.0
	for _, r := range domain.Ranks {
		b := RankExpBonus(r)
		assert.GreaterOrEqual(t, b, prev, "rank %s", r)
		prev = b
	}
	assert.Equal(t, 1.0, RankExpBonus(domain.RankF))
	assert.Equal(t, 1.0, RankExpBonus("bogus"))
}

func TestRewardTables(t *testing.T) {
	assert.Equal(t, int64(5), BaseExpForDifficulty(domain.DifficultyEasy))
	assert.Equal(t, int64(10), BaseExpForDifficulty(domain.DifficultyMedium))
	assert.Equal(t, int64(10), BaseExpForDifficulty(domain.DifficultyNormal))
	assert.Equal(t, int64(20), BaseExpForDifficulty(domain.DifficultyHard))
	assert.Equal(t, int64(50), BaseExpForDifficulty(domain.DifficultyBoss))

	assert.Equal(t, int64(10), GoldForDifficulty(domain.DifficultyBoss))
	assert.Equal(t, int64(2), GoldForDifficulty(domain.DifficultyNormal))

	assert.Equal(t, int64(1), SubTaskReward(5))
	assert.Equal(t, int64(5), SubTaskReward(50))

	assert.Equal(t, int64(5), MissedReward(10))
	assert.Equal(t, int64(2), MissedReward(5))
}

func TestModifiedReward(t *testing.T) {
	tests := []struct {
		name     string
		reward   int64
		modifier float64
		rank     domain.Rank
		expected int64
	}{
		{"clear at F", 10, 1.0, domain.RankF, 10},
		{"fatigued at F", 10, 0.75, domain.RankF, 7},
		{"cursed at F", 10, 0.5, domain.RankF, 5},
		{"clear at C", 20, 1.0, domain.RankC, 23},
		{"cursed at B", 20, 0.5, domain.RankB, 12},
		{"clear at SSS", 50, 1.0, domain.RankSSS, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ModifiedReward(tt.reward, tt.modifier, tt.rank))
		})
	}
}
