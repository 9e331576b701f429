package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, c.MainQuests)
	assert.NotEmpty(t, c.SideQuests)
	for _, r := range domain.Ranks {
		assert.NotEmpty(t, c.MissionsFor(r), "rank %s", r)
	}

	batch := c.RedemptionBatch()
	assert.Len(t, batch, c.RedemptionBatchSize)
	batch[0].Title = "mutated"
	assert.NotEqual(t, "mutated", c.RedemptionChallenges[0].Title, "batch is a copy")
}

func TestQuestTemplate(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	q, err := c.QuestTemplate("mq-deep-work")
	require.NoError(t, err)
	assert.True(t, q.IsMainQuest)
	assert.Len(t, q.Tasks, 3)

	side, err := c.QuestTemplate("sq-read")
	require.NoError(t, err)
	assert.False(t, side.IsMainQuest)

	_, err = c.QuestTemplate("nope")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestMissionFor(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	m, err := c.MissionFor(domain.RankF, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.RankF, m.Rank)
	assert.Equal(t, 2, m.Day)

	cycled, err := c.MissionFor(domain.RankF, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, cycled.Day, "days cycle through the schedule")

	_, err = c.MissionFor(domain.RankF, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = c.MissionFor("Z", 1)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestMissionForBorrowsLowerRank(t *testing.T) {
	c, err := Parse([]byte(`{
		"version": "test",
		"redemption_batch_size": 1,
		"missions": [{"id": "m1", "rank": "F", "day": 1, "title": "t", "category": "physical", "difficulty": "easy", "count": 2}],
		"redemption_challenges": [{"id": "r1", "title": "r", "category": "mental", "difficulty": "easy"}]
	}`))
	require.NoError(t, err)

	m, err := c.MissionFor(domain.RankA, 1)
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{`},
		{"missing version", `{"redemption_batch_size": 1, "redemption_challenges": [{"id": "r", "title": "r", "category": "mental", "difficulty": "easy"}]}`},
		{"no challenges", `{"version": "1", "redemption_batch_size": 1, "redemption_challenges": []}`},
		{"bad category", `{"version": "1", "redemption_batch_size": 1, "redemption_challenges": [{"id": "r", "title": "r", "category": "chores", "difficulty": "easy"}]}`},
		{"bad difficulty", `{"version": "1", "redemption_batch_size": 1, "redemption_challenges": [{"id": "r", "title": "r", "category": "mental", "difficulty": "epic"}]}`},
		{"batch too large", `{"version": "1", "redemption_batch_size": 2, "redemption_challenges": [{"id": "r", "title": "r", "category": "mental", "difficulty": "easy"}]}`},
		{"unknown field", `{"version": "1", "redemption_batch_size": 1, "bonus": true, "redemption_challenges": [{"id": "r", "title": "r", "category": "mental", "difficulty": "easy"}]}`},
		{"negative step count", `{"version": "1", "redemption_batch_size": 1,
			"missions": [{"id": "m", "rank": "F", "day": 1, "title": "t", "category": "physical", "difficulty": "easy", "count": 0}],
			"redemption_challenges": [{"id": "r", "title": "r", "category": "mental", "difficulty": "easy"}]}`},
		{"duplicate ids", `{"version": "1", "redemption_batch_size": 1,
			"main_quests": [{"id": "q", "title": "a", "category": "mental", "difficulty": "easy"}],
			"side_quests": [{"id": "q", "title": "b", "category": "mental", "difficulty": "easy"}],
			"redemption_challenges": [{"id": "r", "title": "r", "category": "mental", "difficulty": "easy"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, defaultCatalog, 0600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Version)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseReportsSchemaLocation(t *testing.T) {
	_, err := Parse([]byte(`{"version": "1", "redemption_batch_size": 1,
		"redemption_challenges": [{"id": "r", "title": "r", "category": "mental", "difficulty": "easy", "reward": 5}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/redemption_challenges/0")
}
