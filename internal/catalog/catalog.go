// Package catalog serves the static content: predefined quests, missions keyed
// by rank and day, and the redemption challenges.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Ascendant_Go/internal/domain"
	"github.com/osse101/Ascendant_Go/internal/validation"
)

//go:embed data/catalog.json
var defaultCatalog []byte

//go:embed data/catalog.schema.json
var catalogSchema []byte

var schema = sync.OnceValues(func() (validation.SchemaValidator, error) {
	return validation.NewSchemaValidator("catalog.schema.json", catalogSchema)
})

// Catalog is the validated, read-only content set
type Catalog struct {
	Version              string                   `json:"version" validate:"required"`
	RedemptionBatchSize  int                      `json:"redemption_batch_size" validate:"min=1"`
	MainQuests           []domain.QuestTemplate   `json:"main_quests" validate:"dive"`
	SideQuests           []domain.QuestTemplate   `json:"side_quests" validate:"dive"`
	Missions             []domain.MissionTemplate `json:"missions" validate:"dive"`
	RedemptionChallenges []domain.QuestTemplate   `json:"redemption_challenges" validate:"min=1,dive"`

	quests map[string]domain.QuestTemplate
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).Valid()
	})
	return v
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads and validates a catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse checks catalog JSON against the embedded schema, then decodes and
// validates it
func Parse(data []byte) (*Catalog, error) {
	sv, err := schema()
	if err != nil {
		return nil, err
	}
	if err := sv.ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("%w: catalog: %v", domain.ErrInvalidInput, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := newValidator().Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: catalog: %v", domain.ErrInvalidInput, err)
	}
	if c.RedemptionBatchSize > len(c.RedemptionChallenges) {
		return nil, fmt.Errorf("%w: catalog: batch size %d exceeds %d challenges",
			domain.ErrInvalidInput, c.RedemptionBatchSize, len(c.RedemptionChallenges))
	}

	for i := range c.MainQuests {
		c.MainQuests[i].IsMainQuest = true
	}
	for i := range c.SideQuests {
		c.SideQuests[i].IsMainQuest = false
	}

	c.quests = make(map[string]domain.QuestTemplate, len(c.MainQuests)+len(c.SideQuests))
	for _, group := range [][]domain.QuestTemplate{c.MainQuests, c.SideQuests} {
		for _, q := range group {
			if _, dup := c.quests[q.ID]; dup {
				return nil, fmt.Errorf("%w: catalog: duplicate quest id %s", domain.ErrInvalidInput, q.ID)
			}
			c.quests[q.ID] = q
		}
	}

	sort.SliceStable(c.Missions, func(i, j int) bool {
		if c.Missions[i].Rank != c.Missions[j].Rank {
			return c.Missions[i].Rank.Tier() < c.Missions[j].Rank.Tier()
		}
		return c.Missions[i].Day < c.Missions[j].Day
	})
	return &c, nil
}

// QuestTemplate returns a predefined main or side quest by id
func (c *Catalog) QuestTemplate(id string) (domain.QuestTemplate, error) {
	q, ok := c.quests[id]
	if !ok {
		return domain.QuestTemplate{}, fmt.Errorf("%w: quest %s", domain.ErrTemplateNotFound, id)
	}
	return q, nil
}

// MissionsFor lists the missions defined for rank in day order
func (c *Catalog) MissionsFor(rank domain.Rank) []domain.MissionTemplate {
	var out []domain.MissionTemplate
	for _, m := range c.Missions {
		if m.Rank == rank {
			out = append(out, m)
		}
	}
	return out
}

// MissionFor returns the mission for rank and day. Days cycle through the
// rank's schedule, and a rank with no schedule borrows the nearest lower one.
func (c *Catalog) MissionFor(rank domain.Rank, day int) (domain.MissionTemplate, error) {
	if day < 1 {
		return domain.MissionTemplate{}, fmt.Errorf("%w: day must be at least 1", domain.ErrInvalidInput)
	}
	for tier := rank.Tier(); tier >= 0; tier-- {
		schedule := c.MissionsFor(domain.Ranks[tier])
		if len(schedule) == 0 {
			continue
		}
		want := (day-1)%schedule[len(schedule)-1].Day + 1
		for _, m := range schedule {
			if m.Day == want {
				return m, nil
			}
		}
		return schedule[0], nil
	}
	return domain.MissionTemplate{}, fmt.Errorf("%w: mission for rank %s day %d", domain.ErrTemplateNotFound, rank, day)
}

// RedemptionBatch returns the fixed set of challenges a redemption starts with
func (c *Catalog) RedemptionBatch() []domain.QuestTemplate {
	out := make([]domain.QuestTemplate, c.RedemptionBatchSize)
	copy(out, c.RedemptionChallenges[:c.RedemptionBatchSize])
	return out
}
