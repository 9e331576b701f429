package domain

import "time"

// CreateTaskInput describes a new standalone task
type CreateTaskInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Category    Category   `json:"category" validate:"required,category"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=easy medium normal hard boss"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// CreateQuestInput describes a new quest. ExpReward and GoldReward override the
// difficulty table when positive.
type CreateQuestInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Category    Category   `json:"category" validate:"required,category"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=easy medium normal hard boss"`
	ExpReward   int64      `json:"exp_reward,omitempty" validate:"min=0"`
	GoldReward  int64      `json:"gold_reward,omitempty" validate:"min=0"`
	IsMainQuest bool       `json:"is_main_quest"`
	IsDaily     bool       `json:"is_daily"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Tasks       []string   `json:"tasks,omitempty" validate:"dive,required,max=200"`
	TemplateID  string     `json:"-"`
	Recovery    bool       `json:"-"`
}

// CreateMissionInput describes a new mission
type CreateMissionInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Category    Category   `json:"category" validate:"required,category"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=easy medium normal hard boss"`
	ExpReward   int64      `json:"exp_reward,omitempty" validate:"min=0"`
	Rank        Rank       `json:"rank" validate:"required,oneof=F E D C B A S SS SSS"`
	Day         int        `json:"day" validate:"min=1"`
	Count       int        `json:"count" validate:"min=1,max=50"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	TemplateID  string     `json:"-"`
}
