package domain

// QuestTemplate is a predefined quest or redemption challenge
type QuestTemplate struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Category    Category   `json:"category" validate:"required,category"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=easy medium normal hard boss"`
	ExpReward   int64      `json:"exp_reward,omitempty" validate:"min=0"`
	IsMainQuest bool       `json:"is_main_quest"`
	Tasks       []string   `json:"tasks,omitempty" validate:"dive,required"`
}

// MissionTemplate is a predefined mission keyed by rank and day
type MissionTemplate struct {
	ID          string     `json:"id" validate:"required"`
	Rank        Rank       `json:"rank" validate:"required,oneof=F E D C B A S SS SSS"`
	Day         int        `json:"day" validate:"min=1"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Category    Category   `json:"category" validate:"required,category"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=easy medium normal hard boss"`
	Count       int        `json:"count" validate:"min=1"`
	ExpReward   int64      `json:"exp_reward,omitempty" validate:"min=0"`
}
