package domain

// StatProgress is one attribute's level and progress on its bar
type StatProgress struct {
	Level int   `json:"level"`
	Exp   int64 `json:"exp"`
}

// Stats holds the five attribute bars
type Stats struct {
	Physical  StatProgress `json:"physical"`
	Cognitive StatProgress `json:"cognitive"`
	Emotional StatProgress `json:"emotional"`
	Spiritual StatProgress `json:"spiritual"`
	Social    StatProgress `json:"social"`
}

// For returns a pointer to the bar for a, or nil for an unknown attribute
func (s *Stats) For(a Attribute) *StatProgress {
	switch a {
	case AttributePhysical:
		return &s.Physical
	case AttributeCognitive:
		return &s.Cognitive
	case AttributeEmotional:
		return &s.Emotional
	case AttributeSpiritual:
		return &s.Spiritual
	case AttributeSocial:
		return &s.Social
	}
	return nil
}

// DailyWins records which categories have had their first completion on Date
type DailyWins struct {
	Date       string     `json:"date"`
	Categories []Category `json:"categories"`
}

// Has reports whether c already won on date
func (d DailyWins) Has(date string, c Category) bool {
	if d.Date != date {
		return false
	}
	for _, v := range d.Categories {
		if v == c {
			return true
		}
	}
	return false
}

// User is the progression singleton.
// ExpToNextLevel and Rank are derived from Level and refreshed by every reducer.
type User struct {
	Level          int       `json:"level"`
	Exp            int64     `json:"exp"`
	ExpToNextLevel int64     `json:"exp_to_next_level"`
	Rank           Rank      `json:"rank"`
	Gold           int64     `json:"gold"`
	TotalExp       int64     `json:"total_exp"`
	Stats          Stats     `json:"stats"`
	DailyWins      DailyWins `json:"daily_wins"`
	StreakDays     int       `json:"streak_days"`
	LongestStreak  int       `json:"longest_streak"`
	LastActiveDate string    `json:"last_active_date,omitempty"`
}

// Clone returns a deep copy
func (u User) Clone() User {
	if u.DailyWins.Categories != nil {
		u.DailyWins.Categories = append([]Category(nil), u.DailyWins.Categories...)
	}
	return u
}
