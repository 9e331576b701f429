package domain

// Rank is the coarse nine-tier ladder derived from level
type Rank string

const (
	RankF   Rank = "F"
	RankE   Rank = "E"
	RankD   Rank = "D"
	RankC   Rank = "C"
	RankB   Rank = "B"
	RankA   Rank = "A"
	RankS   Rank = "S"
	RankSS  Rank = "SS"
	RankSSS Rank = "SSS"
)

// Ranks lists every rank in ascending order
var Ranks = []Rank{RankF, RankE, RankD, RankC, RankB, RankA, RankS, RankSS, RankSSS}

// Tier returns the zero-based position of r in Ranks, or -1
func (r Rank) Tier() int {
	for i, v := range Ranks {
		if v == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is a known rank
func (r Rank) Valid() bool {
	return r.Tier() >= 0
}
