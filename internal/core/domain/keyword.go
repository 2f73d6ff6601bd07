package domain

import "time"

type KeywordStatus string

const (
	KeywordTracking KeywordStatus = "tracking"
	KeywordPaused   KeywordStatus = "paused"
)

// Keyword is a search term whose ranking is tracked.
type Keyword struct {
	ID           string        `json:"id" yaml:"id"`
	Term         string        `json:"term" yaml:"term"`
	SearchVolume int           `json:"search_volume" yaml:"search_volume"`
	Difficulty   int           `json:"difficulty" yaml:"difficulty"`
	Rank         int           `json:"rank" yaml:"rank"`
	PreviousRank int           `json:"previous_rank" yaml:"previous_rank"`
	URL          string        `json:"url,omitempty" yaml:"url"`
	Status       KeywordStatus `json:"status" yaml:"status"`
	TrackedSince time.Time     `json:"tracked_since" yaml:"tracked_since"`
}

// RankChange is positive when the keyword moved up. Unranked (0) positions
// report no change.
func (k *Keyword) RankChange() int {
	if k.Rank == 0 || k.PreviousRank == 0 {
		return 0
	}
	return k.PreviousRank - k.Rank
}
