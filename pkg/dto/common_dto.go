package dto

// LevelInfo is the shared representation of a resolved level, embedded in
// profile and leaderboard responses.
type LevelInfo struct {
	Name            string  `json:"name"`
	RangeMin        int     `json:"range_min"`
	RangeMax        *int    `json:"range_max,omitempty"` // nil for the unbounded top tier
	ProgressPercent float64 `json:"progress_percent"`    // 0-100
}

// ScoreSummary is the gamification block of a profile response.
type ScoreSummary struct {
	TotalPoints   int       `json:"total_points"`
	Achievements  []string  `json:"achievements"`
	Level         LevelInfo `json:"level"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
}
