package model

// UserFacts is the normalized input of the scoring pipeline: everything the
// badge evaluator and points model are allowed to see about a user. Facts are
// read-only snapshots assembled by the recalculation repository; the pipeline
// itself performs no I/O.
type UserFacts struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
	Role      string `json:"role"`
	City      string `json:"city"`
	State     string `json:"state"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`

	Followers  int            `json:"followers"`
	Projects   []ProjectFacts `json:"projects"`
	LoginDates []string       `json:"login_dates"` // unique "2006-01-02" stamps, unordered

	// Today is the current day stamp (UTC+5:30) captured when the snapshot was
	// assembled, so streak derivation stays a pure function of the facts.
	Today string `json:"today"`

	// Carry-forward state: the badge set and points persisted by the previous
	// scan. PreviousBadges feeds the stateful early-adopter rule; PreviousPoints
	// only feeds the run report delta.
	PreviousBadges []string `json:"previous_badges"`
	PreviousPoints int      `json:"previous_points"`
}

type ProjectFacts struct {
	StarCount int `json:"star_count"`
}

// ScoreBreakdown itemizes the four point sources. The invariant
// TotalPoints == BadgePoints+FollowerPoints+ProjectPoints+StreakPoints holds
// for every ComputedScore produced by the points model.
type ScoreBreakdown struct {
	BadgePoints    int `json:"badge_points"`
	FollowerPoints int `json:"follower_points"`
	ProjectPoints  int `json:"project_points"`
	StreakPoints   int `json:"streak_points"`
}

type ComputedScore struct {
	TotalPoints  int            `json:"total_points"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Achievements []string       `json:"achievements"`
}
