package points

import (
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	badgeService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/service"
	streakService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/streak/service"
)

// Weights is the canonical point weight table. It replaces the per-script
// weight constants that used to drift apart; there is exactly one table and it
// is injected, never mutated.
type Weights struct {
	SocialBadge       int
	StandardBadge     int
	Follower          int
	ProjectCreate     int
	ProjectStar       int
	StreakDay         int
	WeeklyStreakBonus int
}

func DefaultWeights() Weights {
	return Weights{
		SocialBadge:       50,
		StandardBadge:     20,
		Follower:          10,
		ProjectCreate:     50,
		ProjectStar:       50,
		StreakDay:         1,
		WeeklyStreakBonus: 50,
	}
}

// PointsService maps a facts snapshot plus the evaluated achievement set to a
// total score with its breakdown. Pure and total: no I/O, no failure modes.
type PointsService interface {
	ComputeScore(facts model.UserFacts, achievements []string) model.ComputedScore
}

type pointsService struct {
	weights Weights
}

func NewPointsService(weights Weights) PointsService {
	return &pointsService{weights: weights}
}

func (s *pointsService) ComputeScore(facts model.UserFacts, achievements []string) model.ComputedScore {
	var b model.ScoreBreakdown

	for _, id := range achievements {
		if _, social := badgeService.SocialBadges[id]; social {
			b.BadgePoints += s.weights.SocialBadge
		} else {
			b.BadgePoints += s.weights.StandardBadge
		}
	}

	if facts.Followers > 0 {
		b.FollowerPoints = facts.Followers * s.weights.Follower
	}

	b.ProjectPoints = len(facts.Projects) * s.weights.ProjectCreate
	for _, p := range facts.Projects {
		if p.StarCount > 0 {
			b.ProjectPoints += p.StarCount * s.weights.ProjectStar
		}
	}

	current := streakService.Compute(facts.LoginDates, facts.Today).Current
	b.StreakPoints = current*s.weights.StreakDay + (current/7)*s.weights.WeeklyStreakBonus

	return model.ComputedScore{
		TotalPoints:  b.BadgePoints + b.FollowerPoints + b.ProjectPoints + b.StreakPoints,
		Breakdown:    b,
		Achievements: achievements,
	}
}
