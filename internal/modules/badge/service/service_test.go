package badge

import (
	"testing"
	"time"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	"github.com/stretchr/testify/assert"
)

func evaluate(t *testing.T, facts model.UserFacts, previous []string) []string {
	t.Helper()
	return NewBadgeService().Evaluate(facts, previous)
}

func TestEvaluateEmptyFacts(t *testing.T) {
	got := evaluate(t, model.UserFacts{}, nil)
	assert.Empty(t, got)
}

func TestEvaluateProfilePerfect(t *testing.T) {
	facts := model.UserFacts{Name: "Asha", Bio: "hi", PhotoURL: "https://cdn/x.webp", Role: "member"}
	got := evaluate(t, facts, nil)
	assert.Contains(t, got, ProfilePerfect)
	assert.Contains(t, got, FaceOfCommunity)

	// any one field missing and it is not granted
	facts.Bio = ""
	got = evaluate(t, facts, nil)
	assert.NotContains(t, got, ProfilePerfect)
}

func TestEvaluateSocialBadges(t *testing.T) {
	facts := model.UserFacts{GitHub: "https://github.com/asha"}
	got := evaluate(t, facts, nil)
	assert.Contains(t, got, SocialGitHub)
	assert.NotContains(t, got, ConnectorSocial)

	facts.LinkedIn = "https://linkedin.com/in/asha"
	facts.Instagram = "https://instagram.com/asha"
	got = evaluate(t, facts, nil)
	assert.Contains(t, got, SocialGitHub)
	assert.Contains(t, got, SocialLinkedIn)
	assert.Contains(t, got, SocialInstagram)
	assert.Contains(t, got, ConnectorSocial)
}

func TestEvaluateStoryteller(t *testing.T) {
	got := evaluate(t, model.UserFacts{Bio: "exactly twenty chars"}, nil) // len 20, not enough
	assert.NotContains(t, got, Storyteller)

	got = evaluate(t, model.UserFacts{Bio: "this bio is definitely long enough"}, nil)
	assert.Contains(t, got, Storyteller)
}

func TestEvaluateLocalHero(t *testing.T) {
	assert.Contains(t, evaluate(t, model.UserFacts{City: "Pune"}, nil), LocalHero)
	assert.Contains(t, evaluate(t, model.UserFacts{State: "Kerala"}, nil), LocalHero)
	assert.NotContains(t, evaluate(t, model.UserFacts{}, nil), LocalHero)
}

func TestEvaluateBuilderTiersAreCumulative(t *testing.T) {
	projects := func(n int) []model.ProjectFacts {
		return make([]model.ProjectFacts, n)
	}

	got := evaluate(t, model.UserFacts{Projects: projects(1)}, nil)
	assert.Contains(t, got, Builder1)
	assert.NotContains(t, got, Builder3)

	got = evaluate(t, model.UserFacts{Projects: projects(5)}, nil)
	assert.Subset(t, got, []string{Builder1, Builder3, Builder5})
	assert.NotContains(t, got, Builder10)

	got = evaluate(t, model.UserFacts{Projects: projects(12)}, nil)
	assert.Subset(t, got, []string{Builder1, Builder3, Builder5, Builder10})
}

func TestEvaluateStreak7UsesCurrentStreak(t *testing.T) {
	anchor := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	stamp := func(daysAgo int) string {
		return anchor.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}
	today := stamp(0)

	var dates []string
	for i := 0; i < 7; i++ {
		dates = append(dates, stamp(i))
	}
	got := evaluate(t, model.UserFacts{LoginDates: dates, Today: today}, nil)
	assert.Contains(t, got, Streak7)

	// a 7-day run broken before today does not qualify, even though the
	// longest streak is still 7
	var old []string
	for i := 5; i < 12; i++ {
		old = append(old, stamp(i))
	}
	got = evaluate(t, model.UserFacts{LoginDates: old, Today: today}, nil)
	assert.NotContains(t, got, Streak7)
}

func TestEvaluateEarlyAdopterCarriedForwardOnly(t *testing.T) {
	// never granted from facts alone
	got := evaluate(t, model.UserFacts{Name: "Asha"}, nil)
	assert.NotContains(t, got, EarlyAdopter)

	// survives any rescan once present
	got = evaluate(t, model.UserFacts{}, []string{EarlyAdopter})
	assert.Contains(t, got, EarlyAdopter)

	// other previous badges are not carried; they must re-qualify
	got = evaluate(t, model.UserFacts{}, []string{Storyteller, Builder10})
	assert.NotContains(t, got, Storyteller)
	assert.NotContains(t, got, Builder10)
}

func TestEvaluateReturnsSortedUniqueIDs(t *testing.T) {
	facts := model.UserFacts{
		Name:     "Asha",
		Bio:      "a long enough bio to count as a story",
		PhotoURL: "https://cdn/x.webp",
		Role:     "member",
		City:     "Pune",
		GitHub:   "https://github.com/asha",
		Projects: []model.ProjectFacts{{}},
	}
	got := evaluate(t, facts, []string{EarlyAdopter})
	assert.IsIncreasing(t, got)
	seen := map[string]int{}
	for _, id := range got {
		seen[id]++
		assert.Equal(t, 1, seen[id], "duplicate badge %s", id)
	}
}
