package badge

import (
	"sort"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	streakService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/streak/service"
)

// BadgeService derives the set of achievement ids a user qualifies for from
// current facts. All rules are independent and evaluated against facts as they
// are now; only early-adopter is carried forward from the previous scan.
type BadgeService interface {
	Evaluate(facts model.UserFacts, previousBadges []string) []string
}

type badgeService struct{}

func NewBadgeService() BadgeService {
	return &badgeService{}
}

func (s *badgeService) Evaluate(facts model.UserFacts, previousBadges []string) []string {
	earned := make(map[string]struct{})

	// early-adopter is never newly granted here; it survives if it was ever set
	for _, b := range previousBadges {
		if b == EarlyAdopter {
			earned[EarlyAdopter] = struct{}{}
		}
	}

	if facts.Name != "" && facts.Bio != "" && facts.PhotoURL != "" && facts.Role != "" {
		earned[ProfilePerfect] = struct{}{}
	}

	if facts.GitHub != "" {
		earned[SocialGitHub] = struct{}{}
	}
	if facts.LinkedIn != "" {
		earned[SocialLinkedIn] = struct{}{}
	}
	if facts.Instagram != "" {
		earned[SocialInstagram] = struct{}{}
	}
	if facts.GitHub != "" && facts.LinkedIn != "" && facts.Instagram != "" {
		earned[ConnectorSocial] = struct{}{}
	}

	if len(facts.Bio) > 20 {
		earned[Storyteller] = struct{}{}
	}
	if facts.PhotoURL != "" {
		earned[FaceOfCommunity] = struct{}{}
	}
	if facts.City != "" || facts.State != "" {
		earned[LocalHero] = struct{}{}
	}

	// builder tiers are cumulative, not mutually exclusive
	projectCount := len(facts.Projects)
	if projectCount >= 1 {
		earned[Builder1] = struct{}{}
	}
	if projectCount >= 3 {
		earned[Builder3] = struct{}{}
	}
	if projectCount >= 5 {
		earned[Builder5] = struct{}{}
	}
	if projectCount >= 10 {
		earned[Builder10] = struct{}{}
	}

	if streakService.Compute(facts.LoginDates, facts.Today).Current >= 7 {
		earned[Streak7] = struct{}{}
	}

	ids := make([]string, 0, len(earned))
	for id := range earned {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
