package streak

import (
	"sort"
	"time"
)

// dayLayout is the calendar-day stamp format used everywhere login activity
// is recorded or compared.
const dayLayout = "2006-01-02"

// communityZone fixes the day boundary at UTC+5:30 so streaks are independent
// of wherever a user happens to log in from.
var communityZone = time.FixedZone("UTC+5:30", 5*3600+1800)

// Streak holds the derived consecutive-day counters.
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// DayStamp formats t as a calendar-day stamp in the community zone.
func DayStamp(t time.Time) string {
	return t.In(communityZone).Format(dayLayout)
}

// Today returns the current day stamp in the community zone.
func Today() string {
	return DayStamp(time.Now())
}

// Compute derives the current and longest consecutive-day streaks from a set
// of login-day stamps. Stamps may arrive in any order and may contain
// duplicates; malformed stamps are ignored. The current streak walks backward
// from today; if today has no login yet, a run ending yesterday still counts
// (the streak is not broken until a full day passes with no login).
func Compute(loginDates []string, today string) Streak {
	days := make(map[string]struct{}, len(loginDates))
	for _, d := range loginDates {
		if _, err := time.ParseInLocation(dayLayout, d, communityZone); err != nil {
			continue
		}
		days[d] = struct{}{}
	}
	if len(days) == 0 {
		return Streak{}
	}

	var s Streak

	anchor, err := time.ParseInLocation(dayLayout, today, communityZone)
	if err == nil {
		if _, ok := days[today]; !ok {
			// grace day: fall back to a run ending yesterday
			anchor = anchor.AddDate(0, 0, -1)
		}
		for {
			if _, ok := days[anchor.Format(dayLayout)]; !ok {
				break
			}
			s.Current++
			anchor = anchor.AddDate(0, 0, -1)
		}
	}

	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		t, _ := time.ParseInLocation(dayLayout, d, communityZone)
		sorted = append(sorted, t)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	run := 1
	s.Longest = 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > s.Longest {
			s.Longest = run
		}
	}

	return s
}
