package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// days builds stamps for the given offsets (in days) back from anchor, so
// days(anchor, 0, 1, 2) is anchor, yesterday and the day before.
func days(anchor string, offsets ...int) []string {
	t, err := time.Parse("2006-01-02", anchor)
	if err != nil {
		panic(err)
	}
	out := make([]string, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, t.AddDate(0, 0, -off).Format("2006-01-02"))
	}
	return out
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, "2025-03-10")
	assert.Equal(t, Streak{}, s)

	s = Compute([]string{}, "2025-03-10")
	assert.Equal(t, Streak{}, s)
}

func TestComputeSingleDayToday(t *testing.T) {
	s := Compute([]string{"2025-03-10"}, "2025-03-10")
	assert.Equal(t, Streak{Current: 1, Longest: 1}, s)
}

func TestComputeRunEndingToday(t *testing.T) {
	s := Compute(days("2025-03-10", 0, 1, 2, 3), "2025-03-10")
	assert.Equal(t, Streak{Current: 4, Longest: 4}, s)
}

func TestComputeGraceDay(t *testing.T) {
	// No login today yet; a run ending yesterday still counts as current.
	s := Compute(days("2025-03-10", 1, 2, 3), "2025-03-10")
	assert.Equal(t, 3, s.Current)
}

func TestComputeBrokenByFullMissedDay(t *testing.T) {
	// Last login two days ago: the streak is over.
	s := Compute(days("2025-03-10", 2, 3, 4), "2025-03-10")
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 3, s.Longest)
}

func TestComputeLongestFromHistoricalRun(t *testing.T) {
	dates := days("2025-03-10", 0, 1) // current run of 2
	dates = append(dates, days("2025-03-10", 10, 11, 12, 13, 14)...)
	s := Compute(dates, "2025-03-10")
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, 5, s.Longest)
}

func TestComputeUnorderedWithDuplicates(t *testing.T) {
	dates := []string{"2025-03-08", "2025-03-10", "2025-03-09", "2025-03-10", "2025-03-08"}
	s := Compute(dates, "2025-03-10")
	assert.Equal(t, Streak{Current: 3, Longest: 3}, s)
}

func TestComputeIgnoresMalformedStamps(t *testing.T) {
	dates := []string{"2025-03-10", "not-a-date", "2025/03/09", ""}
	s := Compute(dates, "2025-03-10")
	assert.Equal(t, Streak{Current: 1, Longest: 1}, s)
}

func TestComputeLongestNeverBelowCurrent(t *testing.T) {
	for _, n := range []int{1, 2, 7, 30} {
		offsets := make([]int, n)
		for i := range offsets {
			offsets[i] = i
		}
		s := Compute(days("2025-03-10", offsets...), "2025-03-10")
		require.GreaterOrEqual(t, s.Longest, s.Current, "n=%d", n)
		assert.Equal(t, n, s.Current)
	}
}

// Appending today's stamp to any date set never decreases either counter.
func TestComputeAppendingTodayNeverDecreases(t *testing.T) {
	today := "2025-03-10"
	cases := [][]string{
		nil,
		days(today, 0, 1, 2),
		days(today, 1, 2, 3),         // grace-day run
		days(today, 2, 3, 4),         // broken streak
		days(today, 10, 11, 12, 13),  // historical run only
		{"2025-03-08", "2025-02-01"}, // scattered
	}
	for _, dates := range cases {
		before := Compute(dates, today)

		withToday := append(append([]string{}, dates...), today)
		after := Compute(withToday, today)

		require.GreaterOrEqual(t, after.Current, before.Current, "dates=%v", dates)
		require.GreaterOrEqual(t, after.Longest, before.Longest, "dates=%v", dates)
		assert.GreaterOrEqual(t, after.Current, 1, "dates=%v", dates)
	}
}

func TestDayStampUsesCommunityZone(t *testing.T) {
	// 23:30 UTC on the 9th is already the 10th at UTC+5:30.
	utc := time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", DayStamp(utc))

	// 18:00 UTC on the 9th is still the 9th.
	utc = time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-09", DayStamp(utc))
}
