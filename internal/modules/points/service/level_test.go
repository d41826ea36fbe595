package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLevelBoundaries(t *testing.T) {
	cases := []struct {
		points int
		name   string
	}{
		{0, "Newcomer"},
		{99, "Newcomer"},
		{100, "Explorer"},
		{249, "Explorer"},
		{250, "Contributor"},
		{500, "Builder"},
		{1000, "Collaborator"},
		{2000, "Mentor"},
		{3500, "Influencer"},
		{5500, "Expert"},
		{8000, "Champion"},
		{12000, "Luminary"},
		{19999, "Luminary"},
		{20000, "Legend"},
		{1_000_000, "Legend"},
	}
	for _, tc := range cases {
		got := ResolveLevel(tc.points)
		assert.Equal(t, tc.name, got.Name, "points=%d", tc.points)
	}
}

func TestResolveLevelProgress(t *testing.T) {
	got := ResolveLevel(0)
	assert.Equal(t, 0.0, got.ProgressPercent)

	got = ResolveLevel(99)
	assert.Equal(t, 100.0, got.ProgressPercent)

	// halfway through Explorer: (175-100)/(249-100) ≈ 50.34
	got = ResolveLevel(175)
	assert.InDelta(t, 50.34, got.ProgressPercent, 0.01)

	// the unbounded top tier always reports 100 with no upper bound
	got = ResolveLevel(50_000)
	require.Nil(t, got.RangeMax)
	assert.Equal(t, 100.0, got.ProgressPercent)
}

// Every non-negative score lands in exactly one tier, and progress stays
// within [0, 100].
func TestResolveLevelCoverage(t *testing.T) {
	prevName := ""
	transitions := 0
	for p := 0; p <= 25_000; p++ {
		got := ResolveLevel(p)
		require.NotEmpty(t, got.Name, "points=%d", p)
		require.GreaterOrEqual(t, got.ProgressPercent, 0.0, "points=%d", p)
		require.LessOrEqual(t, got.ProgressPercent, 100.0, "points=%d", p)
		require.LessOrEqual(t, got.RangeMin, p, "points=%d", p)
		if got.RangeMax != nil {
			require.GreaterOrEqual(t, *got.RangeMax, p, "points=%d", p)
		}
		if got.Name != prevName {
			transitions++
			prevName = got.Name
		}
	}
	assert.Equal(t, len(levelTable), transitions)
}
