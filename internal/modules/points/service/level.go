package points

import (
	"math"

	commonDto "github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/dto"
)

// Level is one named tier of the ladder. Max < 0 marks the unbounded top tier.
type Level struct {
	Name string
	Min  int
	Max  int
}

// levelTable is ordered ascending with contiguous, non-overlapping ranges
// covering every score from 0 upward.
var levelTable = []Level{
	{Name: "Newcomer", Min: 0, Max: 99},
	{Name: "Explorer", Min: 100, Max: 249},
	{Name: "Contributor", Min: 250, Max: 499},
	{Name: "Builder", Min: 500, Max: 999},
	{Name: "Collaborator", Min: 1000, Max: 1999},
	{Name: "Mentor", Min: 2000, Max: 3499},
	{Name: "Influencer", Min: 3500, Max: 5499},
	{Name: "Expert", Min: 5500, Max: 7999},
	{Name: "Champion", Min: 8000, Max: 11999},
	{Name: "Luminary", Min: 12000, Max: 19999},
	{Name: "Legend", Min: 20000, Max: -1},
}

// ResolveLevel finds the tier containing totalPoints and its progress within
// the tier scaled to 0-100. The top tier always reports 100. Scores below zero
// never occur, but the scan falls back to the top tier rather than failing.
func ResolveLevel(totalPoints int) commonDto.LevelInfo {
	for _, lvl := range levelTable {
		if lvl.Max < 0 {
			if totalPoints >= lvl.Min {
				return commonDto.LevelInfo{
					Name:            lvl.Name,
					RangeMin:        lvl.Min,
					ProgressPercent: 100,
				}
			}
			continue
		}
		if totalPoints >= lvl.Min && totalPoints <= lvl.Max {
			width := lvl.Max - lvl.Min
			progress := 100.0
			if width > 0 {
				progress = float64(totalPoints-lvl.Min) / float64(width) * 100
			}
			progress = math.Round(progress*100) / 100
			rangeMax := lvl.Max
			return commonDto.LevelInfo{
				Name:            lvl.Name,
				RangeMin:        lvl.Min,
				RangeMax:        &rangeMax,
				ProgressPercent: progress,
			}
		}
	}

	top := levelTable[len(levelTable)-1]
	return commonDto.LevelInfo{Name: top.Name, RangeMin: top.Min, ProgressPercent: 100}
}
