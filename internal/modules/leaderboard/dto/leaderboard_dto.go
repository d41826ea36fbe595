package dto

import commonDto "github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/dto"

// LeaderboardEntry is one ranked row. Position is 1-based.
type LeaderboardEntry struct {
	Position int                `json:"position"`
	UserID   string             `json:"user_id"`
	Name     string             `json:"name"`
	PhotoURL *string            `json:"photo_url,omitempty"`
	Role     string             `json:"role"`
	Points   int                `json:"points"`
	Level    commonDto.LevelInfo `json:"level"`
}
