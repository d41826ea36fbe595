package model

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is a denormalized projection of profile + score fields used
// for ranking display. It is written only by the recalculation job and is never
// read back into the facts it was derived from.
type LeaderboardEntry struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	PhotoURL   *string   `gorm:"type:text" json:"photo_url,omitempty"`
	Role       string    `gorm:"size:50" json:"role"`
	Points     int       `gorm:"default:0;index:idx_leaderboard_points,sort:desc" json:"points"`
	LastActive time.Time `json:"last_active"`
}
