package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginStamp marks one calendar day (UTC+5:30 boundary) on which the user was
// active. Day is a "2006-01-02" stamp; uniqueness makes recording idempotent.
type LoginStamp struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_day,priority:1;not null" json:"user_id"`
	Day       string    `gorm:"size:10;uniqueIndex:idx_user_day,priority:2;not null" json:"day"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Follower struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follow_pair,priority:1;not null" json:"user_id"`
	FollowerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follow_pair,priority:2;not null" json:"follower_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
