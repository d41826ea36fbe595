package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:50;default:member" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	Profile      *Profile  `gorm:"constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Profile struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Bio       *string   `gorm:"type:text" json:"bio,omitempty"`
	PhotoURL  *string   `gorm:"type:text" json:"photo_url,omitempty"`
	City      *string   `gorm:"size:100" json:"city,omitempty"`
	State     *string   `gorm:"size:100" json:"state,omitempty"`
	GitHub    *string   `gorm:"size:255" json:"github,omitempty"`
	LinkedIn  *string   `gorm:"size:255" json:"linkedin,omitempty"`
	Instagram *string   `gorm:"size:255" json:"instagram,omitempty"`

	// Gamification cache, owned by the recalculation job. It is recomputable
	// from raw facts at any time and never treated as source of truth.
	Points        int            `gorm:"default:0" json:"points"`
	Achievements  pq.StringArray `gorm:"type:text[]" json:"achievements"`
	LastBadgeScan *time.Time     `json:"last_badge_scan,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
