package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	RepoURL     *string   `gorm:"size:255" json:"repo_url,omitempty"`
	StarCount   int       `gorm:"default:0" json:"star_count"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ProjectStar records one distinct stargazer per project. Project.StarCount is
// kept in sync by the project repository inside the same transaction.
type ProjectStar struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_project_stargazer,priority:1;not null" json:"project_id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_project_stargazer,priority:2;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
