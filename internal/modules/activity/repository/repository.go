package repository

import (
	"context"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository interface {
	// RecordDay stores a login-day stamp; recording the same day twice is a
	// no-op so the operation is idempotent per calendar day.
	RecordDay(ctx context.Context, userID uuid.UUID, day string) error
	ListDays(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) RecordDay(ctx context.Context, userID uuid.UUID, day string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.LoginStamp{UserID: userID, Day: day}).Error
}

func (r *activityRepository) ListDays(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var days []string
	err := r.db.WithContext(ctx).Model(&model.LoginStamp{}).
		Where("user_id = ?", userID).
		Pluck("day", &days).Error
	return days, err
}
