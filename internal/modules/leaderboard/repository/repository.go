package repository

import (
	"context"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	GetTopEntries(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
	GetEntryByUserID(ctx context.Context, userID uuid.UUID) (*model.LeaderboardEntry, error)
	DeleteEntry(ctx context.Context, userID uuid.UUID) error
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) GetTopEntries(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.db.WithContext(ctx).
		Order("points DESC, last_active DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *leaderboardRepository) GetEntryByUserID(ctx context.Context, userID uuid.UUID) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	if err := r.db.WithContext(ctx).First(&entry, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *leaderboardRepository) DeleteEntry(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LeaderboardEntry{}, "user_id = ?", userID).Error
}
