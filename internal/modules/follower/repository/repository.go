package repository

import (
	"context"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowerRepository interface {
	// Follow records a distinct follower edge. Returns false when the edge
	// already existed.
	Follow(ctx context.Context, userID, followerID uuid.UUID) (bool, error)
	Unfollow(ctx context.Context, userID, followerID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
}

type followerRepository struct {
	db *gorm.DB
}

func NewFollowerRepository(db *gorm.DB) FollowerRepository {
	return &followerRepository{db: db}
}

func (r *followerRepository) Follow(ctx context.Context, userID, followerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Follower{UserID: userID, FollowerID: followerID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *followerRepository) Unfollow(ctx context.Context, userID, followerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND follower_id = ?", userID, followerID).
		Delete(&model.Follower{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *followerRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follower{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
