package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	streakService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/streak/service"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StagedWrite is one user's fully computed result, ready to be committed to
// the profile record and the leaderboard record in the same write group.
type StagedWrite struct {
	UserID       uuid.UUID
	Name         string
	PhotoURL     *string
	Role         string
	Points       int
	Achievements []string
	ScannedAt    time.Time
}

// RecalcRepository is the store boundary of the recalculation job: enumerate
// users, assemble a read-only facts snapshot per user, and commit staged
// writes in atomic batches.
type RecalcRepository interface {
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
	LoadFacts(ctx context.Context, userID uuid.UUID) (model.UserFacts, error)
	CommitBatch(ctx context.Context, writes []StagedWrite) error
}

type recalcRepository struct {
	db *gorm.DB
}

func NewRecalcRepository(db *gorm.DB) RecalcRepository {
	return &recalcRepository{db: db}
}

func (r *recalcRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.User{}).Order("created_at").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to enumerate users: %w", err)
	}
	return ids, nil
}

func (r *recalcRepository) LoadFacts(ctx context.Context, userID uuid.UUID) (model.UserFacts, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Profile").First(&user, "id = ?", userID).Error; err != nil {
		return model.UserFacts{}, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	var stars []int
	if err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("star_count", &stars).Error; err != nil {
		return model.UserFacts{}, fmt.Errorf("failed to load projects for %s: %w", userID, err)
	}

	var followers int64
	if err := r.db.WithContext(ctx).Model(&model.Follower{}).
		Where("user_id = ?", userID).
		Count(&followers).Error; err != nil {
		return model.UserFacts{}, fmt.Errorf("failed to count followers for %s: %w", userID, err)
	}

	var days []string
	if err := r.db.WithContext(ctx).Model(&model.LoginStamp{}).
		Where("user_id = ?", userID).
		Pluck("day", &days).Error; err != nil {
		return model.UserFacts{}, fmt.Errorf("failed to load login stamps for %s: %w", userID, err)
	}

	facts := model.UserFacts{
		Name:       user.Name,
		Role:       user.Role,
		Followers:  int(followers),
		LoginDates: days,
		Today:      streakService.Today(),
	}
	for _, s := range stars {
		facts.Projects = append(facts.Projects, model.ProjectFacts{StarCount: s})
	}
	if p := user.Profile; p != nil {
		facts.Bio = deref(p.Bio)
		facts.PhotoURL = deref(p.PhotoURL)
		facts.City = deref(p.City)
		facts.State = deref(p.State)
		facts.GitHub = deref(p.GitHub)
		facts.LinkedIn = deref(p.LinkedIn)
		facts.Instagram = deref(p.Instagram)
		facts.PreviousBadges = p.Achievements
		facts.PreviousPoints = p.Points
	}

	return facts, nil
}

// CommitBatch applies every staged write in one transaction. The profile
// record gets points, achievements and the scan timestamp; the leaderboard
// record is merge-written: points and last_active always, display fields only
// when the row is first created.
func (r *recalcRepository) CommitBatch(ctx context.Context, writes []StagedWrite) error {
	if len(writes) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, w := range writes {
			if err := tx.Model(&model.Profile{}).
				Where("user_id = ?", w.UserID).
				Updates(map[string]interface{}{
					"points":          w.Points,
					"achievements":    pq.StringArray(w.Achievements),
					"last_badge_scan": w.ScannedAt,
				}).Error; err != nil {
				return fmt.Errorf("failed to update profile %s: %w", w.UserID, err)
			}

			entry := model.LeaderboardEntry{
				UserID:     w.UserID,
				Name:       w.Name,
				PhotoURL:   w.PhotoURL,
				Role:       w.Role,
				Points:     w.Points,
				LastActive: w.ScannedAt,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"points":      w.Points,
					"last_active": w.ScannedAt,
				}),
			}).Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to upsert leaderboard entry %s: %w", w.UserID, err)
			}
		}
		return nil
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
