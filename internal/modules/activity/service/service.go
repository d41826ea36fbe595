package activity

import (
	"context"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/activity/repository"
	streakService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/streak/service"
	"github.com/google/uuid"
)

type ActivityService interface {
	// RecordLogin stamps today (UTC+5:30 day boundary) for the user and
	// returns the streak as of this login.
	RecordLogin(ctx context.Context, userID uuid.UUID) (streakService.Streak, error)
	GetStreak(ctx context.Context, userID uuid.UUID) (streakService.Streak, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) RecordLogin(ctx context.Context, userID uuid.UUID) (streakService.Streak, error) {
	today := streakService.Today()
	if err := s.repo.RecordDay(ctx, userID, today); err != nil {
		return streakService.Streak{}, err
	}
	return s.streak(ctx, userID, today)
}

func (s *activityService) GetStreak(ctx context.Context, userID uuid.UUID) (streakService.Streak, error) {
	return s.streak(ctx, userID, streakService.Today())
}

func (s *activityService) streak(ctx context.Context, userID uuid.UUID, today string) (streakService.Streak, error) {
	days, err := s.repo.ListDays(ctx, userID)
	if err != nil {
		return streakService.Streak{}, err
	}
	return streakService.Compute(days, today), nil
}
