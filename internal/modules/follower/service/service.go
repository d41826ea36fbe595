package follower

import (
	"context"
	"errors"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/follower/repository"
	userRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/user/repository"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowerService interface {
	Follow(ctx context.Context, targetID, followerID uuid.UUID) error
	Unfollow(ctx context.Context, targetID, followerID uuid.UUID) error
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
}

type followerService struct {
	repo     repository.FollowerRepository
	userRepo userRepo.UserRepository
}

func NewFollowerService(repo repository.FollowerRepository, userRepo userRepo.UserRepository) FollowerService {
	return &followerService{repo: repo, userRepo: userRepo}
}

func (s *followerService) Follow(ctx context.Context, targetID, followerID uuid.UUID) error {
	if targetID == followerID {
		return apperror.New(400, "cannot follow yourself", apperror.ErrBadRequest)
	}

	if _, err := s.userRepo.FindByID(ctx, targetID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	followed, err := s.repo.Follow(ctx, targetID, followerID)
	if err != nil {
		return err
	}
	if !followed {
		return apperror.New(409, "already following", apperror.ErrConflict)
	}
	return nil
}

func (s *followerService) Unfollow(ctx context.Context, targetID, followerID uuid.UUID) error {
	unfollowed, err := s.repo.Unfollow(ctx, targetID, followerID)
	if err != nil {
		return err
	}
	if !unfollowed {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *followerService) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountFollowers(ctx, userID)
}
