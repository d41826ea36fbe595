package admin

import (
	"context"
	"errors"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	leaderboardRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/repository"
	leaderboardService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/service"
	recalcService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/recalc/service"
	searchService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/search/service"
	userRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/user/repository"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminService interface {
	// Recalculate runs one scoring reconciliation over all users and drops the
	// stale leaderboard cache afterwards.
	Recalculate(ctx context.Context) *recalcService.Report
	ReindexSearch(ctx context.Context) (int, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type adminService struct {
	recalc      recalcService.RecalcService
	leaderboard leaderboardService.LeaderboardService
	lbRepo      leaderboardRepo.LeaderboardRepository
	search      searchService.MemberSearchService
	users       userRepo.UserRepository
}

func NewAdminService(recalc recalcService.RecalcService, leaderboard leaderboardService.LeaderboardService, lbRepo leaderboardRepo.LeaderboardRepository, search searchService.MemberSearchService, users userRepo.UserRepository) AdminService {
	return &adminService{
		recalc:      recalc,
		leaderboard: leaderboard,
		lbRepo:      lbRepo,
		search:      search,
		users:       users,
	}
}

func (s *adminService) Recalculate(ctx context.Context) *recalcService.Report {
	report := s.recalc.RecalculateAll(ctx)
	if report.Processed > 0 && s.leaderboard != nil {
		s.leaderboard.InvalidateCache(ctx)
	}
	return report
}

func (s *adminService) ReindexSearch(ctx context.Context) (int, error) {
	if s.search == nil {
		return 0, apperror.New(503, "search is not configured", apperror.ErrInternal)
	}

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	indexed := 0
	for _, user := range users {
		points := 0
		if user.Profile != nil {
			points = user.Profile.Points
		}
		if err := s.search.IndexMember(user, points); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("failed to reindex member")
			continue
		}
		indexed++
	}

	return indexed, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.PasswordHash = ""
	}
	return users, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, id.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	if err := s.users.Delete(ctx, id.String()); err != nil {
		return err
	}

	if err := s.lbRepo.DeleteEntry(ctx, id); err != nil {
		logrus.WithError(err).WithField("user_id", id).Warn("failed to remove leaderboard entry")
	}
	if s.search != nil {
		if err := s.search.DeleteMember(id.String()); err != nil {
			logrus.WithError(err).WithField("user_id", id).Warn("failed to remove member from search")
		}
	}

	return nil
}
