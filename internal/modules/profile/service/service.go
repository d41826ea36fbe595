package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	activityRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/activity/repository"
	pointsService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/points/service"
	profileDto "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/profile/dto"
	searchService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/search/service"
	streakService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/streak/service"
	userRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/user/repository"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/apperror"
	commonDto "github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/dto"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/storage"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*profileDto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, input profileDto.UpdateProfileInput, avatar *profileDto.AvatarFile) (*profileDto.ProfileResponse, error)
}

type profileService struct {
	repo         userRepo.UserRepository
	activityRepo activityRepo.ActivityRepository
	imageStorage storage.ImageStorage
	search       searchService.MemberSearchService
	sanitizer    *bluemonday.Policy
}

func NewProfileService(repo userRepo.UserRepository, activityRepo activityRepo.ActivityRepository, imageStorage storage.ImageStorage, search searchService.MemberSearchService) ProfileService {
	return &profileService{
		repo:         repo,
		activityRepo: activityRepo,
		imageStorage: imageStorage,
		search:       search,
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*profileDto.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	user.PasswordHash = ""
	return s.buildResponse(ctx, user)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, input profileDto.UpdateProfileInput, avatar *profileDto.AvatarFile) (*profileDto.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}

	profile := user.Profile
	if profile == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Bio != nil {
		clean := strings.TrimSpace(s.sanitizer.Sanitize(*input.Bio))
		profile.Bio = optional(clean)
	}
	if input.City != nil {
		profile.City = optional(strings.TrimSpace(*input.City))
	}
	if input.State != nil {
		profile.State = optional(strings.TrimSpace(*input.State))
	}
	if input.GitHub != nil {
		profile.GitHub = optional(strings.TrimSpace(*input.GitHub))
	}
	if input.LinkedIn != nil {
		profile.LinkedIn = optional(strings.TrimSpace(*input.LinkedIn))
	}
	if input.Instagram != nil {
		profile.Instagram = optional(strings.TrimSpace(*input.Instagram))
	}

	if avatar != nil && avatar.Reader != nil && s.imageStorage != nil {
		url, err := s.imageStorage.UploadImage(ctx, avatar.Reader, "avatars", avatar.FileName)
		if err != nil {
			return nil, err
		}
		profile.PhotoURL = &url
	}

	if err := s.repo.Update(ctx, user, profile); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexMember(user, profile.Points); err != nil {
			logrus.WithError(err).Warn("failed to index member for search")
		}
	}

	user.PasswordHash = ""
	return s.buildResponse(ctx, user)
}

func (s *profileService) buildResponse(ctx context.Context, user *model.User) (*profileDto.ProfileResponse, error) {
	summary := commonDto.ScoreSummary{Achievements: []string{}}
	if p := user.Profile; p != nil {
		summary.TotalPoints = p.Points
		summary.Achievements = p.Achievements
		summary.Level = pointsService.ResolveLevel(p.Points)
	} else {
		summary.Level = pointsService.ResolveLevel(0)
	}

	if s.activityRepo != nil {
		days, err := s.activityRepo.ListDays(ctx, user.ID)
		if err == nil {
			st := streakService.Compute(days, streakService.Today())
			summary.CurrentStreak = st.Current
			summary.LongestStreak = st.Longest
		}
	}

	return &profileDto.ProfileResponse{User: user, Score: summary}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
