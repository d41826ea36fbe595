package user

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	badgeService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/service"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/user/dto"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/user/repository"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
}

type authService struct {
	repo             repository.UserRepository
	secret           string
	tokenTTL         time.Duration
	earlyAdopterSeat int64
}

func NewAuthService(repo repository.UserRepository, secret string) AuthService {
	ttl := 24 * time.Hour
	if ttlStr := os.Getenv("JWT_TTL_MINUTES"); ttlStr != "" {
		if minutes, err := strconv.Atoi(ttlStr); err == nil {
			ttl = time.Duration(minutes) * time.Minute
		}
	}

	// Accounts created while the community is below this size get the
	// one-time early-adopter badge. The badge evaluator only carries it
	// forward afterwards; it is never granted again.
	seats := int64(100)
	if seatsStr := os.Getenv("EARLY_ADOPTER_SEATS"); seatsStr != "" {
		if n, err := strconv.ParseInt(seatsStr, 10, 64); err == nil {
			seats = n
		}
	}

	return &authService{
		repo:             repo,
		secret:           secret,
		tokenTTL:         ttl,
		earlyAdopterSeat: seats,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.New(409, "email already registered", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         "member",
	}

	profile := &model.Profile{Achievements: pq.StringArray{}}
	if count, err := s.repo.Count(ctx); err == nil && count < s.earlyAdopterSeat {
		profile.Achievements = pq.StringArray{badgeService.EarlyAdopter}
	}

	if err := s.repo.Create(ctx, user, profile); err != nil {
		return nil, err
	}
	user.Profile = profile

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(401, "invalid credentials", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.New(401, "invalid credentials", apperror.ErrUnauthorized)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
