package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	leaderboardDto "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/dto"
	leaderboardRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/repository"
	pointsService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/points/service"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	cacheKeyPrefix = "leaderboard:top:"
	cacheTTL       = time.Minute
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, limit int) ([]leaderboardDto.LeaderboardEntry, error)
	// InvalidateCache drops cached leaderboard pages. Called by whoever ran a
	// recalculation; the recalculation engine itself never touches the cache.
	InvalidateCache(ctx context.Context)
}

type leaderboardService struct {
	repo        leaderboardRepo.LeaderboardRepository
	redisClient *redis.Client
}

func NewLeaderboardService(repo leaderboardRepo.LeaderboardRepository, redisClient *redis.Client) LeaderboardService {
	return &leaderboardService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, limit int) ([]leaderboardDto.LeaderboardEntry, error) {
	cacheKey := fmt.Sprintf("%s%d", cacheKeyPrefix, limit)

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var entries []leaderboardDto.LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	rows, err := s.repo.GetTopEntries(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]leaderboardDto.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, leaderboardDto.LeaderboardEntry{
			Position: i + 1,
			UserID:   row.UserID.String(),
			Name:     row.Name,
			PhotoURL: row.PhotoURL,
			Role:     row.Role,
			Points:   row.Points,
			Level:    pointsService.ResolveLevel(row.Points),
		})
	}

	if s.redisClient != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.redisClient.SetEx(ctx, cacheKey, payload, cacheTTL).Err(); err != nil {
				logrus.WithError(err).Warn("failed to cache leaderboard")
			}
		}
	}

	return entries, nil
}

func (s *leaderboardService) InvalidateCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}

	keys, err := s.redisClient.Keys(ctx, cacheKeyPrefix+"*").Result()
	if err != nil {
		logrus.WithError(err).Warn("failed to list leaderboard cache keys")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		logrus.WithError(err).Warn("failed to invalidate leaderboard cache")
	}
}
