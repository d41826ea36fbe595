package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/config"
	badgeService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/service"
	leaderboardRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/repository"
	leaderboardService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/service"
	pointsService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/points/service"
	recalcRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/recalc/repository"
	recalcService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/recalc/service"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/database"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Standalone recalculation run. Intended for manual invocation and
// one-off backfills; the server schedules the same pipeline via cron.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect(cfg.DatabaseURL)

	badges := badgeService.NewBadgeService()
	points := pointsService.NewPointsService(pointsService.DefaultWeights())
	svc := recalcService.NewRecalcService(
		recalcRepo.NewRecalcRepository(db), badges, points, cfg.RecalcWorkers, logrus.StandardLogger(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logrus.Infof("🔄 starting full recalculation (%d workers)", cfg.RecalcWorkers)
	report := svc.RecalculateAll(ctx)

	for _, ue := range report.UserErrors {
		logrus.WithField("user_id", ue.UserID).Warnf("user skipped: %v", ue.Err)
	}
	for _, be := range report.BatchErrors {
		logrus.WithField("batch", be.Batch).Errorf("batch commit failed: %v", be.Err)
	}

	logrus.WithFields(logrus.Fields{
		"status":     report.Status,
		"processed":  report.Processed,
		"changed":    len(report.Deltas),
		"duration_s": report.FinishedAt.Sub(report.StartedAt).Seconds(),
	}).Info("recalculation finished")

	if report.Status == recalcService.StatusFailed {
		if report.RunError != "" {
			logrus.Errorf("run aborted: %s", report.RunError)
		}
		os.Exit(1)
	}

	// Scores changed outside the request path, so drop the cached
	// leaderboard pages rather than waiting for the TTL.
	if cfg.RedisURL != "" && report.Processed > 0 {
		invalidateLeaderboardCache(ctx, cfg, db)
	}
}

func invalidateLeaderboardCache(ctx context.Context, cfg *config.Config, db *gorm.DB) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Warnf("invalid REDIS_URL, skipping cache invalidation: %v", err)
		return
	}

	client := redis.NewClient(opts)
	defer client.Close()

	lb := leaderboardService.NewLeaderboardService(leaderboardRepo.NewLeaderboardRepository(db), client)
	lb.InvalidateCache(ctx)
}
