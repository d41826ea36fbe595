package main

import (
	"context"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/bootstrap"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/config"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/server"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/database"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	if cfg.AppEnv == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	db := database.Connect(cfg.DatabaseURL)

	if err := bootstrap.Migrate(db); err != nil {
		logrus.Fatalf("failed to run migrations: %v", err)
	}

	if cfg.AppEnv != "production" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			logrus.Fatalf("failed to seed admin user: %v", err)
		}
	}

	redisClient := connectRedis(cfg)

	srv := server.NewServer(db, redisClient, cfg)

	scheduler := startScheduler(cfg, srv)
	defer scheduler.Stop()

	logrus.Infof("🚀 server listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}

func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		logrus.Warn("REDIS_URL not set, leaderboard cache disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Warnf("redis unreachable, leaderboard cache disabled: %v", err)
		return nil
	}

	logrus.Info("✅ connected to redis")
	return client
}

func startScheduler(cfg *config.Config, srv *server.Server) *cron.Cron {
	scheduler := cron.New()

	_, err := scheduler.AddFunc(cfg.RecalcCron, func() {
		logrus.Info("⏰ starting scheduled score recalculation")
		srv.RecalculateNow(context.Background())
	})
	if err != nil {
		logrus.Fatalf("invalid RECALC_CRON %q: %v", cfg.RecalcCron, err)
	}

	scheduler.Start()
	logrus.Infof("🗓️ recalculation scheduled: %s", cfg.RecalcCron)

	return scheduler
}
