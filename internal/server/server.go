package server

import (
	"context"
	"strings"
	"time"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/config"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/middleware"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/storage"

	activityHttp "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/activity/delivery/http"
	activityRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/activity/repository"
	activityService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/activity/service"

	adminHttp "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/admin/delivery/http"
	adminService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/admin/service"

	badgeHttp "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/delivery/http"
	badgeService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/service"

	followerHttp "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/follower/delivery/http"
	followerRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/follower/repository"
	followerService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/follower/service"

	leaderboardHttp "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/delivery/http"
	leaderboardRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/repository"
	leaderboardService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/service"

	pointsService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/points/service"

	profileHttp "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/profile/delivery/http"
	profileService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/profile/service"

	projectHttp "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/project/delivery/http"
	projectRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/project/repository"
	projectService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/project/service"

	recalcRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/recalc/repository"
	recalcService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/recalc/service"

	searchService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/search/service"

	userHttp "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/user/delivery/http"
	userRepo "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/user/repository"
	userService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	admin  adminService.AdminService
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	users := userRepo.NewUserRepository(db)

	var imageStorage storage.ImageStorage
	if s, err := storage.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret); err != nil {
		logrus.WithError(err).Warn("cloudinary not configured, avatar upload disabled")
	} else {
		imageStorage = s
	}

	var memberSearch searchService.MemberSearchService
	if cfg.MeiliSearchHost != "" {
		meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		memberSearch = searchService.NewMemberSearchService(meiliClient)
	}

	authSvc := userService.NewAuthService(users, cfg.JWTSecret)
	authHandler := userHttp.NewAuthHandler(authSvc)

	activities := activityRepo.NewActivityRepository(db)
	activitySvc := activityService.NewActivityService(activities)
	activityHandler := activityHttp.NewActivityHandler(activitySvc)

	projects := projectRepo.NewProjectRepository(db)
	projectSvc := projectService.NewProjectService(projects)
	projectHandler := projectHttp.NewProjectHandler(projectSvc)

	followers := followerRepo.NewFollowerRepository(db)
	followerSvc := followerService.NewFollowerService(followers, users)
	followerHandler := followerHttp.NewFollowerHandler(followerSvc)

	profileSvc := profileService.NewProfileService(users, activities, imageStorage, memberSearch)
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	lbRepo := leaderboardRepo.NewLeaderboardRepository(db)
	leaderboardSvc := leaderboardService.NewLeaderboardService(lbRepo, redisClient)
	leaderboardHandler := leaderboardHttp.NewLeaderboardHandler(leaderboardSvc)

	badges := badgeService.NewBadgeService()
	points := pointsService.NewPointsService(pointsService.DefaultWeights())
	recalcSvc := recalcService.NewRecalcService(
		recalcRepo.NewRecalcRepository(db), badges, points, cfg.RecalcWorkers, logrus.StandardLogger(),
	)

	adminSvc := adminService.NewAdminService(recalcSvc, leaderboardSvc, lbRepo, memberSearch, users)
	adminHandler := adminHttp.NewAdminHandler(adminSvc)

	badgeHandler := badgeHttp.NewBadgeHandler()

	router := gin.New()

	setupCORS(router, cfg)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(users, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
	api.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
	api.GET("/badges", badgeHandler.GetCatalog)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.POST("/recalculate", adminHandler.Recalculate)
			adminGroup.POST("/search/reindex", adminHandler.ReindexSearch)
			adminGroup.GET("/users", adminHandler.GetAllUsers)
			adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)
		}

		// Profile routes
		protected.GET("/profile/me", profileHandler.GetCurrentProfile)
		protected.GET("/profile/:user_id", profileHandler.GetProfileByID)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		// Activity routes
		protected.POST("/activity/login", activityHandler.RecordLogin)
		protected.GET("/activity/streak", activityHandler.GetStreak)

		// Project routes
		protected.POST("/projects", projectHandler.CreateProject)
		protected.GET("/projects/me", projectHandler.GetMyProjects)
		protected.DELETE("/projects/:project_id", projectHandler.DeleteProject)
		protected.POST("/projects/:project_id/star", projectHandler.StarProject)
		protected.DELETE("/projects/:project_id/star", projectHandler.UnstarProject)

		// Follower routes
		protected.POST("/users/:user_id/follow", followerHandler.Follow)
		protected.DELETE("/users/:user_id/follow", followerHandler.Unfollow)
		protected.GET("/users/:user_id/followers", followerHandler.GetFollowerCount)
	}

	return &Server{
		engine: router,
		admin:  adminSvc,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// RecalculateNow runs one recalculation. Used by the cron schedule in
// cmd/server; the batch job binary has its own entry point.
func (s *Server) RecalculateNow(ctx context.Context) {
	report := s.admin.Recalculate(ctx)
	logrus.WithFields(logrus.Fields{
		"status":       report.Status,
		"processed":    report.Processed,
		"user_errors":  len(report.UserErrors),
		"batch_errors": len(report.BatchErrors),
	}).Info("scheduled recalculation finished")
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
