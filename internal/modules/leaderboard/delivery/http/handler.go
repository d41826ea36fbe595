package http

import (
	"net/http"
	"strconv"

	leaderboardService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/leaderboard/service"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	service leaderboardService.LeaderboardService
}

func NewLeaderboardHandler(service leaderboardService.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, _ := strconv.Atoi(limitStr)

	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	leaderboard, err := h.service.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": leaderboard})
}
