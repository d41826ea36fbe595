package http

import (
	"net/http"

	activityService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/activity/service"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/response"
	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	service activityService.ActivityService
}

func NewActivityHandler(service activityService.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

func (h *ActivityHandler) RecordLogin(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	streak, err := h.service.RecordLogin(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": streak})
}

func (h *ActivityHandler) GetStreak(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	streak, err := h.service.GetStreak(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": streak})
}
