package http

import (
	"net/http"

	followerService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/follower/service"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/apperror"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FollowerHandler struct {
	service followerService.FollowerService
}

func NewFollowerHandler(service followerService.FollowerService) *FollowerHandler {
	return &FollowerHandler{service: service}
}

func (h *FollowerHandler) Follow(c *gin.Context) {
	followerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrBadRequest)
		return
	}

	if err := h.service.Follow(c.Request.Context(), targetID, followerID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "following"})
}

func (h *FollowerHandler) Unfollow(c *gin.Context) {
	followerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrBadRequest)
		return
	}

	if err := h.service.Unfollow(c.Request.Context(), targetID, followerID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}

func (h *FollowerHandler) GetFollowerCount(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrBadRequest)
		return
	}

	count, err := h.service.CountFollowers(c.Request.Context(), targetID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"followers": count}})
}
