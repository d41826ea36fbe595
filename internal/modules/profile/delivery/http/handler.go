package http

import (
	"encoding/json"
	"net/http"

	profileDto "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/profile/dto"
	profileService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/profile/service"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/apperror"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/response"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	service profileService.ProfileService
}

func NewProfileHandler(service profileService.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) GetCurrentProfile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp, err := h.service.GetProfile(c.Request.Context(), userID.String())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *ProfileHandler) GetProfileByID(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrBadRequest)
		return
	}

	resp, err := h.service.GetProfile(c.Request.Context(), targetID.String())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UpdateProfile accepts multipart form data: a "payload" JSON part with the
// profile fields and an optional "avatar" file part.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input profileDto.UpdateProfileInput
	if payload := c.PostForm("payload"); payload != "" {
		if err := json.Unmarshal([]byte(payload), &input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
	} else if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	var avatar *profileDto.AvatarFile
	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			response.ResponseError(c, apperror.ErrBadRequest)
			return
		}
		defer file.Close()
		avatar = &profileDto.AvatarFile{Reader: file, FileName: fileHeader.Filename}
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), userID.String(), input, avatar)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
