package dto

import (
	"io"

	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	commonDto "github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/dto"
)

type UpdateProfileInput struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Bio       *string `json:"bio,omitempty" binding:"omitempty,max=2000"`
	City      *string `json:"city,omitempty" binding:"omitempty,max=100"`
	State     *string `json:"state,omitempty" binding:"omitempty,max=100"`
	GitHub    *string `json:"github,omitempty" binding:"omitempty,max=255"`
	LinkedIn  *string `json:"linkedin,omitempty" binding:"omitempty,max=255"`
	Instagram *string `json:"instagram,omitempty" binding:"omitempty,max=255"`
}

// AvatarFile carries an uploaded avatar stream from the handler to storage.
type AvatarFile struct {
	Reader   io.Reader
	FileName string
}

type ProfileResponse struct {
	User  *model.User            `json:"user"`
	Score commonDto.ScoreSummary `json:"score"`
}
