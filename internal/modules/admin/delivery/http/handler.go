package http

import (
	"net/http"

	adminService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/admin/service"
	recalcService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/recalc/service"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/apperror"
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	service adminService.AdminService
}

func NewAdminHandler(service adminService.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Recalculate(c *gin.Context) {
	report := h.service.Recalculate(c.Request.Context())

	status := http.StatusOK
	if report.Status == recalcService.StatusFailed {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"data": report})
}

func (h *AdminHandler) ReindexSearch(c *gin.Context) {
	indexed, err := h.service.ReindexSearch(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"indexed": indexed}})
}

func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ResponseError(c, apperror.ErrBadRequest)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
