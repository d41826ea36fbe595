package http

import (
	"net/http"
	"sort"

	badgeService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/service"
	"github.com/gin-gonic/gin"
)

type BadgeHandler struct{}

func NewBadgeHandler() *BadgeHandler {
	return &BadgeHandler{}
}

// GetCatalog lists every badge the community can earn.
func (h *BadgeHandler) GetCatalog(c *gin.Context) {
	badges := make([]badgeService.Info, 0, len(badgeService.Catalog))
	for _, info := range badgeService.Catalog {
		badges = append(badges, info)
	}
	sort.Slice(badges, func(i, j int) bool { return badges[i].ID < badges[j].ID })

	c.JSON(http.StatusOK, gin.H{"data": badges})
}
