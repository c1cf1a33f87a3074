package handlers

import (
	"net/http"

	"voteverse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrative operations
type AdminHandler struct {
	registrySync service.RegistrySyncServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(registrySync service.RegistrySyncServiceInterface) *AdminHandler {
	return &AdminHandler{registrySync: registrySync}
}

// SyncRegistry handles POST /admin/registry/sync
// @Summary Import voters from the university registry
// @Description Upserts every registry voter by registration number. Rows that fail are reported and skipped.
// @Tags admin
// @Produce json
// @Success 200 {object} service.SyncReport
// @Failure 503 {object} ErrorResponse "Registry not configured"
// @Security BearerAuth
// @Router /admin/registry/sync [post]
func (h *AdminHandler) SyncRegistry(c *gin.Context) {
	report, err := h.registrySync.Sync(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
