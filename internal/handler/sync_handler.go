package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soran-institute/institute-api/internal/service"
	"github.com/soran-institute/institute-api/pkg/response"
)

// SyncHandler exposes the backup audit log.
type SyncHandler struct {
	syncs *service.SyncService
}

// NewSyncHandler constructs SyncHandler.
func NewSyncHandler(syncs *service.SyncService) *SyncHandler {
	return &SyncHandler{syncs: syncs}
}

// History godoc
// @Summary Sync history, newest first
// @Tags Sync
// @Produce json
// @Param limit query int false "Truncate to the most recent N entries"
// @Success 200 {object} dto.SyncHistoryResponse
// @Router /api/sync-history [get]
func (h *SyncHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	resp, err := h.syncs.History(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
