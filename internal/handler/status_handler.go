package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soran-institute/institute-api/internal/service"
	"github.com/soran-institute/institute-api/pkg/response"
)

// StatusHandler exposes service health and collection counts.
type StatusHandler struct {
	status *service.StatusService
}

// NewStatusHandler constructs StatusHandler.
func NewStatusHandler(status *service.StatusService) *StatusHandler {
	return &StatusHandler{status: status}
}

// Get godoc
// @Summary Service status and collection counts
// @Tags Status
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /api/status [get]
func (h *StatusHandler) Get(c *gin.Context) {
	resp, err := h.status.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
