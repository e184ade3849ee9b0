package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soran-institute/institute-api/internal/service"
	"github.com/soran-institute/institute-api/pkg/response"
)

// ConfigHandler exposes client filter configuration.
type ConfigHandler struct {
	config *service.ConfigService
}

// NewConfigHandler constructs ConfigHandler.
func NewConfigHandler(config *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{config: config}
}

// Get godoc
// @Summary Distinct filter values for clients
// @Tags Config
// @Produce json
// @Success 200 {object} dto.ConfigResponse
// @Router /api/config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	resp, err := h.config.Config(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
