package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/service"
	"github.com/soran-institute/institute-api/pkg/response"
)

// AdminHandler exposes the password-guarded data wipe.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Wipe godoc
// @Summary Wipe a collection or all data
// @Tags Admin
// @Accept json
// @Produce json
// @Param type path string true "attendance, sync-history or all"
// @Param payload body dto.WipeRequest true "Admin password"
// @Success 200 {object} dto.WipeResponse
// @Failure 403 {object} response.ErrorBody
// @Router /api/data/{type} [delete]
func (h *AdminHandler) Wipe(c *gin.Context) {
	var req dto.WipeRequest
	// A missing or malformed body simply fails the password check below.
	_ = c.ShouldBindJSON(&req)

	resp, err := h.admin.Wipe(c.Request.Context(), c.Param("type"), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
