package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/service"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
	"github.com/soran-institute/institute-api/pkg/response"
)

// BackupHandler receives backup batches from the teacher system.
type BackupHandler struct {
	backups *service.BackupService
}

// NewBackupHandler constructs BackupHandler.
func NewBackupHandler(backups *service.BackupService) *BackupHandler {
	return &BackupHandler{backups: backups}
}

// Receive godoc
// @Summary Merge a backup batch
// @Tags Backup
// @Accept json
// @Produce json
// @Param payload body dto.BackupBatch true "Backup batch"
// @Success 200 {object} dto.BackupResponse
// @Failure 400 {object} response.ErrorBody
// @Router /api/backup [post]
func (h *BackupHandler) Receive(c *gin.Context) {
	// Binding through a pointer catches a JSON null body, which decodes into
	// a zero struct without error otherwise. Malformed batches mutate nothing
	// and leave no sync record.
	var batch *dto.BackupBatch
	if err := c.ShouldBindJSON(&batch); err != nil || batch == nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid backup payload"))
		return
	}

	if batch.Test {
		response.JSON(c, http.StatusOK, dto.BackupTestResponse{
			Success:   true,
			Message:   "API reachable, connection ok",
			Test:      true,
			Timestamp: models.Now(),
		})
		return
	}

	resp, err := h.backups.Apply(c.Request.Context(), *batch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
