package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/service"
	"github.com/soran-institute/institute-api/pkg/response"
)

// ReportHandler exposes the joined attendance report and its file exports.
type ReportHandler struct {
	reports *service.ReportService
	exports *service.ExportService
}

// NewReportHandler constructs ReportHandler. exports may be nil when the
// export feature is disabled.
func NewReportHandler(reports *service.ReportService, exports *service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

func reportFilter(c *gin.Context) models.ReportFilter {
	return models.ReportFilter{
		Date:   c.Query("date"),
		Course: c.Query("course"),
		Level:  c.Query("level"),
		Group:  c.Query("group"),
	}
}

// Attendance godoc
// @Summary Joined attendance report
// @Tags Reports
// @Produce json
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param course query string false "Filter by course"
// @Param level query string false "Filter by student level"
// @Param group query string false "Filter by student group"
// @Success 200 {object} dto.ReportResponse
// @Router /api/reports/attendance [get]
func (h *ReportHandler) Attendance(c *gin.Context) {
	resp, err := h.reports.Attendance(c.Request.Context(), reportFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// Export godoc
// @Summary Attendance report as CSV or PDF
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param course query string false "Filter by course"
// @Param level query string false "Filter by student level"
// @Param group query string false "Filter by student group"
// @Success 200 {file} file
// @Router /api/reports/attendance/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	file, err := h.exports.AttendanceReport(c.Request.Context(), reportFilter(c), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
