package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/service"
	"github.com/soran-institute/institute-api/pkg/response"
)

// AttendanceHandler exposes the attendance list endpoint.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List godoc
// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param studentId query string false "Filter by student"
// @Param course query string false "Filter by course"
// @Param fromDate query string false "Range start, inclusive"
// @Param toDate query string false "Range end, inclusive"
// @Success 200 {object} dto.AttendanceListResponse
// @Router /api/attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	filter := models.AttendanceFilter{
		Date:      c.Query("date"),
		StudentID: c.Query("studentId"),
		Course:    c.Query("course"),
		FromDate:  c.Query("fromDate"),
		ToDate:    c.Query("toDate"),
	}

	resp, err := h.attendance.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
