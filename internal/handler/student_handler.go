package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/service"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
	"github.com/soran-institute/institute-api/pkg/response"
)

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param level query string false "Filter by level"
// @Param group query string false "Filter by group"
// @Param search query string false "Search by name or father name"
// @Success 200 {object} dto.StudentListResponse
// @Router /api/students [get]
func (h *StudentHandler) List(c *gin.Context) {
	filter := models.StudentFilter{
		Level:  c.Query("level"),
		Group:  c.Query("group"),
		Search: strings.TrimSpace(c.Query("search")),
	}

	resp, err := h.students.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// Create godoc
// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.CreateStudentRequest true "Student payload"
// @Success 201 {object} dto.CreateStudentResponse
// @Failure 409 {object} response.ErrorBody
// @Router /api/students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	resp, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// Get godoc
// @Summary Student detail with joined statistics
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentDetailResponse
// @Failure 404 {object} response.ErrorBody
// @Router /api/students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	resp, err := h.students.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
