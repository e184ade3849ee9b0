package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

// StudentService handles student listing, registration and detail reads.
type StudentService struct {
	store     repository.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(store repository.Store, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, validator: validate, logger: logger}
}

// List returns students matching the filter. Level and group are exact
// matches; search is a case-insensitive substring over name and father name.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) (*dto.StudentListResponse, error) {
	students, err := s.store.ReadStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}

	filtered := make([]models.Student, 0, len(students))
	search := strings.ToLower(filter.Search)
	for _, student := range students {
		if filter.Level != "" && student.Level != filter.Level {
			continue
		}
		if filter.Group != "" && student.Group != filter.Group {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(student.Name), search) &&
			!strings.Contains(strings.ToLower(student.FatherName), search) {
			continue
		}
		filtered = append(filtered, student)
	}

	return &dto.StudentListResponse{
		Success:   true,
		Count:     len(filtered),
		Total:     len(students),
		Students:  filtered,
		Timestamp: models.Now(),
	}, nil
}

// Create registers a student submitted directly through the API. Uniqueness
// is enforced on the (name, fatherName, level) triple.
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*dto.CreateStudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name, fatherName, level and group are required")
	}

	var resp *dto.CreateStudentResponse
	err := s.store.Exclusive(func() error {
		students, err := s.store.ReadStudents(ctx)
		if err != nil {
			return err
		}
		for _, existing := range students {
			if existing.Name == req.Name && existing.FatherName == req.FatherName && existing.Level == req.Level {
				return appErrors.Clone(appErrors.ErrConflict, "student already registered")
			}
		}
		student := models.Student{
			ID:         uuid.NewString(),
			Name:       req.Name,
			FatherName: req.FatherName,
			Level:      req.Level,
			Group:      req.Group,
			Phone:      req.Phone,
			CreatedAt:  models.Now(),
			Source:     "API",
		}
		students = append(students, student)
		if err := s.store.WriteStudents(ctx, students); err != nil {
			return err
		}
		resp = &dto.CreateStudentResponse{
			Success:   true,
			Message:   "student registered",
			Student:   student,
			Timestamp: student.CreatedAt,
		}
		return nil
	})
	if err != nil {
		if appErr := appErrors.FromError(err); appErr.Code == appErrors.ErrConflict.Code {
			return nil, appErr
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register student")
	}
	return resp, nil
}

// Detail returns one student joined with their last ten attendance and grade
// entries plus aggregate counters.
func (s *StudentService) Detail(ctx context.Context, id string) (*dto.StudentDetailResponse, error) {
	students, err := s.store.ReadStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	idx := findStudentIndex(students, id)
	if idx == -1 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	student := students[idx]

	attendance, err := s.store.ReadAttendance(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance")
	}
	grades, err := s.store.ReadGrades(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}

	ownAttendance := make([]models.AttendanceRecord, 0)
	absences := 0
	for _, record := range attendance {
		if record.StudentID != id {
			continue
		}
		ownAttendance = append(ownAttendance, record)
		if !record.Present {
			absences++
		}
	}

	ownGrades := make([]models.GradeRecord, 0)
	total := 0.0
	for _, grade := range grades {
		if grade.StudentID != id {
			continue
		}
		ownGrades = append(ownGrades, grade)
		total += grade.TotalGrade
	}
	average := "0.00"
	if len(ownGrades) > 0 {
		average = fmt.Sprintf("%.2f", total/float64(len(ownGrades)))
	}

	return &dto.StudentDetailResponse{
		Success: true,
		Student: dto.StudentSummary{
			Student:         student,
			AttendanceCount: len(ownAttendance),
			AbsencesCount:   absences,
			GradesCount:     len(ownGrades),
			AverageGrade:    average,
		},
		Attendance: lastN(ownAttendance, 10),
		Grades:     lastN(ownGrades, 10),
		Statistics: dto.StudentStatistics{
			TotalAttendance: len(ownAttendance),
			TotalAbsences:   absences,
			TotalGrades:     len(ownGrades),
			AverageGrade:    average,
		},
		Timestamp: models.Now(),
	}, nil
}

// lastN returns the trailing n elements, preserving order.
func lastN[T any](records []T, n int) []T {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}
