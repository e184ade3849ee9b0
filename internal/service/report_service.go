package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

// unknownStudentName labels report rows whose studentId no longer resolves.
const unknownStudentName = "unknown"

// ReportService joins attendance with the current student roster.
type ReportService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewReportService constructs the report service.
func NewReportService(store repository.Store, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{store: store, logger: logger}
}

// Attendance builds the joined attendance report. Level and group come from
// the student record as it is now, not as it was when the attendance was
// recorded; rows with dangling studentIds stay in with an "unknown" name
// unless a level/group filter excludes them.
func (s *ReportService) Attendance(ctx context.Context, filter models.ReportFilter) (*dto.ReportResponse, error) {
	attendance, err := s.store.ReadAttendance(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build report")
	}
	students, err := s.store.ReadStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build report")
	}

	byID := make(map[string]models.Student, len(students))
	for _, student := range students {
		byID[student.ID] = student
	}

	rows := make([]dto.ReportRow, 0, len(attendance))
	present := 0
	for _, record := range attendance {
		if filter.Date != "" && record.Date != filter.Date {
			continue
		}
		if filter.Course != "" && record.Course != filter.Course && record.CourseName != filter.Course {
			continue
		}

		row := dto.ReportRow{AttendanceRecord: record, StudentName: unknownStudentName}
		if student, ok := byID[record.StudentID]; ok {
			row.StudentName = student.Name
			row.StudentFatherName = student.FatherName
			row.StudentLevel = student.Level
			row.StudentGroup = student.Group
		}
		if filter.Level != "" && row.StudentLevel != filter.Level {
			continue
		}
		if filter.Group != "" && row.StudentGroup != filter.Group {
			continue
		}
		rows = append(rows, row)
		if record.Present {
			present++
		}
	}
	absent := len(rows) - present

	return &dto.ReportResponse{
		Success: true,
		Report: dto.ReportSummary{
			Date:           orAll(filter.Date),
			Course:         orAll(filter.Course),
			Level:          orAll(filter.Level),
			Group:          orAll(filter.Group),
			TotalStudents:  len(rows),
			PresentCount:   present,
			AbsentCount:    absent,
			AttendanceRate: rate(present, len(rows)),
		},
		Data:      rows,
		Timestamp: models.Now(),
	}, nil
}

func orAll(value string) string {
	if value == "" {
		return "all"
	}
	return value
}
