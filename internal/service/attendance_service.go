package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

// AttendanceService serves filtered attendance reads.
type AttendanceService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(store repository.Store, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{store: store, logger: logger}
}

// List returns attendance records matching the filter plus present/absent
// aggregates. The fromDate/toDate range is inclusive on both ends and only
// applies when both bounds are given.
func (s *AttendanceService) List(ctx context.Context, filter models.AttendanceFilter) (*dto.AttendanceListResponse, error) {
	attendance, err := s.store.ReadAttendance(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}

	rangeActive := filter.FromDate != "" && filter.ToDate != ""
	filtered := make([]models.AttendanceRecord, 0, len(attendance))
	for _, record := range attendance {
		if filter.Date != "" && record.Date != filter.Date {
			continue
		}
		if filter.StudentID != "" && record.StudentID != filter.StudentID {
			continue
		}
		if filter.Course != "" && record.Course != filter.Course && record.CourseName != filter.Course {
			continue
		}
		// YYYY-MM-DD dates order lexicographically.
		if rangeActive && (record.Date < filter.FromDate || record.Date > filter.ToDate) {
			continue
		}
		filtered = append(filtered, record)
	}

	present := 0
	for _, record := range filtered {
		if record.Present {
			present++
		}
	}
	absent := len(filtered) - present

	return &dto.AttendanceListResponse{
		Success: true,
		Count:   len(filtered),
		Total:   len(attendance),
		Statistics: dto.AttendanceStatistics{
			PresentCount:   present,
			AbsentCount:    absent,
			AttendanceRate: rate(present, len(filtered)),
		},
		Attendance: filtered,
		Timestamp:  models.Now(),
	}, nil
}

// rate formats a percentage with two decimals; "0" when nothing matched.
func rate(part, total int) string {
	if total == 0 {
		return "0"
	}
	return fmt.Sprintf("%.2f", float64(part)/float64(total)*100)
}
