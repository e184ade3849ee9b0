package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

// Endpoints lists the API surface for the status and index payloads.
var Endpoints = []string{
	"GET /api/status - service health and collection counts",
	"POST /api/backup - merge a backup batch from the teacher system",
	"GET /api/students - filtered student list",
	"POST /api/students - register a student",
	"GET /api/students/:id - student detail with joined statistics",
	"GET /api/attendance - filtered attendance list",
	"GET /api/reports/attendance - joined attendance report",
	"GET /api/reports/attendance/export - report as CSV or PDF",
	"GET /api/sync-history - backup audit log, newest first",
	"GET /api/config - distinct filter values",
	"DELETE /api/data/:type - wipe a collection (admin)",
}

// StatusService reports service health and collection sizes.
type StatusService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewStatusService constructs the status service.
func NewStatusService(store repository.Store, logger *zap.Logger) *StatusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusService{store: store, logger: logger}
}

// Status returns aggregate collection counts.
func (s *StatusService) Status(ctx context.Context) (*dto.StatusResponse, error) {
	students, err := s.store.ReadStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read collections")
	}
	attendance, err := s.store.ReadAttendance(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read collections")
	}
	grades, err := s.store.ReadGrades(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read collections")
	}
	history, err := s.store.ReadSyncHistory(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read collections")
	}

	return &dto.StatusResponse{
		Success:   true,
		System:    systemName,
		Version:   systemVersion,
		Status:    "active",
		Timestamp: models.Now(),
		Statistics: dto.StatusStatistics{
			TotalStudents:   len(students),
			TotalAttendance: len(attendance),
			TotalGrades:     len(grades),
			TotalSyncs:      len(history),
		},
		Endpoints: Endpoints,
	}, nil
}
