package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

const (
	defaultSource   = "teacher-system"
	defaultSyncType = "unknown"
)

type syncObserver interface {
	ObserveSync(success bool, counts models.SyncCounts)
}

// BackupService merges backup batches from the teacher system into the
// local collections and records every attempt in the sync history.
type BackupService struct {
	store   repository.Store
	metrics syncObserver
	logger  *zap.Logger
}

// NewBackupService constructs the backup service. metrics may be nil.
func NewBackupService(store repository.Store, metrics syncObserver, logger *zap.Logger) *BackupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupService{store: store, metrics: metrics, logger: logger}
}

// Apply merges a backup batch into the store. Each incoming student is
// matched by id, each attendance entry by explicit id or the
// (studentId, date, course) triple; first linear match wins. Matched records
// are shallow-merged (carried fields override), unmatched ones appended.
// Exactly one sync record is written per call, success or failure.
func (s *BackupService) Apply(ctx context.Context, batch dto.BackupBatch) (*dto.BackupResponse, error) {
	source := batch.Source
	if source == "" {
		source = defaultSource
	}
	syncType := batch.SyncType
	if syncType == "" {
		syncType = defaultSyncType
	}

	counts := models.SyncCounts{
		StudentsCount:   len(batch.Students),
		AttendanceCount: len(batch.Attendance),
	}

	var resp *dto.BackupResponse
	err := s.store.Exclusive(func() error {
		students, err := s.store.ReadStudents(ctx)
		if err != nil {
			return err
		}
		attendance, err := s.store.ReadAttendance(ctx)
		if err != nil {
			return err
		}
		history, err := s.store.ReadSyncHistory(ctx)
		if err != nil {
			return err
		}

		now := models.Now()

		for _, in := range batch.Students {
			idx := findStudentIndex(students, in.ID)
			if idx == -1 {
				students = append(students, newStudentFromBatch(in, now, source))
				counts.ImportedStudents++
				continue
			}
			mergeStudent(&students[idx], in, now, source)
			s.logger.Debug("student updated from backup", zap.String("id", in.ID))
		}

		for _, in := range batch.Attendance {
			effectiveID := in.EffectiveID()
			idx := findAttendanceIndex(attendance, in, effectiveID)
			if idx == -1 {
				attendance = append(attendance, newAttendanceFromBatch(in, effectiveID, now, source))
				counts.ImportedAttendance++
				continue
			}
			mergeAttendance(&attendance[idx], in, now, source)
			counts.UpdatedAttendance++
		}

		record := models.SyncRecord{
			ID:        uuid.NewString(),
			Timestamp: now,
			Source:    source,
			SyncType:  syncType,
			Data:      counts,
			Success:   true,
		}
		history = append(history, record)

		if err := s.store.WriteStudents(ctx, students); err != nil {
			return err
		}
		if err := s.store.WriteAttendance(ctx, attendance); err != nil {
			return err
		}
		if err := s.store.WriteSyncHistory(ctx, history); err != nil {
			return err
		}

		resp = &dto.BackupResponse{
			Success: true,
			Message: "backup received and merged",
			Summary: dto.BackupSummary{
				ImportedStudents:   counts.ImportedStudents,
				ImportedAttendance: counts.ImportedAttendance,
				UpdatedAttendance:  counts.UpdatedAttendance,
				TotalStudents:      len(students),
				TotalAttendance:    len(attendance),
			},
			SyncID:    record.ID,
			Timestamp: record.Timestamp,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("backup merge failed", zap.Error(err))
		s.recordFailure(ctx, source, syncType, err)
		if s.metrics != nil {
			s.metrics.ObserveSync(false, counts)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to apply backup")
	}
	if s.metrics != nil {
		s.metrics.ObserveSync(true, counts)
	}
	return resp, nil
}

// recordFailure appends a failure entry to the sync history, inside the
// store's exclusive section so a concurrent merge cannot drop it. Best
// effort: a store that cannot persist the merge may not persist the audit
// entry either.
func (s *BackupService) recordFailure(ctx context.Context, source, syncType string, cause error) {
	err := s.store.Exclusive(func() error {
		history, err := s.store.ReadSyncHistory(ctx)
		if err != nil {
			return err
		}
		history = append(history, models.SyncRecord{
			ID:        uuid.NewString(),
			Timestamp: models.Now(),
			Source:    source,
			SyncType:  syncType,
			Error:     cause.Error(),
			Success:   false,
		})
		return s.store.WriteSyncHistory(ctx, history)
	})
	if err != nil {
		s.logger.Error("failure sync record not persisted", zap.Error(err))
	}
}

func findStudentIndex(students []models.Student, id string) int {
	for i := range students {
		if students[i].ID == id {
			return i
		}
	}
	return -1
}

// findAttendanceIndex matches by effective id or by the
// (studentId, date, course-or-courseName) triple, returning the first hit.
func findAttendanceIndex(attendance []models.AttendanceRecord, in dto.AttendanceUpsert, effectiveID string) int {
	course := strValue(in.Course)
	courseName := strValue(in.CourseName)
	for i := range attendance {
		a := &attendance[i]
		if a.ID == effectiveID {
			return i
		}
		if a.StudentID == in.StudentID && a.Date == in.Date && (a.Course == course || a.CourseName == courseName) {
			return i
		}
	}
	return -1
}

func newStudentFromBatch(in dto.StudentUpsert, now, source string) models.Student {
	return models.Student{
		ID:         in.ID,
		Name:       strValue(in.Name),
		FatherName: strValue(in.FatherName),
		Level:      strValue(in.Level),
		Group:      strValue(in.Group),
		Phone:      strValue(in.Phone),
		CreatedAt:  strValue(in.CreatedAt),
		UpdatedAt:  strValue(in.UpdatedAt),
		ImportedAt: now,
		Source:     source,
	}
}

func mergeStudent(existing *models.Student, in dto.StudentUpsert, now, source string) {
	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.FatherName != nil {
		existing.FatherName = *in.FatherName
	}
	if in.Level != nil {
		existing.Level = *in.Level
	}
	if in.Group != nil {
		existing.Group = *in.Group
	}
	if in.Phone != nil {
		existing.Phone = *in.Phone
	}
	if in.CreatedAt != nil {
		existing.CreatedAt = *in.CreatedAt
	}
	// The incoming updatedAt is superseded by the merge time.
	existing.UpdatedAt = now
	existing.Source = source
}

func newAttendanceFromBatch(in dto.AttendanceUpsert, effectiveID, now, source string) models.AttendanceRecord {
	return models.AttendanceRecord{
		ID:         effectiveID,
		StudentID:  in.StudentID,
		Date:       in.Date,
		Course:     strValue(in.Course),
		CourseName: batchCourseName(in),
		Present:    in.Present != nil && *in.Present,
		Hours:      batchHours(in),
		ImportedAt: now,
		Source:     source,
		Synced:     true,
	}
}

func mergeAttendance(existing *models.AttendanceRecord, in dto.AttendanceUpsert, now, source string) {
	if in.ID != "" {
		existing.ID = in.ID
	}
	if in.StudentID != "" {
		existing.StudentID = in.StudentID
	}
	if in.Date != "" {
		existing.Date = in.Date
	}
	if in.Course != nil {
		existing.Course = *in.Course
	}
	if in.Present != nil {
		existing.Present = *in.Present
	}
	// courseName and hours are always recomputed from the incoming record,
	// matching the source system's merge behavior.
	existing.CourseName = batchCourseName(in)
	existing.Hours = batchHours(in)
	existing.UpdatedAt = now
	existing.Source = source
	existing.Synced = true
}

// batchCourseName prefers course over courseName from the incoming record.
func batchCourseName(in dto.AttendanceUpsert) string {
	if name := strValue(in.Course); name != "" {
		return name
	}
	return strValue(in.CourseName)
}

// batchHours defaults missing or zero hours to one absence hour when the
// record explicitly marks the student absent, zero otherwise.
func batchHours(in dto.AttendanceUpsert) float64 {
	if in.Hours != nil && *in.Hours != 0 {
		return *in.Hours
	}
	if in.Present != nil && !*in.Present {
		return 1
	}
	return 0
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
