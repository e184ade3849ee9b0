package repository

import (
	"context"

	"github.com/soran-institute/institute-api/internal/models"
)

// Store is the persistence boundary for the four record collections. Reads
// return the current snapshot; writes replace a collection wholesale. The
// file-backed implementation is the production default, the in-memory one
// serves tests and throwaway deployments.
type Store interface {
	ReadStudents(ctx context.Context) ([]models.Student, error)
	WriteStudents(ctx context.Context, records []models.Student) error

	ReadAttendance(ctx context.Context) ([]models.AttendanceRecord, error)
	WriteAttendance(ctx context.Context, records []models.AttendanceRecord) error

	ReadGrades(ctx context.Context) ([]models.GradeRecord, error)
	WriteGrades(ctx context.Context, records []models.GradeRecord) error

	ReadSyncHistory(ctx context.Context) ([]models.SyncRecord, error)
	WriteSyncHistory(ctx context.Context, records []models.SyncRecord) error

	// Exclusive runs fn while holding the store's mutation lock, serialising
	// read-modify-write cycles within this process. It does not protect
	// against concurrent writers in other processes.
	Exclusive(fn func() error) error
}
