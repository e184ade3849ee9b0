package repository

import (
	"context"
	"time"

	"github.com/soran-institute/institute-api/internal/models"
)

// StoreObserver receives timing for collection reads and writes.
type StoreObserver interface {
	ObserveStoreOperation(operation string, duration time.Duration)
}

// InstrumentedStore decorates a Store with operation timing.
type InstrumentedStore struct {
	inner    Store
	observer StoreObserver
}

// Instrument wraps store; a nil observer returns store unchanged.
func Instrument(store Store, observer StoreObserver) Store {
	if observer == nil {
		return store
	}
	return &InstrumentedStore{inner: store, observer: observer}
}

func (s *InstrumentedStore) ReadStudents(ctx context.Context) ([]models.Student, error) {
	defer s.observe("read_students", time.Now())
	return s.inner.ReadStudents(ctx)
}

func (s *InstrumentedStore) WriteStudents(ctx context.Context, records []models.Student) error {
	defer s.observe("write_students", time.Now())
	return s.inner.WriteStudents(ctx, records)
}

func (s *InstrumentedStore) ReadAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	defer s.observe("read_attendance", time.Now())
	return s.inner.ReadAttendance(ctx)
}

func (s *InstrumentedStore) WriteAttendance(ctx context.Context, records []models.AttendanceRecord) error {
	defer s.observe("write_attendance", time.Now())
	return s.inner.WriteAttendance(ctx, records)
}

func (s *InstrumentedStore) ReadGrades(ctx context.Context) ([]models.GradeRecord, error) {
	defer s.observe("read_grades", time.Now())
	return s.inner.ReadGrades(ctx)
}

func (s *InstrumentedStore) WriteGrades(ctx context.Context, records []models.GradeRecord) error {
	defer s.observe("write_grades", time.Now())
	return s.inner.WriteGrades(ctx, records)
}

func (s *InstrumentedStore) ReadSyncHistory(ctx context.Context) ([]models.SyncRecord, error) {
	defer s.observe("read_sync_history", time.Now())
	return s.inner.ReadSyncHistory(ctx)
}

func (s *InstrumentedStore) WriteSyncHistory(ctx context.Context, records []models.SyncRecord) error {
	defer s.observe("write_sync_history", time.Now())
	return s.inner.WriteSyncHistory(ctx, records)
}

func (s *InstrumentedStore) Exclusive(fn func() error) error {
	return s.inner.Exclusive(fn)
}

func (s *InstrumentedStore) observe(operation string, start time.Time) {
	s.observer.ObserveStoreOperation(operation, time.Since(start))
}
