package repository

import (
	"context"
	"sync"

	"github.com/soran-institute/institute-api/internal/models"
)

// MemoryStore holds the collections in process memory. It mirrors FileStore
// behavior (empty collections by default, whole-collection writes) and backs
// the deterministic service tests.
type MemoryStore struct {
	mu  sync.RWMutex
	txn sync.Mutex

	students    []models.Student
	attendance  []models.AttendanceRecord
	grades      []models.GradeRecord
	syncHistory []models.SyncRecord
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ReadStudents(_ context.Context) ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out, nil
}

func (s *MemoryStore) WriteStudents(_ context.Context, records []models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = make([]models.Student, len(records))
	copy(s.students, records)
	return nil
}

func (s *MemoryStore) ReadAttendance(_ context.Context) ([]models.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AttendanceRecord, len(s.attendance))
	copy(out, s.attendance)
	return out, nil
}

func (s *MemoryStore) WriteAttendance(_ context.Context, records []models.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance = make([]models.AttendanceRecord, len(records))
	copy(s.attendance, records)
	return nil
}

func (s *MemoryStore) ReadGrades(_ context.Context) ([]models.GradeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GradeRecord, len(s.grades))
	copy(out, s.grades)
	return out, nil
}

func (s *MemoryStore) WriteGrades(_ context.Context, records []models.GradeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grades = make([]models.GradeRecord, len(records))
	copy(s.grades, records)
	return nil
}

func (s *MemoryStore) ReadSyncHistory(_ context.Context) ([]models.SyncRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SyncRecord, len(s.syncHistory))
	copy(out, s.syncHistory)
	return out, nil
}

func (s *MemoryStore) WriteSyncHistory(_ context.Context, records []models.SyncRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncHistory = make([]models.SyncRecord, len(records))
	copy(s.syncHistory, records)
	return nil
}

// Exclusive serialises mutating request cycles.
func (s *MemoryStore) Exclusive(fn func() error) error {
	s.txn.Lock()
	defer s.txn.Unlock()
	return fn()
}
