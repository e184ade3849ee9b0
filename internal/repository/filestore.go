package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/models"
)

const (
	studentsFile    = "students.json"
	attendanceFile  = "attendance.json"
	gradesFile      = "grades.json"
	syncHistoryFile = "sync_history.json"
)

// FileStore keeps each collection as a JSON array in its own file under a
// data directory. The files are interchanged with the legacy source system
// and read by institute staff, so they stay indented plain JSON.
type FileStore struct {
	dataDir string
	logger  *zap.Logger
	mu      sync.Mutex
}

// NewFileStore ensures the data directory exists and returns a handle.
func NewFileStore(dataDir string, logger *zap.Logger) (*FileStore, error) {
	if dataDir == "" {
		dataDir = "./data"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileStore{dataDir: dataDir, logger: logger}, nil
}

func (s *FileStore) ReadStudents(_ context.Context) ([]models.Student, error) {
	return readCollection[models.Student](s, studentsFile), nil
}

func (s *FileStore) WriteStudents(_ context.Context, records []models.Student) error {
	if records == nil {
		records = []models.Student{}
	}
	return s.writeCollection(studentsFile, records)
}

func (s *FileStore) ReadAttendance(_ context.Context) ([]models.AttendanceRecord, error) {
	return readCollection[models.AttendanceRecord](s, attendanceFile), nil
}

func (s *FileStore) WriteAttendance(_ context.Context, records []models.AttendanceRecord) error {
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return s.writeCollection(attendanceFile, records)
}

func (s *FileStore) ReadGrades(_ context.Context) ([]models.GradeRecord, error) {
	return readCollection[models.GradeRecord](s, gradesFile), nil
}

func (s *FileStore) WriteGrades(_ context.Context, records []models.GradeRecord) error {
	if records == nil {
		records = []models.GradeRecord{}
	}
	return s.writeCollection(gradesFile, records)
}

func (s *FileStore) ReadSyncHistory(_ context.Context) ([]models.SyncRecord, error) {
	return readCollection[models.SyncRecord](s, syncHistoryFile), nil
}

func (s *FileStore) WriteSyncHistory(_ context.Context, records []models.SyncRecord) error {
	if records == nil {
		records = []models.SyncRecord{}
	}
	return s.writeCollection(syncHistoryFile, records)
}

// Exclusive serialises mutating request cycles within this process.
func (s *FileStore) Exclusive(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Path returns the absolute location of a collection file (used in startup
// logging and tests).
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// readCollection loads a JSON array. A missing file is an empty collection;
// an unreadable or unparseable file degrades to empty with a warning instead
// of failing the request. The decode target is discarded on error so a file
// that fails mid-array never leaks partially decoded records.
func readCollection[T any](s *FileStore, name string) []T {
	path := s.Path(name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read collection failed", zap.String("file", name), zap.Error(err))
		}
		return []T{}
	}
	records := []T{}
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("collection file unparseable, treating as empty", zap.String("file", name), zap.Error(err))
		return []T{}
	}
	return records
}

// writeCollection replaces a collection file via temp-file-and-rename so a
// crash mid-write cannot leave a truncated file behind.
func (s *FileStore) writeCollection(name string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dataDir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.Path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
