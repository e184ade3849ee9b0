package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
)

func strPtr(s string) *string    { return &s }
func boolPtr(b bool) *bool       { return &b }
func floatPtr(f float64) *float64 { return &f }

func sampleBatch() dto.BackupBatch {
	return dto.BackupBatch{
		Source:   "teacher-app",
		SyncType: "daily",
		Students: []dto.StudentUpsert{
			{ID: "s1", Name: strPtr("Ali"), FatherName: strPtr("Omar"), Level: strPtr("1"), Group: strPtr("A")},
		},
		Attendance: []dto.AttendanceUpsert{
			{StudentID: "s1", Date: "2024-01-01", Course: strPtr("Math"), Present: boolPtr(false)},
		},
	}
}

func TestBackupApplyImportsNewRecords(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewBackupService(store, nil, zap.NewNop())

	resp, err := svc.Apply(context.Background(), sampleBatch())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.ImportedStudents)
	assert.Equal(t, 1, resp.Summary.ImportedAttendance)
	assert.Equal(t, 0, resp.Summary.UpdatedAttendance)
	assert.Equal(t, 1, resp.Summary.TotalStudents)
	assert.Equal(t, 1, resp.Summary.TotalAttendance)
	assert.NotEmpty(t, resp.SyncID)

	students, _ := store.ReadStudents(context.Background())
	require.Len(t, students, 1)
	assert.Equal(t, "teacher-app", students[0].Source)
	assert.NotEmpty(t, students[0].ImportedAt)
	assert.Empty(t, students[0].UpdatedAt)
}

func TestBackupApplyIsIdempotentOnSecondSubmission(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewBackupService(store, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Apply(ctx, sampleBatch())
	require.NoError(t, err)

	resp, err := svc.Apply(ctx, sampleBatch())
	require.NoError(t, err)

	// Matched student is updated but not counted; matched attendance counts
	// as updated, never as imported.
	assert.Equal(t, 0, resp.Summary.ImportedStudents)
	assert.Equal(t, 0, resp.Summary.ImportedAttendance)
	assert.Equal(t, 1, resp.Summary.UpdatedAttendance)
	assert.Equal(t, 1, resp.Summary.TotalStudents)
	assert.Equal(t, 1, resp.Summary.TotalAttendance)
}

func TestBackupApplyMatchesAttendanceByDerivedKey(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewBackupService(store, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Apply(ctx, dto.BackupBatch{Attendance: []dto.AttendanceUpsert{
		{StudentID: "s1", Date: "2024-01-01", Course: strPtr("Math"), Present: boolPtr(false)},
	}})
	require.NoError(t, err)

	// Same logical record submitted with an explicit matching id.
	resp, err := svc.Apply(ctx, dto.BackupBatch{Attendance: []dto.AttendanceUpsert{
		{ID: "s1-2024-01-01-Math", StudentID: "s1", Date: "2024-01-01", Course: strPtr("Math"), Present: boolPtr(true)},
	}})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Summary.ImportedAttendance)
	assert.Equal(t, 1, resp.Summary.UpdatedAttendance)

	records, _ := store.ReadAttendance(ctx)
	require.Len(t, records, 1)
	assert.True(t, records[0].Present)
	assert.NotEmpty(t, records[0].UpdatedAt)
}

func TestBackupApplyDefaultsHours(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewBackupService(store, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Apply(ctx, dto.BackupBatch{Attendance: []dto.AttendanceUpsert{
		{StudentID: "s1", Date: "2024-01-01", Course: strPtr("Math"), Present: boolPtr(false)},
		{StudentID: "s2", Date: "2024-01-01", Course: strPtr("Math"), Present: boolPtr(true)},
		{StudentID: "s3", Date: "2024-01-01", Course: strPtr("Math"), Present: boolPtr(false), Hours: floatPtr(3)},
		{StudentID: "s4", Date: "2024-01-01", Course: strPtr("Math")},
	}})
	require.NoError(t, err)

	records, _ := store.ReadAttendance(ctx)
	require.Len(t, records, 4)
	byStudent := make(map[string]models.AttendanceRecord)
	for _, record := range records {
		byStudent[record.StudentID] = record
	}
	assert.Equal(t, 1.0, byStudent["s1"].Hours) // absent without hours
	assert.Equal(t, 0.0, byStudent["s2"].Hours) // present without hours
	assert.Equal(t, 3.0, byStudent["s3"].Hours) // explicit hours win
	assert.Equal(t, 0.0, byStudent["s4"].Hours) // no presence flag at all
}

func TestBackupApplyPrefersCourseForCourseName(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewBackupService(store, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Apply(ctx, dto.BackupBatch{Attendance: []dto.AttendanceUpsert{
		{StudentID: "s1", Date: "2024-01-01", Course: strPtr("Math"), CourseName: strPtr("Mathematics")},
		{StudentID: "s2", Date: "2024-01-01", CourseName: strPtr("Physics")},
	}})
	require.NoError(t, err)

	records, _ := store.ReadAttendance(ctx)
	require.Len(t, records, 2)
	byStudent := make(map[string]models.AttendanceRecord)
	for _, record := range records {
		byStudent[record.StudentID] = record
	}
	assert.Equal(t, "Math", byStudent["s1"].CourseName)
	assert.Equal(t, "Physics", byStudent["s2"].CourseName)
	assert.Equal(t, "s2-2024-01-01-Physics", byStudent["s2"].ID)
}

func TestBackupApplyMergesStudentFields(t *testing.T) {
	store := repository.NewMemoryStore()
	require.NoError(t, store.WriteStudents(context.Background(), []models.Student{
		{ID: "s1", Name: "Ali", FatherName: "Omar", Level: "1", Group: "A", Phone: "0750"},
	}))
	svc := NewBackupService(store, nil, zap.NewNop())

	_, err := svc.Apply(context.Background(), dto.BackupBatch{Students: []dto.StudentUpsert{
		{ID: "s1", Name: strPtr("Ali Hassan"), Level: strPtr("2")},
	}})
	require.NoError(t, err)

	students, _ := store.ReadStudents(context.Background())
	require.Len(t, students, 1)
	assert.Equal(t, "Ali Hassan", students[0].Name)
	assert.Equal(t, "2", students[0].Level)
	// Fields the batch did not carry stay untouched.
	assert.Equal(t, "Omar", students[0].FatherName)
	assert.Equal(t, "0750", students[0].Phone)
	assert.NotEmpty(t, students[0].UpdatedAt)
}

func TestBackupApplyCarriesLegacyTimestamps(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewBackupService(store, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Apply(ctx, dto.BackupBatch{Students: []dto.StudentUpsert{
		{ID: "s1", Name: strPtr("Ali"), CreatedAt: strPtr("2023-09-01 09:00:00"), UpdatedAt: strPtr("2023-09-02 09:00:00")},
	}})
	require.NoError(t, err)

	students, _ := store.ReadStudents(ctx)
	require.Len(t, students, 1)
	assert.Equal(t, "2023-09-01 09:00:00", students[0].CreatedAt)
	assert.Equal(t, "2023-09-02 09:00:00", students[0].UpdatedAt)

	// On a matched student the carried createdAt still lands, but the merge
	// time supersedes the carried updatedAt.
	_, err = svc.Apply(ctx, dto.BackupBatch{Students: []dto.StudentUpsert{
		{ID: "s1", CreatedAt: strPtr("2023-08-01 08:00:00"), UpdatedAt: strPtr("2023-09-03 09:00:00")},
	}})
	require.NoError(t, err)

	students, _ = store.ReadStudents(ctx)
	require.Len(t, students, 1)
	assert.Equal(t, "2023-08-01 08:00:00", students[0].CreatedAt)
	assert.NotEqual(t, "2023-09-03 09:00:00", students[0].UpdatedAt)
	assert.NotEmpty(t, students[0].UpdatedAt)
}

func TestBackupApplyAppendsExactlyOneSyncRecord(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewBackupService(store, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Apply(ctx, sampleBatch())
	require.NoError(t, err)
	_, err = svc.Apply(ctx, sampleBatch())
	require.NoError(t, err)

	history, _ := store.ReadSyncHistory(ctx)
	require.Len(t, history, 2)
	assert.True(t, history[0].Success)
	assert.Equal(t, "daily", history[0].SyncType)
	assert.Equal(t, 1, history[0].Data.ImportedStudents)
	assert.Equal(t, 1, history[1].Data.UpdatedAttendance)
}

type failingStore struct {
	repository.Store
	failStudents   bool
	exclusiveCalls int
}

func (f *failingStore) WriteStudents(ctx context.Context, records []models.Student) error {
	if f.failStudents {
		return errors.New("disk full")
	}
	return f.Store.WriteStudents(ctx, records)
}

func (f *failingStore) Exclusive(fn func() error) error {
	f.exclusiveCalls++
	return f.Store.Exclusive(fn)
}

func TestBackupApplyRecordsFailureInSyncHistory(t *testing.T) {
	store := &failingStore{Store: repository.NewMemoryStore(), failStudents: true}
	svc := NewBackupService(store, nil, zap.NewNop())

	_, err := svc.Apply(context.Background(), sampleBatch())
	require.Error(t, err)

	history, _ := store.ReadSyncHistory(context.Background())
	require.Len(t, history, 1)
	assert.False(t, history[0].Success)
	assert.Contains(t, history[0].Error, "disk full")
	// The failure audit append runs in its own exclusive section so a
	// concurrent merge cannot interleave and drop it.
	assert.Equal(t, 2, store.exclusiveCalls)
}

func TestBackupApplyDefaultsSourceAndSyncType(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewBackupService(store, nil, zap.NewNop())

	_, err := svc.Apply(context.Background(), dto.BackupBatch{Students: []dto.StudentUpsert{
		{ID: "s1", Name: strPtr("Ali")},
	}})
	require.NoError(t, err)

	history, _ := store.ReadSyncHistory(context.Background())
	require.Len(t, history, 1)
	assert.Equal(t, "teacher-system", history[0].Source)
	assert.Equal(t, "unknown", history[0].SyncType)
}
