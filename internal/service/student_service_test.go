package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

func seedStudents(t *testing.T, store repository.Store) {
	t.Helper()
	require.NoError(t, store.WriteStudents(context.Background(), []models.Student{
		{ID: "s1", Name: "Ali Hassan", FatherName: "Omar", Level: "1", Group: "A"},
		{ID: "s2", Name: "Sara", FatherName: "Karim", Level: "2", Group: "A"},
		{ID: "s3", Name: "Dilan", FatherName: "Alan", Level: "1", Group: "B"},
	}))
}

func TestStudentListFilters(t *testing.T) {
	store := repository.NewMemoryStore()
	seedStudents(t, store)
	svc := NewStudentService(store, nil, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.List(ctx, models.StudentFilter{Level: "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 3, resp.Total)

	resp, err = svc.List(ctx, models.StudentFilter{Level: "1", Group: "B"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Dilan", resp.Students[0].Name)
}

func TestStudentListSearchIsCaseInsensitive(t *testing.T) {
	store := repository.NewMemoryStore()
	seedStudents(t, store)
	svc := NewStudentService(store, nil, zap.NewNop())

	// "AL" hits Ali (name), Dilan (father Alan) via substring.
	resp, err := svc.List(context.Background(), models.StudentFilter{Search: "AL"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
}

func TestStudentCreateValidatesRequiredFields(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewStudentService(store, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), dto.CreateStudentRequest{Name: "Ali"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	students, _ := store.ReadStudents(context.Background())
	assert.Empty(t, students)
}

func TestStudentCreateRejectsDuplicateTriple(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewStudentService(store, nil, zap.NewNop())
	ctx := context.Background()

	req := dto.CreateStudentRequest{Name: "Ali", FatherName: "Omar", Level: "1", Group: "A"}
	resp, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Student.ID)
	assert.Equal(t, "API", resp.Student.Source)

	_, err = svc.Create(ctx, req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	// Same name under a different level is a different student.
	req.Level = "2"
	_, err = svc.Create(ctx, req)
	require.NoError(t, err)

	students, _ := store.ReadStudents(ctx)
	assert.Len(t, students, 2)
}

func TestStudentDetailNotFound(t *testing.T) {
	store := repository.NewMemoryStore()
	seedStudents(t, store)
	svc := NewStudentService(store, nil, zap.NewNop())

	_, err := svc.Detail(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	students, _ := store.ReadStudents(context.Background())
	assert.Len(t, students, 3)
}

func TestStudentDetailAggregates(t *testing.T) {
	store := repository.NewMemoryStore()
	seedStudents(t, store)
	ctx := context.Background()
	require.NoError(t, store.WriteAttendance(ctx, []models.AttendanceRecord{
		{ID: "a1", StudentID: "s1", Date: "2024-01-01", Course: "Math", Present: true},
		{ID: "a2", StudentID: "s1", Date: "2024-01-02", Course: "Math", Present: false, Hours: 1},
		{ID: "a3", StudentID: "s2", Date: "2024-01-01", Course: "Math", Present: true},
	}))
	require.NoError(t, store.WriteGrades(ctx, []models.GradeRecord{
		{ID: "g1", StudentID: "s1", Course: "Math", TotalGrade: 80},
		{ID: "g2", StudentID: "s1", Course: "Physics", TotalGrade: 90},
	}))
	svc := NewStudentService(store, nil, zap.NewNop())

	resp, err := svc.Detail(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Student.AttendanceCount)
	assert.Equal(t, 1, resp.Student.AbsencesCount)
	assert.Equal(t, 2, resp.Student.GradesCount)
	assert.Equal(t, "85.00", resp.Student.AverageGrade)
	assert.Len(t, resp.Attendance, 2)
	assert.Len(t, resp.Grades, 2)
}

func TestStudentDetailCapsHistoryAtTen(t *testing.T) {
	store := repository.NewMemoryStore()
	seedStudents(t, store)
	ctx := context.Background()
	records := make([]models.AttendanceRecord, 0, 12)
	for day := 1; day <= 12; day++ {
		records = append(records, models.AttendanceRecord{
			ID:        string(rune('a' + day)),
			StudentID: "s1",
			Date:      "2024-01-01",
			Course:    "Math",
			Present:   true,
		})
	}
	require.NoError(t, store.WriteAttendance(ctx, records))
	svc := NewStudentService(store, nil, zap.NewNop())

	resp, err := svc.Detail(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, resp.Attendance, 10)
	assert.Equal(t, 12, resp.Statistics.TotalAttendance)
}
