package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/models"
	"github.com/soran-institute/institute-api/internal/repository"
)

func reportFixture(t *testing.T) repository.Store {
	t.Helper()
	store := repository.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.WriteStudents(ctx, []models.Student{
		{ID: "s1", Name: "Ali", FatherName: "Omar", Level: "1", Group: "A"},
		{ID: "s2", Name: "Sara", FatherName: "Karim", Level: "2", Group: "B"},
	}))
	require.NoError(t, store.WriteAttendance(ctx, []models.AttendanceRecord{
		{ID: "a1", StudentID: "s1", Date: "2024-01-01", Course: "Math", Present: true},
		{ID: "a2", StudentID: "s2", Date: "2024-01-01", Course: "Math", Present: false, Hours: 1},
		{ID: "a3", StudentID: "gone", Date: "2024-01-01", Course: "Math", Present: true},
	}))
	return store
}

func TestReportJoinsCurrentRoster(t *testing.T) {
	svc := NewReportService(reportFixture(t), zap.NewNop())

	resp, err := svc.Attendance(context.Background(), models.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "Ali", resp.Data[0].StudentName)
	assert.Equal(t, "Omar", resp.Data[0].StudentFatherName)
	assert.Equal(t, "1", resp.Data[0].StudentLevel)
	assert.Equal(t, 3, resp.Report.TotalStudents)
	assert.Equal(t, 2, resp.Report.PresentCount)
	assert.Equal(t, 1, resp.Report.AbsentCount)
	assert.Equal(t, "all", resp.Report.Date)
	assert.Equal(t, "all", resp.Report.Course)
}

func TestReportKeepsDanglingReferencesAsUnknown(t *testing.T) {
	svc := NewReportService(reportFixture(t), zap.NewNop())

	resp, err := svc.Attendance(context.Background(), models.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, "unknown", resp.Data[2].StudentName)
	assert.Empty(t, resp.Data[2].StudentLevel)
}

func TestReportLevelFilterUsesJoinedStudent(t *testing.T) {
	svc := NewReportService(reportFixture(t), zap.NewNop())

	resp, err := svc.Attendance(context.Background(), models.ReportFilter{Level: "2"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Sara", resp.Data[0].StudentName)
	assert.Equal(t, "2", resp.Report.Level)
	// Dangling rows have no level, so the filter drops them too.
	assert.Equal(t, 1, resp.Report.TotalStudents)
}

func TestReportSummaryEchoesFilters(t *testing.T) {
	svc := NewReportService(reportFixture(t), zap.NewNop())

	resp, err := svc.Attendance(context.Background(), models.ReportFilter{Date: "2024-01-01", Course: "Math"})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", resp.Report.Date)
	assert.Equal(t, "Math", resp.Report.Course)
	assert.Equal(t, "all", resp.Report.Group)
}
