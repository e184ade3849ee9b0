package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/models"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
)

func exportFixture(t *testing.T) *ExportService {
	t.Helper()
	reports := NewReportService(reportFixture(t), zap.NewNop())
	return NewExportService(reports, zap.NewNop())
}

func TestExportAttendanceReportCSV(t *testing.T) {
	svc := exportFixture(t)

	file, err := svc.AttendanceReport(context.Background(), models.ReportFilter{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "attendance-report-"))
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

	body := string(file.Data)
	assert.Contains(t, body, "Date,Student,Father Name,Level,Group,Course,Present,Hours")
	assert.Contains(t, body, "Ali")
	assert.Contains(t, body, "unknown")
}

func TestExportAttendanceReportDefaultsToCSV(t *testing.T) {
	svc := exportFixture(t)

	file, err := svc.AttendanceReport(context.Background(), models.ReportFilter{}, "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
}

func TestExportAttendanceReportPDF(t *testing.T) {
	svc := exportFixture(t)

	file, err := svc.AttendanceReport(context.Background(), models.ReportFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	require.True(t, len(file.Data) > 4)
	assert.Equal(t, "%PDF", string(file.Data[:4]))
}

func TestExportAttendanceReportUnknownFormat(t *testing.T) {
	svc := exportFixture(t)

	_, err := svc.AttendanceReport(context.Background(), models.ReportFilter{}, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
