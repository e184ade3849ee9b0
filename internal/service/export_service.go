package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/soran-institute/institute-api/internal/dto"
	"github.com/soran-institute/institute-api/internal/models"
	appErrors "github.com/soran-institute/institute-api/pkg/errors"
	"github.com/soran-institute/institute-api/pkg/export"
)

type reportProvider interface {
	Attendance(ctx context.Context, filter models.ReportFilter) (*dto.ReportResponse, error)
}

// ExportFile is a rendered report ready to stream as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the attendance report as a downloadable file.
type ExportService struct {
	reports reportProvider
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(reports reportProvider, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		reports: reports,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

var reportHeaders = []string{"Date", "Student", "Father Name", "Level", "Group", "Course", "Present", "Hours"}

// AttendanceReport renders the joined report in the requested format
// ("csv" or "pdf"; empty defaults to csv).
func (s *ExportService) AttendanceReport(ctx context.Context, filter models.ReportFilter, format string) (*ExportFile, error) {
	report, err := s.reports.Attendance(ctx, filter)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: reportHeaders, Rows: make([]map[string]string, 0, len(report.Data))}
	for _, row := range report.Data {
		course := row.Course
		if course == "" {
			course = row.CourseName
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Date":        row.Date,
			"Student":     row.StudentName,
			"Father Name": row.StudentFatherName,
			"Level":       row.StudentLevel,
			"Group":       row.StudentGroup,
			"Course":      course,
			"Present":     strconv.FormatBool(row.Present),
			"Hours":       strconv.FormatFloat(row.Hours, 'f', -1, 64),
		})
	}

	stamp := time.Now().Format("20060102-150405")
	switch format {
	case "", "csv":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("attendance-report-%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case "pdf":
		data, err := s.pdf.Render(dataset, "Attendance Report")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("attendance-report-%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
