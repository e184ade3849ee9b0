package dto

import "github.com/soran-institute/institute-api/internal/models"

// AttendanceStatistics aggregates a filtered attendance selection.
type AttendanceStatistics struct {
	PresentCount   int    `json:"presentCount"`
	AbsentCount    int    `json:"absentCount"`
	AttendanceRate string `json:"attendanceRate"`
}

// AttendanceListResponse is the /api/attendance body.
type AttendanceListResponse struct {
	Success    bool                      `json:"success"`
	Count      int                       `json:"count"`
	Total      int                       `json:"total"`
	Statistics AttendanceStatistics      `json:"statistics"`
	Attendance []models.AttendanceRecord `json:"attendance"`
	Timestamp  string                    `json:"timestamp"`
}

// ReportRow is one attendance record joined with the current student record.
// Dangling student references keep the row with an "unknown" student name.
type ReportRow struct {
	models.AttendanceRecord
	StudentName       string `json:"studentName"`
	StudentFatherName string `json:"studentFatherName"`
	StudentLevel      string `json:"studentLevel"`
	StudentGroup      string `json:"studentGroup"`
}

// ReportSummary describes the report scope and its aggregate counts. Absent
// filters surface as the label "all".
type ReportSummary struct {
	Date           string `json:"date"`
	Course         string `json:"course"`
	Level          string `json:"level"`
	Group          string `json:"group"`
	TotalStudents  int    `json:"totalStudents"`
	PresentCount   int    `json:"presentCount"`
	AbsentCount    int    `json:"absentCount"`
	AttendanceRate string `json:"attendanceRate"`
}

// ReportResponse is the /api/reports/attendance body.
type ReportResponse struct {
	Success   bool          `json:"success"`
	Report    ReportSummary `json:"report"`
	Data      []ReportRow   `json:"data"`
	Timestamp string        `json:"timestamp"`
}
