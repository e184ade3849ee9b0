package dto

import "github.com/soran-institute/institute-api/internal/models"

// StudentListResponse is the /api/students body.
type StudentListResponse struct {
	Success   bool             `json:"success"`
	Count     int              `json:"count"`
	Total     int              `json:"total"`
	Students  []models.Student `json:"students"`
	Timestamp string           `json:"timestamp"`
}

// CreateStudentRequest holds the payload for registering a student via API.
type CreateStudentRequest struct {
	Name       string `json:"name" validate:"required"`
	FatherName string `json:"fatherName" validate:"required"`
	Level      string `json:"level" validate:"required"`
	Group      string `json:"group" validate:"required"`
	Phone      string `json:"phone"`
}

// CreateStudentResponse is the /api/students creation body.
type CreateStudentResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Student   models.Student `json:"student"`
	Timestamp string         `json:"timestamp"`
}

// StudentSummary is the student record enriched with aggregate counters.
type StudentSummary struct {
	models.Student
	AttendanceCount int    `json:"attendanceCount"`
	AbsencesCount   int    `json:"absencesCount"`
	GradesCount     int    `json:"gradesCount"`
	AverageGrade    string `json:"averageGrade"`
}

// StudentStatistics repeats the aggregate block of the detail body.
type StudentStatistics struct {
	TotalAttendance int    `json:"totalAttendance"`
	TotalAbsences   int    `json:"totalAbsences"`
	TotalGrades     int    `json:"totalGrades"`
	AverageGrade    string `json:"averageGrade"`
}

// StudentDetailResponse is the /api/students/:id body with the last ten
// attendance and grade entries joined in.
type StudentDetailResponse struct {
	Success    bool                      `json:"success"`
	Student    StudentSummary            `json:"student"`
	Attendance []models.AttendanceRecord `json:"attendance"`
	Grades     []models.GradeRecord      `json:"grades"`
	Statistics StudentStatistics         `json:"statistics"`
	Timestamp  string                    `json:"timestamp"`
}
