package models

// AttendanceRecord captures one student's presence for a course on a date.
// StudentID is not checked against the student collection; dangling
// references render as "unknown" in joined reads.
type AttendanceRecord struct {
	ID         string  `json:"id"`
	StudentID  string  `json:"studentId"`
	Date       string  `json:"date"`
	Course     string  `json:"course,omitempty"`
	CourseName string  `json:"courseName,omitempty"`
	Present    bool    `json:"present"`
	Hours      float64 `json:"hours"`
	ImportedAt string  `json:"importedAt,omitempty"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
	Source     string  `json:"source,omitempty"`
	Synced     bool    `json:"synced"`
}

// DedupKey returns the identity used to match incoming records against the
// stored collection when the batch carries no explicit id.
func (a AttendanceRecord) DedupKey() string {
	course := a.Course
	if course == "" {
		course = a.CourseName
	}
	return a.StudentID + "-" + a.Date + "-" + course
}

// AttendanceFilter encapsulates the attendance list query parameters.
// FromDate/ToDate bound an inclusive range and only apply together.
type AttendanceFilter struct {
	Date      string
	StudentID string
	Course    string
	FromDate  string
	ToDate    string
}

// ReportFilter selects rows for the joined attendance report.
type ReportFilter struct {
	Date   string
	Course string
	Level  string
	Group  string
}
