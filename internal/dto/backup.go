package dto

import "github.com/soran-institute/institute-api/internal/models"

// BackupBatch is the payload the teacher-side source system POSTs to
// /api/backup. Upsert fields are pointers so the merge can tell an absent
// field from a zero value.
type BackupBatch struct {
	Test       bool               `json:"test"`
	Source     string             `json:"source"`
	SyncType   string             `json:"syncType"`
	BackupDate string             `json:"backupDate"`
	Students   []StudentUpsert    `json:"students"`
	Attendance []AttendanceUpsert `json:"attendance"`
}

// StudentUpsert carries one student from a backup batch. The legacy
// timestamps ride along so an imported student round-trips through the data
// files unchanged.
type StudentUpsert struct {
	ID         string  `json:"id"`
	Name       *string `json:"name"`
	FatherName *string `json:"fatherName"`
	Level      *string `json:"level"`
	Group      *string `json:"group"`
	Phone      *string `json:"phone"`
	CreatedAt  *string `json:"createdAt"`
	UpdatedAt  *string `json:"updatedAt"`
}

// AttendanceUpsert carries one attendance entry from a backup batch.
type AttendanceUpsert struct {
	ID         string   `json:"id"`
	StudentID  string   `json:"studentId"`
	Date       string   `json:"date"`
	Course     *string  `json:"course"`
	CourseName *string  `json:"courseName"`
	Present    *bool    `json:"present"`
	Hours      *float64 `json:"hours"`
}

// EffectiveID returns the explicit id when the batch supplied one, else the
// deterministic studentId-date-course key.
func (a AttendanceUpsert) EffectiveID() string {
	if a.ID != "" {
		return a.ID
	}
	course := ""
	if a.Course != nil {
		course = *a.Course
	}
	if course == "" && a.CourseName != nil {
		course = *a.CourseName
	}
	return a.StudentID + "-" + a.Date + "-" + course
}

// BackupSummary reports merge outcome counts. Student updates are
// deliberately not counted, matching the contract the source system expects.
type BackupSummary struct {
	ImportedStudents   int `json:"importedStudents"`
	ImportedAttendance int `json:"importedAttendance"`
	UpdatedAttendance  int `json:"updatedAttendance"`
	TotalStudents      int `json:"totalStudents"`
	TotalAttendance    int `json:"totalAttendance"`
}

// BackupResponse is the /api/backup success body.
type BackupResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Summary   BackupSummary `json:"summary"`
	SyncID    string        `json:"syncId"`
	Timestamp string        `json:"timestamp"`
}

// BackupTestResponse answers connectivity checks ({"test": true} batches).
type BackupTestResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Test      bool   `json:"test"`
	Timestamp string `json:"timestamp"`
}

// SyncHistoryStatistics aggregates the full audit log.
type SyncHistoryStatistics struct {
	SuccessfulSyncs int    `json:"successfulSyncs"`
	FailedSyncs     int    `json:"failedSyncs"`
	SuccessRate     string `json:"successRate"`
}

// SyncHistoryResponse is the /api/sync-history body, newest first.
type SyncHistoryResponse struct {
	Success    bool                  `json:"success"`
	Count      int                   `json:"count"`
	Total      int                   `json:"total"`
	Statistics SyncHistoryStatistics `json:"statistics"`
	History    []models.SyncRecord   `json:"history"`
	Timestamp  string                `json:"timestamp"`
}
