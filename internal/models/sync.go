package models

// SyncCounts summarises one backup merge.
type SyncCounts struct {
	StudentsCount      int `json:"studentsCount"`
	AttendanceCount    int `json:"attendanceCount"`
	ImportedStudents   int `json:"importedStudents"`
	ImportedAttendance int `json:"importedAttendance"`
	UpdatedAttendance  int `json:"updatedAttendance"`
}

// SyncRecord is an append-only audit entry written once per backup attempt,
// success or failure. Never mutated; only removed by a bulk wipe.
type SyncRecord struct {
	ID        string     `json:"id"`
	Timestamp string     `json:"timestamp"`
	Source    string     `json:"source"`
	SyncType  string     `json:"syncType"`
	Data      SyncCounts `json:"data"`
	Success   bool       `json:"success"`
	Error     string     `json:"error,omitempty"`
}
