package models

// Student represents a learner registered at the institute.
type Student struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FatherName string `json:"fatherName"`
	Level      string `json:"level"`
	Group      string `json:"group"`
	Phone      string `json:"phone,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
	ImportedAt string `json:"importedAt,omitempty"`
	Source     string `json:"source,omitempty"`
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Level  string
	Group  string
	Search string
}

// GradeRecord is populated externally; the API only reads and bulk-wipes it.
type GradeRecord struct {
	ID         string  `json:"id"`
	StudentID  string  `json:"studentId"`
	Course     string  `json:"course,omitempty"`
	CourseName string  `json:"courseName,omitempty"`
	TotalGrade float64 `json:"totalGrade"`
}
