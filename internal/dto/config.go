package dto

// SystemInfo identifies the deployment for client display.
type SystemInfo struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	APIVersion string `json:"apiVersion"`
}

// FilterConfig carries the distinct values clients use to populate filters.
type FilterConfig struct {
	Levels      []string   `json:"levels"`
	Groups      []string   `json:"groups"`
	Courses     []string   `json:"courses"`
	RecentDates []string   `json:"recentDates"`
	SystemInfo  SystemInfo `json:"systemInfo"`
}

// ConfigResponse is the /api/config body.
type ConfigResponse struct {
	Success   bool         `json:"success"`
	Config    FilterConfig `json:"config"`
	Timestamp string       `json:"timestamp"`
}

// StatusStatistics carries collection sizes for the status endpoint.
type StatusStatistics struct {
	TotalStudents   int `json:"totalStudents"`
	TotalAttendance int `json:"totalAttendance"`
	TotalGrades     int `json:"totalGrades"`
	TotalSyncs      int `json:"totalSyncs"`
}

// StatusResponse is the /api/status body.
type StatusResponse struct {
	Success    bool             `json:"success"`
	System     string           `json:"system"`
	Version    string           `json:"version"`
	Status     string           `json:"status"`
	Timestamp  string           `json:"timestamp"`
	Statistics StatusStatistics `json:"statistics"`
	Endpoints  []string         `json:"endpoints"`
}

// WipeRequest carries the admin password for DELETE /api/data/:type.
type WipeRequest struct {
	Password string `json:"password"`
}

// WipeResponse confirms a completed wipe.
type WipeResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
