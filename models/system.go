package models

// TimesheetSummary is the response of GET /api/timesheets
type TimesheetSummary struct {
	Total      int              `json:"total"`
	TotalHours string           `json:"totalHours"`
	Timesheets []TimesheetEntry `json:"timesheets"`
}

// SubmitResult is the response of POST /api/timesheets
type SubmitResult struct {
	Success bool            `json:"success"`
	Entry   *TimesheetEntry `json:"entry"`
}

// SystemInfo is the response of GET /api/info
type SystemInfo struct {
	Version         string `json:"version"`
	DeploymentTime  string `json:"deploymentTime"`
	Status          string `json:"status"`
	TotalTimesheets int    `json:"totalTimesheets"`
	TotalRequests   int64  `json:"totalRequests"`
}

// HealthStatus is the response of GET /health
type HealthStatus struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"` // seconds
	Timestamp string  `json:"timestamp"`
}
