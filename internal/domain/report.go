package domain

import "time"

// ReportStatus represents processing states for a violation report.
type ReportStatus string

const (
	ReportStatusInProgress ReportStatus = "In Progress"
	ReportStatusCompleted  ReportStatus = "Completed"
	ReportStatusRejected   ReportStatus = "Rejected"
)

// Report is a citizen-submitted vehicle violation report. UserID is set at
// creation and never changes.
type Report struct {
	ID                int64
	UserID            int64
	EvidencePath      *string
	VehicleType       string
	VehicleNumber     string
	VehicleModel      *string
	DateTime          string
	IssueType         string
	Location          string
	Latitude          *float64
	Longitude         *float64
	AdditionalDetails *string
	Status            ReportStatus
	CreatedAt         time.Time
}

// ReportStats aggregates a user's reports by status.
type ReportStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Rejected   int `json:"rejected"`
}
