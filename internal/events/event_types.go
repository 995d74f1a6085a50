package events

import (
	"time"

	"github.com/spec-kit/vigilance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered      EventType = "user_registered"
	EventReportCreated       EventType = "report_created"
	EventReportStatusChanged EventType = "report_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ReportCreatedPayload payload.
type ReportCreatedPayload struct {
	ReportID      int64  `json:"report_id"`
	VehicleNumber string `json:"vehicle_number"`
	IssueType     string `json:"issue_type"`
	Location      string `json:"location,omitempty"`
}

// ReportStatusChangedPayload payload.
type ReportStatusChangedPayload struct {
	ReportID  int64               `json:"report_id"`
	OldStatus domain.ReportStatus `json:"old_status"`
	NewStatus domain.ReportStatus `json:"new_status"`
}
