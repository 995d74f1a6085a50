package dto

import (
	"time"

	"github.com/spec-kit/vigilance-service/internal/domain"
)

// CreateReportRequest payload.
type CreateReportRequest struct {
	EvidencePath      *string  `json:"evidencePath"`
	VehicleType       string   `json:"vehicleType"`
	VehicleNumber     string   `json:"vehicleNumber"`
	VehicleModel      *string  `json:"vehicleModel"`
	DateTime          string   `json:"dateTime"`
	IssueType         string   `json:"issueType"`
	Location          string   `json:"location"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	AdditionalDetails *string  `json:"additionalDetails"`
}

// ReportResponse is the public view of a report.
type ReportResponse struct {
	ID                int64               `json:"id"`
	UserID            int64               `json:"userId"`
	EvidencePath      *string             `json:"evidencePath"`
	VehicleType       string              `json:"vehicleType"`
	VehicleNumber     string              `json:"vehicleNumber"`
	VehicleModel      *string             `json:"vehicleModel"`
	DateTime          string              `json:"dateTime"`
	IssueType         string              `json:"issueType"`
	Location          string              `json:"location"`
	Latitude          *float64            `json:"latitude"`
	Longitude         *float64            `json:"longitude"`
	AdditionalDetails *string             `json:"additionalDetails"`
	Status            domain.ReportStatus `json:"status"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// FromReport maps a domain report to its response view.
func FromReport(report *domain.Report) ReportResponse {
	return ReportResponse{
		ID:                report.ID,
		UserID:            report.UserID,
		EvidencePath:      report.EvidencePath,
		VehicleType:       report.VehicleType,
		VehicleNumber:     report.VehicleNumber,
		VehicleModel:      report.VehicleModel,
		DateTime:          report.DateTime,
		IssueType:         report.IssueType,
		Location:          report.Location,
		Latitude:          report.Latitude,
		Longitude:         report.Longitude,
		AdditionalDetails: report.AdditionalDetails,
		Status:            report.Status,
		CreatedAt:         report.CreatedAt,
	}
}

// FromUser maps a domain user to its response view.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		NIC:   user.NIC,
		Role:  user.Role,
	}
}
