package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/vigilance-service/internal/domain"
	"github.com/spec-kit/vigilance-service/internal/events"
	"github.com/spec-kit/vigilance-service/internal/repository"
	apperrors "github.com/spec-kit/vigilance-service/pkg/util"
)

// ReportCreateInput describes report creation payload.
type ReportCreateInput struct {
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
}

// ReportService coordinates report workflows.
type ReportService struct {
	reports    repository.ReportRepository
	cache      repository.StatsCache
	dispatcher events.Dispatcher
}

// NewReportService constructs the service. cache may be nil.
func NewReportService(reports repository.ReportRepository, cache repository.StatsCache, dispatcher events.Dispatcher) *ReportService {
	return &ReportService{
		reports:    reports,
		cache:      cache,
		dispatcher: dispatcher,
	}
}

// Create persists a report owned by the authenticated user. New reports
// start in "In Progress".
func (s *ReportService) Create(ctx context.Context, userID int64, input ReportCreateInput) (*domain.Report, error) {
	if input.VehicleType == "" || input.VehicleNumber == "" || input.DateTime == "" || input.IssueType == "" {
		return nil, apperrors.NewValidationError("Required fields: vehicleType, vehicleNumber, dateTime, issueType")
	}

	report := &domain.Report{
		UserID:            userID,
		EvidencePath:      input.EvidencePath,
		VehicleType:       input.VehicleType,
		VehicleNumber:     input.VehicleNumber,
		VehicleModel:      input.VehicleModel,
		DateTime:          input.DateTime,
		IssueType:         input.IssueType,
		Location:          input.Location,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		AdditionalDetails: input.AdditionalDetails,
		Status:            domain.ReportStatusInProgress,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
	}

	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventReportCreated,
			UserID:    userID,
			Timestamp: time.Now(),
			Payload: events.ReportCreatedPayload{
				ReportID:      report.ID,
				VehicleNumber: report.VehicleNumber,
				IssueType:     report.IssueType,
				Location:      report.Location,
			},
		})
	}

	return report, nil
}

// ListForUser returns the caller's reports, newest first.
func (s *ReportService) ListForUser(ctx context.Context, userID int64) ([]domain.Report, error) {
	reports, err := s.reports.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return reports, nil
}

// Get returns one report after the ownership check. Existence is checked
// before ownership, so a missing report is 404 for everyone while an
// existing report owned by someone else is 403.
func (s *ReportService) Get(ctx context.Context, userID, reportID int64) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Report not found")
		}
		return nil, apperrors.NewInternalError(err)
	}
	if report.UserID != userID {
		return nil, apperrors.NewForbidden("Access denied")
	}
	return report, nil
}

// Stats returns the caller's report counts by status, served from the
// cache when warm.
func (s *ReportService) Stats(ctx context.Context, userID int64) (*domain.ReportStats, error) {
	if s.cache != nil {
		if stats, ok := s.cache.Get(ctx, userID); ok {
			return stats, nil
		}
	}

	stats, err := s.reports.StatsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, userID, stats)
	}
	return stats, nil
}

// UpdateStatus moves a report to a new processing status and notifies the
// owner's subscribers.
func (s *ReportService) UpdateStatus(ctx context.Context, reportID int64, status domain.ReportStatus) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Report not found")
		}
		return nil, apperrors.NewInternalError(err)
	}

	oldStatus := report.Status
	if err := s.reports.UpdateStatus(ctx, reportID, status); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	report.Status = status

	if s.cache != nil {
		s.cache.Invalidate(ctx, report.UserID)
	}

	if s.dispatcher != nil {
		s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventReportStatusChanged,
			UserID:    report.UserID,
			Timestamp: time.Now(),
			Payload: events.ReportStatusChangedPayload{
				ReportID:  report.ID,
				OldStatus: oldStatus,
				NewStatus: status,
			},
		})
	}

	return report, nil
}
