package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vigilance-service/internal/api/dto"
	"github.com/spec-kit/vigilance-service/internal/auth"
	"github.com/spec-kit/vigilance-service/internal/service"
	apperrors "github.com/spec-kit/vigilance-service/pkg/util"
)

// ReportsHandler manages citizen report endpoints. All routes sit behind
// the auth middleware, so the identity is always present.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// Create POST /api/reports.
func (h *ReportsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. No token provided.")
	}
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid request body")
	}

	report, err := h.service.Create(c.Context(), user.ID, service.ReportCreateInput{
		EvidencePath:      req.EvidencePath,
		VehicleType:       req.VehicleType,
		VehicleNumber:     req.VehicleNumber,
		VehicleModel:      req.VehicleModel,
		DateTime:          req.DateTime,
		IssueType:         req.IssueType,
		Location:          req.Location,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		AdditionalDetails: req.AdditionalDetails,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Report created successfully",
		"report":  dto.FromReport(report),
	})
}

// List GET /api/reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. No token provided.")
	}

	reports, err := h.service.ListForUser(c.Context(), user.ID)
	if err != nil {
		return err
	}

	items := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, dto.FromReport(&reports[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Reports retrieved successfully",
		"count":   len(items),
		"reports": items,
	})
}

// Get GET /api/reports/:id.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. No token provided.")
	}
	reportID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewNotFound("Report not found")
	}

	report, err := h.service.Get(c.Context(), user.ID, reportID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Report retrieved successfully",
		"report":  dto.FromReport(report),
	})
}

// Stats GET /api/reports/stats.
func (h *ReportsHandler) Stats(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. No token provided.")
	}

	stats, err := h.service.Stats(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Statistics retrieved successfully",
		"stats":   stats,
	})
}
