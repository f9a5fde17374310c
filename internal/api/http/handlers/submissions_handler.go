package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/dto"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/service"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// SubmissionsHandler exposes the admin inbox for contact form submissions.
type SubmissionsHandler struct {
	intake *service.IntakeService
}

// NewSubmissionsHandler constructs handler.
func NewSubmissionsHandler(intake *service.IntakeService) *SubmissionsHandler {
	return &SubmissionsHandler{intake: intake}
}

// List handles GET /api/v1/admin/submissions. An optional ?status=
// query filters by triage state.
func (h *SubmissionsHandler) List(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)

	var status *domain.SubmissionStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.SubmissionStatus(raw)
		status = &s
	}

	submissions, err := h.intake.ListSubmissions(c.Context(), status, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": submissionsResponse(submissions)})
}

// Get handles GET /api/v1/admin/submissions/:id.
func (h *SubmissionsHandler) Get(c *fiber.Ctx) error {
	submission, err := h.intake.GetSubmission(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": submissionResponse(submission)})
}

// UpdateStatus handles PATCH /api/v1/admin/submissions/:id/status.
func (h *SubmissionsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	submission, err := h.intake.UpdateSubmissionStatus(c.Context(), c.Params("id"), domain.SubmissionStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": submissionResponse(submission)})
}

// Delete handles DELETE /api/v1/admin/submissions/:id.
func (h *SubmissionsHandler) Delete(c *fiber.Ctx) error {
	if err := h.intake.DeleteSubmission(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func submissionResponse(s *domain.FormSubmission) fiber.Map {
	return fiber.Map{
		"id":         s.ID,
		"name":       s.Name,
		"email":      s.Email,
		"company":    s.Company,
		"message":    s.Message,
		"status":     s.Status,
		"created_at": s.CreatedAt,
		"updated_at": s.UpdatedAt,
	}
}

func submissionsResponse(submissions []domain.FormSubmission) []fiber.Map {
	result := make([]fiber.Map, 0, len(submissions))
	for i := range submissions {
		result = append(result, submissionResponse(&submissions[i]))
	}
	return result
}
