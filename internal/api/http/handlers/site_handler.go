package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/dto"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/service"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// SiteHandler serves the public, unauthenticated marketing site API:
// published content reads plus the contact and booking intake forms.
type SiteHandler struct {
	content *service.ContentService
	intake  *service.IntakeService
}

// NewSiteHandler constructs handler.
func NewSiteHandler(content *service.ContentService, intake *service.IntakeService) *SiteHandler {
	return &SiteHandler{content: content, intake: intake}
}

// Services handles GET /api/v1/site/services. Only published offerings
// are returned.
func (h *SiteHandler) Services(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)
	services, err := h.content.ListServices(c.Context(), true, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": servicesResponse(services)})
}

// Testimonials handles GET /api/v1/site/testimonials.
func (h *SiteHandler) Testimonials(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)
	testimonials, err := h.content.ListTestimonials(c.Context(), true, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": testimonialsResponse(testimonials)})
}

// Team handles GET /api/v1/site/team.
func (h *SiteHandler) Team(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)
	members, err := h.content.ListTeamMembers(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": teamMembersResponse(members)})
}

// Awards handles GET /api/v1/site/awards.
func (h *SiteHandler) Awards(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)
	awards, err := h.content.ListAwards(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": awardsResponse(awards)})
}

// Contact handles POST /api/v1/site/contact.
func (h *SiteHandler) Contact(c *fiber.Ctx) error {
	var req dto.ContactFormRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	submission, err := h.intake.SubmitContactForm(c.Context(), service.SubmissionInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"id":     submission.ID,
		"status": submission.Status,
	}})
}

// BookCall handles POST /api/v1/site/bookings.
func (h *SiteHandler) BookCall(c *fiber.Ctx) error {
	var req dto.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.intake.CreateBooking(c.Context(), service.BookingInput{
		Name:          req.Name,
		Email:         req.Email,
		Company:       req.Company,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"id":        booking.ID,
		"reference": booking.Reference,
		"status":    booking.Status,
	}})
}
