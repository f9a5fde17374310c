package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/dto"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/service"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// TestimonialsHandler exposes CRUD endpoints for testimonials.
type TestimonialsHandler struct {
	content *service.ContentService
}

// NewTestimonialsHandler constructs handler.
func NewTestimonialsHandler(content *service.ContentService) *TestimonialsHandler {
	return &TestimonialsHandler{content: content}
}

// List handles GET /api/v1/admin/testimonials.
func (h *TestimonialsHandler) List(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)
	testimonials, err := h.content.ListTestimonials(c.Context(), false, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": testimonialsResponse(testimonials)})
}

// Create handles POST /api/v1/admin/testimonials.
func (h *TestimonialsHandler) Create(c *fiber.Ctx) error {
	var req dto.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	t, err := h.content.CreateTestimonial(c.Context(), testimonialInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": testimonialResponse(t)})
}

// Update handles PUT /api/v1/admin/testimonials/:id.
func (h *TestimonialsHandler) Update(c *fiber.Ctx) error {
	var req dto.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	t, err := h.content.UpdateTestimonial(c.Context(), c.Params("id"), testimonialInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": testimonialResponse(t)})
}

// Delete handles DELETE /api/v1/admin/testimonials/:id.
func (h *TestimonialsHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteTestimonial(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func testimonialInput(req dto.TestimonialRequest) service.TestimonialInput {
	return service.TestimonialInput{
		ClientName: req.ClientName,
		Company:    req.Company,
		Quote:      req.Quote,
		Rating:     req.Rating,
		ImageURL:   req.ImageURL,
		Published:  req.Published,
	}
}

func testimonialResponse(t *domain.Testimonial) fiber.Map {
	return fiber.Map{
		"id":          t.ID,
		"client_name": t.ClientName,
		"company":     t.Company,
		"quote":       t.Quote,
		"rating":      t.Rating,
		"image_url":   t.ImageURL,
		"published":   t.Published,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

func testimonialsResponse(testimonials []domain.Testimonial) []fiber.Map {
	result := make([]fiber.Map, 0, len(testimonials))
	for i := range testimonials {
		result = append(result, testimonialResponse(&testimonials[i]))
	}
	return result
}
