package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/dto"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/service"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// AwardsHandler exposes CRUD endpoints for awards.
type AwardsHandler struct {
	content *service.ContentService
}

// NewAwardsHandler constructs handler.
func NewAwardsHandler(content *service.ContentService) *AwardsHandler {
	return &AwardsHandler{content: content}
}

// List handles GET /api/v1/admin/awards.
func (h *AwardsHandler) List(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)
	awards, err := h.content.ListAwards(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": awardsResponse(awards)})
}

// Create handles POST /api/v1/admin/awards.
func (h *AwardsHandler) Create(c *fiber.Ctx) error {
	var req dto.AwardRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	a, err := h.content.CreateAward(c.Context(), awardInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": awardResponse(a)})
}

// Update handles PUT /api/v1/admin/awards/:id.
func (h *AwardsHandler) Update(c *fiber.Ctx) error {
	var req dto.AwardRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	a, err := h.content.UpdateAward(c.Context(), c.Params("id"), awardInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": awardResponse(a)})
}

// Delete handles DELETE /api/v1/admin/awards/:id.
func (h *AwardsHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteAward(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func awardInput(req dto.AwardRequest) service.AwardInput {
	return service.AwardInput{
		Title:    req.Title,
		Issuer:   req.Issuer,
		Year:     req.Year,
		ImageURL: req.ImageURL,
	}
}

func awardResponse(a *domain.Award) fiber.Map {
	return fiber.Map{
		"id":         a.ID,
		"title":      a.Title,
		"issuer":     a.Issuer,
		"year":       a.Year,
		"image_url":  a.ImageURL,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	}
}

func awardsResponse(awards []domain.Award) []fiber.Map {
	result := make([]fiber.Map, 0, len(awards))
	for i := range awards {
		result = append(result, awardResponse(&awards[i]))
	}
	return result
}
