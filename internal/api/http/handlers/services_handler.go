package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/dto"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/service"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// ServicesHandler exposes CRUD endpoints for service offerings.
type ServicesHandler struct {
	content *service.ContentService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(content *service.ContentService) *ServicesHandler {
	return &ServicesHandler{content: content}
}

// List handles GET /api/v1/admin/services.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)
	services, err := h.content.ListServices(c.Context(), false, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": servicesResponse(services)})
}

// Get handles GET /api/v1/admin/services/:id.
func (h *ServicesHandler) Get(c *fiber.Ctx) error {
	svc, err := h.content.GetService(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceResponse(svc)})
}

// Create handles POST /api/v1/admin/services.
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	svc, err := h.content.CreateService(c.Context(), serviceInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": serviceResponse(svc)})
}

// Update handles PUT /api/v1/admin/services/:id.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	svc, err := h.content.UpdateService(c.Context(), c.Params("id"), serviceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": serviceResponse(svc)})
}

// Delete handles DELETE /api/v1/admin/services/:id.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteService(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func serviceInput(req dto.ServiceRequest) service.ServiceInput {
	return service.ServiceInput{
		Title:        req.Title,
		Slug:         req.Slug,
		Summary:      req.Summary,
		Description:  req.Description,
		Icon:         req.Icon,
		Features:     req.Features,
		DisplayOrder: req.DisplayOrder,
		Published:    req.Published,
	}
}

func serviceResponse(svc *domain.Service) fiber.Map {
	return fiber.Map{
		"id":            svc.ID,
		"title":         svc.Title,
		"slug":          svc.Slug,
		"summary":       svc.Summary,
		"description":   svc.Description,
		"icon":          svc.Icon,
		"features":      svc.Features,
		"display_order": svc.DisplayOrder,
		"published":     svc.Published,
		"created_at":    svc.CreatedAt,
		"updated_at":    svc.UpdatedAt,
	}
}

func servicesResponse(services []domain.Service) []fiber.Map {
	result := make([]fiber.Map, 0, len(services))
	for i := range services {
		result = append(result, serviceResponse(&services[i]))
	}
	return result
}

func paginationParams(c *fiber.Ctx) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit", "50"))
	offset, _ = strconv.Atoi(c.Query("offset", "0"))
	return limit, offset
}
