package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/dto"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/service"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// TeamHandler exposes CRUD endpoints for team members.
type TeamHandler struct {
	content *service.ContentService
}

// NewTeamHandler constructs handler.
func NewTeamHandler(content *service.ContentService) *TeamHandler {
	return &TeamHandler{content: content}
}

// List handles GET /api/v1/admin/team.
func (h *TeamHandler) List(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)
	members, err := h.content.ListTeamMembers(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": teamMembersResponse(members)})
}

// Create handles POST /api/v1/admin/team.
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	m, err := h.content.CreateTeamMember(c.Context(), teamMemberInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": teamMemberResponse(m)})
}

// Update handles PUT /api/v1/admin/team/:id.
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	var req dto.TeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	m, err := h.content.UpdateTeamMember(c.Context(), c.Params("id"), teamMemberInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": teamMemberResponse(m)})
}

// Delete handles DELETE /api/v1/admin/team/:id.
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	if err := h.content.DeleteTeamMember(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func teamMemberInput(req dto.TeamMemberRequest) service.TeamMemberInput {
	return service.TeamMemberInput{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}
}

func teamMemberResponse(m *domain.TeamMember) fiber.Map {
	return fiber.Map{
		"id":            m.ID,
		"name":          m.Name,
		"position":      m.Position,
		"bio":           m.Bio,
		"image_url":     m.ImageURL,
		"display_order": m.DisplayOrder,
		"created_at":    m.CreatedAt,
		"updated_at":    m.UpdatedAt,
	}
}

func teamMembersResponse(members []domain.TeamMember) []fiber.Map {
	result := make([]fiber.Map, 0, len(members))
	for i := range members {
		result = append(result, teamMemberResponse(&members[i]))
	}
	return result
}
