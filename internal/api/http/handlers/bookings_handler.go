package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/dto"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/service"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// BookingsHandler exposes the admin screen for strategy call bookings.
type BookingsHandler struct {
	intake *service.IntakeService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(intake *service.IntakeService) *BookingsHandler {
	return &BookingsHandler{intake: intake}
}

// List handles GET /api/v1/admin/bookings. An optional ?status= query
// filters by lifecycle state.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	limit, offset := paginationParams(c)

	var status *domain.BookingStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.BookingStatus(raw)
		status = &s
	}

	bookings, err := h.intake.ListBookings(c.Context(), status, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingsResponse(bookings)})
}

// Get handles GET /api/v1/admin/bookings/:id.
func (h *BookingsHandler) Get(c *fiber.Ctx) error {
	booking, err := h.intake.GetBooking(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

// UpdateStatus handles PATCH /api/v1/admin/bookings/:id/status.
func (h *BookingsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.intake.UpdateBookingStatus(c.Context(), c.Params("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": bookingResponse(booking)})
}

// Delete handles DELETE /api/v1/admin/bookings/:id.
func (h *BookingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.intake.DeleteBooking(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func bookingResponse(b *domain.StrategyCallBooking) fiber.Map {
	return fiber.Map{
		"id":             b.ID,
		"reference":      b.Reference,
		"name":           b.Name,
		"email":          b.Email,
		"company":        b.Company,
		"phone":          b.Phone,
		"preferred_date": b.PreferredDate,
		"preferred_time": b.PreferredTime,
		"notes":          b.Notes,
		"status":         b.Status,
		"created_at":     b.CreatedAt,
		"updated_at":     b.UpdatedAt,
	}
}

func bookingsResponse(bookings []domain.StrategyCallBooking) []fiber.Map {
	result := make([]fiber.Map, 0, len(bookings))
	for i := range bookings {
		result = append(result, bookingResponse(&bookings[i]))
	}
	return result
}
