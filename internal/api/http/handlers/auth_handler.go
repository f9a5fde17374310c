package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/api/dto"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/auth"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/service"
	apperrors "github.com/rushikeshwankhede/admaxify-admin-service/pkg/util"
)

// AuthHandler exposes admin session endpoints.
type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Login handles POST /api/v1/auth/admin/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	session, role, err := h.authService.SignInAdmin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{
			Token:     session.Token,
			UserID:    session.UserID,
			Email:     session.Email,
			Role:      string(role),
			ExpiresAt: session.ExpiresAt,
		},
	})
}

// Logout handles POST /api/v1/auth/admin/logout. The client clears its
// local session regardless of outcome, so backend failures only log.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token != "" {
		if err := h.authService.SignOutAdmin(c.Context(), token); err != nil {
			h.logger.Warn("backend sign-out failed", zap.Error(err))
		}
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "signed_out"}})
}

// Session handles GET /api/v1/auth/admin/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{
			UserID:    principal.Session.UserID,
			Email:     principal.Session.Email,
			Role:      string(principal.Role),
			ExpiresAt: principal.Session.ExpiresAt,
		},
	})
}

func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
