package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/rushikeshwankhede/admaxify-admin-service/internal/api/http"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/auth"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/authority"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
	"github.com/rushikeshwankhede/admaxify-admin-service/internal/observability"
)

type fakeResolver struct {
	sessions map[string]*domain.AdminSession
	roles    map[string]domain.Role
	roleErr  error
}

func (f *fakeResolver) SessionFromToken(_ context.Context, token string) (*domain.AdminSession, error) {
	if sess, ok := f.sessions[token]; ok {
		return sess, nil
	}
	return nil, authority.ErrSessionInvalid
}

func (f *fakeResolver) LookupRole(_ context.Context, userID string) (domain.Role, error) {
	if f.roleErr != nil {
		return domain.RoleUnresolved, f.roleErr
	}
	role, ok := f.roles[userID]
	if !ok {
		return domain.RoleUnresolved, authority.ErrNoRoleRecord
	}
	return role, nil
}

func testApp(resolver *fakeResolver) *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), time.Second)

	mw := auth.NewMiddleware(resolver, zap.NewNop())
	protected := app.Group("/admin", mw.Handle)
	protected.Get("/view", auth.RequireRole(domain.RoleViewer), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	protected.Post("/edit", auth.RequireRole(domain.RoleEditor), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	protected.Delete("/purge", auth.RequireRole(domain.RoleAdministrator), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func request(t *testing.T, app *fiber.App, method, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func editorResolver() *fakeResolver {
	return &fakeResolver{
		sessions: map[string]*domain.AdminSession{
			"tok-editor": {Token: "tok-editor", UserID: "user-editor", Email: "editor@admaxify.com"},
		},
		roles: map[string]domain.Role{"user-editor": domain.RoleEditor},
	}
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	app := testApp(editorResolver())
	assert.Equal(t, http.StatusUnauthorized, request(t, app, http.MethodGet, "/admin/view", ""))
}

func TestMiddlewareRejectsUnknownToken(t *testing.T) {
	app := testApp(editorResolver())
	assert.Equal(t, http.StatusUnauthorized, request(t, app, http.MethodGet, "/admin/view", "tok-bogus"))
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	app := testApp(editorResolver())

	req := httptest.NewRequest(http.MethodGet, "/admin/view", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEditorRoleFloors(t *testing.T) {
	app := testApp(editorResolver())

	assert.Equal(t, http.StatusOK, request(t, app, http.MethodGet, "/admin/view", "tok-editor"))
	assert.Equal(t, http.StatusOK, request(t, app, http.MethodPost, "/admin/edit", "tok-editor"))
	assert.Equal(t, http.StatusForbidden, request(t, app, http.MethodDelete, "/admin/purge", "tok-editor"))
}

func TestAdministratorPassesAllFloors(t *testing.T) {
	resolver := &fakeResolver{
		sessions: map[string]*domain.AdminSession{
			"tok-admin": {Token: "tok-admin", UserID: "user-admin"},
		},
		roles: map[string]domain.Role{"user-admin": domain.RoleAdministrator},
	}
	app := testApp(resolver)

	assert.Equal(t, http.StatusOK, request(t, app, http.MethodGet, "/admin/view", "tok-admin"))
	assert.Equal(t, http.StatusOK, request(t, app, http.MethodPost, "/admin/edit", "tok-admin"))
	assert.Equal(t, http.StatusOK, request(t, app, http.MethodDelete, "/admin/purge", "tok-admin"))
}

func TestUnresolvedRolePassesViewerFloorOnly(t *testing.T) {
	// Transient role lookup failures degrade to an unresolved role, which
	// keeps read-only screens working while locking writes.
	resolver := editorResolver()
	resolver.roleErr = errors.New("role store unreachable")
	app := testApp(resolver)

	assert.Equal(t, http.StatusOK, request(t, app, http.MethodGet, "/admin/view", "tok-editor"))
	assert.Equal(t, http.StatusForbidden, request(t, app, http.MethodPost, "/admin/edit", "tok-editor"))
	assert.Equal(t, http.StatusForbidden, request(t, app, http.MethodDelete, "/admin/purge", "tok-editor"))
}
