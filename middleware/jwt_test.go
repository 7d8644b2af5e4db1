package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"lms/config"
	"lms/models"
	"lms/services"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig(t *testing.T) {
	t.Helper()
	previous := config.AppConfig
	config.AppConfig = &config.Config{JWTKey: "test-secret", SessionTTL: time.Hour}
	t.Cleanup(func() { config.AppConfig = previous })
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JWTMiddleware, func(c *fiber.Ctx) error {
		token, _ := c.Locals("upstreamToken").(string)
		return c.JSON(fiber.Map{
			"userId":   c.Locals("userId"),
			"role":     c.Locals("role"),
			"upstream": token,
		})
	})
	app.Get("/mentor", JWTMiddleware, RequireRole(models.RoleMentor), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestJWTMiddlewareRoundTrip(t *testing.T) {
	setupConfig(t)

	token, err := GenerateJWT(models.User{ID: 12, Name: "Ana", Role: models.RoleMentor}, "upstream-abc")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := newApp().Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, float64(12), body["userId"])
	assert.Equal(t, "mentor", body["role"])
	assert.Equal(t, "upstream-abc", body["upstream"])
}

func TestJWTMiddlewareRejects(t *testing.T) {
	setupConfig(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newApp().Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, false, decode(t, resp)["status"])
		})
	}
}

func TestRequireRole(t *testing.T) {
	setupConfig(t)
	app := newApp()

	for role, want := range map[models.Role]int{
		models.RoleMentor:  http.StatusNoContent,
		models.RoleStudent: http.StatusForbidden,
		models.RoleManager: http.StatusForbidden,
	} {
		token, err := GenerateJWT(models.User{ID: 1, Role: role}, "")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/mentor", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, role)
	}
}

func TestUpstreamErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return UpstreamErrorResponse(c, &services.APIError{Status: 404, Message: "Course not found"}, "Failed!")
	})
	app.Get("/down", func(c *fiber.Ctx) error {
		return UpstreamErrorResponse(c, errors.New("dial tcp: refused"), "Failed to reach LMS!")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found", decode(t, resp)["message"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/down", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Failed to reach LMS!", decode(t, resp)["message"])
}
