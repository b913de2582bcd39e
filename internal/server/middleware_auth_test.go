package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"internhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddlewareApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": currentUserID(c)})
	})
	return app
}

func requestWithToken(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)
	app := newAuthMiddlewareApp(s)
	user := createTestUser(t, s.db, "mw@iba.edu.pk")

	t.Run("valid token passes", func(t *testing.T) {
		token, err := s.generateToken(user.ID)
		require.NoError(t, err)

		resp := requestWithToken(t, app, token)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		resp := requestWithToken(t, app, "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "1",
			"iss": tokenIssuer,
			"aud": tokenAudience,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token, err := forged.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		resp := requestWithToken(t, app, token)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong issuer rejected", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "1",
			"iss": "someone-else",
			"aud": tokenAudience,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token, err := forged.SignedString([]byte(s.config.JWTSecret))
		require.NoError(t, err)

		resp := requestWithToken(t, app, token)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		token, err := s.generateToken(user.ID)
		require.NoError(t, err)

		logoutApp := fiber.New()
		logoutApp.Post("/logout", s.Logout)
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		logoutResp, err := logoutApp.Test(req, -1)
		require.NoError(t, err)
		defer func() { _ = logoutResp.Body.Close() }()
		require.Equal(t, http.StatusOK, logoutResp.StatusCode)

		resp := requestWithToken(t, app, token)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAdminRequired(t *testing.T) {
	s := newTestServer(t)
	student := createTestUser(t, s.db, "plain@iba.edu.pk")
	admin := createTestUser(t, s.db, "root@iba.edu.pk", func(u *models.User) {
		u.IsAdmin = true
	})

	handler := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	t.Run("non-admin rejected", func(t *testing.T) {
		app := authedApp(student.ID)
		app.Get("/admin", s.AdminRequired(), handler)

		resp := doJSON(t, app, http.MethodGet, "/admin", "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin passes", func(t *testing.T) {
		app := authedApp(admin.ID)
		app.Get("/admin", s.AdminRequired(), handler)

		resp := doJSON(t, app, http.MethodGet, "/admin", "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
