package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"internhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Post("/api/auth/signup", s.Signup)
	app.Post("/api/auth/login", s.Login)
	app.Post("/api/auth/password-reset", s.RequestPasswordReset)
	app.Post("/api/auth/password-reset/confirm", s.ConfirmPasswordReset)
	return app
}

func TestSignup(t *testing.T) {
	s := newTestServer(t)
	app := newAuthTestApp(s)

	t.Run("institutional email succeeds", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup",
			`{"email":"student@iba.edu.pk","password":"Str0ng-Enough-Pass!"}`)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "student@iba.edu.pk", body.User.Email)
		assert.False(t, body.User.ProfileCompleted)
		assert.False(t, body.User.OnboardingComplete)
	})

	t.Run("outside domain rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup",
			`{"email":"student@gmail.com","password":"Str0ng-Enough-Pass!"}`)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("lookalike domain rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup",
			`{"email":"student@iba.edu.pk.evil.com","password":"Str0ng-Enough-Pass!"}`)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup",
			`{"email":"student@iba.edu.pk","password":"Str0ng-Enough-Pass!"}`)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/signup",
			`{"email":"other@iba.edu.pk","password":"short"}`)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	app := newAuthTestApp(s)

	createTestUser(t, s.db, "login@khi.iba.edu.pk")

	t.Run("valid credentials", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
			`{"email":"login@khi.iba.edu.pk","password":"Handler-Test-Passw0rd!"}`)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
			`{"email":"login@khi.iba.edu.pk","password":"Wrong-Passw0rd-Here!"}`)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown account", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
			`{"email":"ghost@iba.edu.pk","password":"Handler-Test-Passw0rd!"}`)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("domain gate applies to login too", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
			`{"email":"login@outlook.com","password":"Handler-Test-Passw0rd!"}`)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestLogoutBlacklistsToken(t *testing.T) {
	s := newTestServer(t)
	app := fiber.New()
	app.Post("/api/auth/logout", s.Logout)

	user := createTestUser(t, s.db, "logout@iba.edu.pk")
	token, err := s.generateToken(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the JTI must now be on the blacklist consulted by AuthRequired
	keys, err := s.redis.Keys(t.Context(), "blacklist:*").Result()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	s := newTestServer(t)
	app := newAuthTestApp(s)

	user := createTestUser(t, s.db, "reset@iba.edu.pk")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/password-reset",
		`{"email":"reset@iba.edu.pk"}`)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the handler stores the token in Redis; recover it from there
	keys, err := s.redis.Keys(t.Context(), "pwreset:*").Result()
	require.NoError(t, err)
	require.Len(t, keys, 1)
	token := keys[0][len("pwreset:"):]

	confirm := doJSON(t, app, http.MethodPost, "/api/auth/password-reset/confirm",
		fmt.Sprintf(`{"token":%q,"new_password":"Brand-New-Passw0rd!"}`, token))
	defer func() { _ = confirm.Body.Close() }()
	require.Equal(t, http.StatusOK, confirm.StatusCode)

	var updated models.User
	require.NoError(t, s.db.First(&updated, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("Brand-New-Passw0rd!")))

	t.Run("token is single use", func(t *testing.T) {
		again := doJSON(t, app, http.MethodPost, "/api/auth/password-reset/confirm",
			fmt.Sprintf(`{"token":%q,"new_password":"Brand-New-Passw0rd!"}`, token))
		defer func() { _ = again.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, again.StatusCode)
	})
}

func TestPasswordResetUniformResponseForUnknownAccount(t *testing.T) {
	s := newTestServer(t)
	app := newAuthTestApp(s)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/password-reset",
		`{"email":"nobody@iba.edu.pk"}`)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	keys, err := s.redis.Keys(t.Context(), "pwreset:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)
}
