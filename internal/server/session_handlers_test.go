package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"internhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSessionRoute(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		mutate   func(*models.User)
		query    string
		expected string
	}{
		{
			name: "fresh account goes to profile",
			mutate: func(u *models.User) {
				u.ProfileCompleted = false
				u.OnboardingComplete = false
			},
			query:    "?requested=feed",
			expected: "profile_form",
		},
		{
			name: "profile done but onboarding pending goes to wizard",
			mutate: func(u *models.User) {
				u.OnboardingComplete = false
			},
			query:    "?requested=feed",
			expected: "onboarding",
		},
		{
			name:     "fully onboarded gets the requested feed",
			mutate:   func(u *models.User) {},
			query:    "?requested=feed",
			expected: "feed",
		},
		{
			name:     "unknown request falls back to the user profile",
			mutate:   func(u *models.User) {},
			query:    "?requested=settings",
			expected: "user_profile",
		},
		{
			name:     "pending edit form forces the feed",
			mutate:   func(u *models.User) {},
			query:    "?requested=user_profile&editing=true",
			expected: "feed",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := createTestUser(t, s.db, emailForCase(i), tt.mutate)
			app := authedApp(user.ID)
			app.Get("/api/session/route", s.GetSessionRoute)

			resp := doJSON(t, app, http.MethodGet, "/api/session/route"+tt.query, "")
			defer func() { _ = resp.Body.Close() }()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var body struct {
				Page string `json:"page"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expected, body.Page)
		})
	}
}
