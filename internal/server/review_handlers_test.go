package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"internhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewTestApp(s *Server, userID uint) *fiber.App {
	app := authedApp(userID)
	app.Get("/api/reviews/top", s.GetTopReviews)
	app.Get("/api/reviews/:id", s.GetReview)
	app.Get("/api/reviews", s.GetReviews)
	app.Post("/api/reviews/:id/upvote", s.ToggleUpvote)
	app.Post("/api/reviews/:id/bookmark", s.ToggleBookmark)
	app.Post("/api/reviews", s.CreateReview)
	app.Put("/api/reviews/:id", s.UpdateReview)
	app.Delete("/api/reviews/:id", s.DeleteReview)
	return app
}

type reviewEnvelope struct {
	Review models.Review `json:"review"`
}

type reviewListEnvelope struct {
	Reviews []models.Review `json:"reviews"`
}

func TestCreateAndListReviews(t *testing.T) {
	s := newTestServer(t)
	author := createTestUser(t, s.db, "author@iba.edu.pk")
	app := newReviewTestApp(s, author.ID)

	draft := validTestDraft()
	body, err := json.Marshal(draft)
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodPost, "/api/reviews", string(body))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created reviewEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Systems Limited", created.Review.Company)
	assert.Equal(t, "Test Student", created.Review.ReviewerName)
	assert.Equal(t, author.ID, created.Review.UserID)

	list := doJSON(t, app, http.MethodGet, "/api/reviews", "")
	defer func() { _ = list.Body.Close() }()
	require.Equal(t, http.StatusOK, list.StatusCode)

	var feed reviewListEnvelope
	require.NoError(t, json.NewDecoder(list.Body).Decode(&feed))
	require.Len(t, feed.Reviews, 1)
	assert.Equal(t, created.Review.ID, feed.Reviews[0].ID)
}

func TestCreateReviewAnonymous(t *testing.T) {
	s := newTestServer(t)
	author := createTestUser(t, s.db, "anon@iba.edu.pk")
	app := newReviewTestApp(s, author.ID)

	draft := validTestDraft()
	draft.Anonymous = true
	body, err := json.Marshal(draft)
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodPost, "/api/reviews", string(body))
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created reviewEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, models.AnonymousLabel, created.Review.ReviewerName)
}

func TestToggleUpvoteRoundTrip(t *testing.T) {
	s := newTestServer(t)
	author := createTestUser(t, s.db, "upvote-author@iba.edu.pk")
	voter := createTestUser(t, s.db, "voter@iba.edu.pk")

	draft := validTestDraft()
	review := models.NewReview(author.ID, &draft, author.FullName)
	require.NoError(t, s.db.Create(review).Error)

	app := newReviewTestApp(s, voter.ID)
	target := "/api/reviews/1/upvote"

	on := doJSON(t, app, http.MethodPost, target, "")
	defer func() { _ = on.Body.Close() }()
	require.Equal(t, http.StatusOK, on.StatusCode)

	var env reviewEnvelope
	require.NoError(t, json.NewDecoder(on.Body).Decode(&env))
	assert.True(t, env.Review.Upvoted)
	assert.Equal(t, 1, env.Review.UpvotesCount)

	off := doJSON(t, app, http.MethodPost, target, "")
	defer func() { _ = off.Body.Close() }()
	require.Equal(t, http.StatusOK, off.StatusCode)

	require.NoError(t, json.NewDecoder(off.Body).Decode(&env))
	assert.False(t, env.Review.Upvoted)
	assert.Equal(t, 0, env.Review.UpvotesCount)
}

func TestToggleBookmarkShowsInProfile(t *testing.T) {
	s := newTestServer(t)
	author := createTestUser(t, s.db, "bm-author@iba.edu.pk")
	reader := createTestUser(t, s.db, "reader@iba.edu.pk")

	draft := validTestDraft()
	review := models.NewReview(author.ID, &draft, author.FullName)
	require.NoError(t, s.db.Create(review).Error)

	app := newReviewTestApp(s, reader.ID)
	app.Get("/api/users/me/bookmarks", s.GetMyBookmarks)

	resp := doJSON(t, app, http.MethodPost, "/api/reviews/1/bookmark", "")
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	saved := doJSON(t, app, http.MethodGet, "/api/users/me/bookmarks", "")
	defer func() { _ = saved.Body.Close() }()
	require.Equal(t, http.StatusOK, saved.StatusCode)

	var list reviewListEnvelope
	require.NoError(t, json.NewDecoder(saved.Body).Decode(&list))
	require.Len(t, list.Reviews, 1)
	assert.True(t, list.Reviews[0].Bookmarked)
}

func TestUpdateReviewAuthorOnly(t *testing.T) {
	s := newTestServer(t)
	author := createTestUser(t, s.db, "edit-author@iba.edu.pk")
	other := createTestUser(t, s.db, "edit-other@iba.edu.pk")

	draft := validTestDraft()
	review := models.NewReview(author.ID, &draft, author.FullName)
	require.NoError(t, s.db.Create(review).Error)

	updated := validTestDraft()
	updated.Assessment = "Revised after the final round."
	body, err := json.Marshal(updated)
	require.NoError(t, err)

	t.Run("author can edit", func(t *testing.T) {
		app := newReviewTestApp(s, author.ID)
		resp := doJSON(t, app, http.MethodPut, "/api/reviews/1", string(body))
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var env reviewEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.Equal(t, "Revised after the final round.", env.Review.Assessment)
	})

	t.Run("non-author is rejected", func(t *testing.T) {
		app := newReviewTestApp(s, other.ID)
		resp := doJSON(t, app, http.MethodPut, "/api/reviews/1", string(body))
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestDeleteReviewAdminOnly(t *testing.T) {
	s := newTestServer(t)
	author := createTestUser(t, s.db, "del-author@iba.edu.pk")
	admin := createTestUser(t, s.db, "admin@iba.edu.pk", func(u *models.User) {
		u.IsAdmin = true
	})

	draft := validTestDraft()
	review := models.NewReview(author.ID, &draft, author.FullName)
	require.NoError(t, s.db.Create(review).Error)

	t.Run("regular user is rejected", func(t *testing.T) {
		app := newReviewTestApp(s, author.ID)
		resp := doJSON(t, app, http.MethodDelete, "/api/reviews/1", "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin deletes", func(t *testing.T) {
		app := newReviewTestApp(s, admin.ID)
		resp := doJSON(t, app, http.MethodDelete, "/api/reviews/1", "")
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var count int64
		require.NoError(t, s.db.Model(&models.Review{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestGetReviewsFeedFilter(t *testing.T) {
	s := newTestServer(t)
	author := createTestUser(t, s.db, "filter-author@iba.edu.pk")

	companies := []string{"Systems Limited", "Jazz", "Systems Limited"}
	for _, company := range companies {
		draft := validTestDraft()
		draft.Company = company
		review := models.NewReview(author.ID, &draft, author.FullName)
		require.NoError(t, s.db.Create(review).Error)
	}

	app := newReviewTestApp(s, author.ID)

	resp := doJSON(t, app, http.MethodGet, "/api/reviews?company=Jazz", "")
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed reviewListEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	require.Len(t, feed.Reviews, 1)
	assert.Equal(t, "Jazz", feed.Reviews[0].Company)
}

func TestGetReviewNotFound(t *testing.T) {
	s := newTestServer(t)
	user := createTestUser(t, s.db, "nf@iba.edu.pk")
	app := newReviewTestApp(s, user.ID)

	resp := doJSON(t, app, http.MethodGet, "/api/reviews/999", "")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	bad := doJSON(t, app, http.MethodGet, "/api/reviews/zero", "")
	defer func() { _ = bad.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestGetCompaniesCatalogue(t *testing.T) {
	s := newTestServer(t)
	app := fiber.New()
	app.Get("/api/companies", s.GetCompanies)

	resp := doJSON(t, app, http.MethodGet, "/api/companies", "")
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Companies    []string `json:"companies"`
		Industries   []string `json:"industries"`
		ProgramTypes []string `json:"program_types"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Companies)
	assert.Contains(t, body.Companies, "Other")
	assert.Equal(t, []string{models.ProgramTypeMT, models.ProgramTypeInternship}, body.ProgramTypes)
}
