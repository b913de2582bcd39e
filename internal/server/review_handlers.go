package server

import (
	"internhub/internal/models"
	"internhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseFeedFilter reads the feed criteria from query parameters. Omitted
// criteria default to "match everything".
func parseFeedFilter(c *fiber.Ctx) service.FeedFilter {
	return service.FeedFilter{
		Company:     c.Query("company", service.FilterAll),
		Industry:    c.Query("industry", service.FilterAll),
		ProgramType: c.Query("program_type", service.FilterAll),
		StipendMin:  c.QueryInt("stipend_min", service.DefaultStipendMin),
		StipendMax:  c.QueryInt("stipend_max", service.DefaultStipendMax),
	}
}

// GetReviews handles GET /api/reviews
func (s *Server) GetReviews(c *fiber.Ctx) error {
	userID := currentUserID(c)
	pagination := parsePagination(c, 20)

	reviews, err := s.reviewService.Feed(c.Context(), userID, parseFeedFilter(c), pagination.Limit, pagination.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

// GetTopReviews handles GET /api/reviews/top
func (s *Server) GetTopReviews(c *fiber.Ctx) error {
	userID := currentUserID(c)

	reviews, err := s.reviewService.Top(c.Context(), userID, parseFeedFilter(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

// GetReview handles GET /api/reviews/:id
func (s *Server) GetReview(c *fiber.Ctx) error {
	userID := currentUserID(c)
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	review, err := s.reviewService.GetByID(c.Context(), reviewID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"review": review})
}

// CreateReview handles POST /api/reviews. This is the post-onboarding
// submission path; the two onboarding reviews go through the wizard instead.
func (s *Server) CreateReview(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var draft models.ReviewDraft
	if err := c.BodyParser(&draft); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.reviewService.Submit(c.Context(), userID, &draft)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"review": review})
}

// UpdateReview handles PUT /api/reviews/:id. Author-only full replace of the
// authored fields; upvotes and bookmarks survive the edit.
func (s *Server) UpdateReview(c *fiber.Ctx) error {
	userID := currentUserID(c)
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var draft models.ReviewDraft
	if err := c.BodyParser(&draft); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.reviewService.Update(c.Context(), userID, reviewID, &draft)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"review": review})
}

// DeleteReview handles DELETE /api/reviews/:id (admin only).
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	userID := currentUserID(c)
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.reviewService.Delete(c.Context(), userID, reviewID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}

// ToggleUpvote handles POST /api/reviews/:id/upvote
func (s *Server) ToggleUpvote(c *fiber.Ctx) error {
	userID := currentUserID(c)
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	review, err := s.reviewService.ToggleUpvote(c.Context(), userID, reviewID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"review": review})
}

// ToggleBookmark handles POST /api/reviews/:id/bookmark
func (s *Server) ToggleBookmark(c *fiber.Ctx) error {
	userID := currentUserID(c)
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	review, err := s.reviewService.ToggleBookmark(c.Context(), userID, reviewID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"review": review})
}

// GetCompanies handles GET /api/companies, serving the review form's fixed
// company catalogue and related enums.
func (s *Server) GetCompanies(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"companies":  models.CompanyCatalogue,
		"industries": models.Industries,
		"program_types": []string{
			models.ProgramTypeMT,
			models.ProgramTypeInternship,
		},
	})
}
