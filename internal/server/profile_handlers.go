package server

import (
	"internhub/internal/models"
	"internhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.Get(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	reviewCount, err := s.userService.ReviewCount(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":         user,
		"review_count": reviewCount,
	})
}

// UpdateMyProfile handles PUT /api/users/me. A successful save marks the
// profile complete and advances the session gate.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var in service.ProfileInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.SaveProfile(c.Context(), userID, in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// GetMyReviews handles GET /api/users/me/reviews
func (s *Server) GetMyReviews(c *fiber.Ctx) error {
	userID := currentUserID(c)

	reviews, err := s.reviewService.ListByUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

// GetMyBookmarks handles GET /api/users/me/bookmarks
func (s *Server) GetMyBookmarks(c *fiber.Ctx) error {
	userID := currentUserID(c)

	reviews, err := s.reviewService.Bookmarked(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}
