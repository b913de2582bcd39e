package server

import (
	"internhub/internal/session"

	"github.com/gofiber/fiber/v2"
)

// GetSessionRoute handles GET /api/session/route. It tells the client which
// single surface to render: the profile form until the profile is saved, the
// onboarding wizard until both reviews are committed, then the requested
// page.
func (s *Server) GetSessionRoute(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.userService.Get(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	requested := session.Page(c.Query("requested"))
	hasPendingEdit := c.QueryBool("editing", false)

	page := session.Decide(user.ProfileCompleted, user.OnboardingComplete, hasPendingEdit, requested)

	return c.JSON(fiber.Map{"page": page})
}
