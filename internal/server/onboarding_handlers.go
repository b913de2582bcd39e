package server

import (
	"internhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetOnboardingState handles GET /api/onboarding. It returns the wizard
// position and the draft for the current step so a returning user resumes
// where they left off.
func (s *Server) GetOnboardingState(c *fiber.Ctx) error {
	userID := currentUserID(c)

	state, err := s.onboardingService.State(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"step":  state.Step,
		"draft": state.Drafts[state.Step],
	})
}

// SubmitOnboardingStep handles POST /api/onboarding/step. A valid first draft
// advances to step 1; a valid second draft commits both reviews and the
// onboarding flag atomically.
func (s *Server) SubmitOnboardingStep(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var draft models.ReviewDraft
	if err := c.BodyParser(&draft); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.onboardingService.SubmitStep(c.Context(), userID, &draft)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

// OnboardingPrevious handles POST /api/onboarding/previous. At step 1 it
// discards the second draft and returns to step 0; at step 0 it is a no-op.
func (s *Server) OnboardingPrevious(c *fiber.Ctx) error {
	userID := currentUserID(c)

	result, err := s.onboardingService.Previous(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}
