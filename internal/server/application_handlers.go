package server

import (
	"internhub/internal/models"
	"internhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetApplications handles GET /api/applications. The KPI strip is computed
// from the same rows so list and summary never disagree.
func (s *Server) GetApplications(c *fiber.Ctx) error {
	userID := currentUserID(c)

	apps, err := s.applicationService.List(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"applications": apps,
		"kpis":         service.ComputeKPIs(apps),
	})
}

// GetApplicationKPIs handles GET /api/applications/kpis
func (s *Server) GetApplicationKPIs(c *fiber.Ctx) error {
	userID := currentUserID(c)

	kpis, err := s.applicationService.KPIs(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"kpis": kpis})
}

// CreateApplication handles POST /api/applications
func (s *Server) CreateApplication(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var app models.Application
	if err := c.BodyParser(&app); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.applicationService.Add(c.Context(), userID, &app)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"application": created})
}

// ReplaceApplications handles PUT /api/applications, swapping the whole
// tracker for the submitted rows in one transaction.
func (s *Server) ReplaceApplications(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Applications []models.Application `json:"applications"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	apps, err := s.applicationService.ReplaceAll(c.Context(), userID, req.Applications)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"applications": apps,
		"kpis":         service.ComputeKPIs(apps),
	})
}

// UpdateApplication handles PUT /api/applications/:id
func (s *Server) UpdateApplication(c *fiber.Ctx) error {
	userID := currentUserID(c)
	appID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var app models.Application
	if err := c.BodyParser(&app); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.applicationService.Update(c.Context(), userID, appID, &app)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"application": updated})
}

// DeleteApplication handles DELETE /api/applications/:id
func (s *Server) DeleteApplication(c *fiber.Ctx) error {
	userID := currentUserID(c)
	appID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.applicationService.Delete(c.Context(), userID, appID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Application deleted"})
}
