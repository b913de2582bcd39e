package service

import (
	"context"
	"strings"

	"internhub/internal/models"
	"internhub/internal/repository"
)

// ApplicationService manages a user's private job application tracker.
// Every operation is scoped to the owner; there is no cross-user read path.
type ApplicationService struct {
	appRepo repository.ApplicationRepository
}

func NewApplicationService(appRepo repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{appRepo: appRepo}
}

func validateApplication(app *models.Application) error {
	if strings.TrimSpace(app.CompanyName) == "" {
		return models.NewValidationError("Company name is required")
	}
	if app.Status != "" && !validStatus(app.Status) {
		return models.NewValidationError("Unknown application status")
	}
	return nil
}

func validStatus(s string) bool {
	for _, v := range models.ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s *ApplicationService) Add(ctx context.Context, userID uint, app *models.Application) (*models.Application, error) {
	app.ID = 0
	app.UserID = userID
	if err := validateApplication(app); err != nil {
		return nil, err
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, models.NewInternalError(err)
	}
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context, userID uint) ([]models.Application, error) {
	apps, err := s.appRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

func (s *ApplicationService) Update(ctx context.Context, userID, appID uint, updated *models.Application) (*models.Application, error) {
	existing, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only edit your own applications")
	}

	existing.CompanyName = updated.CompanyName
	existing.Status = updated.Status
	existing.Deadline = updated.Deadline
	existing.ReferralDetails = updated.ReferralDetails
	existing.Link = updated.Link
	existing.Notes = updated.Notes

	if err := validateApplication(existing); err != nil {
		return nil, err
	}
	if err := s.appRepo.Update(ctx, existing); err != nil {
		return nil, models.NewInternalError(err)
	}
	return existing, nil
}

func (s *ApplicationService) Delete(ctx context.Context, userID, appID uint) error {
	existing, err := s.appRepo.GetByID(ctx, appID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own applications")
	}
	return s.appRepo.Delete(ctx, appID)
}

// ReplaceAll swaps the user's whole tracker for the submitted set in one
// transaction. Concurrent sessions saving the tracker resolve last-writer-wins
// at whole-tracker granularity; readers never see a half-replaced table.
func (s *ApplicationService) ReplaceAll(ctx context.Context, userID uint, apps []models.Application) ([]models.Application, error) {
	for i := range apps {
		apps[i].UserID = userID
		if err := validateApplication(&apps[i]); err != nil {
			return nil, err
		}
	}
	replaced, err := s.appRepo.ReplaceAll(ctx, userID, apps)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return replaced, nil
}

// KPIs returns the tracker summary for the user.
func (s *ApplicationService) KPIs(ctx context.Context, userID uint) (*models.KPIs, error) {
	apps, err := s.appRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	kpis := ComputeKPIs(apps)
	return &kpis, nil
}

// ComputeKPIs derives the tracker summary. Everything that is neither a
// received offer nor a rejection counts as in progress, including rows with
// no status at all.
func ComputeKPIs(apps []models.Application) models.KPIs {
	k := models.KPIs{Total: len(apps)}
	offers := 0
	for _, a := range apps {
		switch a.Status {
		case models.StatusRejected:
			k.Rejected++
		case models.StatusOfferReceived:
			offers++
		}
	}
	k.InProgress = k.Total - offers - k.Rejected
	return k
}
