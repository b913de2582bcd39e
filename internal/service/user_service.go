package service

import (
	"context"
	"strings"
	"time"

	"internhub/internal/models"
	"internhub/internal/repository"
)

// UserService manages student profiles.
type UserService struct {
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
}

func NewUserService(userRepo repository.UserRepository, reviewRepo repository.ReviewRepository) *UserService {
	return &UserService{userRepo: userRepo, reviewRepo: reviewRepo}
}

// ProfileInput is the profile completion form payload.
type ProfileInput struct {
	FullName         string `json:"full_name"`
	Age              int    `json:"age"`
	Semester         int    `json:"semester"`
	Program          string `json:"program"`
	ExpectedGradYear int    `json:"expected_grad_year"`
}

func (in *ProfileInput) validate() []string {
	var errs []string
	if strings.TrimSpace(in.FullName) == "" {
		errs = append(errs, "Full name required")
	}
	if in.Age < 16 || in.Age > 60 {
		errs = append(errs, "Age must be between 16 and 60")
	}
	if in.Semester < 1 || in.Semester > 8 {
		errs = append(errs, "Semester must be between 1 and 8")
	}
	if strings.TrimSpace(in.Program) == "" {
		errs = append(errs, "Program required")
	}
	year := time.Now().Year()
	if in.ExpectedGradYear < year || in.ExpectedGradYear > year+6 {
		errs = append(errs, "Expected graduation year out of range")
	}
	return errs
}

func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// SaveProfile stores the profile form and marks the profile complete, which
// advances the session gate past the profile surface.
func (s *UserService) SaveProfile(ctx context.Context, userID uint, in ProfileInput) (*models.User, error) {
	if violations := in.validate(); len(violations) > 0 {
		return nil, models.NewFieldValidationError(violations)
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	err := s.userRepo.UpdateFields(ctx, userID, map[string]any{
		"full_name":          strings.TrimSpace(in.FullName),
		"age":                in.Age,
		"semester":           in.Semester,
		"program":            strings.TrimSpace(in.Program),
		"expected_grad_year": in.ExpectedGradYear,
		"profile_completed":  true,
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.userRepo.GetByID(ctx, userID)
}

// ReviewCount returns how many reviews the user has authored, shown on the
// profile page.
func (s *UserService) ReviewCount(ctx context.Context, userID uint) (int64, error) {
	count, err := s.reviewRepo.CountByUserID(ctx, userID)
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
