package service

import (
	"context"

	"internhub/internal/cache"
	"internhub/internal/models"
	"internhub/internal/observability"
	"internhub/internal/repository"
	"internhub/internal/session"
	"internhub/internal/validation"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// OnboardingService drives the mandatory two-review wizard. Wizard state
// lives in the draft store between requests; nothing touches the database
// until the second step commits, and the commit is a single transaction:
// both review inserts and the onboarding_complete flag land together or
// not at all.
type OnboardingService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	drafts   session.DraftStore
}

func NewOnboardingService(db *gorm.DB, userRepo repository.UserRepository, drafts session.DraftStore) *OnboardingService {
	return &OnboardingService{
		db:       db,
		userRepo: userRepo,
		drafts:   drafts,
	}
}

// StepResult reports the wizard position after a transition.
type StepResult struct {
	Step     int                `json:"step"`
	Complete bool               `json:"complete"`
	Draft    models.ReviewDraft `json:"draft"`
}

// State returns the user's current wizard state, creating a fresh one at
// step 0 when none exists. A user who already completed onboarding never
// re-enters the wizard.
func (s *OnboardingService) State(ctx context.Context, userID uint) (*session.OnboardingState, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.OnboardingComplete {
		return nil, models.NewConflictError("Onboarding already completed")
	}

	state, err := s.drafts.Get(ctx, userID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if state == nil {
		state = session.NewOnboardingState("")
		if err := s.drafts.Put(ctx, userID, state); err != nil {
			return nil, models.NewInternalError(err)
		}
	}
	return state, nil
}

// SubmitStep validates the submitted draft and advances the wizard. A valid
// draft at step 0 moves to step 1; a valid draft at step 1 completes
// onboarding. On any completion failure the state stays at step 1 and the
// onboarding flag stays false.
func (s *OnboardingService) SubmitStep(ctx context.Context, userID uint, draft *models.ReviewDraft) (*StepResult, error) {
	if violations := validation.ValidateReview(draft); len(violations) > 0 {
		return nil, models.NewFieldValidationError(violations)
	}

	state, err := s.State(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch state.Step {
	case session.StepFirstReview:
		state.Drafts[0] = *draft
		state.Step = session.StepSecondReview
		if err := s.drafts.Put(ctx, userID, state); err != nil {
			return nil, models.NewInternalError(err)
		}
		return &StepResult{Step: state.Step, Draft: state.Drafts[1]}, nil

	case session.StepSecondReview:
		state.Drafts[1] = *draft
		if err := s.complete(ctx, userID, state); err != nil {
			return nil, err
		}
		return &StepResult{Step: state.Step, Complete: true}, nil

	default:
		return nil, models.NewConflictError("Onboarding already completed")
	}
}

// Previous moves the wizard back one step, discarding the second draft while
// keeping the first. At step 0 it is a no-op.
func (s *OnboardingService) Previous(ctx context.Context, userID uint) (*StepResult, error) {
	state, err := s.State(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.Step == session.StepSecondReview {
		state.Step = session.StepFirstReview
		state.Drafts[1] = models.ReviewDraft{}
		if err := s.drafts.Put(ctx, userID, state); err != nil {
			return nil, models.NewInternalError(err)
		}
	}
	return &StepResult{Step: state.Step, Draft: state.Drafts[state.Step]}, nil
}

// complete persists both drafts as reviews and flips onboarding_complete in
// one transaction. Wizard state is only cleared after the commit succeeds,
// so a failure leaves the user at step 1 with both drafts intact.
func (s *OnboardingService) complete(ctx context.Context, userID uint, state *session.OnboardingState) error {
	span, ctx := observability.NewSpan(ctx, "onboarding.complete")
	defer span.End()
	span.AddAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int("onboarding.reviews", len(state.Drafts)),
	)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		span.SetError(err)
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range state.Drafts {
			review := models.NewReview(userID, &state.Drafts[i], user.FullName)
			if err := tx.Create(review).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("onboarding_complete", true).Error
	})
	if err != nil {
		span.SetError(err)
		return models.NewInternalError(err)
	}

	// Stale wizard state for a completed user is harmless; the session gate
	// never routes back here and the key expires on its own.
	_ = s.drafts.Clear(ctx, userID)
	cache.InvalidateUser(ctx, userID)
	cache.InvalidateFeed(ctx)

	observability.OnboardingCompletions.Inc()
	observability.ReviewSubmissions.WithLabelValues("onboarding").Add(float64(len(state.Drafts)))
	return nil
}
