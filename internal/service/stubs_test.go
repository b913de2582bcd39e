package service

import (
	"context"

	"internhub/internal/models"
	"internhub/internal/session"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn      func(context.Context, uint) (*models.User, error)
	getByEmailFn   func(context.Context, string) (*models.User, error)
	createFn       func(context.Context, *models.User) error
	updateFn       func(context.Context, *models.User) error
	updateFieldsFn func(context.Context, uint, map[string]any) error
	deleteFn       func(context.Context, uint) error
	listFn         func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, FullName: "Test Student"}, nil
		},
		getByEmailFn:   func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:       func(_ context.Context, _ *models.User) error { return nil },
		updateFn:       func(_ context.Context, _ *models.User) error { return nil },
		updateFieldsFn: func(_ context.Context, _ uint, _ map[string]any) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
		listFn:         func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// reviewRepoStub is a stub for repository.ReviewRepository.
type reviewRepoStub struct {
	createFn         func(context.Context, *models.Review) error
	getByIDFn        func(context.Context, uint, uint) (*models.Review, error)
	updateFn         func(context.Context, *models.Review) error
	deleteFn         func(context.Context, uint) error
	listAllFn        func(context.Context) ([]models.Review, error)
	viewerMarksFn    func(context.Context, uint) (map[uint]bool, map[uint]bool, error)
	listByUserFn     func(context.Context, uint) ([]models.Review, error)
	listBookmarkedFn func(context.Context, uint) ([]models.Review, error)
	countByUserFn    func(context.Context, uint) (int64, error)
	toggleUpvoteFn   func(context.Context, uint, uint) (bool, error)
	toggleBookmarkFn func(context.Context, uint, uint) (bool, error)
}

func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review) error {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Review, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *reviewRepoStub) Update(ctx context.Context, review *models.Review) error {
	return s.updateFn(ctx, review)
}
func (s *reviewRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *reviewRepoStub) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.listAllFn(ctx)
}
func (s *reviewRepoStub) ViewerMarks(ctx context.Context, userID uint) (map[uint]bool, map[uint]bool, error) {
	return s.viewerMarksFn(ctx, userID)
}
func (s *reviewRepoStub) ListByUserID(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *reviewRepoStub) ListBookmarked(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.listBookmarkedFn(ctx, userID)
}
func (s *reviewRepoStub) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}
func (s *reviewRepoStub) ToggleUpvote(ctx context.Context, userID, reviewID uint) (bool, error) {
	return s.toggleUpvoteFn(ctx, userID, reviewID)
}
func (s *reviewRepoStub) ToggleBookmark(ctx context.Context, userID, reviewID uint) (bool, error) {
	return s.toggleBookmarkFn(ctx, userID, reviewID)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		createFn:  func(_ context.Context, _ *models.Review) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Review, error) { return &models.Review{ID: id}, nil },
		updateFn:  func(_ context.Context, _ *models.Review) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
		listAllFn: func(_ context.Context) ([]models.Review, error) { return nil, nil },
		viewerMarksFn: func(_ context.Context, _ uint) (map[uint]bool, map[uint]bool, error) {
			return map[uint]bool{}, map[uint]bool{}, nil
		},
		listByUserFn:     func(_ context.Context, _ uint) ([]models.Review, error) { return nil, nil },
		listBookmarkedFn: func(_ context.Context, _ uint) ([]models.Review, error) { return nil, nil },
		countByUserFn:    func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		toggleUpvoteFn:   func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		toggleBookmarkFn: func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
	}
}

// appRepoStub is a stub for repository.ApplicationRepository.
type appRepoStub struct {
	createFn     func(context.Context, *models.Application) error
	getByIDFn    func(context.Context, uint) (*models.Application, error)
	updateFn     func(context.Context, *models.Application) error
	deleteFn     func(context.Context, uint) error
	listByUserFn func(context.Context, uint) ([]models.Application, error)
	replaceAllFn func(context.Context, uint, []models.Application) ([]models.Application, error)
}

func (s *appRepoStub) Create(ctx context.Context, app *models.Application) error {
	return s.createFn(ctx, app)
}
func (s *appRepoStub) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	return s.getByIDFn(ctx, id)
}
func (s *appRepoStub) Update(ctx context.Context, app *models.Application) error {
	return s.updateFn(ctx, app)
}
func (s *appRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *appRepoStub) ListByUserID(ctx context.Context, userID uint) ([]models.Application, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *appRepoStub) ReplaceAll(ctx context.Context, userID uint, apps []models.Application) ([]models.Application, error) {
	return s.replaceAllFn(ctx, userID, apps)
}

func noopAppRepo() *appRepoStub {
	return &appRepoStub{
		createFn:     func(_ context.Context, _ *models.Application) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Application, error) { return &models.Application{ID: id}, nil },
		updateFn:     func(_ context.Context, _ *models.Application) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		listByUserFn: func(_ context.Context, _ uint) ([]models.Application, error) { return nil, nil },
		replaceAllFn: func(_ context.Context, _ uint, apps []models.Application) ([]models.Application, error) {
			return apps, nil
		},
	}
}

// draftStoreStub is an in-memory session.DraftStore.
type draftStoreStub struct {
	states map[uint]*session.OnboardingState
	putErr error
}

func newDraftStoreStub() *draftStoreStub {
	return &draftStoreStub{states: make(map[uint]*session.OnboardingState)}
}

func (s *draftStoreStub) Get(_ context.Context, userID uint) (*session.OnboardingState, error) {
	state, ok := s.states[userID]
	if !ok {
		return nil, nil
	}
	copied := *state
	copied.Drafts = append([]models.ReviewDraft(nil), state.Drafts...)
	return &copied, nil
}

func (s *draftStoreStub) Put(_ context.Context, userID uint, state *session.OnboardingState) error {
	if s.putErr != nil {
		return s.putErr
	}
	copied := *state
	copied.Drafts = append([]models.ReviewDraft(nil), state.Drafts...)
	s.states[userID] = &copied
	return nil
}

func (s *draftStoreStub) Clear(_ context.Context, userID uint) error {
	delete(s.states, userID)
	return nil
}
