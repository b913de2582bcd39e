// Package service contains the business logic layer.
package service

import (
	"context"
	"sort"
	"strings"

	"internhub/internal/cache"
	"internhub/internal/models"
	"internhub/internal/observability"
	"internhub/internal/repository"
	"internhub/internal/validation"
)

// FilterAll is the wildcard value that disables a feed criterion.
const FilterAll = "All"

// Default stipend filter bounds. A request that keeps the full default range
// is treated as "no stipend filter", so reviews without a stipend still show.
const (
	DefaultStipendMin = 0
	DefaultStipendMax = 200000
)

// FeedFilter carries the feed's match criteria. Zero values and "All" both
// mean "don't filter on this field".
type FeedFilter struct {
	Company     string `json:"company"`
	Industry    string `json:"industry"`
	ProgramType string `json:"program_type"`
	StipendMin  int    `json:"stipend_min"`
	StipendMax  int    `json:"stipend_max"`
}

func criterionActive(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, FilterAll)
}

type ReviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	isAdmin    func(ctx context.Context, userID uint) (bool, error)
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		isAdmin:    isAdmin,
	}
}

// Submit creates a review from the feed's review form. Onboarding submissions
// go through OnboardingService instead; both paths share the same validation.
func (s *ReviewService) Submit(ctx context.Context, userID uint, draft *models.ReviewDraft) (*models.Review, error) {
	if violations := validation.ValidateReview(draft); len(violations) > 0 {
		return nil, models.NewFieldValidationError(violations)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	review := models.NewReview(userID, draft, user.FullName)
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.ReviewSubmissions.WithLabelValues("feed").Inc()
	return s.reviewRepo.GetByID(ctx, review.ID, userID)
}

func (s *ReviewService) GetByID(ctx context.Context, reviewID, viewerID uint) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, reviewID, viewerID)
}

// Update replaces the authored fields of the caller's own review. Author
// identity, creation timestamp and the social state survive the edit.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID uint, draft *models.ReviewDraft) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only edit your own reviews")
	}
	if violations := validation.ValidateReview(draft); len(violations) > 0 {
		return nil, models.NewFieldValidationError(violations)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	review.ApplyDraft(draft, user.FullName)
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.reviewRepo.GetByID(ctx, reviewID, userID)
}

// Delete removes a review. Reviews are never deleted in the normal user flow;
// this exists for admins pulling abusive content.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID uint) error {
	admin, err := s.isAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !admin {
		return models.NewUnauthorizedError("Admin access required")
	}
	if _, err := s.reviewRepo.GetByID(ctx, reviewID, userID); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}

// listForViewer loads the full feed list cache-aside. The cached list is
// viewer-neutral; the caller's own upvote/bookmark marks are overlaid after.
func (s *ReviewService) listForViewer(ctx context.Context, viewerID uint) ([]models.Review, error) {
	var all []models.Review
	err := cache.Aside(ctx, cache.FeedListKey, &all, cache.FeedTTL, func() error {
		var ferr error
		all, ferr = s.reviewRepo.ListAll(ctx)
		return ferr
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	upvoted, bookmarked, err := s.reviewRepo.ViewerMarks(ctx, viewerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range all {
		all[i].Upvoted = upvoted[all[i].ID]
		all[i].Bookmarked = bookmarked[all[i].ID]
	}
	return all, nil
}

// Feed returns the filtered review feed page.
func (s *ReviewService) Feed(ctx context.Context, viewerID uint, filter FeedFilter, limit, offset int) ([]models.Review, error) {
	all, err := s.listForViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	matched := FilterReviews(all, filter)
	if offset >= len(matched) {
		return []models.Review{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

// Top returns the five most-upvoted reviews matching the filter.
func (s *ReviewService) Top(ctx context.Context, viewerID uint, filter FeedFilter) ([]models.Review, error) {
	all, err := s.listForViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return TopReviews(FilterReviews(all, filter), 5), nil
}

func (s *ReviewService) ListByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.reviewRepo.ListByUserID(ctx, userID)
}

func (s *ReviewService) Bookmarked(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.reviewRepo.ListBookmarked(ctx, userID)
}

// ToggleUpvote flips the caller's upvote and returns the refreshed review.
func (s *ReviewService) ToggleUpvote(ctx context.Context, userID, reviewID uint) (*models.Review, error) {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID, userID); err != nil {
		return nil, err
	}
	on, err := s.reviewRepo.ToggleUpvote(ctx, userID, reviewID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.ReviewToggles.WithLabelValues("upvote", toggleDirection(on)).Inc()
	return s.reviewRepo.GetByID(ctx, reviewID, userID)
}

// ToggleBookmark flips the caller's bookmark and returns the refreshed review.
func (s *ReviewService) ToggleBookmark(ctx context.Context, userID, reviewID uint) (*models.Review, error) {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID, userID); err != nil {
		return nil, err
	}
	on, err := s.reviewRepo.ToggleBookmark(ctx, userID, reviewID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.ReviewToggles.WithLabelValues("bookmark", toggleDirection(on)).Inc()
	return s.reviewRepo.GetByID(ctx, reviewID, userID)
}

func toggleDirection(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// FilterReviews returns the reviews matching every active criterion.
//
// Company matching is case-insensitive full equality. The stipend criterion
// only applies when narrower than the full default range; a review whose
// stipend is absent, unparsable or the "Not Specified" sentinel parses as
// [0,0] and therefore can never satisfy a restrictive range.
func FilterReviews(all []models.Review, f FeedFilter) []models.Review {
	stipendActive := f.StipendMin > DefaultStipendMin || f.StipendMax < DefaultStipendMax

	matched := make([]models.Review, 0, len(all))
	for _, r := range all {
		if criterionActive(f.Company) && !strings.EqualFold(r.Company, strings.TrimSpace(f.Company)) {
			continue
		}
		if criterionActive(f.Industry) && r.Industry != f.Industry {
			continue
		}
		if criterionActive(f.ProgramType) && r.ProgramType != f.ProgramType {
			continue
		}
		if stipendActive {
			min, max, ok := validation.ParseStipendRange(r.Stipend)
			if !ok {
				min, max = 0, 0
			}
			if min < f.StipendMin || max > f.StipendMax {
				continue
			}
		}
		matched = append(matched, r)
	}
	return matched
}

// TopReviews returns the n most-upvoted reviews. The sort is stable so ties
// keep their original feed order.
func TopReviews(matched []models.Review, n int) []models.Review {
	ranked := make([]models.Review, len(matched))
	copy(ranked, matched)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UpvotesCount > ranked[j].UpvotesCount
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
