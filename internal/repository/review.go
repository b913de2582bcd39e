package repository

import (
	"context"
	"errors"

	"internhub/internal/cache"
	"internhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository defines persistence operations for internship reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]models.Review, error)
	ViewerMarks(ctx context.Context, userID uint) (upvoted, bookmarked map[uint]bool, err error)
	ListByUserID(ctx context.Context, userID uint) ([]models.Review, error)
	ListBookmarked(ctx context.Context, userID uint) ([]models.Review, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
	ToggleUpvote(ctx context.Context, userID, reviewID uint) (bool, error)
	ToggleBookmark(ctx context.Context, userID, reviewID uint) (bool, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a new ReviewRepository implementation.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// applyReviewDetails decorates a review query with social counts and the
// viewer's own upvote/bookmark state, computed in SQL.
func applyReviewDetails(query *gorm.DB, viewerID uint) *gorm.DB {
	return query.
		Select(`reviews.*,
			(SELECT COUNT(*) FROM review_upvotes WHERE review_upvotes.review_id = reviews.id) AS upvotes_count,
			(SELECT COUNT(*) FROM review_bookmarks WHERE review_bookmarks.review_id = reviews.id) AS bookmarks_count,
			EXISTS(SELECT 1 FROM review_upvotes WHERE review_upvotes.review_id = reviews.id AND review_upvotes.user_id = ?) AS upvoted,
			EXISTS(SELECT 1 FROM review_bookmarks WHERE review_bookmarks.review_id = reviews.id AND review_bookmarks.user_id = ?) AS bookmarked`,
			viewerID, viewerID)
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return err
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Review, error) {
	var review models.Review
	err := applyReviewDetails(r.db.WithContext(ctx).Model(&models.Review{}), viewerID).
		Where("reviews.id = ?", id).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return err
	}
	cache.InvalidateReview(ctx, review.ID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewUpvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("review_id = ?", id).Delete(&models.ReviewBookmark{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, id).Error
	})
	if err != nil {
		return err
	}
	cache.InvalidateReview(ctx, id)
	cache.InvalidateFeed(ctx)
	return nil
}

// ListAll returns every review with social counts but without viewer flags,
// so the result is the same for every caller and safe to cache. Callers
// overlay the viewer's own marks via ViewerMarks.
func (r *reviewRepository) ListAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	err := applyReviewDetails(r.db.WithContext(ctx).Model(&models.Review{}), 0).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// ViewerMarks returns the sets of review IDs the user has upvoted and
// bookmarked, for overlaying onto a viewer-neutral list.
func (r *reviewRepository) ViewerMarks(ctx context.Context, userID uint) (map[uint]bool, map[uint]bool, error) {
	var upvotedIDs, bookmarkedIDs []uint
	if err := r.db.WithContext(ctx).Model(&models.ReviewUpvote{}).
		Where("user_id = ?", userID).
		Pluck("review_id", &upvotedIDs).Error; err != nil {
		return nil, nil, err
	}
	if err := r.db.WithContext(ctx).Model(&models.ReviewBookmark{}).
		Where("user_id = ?", userID).
		Pluck("review_id", &bookmarkedIDs).Error; err != nil {
		return nil, nil, err
	}

	upvoted := make(map[uint]bool, len(upvotedIDs))
	for _, id := range upvotedIDs {
		upvoted[id] = true
	}
	bookmarked := make(map[uint]bool, len(bookmarkedIDs))
	for _, id := range bookmarkedIDs {
		bookmarked[id] = true
	}
	return upvoted, bookmarked, nil
}

func (r *reviewRepository) ListByUserID(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := applyReviewDetails(r.db.WithContext(ctx).Model(&models.Review{}), userID).
		Where("reviews.user_id = ?", userID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) ListBookmarked(ctx context.Context, userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := applyReviewDetails(r.db.WithContext(ctx).Model(&models.Review{}), userID).
		Joins("JOIN review_bookmarks rb ON rb.review_id = reviews.id AND rb.user_id = ?", userID).
		Order("rb.created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ToggleUpvote flips the viewer's upvote on a review. The insert relies on the
// unique (user_id, review_id) index so concurrent toggles stay idempotent.
// Returns true when the review is upvoted after the call.
func (r *reviewRepository) ToggleUpvote(ctx context.Context, userID, reviewID uint) (bool, error) {
	upvote := models.ReviewUpvote{UserID: userID, ReviewID: reviewID}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&upvote)
	if result.Error != nil {
		return false, result.Error
	}

	upvoted := true
	if result.RowsAffected == 0 {
		// Already upvoted; remove it.
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND review_id = ?", userID, reviewID).
			Delete(&models.ReviewUpvote{}).Error; err != nil {
			return false, err
		}
		upvoted = false
	}

	cache.InvalidateReview(ctx, reviewID)
	cache.InvalidateFeed(ctx)
	return upvoted, nil
}

// ToggleBookmark flips the viewer's bookmark on a review. Returns true when
// the review is bookmarked after the call.
func (r *reviewRepository) ToggleBookmark(ctx context.Context, userID, reviewID uint) (bool, error) {
	bookmark := models.ReviewBookmark{UserID: userID, ReviewID: reviewID}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&bookmark)
	if result.Error != nil {
		return false, result.Error
	}

	bookmarked := true
	if result.RowsAffected == 0 {
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND review_id = ?", userID, reviewID).
			Delete(&models.ReviewBookmark{}).Error; err != nil {
			return false, err
		}
		bookmarked = false
	}

	cache.InvalidateReview(ctx, reviewID)
	return bookmarked, nil
}
