package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix   = "user:%d"
	ReviewKeyPrefix = "review:%d"
	FeedListKey     = "reviews:feed:first"
)

const (
	UserTTL   = 5 * time.Minute
	ReviewTTL = 10 * time.Minute
	FeedTTL   = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ReviewKey(reviewID uint) string {
	return fmt.Sprintf(ReviewKeyPrefix, reviewID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateReview(ctx context.Context, reviewID uint) {
	Invalidate(ctx, ReviewKey(reviewID))
}

// InvalidateFeed drops the cached unfiltered first feed page. Called on every
// review create, edit, delete and toggle since all of them change the list.
func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedListKey)
}
