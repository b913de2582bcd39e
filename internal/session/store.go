package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"internhub/internal/models"

	"github.com/redis/go-redis/v9"
)

// Onboarding wizard steps.
const (
	StepFirstReview  = 0
	StepSecondReview = 1
)

// OnboardingState is the serializable wizard state for one user: the
// in-progress pair of review drafts plus the current step cursor. It is
// discarded once both drafts are committed as reviews.
type OnboardingState struct {
	Step    int                  `json:"step"`
	Drafts  []models.ReviewDraft `json:"drafts"`
	Attempt string               `json:"attempt"`
}

// NewOnboardingState returns a fresh state at step 0. Attempt is a
// client-generation idempotency key scoped to one pass through the wizard.
func NewOnboardingState(attempt string) *OnboardingState {
	return &OnboardingState{
		Step:    StepFirstReview,
		Drafts:  make([]models.ReviewDraft, 2),
		Attempt: attempt,
	}
}

// DraftStore persists in-progress onboarding wizard state between requests.
type DraftStore interface {
	Get(ctx context.Context, userID uint) (*OnboardingState, error)
	Put(ctx context.Context, userID uint, state *OnboardingState) error
	Clear(ctx context.Context, userID uint) error
}

// onboardingTTL bounds how long an abandoned wizard survives. Losing a stale
// draft only restarts the wizard; nothing is persisted until completion.
const onboardingTTL = 24 * time.Hour

const onboardingKeyPrefix = "onboarding:%d"

// RedisDraftStore keeps wizard state as JSON in Redis.
type RedisDraftStore struct {
	rdb *redis.Client
}

// NewRedisDraftStore returns a DraftStore backed by the given Redis client.
func NewRedisDraftStore(rdb *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{rdb: rdb}
}

func onboardingKey(userID uint) string {
	return fmt.Sprintf(onboardingKeyPrefix, userID)
}

func (s *RedisDraftStore) Get(ctx context.Context, userID uint) (*OnboardingState, error) {
	if s.rdb == nil {
		return nil, errors.New("draft store unavailable")
	}
	raw, err := s.rdb.Get(ctx, onboardingKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state OnboardingState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisDraftStore) Put(ctx context.Context, userID uint, state *OnboardingState) error {
	if s.rdb == nil {
		return errors.New("draft store unavailable")
	}
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, onboardingKey(userID), b, onboardingTTL).Err()
}

func (s *RedisDraftStore) Clear(ctx context.Context, userID uint) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, onboardingKey(userID)).Err()
}
