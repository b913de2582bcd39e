package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "internhub_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// OnboardingCompletions counts successful onboarding completion transactions.
	OnboardingCompletions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "internhub_onboarding_completions_total",
		Help: "Total number of users who completed the two-review onboarding",
	})

	// ReviewSubmissions counts review submissions by origin (onboarding or feed).
	ReviewSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "internhub_review_submissions_total",
		Help: "Total number of submitted reviews by origin",
	}, []string{"origin"})

	// ReviewToggles counts upvote/bookmark toggles by kind and direction.
	ReviewToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "internhub_review_toggles_total",
		Help: "Total number of upvote and bookmark toggles",
	}, []string{"kind", "direction"})
)
