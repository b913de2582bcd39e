// Package session holds the per-user session routing gate and the onboarding
// wizard draft store. Session state is an explicit serializable object; all
// mutation goes through the onboarding service's transition table.
package session

// Page identifies a top-level surface the client should render.
type Page string

const (
	ShowProfileForm     Page = "profile_form"
	ShowOnboarding      Page = "onboarding"
	ShowUserProfilePage Page = "user_profile"
	ShowFeedPage        Page = "feed"
)

// Decide picks exactly one surface for the session. Profile incompleteness
// dominates onboarding incompleteness, which dominates normal routing; a
// pending edit-review form forces the feed page regardless of the requested
// page. An unknown requested page falls back to the user profile.
func Decide(profileCompleted, onboardingComplete, hasPendingEditForm bool, requested Page) Page {
	if !profileCompleted {
		return ShowProfileForm
	}
	if !onboardingComplete {
		return ShowOnboarding
	}
	if hasPendingEditForm {
		return ShowFeedPage
	}
	switch requested {
	case ShowFeedPage:
		return ShowFeedPage
	default:
		return ShowUserProfilePage
	}
}
