package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Program types.
const (
	ProgramTypeMT         = "MT-Program"
	ProgramTypeInternship = "Internship"
)

// Process difficulty.
const (
	DifficultyEasy     = "Easy"
	DifficultyModerate = "Moderate"
	DifficultyHard     = "Hard"
)

// Offer outcomes.
const (
	OfferAccepted  = "Accepted"
	OfferRejected  = "Rejected"
	OfferInProcess = "In Process"
)

// Interview round outcomes.
const (
	RoundCleared    = "Cleared"
	RoundNotCleared = "Not Cleared"
	RoundPending    = "Pending"
)

// Industries offered on the review form.
var Industries = []string{"Tech", "Finance", "Marketing", "HR", "Operations", "Other"}

// AnonymousLabel is the display name used when a review is posted anonymously.
const AnonymousLabel = "Anonymous"

// StipendNotSpecified is the sentinel some legacy records carry instead of an
// empty stipend field. The feed filter treats it the same as absent.
const StipendNotSpecified = "Not Specified"

// ReviewSchemaVersion is the canonical schema version written by this code.
// Records below this version carry pre-rename field spellings and are
// normalized by database.NormalizeLegacyReviews on startup.
const ReviewSchemaVersion = 2

// CompanyCatalogue is the fixed company list offered on the review form.
// "Other" switches the form to a free-text company name.
var CompanyCatalogue = []string{
	"Unilever Pakistan",
	"Reckitt Benckiser",
	"Procter & Gamble",
	"Nestlé Pakistan",
	"L'Oréal Pakistan",
	"Coca-Cola Pakistan",
	"PepsiCo Pakistan",
	"Other",
}

// StringList is a string slice persisted as a JSON array in a text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		if v == "" {
			*l = nil
			return nil
		}
		return json.Unmarshal([]byte(v), l)
	case []byte:
		if len(v) == 0 {
			*l = nil
			return nil
		}
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Review is a peer-submitted company interview report.
//
// Upvoters and bookmarkers live in join tables (ReviewUpvote, ReviewBookmark)
// with a unique (user_id, review_id) index, so a user appears at most once in
// either set no matter how races resolve. The counts and the current user's
// membership are computed at query time, never persisted.
type Review struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	ProgramType        string     `gorm:"not null" json:"program_type"`
	Company            string     `gorm:"not null;index" json:"company"`
	Industry           string     `gorm:"not null" json:"industry"`
	Difficulty         string     `gorm:"not null" json:"difficulty"`
	Assessment         string     `gorm:"type:text" json:"assessment"`
	AssessmentMethods  StringList `gorm:"type:text" json:"assessment_methods"`
	InterviewModes     StringList `gorm:"type:text" json:"interview_modes"`
	InterviewQuestions string     `gorm:"type:text" json:"interview_questions"`
	Stipend            string     `json:"stipend"`
	HiringRating       int        `gorm:"not null" json:"hiring_rating"`
	RedFlagRating      int        `gorm:"not null" json:"red_flag_rating"`
	ReferralUsed       bool       `json:"referral_used"`
	Semester           int        `json:"semester"`
	InterviewOutcome   string     `json:"interview_outcome"`
	OfferOutcome       string     `gorm:"not null" json:"offer_outcome"`

	Anonymous     bool   `gorm:"not null;default:false" json:"anonymous"`
	ReviewerName  string `gorm:"not null" json:"reviewer_name"`
	SchemaVersion int    `gorm:"not null;default:2" json:"-"`

	// UpvotesCount is not persisted; computed at query time
	UpvotesCount int `gorm:"->" json:"upvotes_count"`
	// BookmarksCount is not persisted; computed at query time
	BookmarksCount int `gorm:"->" json:"bookmarks_count"`
	// Upvoted indicates whether the current requesting user upvoted this review (computed)
	Upvoted bool `gorm:"->" json:"upvoted"`
	// Bookmarked indicates whether the current requesting user bookmarked this review (computed)
	Bookmarked bool `gorm:"->" json:"bookmarked"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ReviewUpvote records a user's upvote on a review.
// The combination of UserID and ReviewID must be unique.
type ReviewUpvote struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_upvote_user_review" json:"user_id"`
	ReviewID uint `gorm:"not null;uniqueIndex:idx_upvote_user_review" json:"review_id"`

	CreatedAt time.Time `json:"created_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Review Review `gorm:"foreignKey:ReviewID" json:"-"`
}

// ReviewBookmark records a user's bookmark of a review.
// The combination of UserID and ReviewID must be unique.
type ReviewBookmark struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_bookmark_user_review" json:"user_id"`
	ReviewID uint `gorm:"not null;uniqueIndex:idx_bookmark_user_review" json:"review_id"`

	CreatedAt time.Time `json:"created_at"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Review Review `gorm:"foreignKey:ReviewID" json:"-"`
}

// ReviewDraft is the raw submitted form payload for a review, used both for
// onboarding wizard steps and post-onboarding submissions. It is not
// persisted as-is; drafts become Review rows only on commit.
type ReviewDraft struct {
	ProgramType        string   `json:"program_type"`
	Company            string   `json:"company"`
	CustomCompany      string   `json:"custom_company"`
	Industry           string   `json:"industry"`
	Difficulty         string   `json:"difficulty"`
	Assessment         string   `json:"assessment"`
	AssessmentMethods  []string `json:"assessment_methods"`
	InterviewModes     []string `json:"interview_modes"`
	InterviewQuestions string   `json:"interview_questions"`
	Stipend            string   `json:"stipend"`
	HiringRating       int      `json:"hiring_rating"`
	RedFlagRating      int      `json:"red_flag_rating"`
	ReferralUsed       bool     `json:"referral_used"`
	Semester           int      `json:"semester"`
	InterviewOutcome   string   `json:"interview_outcome"`
	OfferOutcome       string   `json:"offer_outcome"`
	Anonymous          bool     `json:"anonymous"`
}

// ResolvedCompany returns the effective company name: the free-text entry
// when "Other" is selected, otherwise the catalogue pick.
func (d *ReviewDraft) ResolvedCompany() string {
	if d.Company == "Other" {
		return strings.TrimSpace(d.CustomCompany)
	}
	return strings.TrimSpace(d.Company)
}

// ResolveReviewerName returns the display name stored on a review at
// submission time: the profile's full name for attributed posts, the
// anonymous label otherwise. A blank profile name degrades to anonymous.
func ResolveReviewerName(anonymous bool, profileFullName string) string {
	name := strings.TrimSpace(profileFullName)
	if anonymous || name == "" {
		return AnonymousLabel
	}
	return name
}

// StarRating renders n as a fixed glyph repeated n times, clamped to 0-5.
func StarRating(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n)
}

// NewReview builds a persisted Review from a validated draft. Upvoter and
// bookmarker sets start empty; the creation timestamp is server-assigned on
// insert.
func NewReview(userID uint, d *ReviewDraft, profileFullName string) *Review {
	return &Review{
		UserID:             userID,
		ProgramType:        d.ProgramType,
		Company:            d.ResolvedCompany(),
		Industry:           d.Industry,
		Difficulty:         d.Difficulty,
		Assessment:         d.Assessment,
		AssessmentMethods:  d.AssessmentMethods,
		InterviewModes:     d.InterviewModes,
		InterviewQuestions: d.InterviewQuestions,
		Stipend:            strings.TrimSpace(d.Stipend),
		HiringRating:       d.HiringRating,
		RedFlagRating:      d.RedFlagRating,
		ReferralUsed:       d.ReferralUsed,
		Semester:           d.Semester,
		InterviewOutcome:   d.InterviewOutcome,
		OfferOutcome:       d.OfferOutcome,
		Anonymous:          d.Anonymous,
		ReviewerName:       ResolveReviewerName(d.Anonymous, profileFullName),
		SchemaVersion:      ReviewSchemaVersion,
	}
}

// ApplyDraft replaces the authored fields of an existing review with the
// draft's values. Author identity, creation timestamp and the upvoter and
// bookmarker sets are left untouched so edits never reset social state.
func (r *Review) ApplyDraft(d *ReviewDraft, profileFullName string) {
	r.ProgramType = d.ProgramType
	r.Company = d.ResolvedCompany()
	r.Industry = d.Industry
	r.Difficulty = d.Difficulty
	r.Assessment = d.Assessment
	r.AssessmentMethods = d.AssessmentMethods
	r.InterviewModes = d.InterviewModes
	r.InterviewQuestions = d.InterviewQuestions
	r.Stipend = strings.TrimSpace(d.Stipend)
	r.HiringRating = d.HiringRating
	r.RedFlagRating = d.RedFlagRating
	r.ReferralUsed = d.ReferralUsed
	r.Semester = d.Semester
	r.InterviewOutcome = d.InterviewOutcome
	r.OfferOutcome = d.OfferOutcome
	r.Anonymous = d.Anonymous
	r.ReviewerName = ResolveReviewerName(d.Anonymous, profileFullName)
	r.SchemaVersion = ReviewSchemaVersion
}
