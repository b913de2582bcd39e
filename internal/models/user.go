// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an authenticated student profile in the portal.
//
// ProfileCompleted and OnboardingComplete drive the session gate:
// a fresh account must save its profile and then submit two reviews
// before the rest of the app opens up. OnboardingComplete is only ever
// set inside the onboarding completion transaction, together with the
// two review inserts.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	FullName         string `json:"full_name"`
	Age              int    `json:"age"`
	Semester         int    `json:"semester"`
	Program          string `json:"program"`
	ExpectedGradYear int    `json:"expected_grad_year"`

	ProfileCompleted   bool `gorm:"not null;default:false" json:"profile_completed"`
	OnboardingComplete bool `gorm:"not null;default:false" json:"onboarding_complete"`
	IsAdmin            bool `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Reviews      []Review      `gorm:"foreignKey:UserID" json:"reviews,omitempty"`
	Applications []Application `gorm:"foreignKey:UserID" json:"applications,omitempty"`
}
