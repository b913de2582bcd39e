package models

import (
	"time"

	"gorm.io/gorm"
)

// Application pipeline statuses, in pipeline order.
const (
	StatusNeedToApply     = "Need to Apply"
	StatusApplied         = "Applied"
	StatusAssessmentGiven = "Assessment Given"
	StatusInterviewR1     = "Interview R1 given"
	StatusInterviewR2     = "Interview R2 given"
	StatusInterviewR3     = "Interview R3 given"
	StatusAccepted        = "Accepted"
	StatusOfferReceived   = "Offer Received"
	StatusRejected        = "Rejected"
)

// ApplicationStatuses lists the pipeline in display order.
var ApplicationStatuses = []string{
	StatusNeedToApply,
	StatusApplied,
	StatusAssessmentGiven,
	StatusInterviewR1,
	StatusInterviewR2,
	StatusInterviewR3,
	StatusAccepted,
	StatusOfferReceived,
	StatusRejected,
}

// Application is one row in a user's private job application tracker.
// Rows are fully owned by one user; there is no cross-user visibility.
type Application struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	CompanyName     string     `gorm:"not null" json:"company_name"`
	Status          string     `json:"status"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	ReferralDetails string     `json:"referral_details"`
	Link            string     `json:"link"`
	Notes           string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// KPIs summarizes a user's application pipeline.
// InProgress counts everything that is neither a received offer nor a
// rejection; rows lacking a status entirely count as in progress.
type KPIs struct {
	Total      int `json:"total"`
	Rejected   int `json:"rejected"`
	InProgress int `json:"in_progress"`
}
