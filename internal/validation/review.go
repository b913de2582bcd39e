package validation

import (
	"strings"

	"internhub/internal/models"
)

var validDifficulties = map[string]struct{}{
	models.DifficultyEasy:     {},
	models.DifficultyModerate: {},
	models.DifficultyHard:     {},
}

var validOfferOutcomes = map[string]struct{}{
	models.OfferAccepted:  {},
	models.OfferRejected:  {},
	models.OfferInProcess: {},
}

var validProgramTypes = map[string]struct{}{
	models.ProgramTypeMT:         {},
	models.ProgramTypeInternship: {},
}

// ValidateReview checks a review draft against the required-field policy and
// returns every violated rule at once so the caller can render all errors
// together. An empty slice means the draft is acceptable.
func ValidateReview(d *models.ReviewDraft) []string {
	var errs []string

	if d.ResolvedCompany() == "" {
		errs = append(errs, "Company name required")
	}
	if _, ok := validProgramTypes[d.ProgramType]; !ok {
		errs = append(errs, "Program type must be MT-Program or Internship")
	}
	if _, ok := validDifficulties[d.Difficulty]; !ok {
		errs = append(errs, "Process difficulty must be Easy, Moderate or Hard")
	}
	if strings.TrimSpace(d.Assessment) == "" {
		errs = append(errs, "Assessment narrative required")
	}
	if strings.TrimSpace(d.InterviewQuestions) == "" {
		errs = append(errs, "Interview questions required")
	}
	if len(d.InterviewModes) == 0 {
		errs = append(errs, "At least one interview mode required")
	}
	if !ValidateStipend(d.Stipend) {
		errs = append(errs, "Invalid stipend format (use 'min-max')")
	}
	if d.HiringRating < 1 || d.HiringRating > 5 {
		errs = append(errs, "Hiring rating must be between 1 and 5")
	}
	if d.RedFlagRating < 1 || d.RedFlagRating > 5 {
		errs = append(errs, "Red flag rating must be between 1 and 5")
	}
	if d.Semester < 1 || d.Semester > 8 {
		errs = append(errs, "Semester must be between 1 and 8")
	}
	if _, ok := validOfferOutcomes[d.OfferOutcome]; !ok {
		errs = append(errs, "Outcome must be Accepted, Rejected or In Process")
	}

	return errs
}
