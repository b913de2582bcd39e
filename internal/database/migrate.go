package database

import (
	"log/slog"

	"internhub/internal/middleware"
	"internhub/internal/models"

	"gorm.io/gorm"
)

// NormalizeLegacyReviews rewrites review rows written under earlier form
// revisions into the canonical schema. Earlier revisions used different value
// spellings ("Yes"/"No" referral flags were already migrated to booleans by
// AutoMigrate; the remaining drift is value-level):
//
//	v0: stipend stored as the literal "Not Specified" instead of empty,
//	    reviewer_name possibly blank, program_type absent (defaulted to
//	    Internship — the only program the original form offered).
//	v1: offer outcome "In-Process" with a hyphen.
//
// The pass is idempotent: it only touches rows below the current schema
// version and stamps them when done.
func NormalizeLegacyReviews(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		legacy := tx.Model(&models.Review{}).Where("schema_version < ?", models.ReviewSchemaVersion)

		var count int64
		if err := legacy.Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		if err := tx.Model(&models.Review{}).
			Where("schema_version < ? AND stipend = ?", models.ReviewSchemaVersion, models.StipendNotSpecified).
			Update("stipend", "").Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Review{}).
			Where("schema_version < ? AND (reviewer_name = '' OR reviewer_name IS NULL)", models.ReviewSchemaVersion).
			Update("reviewer_name", models.AnonymousLabel).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Review{}).
			Where("schema_version < ? AND (program_type = '' OR program_type IS NULL)", models.ReviewSchemaVersion).
			Update("program_type", models.ProgramTypeInternship).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Review{}).
			Where("schema_version < ? AND offer_outcome = ?", models.ReviewSchemaVersion, "In-Process").
			Update("offer_outcome", models.OfferInProcess).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Review{}).
			Where("schema_version < ?", models.ReviewSchemaVersion).
			Update("schema_version", models.ReviewSchemaVersion).Error; err != nil {
			return err
		}

		middleware.Logger.Info("Normalized legacy review records", slog.Int64("count", count))
		return nil
	})
}
