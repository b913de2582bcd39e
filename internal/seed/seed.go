package seed

import (
	"log"
	"strings"

	"internhub/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	EmailDomain string
	ShouldClean bool
}

// Seed populates the database with demo students, reviews and tracker rows.
// Every seeded student is past onboarding (two or more reviews, flag set) so
// the feed has content on first load.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	domain := strings.TrimSpace(opts.EmailDomain)
	if domain == "" {
		domain = "@iba.edu.pk"
	}

	log.Printf("Seeding database with %d users...", opts.NumUsers)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)

	var users []*models.User
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateStudent(domain, func(u *models.User) {
			u.OnboardingComplete = true
		})
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	var reviews []*models.Review
	for _, user := range users {
		// two onboarding reviews plus the occasional extra
		count := 2 + factory.rand.Intn(2)
		for i := 0; i < count; i++ {
			review := factory.BuildReview(user)
			if err := db.Create(review).Error; err != nil {
				return err
			}
			reviews = append(reviews, review)
		}
	}

	// upvotes and bookmarks across the mesh; the unique index makes repeats
	// a no-op at the DB level, so we just avoid them here
	for _, user := range users {
		for _, review := range reviews {
			if review.UserID == user.ID || factory.rand.Intn(4) != 0 {
				continue
			}
			if err := db.Create(&models.ReviewUpvote{UserID: user.ID, ReviewID: review.ID}).Error; err != nil {
				return err
			}
			if factory.rand.Intn(3) == 0 {
				if err := db.Create(&models.ReviewBookmark{UserID: user.ID, ReviewID: review.ID}).Error; err != nil {
					return err
				}
			}
		}
	}

	for _, user := range users {
		count := factory.rand.Intn(6)
		for i := 0; i < count; i++ {
			if _, err := factory.CreateApplication(user); err != nil {
				return err
			}
		}
	}

	log.Printf("Seeding complete: %d users, %d reviews", len(users), len(reviews))
	return nil
}

func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.ReviewUpvote{},
		&models.ReviewBookmark{},
		&models.Application{},
		&models.Review{},
		&models.User{},
	} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
