// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"internhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateStudent persists a user with a completed profile. The email uses the
// first allowed institutional domain so seeded accounts pass the signup gate.
func (f *Factory) CreateStudent(domain string, overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("SeededPassw0rd!23"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	user := &models.User{
		Email:            fmt.Sprintf("%s.%s.%d%s", first, last, f.rand.Intn(10000), domain),
		Password:         string(hashed),
		FullName:         first + " " + last,
		Age:              18 + f.rand.Intn(8),
		Semester:         1 + f.rand.Intn(8),
		Program:          gofakeit.RandomString([]string{"BBA", "BS Computer Science", "BS Accounting & Finance", "BS Economics"}),
		ExpectedGradYear: time.Now().Year() + 1 + f.rand.Intn(4),
		ProfileCompleted: true,
	}

	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildReview constructs a plausible review for the user without persisting it.
func (f *Factory) BuildReview(user *models.User, overrides ...func(*models.Review)) *models.Review {
	draft := &models.ReviewDraft{
		ProgramType:        gofakeit.RandomString([]string{models.ProgramTypeMT, models.ProgramTypeInternship}),
		Company:            models.CompanyCatalogue[f.rand.Intn(len(models.CompanyCatalogue)-1)],
		Industry:           models.Industries[f.rand.Intn(len(models.Industries))],
		Difficulty:         gofakeit.RandomString([]string{models.DifficultyEasy, models.DifficultyModerate, models.DifficultyHard}),
		Assessment:         gofakeit.Paragraph(1, 2, 8, " "),
		AssessmentMethods:  []string{"Case Study", "Aptitude Test"},
		InterviewModes:     []string{gofakeit.RandomString([]string{"On-site", "Online", "Phone"})},
		InterviewQuestions: gofakeit.Question(),
		Stipend:            f.randomStipend(),
		HiringRating:       1 + f.rand.Intn(5),
		RedFlagRating:      1 + f.rand.Intn(5),
		ReferralUsed:       gofakeit.Bool(),
		Semester:           1 + f.rand.Intn(8),
		InterviewOutcome:   gofakeit.RandomString([]string{models.RoundCleared, models.RoundNotCleared, models.RoundPending}),
		OfferOutcome:       gofakeit.RandomString([]string{models.OfferAccepted, models.OfferRejected, models.OfferInProcess}),
		Anonymous:          f.rand.Intn(3) == 0,
	}

	review := models.NewReview(user.ID, draft, user.FullName)
	// realistic created_at spread across the last 90 days
	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	review.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(review)
	}
	return review
}

// CreateApplication persists a tracker row for the user.
func (f *Factory) CreateApplication(user *models.User, overrides ...func(*models.Application)) (*models.Application, error) {
	var deadline *time.Time
	if gofakeit.Bool() {
		d := time.Now().Add(time.Duration(1+f.rand.Intn(60)) * 24 * time.Hour)
		deadline = &d
	}

	app := &models.Application{
		UserID:      user.ID,
		CompanyName: gofakeit.Company(),
		Status:      models.ApplicationStatuses[f.rand.Intn(len(models.ApplicationStatuses))],
		Deadline:    deadline,
		Link:        gofakeit.URL(),
		Notes:       gofakeit.Sentence(8),
	}
	if gofakeit.Bool() {
		app.ReferralDetails = gofakeit.Name()
	}

	for _, override := range overrides {
		override(app)
	}
	if err := f.db.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (f *Factory) randomStipend() string {
	// roughly a third of seeded reviews leave the stipend blank, matching the
	// optional field being skipped in practice
	if f.rand.Intn(3) == 0 {
		return ""
	}
	min := (2 + f.rand.Intn(6)) * 10000
	max := min + (1+f.rand.Intn(4))*5000
	return fmt.Sprintf("%d-%d", min, max)
}
