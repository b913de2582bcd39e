package service

import (
	"context"
	"testing"
	"time"

	"internhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfileInput() ProfileInput {
	return ProfileInput{
		FullName:         "Ayesha Khan",
		Age:              21,
		Semester:         6,
		Program:          "BBA",
		ExpectedGradYear: time.Now().Year() + 1,
	}
}

func TestUserService_SaveProfileMarksComplete(t *testing.T) {
	userRepo := noopUserRepo()
	var savedFields map[string]any
	userRepo.updateFieldsFn = func(_ context.Context, _ uint, fields map[string]any) error {
		savedFields = fields
		return nil
	}

	svc := NewUserService(userRepo, noopReviewRepo())

	_, err := svc.SaveProfile(context.Background(), 7, validProfileInput())
	require.NoError(t, err)
	assert.Equal(t, true, savedFields["profile_completed"])
	assert.Equal(t, "Ayesha Khan", savedFields["full_name"])
}

func TestUserService_SaveProfileValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProfileInput)
	}{
		{"blank name", func(in *ProfileInput) { in.FullName = " " }},
		{"age too low", func(in *ProfileInput) { in.Age = 15 }},
		{"semester out of range", func(in *ProfileInput) { in.Semester = 9 }},
		{"blank program", func(in *ProfileInput) { in.Program = "" }},
		{"graduation year in the past", func(in *ProfileInput) { in.ExpectedGradYear = time.Now().Year() - 1 }},
	}

	svc := NewUserService(noopUserRepo(), noopReviewRepo())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProfileInput()
			tt.mutate(&in)

			_, err := svc.SaveProfile(context.Background(), 7, in)

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestUserService_ReviewCount(t *testing.T) {
	reviewRepo := noopReviewRepo()
	reviewRepo.countByUserFn = func(_ context.Context, _ uint) (int64, error) { return 3, nil }

	svc := NewUserService(noopUserRepo(), reviewRepo)

	count, err := svc.ReviewCount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
