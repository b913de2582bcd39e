package service

import (
	"context"
	"testing"

	"internhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeKPIs(t *testing.T) {
	tests := []struct {
		name string
		apps []models.Application
		want models.KPIs
	}{
		{
			name: "empty tracker",
			want: models.KPIs{},
		},
		{
			name: "mixed pipeline",
			apps: []models.Application{
				{Status: models.StatusApplied},
				{Status: models.StatusRejected},
				{Status: models.StatusOfferReceived},
				{Status: models.StatusInterviewR2},
				{Status: models.StatusRejected},
			},
			want: models.KPIs{Total: 5, Rejected: 2, InProgress: 2},
		},
		{
			name: "missing status counts as in progress",
			apps: []models.Application{
				{Status: ""},
				{Status: models.StatusRejected},
			},
			want: models.KPIs{Total: 2, Rejected: 1, InProgress: 1},
		},
		{
			name: "accepted is still in progress until the offer arrives",
			apps: []models.Application{
				{Status: models.StatusAccepted},
			},
			want: models.KPIs{Total: 1, InProgress: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeKPIs(tt.apps))
		})
	}
}

func TestApplicationService_AddValidates(t *testing.T) {
	svc := NewApplicationService(noopAppRepo())

	_, err := svc.Add(context.Background(), 7, &models.Application{CompanyName: "  "})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	_, err = svc.Add(context.Background(), 7, &models.Application{
		CompanyName: "Unilever Pakistan",
		Status:      "Ghosted",
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestApplicationService_AddAssignsOwner(t *testing.T) {
	repo := noopAppRepo()
	svc := NewApplicationService(repo)

	app, err := svc.Add(context.Background(), 7, &models.Application{
		ID:          999, // client-supplied IDs are ignored
		CompanyName: "Unilever Pakistan",
		Status:      models.StatusNeedToApply,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), app.UserID)
	assert.Zero(t, app.ID)
}

func TestApplicationService_OwnershipEnforced(t *testing.T) {
	repo := noopAppRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Application, error) {
		return &models.Application{ID: id, UserID: 99, CompanyName: "X"}, nil
	}
	svc := NewApplicationService(repo)

	var appErr *models.AppError

	_, err := svc.Update(context.Background(), 7, 3, &models.Application{CompanyName: "Y"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	err = svc.Delete(context.Background(), 7, 3)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestApplicationService_ReplaceAll(t *testing.T) {
	repo := noopAppRepo()
	var replacedFor uint
	repo.replaceAllFn = func(_ context.Context, userID uint, apps []models.Application) ([]models.Application, error) {
		replacedFor = userID
		return apps, nil
	}
	svc := NewApplicationService(repo)

	apps, err := svc.ReplaceAll(context.Background(), 7, []models.Application{
		{CompanyName: "A", Status: models.StatusApplied},
		{CompanyName: "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), replacedFor)
	require.Len(t, apps, 2)
	assert.Equal(t, uint(7), apps[0].UserID)

	// one invalid row rejects the whole replace
	_, err = svc.ReplaceAll(context.Background(), 7, []models.Application{
		{CompanyName: "A"},
		{CompanyName: ""},
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
