package service

import (
	"testing"

	"launch-go/internal/dto"
	"launch-go/internal/models"
	"launch-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRevenueService(t *testing.T) (*RevenueService, *repository.ProductRepository) {
	t.Helper()
	db := setupTestDB(t)
	productRepo := repository.NewProductRepository(db)
	return NewRevenueService(repository.NewRevenueRepository(db), productRepo), productRepo
}

func TestCreateGoal(t *testing.T) {
	svc, _ := newRevenueService(t)

	resp, err := svc.CreateGoal(1, &dto.CreateRevenueGoalRequest{
		Title:        "Q4 launch revenue",
		TargetAmount: 50000,
		Deadline:     "2026-12-31T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "Q4 launch revenue", resp.Title)
	assert.Equal(t, "2026-12-31T00:00:00Z", resp.Deadline)

	_, err = svc.CreateGoal(1, &dto.CreateRevenueGoalRequest{
		Title:        "bad deadline",
		TargetAmount: 100,
		Deadline:     "31/12/2026",
	})
	assert.Error(t, err)
}

func TestUpdateGoal_TenantIsolation(t *testing.T) {
	svc, _ := newRevenueService(t)

	resp, err := svc.CreateGoal(1, &dto.CreateRevenueGoalRequest{Title: "goal", TargetAmount: 100})
	require.NoError(t, err)

	title := "renamed"
	_, err = svc.UpdateGoal(resp.ID, 2, &dto.UpdateRevenueGoalRequest{Title: &title})
	assert.ErrorIs(t, err, ErrGoalNotFound)

	updated, err := svc.UpdateGoal(resp.ID, 1, &dto.UpdateRevenueGoalRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
}

func TestGetProgress(t *testing.T) {
	svc, productRepo := newRevenueService(t)

	_, err := svc.CreateGoal(1, &dto.CreateRevenueGoalRequest{Title: "a", TargetAmount: 30000})
	require.NoError(t, err)
	_, err = svc.CreateGoal(1, &dto.CreateRevenueGoalRequest{Title: "b", TargetAmount: 20000})
	require.NoError(t, err)

	// 只有已发布产品的营收计入
	require.NoError(t, productRepo.Create(&models.Product{
		TenantID: 1, Name: "A", ProductType: "physical",
		Status: models.ProductStatusLaunched, Revenue: 10000,
	}))
	require.NoError(t, productRepo.Create(&models.Product{
		TenantID: 1, Name: "B", ProductType: "digital",
		Status: models.ProductStatusDraft, Revenue: 99999,
	}))
	require.NoError(t, productRepo.Create(&models.Product{
		TenantID: 2, Name: "C", ProductType: "physical",
		Status: models.ProductStatusLaunched, Revenue: 500,
	}))

	resp, err := svc.GetProgress(1)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, resp.TotalTarget)
	assert.Equal(t, 10000.0, resp.TotalRevenue)
	assert.InDelta(t, 0.2, resp.Progress, 0.001)
	assert.Len(t, resp.Goals, 2)
}

func TestGetProgress_NoGoals(t *testing.T) {
	svc, _ := newRevenueService(t)

	resp, err := svc.GetProgress(1)
	require.NoError(t, err)
	assert.Zero(t, resp.TotalTarget)
	assert.Zero(t, resp.Progress)
	assert.Empty(t, resp.Goals)
}
