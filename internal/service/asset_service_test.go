package service

import (
	"testing"
	"time"

	"launch-go/internal/models"
	"launch-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssetService(t *testing.T) (*AssetService, *repository.AssetRepository) {
	t.Helper()
	db := setupTestDB(t)
	assetRepo := repository.NewAssetRepository(db)
	return NewAssetService(assetRepo), assetRepo
}

func storedAsset(t *testing.T, repo *repository.AssetRepository, tenantID uint, status string) *models.GeneratedAsset {
	t.Helper()
	asset := &models.GeneratedAsset{
		AssetID:       "asset-" + status,
		TenantID:      tenantID,
		ProductID:     1,
		AssetType:     "headline",
		AssetCategory: models.AssetCategoryCopywriting,
		Content:       "some generated copy",
		Status:        status,
		QualityCheck: models.QualityCheckResult{
			Passed:    status == models.AssetStatusApproved,
			Score:     85,
			Timestamp: time.Now(),
		},
	}
	require.NoError(t, repo.Create(asset))
	return asset
}

func TestGetAsset(t *testing.T) {
	svc, repo := newAssetService(t)
	asset := storedAsset(t, repo, 1, models.AssetStatusApproved)

	resp, err := svc.GetAsset(asset.AssetID, 1)
	require.NoError(t, err)
	assert.Equal(t, asset.AssetID, resp.AssetID)
	assert.Equal(t, 85, resp.QualityCheck.Score)

	// 跨租户不可见
	_, err = svc.GetAsset(asset.AssetID, 2)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = svc.GetAsset("no-such-asset", 1)
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestReviewAsset(t *testing.T) {
	svc, repo := newAssetService(t)
	asset := storedAsset(t, repo, 1, models.AssetStatusNeedsReview)

	require.NoError(t, svc.ReviewAsset(asset.AssetID, 1, models.AssetStatusApproved))

	stored, err := repo.GetByAssetID(asset.AssetID, 1)
	require.NoError(t, err)
	assert.Equal(t, models.AssetStatusApproved, stored.Status)

	// 质量检查结果保持不变，复核只改状态
	assert.Equal(t, 85, stored.QualityCheck.Score)

	assert.ErrorIs(t, svc.ReviewAsset(asset.AssetID, 2, models.AssetStatusNeedsReview), ErrAssetNotFound)
}

func TestListAssets(t *testing.T) {
	svc, repo := newAssetService(t)
	storedAsset(t, repo, 1, models.AssetStatusApproved)
	storedAsset(t, repo, 1, models.AssetStatusNeedsReview)

	resp, err := svc.ListAssets(1, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
}
