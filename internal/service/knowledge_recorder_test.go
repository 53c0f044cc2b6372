package service

import (
	"testing"

	"launch-go/internal/models"
	"launch-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeRecorder_RecordAndDrain(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewKnowledgeRepository(db)

	kr := NewKnowledgeRecorder(repo, nil, 8)
	kr.Start()

	for i := 0; i < 3; i++ {
		kr.Record(&models.KnowledgeEntry{
			TenantID:     1,
			AssetID:      "asset-1",
			ProductID:    1,
			AssetType:    "headline",
			QualityScore: 100 - i,
			WordCount:    10,
		})
	}

	// Stop排空缓冲中剩余条目后才返回
	kr.Stop()

	var count int64
	require.NoError(t, db.Model(&models.KnowledgeEntry{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestKnowledgeRecorder_DropsWhenFull(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewKnowledgeRepository(db)

	// 不启动消费goroutine，缓冲填满后Record不阻塞
	kr := NewKnowledgeRecorder(repo, nil, 2)

	for i := 0; i < 5; i++ {
		kr.Record(&models.KnowledgeEntry{TenantID: 1, AssetID: "a", ProductID: 1, AssetType: "headline"})
	}

	kr.Start()
	kr.Stop()

	var count int64
	require.NoError(t, db.Model(&models.KnowledgeEntry{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestKnowledgeRepository_AverageScore(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewKnowledgeRepository(db)

	require.NoError(t, repo.Create(&models.KnowledgeEntry{TenantID: 1, AssetID: "a", ProductID: 1, AssetType: "headline", QualityScore: 100}))
	require.NoError(t, repo.Create(&models.KnowledgeEntry{TenantID: 1, AssetID: "b", ProductID: 1, AssetType: "headline", QualityScore: 60}))
	require.NoError(t, repo.Create(&models.KnowledgeEntry{TenantID: 2, AssetID: "c", ProductID: 2, AssetType: "headline", QualityScore: 0}))

	avg, err := repo.AverageScoreByAssetType(1, "headline")
	require.NoError(t, err)
	assert.InDelta(t, 80.0, avg, 0.001)
}
