package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"launch-go/internal/dto"
	"launch-go/internal/models"
	"launch-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// generatorFunc 测试用生成器
type generatorFunc func(ctx context.Context, system, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, system, prompt string) (string, error) {
	return f(ctx, system, prompt)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 命名共享缓存，连接池内各连接看到同一个内存库
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.MigrateAll(db))
	return db
}

// setupGenerationService 建好一个产品和一条product_description规则
func setupGenerationService(t *testing.T, db *gorm.DB, generator TextGenerator) (*GenerationService, *models.Product) {
	t.Helper()

	product := &models.Product{
		TenantID:    1,
		Name:        "SolarPack",
		Description: "Portable solar charger",
		ProductType: "physical",
		LaunchStage: "concept",
	}
	require.NoError(t, db.Create(product).Error)

	minWords := 5
	rule := &models.GenerationRule{
		ProductType:   "physical",
		AssetCategory: models.AssetCategoryCopywriting,
		AssetType:     "product_description",
		Tone:          "confident",
		MaxLength:     2000,
		Gates: models.QualityGates{
			MinWords:        &minWords,
			ProhibitedWords: []string{"guaranteed"},
		},
		IsActive: true,
	}
	require.NoError(t, db.Create(rule).Error)

	svc := NewGenerationService(
		repository.NewProductRepository(db),
		repository.NewBrandRepository(db),
		repository.NewRuleRepository(db),
		repository.NewAssetRepository(db),
		generator,
		nil,
		nil,
		0,
	)
	return svc, product
}

func TestGenerateAssets_ProductNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := setupGenerationService(t, db, generatorFunc(func(ctx context.Context, system, prompt string) (string, error) {
		return "unused", nil
	}))

	_, err := svc.GenerateAssets(context.Background(), 1, &dto.GenerateAssetsRequest{
		ProductID:  999,
		AssetTypes: []string{"product_description"},
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGenerateAssets_WrongTenant(t *testing.T) {
	db := setupTestDB(t)
	svc, product := setupGenerationService(t, db, generatorFunc(func(ctx context.Context, system, prompt string) (string, error) {
		return "unused", nil
	}))

	// 其他租户看不到该产品
	_, err := svc.GenerateAssets(context.Background(), 2, &dto.GenerateAssetsRequest{
		ProductID:  product.ID,
		AssetTypes: []string{"product_description"},
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGenerateAssets_ApprovedAsset(t *testing.T) {
	db := setupTestDB(t)
	svc, product := setupGenerationService(t, db, generatorFunc(func(ctx context.Context, system, prompt string) (string, error) {
		return "a clean confident pitch about solar charging benefits", nil
	}))

	resp, err := svc.GenerateAssets(context.Background(), 1, &dto.GenerateAssetsRequest{
		ProductID:  product.ID,
		AssetTypes: []string{"product_description"},
	})

	require.NoError(t, err)
	require.Len(t, resp.GeneratedAssets, 1)
	assert.Empty(t, resp.Errors)

	asset := resp.GeneratedAssets[0]
	assert.Equal(t, "product_description", asset.AssetType)
	assert.NotEmpty(t, asset.AssetID)
	assert.Equal(t, models.AssetStatusApproved, asset.Status)
	assert.True(t, asset.QualityCheck.Passed)
	assert.Equal(t, 100, asset.QualityCheck.Score)

	assert.Equal(t, 1, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Approved)
	assert.Equal(t, 0, resp.Summary.NeedsReview)

	// 资产已落库，含规则快照
	var stored models.GeneratedAsset
	require.NoError(t, db.Where("asset_id = ?", asset.AssetID).First(&stored).Error)
	assert.Equal(t, uint(1), stored.TenantID)
	assert.Equal(t, "confident", stored.Metadata["tone"])
}

func TestGenerateAssets_NeedsReviewOnGateFailure(t *testing.T) {
	db := setupTestDB(t)
	svc, product := setupGenerationService(t, db, generatorFunc(func(ctx context.Context, system, prompt string) (string, error) {
		// 触发min_words(-20)与prohibited(-25): 55 < 70
		return "success guaranteed", nil
	}))

	resp, err := svc.GenerateAssets(context.Background(), 1, &dto.GenerateAssetsRequest{
		ProductID:  product.ID,
		AssetTypes: []string{"product_description"},
	})

	require.NoError(t, err)
	require.Len(t, resp.GeneratedAssets, 1)
	assert.Equal(t, models.AssetStatusNeedsReview, resp.GeneratedAssets[0].Status)
	assert.Equal(t, 55, resp.GeneratedAssets[0].QualityCheck.Score)
	assert.Equal(t, 1, resp.Summary.NeedsReview)

	// 未通过门限的资产同样落库
	var count int64
	require.NoError(t, db.Model(&models.GeneratedAsset{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGenerateAssets_SkipsUnknownAssetType(t *testing.T) {
	db := setupTestDB(t)
	svc, product := setupGenerationService(t, db, generatorFunc(func(ctx context.Context, system, prompt string) (string, error) {
		return "a clean confident pitch about solar charging", nil
	}))

	resp, err := svc.GenerateAssets(context.Background(), 1, &dto.GenerateAssetsRequest{
		ProductID:  product.ID,
		AssetTypes: []string{"nonexistent_type", "product_description"},
	})

	require.NoError(t, err)
	// 无规则的类型静默跳过，既不计数也不报错
	require.Len(t, resp.GeneratedAssets, 1)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 1, resp.Summary.Total)
}

func TestGenerateAssets_GeneratorFailureIsolated(t *testing.T) {
	db := setupTestDB(t)

	// 第二条规则，让一次请求覆盖两个资产类型
	headlineRule := &models.GenerationRule{
		ProductType:   "physical",
		AssetCategory: models.AssetCategoryCopywriting,
		AssetType:     "headline",
		Tone:          "punchy",
		MaxLength:     120,
		IsActive:      true,
	}

	calls := 0
	svc, product := setupGenerationService(t, db, generatorFunc(func(ctx context.Context, system, prompt string) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("upstream unavailable")
		}
		return "a clean confident pitch about solar charging", nil
	}))
	require.NoError(t, db.Create(headlineRule).Error)

	resp, err := svc.GenerateAssets(context.Background(), 1, &dto.GenerateAssetsRequest{
		ProductID:  product.ID,
		AssetTypes: []string{"product_description", "headline"},
	})

	require.NoError(t, err)
	// 第一个类型失败记入errors，第二个继续生成
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "product_description", resp.Errors[0].AssetType)
	assert.Contains(t, resp.Errors[0].Message, "upstream unavailable")

	require.Len(t, resp.GeneratedAssets, 1)
	assert.Equal(t, "headline", resp.GeneratedAssets[0].AssetType)
	assert.Equal(t, 1, resp.Summary.Total)
}

func TestGenerateAssets_InactiveRuleSkipped(t *testing.T) {
	db := setupTestDB(t)
	svc, product := setupGenerationService(t, db, generatorFunc(func(ctx context.Context, system, prompt string) (string, error) {
		return "content", nil
	}))

	require.NoError(t, db.Model(&models.GenerationRule{}).
		Where("asset_type = ?", "product_description").
		Update("is_active", false).Error)

	resp, err := svc.GenerateAssets(context.Background(), 1, &dto.GenerateAssetsRequest{
		ProductID:  product.ID,
		AssetTypes: []string{"product_description"},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.GeneratedAssets)
	assert.Equal(t, 0, resp.Summary.Total)
}

func TestGenerateAssets_PromptUsesBrandGuideline(t *testing.T) {
	db := setupTestDB(t)

	var captured string
	svc, product := setupGenerationService(t, db, generatorFunc(func(ctx context.Context, system, prompt string) (string, error) {
		captured = prompt
		return "a clean confident pitch about solar charging", nil
	}))

	require.NoError(t, db.Create(&models.BrandGuideline{
		TenantID:       1,
		Name:           "Acme",
		Voice:          "warm and direct",
		TargetAudience: "outdoor enthusiasts",
	}).Error)

	_, err := svc.GenerateAssets(context.Background(), 1, &dto.GenerateAssetsRequest{
		ProductID:  product.ID,
		AssetTypes: []string{"product_description"},
	})

	require.NoError(t, err)
	assert.Contains(t, captured, "Brand voice: warm and direct")
	assert.Contains(t, captured, "Target audience: outdoor enthusiasts")
	assert.Contains(t, captured, fmt.Sprintf("Product name: %s", product.Name))
}
