package repository

import (
	"launch-go/internal/models"

	"gorm.io/gorm"
)

// AssetRepository 生成资产数据访问层
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository 创建生成资产Repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create 创建资产
func (r *AssetRepository) Create(asset *models.GeneratedAsset) error {
	return r.db.Create(asset).Error
}

// GetByAssetID 根据资产ID获取资产
func (r *AssetRepository) GetByAssetID(assetID string, tenantID uint) (*models.GeneratedAsset, error) {
	var asset models.GeneratedAsset
	err := r.db.Where("asset_id = ? AND tenant_id = ?", assetID, tenantID).First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// UpdateStatus 更新资产状态（仅供人工复核使用，生成管线不修改状态）
func (r *AssetRepository) UpdateStatus(assetID string, tenantID uint, status string) error {
	return r.db.Model(&models.GeneratedAsset{}).
		Where("asset_id = ? AND tenant_id = ?", assetID, tenantID).
		Update("status", status).Error
}

// Delete 删除资产
func (r *AssetRepository) Delete(assetID string, tenantID uint) error {
	return r.db.Where("asset_id = ? AND tenant_id = ?", assetID, tenantID).
		Delete(&models.GeneratedAsset{}).Error
}

// ListByProductID 获取产品的资产列表
func (r *AssetRepository) ListByProductID(productID, tenantID uint, offset, limit int) ([]models.GeneratedAsset, int64, error) {
	var assets []models.GeneratedAsset
	var total int64

	query := r.db.Model(&models.GeneratedAsset{}).
		Where("product_id = ? AND tenant_id = ?", productID, tenantID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&assets).Error
	return assets, total, err
}

// CountByStatus 统计租户各状态的资产数量
func (r *AssetRepository) CountByStatus(tenantID uint, status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.GeneratedAsset{}).
		Where("tenant_id = ? AND status = ?", tenantID, status).Count(&count).Error
	return count, err
}
