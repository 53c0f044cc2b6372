package repository

import (
	"launch-go/internal/models"

	"gorm.io/gorm"
)

// KnowledgeRepository 知识库条目数据访问层
type KnowledgeRepository struct {
	db *gorm.DB
}

// NewKnowledgeRepository 创建知识库Repository
func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

// Create 创建条目
func (r *KnowledgeRepository) Create(entry *models.KnowledgeEntry) error {
	return r.db.Create(entry).Error
}

// ListByProductID 获取产品的知识库条目
func (r *KnowledgeRepository) ListByProductID(productID, tenantID uint, offset, limit int) ([]models.KnowledgeEntry, int64, error) {
	var entries []models.KnowledgeEntry
	var total int64

	query := r.db.Model(&models.KnowledgeEntry{}).
		Where("product_id = ? AND tenant_id = ?", productID, tenantID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error
	return entries, total, err
}

// AverageScoreByAssetType 统计租户各资产类型的平均质量分
func (r *KnowledgeRepository) AverageScoreByAssetType(tenantID uint, assetType string) (float64, error) {
	var avg float64
	err := r.db.Model(&models.KnowledgeEntry{}).
		Where("tenant_id = ? AND asset_type = ?", tenantID, assetType).
		Select("COALESCE(AVG(quality_score), 0)").Scan(&avg).Error
	return avg, err
}
