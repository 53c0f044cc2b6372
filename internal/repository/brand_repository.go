package repository

import (
	"launch-go/internal/models"

	"gorm.io/gorm"
)

// BrandRepository 品牌规范数据访问层
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository 创建品牌规范Repository
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// GetByTenantID 获取租户的品牌规范
func (r *BrandRepository) GetByTenantID(tenantID uint) (*models.BrandGuideline, error) {
	var brand models.BrandGuideline
	err := r.db.Where("tenant_id = ?", tenantID).First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// Upsert 创建或更新租户的品牌规范
func (r *BrandRepository) Upsert(brand *models.BrandGuideline) error {
	var existing models.BrandGuideline
	err := r.db.Where("tenant_id = ?", brand.TenantID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(brand).Error
	}
	if err != nil {
		return err
	}

	brand.ID = existing.ID
	brand.CreatedAt = existing.CreatedAt
	return r.db.Save(brand).Error
}

// Delete 删除租户的品牌规范
func (r *BrandRepository) Delete(tenantID uint) error {
	return r.db.Where("tenant_id = ?", tenantID).Delete(&models.BrandGuideline{}).Error
}
