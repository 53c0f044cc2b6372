package repository

import (
	"launch-go/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 产品数据访问层
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建产品Repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create 创建产品
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByID 根据ID获取产品
func (r *ProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDAndTenantID 根据ID和租户ID获取产品
func (r *ProductRepository) GetByIDAndTenantID(id, tenantID uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update 更新产品
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// UpdateLaunchStage 更新产品所处发布阶段
func (r *ProductRepository) UpdateLaunchStage(id, tenantID uint, stage string) error {
	return r.db.Model(&models.Product{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("launch_stage", stage).Error
}

// Delete 删除产品
func (r *ProductRepository) Delete(id, tenantID uint) error {
	return r.db.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.Product{}).Error
}

// ListByTenantID 获取租户的产品列表
func (r *ProductRepository) ListByTenantID(tenantID uint, offset, limit int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := r.db.Model(&models.Product{}).Where("tenant_id = ?", tenantID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error
	return products, total, err
}

// ListByTenantIDAndStatus 按状态获取租户的产品列表
func (r *ProductRepository) ListByTenantIDAndStatus(tenantID uint, status string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("tenant_id = ? AND status = ?", tenantID, status).
		Order("created_at DESC").Find(&products).Error
	return products, err
}

// SumRevenueByTenantID 统计租户已发布产品的营收总额
func (r *ProductRepository) SumRevenueByTenantID(tenantID uint) (float64, error) {
	var total float64
	err := r.db.Model(&models.Product{}).
		Where("tenant_id = ? AND status = ?", tenantID, models.ProductStatusLaunched).
		Select("COALESCE(SUM(revenue), 0)").Scan(&total).Error
	return total, err
}
