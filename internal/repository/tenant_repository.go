package repository

import (
	"launch-go/internal/models"

	"gorm.io/gorm"
)

// TenantRepository 租户数据访问层
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository 创建租户Repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create 创建租户
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID 根据ID获取租户
func (r *TenantRepository) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, id).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByName 根据名称获取租户
func (r *TenantRepository) GetByName(name string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.Where("name = ?", name).First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetOrCreateByName 按名称获取租户，不存在时创建
func (r *TenantRepository) GetOrCreateByName(name string) (*models.Tenant, error) {
	tenant, err := r.GetByName(name)
	if err == nil {
		return tenant, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	tenant = &models.Tenant{Name: name, IsActive: true}
	if err := r.Create(tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// List 获取租户列表
func (r *TenantRepository) List(offset, limit int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := r.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tenants).Error
	return tenants, total, err
}
