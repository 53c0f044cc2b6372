package repository

import (
	"launch-go/internal/models"

	"gorm.io/gorm"
)

// RevenueRepository 营收目标数据访问层
type RevenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository 创建营收目标Repository
func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// Create 创建目标
func (r *RevenueRepository) Create(goal *models.RevenueGoal) error {
	return r.db.Create(goal).Error
}

// GetByIDAndTenantID 根据ID和租户ID获取目标
func (r *RevenueRepository) GetByIDAndTenantID(id, tenantID uint) (*models.RevenueGoal, error) {
	var goal models.RevenueGoal
	err := r.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Update 更新目标
func (r *RevenueRepository) Update(goal *models.RevenueGoal) error {
	return r.db.Save(goal).Error
}

// Delete 删除目标
func (r *RevenueRepository) Delete(id, tenantID uint) error {
	return r.db.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.RevenueGoal{}).Error
}

// ListByTenantID 获取租户的目标列表
func (r *RevenueRepository) ListByTenantID(tenantID uint) ([]models.RevenueGoal, error) {
	var goals []models.RevenueGoal
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&goals).Error
	return goals, err
}
