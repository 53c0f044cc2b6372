package repository

import (
	"launch-go/internal/models"

	"gorm.io/gorm"
)

// RuleRepository 生成规则数据访问层
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository 创建生成规则Repository
func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Create 创建规则
func (r *RuleRepository) Create(rule *models.GenerationRule) error {
	return r.db.Create(rule).Error
}

// GetByID 根据ID获取规则
func (r *RuleRepository) GetByID(id uint) (*models.GenerationRule, error) {
	var rule models.GenerationRule
	err := r.db.First(&rule, id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetByKey 根据(产品类型, 资产分类, 资产类型)获取启用的规则
func (r *RuleRepository) GetByKey(productType, assetCategory, assetType string) (*models.GenerationRule, error) {
	var rule models.GenerationRule
	err := r.db.Where(
		"product_type = ? AND asset_category = ? AND asset_type = ? AND is_active = ?",
		productType, assetCategory, assetType, true,
	).First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// ExistsByKey 检查规则键是否存在
func (r *RuleRepository) ExistsByKey(productType, assetCategory, assetType string) (bool, error) {
	var count int64
	err := r.db.Model(&models.GenerationRule{}).Where(
		"product_type = ? AND asset_category = ? AND asset_type = ?",
		productType, assetCategory, assetType,
	).Count(&count).Error
	return count > 0, err
}

// Update 更新规则
func (r *RuleRepository) Update(rule *models.GenerationRule) error {
	return r.db.Save(rule).Error
}

// Delete 删除规则
func (r *RuleRepository) Delete(id uint) error {
	return r.db.Delete(&models.GenerationRule{}, id).Error
}

// List 获取规则列表
func (r *RuleRepository) List(offset, limit int) ([]models.GenerationRule, int64, error) {
	var rules []models.GenerationRule
	var total int64

	if err := r.db.Model(&models.GenerationRule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("product_type, asset_type").Offset(offset).Limit(limit).Find(&rules).Error
	return rules, total, err
}

// ListByProductType 获取某产品类型的全部规则
func (r *RuleRepository) ListByProductType(productType string) ([]models.GenerationRule, error) {
	var rules []models.GenerationRule
	err := r.db.Where("product_type = ? AND is_active = ?", productType, true).
		Order("asset_type").Find(&rules).Error
	return rules, err
}

// Count 获取规则总数
func (r *RuleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.GenerationRule{}).Count(&count).Error
	return count, err
}
