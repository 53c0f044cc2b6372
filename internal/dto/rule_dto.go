package dto

import "launch-go/internal/models"

// CreateRuleRequest 创建生成规则请求
type CreateRuleRequest struct {
	ProductType   string              `json:"product_type" binding:"required,max=50"`
	AssetCategory string              `json:"asset_category" binding:"omitempty,oneof=copywriting"`
	AssetType     string              `json:"asset_type" binding:"required,asset_type"`
	Tone          string              `json:"tone" binding:"max=100"`
	MaxLength     int                 `json:"max_length" binding:"gte=0"`
	Required      []string            `json:"required"`
	Prohibited    []string            `json:"prohibited"`
	Gates         models.QualityGates `json:"quality_gates"`
}

// UpdateRuleRequest 更新生成规则请求
type UpdateRuleRequest struct {
	Tone       *string              `json:"tone"`
	MaxLength  *int                 `json:"max_length"`
	Required   []string             `json:"required"`
	Prohibited []string             `json:"prohibited"`
	Gates      *models.QualityGates `json:"quality_gates"`
	IsActive   *bool                `json:"is_active"`
}

// RuleResponse 生成规则响应
type RuleResponse struct {
	ID            uint                `json:"id"`
	ProductType   string              `json:"product_type"`
	AssetCategory string              `json:"asset_category"`
	AssetType     string              `json:"asset_type"`
	Tone          string              `json:"tone"`
	MaxLength     int                 `json:"max_length"`
	Required      []string            `json:"required"`
	Prohibited    []string            `json:"prohibited"`
	Gates         models.QualityGates `json:"quality_gates"`
	IsActive      bool                `json:"is_active"`
}
