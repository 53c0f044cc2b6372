package dto

import "launch-go/internal/models"

// GenerateAssetsRequest 资产生成请求，asset_types按给定顺序处理
type GenerateAssetsRequest struct {
	ProductID  uint     `json:"product_id" binding:"required"`
	AssetTypes []string `json:"asset_types" binding:"required,min=1,dive,asset_type"`
}

// GeneratedAssetResult 单个资产类型的生成结果
type GeneratedAssetResult struct {
	AssetType    string                    `json:"asset_type"`
	AssetID      string                    `json:"asset_id"`
	Content      string                    `json:"content"`
	QualityCheck models.QualityCheckResult `json:"quality_check"`
	Status       string                    `json:"status"`
}

// GenerationError 单个资产类型的失败记录
type GenerationError struct {
	AssetType string `json:"asset_type"`
	Message   string `json:"message"`
}

// GenerationSummary 生成结果汇总
type GenerationSummary struct {
	Total       int `json:"total"`
	Approved    int `json:"approved"`
	NeedsReview int `json:"needs_review"`
}

// GenerateAssetsResponse 资产生成响应
type GenerateAssetsResponse struct {
	ProductID       uint                   `json:"product_id"`
	GeneratedAssets []GeneratedAssetResult `json:"generated_assets"`
	Errors          []GenerationError      `json:"errors,omitempty"`
	Summary         GenerationSummary      `json:"summary"`
}
