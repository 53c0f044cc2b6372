package dto

import "launch-go/internal/models"

// AssetResponse 生成资产响应
type AssetResponse struct {
	AssetID       string                    `json:"asset_id"`
	ProductID     uint                      `json:"product_id"`
	AssetType     string                    `json:"asset_type"`
	AssetCategory string                    `json:"asset_category"`
	Content       string                    `json:"content"`
	Status        string                    `json:"status"`
	QualityCheck  models.QualityCheckResult `json:"quality_check"`
	Metadata      models.JSONMap            `json:"metadata"`
	CreatedAt     string                    `json:"created_at"`
}

// ReviewAssetRequest 人工复核请求
type ReviewAssetRequest struct {
	Status string `json:"status" binding:"required,oneof=approved needs_review"`
}
