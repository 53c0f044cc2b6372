package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// 资产状态，创建后不再由生成管线修改
const (
	AssetStatusApproved    = "approved"
	AssetStatusNeedsReview = "needs_review"
)

// GeneratedAsset 生成资产模型
type GeneratedAsset struct {
	ID            uint               `gorm:"primarykey" json:"id"`
	AssetID       string             `gorm:"uniqueIndex;size:64;not null" json:"asset_id"`
	TenantID      uint               `gorm:"not null;index" json:"tenant_id"`
	ProductID     uint               `gorm:"not null;index" json:"product_id"`
	AssetType     string             `gorm:"size:50;not null" json:"asset_type"`
	AssetCategory string             `gorm:"size:50;default:'copywriting'" json:"asset_category"`
	Content       string             `gorm:"type:text;not null" json:"content"`
	Status        string             `gorm:"size:20;not null" json:"status"` // approved, needs_review
	QualityCheck  QualityCheckResult `gorm:"type:text" json:"quality_check"`
	Metadata      JSONMap            `gorm:"type:text" json:"metadata"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// 关联
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 指定表名
func (GeneratedAsset) TableName() string {
	return "generated_assets"
}

// QualityCheck 单项质量检查结果
type QualityCheck struct {
	Gate    string `json:"gate"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// QualityCheckResult 质量评估结果，计算后不可变
type QualityCheckResult struct {
	Passed    bool           `json:"passed"`
	Score     int            `json:"score"`
	Checks    []QualityCheck `json:"checks"`
	Timestamp time.Time      `json:"timestamp"`
}

// Scan 实现sql.Scanner接口
func (q *QualityCheckResult) Scan(value interface{}) error {
	if value == nil {
		*q = QualityCheckResult{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}

	return json.Unmarshal(bytes, q)
}

// Value 实现driver.Valuer接口
func (q QualityCheckResult) Value() (driver.Value, error) {
	return json.Marshal(q)
}
