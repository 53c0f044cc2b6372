package models

import (
	"time"
)

// BrandGuideline 品牌规范模型，每个租户一条
type BrandGuideline struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	TenantID       uint       `gorm:"uniqueIndex;not null" json:"tenant_id"`
	Name           string     `gorm:"size:100" json:"name"`
	Voice          string     `gorm:"type:text" json:"voice"`
	TargetAudience string     `gorm:"type:text" json:"target_audience"`
	Colors         StringList `gorm:"type:text" json:"colors"`
	Fonts          StringList `gorm:"type:text" json:"fonts"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (BrandGuideline) TableName() string {
	return "brand_guidelines"
}
