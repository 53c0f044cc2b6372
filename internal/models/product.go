package models

import (
	"time"
)

// 产品状态
const (
	ProductStatusDraft     = "draft"
	ProductStatusLaunching = "launching"
	ProductStatusLaunched  = "launched"
)

// Product 产品模型
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	TenantID    uint      `gorm:"not null;index" json:"tenant_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ProductType string    `gorm:"size:50;not null;index" json:"product_type"`
	Price       float64   `gorm:"default:0" json:"price"`
	Revenue     float64   `gorm:"default:0" json:"revenue"`
	Status      string    `gorm:"size:20;default:'draft'" json:"status"` // draft, launching, launched
	LaunchStage string    `gorm:"size:50" json:"launch_stage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联
	Tenant Tenant           `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Assets []GeneratedAsset `gorm:"foreignKey:ProductID" json:"assets,omitempty"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
