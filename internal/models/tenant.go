package models

import (
	"time"
)

// Tenant 租户模型
type Tenant struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	Users    []User    `gorm:"foreignKey:TenantID" json:"users,omitempty"`
	Products []Product `gorm:"foreignKey:TenantID" json:"products,omitempty"`
}

// TableName 指定表名
func (Tenant) TableName() string {
	return "tenants"
}
