package models

import (
	"time"
)

// RevenueGoal 营收目标模型
type RevenueGoal struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	TenantID     uint       `gorm:"not null;index" json:"tenant_id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	TargetAmount float64    `gorm:"not null" json:"target_amount"`
	Deadline     *time.Time `json:"deadline"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (RevenueGoal) TableName() string {
	return "revenue_goals"
}
