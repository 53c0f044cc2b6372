package models

import (
	"time"
)

// KnowledgeEntry 知识库条目，记录生成结果的质量指标供后续分析
type KnowledgeEntry struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	TenantID     uint      `gorm:"not null;index" json:"tenant_id"`
	AssetID      string    `gorm:"size:64;not null;index" json:"asset_id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	AssetType    string    `gorm:"size:50;not null" json:"asset_type"`
	QualityScore int       `json:"quality_score"`
	WordCount    int       `json:"word_count"`
	Metadata     JSONMap   `gorm:"type:text" json:"metadata"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 指定表名
func (KnowledgeEntry) TableName() string {
	return "knowledge_entries"
}
