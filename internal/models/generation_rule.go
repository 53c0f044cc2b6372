package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// 资产分类
const (
	AssetCategoryCopywriting = "copywriting"
)

// GenerationRule 生成规则模型，按(产品类型, 资产分类, 资产类型)唯一
type GenerationRule struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	ProductType   string       `gorm:"size:50;not null;uniqueIndex:idx_rule_key" json:"product_type"`
	AssetCategory string       `gorm:"size:50;not null;default:'copywriting';uniqueIndex:idx_rule_key" json:"asset_category"`
	AssetType     string       `gorm:"size:50;not null;uniqueIndex:idx_rule_key" json:"asset_type"`
	Tone          string       `gorm:"size:100" json:"tone"`
	MaxLength     int          `gorm:"default:0" json:"max_length"` // 字符数上限
	Required      StringList   `gorm:"type:text" json:"required"`   // 必须出现的要素
	Prohibited    StringList   `gorm:"type:text" json:"prohibited"` // 禁止出现的要素
	Gates         QualityGates `gorm:"type:text" json:"quality_gates"`
	IsActive      bool         `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName 指定表名
func (GenerationRule) TableName() string {
	return "generation_rules"
}

// QualityGates 质量门限配置，显式字段，入库前校验
type QualityGates struct {
	MinWords         *int     `json:"min_words,omitempty"`
	MaxWords         *int     `json:"max_words,omitempty"`
	RequiredKeywords []string `json:"required_keywords,omitempty"`
	ProhibitedWords  []string `json:"prohibited_words,omitempty"`
}

// Scan 实现sql.Scanner接口
func (g *QualityGates) Scan(value interface{}) error {
	if value == nil {
		*g = QualityGates{}
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

	return json.Unmarshal(bytes, g)
}

// Value 实现driver.Valuer接口
func (g QualityGates) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Validate 校验门限配置
func (g *QualityGates) Validate() error {
	if g.MinWords != nil && *g.MinWords < 0 {
		return fmt.Errorf("min_words不能为负数: %d", *g.MinWords)
	}
	if g.MaxWords != nil && *g.MaxWords <= 0 {
		return fmt.Errorf("max_words必须为正数: %d", *g.MaxWords)
	}
	if g.MinWords != nil && g.MaxWords != nil && *g.MinWords > *g.MaxWords {
		return fmt.Errorf("min_words(%d)不能大于max_words(%d)", *g.MinWords, *g.MaxWords)
	}
	for _, kw := range g.RequiredKeywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("required_keywords包含空关键词")
		}
	}
	for _, w := range g.ProhibitedWords {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("prohibited_words包含空词")
		}
	}
	return nil
}
