package service

import (
	"fmt"
	"strings"

	"launch-go/internal/models"
)

// PromptBuilder 提示词构建器，无状态无副作用
type PromptBuilder struct{}

// NewPromptBuilder 创建提示词构建器
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build 根据产品、品牌规范与规则拼装用户提示词
// 相同输入产出相同字符串，缺失字段按空值拼入，不报错。
func (pb *PromptBuilder) Build(
	product *models.Product,
	brand *models.BrandGuideline,
	rule *models.GenerationRule,
	assetType string,
) string {
	var b strings.Builder

	readable := strings.ReplaceAll(assetType, "_", " ")

	fmt.Fprintf(&b, "Write a %s for the following product.\n\n", readable)
	fmt.Fprintf(&b, "Product name: %s\n", product.Name)
	fmt.Fprintf(&b, "Product description: %s\n", product.Description)
	fmt.Fprintf(&b, "Product type: %s\n\n", product.ProductType)
	fmt.Fprintf(&b, "Tone: %s\n", rule.Tone)
	fmt.Fprintf(&b, "Maximum length: %d characters\n", rule.MaxLength)
	fmt.Fprintf(&b, "Must include: %s\n", strings.Join(rule.Required, ", "))
	fmt.Fprintf(&b, "Must avoid: %s\n\n", strings.Join(rule.Prohibited, ", "))
	fmt.Fprintf(&b, "Brand voice: %s\n", brand.Voice)
	fmt.Fprintf(&b, "Target audience: %s\n", brand.TargetAudience)

	return b.String()
}

// BuildSystemInstruction 拼装系统指令，携带语气与品牌上下文
func (pb *PromptBuilder) BuildSystemInstruction(brand *models.BrandGuideline, rule *models.GenerationRule) string {
	var b strings.Builder

	b.WriteString("You are a marketing copywriter for a product launch platform. ")
	fmt.Fprintf(&b, "Write in a %s tone. ", rule.Tone)
	if brand.Voice != "" {
		fmt.Fprintf(&b, "Follow the brand voice: %s. ", brand.Voice)
	}
	b.WriteString("Return only the requested copy, without commentary.")

	return b.String()
}
