package dto

// UpdateBrandRequest 更新品牌规范请求
type UpdateBrandRequest struct {
	Name           string   `json:"name" binding:"max=100"`
	Voice          string   `json:"voice"`
	TargetAudience string   `json:"target_audience"`
	Colors         []string `json:"colors"`
	Fonts          []string `json:"fonts"`
}

// BrandResponse 品牌规范响应
type BrandResponse struct {
	Name           string   `json:"name"`
	Voice          string   `json:"voice"`
	TargetAudience string   `json:"target_audience"`
	Colors         []string `json:"colors"`
	Fonts          []string `json:"fonts"`
}
