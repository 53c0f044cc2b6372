package dto

// Stage 发布流程阶段
type Stage struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// StageTemplateResponse 阶段模板响应
type StageTemplateResponse struct {
	ProductType string  `json:"product_type"`
	Stages      []Stage `json:"stages"`
}

// UpdateStageRequest 更新产品阶段请求
type UpdateStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// KanbanColumn 看板列，一个阶段加该阶段下的产品
type KanbanColumn struct {
	Stage    Stage             `json:"stage"`
	Products []ProductResponse `json:"products"`
}

// KanbanResponse 看板响应
type KanbanResponse struct {
	ProductType string         `json:"product_type"`
	Columns     []KanbanColumn `json:"columns"`
}
