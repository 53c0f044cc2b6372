package service

import (
	"fmt"

	"launch-go/internal/dto"
	"launch-go/internal/repository"
)

// 默认产品类型的静态阶段模板，看板视图按模板列展示
var stageTemplates = map[string][]dto.Stage{
	"physical": {
		{Key: "concept", Name: "概念定义", Order: 1},
		{Key: "content", Name: "内容制作", Order: 2},
		{Key: "prelaunch", Name: "预热", Order: 3},
		{Key: "launch", Name: "发布", Order: 4},
		{Key: "postlaunch", Name: "发布后运营", Order: 5},
	},
	"digital": {
		{Key: "concept", Name: "概念定义", Order: 1},
		{Key: "build", Name: "制作", Order: 2},
		{Key: "content", Name: "内容制作", Order: 3},
		{Key: "launch", Name: "发布", Order: 4},
		{Key: "evergreen", Name: "常青运营", Order: 5},
	},
	"service": {
		{Key: "concept", Name: "概念定义", Order: 1},
		{Key: "content", Name: "内容制作", Order: 2},
		{Key: "launch", Name: "发布", Order: 3},
		{Key: "delivery", Name: "交付", Order: 4},
	},
}

// defaultStages 未知产品类型回退的通用模板
var defaultStages = []dto.Stage{
	{Key: "concept", Name: "概念定义", Order: 1},
	{Key: "content", Name: "内容制作", Order: 2},
	{Key: "launch", Name: "发布", Order: 3},
}

// WorkflowService 发布流程服务
type WorkflowService struct {
	productRepo *repository.ProductRepository
}

// NewWorkflowService 创建发布流程服务
func NewWorkflowService(productRepo *repository.ProductRepository) *WorkflowService {
	return &WorkflowService{productRepo: productRepo}
}

// StagesFor 获取产品类型的阶段模板
func (s *WorkflowService) StagesFor(productType string) []dto.Stage {
	if stages, ok := stageTemplates[productType]; ok {
		return stages
	}
	return defaultStages
}

// FirstStageKey 获取产品类型模板的第一个阶段键
func (s *WorkflowService) FirstStageKey(productType string) string {
	stages := s.StagesFor(productType)
	return stages[0].Key
}

// ValidStage 检查阶段键是否属于该产品类型的模板
func (s *WorkflowService) ValidStage(productType, stage string) bool {
	for _, st := range s.StagesFor(productType) {
		if st.Key == stage {
			return true
		}
	}
	return false
}

// UpdateProductStage 更新产品所处阶段
func (s *WorkflowService) UpdateProductStage(productID, tenantID uint, stage string) error {
	product, err := s.productRepo.GetByIDAndTenantID(productID, tenantID)
	if err != nil {
		return ErrProductNotFound
	}

	if !s.ValidStage(product.ProductType, stage) {
		return fmt.Errorf("阶段 %s 不属于产品类型 %s 的流程模板", stage, product.ProductType)
	}

	return s.productRepo.UpdateLaunchStage(productID, tenantID, stage)
}

// Kanban 构建某产品类型的看板视图
func (s *WorkflowService) Kanban(tenantID uint, productType string) (*dto.KanbanResponse, error) {
	// 取租户全部产品后按阶段分列，数据量以租户为界，足够小
	products, _, err := s.productRepo.ListByTenantID(tenantID, 0, 1000)
	if err != nil {
		return nil, err
	}

	stages := s.StagesFor(productType)
	resp := &dto.KanbanResponse{
		ProductType: productType,
		Columns:     make([]dto.KanbanColumn, len(stages)),
	}

	for i, stage := range stages {
		col := dto.KanbanColumn{Stage: stage, Products: []dto.ProductResponse{}}
		for j := range products {
			if products[j].ProductType != productType || products[j].LaunchStage != stage.Key {
				continue
			}
			col.Products = append(col.Products, *toProductResponse(&products[j]))
		}
		resp.Columns[i] = col
	}

	return resp, nil
}
