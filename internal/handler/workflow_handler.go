package handler

import (
	"errors"

	"launch-go/internal/dto"
	"launch-go/internal/middleware"
	"launch-go/internal/service"
	"launch-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler 发布流程处理器
type WorkflowHandler struct {
	workflowService *service.WorkflowService
}

// NewWorkflowHandler 创建发布流程处理器
func NewWorkflowHandler(workflowService *service.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{
		workflowService: workflowService,
	}
}

// GetStages 获取产品类型的阶段模板
func (h *WorkflowHandler) GetStages(c *gin.Context) {
	productType := c.Param("product_type")

	utils.SuccessResponse(c, dto.StageTemplateResponse{
		ProductType: productType,
		Stages:      h.workflowService.StagesFor(productType),
	})
}

// UpdateStage 更新产品所处阶段
func (h *WorkflowHandler) UpdateStage(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	productID, err := parseUintParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的产品ID")
		return
	}

	var req dto.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.workflowService.UpdateProductStage(productID, tenantID, req.Stage); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "阶段更新成功", nil)
}

// Kanban 获取某产品类型的看板视图
func (h *WorkflowHandler) Kanban(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)
	productType := c.Param("product_type")

	resp, err := h.workflowService.Kanban(tenantID, productType)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, resp)
}
