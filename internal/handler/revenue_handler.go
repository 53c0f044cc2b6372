package handler

import (
	"errors"

	"launch-go/internal/dto"
	"launch-go/internal/middleware"
	"launch-go/internal/service"
	"launch-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// RevenueHandler 营收目标处理器
type RevenueHandler struct {
	revenueService *service.RevenueService
}

// NewRevenueHandler 创建营收目标处理器
func NewRevenueHandler(revenueService *service.RevenueService) *RevenueHandler {
	return &RevenueHandler{
		revenueService: revenueService,
	}
}

// CreateGoal 创建营收目标
func (h *RevenueHandler) CreateGoal(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	var req dto.CreateRevenueGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.revenueService.CreateGoal(tenantID, &req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "营收目标创建成功", resp)
}

// UpdateGoal 更新营收目标
func (h *RevenueHandler) UpdateGoal(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的目标ID")
		return
	}

	var req dto.UpdateRevenueGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.revenueService.UpdateGoal(id, tenantID, &req)
	if err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "营收目标更新成功", resp)
}

// DeleteGoal 删除营收目标
func (h *RevenueHandler) DeleteGoal(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的目标ID")
		return
	}

	if err := h.revenueService.DeleteGoal(id, tenantID); err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "营收目标删除成功", nil)
}

// GetProgress 获取营收进度
func (h *RevenueHandler) GetProgress(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	resp, err := h.revenueService.GetProgress(tenantID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, resp)
}
