package handler

import (
	"errors"

	"launch-go/internal/dto"
	"launch-go/internal/service"
	"launch-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// RuleHandler 生成规则处理器，仅管理员可用
type RuleHandler struct {
	ruleService *service.RuleService
}

// NewRuleHandler 创建生成规则处理器
func NewRuleHandler(ruleService *service.RuleService) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
	}
}

// ListRules 获取规则列表
func (h *RuleHandler) ListRules(c *gin.Context) {
	page, perPage := parsePagination(c)

	resp, err := h.ruleService.ListRules(page, perPage)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, resp.Items, resp.Total, resp.Page, resp.PerPage)
}

// CreateRule 创建规则
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ruleService.CreateRule(&req)
	if err != nil {
		if err.Error() == "相同键的规则已存在" {
			utils.Conflict(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "规则创建成功", resp)
}

// UpdateRule 更新规则
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的规则ID")
		return
	}

	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.ruleService.UpdateRule(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "规则更新成功", resp)
}

// DeleteRule 删除规则
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的规则ID")
		return
	}

	if err := h.ruleService.DeleteRule(id); err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "规则删除成功", nil)
}
