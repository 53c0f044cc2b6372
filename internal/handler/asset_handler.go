package handler

import (
	"errors"

	"launch-go/internal/dto"
	"launch-go/internal/middleware"
	"launch-go/internal/service"
	"launch-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AssetHandler 生成资产处理器
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler 创建生成资产处理器
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// ListAssets 获取产品的资产列表
func (h *AssetHandler) ListAssets(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	productID, err := parseUintParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的产品ID")
		return
	}

	page, perPage := parsePagination(c)

	resp, err := h.assetService.ListAssets(productID, tenantID, page, perPage)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, resp.Items, resp.Total, resp.Page, resp.PerPage)
}

// GetAsset 获取资产
func (h *AssetHandler) GetAsset(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)
	assetID := c.Param("asset_id")

	resp, err := h.assetService.GetAsset(assetID, tenantID)
	if err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, resp)
}

// ReviewAsset 人工复核资产状态
func (h *AssetHandler) ReviewAsset(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)
	assetID := c.Param("asset_id")

	var req dto.ReviewAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.assetService.ReviewAsset(assetID, tenantID, req.Status); err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "复核完成", nil)
}
