package handler

import (
	"launch-go/internal/dto"
	"launch-go/internal/middleware"
	"launch-go/internal/service"
	"launch-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// BrandHandler 品牌规范处理器
type BrandHandler struct {
	brandService *service.BrandService
}

// NewBrandHandler 创建品牌规范处理器
func NewBrandHandler(brandService *service.BrandService) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
	}
}

// GetBrand 获取当前租户的品牌规范
func (h *BrandHandler) GetBrand(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	resp, err := h.brandService.GetBrand(tenantID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, resp)
}

// UpdateBrand 创建或更新当前租户的品牌规范
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.brandService.UpdateBrand(tenantID, &req)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "品牌规范已保存", resp)
}
