package handler

import (
	"errors"

	"launch-go/internal/dto"
	"launch-go/internal/middleware"
	"launch-go/internal/service"
	"launch-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// GenerationHandler 资产生成处理器
type GenerationHandler struct {
	generationService *service.GenerationService
}

// NewGenerationHandler 创建资产生成处理器
func NewGenerationHandler(generationService *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
	}
}

// GenerateAssets 为产品生成文案资产
// @Summary 为产品生成文案资产
// @Tags 生成
// @Accept json
// @Produce json
// @Param request body dto.GenerateAssetsRequest true "生成请求"
// @Success 200 {object} utils.Response{data=dto.GenerateAssetsResponse}
// @Router /api/generate [post]
func (h *GenerationHandler) GenerateAssets(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	var req dto.GenerateAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.generationService.GenerateAssets(c.Request.Context(), tenantID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "生成完成", resp)
}
