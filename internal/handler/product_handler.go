package handler

import (
	"errors"
	"strconv"

	"launch-go/internal/dto"
	"launch-go/internal/middleware"
	"launch-go/internal/service"
	"launch-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProductHandler 产品处理器
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler 创建产品处理器
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProduct 创建产品
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.CreateProduct(tenantID, &req)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "产品已创建", resp)
}

// GetProduct 获取产品
func (h *ProductHandler) GetProduct(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的产品ID")
		return
	}

	resp, err := h.productService.GetProduct(id, tenantID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessResponse(c, resp)
}

// ListProducts 获取产品列表
func (h *ProductHandler) ListProducts(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)
	page, perPage := parsePagination(c)

	resp, err := h.productService.ListProducts(tenantID, page, perPage)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, resp.Items, resp.Total, resp.Page, resp.PerPage)
}

// UpdateProduct 更新产品
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的产品ID")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.UpdateProduct(id, tenantID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "产品已更新", resp)
}

// DeleteProduct 删除产品
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	tenantID, _ := middleware.GetTenantID(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.BadRequest(c, "无效的产品ID")
		return
	}

	if err := h.productService.DeleteProduct(id, tenantID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "产品已删除", nil)
}

// parseUintParam 解析路径上的无符号整数参数
func parseUintParam(c *gin.Context, name string) (uint, error) {
	val, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}

// parsePagination 解析分页参数
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}
