package service

import (
	"errors"
	"fmt"

	"launch-go/internal/dto"
	"launch-go/internal/models"
	"launch-go/internal/repository"

	"gorm.io/gorm"
)

// ProductService 产品服务
type ProductService struct {
	productRepo *repository.ProductRepository
	workflow    *WorkflowService
}

// NewProductService 创建产品服务
func NewProductService(productRepo *repository.ProductRepository, workflow *WorkflowService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		workflow:    workflow,
	}
}

// CreateProduct 创建产品，初始阶段取产品类型模板的第一个阶段
func (s *ProductService) CreateProduct(tenantID uint, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &models.Product{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		ProductType: req.ProductType,
		Price:       req.Price,
		Status:      models.ProductStatusDraft,
		LaunchStage: s.workflow.FirstStageKey(req.ProductType),
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("创建产品失败: %w", err)
	}

	return toProductResponse(product), nil
}

// GetProduct 获取产品
func (s *ProductService) GetProduct(id, tenantID uint) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByIDAndTenantID(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListProducts 获取产品列表
func (s *ProductService) ListProducts(tenantID uint, page, perPage int) (*dto.PaginatedResponse, error) {
	offset := (page - 1) * perPage
	products, total, err := s.productRepo.ListByTenantID(tenantID, offset, perPage)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProductResponse, len(products))
	for i := range products {
		responses[i] = *toProductResponse(&products[i])
	}

	return &dto.PaginatedResponse{
		Items:   responses,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// UpdateProduct 更新产品
func (s *ProductService) UpdateProduct(id, tenantID uint, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByIDAndTenantID(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ProductType != nil {
		product.ProductType = *req.ProductType
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Revenue != nil {
		product.Revenue = *req.Revenue
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("更新产品失败: %w", err)
	}

	return toProductResponse(product), nil
}

// DeleteProduct 删除产品
func (s *ProductService) DeleteProduct(id, tenantID uint) error {
	if _, err := s.productRepo.GetByIDAndTenantID(id, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.productRepo.Delete(id, tenantID)
}

// toProductResponse 转换为响应DTO
func toProductResponse(p *models.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ProductType: p.ProductType,
		Price:       p.Price,
		Revenue:     p.Revenue,
		Status:      p.Status,
		LaunchStage: p.LaunchStage,
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
