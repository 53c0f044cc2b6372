package service

import (
	"errors"
	"fmt"

	"launch-go/internal/dto"
	"launch-go/internal/models"
	"launch-go/internal/repository"

	"gorm.io/gorm"
)

// BrandService 品牌规范服务
type BrandService struct {
	brandRepo *repository.BrandRepository
}

// NewBrandService 创建品牌规范服务
func NewBrandService(brandRepo *repository.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

// GetBrand 获取租户品牌规范，未设置时返回空规范
func (s *BrandService) GetBrand(tenantID uint) (*dto.BrandResponse, error) {
	brand, err := s.brandRepo.GetByTenantID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.BrandResponse{Colors: []string{}, Fonts: []string{}}, nil
		}
		return nil, err
	}

	return toBrandResponse(brand), nil
}

// UpdateBrand 创建或更新租户品牌规范
func (s *BrandService) UpdateBrand(tenantID uint, req *dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand := &models.BrandGuideline{
		TenantID:       tenantID,
		Name:           req.Name,
		Voice:          req.Voice,
		TargetAudience: req.TargetAudience,
		Colors:         models.StringList(req.Colors),
		Fonts:          models.StringList(req.Fonts),
	}

	if err := s.brandRepo.Upsert(brand); err != nil {
		return nil, fmt.Errorf("保存品牌规范失败: %w", err)
	}

	return toBrandResponse(brand), nil
}

// toBrandResponse 转换为响应DTO
func toBrandResponse(b *models.BrandGuideline) *dto.BrandResponse {
	colors := []string(b.Colors)
	if colors == nil {
		colors = []string{}
	}
	fonts := []string(b.Fonts)
	if fonts == nil {
		fonts = []string{}
	}
	return &dto.BrandResponse{
		Name:           b.Name,
		Voice:          b.Voice,
		TargetAudience: b.TargetAudience,
		Colors:         colors,
		Fonts:          fonts,
	}
}
