package service

import (
	"errors"

	"launch-go/internal/dto"
	"launch-go/internal/models"
	"launch-go/internal/repository"

	"gorm.io/gorm"
)

// ErrAssetNotFound 资产不存在
var ErrAssetNotFound = errors.New("资产不存在")

// AssetService 生成资产服务
type AssetService struct {
	assetRepo *repository.AssetRepository
}

// NewAssetService 创建生成资产服务
func NewAssetService(assetRepo *repository.AssetRepository) *AssetService {
	return &AssetService{assetRepo: assetRepo}
}

// GetAsset 获取资产
func (s *AssetService) GetAsset(assetID string, tenantID uint) (*dto.AssetResponse, error) {
	asset, err := s.assetRepo.GetByAssetID(assetID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// ListAssets 获取产品的资产列表
func (s *AssetService) ListAssets(productID, tenantID uint, page, perPage int) (*dto.PaginatedResponse, error) {
	offset := (page - 1) * perPage
	assets, total, err := s.assetRepo.ListByProductID(productID, tenantID, offset, perPage)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AssetResponse, len(assets))
	for i := range assets {
		responses[i] = *toAssetResponse(&assets[i])
	}

	return &dto.PaginatedResponse{
		Items:   responses,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// ReviewAsset 人工复核，覆盖资产状态
// 生成管线创建后不再改动状态，这里是唯一的修改入口。
func (s *AssetService) ReviewAsset(assetID string, tenantID uint, status string) error {
	if _, err := s.assetRepo.GetByAssetID(assetID, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssetNotFound
		}
		return err
	}
	return s.assetRepo.UpdateStatus(assetID, tenantID, status)
}

// toAssetResponse 转换为响应DTO
func toAssetResponse(a *models.GeneratedAsset) *dto.AssetResponse {
	return &dto.AssetResponse{
		AssetID:       a.AssetID,
		ProductID:     a.ProductID,
		AssetType:     a.AssetType,
		AssetCategory: a.AssetCategory,
		Content:       a.Content,
		Status:        a.Status,
		QualityCheck:  a.QualityCheck,
		Metadata:      a.Metadata,
		CreatedAt:     a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
