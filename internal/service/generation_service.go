package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"launch-go/internal/dto"
	"launch-go/internal/metrics"
	"launch-go/internal/models"
	"launch-go/internal/repository"
	"launch-go/pkg/redis_limiter"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrProductNotFound 产品不存在，生成请求的致命前置条件失败
var ErrProductNotFound = errors.New("产品不存在")

// TextGenerator 文本生成服务接口
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// GenerationService 资产生成服务
// 对每个请求的资产类型按顺序执行: 规则查找 -> 提示词构建 -> 文本生成 -> 质量评估 -> 落库。
// 协作方全部由构造函数注入，不依赖全局状态。
type GenerationService struct {
	productRepo   *repository.ProductRepository
	brandRepo     *repository.BrandRepository
	ruleRepo      *repository.RuleRepository
	assetRepo     *repository.AssetRepository
	generator     TextGenerator
	promptBuilder *PromptBuilder
	knowledge     *KnowledgeRecorder
	limiter       *redis_limiter.RedisLimiter
	callTimeout   time.Duration
}

// NewGenerationService 创建资产生成服务
// limiter与knowledge可为nil，分别表示不限流与不记录知识库。
func NewGenerationService(
	productRepo *repository.ProductRepository,
	brandRepo *repository.BrandRepository,
	ruleRepo *repository.RuleRepository,
	assetRepo *repository.AssetRepository,
	generator TextGenerator,
	knowledge *KnowledgeRecorder,
	limiter *redis_limiter.RedisLimiter,
	callTimeout time.Duration,
) *GenerationService {
	if callTimeout <= 0 {
		callTimeout = 120 * time.Second
	}
	return &GenerationService{
		productRepo:   productRepo,
		brandRepo:     brandRepo,
		ruleRepo:      ruleRepo,
		assetRepo:     assetRepo,
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		knowledge:     knowledge,
		limiter:       limiter,
		callTimeout:   callTimeout,
	}
}

// GenerateAssets 为产品生成请求的各资产类型
// 资产类型严格按请求顺序逐个处理；缺少规则的类型跳过；
// 生成服务失败只中止该类型并记入errors，其余类型继续；
// 已落库的资产不回滚。
func (s *GenerationService) GenerateAssets(ctx context.Context, tenantID uint, req *dto.GenerateAssetsRequest) (*dto.GenerateAssetsResponse, error) {
	// 产品不存在时整个请求不执行
	product, err := s.productRepo.GetByIDAndTenantID(req.ProductID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("查询产品失败: %w", err)
	}

	// 品牌规范缺失时使用空规范，不报错
	brand, err := s.brandRepo.GetByTenantID(tenantID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("查询品牌规范失败: %w", err)
		}
		brand = &models.BrandGuideline{TenantID: tenantID}
	}

	// 租户级并发限制，整个请求占用一个槽位
	if s.limiter != nil {
		tenantKey := fmt.Sprintf("tenant:%d", tenantID)
		if err := s.limiter.Acquire(ctx, tenantKey); err != nil {
			return nil, fmt.Errorf("生成服务繁忙: %w", err)
		}
		defer s.limiter.Release(context.Background(), tenantKey)
	}

	resp := &dto.GenerateAssetsResponse{
		ProductID: product.ID,
	}

	for _, assetType := range req.AssetTypes {
		// 规则缺失: 跳过该类型，只告警
		rule, err := s.ruleRepo.GetByKey(product.ProductType, models.AssetCategoryCopywriting, assetType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				metrics.RuleSetMissesTotal.Inc()
				log.Printf("[GenerateAssets] 资产类型 %s 没有匹配规则(product_type=%s)，跳过", assetType, product.ProductType)
				continue
			}
			return nil, fmt.Errorf("查询生成规则失败: %w", err)
		}

		result, genErr := s.generateOne(ctx, tenantID, product, brand, rule, assetType)
		if genErr != nil {
			// 生成服务失败只中止当前资产类型，不创建资产，继续后续类型
			metrics.GenerationFailuresTotal.Inc()
			log.Printf("[GenerateAssets] 资产类型 %s 生成失败: %v", assetType, genErr)
			resp.Errors = append(resp.Errors, dto.GenerationError{
				AssetType: assetType,
				Message:   genErr.Error(),
			})
			continue
		}

		resp.GeneratedAssets = append(resp.GeneratedAssets, *result)
	}

	// 汇总只统计实际创建的资产
	resp.Summary.Total = len(resp.GeneratedAssets)
	for _, r := range resp.GeneratedAssets {
		if r.Status == models.AssetStatusApproved {
			resp.Summary.Approved++
		} else {
			resp.Summary.NeedsReview++
		}
	}

	return resp, nil
}

// generateOne 处理单个资产类型: 生成、评估并落库
func (s *GenerationService) generateOne(
	ctx context.Context,
	tenantID uint,
	product *models.Product,
	brand *models.BrandGuideline,
	rule *models.GenerationRule,
	assetType string,
) (*dto.GeneratedAssetResult, error) {
	system := s.promptBuilder.BuildSystemInstruction(brand, rule)
	prompt := s.promptBuilder.Build(product, brand, rule, assetType)

	// 生成调用是管线中唯一的网络挂起点，单独限定超时
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	content, err := s.generator.Generate(callCtx, system, prompt)
	cancel()
	if err != nil {
		return nil, err
	}

	check := EvaluateQualityGates(content, rule.Gates)

	status := models.AssetStatusNeedsReview
	if check.Passed {
		status = models.AssetStatusApproved
	}

	// 生效规则快照写入metadata供审计
	asset := &models.GeneratedAsset{
		AssetID:       uuid.NewString(),
		TenantID:      tenantID,
		ProductID:     product.ID,
		AssetType:     assetType,
		AssetCategory: rule.AssetCategory,
		Content:       content,
		Status:        status,
		QualityCheck:  check,
		Metadata: models.JSONMap{
			"tone":          rule.Tone,
			"max_length":    rule.MaxLength,
			"required":      []string(rule.Required),
			"prohibited":    []string(rule.Prohibited),
			"quality_gates": rule.Gates,
		},
	}

	// 落库失败是致命错误: 无法持久化结果时不能假装成功
	if err := s.assetRepo.Create(asset); err != nil {
		return nil, fmt.Errorf("保存资产失败: %w", err)
	}

	metrics.GeneratedAssetsTotal.WithLabelValues(status).Inc()

	// 质量指标写入知识库，尽力而为
	if s.knowledge != nil {
		s.knowledge.Record(&models.KnowledgeEntry{
			TenantID:     tenantID,
			AssetID:      asset.AssetID,
			ProductID:    product.ID,
			AssetType:    assetType,
			QualityScore: check.Score,
			WordCount:    CountWords(content),
			Metadata: models.JSONMap{
				"tone":            rule.Tone,
				"brand_voice":     brand.Voice,
				"target_audience": brand.TargetAudience,
			},
		})
	}

	return &dto.GeneratedAssetResult{
		AssetType:    assetType,
		AssetID:      asset.AssetID,
		Content:      content,
		QualityCheck: check,
		Status:       status,
	}, nil
}
