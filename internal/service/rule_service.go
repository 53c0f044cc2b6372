package service

import (
	"errors"
	"fmt"
	"log"

	"launch-go/internal/dto"
	"launch-go/internal/models"
	"launch-go/internal/repository"

	"gorm.io/gorm"
)

// ErrRuleNotFound 规则不存在
var ErrRuleNotFound = errors.New("生成规则不存在")

// RuleService 生成规则服务
type RuleService struct {
	ruleRepo *repository.RuleRepository
}

// NewRuleService 创建生成规则服务
func NewRuleService(ruleRepo *repository.RuleRepository) *RuleService {
	return &RuleService{ruleRepo: ruleRepo}
}

// CreateRule 创建规则，门限配置在入库前校验
func (s *RuleService) CreateRule(req *dto.CreateRuleRequest) (*dto.RuleResponse, error) {
	if err := req.Gates.Validate(); err != nil {
		return nil, fmt.Errorf("质量门限配置无效: %w", err)
	}

	category := req.AssetCategory
	if category == "" {
		category = models.AssetCategoryCopywriting
	}

	exists, err := s.ruleRepo.ExistsByKey(req.ProductType, category, req.AssetType)
	if err != nil {
		return nil, fmt.Errorf("检查规则失败: %w", err)
	}
	if exists {
		return nil, errors.New("相同键的规则已存在")
	}

	rule := &models.GenerationRule{
		ProductType:   req.ProductType,
		AssetCategory: category,
		AssetType:     req.AssetType,
		Tone:          req.Tone,
		MaxLength:     req.MaxLength,
		Required:      models.StringList(req.Required),
		Prohibited:    models.StringList(req.Prohibited),
		Gates:         req.Gates,
		IsActive:      true,
	}

	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, fmt.Errorf("创建规则失败: %w", err)
	}

	return toRuleResponse(rule), nil
}

// UpdateRule 更新规则
func (s *RuleService) UpdateRule(id uint, req *dto.UpdateRuleRequest) (*dto.RuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}

	if req.Gates != nil {
		if err := req.Gates.Validate(); err != nil {
			return nil, fmt.Errorf("质量门限配置无效: %w", err)
		}
		rule.Gates = *req.Gates
	}
	if req.Tone != nil {
		rule.Tone = *req.Tone
	}
	if req.MaxLength != nil {
		rule.MaxLength = *req.MaxLength
	}
	if req.Required != nil {
		rule.Required = models.StringList(req.Required)
	}
	if req.Prohibited != nil {
		rule.Prohibited = models.StringList(req.Prohibited)
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.ruleRepo.Update(rule); err != nil {
		return nil, fmt.Errorf("更新规则失败: %w", err)
	}

	return toRuleResponse(rule), nil
}

// DeleteRule 删除规则
func (s *RuleService) DeleteRule(id uint) error {
	if _, err := s.ruleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRuleNotFound
		}
		return err
	}
	return s.ruleRepo.Delete(id)
}

// ListRules 获取规则列表
func (s *RuleService) ListRules(page, perPage int) (*dto.PaginatedResponse, error) {
	offset := (page - 1) * perPage
	rules, total, err := s.ruleRepo.List(offset, perPage)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RuleResponse, len(rules))
	for i := range rules {
		responses[i] = *toRuleResponse(&rules[i])
	}

	return &dto.PaginatedResponse{
		Items:   responses,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// SeedDefaults 空库时写入常见文案资产类型的默认规则
func (s *RuleService) SeedDefaults() error {
	count, err := s.ruleRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	minDesc, maxDesc := 50, 300
	minHeadline := 3
	maxHeadline := 20
	minEmail := 80
	maxEmail := 500

	defaults := []models.GenerationRule{
		{
			ProductType:   "physical",
			AssetCategory: models.AssetCategoryCopywriting,
			AssetType:     "product_description",
			Tone:          "confident",
			MaxLength:     2000,
			Required:      models.StringList{"product benefits", "call to action"},
			Prohibited:    models.StringList{"superlatives without proof"},
			Gates: models.QualityGates{
				MinWords:        &minDesc,
				MaxWords:        &maxDesc,
				ProhibitedWords: []string{"guaranteed", "best ever"},
			},
			IsActive: true,
		},
		{
			ProductType:   "physical",
			AssetCategory: models.AssetCategoryCopywriting,
			AssetType:     "headline",
			Tone:          "punchy",
			MaxLength:     120,
			Required:      models.StringList{"product name"},
			Prohibited:    models.StringList{"clickbait"},
			Gates: models.QualityGates{
				MinWords: &minHeadline,
				MaxWords: &maxHeadline,
			},
			IsActive: true,
		},
		{
			ProductType:   "digital",
			AssetCategory: models.AssetCategoryCopywriting,
			AssetType:     "product_description",
			Tone:          "friendly",
			MaxLength:     2000,
			Required:      models.StringList{"product benefits", "call to action"},
			Prohibited:    models.StringList{"jargon"},
			Gates: models.QualityGates{
				MinWords:        &minDesc,
				MaxWords:        &maxDesc,
				ProhibitedWords: []string{"guaranteed"},
			},
			IsActive: true,
		},
		{
			ProductType:   "digital",
			AssetCategory: models.AssetCategoryCopywriting,
			AssetType:     "launch_email",
			Tone:          "warm",
			MaxLength:     4000,
			Required:      models.StringList{"greeting", "launch date", "call to action"},
			Prohibited:    models.StringList{"spam trigger words"},
			Gates: models.QualityGates{
				MinWords:         &minEmail,
				MaxWords:         &maxEmail,
				RequiredKeywords: []string{"launch"},
				ProhibitedWords:  []string{"free money", "act now"},
			},
			IsActive: true,
		},
	}

	for i := range defaults {
		if err := s.ruleRepo.Create(&defaults[i]); err != nil {
			return fmt.Errorf("写入默认规则失败: %w", err)
		}
	}

	log.Printf("[RuleService] 已写入 %d 条默认生成规则", len(defaults))
	return nil
}

// toRuleResponse 转换为响应DTO
func toRuleResponse(r *models.GenerationRule) *dto.RuleResponse {
	return &dto.RuleResponse{
		ID:            r.ID,
		ProductType:   r.ProductType,
		AssetCategory: r.AssetCategory,
		AssetType:     r.AssetType,
		Tone:          r.Tone,
		MaxLength:     r.MaxLength,
		Required:      []string(r.Required),
		Prohibited:    []string(r.Prohibited),
		Gates:         r.Gates,
		IsActive:      r.IsActive,
	}
}
