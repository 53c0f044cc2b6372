package service

import (
	"errors"
	"fmt"
	"time"

	"launch-go/internal/dto"
	"launch-go/internal/models"
	"launch-go/internal/repository"

	"gorm.io/gorm"
)

// ErrGoalNotFound 营收目标不存在
var ErrGoalNotFound = errors.New("营收目标不存在")

// RevenueService 营收目标服务
type RevenueService struct {
	revenueRepo *repository.RevenueRepository
	productRepo *repository.ProductRepository
}

// NewRevenueService 创建营收目标服务
func NewRevenueService(revenueRepo *repository.RevenueRepository, productRepo *repository.ProductRepository) *RevenueService {
	return &RevenueService{
		revenueRepo: revenueRepo,
		productRepo: productRepo,
	}
}

// CreateGoal 创建营收目标
func (s *RevenueService) CreateGoal(tenantID uint, req *dto.CreateRevenueGoalRequest) (*dto.RevenueGoalResponse, error) {
	goal := &models.RevenueGoal{
		TenantID:     tenantID,
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
	}

	if req.Deadline != "" {
		deadline, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("无效的截止时间: %w", err)
		}
		goal.Deadline = &deadline
	}

	if err := s.revenueRepo.Create(goal); err != nil {
		return nil, fmt.Errorf("创建营收目标失败: %w", err)
	}

	return toGoalResponse(goal), nil
}

// UpdateGoal 更新营收目标
func (s *RevenueService) UpdateGoal(id, tenantID uint, req *dto.UpdateRevenueGoalRequest) (*dto.RevenueGoalResponse, error) {
	goal, err := s.revenueRepo.GetByIDAndTenantID(id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.Deadline != nil {
		if *req.Deadline == "" {
			goal.Deadline = nil
		} else {
			deadline, err := time.Parse(time.RFC3339, *req.Deadline)
			if err != nil {
				return nil, fmt.Errorf("无效的截止时间: %w", err)
			}
			goal.Deadline = &deadline
		}
	}

	if err := s.revenueRepo.Update(goal); err != nil {
		return nil, fmt.Errorf("更新营收目标失败: %w", err)
	}

	return toGoalResponse(goal), nil
}

// DeleteGoal 删除营收目标
func (s *RevenueService) DeleteGoal(id, tenantID uint) error {
	if _, err := s.revenueRepo.GetByIDAndTenantID(id, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGoalNotFound
		}
		return err
	}
	return s.revenueRepo.Delete(id, tenantID)
}

// GetProgress 获取营收进度，实际营收取已发布产品的营收总额
func (s *RevenueService) GetProgress(tenantID uint) (*dto.RevenueProgressResponse, error) {
	goals, err := s.revenueRepo.ListByTenantID(tenantID)
	if err != nil {
		return nil, err
	}

	revenue, err := s.productRepo.SumRevenueByTenantID(tenantID)
	if err != nil {
		return nil, err
	}

	resp := &dto.RevenueProgressResponse{
		TotalRevenue: revenue,
		Goals:        make([]dto.RevenueGoalResponse, len(goals)),
	}
	for i := range goals {
		resp.TotalTarget += goals[i].TargetAmount
		resp.Goals[i] = *toGoalResponse(&goals[i])
	}
	if resp.TotalTarget > 0 {
		resp.Progress = resp.TotalRevenue / resp.TotalTarget
	}

	return resp, nil
}

// toGoalResponse 转换为响应DTO
func toGoalResponse(g *models.RevenueGoal) *dto.RevenueGoalResponse {
	resp := &dto.RevenueGoalResponse{
		ID:           g.ID,
		Title:        g.Title,
		TargetAmount: g.TargetAmount,
		CreatedAt:    g.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if g.Deadline != nil {
		resp.Deadline = g.Deadline.Format(time.RFC3339)
	}
	return resp
}
