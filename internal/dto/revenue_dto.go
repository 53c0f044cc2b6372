package dto

// CreateRevenueGoalRequest 创建营收目标请求
type CreateRevenueGoalRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	Deadline     string  `json:"deadline"` // RFC3339，可为空
}

// UpdateRevenueGoalRequest 更新营收目标请求
type UpdateRevenueGoalRequest struct {
	Title        *string  `json:"title"`
	TargetAmount *float64 `json:"target_amount"`
	Deadline     *string  `json:"deadline"`
}

// RevenueGoalResponse 营收目标响应
type RevenueGoalResponse struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	TargetAmount float64 `json:"target_amount"`
	Deadline     string  `json:"deadline,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// RevenueProgressResponse 营收进度响应
type RevenueProgressResponse struct {
	TotalTarget  float64               `json:"total_target"`
	TotalRevenue float64               `json:"total_revenue"`
	Progress     float64               `json:"progress"` // 0-1，目标为0时为0
	Goals        []RevenueGoalResponse `json:"goals"`
}
