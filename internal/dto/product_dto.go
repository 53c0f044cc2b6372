package dto

// CreateProductRequest 创建产品请求
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description"`
	ProductType string  `json:"product_type" binding:"required,max=50"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// UpdateProductRequest 更新产品请求
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	ProductType *string  `json:"product_type"`
	Price       *float64 `json:"price"`
	Revenue     *float64 `json:"revenue"`
	Status      *string  `json:"status" binding:"omitempty,oneof=draft launching launched"`
}

// ProductResponse 产品响应
type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ProductType string  `json:"product_type"`
	Price       float64 `json:"price"`
	Revenue     float64 `json:"revenue"`
	Status      string  `json:"status"`
	LaunchStage string  `json:"launch_stage"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
