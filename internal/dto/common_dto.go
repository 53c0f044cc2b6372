package dto

// PaginatedResponse 分页响应
type PaginatedResponse struct {
	Items   interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}
