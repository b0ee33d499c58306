package dto

// PaginationPostDTO is a concrete swagger-friendly type for the paginated feed response
// swagger:model PaginationPostDTO
type PaginationPostDTO struct {
	Data     []PostDTO `json:"data"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int64     `json:"total"`
}
