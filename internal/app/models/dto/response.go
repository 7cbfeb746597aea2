package dto

// APIResponse is the generic envelope for successful responses.
type APIResponse struct {
	Data       interface{}     `json:"data,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Links      *PageLinks      `json:"links,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// CreatedResponse carries the identity of a newly created resource.
type CreatedResponse struct {
	ID int64 `json:"id" example:"42"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"25"`
}

// PageLinks carries relative navigation links for a paginated listing.
type PageLinks struct {
	FirstPage string `json:"firstPage,omitempty"`
	PrevPage  string `json:"prevPage,omitempty"`
	NextPage  string `json:"nextPage,omitempty"`
	LastPage  string `json:"lastPage,omitempty"`
}
