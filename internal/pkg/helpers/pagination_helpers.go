package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/courseboard/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // Page numbers are 1-based
)

// Paginate computes the bounded page window over an ordered collection.
// totalPages is never below 1, so page 1 of an empty collection is well-defined.
// An out-of-range page request is clamped into [1, totalPages], not rejected.
func Paginate(totalCount int64, requestedPage, pageSize int) (page, totalPages int, offset uint64) {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	totalPages = 1
	if totalCount > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}

	page = requestedPage
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * pageSize)
	return page, totalPages, offset
}

// NewPaginationInfo creates a standard PaginationInfo DTO from a computed window.
func NewPaginationInfo(totalItems int64, page, totalPages, size int) dto.PaginationInfo {
	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the request
func ParsePaginationParams(c *gin.Context) (page, size int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	sizeStr := c.DefaultQuery("size", strconv.Itoa(DefaultPageSize))
	size, err = strconv.Atoi(sizeStr)
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return page, size
}
