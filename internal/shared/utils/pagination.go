package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/shared/constants"
)

type Pagination struct {
	Page     int
	PageSize int
}

// Offset of the first row of the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// NormalizePagination applies defaults and caps the page size.
func NormalizePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// ParsePagination reads page and page_size from the query string.
func ParsePagination(c *gin.Context) Pagination {
	return NormalizePagination(
		queryInt(c, "page", constants.DefaultPage),
		queryInt(c, "page_size", constants.DefaultPageSize),
	)
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return n
		}
	}
	return def
}

// TotalPages is at least 1 so empty lists still report a page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
