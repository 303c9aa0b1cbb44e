package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginatedListResponse is the envelope every list endpoint returns.
// Count is the total number of matching records, not the page length.
type PaginatedListResponse struct {
	Items interface{} `json:"items"`
	Count int64       `json:"count"`
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// PageParams reads the "page" and "page_size" query parameters and turns
// them into a store offset and limit. Pages are 1-based and clamped to a
// minimum of 1; page_size defaults to 50 and is clamped into [1,100].
func PageParams(c *gin.Context) (offset, limit int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.Query("page_size"))
	if err != nil {
		pageSize = DefaultPageSize
	}
	switch {
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	case pageSize < 1:
		pageSize = 1
	}

	return (page - 1) * pageSize, pageSize
}
