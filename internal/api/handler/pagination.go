package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/core/ports"
)

// pageEnvelope is the pagination wrapper shared by all list endpoints.
type pageEnvelope struct {
	Content       any   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	LastPage      bool  `json:"last_page"`
}

// maxPageSize caps pageSize here with the same limit the services apply, so
// the envelope always describes the page that was actually served.
const maxPageSize = 100

// pageFromQuery reads pageNumber/pageSize/sortBy/sortOrder query params with
// the catalog defaults.
func pageFromQuery(c echo.Context) ports.PageRequest {
	page := ports.PageRequest{
		PageNumber: 0,
		PageSize:   10,
		SortBy:     c.QueryParam("sortBy"),
		SortOrder:  c.QueryParam("sortOrder"),
	}
	if n, err := strconv.Atoi(c.QueryParam("pageNumber")); err == nil && n >= 0 {
		page.PageNumber = n
	}
	if n, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && n > 0 {
		page.PageSize = n
	}
	if page.PageSize > maxPageSize {
		page.PageSize = maxPageSize
	}
	return page
}

func envelope(content any, page ports.PageRequest, total int64) pageEnvelope {
	totalPages := int((total + int64(page.PageSize) - 1) / int64(page.PageSize))
	return pageEnvelope{
		Content:       content,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		LastPage:      page.PageNumber >= totalPages-1,
	}
}
