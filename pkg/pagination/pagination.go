package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

// MaxPageSize caps how many parse results a single page returns
const MaxPageSize = 500

type Params struct {
	Page     int
	PageSize int
}

// FromQuery reads page and pageSize from query values. Page defaults to 1 and
// a pageSize of 0 means everything.
func FromQuery(qp url.Values) (Params, error) {
	params := Params{
		Page:     1,
		PageSize: 0,
	}

	if pageStr := qp.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page parameter: must be positive integer")
		}
		params.Page = page
	}

	if pageSizeStr := qp.Get("pageSize"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 0 || pageSize > MaxPageSize {
			return params, fmt.Errorf("invalid pageSize parameter: must be between 0 and %d", MaxPageSize)
		}
		params.PageSize = pageSize
	}

	return params, nil
}

// CalculateOffsetLimit returns the row offset and limit, a zero limit means no limit
func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize == 0 {
		return 0, 0
	}
	page := max(p.Page, 1)
	offset = (page - 1) * p.PageSize
	limit = p.PageSize
	return offset, limit
}

func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	} else if totalItems > 0 {
		totalPages = 1
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
