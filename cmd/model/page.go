package model

import "vidtube.com/pkg/constants"

// Pagination 是 1 起始的页码和每页条数
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination 对缺省和越界的参数取默认值
func NewPagination(page, limit int64) Pagination {
	switch {
	case page < 1:
		page = constants.DefaultPage
	case page > constants.MaxPage:
		page = constants.MaxPage
	}
	switch {
	case limit < 1:
		limit = constants.DefaultLimit
	case limit > constants.MaxLimit:
		limit = constants.MaxLimit
	}
	return Pagination{Page: int(page), Limit: int(limit)}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Page[T any] struct {
	Docs          []T   `json:"docs"`
	TotalDocs     int64 `json:"totalDocs"`
	Limit         int   `json:"limit"`
	Page          int   `json:"page"`
	TotalPages    int   `json:"totalPages"`
	PagingCounter int   `json:"pagingCounter"`
	HasPrevPage   bool  `json:"hasPrevPage"`
	HasNextPage   bool  `json:"hasNextPage"`
	PrevPage      *int  `json:"prevPage"`
	NextPage      *int  `json:"nextPage"`
}

func NewPage[T any](docs []T, total int64, p Pagination) *Page[T] {
	if docs == nil {
		docs = []T{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	page := &Page[T]{
		Docs:          docs,
		TotalDocs:     total,
		Limit:         p.Limit,
		Page:          p.Page,
		TotalPages:    totalPages,
		PagingCounter: p.Offset() + 1,
	}
	if p.Page > 1 {
		prev := p.Page - 1
		page.HasPrevPage = true
		page.PrevPage = &prev
	}
	if p.Page < totalPages {
		next := p.Page + 1
		page.HasNextPage = true
		page.NextPage = &next
	}
	return page
}
