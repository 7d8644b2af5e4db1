package models

// Envelope wraps every LMS API response body
type Envelope[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Meta describes one page of a list
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Page is the data of a paginated list response
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// PageQuery selects a page. Zero values fall back to page 1, limit 10.
type PageQuery struct {
	Page  int
	Limit int
}

func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	return q
}

// NewMeta computes paging flags for a known total
func NewMeta(page, limit, total int) Meta {
	q := PageQuery{Page: page, Limit: limit}.Normalize()
	totalPages := (total + q.Limit - 1) / q.Limit
	return Meta{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    q.Page < totalPages,
		HasPrev:    q.Page > 1,
	}
}
