package models

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// sortColumns maps the JSON field names accepted in sortBy to table columns.
var sortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"email":     "email",
	"age":       "age",
	"city":      "city",
	"createdAt": "created_at",
}

// PageRequest describes a zero-based page, its size and a single-field ordering.
type PageRequest struct {
	Page       int
	Size       int
	SortBy     string // JSON field name, e.g. "createdAt"
	Descending bool
}

// NewPageRequest builds a PageRequest; any sortDir other than "desc" (case-insensitive) is ascending.
func NewPageRequest(page, size int, sortBy, sortDir string) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, fmt.Errorf("page index must not be less than zero")
	}
	if size < 1 {
		return PageRequest{}, fmt.Errorf("page size must not be less than one")
	}
	if _, ok := sortColumns[sortBy]; !ok {
		return PageRequest{}, fmt.Errorf("no sortable property %q found for type User", sortBy)
	}
	return PageRequest{
		Page:       page,
		Size:       size,
		SortBy:     sortBy,
		Descending: strings.EqualFold(sortDir, "desc"),
	}, nil
}

// Offset returns the number of rows skipped before this page. ok is false when
// the offset does not fit a signed 64-bit SQL OFFSET; such a page is past the end
// of any table.
func (p PageRequest) Offset() (offset uint64, ok bool) {
	if p.Page < 0 || p.Size < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(p.Page), uint64(p.Size))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return lo, true
}

// OrderBy renders the ORDER BY term, falling back to id for unknown fields.
func (p PageRequest) OrderBy() string {
	column, ok := sortColumns[p.SortBy]
	if !ok {
		column = "id"
	}
	if p.Descending {
		return column + " DESC"
	}
	return column + " ASC"
}

// Page is the paginated response envelope.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Size             int   `json:"size"`
	Number           int   `json:"number"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

// NewPage wraps one page of content with the paging metadata derived from total.
func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = make([]T, 0)
	}

	totalPages := 1
	if req.Size > 0 {
		size := int64(req.Size)
		pages := total / size
		if total%size != 0 {
			pages++
		}
		totalPages = int(pages)
	}

	return &Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Size:             req.Size,
		Number:           req.Page,
		NumberOfElements: len(content),
		First:            req.Page == 0,
		Last:             req.Page >= totalPages-1,
		Empty:            len(content) == 0,
	}
}
