package pkg

import (
	"math"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gustavods/storefront/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// reservedParams lists query parameter names used for pagination, not filtering.
var reservedParams = map[string]bool{
	"page":  true,
	"limit": true,
}

// ParsePageRequest extracts page, limit, and the remaining filter parameters
// from the query string. Defaults are page=1, limit=20. Non-numeric page or
// limit values fail with a validation error.
func ParsePageRequest(c *gin.Context) (domain.PageRequest, error) {
	req := domain.PageRequest{Page: defaultPage, Limit: defaultLimit}

	if raw := c.Query("limit"); raw != "" {
		n, err := Number("Limit", raw)
		if err != nil {
			return req, err
		}
		if n > 0 {
			req.Limit = n
		}
	}

	if raw := c.Query("page"); raw != "" {
		n, err := Number("Page", raw)
		if err != nil {
			return req, err
		}
		if n > 0 {
			req.Page = n
		}
	}

	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 {
			filter[key] = values[0]
		}
	}
	req.Filter = filter

	return req, nil
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET based on the page request.
func Paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.Limit)
	}
}

// NewPageResult assembles one page of items with its metadata.
// PageSize reflects the count actually returned, not the requested limit.
func NewPageResult[T any](items []T, total int64, req domain.PageRequest) *domain.PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return &domain.PageResult[T]{
		Items: items,
		Meta: domain.PageMeta{
			Limit:    req.Limit,
			Total:    total,
			Page:     req.Page,
			PageSize: len(items),
		},
	}
}

// TotalPages computes ceil(total/limit) for the Total-Pages response header.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
