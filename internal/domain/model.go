package domain

import "time"

// BaseModel is the common base struct for all domain models.
// UpdatedAt is a pointer and stays null until the first update: GORM's
// automatic update timestamp is disabled so services control it explicitly.
type BaseModel struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// PageRequest holds pagination and filtering parameters for list queries.
type PageRequest struct {
	Page   int
	Limit  int
	Filter map[string]string
}

// Offset returns the row offset implied by the page and limit.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// PageMeta is the pagination block of a list response envelope.
// PageSize is the number of items actually returned; Total is the filtered
// count across all pages.
type PageMeta struct {
	Limit    int   `json:"limit"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// PageResult bundles one page of items with its pagination metadata.
type PageResult[T any] struct {
	Items []T
	Meta  PageMeta
}
