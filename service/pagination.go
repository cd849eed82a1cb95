package service

import (
	"hackaplan/app_error"
	"hackaplan/repository"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Page[T any] struct {
	Items  []T
	Total  int64
	Limit  int
	Offset int
}

// NormalizePagination rejects negative values, substitutes the default for a zero
// limit and caps the limit at MaxPageLimit.
func NormalizePagination(p repository.Pagination) (repository.Pagination, error) {
	if p.Limit < 0 {
		return p, app_error.InvalidArgument("limit must be a non-negative integer")
	}
	if p.Offset < 0 {
		return p, app_error.InvalidArgument("offset must be a non-negative integer")
	}
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p, nil
}
