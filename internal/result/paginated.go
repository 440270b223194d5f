package result

import (
	"math"
)

// Paginated holds one page of a listing, as well as the metadata needed to navigate it
type Paginated[T any] struct {
	maxResultsPerPage int
	page              int
	hits              T
	totalHits         int
}

func NewPaginated[T any](maxResultsPerPage, page, totalHits int, hits T) Paginated[T] {
	if page < 1 {
		page = 1
	}
	return Paginated[T]{
		maxResultsPerPage: maxResultsPerPage,
		page:              page,
		totalHits:         totalHits,
		hits:              hits,
	}
}

func (p Paginated[T]) Page() int {
	return p.page
}

func (p Paginated[T]) Hits() T {
	return p.hits
}

func (p Paginated[T]) TotalHits() int {
	return p.totalHits
}

func (p Paginated[T]) TotalPages() int {
	if p.maxResultsPerPage == 0 {
		return 0
	}

	return int(math.Ceil(float64(p.totalHits) / float64(p.maxResultsPerPage)))
}

func (p Paginated[T]) HasPrevious() bool {
	return p.page > 1
}

func (p Paginated[T]) HasNext() bool {
	return p.page < p.TotalPages()
}
