package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateFirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	result := Paginate(items, &PaginationParams{Page: 1, PerPage: 2})

	assert.Equal(t, []int{1, 2}, result.Items)
	assert.Equal(t, int64(5), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrev)
}

func TestPaginateLastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	result := Paginate(items, &PaginationParams{Page: 3, PerPage: 2})

	assert.Equal(t, []int{5}, result.Items)
	assert.False(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)
}

func TestPaginatePastTheEnd(t *testing.T) {
	items := []int{1, 2, 3}

	result := Paginate(items, &PaginationParams{Page: 10, PerPage: 10})

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(3), result.Pagination.Total)
}

func TestPaginateValidatesParams(t *testing.T) {
	items := []int{1, 2, 3}

	result := Paginate(items, &PaginationParams{Page: 0, PerPage: -5})

	require.NotNil(t, result.Pagination)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 15, result.Pagination.PerPage)
	assert.Equal(t, []int{1, 2, 3}, result.Items)
}

func TestValidateCapsPerPage(t *testing.T) {
	params := &PaginationParams{Page: 1, PerPage: 500}

	params.Validate()

	assert.Equal(t, 100, params.PerPage)
}
