package lulu_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

// pagedSource serves a fixed slice in pages and records the requests it saw.
type pagedSource struct {
	mu       sync.Mutex
	items    []int
	failPage int
	requests []lulu.ListOptions
}

func (s *pagedSource) fetch(_ context.Context, opts lulu.ListOptions) (*lulu.PagedResponse[int], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, opts)

	if s.failPage > 0 && opts.Page == s.failPage {
		return nil, errors.New("backend unavailable")
	}

	start := min(opts.Page*opts.Size, len(s.items))
	end := min(start+opts.Size, len(s.items))

	return &lulu.PagedResponse[int]{
		Items: s.items[start:end],
		Total: len(s.items),
		Page:  opts.Page,
		Size:  opts.Size,
	}, nil
}

func sequence(n int) []int {
	items := make([]int, n)
	for index := range items {
		items[index] = index
	}

	return items
}

func TestPaginationIterator_All(t *testing.T) {
	t.Parallel()

	source := &pagedSource{items: sequence(7)}

	items, err := lulu.FetchAllPages(context.Background(), source.fetch, &lulu.PaginationOptions{PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, sequence(7), items)
	assert.Equal(t, []lulu.ListOptions{{Page: 0, Size: 3}, {Page: 1, Size: 3}, {Page: 2, Size: 3}}, source.requests)
}

func TestPaginationIterator_DefaultPageSize(t *testing.T) {
	t.Parallel()

	source := &pagedSource{items: sequence(5)}

	items, err := lulu.FetchAllPages(context.Background(), source.fetch, nil)
	require.NoError(t, err)
	assert.Len(t, items, 5)
	require.Len(t, source.requests, 1)
	assert.Equal(t, 20, source.requests[0].Size)
}

func TestPaginationIterator_MaxPages(t *testing.T) {
	t.Parallel()

	source := &pagedSource{items: sequence(10)}
	iterator := lulu.NewPaginationIterator(context.Background(), source.fetch, &lulu.PaginationOptions{PageSize: 2, MaxPages: 2})

	items, err := iterator.All()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, items)
	assert.False(t, iterator.HasNext())

	_, err = iterator.Next()
	require.ErrorIs(t, err, lulu.ErrNoMoreItems)
}

func TestPaginationIterator_Empty(t *testing.T) {
	t.Parallel()

	source := &pagedSource{}
	iterator := lulu.NewPaginationIterator(context.Background(), source.fetch, nil)

	assert.True(t, iterator.HasNext())

	items, err := iterator.Next()
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, iterator.HasNext())
}

func TestPaginationIterator_Error(t *testing.T) {
	t.Parallel()

	source := &pagedSource{items: sequence(10), failPage: 1}

	_, err := lulu.FetchAllPages(context.Background(), source.fetch, &lulu.PaginationOptions{PageSize: 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching page 1")
}

func TestPaginationIterator_ForEach(t *testing.T) {
	t.Parallel()

	source := &pagedSource{items: sequence(6)}
	iterator := lulu.NewPaginationIterator(context.Background(), source.fetch, &lulu.PaginationOptions{PageSize: 4})

	stop := errors.New("stop")

	var seen []int

	err := iterator.ForEach(func(item int) error {
		if item == 5 {
			return stop
		}

		seen = append(seen, item)

		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
}

func TestStreamPages(t *testing.T) {
	t.Parallel()

	source := &pagedSource{items: sequence(5)}

	var pages []int

	var items []int

	for result := range lulu.StreamPages(context.Background(), source.fetch, &lulu.PaginationOptions{PageSize: 2}) {
		require.NoError(t, result.Err)

		pages = append(pages, result.Page)
		items = append(items, result.Items...)
	}

	assert.Equal(t, []int{0, 1, 2}, pages)
	assert.Equal(t, sequence(5), items)
}

func TestStreamPages_StopsOnError(t *testing.T) {
	t.Parallel()

	source := &pagedSource{items: sequence(10), failPage: 1}

	var results []lulu.PageResult[int]
	for result := range lulu.StreamPages(context.Background(), source.fetch, &lulu.PaginationOptions{PageSize: 3}) {
		results = append(results, result)
	}

	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
}
