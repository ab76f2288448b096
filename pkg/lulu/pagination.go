package lulu

import (
	"context"
	"fmt"

	"github.com/retznutz/lulu-client/internal/constants"
)

// PageFetcher loads one page of a list endpoint.
type PageFetcher[T any] func(ctx context.Context, opts ListOptions) (*PagedResponse[T], error)

// PaginationOptions bounds a multi-page walk.
type PaginationOptions struct {
	// PageSize is sent as the size parameter. Zero means the default of 20.
	PageSize int
	// MaxPages stops the walk after this many pages. Zero means no limit.
	MaxPages int
}

func (o *PaginationOptions) pageSize() int {
	if o == nil || o.PageSize <= 0 {
		return constants.DefaultPageSize
	}

	return o.PageSize
}

func (o *PaginationOptions) maxPages() int {
	if o == nil {
		return 0
	}

	return o.MaxPages
}

// PaginationIterator walks a list endpoint one page at a time.
type PaginationIterator[T any] struct {
	ctx     context.Context //nolint:containedctx // bound to a single walk
	fetch   PageFetcher[T]
	options *PaginationOptions
	page    int
	fetched int
	done    bool
}

// NewPaginationIterator starts a walk at page zero.
func NewPaginationIterator[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:     ctx,
		fetch:   fetch,
		options: options,
	}
}

// HasNext reports whether another page may be fetched.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.done {
		return false
	}

	maxPages := it.options.maxPages()

	return maxPages == 0 || it.fetched < maxPages
}

// Next fetches the next page and returns its items.
func (it *PaginationIterator[T]) Next() ([]T, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreItems
	}

	page, err := it.fetch(it.ctx, ListOptions{Page: it.page, Size: it.options.pageSize()})
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", it.page, err)
	}

	it.fetched++
	it.page++

	if page == nil {
		it.done = true

		return nil, nil
	}

	if !page.HasNextPage() || len(page.Items) == 0 {
		it.done = true
	}

	return page.Items, nil
}

// All collects the remaining items of every page.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		items, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, items...)
	}

	return all, nil
}

// ForEach calls fn for every remaining item, stopping at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		items, err := it.Next()
		if err != nil {
			return err
		}

		for _, item := range items {
			err := fn(item)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// FetchAllPages collects every item of a list endpoint.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) ([]T, error) {
	return NewPaginationIterator(ctx, fetch, options).All()
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Page  int
	Items []T
	Err   error
}

// StreamPages fetches pages in the background and delivers them in order.
// The channel is closed after the last page, the first error, or ctx end.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T], constants.BufferSize)

	go func() {
		defer close(results)

		iterator := NewPaginationIterator(ctx, fetch, options)

		for iterator.HasNext() {
			page := iterator.page

			items, err := iterator.Next()

			select {
			case results <- PageResult[T]{Page: page, Items: items, Err: err}:
			case <-ctx.Done():
				return
			}

			if err != nil {
				return
			}
		}
	}()

	return results
}
