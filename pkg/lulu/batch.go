package lulu

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/retznutz/lulu-client/internal/constants"
)

// BatchResult is the outcome of one fetch in a BatchCollect.
type BatchResult[T any] struct {
	ID       string
	Data     *T
	Error    error
	Duration time.Duration
}

// Success reports whether the fetch returned without error.
func (r BatchResult[T]) Success() bool {
	return r.Error == nil
}

// BatchGet fetches every id with at most limit calls in flight. Results keep
// the order of ids. The first failure cancels the remaining calls and is returned.
func BatchGet[T any](
	ctx context.Context,
	ids []string,
	limit int,
	fetch func(ctx context.Context, id string) (*T, error),
) ([]*T, error) {
	if limit <= 0 {
		limit = constants.DefaultConcurrencyLimit
	}

	results := make([]*T, len(ids))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for index, id := range ids {
		group.Go(func() error {
			item, err := fetch(groupCtx, id)
			if err != nil {
				return fmt.Errorf("fetching %s: %w", id, err)
			}

			results[index] = item

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

// BatchCollect fetches every id like BatchGet but never stops early: each
// id gets its own result, failed or not.
func BatchCollect[T any](
	ctx context.Context,
	ids []string,
	limit int,
	fetch func(ctx context.Context, id string) (*T, error),
) []BatchResult[T] {
	if limit <= 0 {
		limit = constants.DefaultConcurrencyLimit
	}

	results := make([]BatchResult[T], len(ids))

	var group errgroup.Group

	group.SetLimit(limit)

	for index, id := range ids {
		group.Go(func() error {
			start := time.Now()
			item, err := fetch(ctx, id)
			results[index] = BatchResult[T]{
				ID:       id,
				Data:     item,
				Error:    err,
				Duration: time.Since(start),
			}

			return nil
		})
	}

	_ = group.Wait()

	return results
}
