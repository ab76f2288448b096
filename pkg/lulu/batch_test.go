package lulu_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

func fetchProject(_ context.Context, id string) (*lulu.Project, error) {
	if id == "missing" {
		return nil, errors.New("not found")
	}

	return &lulu.Project{ID: id}, nil
}

func TestBatchGet(t *testing.T) {
	t.Parallel()

	projects, err := lulu.BatchGet(context.Background(), []string{"p1", "p2", "p3"}, 2, fetchProject)
	require.NoError(t, err)
	require.Len(t, projects, 3)

	for index, id := range []string{"p1", "p2", "p3"} {
		assert.Equal(t, id, projects[index].ID)
	}
}

func TestBatchGet_FirstErrorWins(t *testing.T) {
	t.Parallel()

	projects, err := lulu.BatchGet(context.Background(), []string{"p1", "missing", "p3"}, 0, fetchProject)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching missing")
	assert.Nil(t, projects)
}

func TestBatchGet_RespectsLimit(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32

	fetch := func(ctx context.Context, id string) (*lulu.Project, error) {
		current := inFlight.Add(1)
		defer inFlight.Add(-1)

		for {
			seen := peak.Load()
			if current <= seen || peak.CompareAndSwap(seen, current) {
				break
			}
		}

		time.Sleep(10 * time.Millisecond)

		return &lulu.Project{ID: id}, nil
	}

	_, err := lulu.BatchGet(context.Background(), []string{"a", "b", "c", "d", "e", "f"}, 2, fetch)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestBatchCollect(t *testing.T) {
	t.Parallel()

	results := lulu.BatchCollect(context.Background(), []string{"p1", "missing", "p3"}, 3, fetchProject)
	require.Len(t, results, 3)

	assert.True(t, results[0].Success())
	assert.Equal(t, "p1", results[0].Data.ID)
	assert.False(t, results[1].Success())
	assert.Equal(t, "missing", results[1].ID)
	assert.True(t, results[2].Success())
}
