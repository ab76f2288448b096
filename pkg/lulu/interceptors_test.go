package lulu_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

// MockLogger implements lulu.Logger for testing.
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) { m.Called(msg, fields) }
func (m *MockLogger) Info(msg string, fields map[string]interface{})  { m.Called(msg, fields) }
func (m *MockLogger) Warn(msg string, fields map[string]interface{})  { m.Called(msg, fields) }
func (m *MockLogger) Error(msg string, fields map[string]interface{}) { m.Called(msg, fields) }

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	var order []string

	step := func(name string) lulu.RequestInterceptor {
		return func(context.Context, *lulu.Request) error {
			order = append(order, name)

			return nil
		}
	}

	chain := lulu.NewInterceptorChain().
		OnRequest(step("first"), step("second")).
		OnResponse(func(context.Context, *lulu.Request, *lulu.Response) error {
			order = append(order, "response")

			return nil
		})

	req := &lulu.Request{Method: http.MethodGet, Path: "/v1/orders"}

	require.NoError(t, chain.Before(context.Background(), req))
	require.NoError(t, chain.After(context.Background(), req, &lulu.Response{StatusCode: http.StatusOK}))
	assert.Equal(t, []string{"first", "second", "response"}, order)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	denied := errors.New("denied")
	called := false

	chain := lulu.NewInterceptorChain().OnRequest(
		func(context.Context, *lulu.Request) error { return denied },
		func(context.Context, *lulu.Request) error {
			called = true

			return nil
		},
	)

	err := chain.Before(context.Background(), &lulu.Request{Method: http.MethodPost, Path: "/v1/orders"})
	require.ErrorIs(t, err, denied)
	require.ErrorIs(t, err, lulu.ErrInterceptorRejected)
	assert.Contains(t, err.Error(), "POST /v1/orders")
	assert.False(t, called)
}

func TestRequest_RequestID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, (&lulu.Request{}).RequestID())

	req := &lulu.Request{Headers: http.Header{"X-Request-Id": []string{"req-1"}}}
	assert.Equal(t, "req-1", req.RequestID())
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("sets headers", func(t *testing.T) {
		t.Parallel()

		req := &lulu.Request{}

		err := lulu.HeaderInterceptor(map[string]string{"x-tenant": "acme"})(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "acme", req.Headers.Get("X-Tenant"))
	})

	t.Run("leaves pipeline headers alone", func(t *testing.T) {
		t.Parallel()

		req := &lulu.Request{Headers: http.Header{}}
		req.Headers.Set("Authorization", "Bearer real")
		req.Headers.Set("X-Request-Id", "req-1")

		err := lulu.HeaderInterceptor(map[string]string{
			"authorization": "Bearer forged",
			"X-Request-ID":  "other",
		})(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Bearer real", req.Headers.Get("Authorization"))
		assert.Equal(t, "req-1", req.RequestID())
	})
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	headers := http.Header{"X-Request-Id": []string{"req-1"}}
	req := &lulu.Request{Method: http.MethodGet, Path: "/v1/account", Headers: headers}
	ctx := context.Background()

	statusIs := func(status int) interface{} {
		return mock.MatchedBy(func(fields map[string]interface{}) bool {
			return fields["status"] == status && fields["request_id"] == "req-1"
		})
	}

	logger := &MockLogger{}
	logger.On("Debug", "lulu request", map[string]interface{}{
		"method": "GET", "path": "/v1/account", "request_id": "req-1",
	}).Return().Once()
	logger.On("Debug", "lulu response", statusIs(http.StatusOK)).Return().Once()
	logger.On("Warn", "lulu request rejected", statusIs(http.StatusNotFound)).Return().Once()
	logger.On("Error", "lulu request failed", mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["status"] == 0 && fields["error"] == "connection refused"
	})).Return().Once()

	after := lulu.ResponseLogger(logger)

	require.NoError(t, lulu.RequestLogger(logger)(ctx, req))
	require.NoError(t, after(ctx, req, &lulu.Response{StatusCode: http.StatusOK}))
	require.NoError(t, after(ctx, req, &lulu.Response{
		StatusCode: http.StatusNotFound,
		Error:      lulu.NewStatusError(http.StatusNotFound, ""),
	}))
	require.NoError(t, after(ctx, req, &lulu.Response{Error: errors.New("connection refused")}))

	logger.AssertExpectations(t)
}

func TestRateLimitInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("burst passes immediately", func(t *testing.T) {
		t.Parallel()

		limit := lulu.RateLimitInterceptor(1, 3)
		start := time.Now()

		for range 3 {
			require.NoError(t, limit(context.Background(), &lulu.Request{}))
		}

		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("cancelled wait", func(t *testing.T) {
		t.Parallel()

		limit := lulu.RateLimitInterceptor(0.1, 0)
		require.NoError(t, limit(context.Background(), &lulu.Request{}))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		require.Error(t, limit(ctx, &lulu.Request{}))
	})
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := lulu.NewMetricsCollector()
	before, after := collector.Interceptors()
	ctx := context.Background()

	outcomes := []*lulu.Response{
		{StatusCode: http.StatusOK},
		{StatusCode: http.StatusConflict, Error: lulu.NewStatusError(http.StatusConflict, "")},
		{StatusCode: http.StatusBadGateway, Error: lulu.NewStatusError(http.StatusBadGateway, "")},
		{Error: context.DeadlineExceeded},
	}

	for _, outcome := range outcomes {
		req := &lulu.Request{Method: http.MethodPost, Path: "/v1/orders"}
		require.NoError(t, before(ctx, req))
		require.NoError(t, after(ctx, req, outcome))
	}

	listing := &lulu.Request{Method: http.MethodGet, Path: "/v1/orders"}
	require.NoError(t, before(ctx, listing))
	require.NoError(t, after(ctx, listing, &lulu.Response{StatusCode: http.StatusOK}))

	metrics, seen := collector.Get("POST /v1/orders")
	require.True(t, seen)
	assert.Equal(t, int64(4), metrics.Requests)
	assert.Equal(t, int64(1), metrics.ClientErrors)
	assert.Equal(t, int64(1), metrics.ServerErrors)
	assert.Equal(t, int64(1), metrics.Failures)
	assert.Equal(t, int64(3), metrics.Errors())
	assert.Zero(t, metrics.LastStatus)
	assert.False(t, metrics.LastSeen.IsZero())
	assert.GreaterOrEqual(t, metrics.AverageLatency(), time.Duration(0))

	_, seen = collector.Get("DELETE /v1/projects/p1")
	assert.False(t, seen)
	assert.Equal(t, []string{"GET /v1/orders", "POST /v1/orders"}, collector.Endpoints())
	assert.Zero(t, lulu.Metrics{}.AverageLatency())
}

func TestMetricsCollector_RejectedCall(t *testing.T) {
	t.Parallel()

	collector := lulu.NewMetricsCollector()
	limited := errors.New("limited")

	chain := lulu.NewInterceptorChain().
		Use(collector.Interceptors()).
		OnRequest(func(context.Context, *lulu.Request) error { return limited })

	req := &lulu.Request{Method: http.MethodGet, Path: "/v1/print/jobs"}

	err := chain.Before(context.Background(), req)
	require.ErrorIs(t, err, limited)
	assert.Empty(t, collector.Endpoints())

	_, after := collector.Interceptors()
	require.NoError(t, after(context.Background(), &lulu.Request{Method: http.MethodGet, Path: "/v1/print/jobs"},
		&lulu.Response{StatusCode: http.StatusOK}))

	metrics, seen := collector.Get("GET /v1/print/jobs")
	require.True(t, seen)
	assert.Equal(t, int64(1), metrics.Requests)
	assert.Zero(t, metrics.TotalLatency)
}
