package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/retznutz/lulu-client/internal/http"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), nil)
		require.ErrorIs(t, err, lulu.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("exposes six facades before any call", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), lulu.NewConfig("key"))
		require.NoError(t, err)

		assert.NotNil(t, client.Projects())
		assert.NotNil(t, client.Products())
		assert.NotNil(t, client.Orders())
		assert.NotNil(t, client.Shipping())
		assert.NotNil(t, client.Account())
		assert.NotNil(t, client.Print())
	})

	t.Run("defaults to the sandbox", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), lulu.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, "https://api.sandbox.lulu.com", client.BaseURL())
	})

	t.Run("struct literal config targets the sandbox", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &lulu.Config{APIKey: "key"})
		require.NoError(t, err)
		assert.Equal(t, "https://api.sandbox.lulu.com", client.BaseURL())
		assert.Equal(t, "https://api.sandbox.lulu.com", client.Config().BaseURL())
	})

	t.Run("production when requested", func(t *testing.T) {
		t.Parallel()

		config := lulu.NewConfig("key")
		config.Production = true
		config.ProductionBaseURL = "https://prod.example.com"

		client, err := New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://prod.example.com", client.BaseURL())
	})

	t.Run("config is copied", func(t *testing.T) {
		t.Parallel()

		config := lulu.NewConfig("key")

		client, err := New(context.Background(), config)
		require.NoError(t, err)

		config.APIKey = "changed"
		config.Production = true

		assert.Equal(t, "key", client.Config().APIKey)
		assert.False(t, client.Config().Production)
		assert.Equal(t, "https://api.sandbox.lulu.com", client.BaseURL())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), lulu.NewConfig("key"))
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			require.NoError(t, client.Close())
			require.NoError(t, client.Close())
		})
	})
}

func TestClient_DefaultHeaders(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, accountJSON)

	_, err := client.Account().Get(context.Background())
	require.NoError(t, err)

	_, err = client.Account().Get(context.Background())
	require.NoError(t, err)

	rec.mu.Lock()
	first := rec.requests[0].Header
	rec.mu.Unlock()

	second := rec.last(t).Header

	assert.Equal(t, "Bearer test-key", first.Get("Authorization"))
	assert.Equal(t, "lulu-client-go/1.0.0", first.Get("User-Agent"))
	assert.Equal(t, "application/json", first.Get("Accept"))
	assert.NotEqual(t, first.Get("X-Request-Id"), second.Get("X-Request-Id"))
}

func TestClient_EmptyAPIKey(t *testing.T) {
	t.Parallel()

	rec := &recorder{status: http.StatusUnauthorized, body: `{"errors":[{"code":"unauthorized","message":"bad key"}]}`}
	server := httptest.NewServer(rec)
	defer server.Close()

	config := lulu.NewConfig("")
	config.SandboxBaseURL = server.URL

	client, err := New(context.Background(), config)
	require.NoError(t, err)

	_, err = client.Account().Get(context.Background())
	require.Error(t, err)
	assert.True(t, lulu.IsUnauthorized(err))
	assert.Equal(t, "Bearer", rec.last(t).Header.Get("Authorization"))
}

func TestClient_MaxRetryAttemptsIsInert(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts.Add(1)
		writer.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	config := lulu.NewConfig("key")
	config.SandboxBaseURL = server.URL
	config.MaxRetryAttempts = 5

	client, err := New(context.Background(), config)
	require.NoError(t, err)

	_, err = client.Projects().Get(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, lulu.StatusCode(err))
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_ExplicitRetryOption(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if attempts.Add(1) == 1 {
			writer.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = writer.Write([]byte(projectJSON))
	}))
	defer server.Close()

	config := lulu.NewConfig("key")
	config.SandboxBaseURL = server.URL

	client, err := New(context.Background(), config, internalhttp.WithRetryConfig(1, time.Millisecond, 5*time.Millisecond))
	require.NoError(t, err)

	project, err := client.Projects().Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", project.ID)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-request.Context().Done():
		}
	}))
	defer server.Close()

	config := lulu.NewConfig("key")
	config.SandboxBaseURL = server.URL
	config.Timeout = 20 * time.Millisecond

	client, err := New(context.Background(), config)
	require.NoError(t, err)

	_, err = client.Account().Get(context.Background())
	require.Error(t, err)
	assert.NotEqual(t, lulu.KindTransport, lulu.Classify(err))
}

func TestClient_Cancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		<-request.Context().Done()
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Orders().Get(ctx, "o1")
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, lulu.KindCancelled, lulu.Classify(err))
}

func TestClient_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	client, rec := newRecordingClient(t, http.StatusOK, projectJSON)

	var group sync.WaitGroup

	for range 20 {
		group.Add(1)

		go func() {
			defer group.Done()

			project, err := client.Projects().Get(context.Background(), "p1")
			assert.NoError(t, err)
			assert.Equal(t, "p1", project.ID)
		}()
	}

	group.Wait()
	assert.Equal(t, 20, rec.count())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_NotFoundOnEveryFacade(t *testing.T) {
	t.Parallel()

	address := lulu.AddressValidationRequest{Address: testAddress()}

	RunNotFoundTests(t, []idCall{
		{Name: "projects get", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Projects().Get(ctx, id)

			return err
		}},
		{Name: "projects list", Call: func(ctx context.Context, c *Client, _ string) error {
			_, err := c.Projects().List(ctx, nil)

			return err
		}},
		{Name: "projects delete", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Projects().Delete(ctx, id)

			return err
		}},
		{Name: "products get", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Products().Get(ctx, id)

			return err
		}},
		{Name: "products categories", Call: func(ctx context.Context, c *Client, _ string) error {
			_, err := c.Products().Categories(ctx)

			return err
		}},
		{Name: "orders get", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Orders().Get(ctx, id)

			return err
		}},
		{Name: "orders create", Call: func(ctx context.Context, c *Client, _ string) error {
			_, err := c.Orders().Create(ctx, newOrderRequest())

			return err
		}},
		{Name: "shipping validate address", Call: func(ctx context.Context, c *Client, _ string) error {
			_, err := c.Shipping().ValidateAddress(ctx, &address)

			return err
		}},
		{Name: "account balance", Call: func(ctx context.Context, c *Client, _ string) error {
			_, err := c.Account().Balance(ctx)

			return err
		}},
		{Name: "account usage", Call: func(ctx context.Context, c *Client, _ string) error {
			_, err := c.Account().Usage(ctx, nil)

			return err
		}},
		{Name: "print job", Call: func(ctx context.Context, c *Client, id string) error {
			_, err := c.Print().Get(ctx, id)

			return err
		}},
		{Name: "print facilities", Call: func(ctx context.Context, c *Client, _ string) error {
			_, err := c.Print().Facilities(ctx, "")

			return err
		}},
	})
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	rec := &recorder{status: http.StatusOK, body: accountJSON}
	server := httptest.NewServer(rec)
	defer server.Close()

	logger := &capturingLogger{}

	config := lulu.NewConfig("key")
	config.SandboxBaseURL = server.URL
	config.Debug = true
	config.Logger = logger

	client, err := New(context.Background(), config)
	require.NoError(t, err)

	_, err = client.Account().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"HTTP Request", "HTTP Response"}, logger.messages())
}

type capturingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *capturingLogger) add(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.msgs = append(l.msgs, msg)
}

func (l *capturingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.msgs...)
}

func (l *capturingLogger) Debug(msg string, _ map[string]interface{}) { l.add(msg) }
func (l *capturingLogger) Info(msg string, _ map[string]interface{}) { l.add(msg) }
func (l *capturingLogger) Warn(msg string, _ map[string]interface{}) { l.add(msg) }
func (l *capturingLogger) Error(msg string, _ map[string]interface{}) { l.add(msg) }
