// Package luluclient provides the main entry point for creating Lulu API clients
package luluclient

import (
	"context"
	"fmt"
	"time"

	"github.com/retznutz/lulu-client/internal/client"
	internalhttp "github.com/retznutz/lulu-client/internal/http"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// Option customizes a client beyond what lulu.Config carries.
type Option func(*options)

type options struct {
	http []internalhttp.Option
}

// WithRetry enables retries of 429 and 5xx responses and transport failures.
// Requests are sent once unless this option is given.
func WithRetry(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(o *options) {
		o.http = append(o.http, internalhttp.WithRetryConfig(maxRetries, waitMin, waitMax))
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *lulu.InterceptorChain) Option {
	return func(o *options) {
		o.http = append(o.http, internalhttp.WithInterceptors(chain))
	}
}

// New creates a new Lulu API client from config. The config is copied.
func New(ctx context.Context, config *lulu.Config, opts ...Option) (lulu.Client, error) {
	if config == nil {
		return nil, lulu.ErrConfigRequired
	}

	settings := &options{}
	for _, opt := range opts {
		opt(settings)
	}

	luluClient, err := client.New(ctx, config, settings.http...)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return luluClient, nil
}

// NewSandbox creates a client for the sandbox backend with default settings.
func NewSandbox(ctx context.Context, apiKey string, opts ...Option) (lulu.Client, error) {
	return New(ctx, lulu.NewConfig(apiKey), opts...)
}

// NewProduction creates a client for the live backend with default settings.
func NewProduction(ctx context.Context, apiKey string, opts ...Option) (lulu.Client, error) {
	config := lulu.NewConfig(apiKey)
	config.Production = true

	return New(ctx, config, opts...)
}

// NewWithBaseURL creates a client whose active environment points at baseURL.
// Useful against a local fake or a proxy.
func NewWithBaseURL(ctx context.Context, baseURL, apiKey string, opts ...Option) (lulu.Client, error) {
	config := lulu.NewConfig(apiKey)
	config.SandboxBaseURL = baseURL

	return New(ctx, config, opts...)
}
