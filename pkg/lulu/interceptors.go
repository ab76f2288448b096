package lulu

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrInterceptorRejected wraps any error an interceptor returns.
var ErrInterceptorRejected = errors.New("interceptor rejected call")

// Request is what interceptors see of an outgoing call. Only Headers may be
// changed; the pipeline sends them as they are after the last interceptor.
type Request struct {
	Method  string
	Path    string
	Headers http.Header
	Body    []byte

	// started is stamped by the first metrics interceptor that sees the call.
	started time.Time
}

// RequestID returns the X-Request-Id the pipeline stamped on the call.
func (r *Request) RequestID() string {
	if r.Headers == nil {
		return ""
	}

	return r.Headers.Get("X-Request-Id")
}

// Response is what interceptors see of the outcome. Error is set for non-2xx
// statuses and for transport failures, in which case StatusCode is 0.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor runs before a call is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs after a call completes.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain holds interceptors in registration order. Finish building it
// before passing it to a client.
type InterceptorChain struct {
	before []RequestInterceptor
	after  []ResponseInterceptor
}

// NewInterceptorChain returns an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// OnRequest appends interceptors that run before each attempt.
func (c *InterceptorChain) OnRequest(interceptors ...RequestInterceptor) *InterceptorChain {
	c.before = append(c.before, interceptors...)

	return c
}

// OnResponse appends interceptors that run after each attempt.
func (c *InterceptorChain) OnResponse(interceptors ...ResponseInterceptor) *InterceptorChain {
	c.after = append(c.after, interceptors...)

	return c
}

// Use registers a paired request and response interceptor, such as the ones
// returned by MetricsCollector.Interceptors.
func (c *InterceptorChain) Use(before RequestInterceptor, after ResponseInterceptor) *InterceptorChain {
	return c.OnRequest(before).OnResponse(after)
}

// Before runs the request interceptors. The first failure stops the chain.
func (c *InterceptorChain) Before(ctx context.Context, req *Request) error {
	for _, interceptor := range c.before {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("%w: %s %s: %w", ErrInterceptorRejected, req.Method, req.Path, err)
		}
	}

	return nil
}

// After runs the response interceptors. The first failure stops the chain.
func (c *InterceptorChain) After(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.after {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("%w: %s %s: %w", ErrInterceptorRejected, req.Method, req.Path, err)
		}
	}

	return nil
}

// RequestLogger logs each outgoing call at debug level.
func RequestLogger(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		logger.Debug("lulu request", map[string]interface{}{
			"method":     req.Method,
			"path":       req.Path,
			"request_id": req.RequestID(),
		})

		return nil
	}
}

// ResponseLogger logs each outcome: debug for 2xx, warn for 4xx, error for
// 5xx and transport failures.
func ResponseLogger(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":     req.Method,
			"path":       req.Path,
			"request_id": req.RequestID(),
			"status":     resp.StatusCode,
		}

		switch {
		case resp.Error == nil:
			logger.Debug("lulu response", fields)
		case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
			logger.Warn("lulu request rejected", fields)
		default:
			fields["error"] = resp.Error.Error()
			logger.Error("lulu request failed", fields)
		}

		return nil
	}
}

// RateLimitInterceptor holds each request until the limiter admits it.
// A cancelled context releases the wait with the context error.
func RateLimitInterceptor(requestsPerSecond float64, burst int) RequestInterceptor {
	if burst <= 0 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(ctx context.Context, _ *Request) error {
		return limiter.Wait(ctx)
	}
}

// protectedHeaders are owned by the pipeline.
var protectedHeaders = []string{"Authorization", "X-Request-Id"}

// HeaderInterceptor sets extra headers on every call. Authorization and
// X-Request-Id are left untouched.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header, len(headers))
		}

		for key, value := range headers {
			canonical := http.CanonicalHeaderKey(key)
			if slices.Contains(protectedHeaders, canonical) {
				continue
			}

			req.Headers.Set(canonical, value)
		}

		return nil
	}
}

// Metrics is the tally for one endpoint, keyed "METHOD /path".
type Metrics struct {
	Requests     int64
	ClientErrors int64
	ServerErrors int64
	Failures     int64
	TotalLatency time.Duration
	LastStatus   int
	LastSeen     time.Time
}

// Errors counts every call that did not end in a 2xx.
func (m Metrics) Errors() int64 {
	return m.ClientErrors + m.ServerErrors + m.Failures
}

// AverageLatency is TotalLatency spread over Requests.
func (m Metrics) AverageLatency() time.Duration {
	if m.Requests == 0 {
		return 0
	}

	return m.TotalLatency / time.Duration(m.Requests)
}

// MetricsCollector tallies calls per endpoint. It is safe for concurrent use.
type MetricsCollector struct {
	mu      sync.Mutex
	now     func() time.Time
	metrics map[string]*Metrics
}

// NewMetricsCollector returns an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		now:     time.Now,
		metrics: make(map[string]*Metrics),
	}
}

// Interceptors returns the pair to register with InterceptorChain.Use. Calls
// that a later request interceptor rejects stay unrecorded and hold no state.
func (m *MetricsCollector) Interceptors() (RequestInterceptor, ResponseInterceptor) {
	before := func(_ context.Context, req *Request) error {
		if req.started.IsZero() {
			req.started = m.now()
		}

		return nil
	}

	after := func(_ context.Context, req *Request, resp *Response) error {
		m.observe(req, resp)

		return nil
	}

	return before, after
}

func (m *MetricsCollector) observe(req *Request, resp *Response) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	endpoint := req.Method + " " + req.Path

	entry, ok := m.metrics[endpoint]
	if !ok {
		entry = &Metrics{}
		m.metrics[endpoint] = entry
	}

	if !req.started.IsZero() {
		entry.TotalLatency += now.Sub(req.started)
	}

	entry.Requests++
	entry.LastStatus = resp.StatusCode
	entry.LastSeen = now

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		entry.ServerErrors++
	case resp.StatusCode >= http.StatusBadRequest:
		entry.ClientErrors++
	case resp.Error != nil:
		entry.Failures++
	}
}

// Get returns a copy of the tally for endpoint and whether it was seen.
func (m *MetricsCollector) Get(endpoint string) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.metrics[endpoint]
	if !ok {
		return Metrics{}, false
	}

	return *entry, true
}

// Endpoints lists the endpoints seen so far, sorted.
func (m *MetricsCollector) Endpoints() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	endpoints := make([]string, 0, len(m.metrics))
	for endpoint := range m.metrics {
		endpoints = append(endpoints, endpoint)
	}

	slices.Sort(endpoints)

	return endpoints
}
