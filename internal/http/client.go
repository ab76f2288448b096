package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/retznutz/lulu-client/internal/constants"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// Header names set on every request.
const (
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-Id"

	contentTypeJSON = "application/json"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the shared request pipeline behind every resource client.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	baseURL      string
	headers      map[string]string
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	timeout      time.Duration
	interceptors *lulu.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and retry output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the transport-wide timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sends requests through a copy of httpClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			clone := *httpClient
			c.httpClient.HTTPClient = &clone
		}
	}
}

// WithRetryConfig turns on retries of 429, 5xx, and connection failures.
// Requests are sent once unless this option is given.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors runs chain around every attempt, retries included.
func WithInterceptors(chain *lulu.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// Request describes one API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// NewClient builds a pipeline rooted at baseURL that authenticates with apiKey.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
		timeout:    constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient.HTTPClient.Timeout = client.timeout
	client.httpClient.CheckRetry = retryPolicy

	if client.interceptors != nil {
		client.httpClient.HTTPClient.Transport = &interceptTransport{
			base:  client.httpClient.HTTPClient.Transport,
			chain: client.interceptors,
		}
	}

	if client.logger != nil && client.httpClient.RetryMax > 0 {
		logger := client.logger
		client.httpClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
			if attempt > 0 {
				logger.Warn("Retrying HTTP request", map[string]interface{}{
					"method":  req.Method,
					"url":     req.URL.String(),
					"attempt": attempt,
				})
			}
		}
	}

	client.headers = map[string]string{
		HeaderAuthorization: "Bearer " + apiKey,
		HeaderUserAgent:     client.userAgent,
		HeaderAccept:        contentTypeJSON,
	}

	return client
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// DefaultHeaders returns a copy of the headers sent on every request.
func (c *Client) DefaultHeaders() map[string]string {
	headers := make(map[string]string, len(c.headers))
	for key, value := range c.headers {
		headers[key] = value
	}

	return headers
}

// CloseIdleConnections releases pooled connections of the transport.
func (c *Client) CloseIdleConnections() {
	c.httpClient.HTTPClient.CloseIdleConnections()
}

// Do sends req and reads the whole response. A non-2xx status yields both
// the response and a *lulu.ResponseError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	endpoint := c.buildURL(req.Path, req.Query)

	var (
		rawBody  interface{}
		bodyData []byte
	)

	if req.Body != nil && hasBody(req.Method) {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyData = data
		rawBody = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(withCall(ctx, req.Method, pathOnly(req.Path), bodyData), req.Method, endpoint, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = c.requestHeaders(req)

	requestID := httpReq.Header.Get(HeaderRequestID)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":     req.Method,
			"url":        endpoint,
			"request_id": requestID,
			"body_bytes": len(bodyData),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(ctx, req, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, readErr := io.ReadAll(httpResp.Body)
	if readErr != nil {
		if ctx.Err() != nil {
			return nil, c.transportError(ctx, req, readErr)
		}

		// best effort on the failure path, required on success
		if isSuccess(httpResp.StatusCode) {
			return nil, fmt.Errorf("reading response body: %w", readErr)
		}

		body = nil
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":      resp.StatusCode,
			"request_id":  requestID,
			"duration_ms": time.Since(start).Milliseconds(),
			"body_bytes":  len(body),
		})
	}

	var statusErr error
	if !isSuccess(resp.StatusCode) {
		statusErr = lulu.NewStatusError(resp.StatusCode, string(body))
	}

	if statusErr != nil {
		return resp, statusErr
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// DeleteResource deletes path. Any 2xx counts as success; the body is ignored.
func (c *Client) DeleteResource(ctx context.Context, path string) (bool, error) {
	_, err := c.Delete(ctx, path)
	if err != nil {
		return false, err
	}

	return true, nil
}

// DoJSON sends a request and decodes the response into T.
func DoJSON[T any](ctx context.Context, c *Client, method, path string, body interface{}) (*T, error) {
	resp, err := c.Do(ctx, &Request{Method: method, Path: path, Body: body})
	if err != nil {
		return nil, err
	}

	return DecodeJSON[T](resp)
}

// DecodeJSON decodes a success body into T. An empty body decodes to nil.
func DecodeJSON[T any](resp *Response) (*T, error) {
	if len(resp.Body) == 0 {
		return nil, nil
	}

	var result T

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, lulu.NewDeserializeError(resp.StatusCode, string(resp.Body), err)
	}

	return &result, nil
}

func (c *Client) requestHeaders(req *Request) http.Header {
	headers := make(http.Header, len(c.headers)+len(req.Headers)+2)
	for key, value := range c.headers {
		headers.Set(key, value)
	}

	headers.Set(HeaderRequestID, uuid.NewString())

	if req.Body != nil && hasBody(req.Method) {
		headers.Set(HeaderContentType, contentTypeJSON)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers
}

func (c *Client) transportError(ctx context.Context, req *Request, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, lulu.ErrInterceptorRejected) {
		err = ctxErr
	}

	if c.logger != nil && c.debug {
		c.logger.Error("HTTP Request failed", map[string]interface{}{
			"method": req.Method,
			"path":   pathOnly(req.Path),
			"error":  err.Error(),
		})
	}

	return fmt.Errorf("executing request: %w", err)
}

func (c *Client) buildURL(path string, query url.Values) string {
	endpoint := c.baseURL + path
	if len(query) == 0 {
		return endpoint
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return endpoint + separator + query.Encode()
}

func pathOnly(path string) string {
	if index := strings.IndexByte(path, '?'); index >= 0 {
		return path[:index]
	}

	return path
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
