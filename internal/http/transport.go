package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

type callKey struct{}

// call is the per-call view handed to interceptors on every attempt.
type call struct {
	method string
	path   string
	body   []byte
}

func withCall(ctx context.Context, method, path string, body []byte) context.Context {
	return context.WithValue(ctx, callKey{}, call{method: method, path: path, body: body})
}

// interceptTransport runs the interceptor chain once per attempt, so retried
// calls are seen, throttled and counted like first attempts.
type interceptTransport struct {
	base  http.RoundTripper
	chain *lulu.InterceptorChain
}

func (t *interceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	current, ok := ctx.Value(callKey{}).(call)
	if !ok {
		current = call{method: req.Method, path: req.URL.Path}
	}

	intercepted := &lulu.Request{
		Method:  current.method,
		Path:    current.path,
		Headers: req.Header.Clone(),
		Body:    current.body,
	}

	if err := t.chain.Before(ctx, intercepted); err != nil {
		return nil, err
	}

	outgoing := req.Clone(ctx)
	outgoing.Header = intercepted.Headers

	resp, err := t.transport().RoundTrip(outgoing)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}

		_ = t.chain.After(ctx, intercepted, &lulu.Response{Error: err})

		return nil, err
	}

	body, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if readErr != nil {
		_ = t.chain.After(ctx, intercepted, &lulu.Response{StatusCode: resp.StatusCode, Error: readErr})

		return nil, fmt.Errorf("reading response body: %w", readErr)
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))

	var statusErr error
	if !isSuccess(resp.StatusCode) {
		statusErr = lulu.NewStatusError(resp.StatusCode, string(body))
	}

	err = t.chain.After(ctx, intercepted, &lulu.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
		Error:      statusErr,
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// CloseIdleConnections forwards to the wrapped transport.
func (t *interceptTransport) CloseIdleConnections() {
	if closer, ok := t.transport().(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}

func (t *interceptTransport) transport() http.RoundTripper {
	if t.base == nil {
		return http.DefaultTransport
	}

	return t.base
}

// retryPolicy is the library default, except that a call an interceptor
// rejected is never retried.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if errors.Is(err, lulu.ErrInterceptorRejected) {
		return false, err
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}
