package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

const notFoundBody = `{"errors":[{"code":"not_found","message":"no such project"}]}`

// recordedRequest is what the test server saw for one call.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// recorder is a test server that captures requests and replies with a canned response.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest

	status int
	body   string
}

func (r *recorder) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	r.mu.Lock()
	r.requests = append(r.requests, recordedRequest{
		Method:   request.Method,
		Path:     request.URL.EscapedPath(),
		RawQuery: request.URL.RawQuery,
		Header:   request.Header.Clone(),
		Body:     body,
	})
	status, responseBody := r.status, r.body
	r.mu.Unlock()

	if responseBody != "" {
		writer.Header().Set("Content-Type", "application/json")
	}

	writer.WriteHeader(status)
	_, _ = io.WriteString(writer, responseBody)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.requests)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.requests, "no request reached the server")

	return r.requests[len(r.requests)-1]
}

// NewTestClient creates a client whose sandbox URL points at baseURL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	config := lulu.NewConfig("test-key")
	config.SandboxBaseURL = baseURL

	client, err := New(context.Background(), config)
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	return client
}

// newRecordingClient starts a server answering every request with status and body.
func newRecordingClient(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{status: status, body: body}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	return NewTestClient(t, server.URL), rec
}

func mustJSON(t *testing.T, value interface{}) string {
	t.Helper()

	data, err := json.Marshal(value)
	require.NoError(t, err)

	return string(data)
}

func decodeBody(t *testing.T, req recordedRequest) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &body))

	return body
}

// idCall invokes a facade method with only the identifier varying.
type idCall struct {
	Name string
	Call func(ctx context.Context, client *Client, id string) error
}

// RunBlankIDTests checks that empty and whitespace identifiers fail locally.
func RunBlankIDTests(t *testing.T, calls []idCall) {
	t.Helper()

	for _, call := range calls {
		t.Run(call.Name, func(t *testing.T) {
			t.Parallel()

			client, rec := newRecordingClient(t, http.StatusOK, `{}`)

			for _, id := range []string{"", " ", "\t\n"} {
				err := call.Call(context.Background(), client, id)
				require.Error(t, err)
				require.ErrorIs(t, err, lulu.ErrInvalidArgument)
				assert.Equal(t, lulu.KindValidation, lulu.Classify(err))
			}

			assert.Zero(t, rec.count())
		})
	}
}

// RunNotFoundTests checks that a 404 surfaces the status and literal body.
func RunNotFoundTests(t *testing.T, calls []idCall) {
	t.Helper()

	for _, call := range calls {
		t.Run(call.Name, func(t *testing.T) {
			t.Parallel()

			client, rec := newRecordingClient(t, http.StatusNotFound, notFoundBody)

			err := call.Call(context.Background(), client, "p1")
			require.Error(t, err)

			var respErr *lulu.ResponseError
			require.ErrorAs(t, err, &respErr)
			assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
			assert.Equal(t, notFoundBody, respErr.ResponseBody)
			assert.Equal(t, "API request failed with status 404", respErr.Message)
			assert.True(t, lulu.IsNotFound(err))
			assert.Equal(t, 1, rec.count())
		})
	}
}
