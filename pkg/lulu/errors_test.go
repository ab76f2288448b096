package lulu_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retznutz/lulu-client/pkg/lulu"
)

func TestResponseError_Error(t *testing.T) {
	t.Parallel()

	statusErr := lulu.NewStatusError(http.StatusNotFound, `{"errors":[]}`)
	assert.Equal(t, "API request failed with status 404", statusErr.Error())
	require.NoError(t, statusErr.Unwrap())

	cause := errors.New("unexpected end of JSON input")
	decodeErr := lulu.NewDeserializeError(http.StatusOK, "{", cause)
	assert.Equal(t, "Failed to deserialize API response: unexpected end of JSON input", decodeErr.Error())
	require.ErrorIs(t, decodeErr, cause)
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid: title is required (field: title)",
		(&lulu.APIError{Code: "invalid", Message: "title is required", Field: "title"}).Error())
	assert.Equal(t, "not_found: no such order",
		(&lulu.APIError{Code: "not_found", Message: "no such order"}).Error())
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		check  func(error) bool
	}{
		{name: "not found", err: lulu.NewStatusError(http.StatusNotFound, ""), status: 404, check: lulu.IsNotFound},
		{name: "unauthorized", err: lulu.NewStatusError(http.StatusUnauthorized, ""), status: 401, check: lulu.IsUnauthorized},
		{name: "forbidden", err: lulu.NewStatusError(http.StatusForbidden, ""), status: 403, check: lulu.IsForbidden},
		{name: "rate limited", err: lulu.NewStatusError(http.StatusTooManyRequests, ""), status: 429, check: lulu.IsRateLimited},
		{name: "server error", err: lulu.NewStatusError(http.StatusBadGateway, ""), status: 502, check: lulu.IsServerError},
		{
			name:   "wrapped",
			err:    fmt.Errorf("getting order: %w", lulu.NewStatusError(http.StatusNotFound, "")),
			status: 404,
			check:  lulu.IsNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.status, lulu.StatusCode(testCase.err))
			assert.True(t, testCase.check(testCase.err))
		})
	}

	assert.Zero(t, lulu.StatusCode(errors.New("plain")))
	assert.False(t, lulu.IsServerError(lulu.NewStatusError(http.StatusBadRequest, "")))
	assert.True(t, lulu.IsInvalidArgument(fmt.Errorf("%w: projectID", lulu.ErrInvalidArgument)))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want lulu.ErrorKind
	}{
		{name: "nil", err: nil, want: lulu.KindUnknown},
		{name: "plain", err: errors.New("boom"), want: lulu.KindUnknown},
		{name: "validation", err: fmt.Errorf("getting project: %w", lulu.ErrInvalidArgument), want: lulu.KindValidation},
		{name: "transport", err: lulu.NewStatusError(http.StatusInternalServerError, ""), want: lulu.KindTransport},
		{
			name: "deserialization",
			err:  lulu.NewDeserializeError(http.StatusOK, "nope", errors.New("invalid character")),
			want: lulu.KindDeserialization,
		},
		{name: "cancelled", err: fmt.Errorf("listing: %w", context.Canceled), want: lulu.KindCancelled},
		{name: "deadline", err: context.DeadlineExceeded, want: lulu.KindCancelled},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			kind := lulu.Classify(testCase.err)
			assert.Equal(t, testCase.want, kind)
			assert.NotEmpty(t, kind.String())
		})
	}
}

func TestParseErrorEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("field errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("creating order: %w", lulu.NewStatusError(http.StatusBadRequest,
			`{"errors":[{"code":"invalid","message":"quantity must be greater than 0","field":"items[0].quantity"}]}`))

		apiErrors, parseErr := lulu.ParseErrorEnvelope(err)
		require.NoError(t, parseErr)
		require.Len(t, apiErrors, 1)
		assert.Equal(t, "items[0].quantity", apiErrors[0].Field)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		apiErrors, parseErr := lulu.ParseErrorEnvelope(lulu.NewStatusError(http.StatusBadGateway, "  "))
		require.NoError(t, parseErr)
		assert.Nil(t, apiErrors)
	})

	t.Run("not json", func(t *testing.T) {
		t.Parallel()

		_, parseErr := lulu.ParseErrorEnvelope(lulu.NewStatusError(http.StatusBadGateway, "<html>"))
		require.Error(t, parseErr)
	})

	t.Run("not a response error", func(t *testing.T) {
		t.Parallel()

		_, parseErr := lulu.ParseErrorEnvelope(errors.New("boom"))
		require.ErrorIs(t, parseErr, lulu.ErrNotResponseError)
	})
}

func TestEnvelope(t *testing.T) {
	t.Parallel()

	ok := lulu.Envelope[lulu.Project]{Data: &lulu.Project{ID: "p1"}}
	assert.True(t, ok.IsSuccess())
	assert.Nil(t, ok.FirstError())

	failed := lulu.Envelope[lulu.Project]{Errors: []lulu.APIError{{Code: "a"}, {Code: "b"}}}
	assert.False(t, failed.IsSuccess())
	assert.Equal(t, "a", failed.FirstError().Code)
}
