package lulu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Messages carried by ResponseError.
const (
	MsgRequestFailed     = "API request failed with status %d"
	MsgDeserializeFailed = "Failed to deserialize API response"
)

// ResponseError is returned for every failed round-trip: a non-2xx status or
// a success body that could not be decoded.
type ResponseError struct {
	Message      string `json:"message"                 yaml:"message"`
	StatusCode   int    `json:"status_code"             yaml:"status_code"`
	ResponseBody string `json:"response_body,omitempty" yaml:"response_body,omitempty"`
	Err          error  `json:"-"                       yaml:"-"`
}

// NewStatusError builds the error for a non-2xx response.
func NewStatusError(statusCode int, body string) *ResponseError {
	return &ResponseError{
		Message:      fmt.Sprintf(MsgRequestFailed, statusCode),
		StatusCode:   statusCode,
		ResponseBody: body,
	}
}

// NewDeserializeError builds the error for an undecodable success body.
func NewDeserializeError(statusCode int, body string, cause error) *ResponseError {
	return &ResponseError{
		Message:      MsgDeserializeFailed,
		StatusCode:   statusCode,
		ResponseBody: body,
		Err:          cause,
	}
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ResponseError) Unwrap() error {
	return e.Err
}

// APIError is a single entry of the wire envelope's errors array.
type APIError struct {
	Code    string `json:"code"            yaml:"code"`
	Message string `json:"message"         yaml:"message"`
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Code, e.Message, e.Field)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Envelope is the wrapper some endpoints use around their payload.
type Envelope[T any] struct {
	Data   *T         `json:"data,omitempty"   yaml:"data,omitempty"`
	Errors []APIError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// IsSuccess reports whether the envelope carries no errors.
func (e *Envelope[T]) IsSuccess() bool {
	return len(e.Errors) == 0
}

// FirstError returns the first error or nil.
func (e *Envelope[T]) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// ParseErrorEnvelope decodes the errors array out of a ResponseError's body.
// The client never calls it; it is here for callers that want field-level detail.
func ParseErrorEnvelope(err error) ([]APIError, error) {
	respErr := &ResponseError{}
	if !errors.As(err, &respErr) {
		return nil, ErrNotResponseError
	}

	if strings.TrimSpace(respErr.ResponseBody) == "" {
		return nil, nil
	}

	var envelope Envelope[json.RawMessage]

	err = json.Unmarshal([]byte(respErr.ResponseBody), &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing error envelope: %w", err)
	}

	return envelope.Errors, nil
}

// Common static errors that can be wrapped with context.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrConfigRequired   = errors.New("config is required")
	ErrNotResponseError = errors.New("error is not a ResponseError")
	ErrNoMoreItems      = errors.New("no more items")
	ErrUnknownEnumValue = errors.New("unknown enum value")
)

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 response.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsRateLimited checks if the error is a 429 response.
func IsRateLimited(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool {
	code := StatusCode(err)

	return code >= http.StatusInternalServerError && code < 600
}

// IsInvalidArgument checks if the error came from local validation.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// ErrorKind classifies a failed call.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindTransport
	KindDeserialization
	KindCancelled
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindDeserialization:
		return "deserialization"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Classify reports which failure path produced err. Nil yields KindUnknown.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}

	if errors.Is(err, ErrInvalidArgument) {
		return KindValidation
	}

	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		if respErr.Message == MsgDeserializeFailed {
			return KindDeserialization
		}

		return KindTransport
	}

	return KindUnknown
}
