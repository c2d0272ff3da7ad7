package errors

import (
	"context"
	"errors"
	"net/http"
)

// FromUpstreamStatus classifies a tracker API response status into the
// application error taxonomy. The message is the upstream "detail" field
// when present, already extracted by the client.
func FromUpstreamStatus(status int, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusNotFound:
		return NotFound(message)
	case status == http.StatusConflict:
		return Conflict(message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return Validation(message)
	case status == http.StatusUnauthorized:
		return Unauthorized(message)
	case status == http.StatusForbidden:
		return Forbidden(message)
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return &AppError{Code: ErrCodeTimeout, Message: message}
	case status >= 500:
		return Upstream(message)
	default:
		return Upstreamf("unexpected upstream status %d: %s", status, message)
	}
}

// FromTransportError classifies a transport-level failure (the request never
// produced a response) so context cancellation and deadlines keep their
// meaning through the service layer.
func FromTransportError(err error) *AppError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return &AppError{Code: ErrCodeCanceled, Message: "request canceled", Cause: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &AppError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	default:
		return Wrap(err, ErrCodeUpstream, "tracker API unreachable")
	}
}
