package httpx

import (
	"errors"
	"net/http"

	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// statusClientClosedRequest mirrors the nginx convention for requests the
// client abandoned before the upstream call finished.
const statusClientClosedRequest = 499

// WriteServiceError translates a service-layer error into a JSON error response.
// Typed application errors map onto their natural HTTP status; anything else is
// treated as an internal error.
func WriteServiceError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		WriteError(w, ErrorParams{
			Code:    statusForCode(appErr.Code),
			ErrCode: string(appErr.Code),
			Err:     err,
		})
		return
	}

	WriteError(w, ErrorParams{
		Code:    http.StatusInternalServerError,
		ErrCode: string(apperrors.ErrCodeInternal),
		Err:     err,
	})
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeUpstream:
		return http.StatusBadGateway
	case apperrors.ErrCodeCanceled:
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}
