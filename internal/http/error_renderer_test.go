package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

func TestWriteServiceError_AppErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantTag  string
	}{
		{name: "validation", err: apperrors.Validation("company is required"), wantCode: http.StatusBadRequest, wantTag: "validation"},
		{name: "unauthorized", err: apperrors.Unauthorized("no session"), wantCode: http.StatusUnauthorized, wantTag: "unauthorized"},
		{name: "forbidden", err: apperrors.Forbidden("admins only"), wantCode: http.StatusForbidden, wantTag: "forbidden"},
		{name: "not found", err: apperrors.NotFound("process 9 not found"), wantCode: http.StatusNotFound, wantTag: "not_found"},
		{name: "conflict", err: apperrors.Conflict("duplicate process"), wantCode: http.StatusConflict, wantTag: "conflict"},
		{name: "upstream", err: apperrors.Upstream("tracker api returned 500"), wantCode: http.StatusBadGateway, wantTag: "upstream"},
		{name: "timeout", err: apperrors.Wrap(errors.New("deadline"), apperrors.ErrCodeTimeout, "tracker api timed out"), wantCode: http.StatusGatewayTimeout, wantTag: "timeout"},
		{name: "canceled", err: apperrors.Wrap(errors.New("ctx"), apperrors.ErrCodeCanceled, "bulk delete interrupted"), wantCode: statusClientClosedRequest, wantTag: "canceled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteServiceError(w, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)

			var response map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantTag, response["error"])
			assert.NotEmpty(t, response["message"])
		})
	}
}

func TestWriteServiceError_WrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("get process 9: %w", apperrors.NotFound("process 9 not found"))

	w := httptest.NewRecorder()
	WriteServiceError(w, wrapped)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteServiceError_PlainError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteServiceError(w, errors.New("socket closed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "internal", response["error"])
}
