package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrappingAndCodes(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, ErrCodeUpstream, "fetch processes")

	assert.EqualError(t, err, "fetch processes: boom")
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsUpstream(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, ErrCodeUpstream, GetCode(err))
}

func TestValidationField(t *testing.T) {
	err := ValidationField("company_name", "cannot be empty")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "company_name", GetField(err))
	assert.Empty(t, GetField(fmt.Errorf("plain")))
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "x"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "x %d", 1))
}

func TestFromUpstreamStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCode
	}{
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusBadRequest, ErrCodeValidation},
		{http.StatusUnprocessableEntity, ErrCodeValidation},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeUpstream},
		{http.StatusTeapot, ErrCodeUpstream},
	}
	for _, tt := range tests {
		err := FromUpstreamStatus(tt.status, "detail")
		require.NotNil(t, err, "status %d", tt.status)
		assert.Equal(t, tt.want, err.Code, "status %d", tt.status)
	}
}

func TestFromUpstreamStatus_DefaultsMessage(t *testing.T) {
	err := FromUpstreamStatus(http.StatusNotFound, "")
	assert.Equal(t, http.StatusText(http.StatusNotFound), err.Message)
}

func TestFromTransportError(t *testing.T) {
	assert.Nil(t, FromTransportError(nil))
	assert.True(t, IsCanceled(FromTransportError(context.Canceled)))
	assert.True(t, IsTimeout(FromTransportError(context.DeadlineExceeded)))
	assert.True(t, IsUpstream(FromTransportError(fmt.Errorf("dial tcp: refused"))))
}
