package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"app error uses its code", apperrors.NotFound("process not found"), "not_found"},
		{"wrapped app error", fmt.Errorf("list: %w", apperrors.Upstream("boom")), "upstream"},
		{"plain error", io.ErrUnexpectedEOF, "errors_errorstring"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
