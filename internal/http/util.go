package httpx

import (
	"net/http"
	"strconv"

	apperrors "github.com/offertrack/track-ui-api/internal/errors"
)

// pathID parses the named path value as a positive int64 identifier.
// On failure it writes a validation error response and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteServiceError(w, apperrors.ValidationField(name, name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}
