package lists

import (
	"errors"
	"net/http"
)

// Domain errors for list operations.
var (
	// ErrUnauthorized indicates the instance rejected the session's token.
	ErrUnauthorized = errors.New("token rejected by instance")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
