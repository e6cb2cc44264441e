package backend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nfrund/lateslip-portal/internal/domain"
)

// ErrMissingToken is returned when a login succeeds without issuing a token.
var ErrMissingToken = errors.New("backend returned no session token")

// StatusError reports a non-2xx response from the backend.
type StatusError struct {
	Op         string
	StatusCode int
	// Message is the backend's "error" field, if it sent one.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.StatusCode)
}

// Is maps well-known status codes onto domain sentinels.
func (e *StatusError) Is(target error) bool {
	switch target {
	case domain.ErrInvalidCredentials:
		return e.StatusCode == http.StatusUnauthorized
	case domain.ErrUserAlreadyExists:
		return e.StatusCode == http.StatusConflict
	}
	return false
}
