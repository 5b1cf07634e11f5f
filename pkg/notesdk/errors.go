package notesdk

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notes api: %d %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// an *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool     { return StatusCode(err) == http.StatusNotFound }
func IsForbidden(err error) bool    { return StatusCode(err) == http.StatusForbidden }
func IsUnauthorized(err error) bool { return StatusCode(err) == http.StatusUnauthorized }
func IsConflict(err error) bool     { return StatusCode(err) == http.StatusConflict }
