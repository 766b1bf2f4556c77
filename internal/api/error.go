package api

import (
	"errors"
	"fmt"
)

// ErrTokenExpired is returned before a request is attempted when the
// configured bearer token carries an exp claim in the past.
var ErrTokenExpired = errors.New("bearer token expired")

// Error represents a portal API error, covering both non-2xx statuses and
// 2xx bodies that report success=false.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("portal API error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("portal API error [%d]: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a portal API 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
