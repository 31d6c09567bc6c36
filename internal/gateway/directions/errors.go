package directions

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrNoRoute is returned when the provider answers without a usable route.
var ErrNoRoute = errors.New("directions gateway: no route")

// StatusError is a non-successful answer from the provider.
type StatusError struct {
	Code    int
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("directions gateway: status %s (http %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("directions gateway: http %d", e.Code)
}

// Retryable reports whether repeating the same call may succeed.
func (e *StatusError) Retryable() bool {
	switch e.Status {
	case "OVER_QUERY_LIMIT", "UNKNOWN_ERROR":
		return true
	case "":
	default:
		return false
	}
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// isRetryable reports whether err is worth another attempt.
func isRetryable(err error) bool {
	if errors.Is(err, ErrNoRoute) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Retryable()
	}
	var ne net.Error
	return errors.As(err, &ne)
}
