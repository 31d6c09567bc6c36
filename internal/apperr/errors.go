package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnavailable indicates that gas delivery is switched off by the admin (HTTP 503).
var ErrUnavailable = errors.New("gas delivery unavailable")

// ErrForbidden indicates that the driver account is deactivated.
var ErrForbidden = errors.New("forbidden")
