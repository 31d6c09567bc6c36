package kafka

import "errors"

// PermanentError marks a handler failure that a redelivery cannot fix.
// The consumer commits such messages and moves on.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "kafka: permanent handler error"
	}
	return "kafka: permanent: " + e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err. A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return PermanentError{Err: err}
}

// PermanentIf wraps err when it matches one of kinds.
func PermanentIf(err error, kinds ...error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return Permanent(err)
		}
	}
	return err
}
