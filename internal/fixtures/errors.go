package fixtures

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every error returned for bad generator input.
var ErrValidation = errors.New("invalid fixture request")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
