package authz

import (
	"errors"
	"fmt"
)

// ErrForbidden is matched by every ForbiddenError via errors.Is.
var ErrForbidden = errors.New("authz: permission denied")

// ForbiddenError describes a request denied in enforce mode.
type ForbiddenError struct {
	Request Request
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("authz: permission denied (subject=%s domain=%s object=%s action=%s)",
		e.Request.Subject, e.Request.Domain, e.Request.Object, e.Request.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

func forbiddenError(req Request) error {
	return &ForbiddenError{Request: req}
}

// configError standardizes configuration validation errors.
func configError(msg string, args ...any) error {
	return fmt.Errorf("authz: "+msg, args...)
}
