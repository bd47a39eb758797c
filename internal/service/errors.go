package service

import "errors"

// Shared business-rule errors. Per-entity sentinels live next to their
// service.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("user account is disabled")
)

// DeleteBlockedError is the guard denial: the record has live children or
// dependents, or is protected outright. The reason is safe to echo to the
// caller.
type DeleteBlockedError struct {
	Reason string
}

func (e *DeleteBlockedError) Error() string {
	return e.Reason
}

// IsDeleteBlocked reports whether err is a guard denial
func IsDeleteBlocked(err error) bool {
	var blocked *DeleteBlockedError
	return errors.As(err, &blocked)
}
