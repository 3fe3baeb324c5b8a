package pledge

import "errors"

var (
	ErrNotFound          = errors.New("pledge not found")
	ErrAlreadyClosed     = errors.New("pledge is already closed")
	ErrNotActive         = errors.New("pledge is not active")
	ErrInvalidTransition = errors.New("invalid pledge state transition")
)
