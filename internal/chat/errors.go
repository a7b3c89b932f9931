package chat

import "errors"

var (
	ErrEmptyMessage     = errors.New("message is required and must be a non-empty string")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrInvalidSessionID = errors.New("invalid session ID")
	ErrEmptyAnswer      = errors.New("model returned an empty answer")
)
