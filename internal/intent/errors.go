package intent

import "errors"

var (
	ErrEmptyResponse = errors.New("intent: empty classifier response")
	ErrInvalidOutput = errors.New("intent: invalid classifier output")
)
