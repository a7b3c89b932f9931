package repository

import "errors"

var (
	ErrEmptySessionID     = errors.New("session id is empty")
	ErrInvalidDriver      = errors.New("invalid history driver")
	ErrMissingRedisClient = errors.New("redis client is required")
	ErrFailedToAppend     = errors.New("failed to append turn")
	ErrFailedToRetrieve   = errors.New("failed to retrieve passages")
)
