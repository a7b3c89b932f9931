package http

import (
	"errors"
	"net/http"

	"portfolio-chat/internal/chat"
	"portfolio-chat/pkg/response"
)

var (
	errInvalidBody        = errors.New("invalid request body")
	errServiceUnavailable = response.NewHTTPError(http.StatusServiceUnavailable, "Chat service unavailable")
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errInvalidBody):
		return response.NewHTTPError(http.StatusBadRequest, "Request body must be a JSON object with a string message")
	case errors.Is(err, chat.ErrEmptyMessage):
		return response.NewHTTPError(http.StatusBadRequest, "Message is required and must be a non-empty string")
	case errors.Is(err, chat.ErrMessageTooLong):
		return response.NewHTTPError(http.StatusBadRequest, "Message is too long")
	case errors.Is(err, chat.ErrInvalidSessionID):
		return response.NewHTTPError(http.StatusBadRequest, "Invalid session ID")
	default:
		return response.ErrInternalServerError
	}
}
