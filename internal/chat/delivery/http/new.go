package http

import (
	"portfolio-chat/internal/chat"
	"portfolio-chat/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates the chat HTTP handler. uc may be nil when the chat backend
// failed to build; requests are then answered with 503.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
