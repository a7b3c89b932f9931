package chat

import "portfolio-chat/internal/safety"

const (
	// ApologyMessage is returned whenever the generation path fails.
	ApologyMessage = "Sorry, we are having trouble generating a response, please try again later."

	// RefusalMessage answers unsafe and off-topic messages.
	RefusalMessage = safety.RefusalMessage

	MaxSessionIDLength      = 128
	DefaultMaxMessageLength = 2000
	DefaultHistoryWindow    = 5
	DefaultRetrievalTopK    = 3
)
