package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle answers one message within a session. Only validation errors
	// are returned; everything downstream degrades to a reply text.
	Handle(ctx context.Context, input HandleInput) (HandleOutput, error)
}
