package repository

import (
	"context"

	"portfolio-chat/internal/model"
)

// HistoryRepository is the per-session turn log.
type HistoryRepository interface {
	// AppendTurn pushes a turn to the tail of the session log and resets its expiry.
	AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error
	// RecentTurns returns up to n most recent turns, oldest first.
	// Backend failures are logged and yield an empty slice.
	RecentTurns(ctx context.Context, sessionID string, n int) []model.Turn
	Close() error
}

// PassageRepository finds portfolio passages similar to a query.
type PassageRepository interface {
	// Retrieve returns at most k passages ordered by descending score.
	Retrieve(ctx context.Context, query string, k int) ([]model.Passage, error)
}
