package memory

import (
	"context"
	"time"

	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/internal/model"
)

func (r *implRepository) AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	if sessionID == "" {
		return repository.ErrEmptySessionID
	}

	key := repository.HistoryKey(r.keyPrefix, sessionID)

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	sl, ok := r.logs[key]
	if !ok || !now.Before(sl.expiresAt) {
		sl = &sessionLog{}
		r.logs[key] = sl
	}
	sl.entries = append(sl.entries, turn.Encode())
	sl.expiresAt = now.Add(r.ttl)
	return nil
}

func (r *implRepository) RecentTurns(ctx context.Context, sessionID string, n int) []model.Turn {
	if sessionID == "" || n <= 0 {
		return []model.Turn{}
	}

	key := repository.HistoryKey(r.keyPrefix, sessionID)

	r.mu.Lock()
	sl, ok := r.logs[key]
	if ok && !r.now().Before(sl.expiresAt) {
		delete(r.logs, key)
		ok = false
	}
	var raw []string
	if ok {
		start := max(len(sl.entries)-n, 0)
		raw = append(raw, sl.entries[start:]...)
	}
	r.mu.Unlock()

	return model.ParseTurns(raw)
}

// expiresAt reports when the session log expires; ok is false if there is none.
func (r *implRepository) expiresAt(sessionID string) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sl, ok := r.logs[repository.HistoryKey(r.keyPrefix, sessionID)]
	if !ok {
		return time.Time{}, false
	}
	return sl.expiresAt, true
}
