package repository

import "time"

const (
	DefaultKeyPrefix = "chat_history:"
	DefaultTTL       = 600 * time.Second
)

// HistoryKey builds the store key of a session log.
func HistoryKey(prefix, sessionID string) string {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return prefix + sessionID
}
