package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/internal/model"
)

const (
	logPrefixAppend = "internal.chat.repository.redis.AppendTurn"
	logPrefixRecent = "internal.chat.repository.redis.RecentTurns"
)

// AppendTurn issues RPUSH followed by EXPIRE. The two commands are not atomic;
// a failed EXPIRE leaves the previous expiry in place.
func (r *implRepository) AppendTurn(ctx context.Context, sessionID string, turn model.Turn) error {
	if sessionID == "" {
		return repository.ErrEmptySessionID
	}

	key := repository.HistoryKey(r.keyPrefix, sessionID)

	if err := r.client.RPush(ctx, key, turn.Encode()).Err(); err != nil {
		r.l.Errorf(ctx, "%s: rpush %s: %v", logPrefixAppend, key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToAppend, err)
	}
	if err := r.client.Expire(ctx, key, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: expire %s: %v", logPrefixAppend, key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToAppend, err)
	}
	return nil
}

func (r *implRepository) RecentTurns(ctx context.Context, sessionID string, n int) []model.Turn {
	if sessionID == "" || n <= 0 {
		return []model.Turn{}
	}

	key := repository.HistoryKey(r.keyPrefix, sessionID)

	raw, err := r.client.LRange(ctx, key, int64(-n), -1).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			r.l.Warnf(ctx, "%s: lrange %s: %v", logPrefixRecent, key, err)
		}
		return []model.Turn{}
	}

	return model.ParseTurns(raw)
}
