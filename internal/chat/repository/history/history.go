package history

import (
	"fmt"
	"time"

	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/internal/chat/repository/memory"
	"portfolio-chat/internal/chat/repository/redis"
	"portfolio-chat/pkg/log"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type options struct {
	ttl         time.Duration
	keyPrefix   string
	redisClient redis.Cmdable
}

// Option configures the history store built by New.
type Option func(*options)

func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

func WithKeyPrefix(prefix string) Option {
	return func(o *options) { o.keyPrefix = prefix }
}

// WithRedisClient supplies the client used by the redis driver.
func WithRedisClient(client redis.Cmdable) Option {
	return func(o *options) { o.redisClient = client }
}

// New builds the history store for driver.
func New(driver string, l log.Logger, opts ...Option) (repository.HistoryRepository, error) {
	o := options{
		ttl:       repository.DefaultTTL,
		keyPrefix: repository.DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch driver {
	case DriverMemory, "":
		return memory.New(l, memory.WithTTL(o.ttl), memory.WithKeyPrefix(o.keyPrefix)), nil
	case DriverRedis:
		if o.redisClient == nil {
			return nil, repository.ErrMissingRedisClient
		}
		return redis.New(o.redisClient, redis.Options{TTL: o.ttl, KeyPrefix: o.keyPrefix}, l)
	default:
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidDriver, driver)
	}
}
