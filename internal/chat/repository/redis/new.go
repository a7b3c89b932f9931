package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/pkg/log"
)

// Cmdable is the subset of go-redis commands the history store issues.
// *goredis.Client satisfies it.
type Cmdable interface {
	RPush(ctx context.Context, key string, values ...interface{}) *goredis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
	LRange(ctx context.Context, key string, start, stop int64) *goredis.StringSliceCmd
}

type implRepository struct {
	client    Cmdable
	closer    func() error
	ttl       time.Duration
	keyPrefix string
	l         log.Logger
}

var _ repository.HistoryRepository = (*implRepository)(nil)

// Options configures the redis history store.
type Options struct {
	TTL       time.Duration
	KeyPrefix string
}

// New creates a redis-backed history store. If client also implements
// io.Closer-style Close() error, Close releases it.
func New(client Cmdable, opts Options, l log.Logger) (repository.HistoryRepository, error) {
	if client == nil {
		return nil, repository.ErrMissingRedisClient
	}

	r := &implRepository{
		client:    client,
		ttl:       opts.TTL,
		keyPrefix: opts.KeyPrefix,
		l:         l,
	}
	if r.ttl <= 0 {
		r.ttl = repository.DefaultTTL
	}
	if r.keyPrefix == "" {
		r.keyPrefix = repository.DefaultKeyPrefix
	}
	if c, ok := client.(interface{ Close() error }); ok {
		r.closer = c.Close
	}
	return r, nil
}

// NewClient builds a go-redis client from a redis:// URL, or from addr when url is empty.
func NewClient(url, addr, password string, db int) (*goredis.Client, error) {
	if url != "" {
		opt, err := goredis.ParseURL(url)
		if err != nil {
			return nil, err
		}
		return goredis.NewClient(opt), nil
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), nil
}

func (r *implRepository) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
