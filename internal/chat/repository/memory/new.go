package memory

import (
	"context"
	"sync"
	"time"

	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/pkg/log"
)

const defaultCleanupInterval = time.Minute

type sessionLog struct {
	entries   []string
	expiresAt time.Time
}

type implRepository struct {
	mu   sync.Mutex
	logs map[string]*sessionLog

	ttl             time.Duration
	keyPrefix       string
	now             func() time.Time
	cleanupInterval time.Duration

	l        log.Logger
	stop     chan struct{}
	stopOnce sync.Once
}

var _ repository.HistoryRepository = (*implRepository)(nil)

// Option customises the in-memory history store.
type Option func(*implRepository)

func WithTTL(ttl time.Duration) Option {
	return func(r *implRepository) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func WithKeyPrefix(prefix string) Option {
	return func(r *implRepository) {
		if prefix != "" {
			r.keyPrefix = prefix
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) {
		if now != nil {
			r.now = now
		}
	}
}

// WithCleanupInterval sets how often expired logs are swept. Zero disables the sweeper.
func WithCleanupInterval(d time.Duration) Option {
	return func(r *implRepository) {
		r.cleanupInterval = d
	}
}

// New creates a process-local history store. Logs vanish on restart.
func New(l log.Logger, opts ...Option) repository.HistoryRepository {
	r := &implRepository{
		logs:            make(map[string]*sessionLog),
		ttl:             repository.DefaultTTL,
		keyPrefix:       repository.DefaultKeyPrefix,
		now:             time.Now,
		cleanupInterval: defaultCleanupInterval,
		l:               l,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.cleanupInterval > 0 {
		go r.janitor()
	}
	return r
}

// Close stops the sweeper. Safe to call more than once.
func (r *implRepository) Close() error {
	r.stopOnce.Do(func() { close(r.stop) })
	return nil
}

func (r *implRepository) janitor() {
	ticker := time.NewTicker(r.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if n := r.sweep(); n > 0 && r.l != nil {
				r.l.Debugf(context.Background(), "internal.chat.repository.memory.janitor: swept %d expired sessions", n)
			}
		}
	}
}

func (r *implRepository) sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for key, sl := range r.logs {
		if !now.Before(sl.expiresAt) {
			delete(r.logs, key)
			removed++
		}
	}
	return removed
}
