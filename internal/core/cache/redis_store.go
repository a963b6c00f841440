package cache

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shop-api/internal/core/logger"
)

const (
	defaultConnectTimeout  = 5 * time.Second
	defaultConnectAttempts = 3
	defaultRetryDelay      = time.Second

	scanBatchSize = 100
)

// Options configures the Redis-backed store.
type Options struct {
	// Addr is the Redis address in host:port form.
	Addr string
	// Password is the optional Redis credential.
	Password string
	// ConnectTimeout bounds each connection attempt. Default 5s.
	ConnectTimeout time.Duration
	// ConnectAttempts caps how many times a (re)connect loop retries before
	// the store gives up for the life of the process. Default 3.
	ConnectAttempts int
	// RetryDelay is the initial delay between attempts; it doubles per retry.
	// Default 1s.
	RetryDelay time.Duration
}

// RedisStore implements Store on a shared Redis connection pool and owns the
// availability flag that gates every operation. The flag is a cached state,
// not a live probe: it flips on connect success, on operation errors and on
// reconnect exhaustion.
type RedisStore struct {
	client *redis.Client

	available  atomic.Bool
	connecting atomic.Bool
	exhausted  atomic.Bool

	connectTimeout  time.Duration
	connectAttempts int
	retryDelay      time.Duration
}

// NewRedisStore creates a RedisStore and starts connecting in the background.
// The returned store is immediately usable: until the connection resolves
// every operation degrades to a no-op, so the rest of the application never
// waits on Redis.
func NewRedisStore(opts Options) *RedisStore {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = defaultConnectTimeout
	}
	if opts.ConnectAttempts <= 0 {
		opts.ConnectAttempts = defaultConnectAttempts
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DialTimeout:  opts.ConnectTimeout,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		MaxRetries:   -1, // retries are handled by the reconnect loop
		PoolSize:     10,
		MinIdleConns: 2,
	})

	s := &RedisStore{
		client:          client,
		connectTimeout:  opts.ConnectTimeout,
		connectAttempts: opts.ConnectAttempts,
		retryDelay:      opts.RetryDelay,
	}

	go s.connect()

	return s
}

// Get retrieves the stored payload for key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if !s.available.Load() {
		return nil, ErrUnavailable
	}

	val, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		s.markUnavailable(err)
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	return val, nil
}

// Set stores a payload under key with the specified TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !s.available.Load() {
		return nil
	}

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.markUnavailable(err)
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// DeleteByPattern enumerates every key matching the glob pattern and removes
// them with a single bulk delete. Idempotent: a repeated clear removes 0.
func (s *RedisStore) DeleteByPattern(ctx context.Context, pattern string) (int64, error) {
	if !s.available.Load() {
		return 0, nil
	}

	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.markUnavailable(err)
		return 0, fmt.Errorf("cache scan %s: %w", pattern, err)
	}

	if len(keys) == 0 {
		return 0, nil
	}

	removed, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		s.markUnavailable(err)
		return 0, fmt.Errorf("cache delete %s: %w", pattern, err)
	}
	return removed, nil
}

// Available reports the cached reachability flag without touching the backend.
func (s *RedisStore) Available() bool {
	return s.available.Load()
}

// Ping checks if the backend is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache ping: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// connect pings the backend with an increasing delay between attempts. After
// the attempt cap is exceeded the store gives up for the life of the process
// and stays unavailable. Only one connect loop runs at a time.
func (s *RedisStore) connect() {
	if !s.connecting.CompareAndSwap(false, true) {
		return
	}
	defer s.connecting.Store(false)

	delay := s.retryDelay
	for attempt := 1; attempt <= s.connectAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), s.connectTimeout)
		err := s.client.Ping(ctx).Err()
		cancel()

		if err == nil {
			s.markAvailable()
			return
		}

		logger.Get().Warn("Cache backend connection attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.connectAttempts),
			zap.Error(err),
		)

		if attempt < s.connectAttempts {
			time.Sleep(delay)
			delay *= 2
		}
	}

	s.exhausted.Store(true)
	logger.Get().Warn("Cache backend unreachable, giving up; caching disabled for this process")
}

func (s *RedisStore) markAvailable() {
	if s.available.CompareAndSwap(false, true) {
		logger.Get().Info("Cache backend available")
	}
}

// markUnavailable absorbs a backend failure into the availability flag.
// Logged once per transition to avoid flooding, and a reconnect loop is
// started unless the retry budget is already spent.
func (s *RedisStore) markUnavailable(err error) {
	if s.available.CompareAndSwap(true, false) {
		logger.Get().Warn("Cache backend connection lost", zap.Error(err))
	}
	if !s.exhausted.Load() {
		go s.connect()
	}
}
