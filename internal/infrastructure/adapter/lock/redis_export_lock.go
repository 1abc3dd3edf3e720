package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	"github.com/jbdata/ledger-engine/internal/domain/port/coordination"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
)

// DefaultExportLockKey is the redis key guarding export runs
const DefaultExportLockKey = "export:pending-orders"

// releaseScript deletes the key only while it still holds the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisExportLock is an ExportLock backed by a single redis key with an owner token
type RedisExportLock struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
	logger coreport.Logger
}

var _ coordination.ExportLock = (*RedisExportLock)(nil)

// NewRedisExportLock creates a lock under keyPrefix+DefaultExportLockKey that expires after ttl
func NewRedisExportLock(client redis.Cmdable, keyPrefix string, ttl time.Duration, logger coreport.Logger) *RedisExportLock {
	return &RedisExportLock{
		client: client,
		key:    keyPrefix + DefaultExportLockKey,
		ttl:    ttl,
		logger: logger,
	}
}

// Acquire sets the key if it is absent. A held key yields ErrExportInProgress.
func (l *RedisExportLock) Acquire(ctx context.Context) (coordination.ReleaseFunc, error) {
	token := uuid.NewString()

	set, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		l.logger.Error("Failed to acquire export lock", map[string]any{
			"key":   l.key,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("acquire export lock: %w", err)
	}
	if !set {
		l.logger.Warn("Export lock is held by another run", map[string]any{
			"key": l.key,
		})
		return nil, errs.ErrExportInProgress
	}

	l.logger.Debug("Export lock acquired", map[string]any{
		"key": l.key,
		"ttl": l.ttl.String(),
	})

	return func(ctx context.Context) error {
		deleted, err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Int64()
		if err != nil {
			return fmt.Errorf("release export lock: %w", err)
		}
		if deleted == 0 {
			l.logger.Warn("Export lock expired before release", map[string]any{
				"key": l.key,
			})
		}
		return nil
	}, nil
}

// NoopExportLock always succeeds; used when redis is disabled
type NoopExportLock struct{}

// Acquire returns a release func that does nothing
func (NoopExportLock) Acquire(context.Context) (coordination.ReleaseFunc, error) {
	return func(context.Context) error { return nil }, nil
}
