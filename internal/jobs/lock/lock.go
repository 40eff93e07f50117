// Package lock keeps periodic relance jobs from running on two workers at once.
package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	redisclient "relance-server/internal/clients/redis"
	"relance-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:relance:"

// ErrHeld is returned when another worker owns the lock
var ErrHeld = errors.New("lock held by another worker")

// releaseScript deletes the key only if it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker hands out Redis SET NX locks. A disabled client makes every
// acquisition succeed, for single node deployments.
type Locker struct {
	client *redisclient.Client
	logger *observability.Logger
}

func New(client *redisclient.Client, logger *observability.Logger) *Locker {
	return &Locker{client: client, logger: logger}
}

// Lock is a held lock
type Lock struct {
	key    string
	token  string
	locker *Locker
}

// Acquire takes the lock for job for at most ttl
func (l *Locker) Acquire(ctx context.Context, job string, ttl time.Duration) (*Lock, error) {
	if !l.client.IsEnabled() {
		return &Lock{key: keyPrefix + job, locker: l}, nil
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	key := keyPrefix + job
	ok, err := l.client.GetClient().SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrHeld
	}
	return &Lock{key: key, token: token, locker: l}, nil
}

// Release frees the lock if it has not expired and been taken over
func (lk *Lock) Release(ctx context.Context) error {
	if !lk.locker.client.IsEnabled() {
		return nil
	}
	if err := releaseScript.Run(ctx, lk.locker.client.GetClient(), []string{lk.key}, lk.token).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", lk.key, err)
	}
	return nil
}

// Run executes fn under the job's lock. When the lock is held fn is skipped
// and ErrHeld is returned.
func (l *Locker) Run(ctx context.Context, job string, ttl time.Duration, fn func(context.Context) error) error {
	lk, err := l.Acquire(ctx, job, ttl)
	if err != nil {
		return err
	}
	defer func() {
		// The run's ctx may be cancelled already
		releaseCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := lk.Release(releaseCtx); err != nil {
			l.logger.Error(ctx, "failed to release job lock", err)
		}
	}()
	return fn(ctx)
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
