package locks

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/dockwise/dock-scheduler/internal/httperr"
)

const (
	redisLockTTL   = 10 * time.Second
	redisRetryStep = 25 * time.Millisecond
)

// releaseScript deletes the lock only when the caller still owns it, so an
// expired-and-reacquired lock is never released by the previous holder.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is the multi-instance Locker: SetNX with a TTL, polled until
// the bounded wait elapses. Use it when several API replicas admit
// bookings against the same database.
type RedisLocker struct {
	client *redis.Client
	wait   time.Duration
}

func NewRedisLocker(client *redis.Client, wait time.Duration) *RedisLocker {
	return &RedisLocker{client: client, wait: wait}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, redisLockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
			}, nil
		}

		if time.Now().After(deadline) {
			return nil, httperr.ErrLockTimeout
		}

		select {
		case <-time.After(redisRetryStep):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
