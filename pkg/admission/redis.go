package admission

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// consumeScript increments the window counter and sets its expiry in one
// atomic round-trip. INCR followed by a separate EXPIRE would leak a
// permanent key if the client died in between; doing both in a script
// also guarantees two concurrent consumers can never both observe a
// pre-increment count.
var consumeScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
if n > tonumber(ARGV[1]) then
	return 0
end
return 1
`)

// RedisStore counts consumptions in Redis, sharing windows across service
// instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed counter store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// TryConsume implements Store.
func (s *RedisStore) TryConsume(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	res, err := consumeScript.Run(ctx, s.client, []string{key}, limit, window.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit consume failed: %w", err)
	}
	return res == 1, nil
}

// Ping verifies connectivity, for startup checks.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
