package kv

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	scanCount      = 200
	lockAttempts   = 40
	lockRetryDelay = 25 * time.Millisecond
)

// Store is a flat key-value namespace over Redis: string key to JSON value,
// with prefix scans as the only query mechanism. Key naming conventions
// (see keys.go) are the indexing scheme and must stay stable.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Client exposes the underlying redis client for collaborators that need
// raw access (sessions, rate limiting).
func (s *Store) Client() *redis.Client { return s.rdb }

// Set marshals value to JSON and stores it under key, without expiry.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, b, 0).Err()
}

// GetJSON loads the value at key into dest. The boolean reports presence.
func GetJSON[T any](ctx context.Context, s *Store, key string, dest *T) (bool, error) {
	res, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(res, dest); err != nil {
		return false, err
	}
	return true, nil
}

// GetByPrefix returns the raw JSON values of every key starting with prefix.
// Cost is O(total matching keys); scan pages are batched and values fetched
// with a single MGET per page set. Order is unspecified.
func (s *Store) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.rdb.Scan(ctx, cursor, prefix+"*", scanCount).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return s.GetMany(ctx, keys)
}

// GetMany returns the raw JSON values for keys, skipping missing ones.
func (s *Store) GetMany(ctx context.Context, keys []string) ([]json.RawMessage, error) {
	if len(keys) == 0 {
		return []json.RawMessage{}, nil
	}
	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	out := make([]json.RawMessage, 0, len(vals))
	for _, v := range vals {
		str, ok := v.(string)
		if !ok {
			// expired between SCAN and MGET
			continue
		}
		out = append(out, json.RawMessage(str))
	}
	return out, nil
}

// Del removes the given keys.
func (s *Store) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

// Lua script: delete the lock only if we still hold it
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// WithLock runs fn while holding an advisory lock on key (SET NX PX with
// bounded retry). If the lock cannot be acquired within the retry budget,
// fn runs anyway: callers use the lock to serialize read-modify-write
// cycles, and degrading to last-write-wins beats failing the write.
func (s *Store) WithLock(ctx context.Context, key string, ttl time.Duration, fn func() error) error {
	token := uuid.NewString()
	acquired := false
	for i := 0; i < lockAttempts; i++ {
		ok, err := s.rdb.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			break // fail open on redis errors
		}
		if ok {
			acquired = true
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	if acquired {
		defer func() {
			_, _ = unlockScript.Run(ctx, s.rdb, []string{key}, token).Result()
		}()
	}
	return fn()
}
