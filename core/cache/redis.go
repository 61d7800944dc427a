package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces entries and tag sets so the backend can share a
// Redis instance with other applications.
const redisKeyPrefix = "berea:cache:"

// Redis is a shared backend for multi-process deployments. Values live under
// prefixed string keys with per-entry TTLs; tags are sets of member keys. A
// tag set may hold members for keys that have since expired; such members
// simply miss on Get and are dropped on the next invalidation.
type Redis struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedis creates a Redis backend for the given address ("host:port").
func NewRedis(addr string) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ctx:    context.Background(),
	}
}

// NewRedisClient wraps an existing client, for hosts that manage their own
// connection options.
func NewRedisClient(client *redis.Client) *Redis {
	return &Redis{client: client, ctx: context.Background()}
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) entryKey(key string) string {
	return redisKeyPrefix + "entry:" + key
}

func (r *Redis) tagKey(tag string) string {
	return redisKeyPrefix + "tag:" + tag
}

// Get retrieves a value.
func (r *Redis) Get(key string) ([]byte, bool, error) {
	value, err := r.client.Get(r.ctx, r.entryKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get: %w", err)
	}
	return value, true, nil
}

// Set stores a value and registers it in each tag set.
func (r *Redis) Set(key string, value []byte, ttl time.Duration, tags []string) error {
	pipe := r.client.TxPipeline()
	pipe.Set(r.ctx, r.entryKey(key), value, ttl)
	for _, tag := range tags {
		pipe.SAdd(r.ctx, r.tagKey(tag), key)
	}
	if _, err := pipe.Exec(r.ctx); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}
	return nil
}

// Delete removes a single key. Tag set members are left to be cleaned up by
// the next invalidation.
func (r *Redis) Delete(key string) error {
	if err := r.client.Del(r.ctx, r.entryKey(key)).Err(); err != nil {
		return fmt.Errorf("cache: redis delete: %w", err)
	}
	return nil
}

// InvalidateTag removes every entry in the tag's set, then the set itself.
func (r *Redis) InvalidateTag(tag string) error {
	members, err := r.client.SMembers(r.ctx, r.tagKey(tag)).Result()
	if err != nil {
		return fmt.Errorf("cache: redis invalidate tag: %w", err)
	}
	pipe := r.client.TxPipeline()
	for _, member := range members {
		pipe.Del(r.ctx, r.entryKey(member))
	}
	pipe.Del(r.ctx, r.tagKey(tag))
	if _, err := pipe.Exec(r.ctx); err != nil {
		return fmt.Errorf("cache: redis invalidate tag: %w", err)
	}
	return nil
}

// InvalidateAll removes every entry. Every entry carries TagAll, so this is
// tag invalidation plus a sweep of the remaining tag sets.
func (r *Redis) InvalidateAll() error {
	if err := r.InvalidateTag(TagAll); err != nil {
		return err
	}
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(r.ctx, cursor, redisKeyPrefix+"tag:*", 100).Result()
		if err != nil {
			return fmt.Errorf("cache: redis invalidate all: %w", err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(r.ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache: redis invalidate all: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return nil
}
