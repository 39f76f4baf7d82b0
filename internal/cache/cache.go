// Package cache stores computed summaries so that repeated reads do not
// hit the database.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Cache stores encoded values by key.
type Cache interface {
	// Get retrieves a value from the cache
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value in the cache
	Set(ctx context.Context, key string, value []byte) error

	// DeletePrefix removes all keys starting with prefix
	DeletePrefix(ctx context.Context, prefix string) error

	// Generation returns the value of a counter, zero if it was never incremented
	Generation(ctx context.Context, key string) (int64, error)

	// Incr increments a counter and returns the new value. Counters never expire.
	Incr(ctx context.Context, key string) (int64, error)
}

// OwnerPrefix is the prefix of all keys of an owner.
func OwnerPrefix(owner string) string {
	return fmt.Sprintf("owner:%s:", owner)
}

// Key builds the key of a value of an owner.
func Key(owner string, parts ...string) string {
	return OwnerPrefix(owner) + strings.Join(parts, ":")
}

func generationKey(owner string) string {
	return "generation:" + owner
}

// Versioned returns the key for parts in the current generation of the owner.
//
// It must be called before the value is computed. Invalidate advances the
// generation, so a value computed from data older than the last write is
// stored under a key that is never read again. ok is false if the generation
// cannot be read, the value must not be cached then.
func Versioned(ctx context.Context, c Cache, owner string, parts ...string) (key string, ok bool) {
	gen, err := c.Generation(ctx, generationKey(owner))
	if err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("cache generation read failed")
		return "", false
	}

	return Key(owner, append([]string{strconv.FormatInt(gen, 10)}, parts...)...), true
}

// Load decodes the cached value for key into a T.
//
// Cache failures are logged and reported as a miss.
func Load[T any](ctx context.Context, c Cache, key string) (T, bool) {
	var value T

	data, ok, err := c.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return value, false
	}

	if !ok {
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry could not be decoded")
		return value, false
	}

	return value, true
}

// Store encodes and caches the value. Failures are logged.
func Store(ctx context.Context, c Cache, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache entry could not be encoded")
		return
	}

	if err := c.Set(ctx, key, data); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Invalidate advances the generation of the owner and drops all cached
// values. Failures are logged.
func Invalidate(ctx context.Context, c Cache, owner string) {
	if _, err := c.Incr(ctx, generationKey(owner)); err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("cache generation increment failed")
	}

	if err := c.DeletePrefix(ctx, OwnerPrefix(owner)); err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("cache invalidation failed")
	}
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error         { return nil }
func (Nop) DeletePrefix(context.Context, string) error        { return nil }
func (Nop) Generation(context.Context, string) (int64, error) { return 0, nil }
func (Nop) Incr(context.Context, string) (int64, error)       { return 0, nil }
