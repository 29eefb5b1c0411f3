// Package cache is the TTL cache tier in front of the calculators and the
// upstream market clients. Values are stored as JSON so the redis and
// in-process backends behave identically.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Outcome tags where a fetched value came from.
type Outcome string

const (
	// Hit means the value was served from cache within its TTL.
	Hit Outcome = "hit"
	// ComputedFresh means the value was computed (or fetched upstream),
	// stored, and returned. A miss never escapes Fetch: missing entries are
	// always computed on the spot.
	ComputedFresh Outcome = "computed_fresh"
)

// Store is a TTL key/value store. Get reports whether a live entry existed
// and decodes it into dest.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Expiry table. Prayer times are pinned to the civil date so a full day is
// safe; market data goes stale fast.
const (
	TTLPrayerTimes = 24 * time.Hour
	TTLQibla       = 7 * 24 * time.Hour // date-independent, keyed by location only
	TTLCrypto      = 5 * time.Minute
	TTLWeather     = 30 * time.Minute
	TTLCurrency    = time.Hour
	TTLHijri       = 24 * time.Hour
)

// Key joins namespace parts into a cache key.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Fetch returns the cached value under key, or computes, stores and returns
// it. Cache failures are logged and degrade to recomputation; computation
// failures are returned. Concurrent callers for the same key may each
// compute and race the Set, which is fine: computation is deterministic, so
// the last writer overwrites with an equivalent value.
func Fetch[T any](ctx context.Context, store Store, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, Outcome, error) {
	var cached T
	ok, err := store.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed, recomputing")
	} else if ok {
		return cached, Hit, nil
	}

	fresh, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, ComputedFresh, err
	}

	if err := store.Set(ctx, key, fresh, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return fresh, ComputedFresh, nil
}
