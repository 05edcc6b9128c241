package redis

import (
	"context"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/hanifmaulana/quotedesk/cmd/redis"
	"github.com/hanifmaulana/quotedesk/constant"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetAvailabilitySummary(ctx context.Context, quoteID uint64, summary constant.AvailabilityStatus, ttl time.Duration) error
	GetAvailabilitySummary(ctx context.Context, quoteID uint64) (constant.AvailabilityStatus, bool, error)
	DeleteAvailabilitySummary(ctx context.Context, quoteID uint64) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func summaryKey(quoteID uint64) string {
	return "quote:availability:" + strconv.FormatUint(quoteID, 10)
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}

// SetAvailabilitySummary caches the quote-level availability badge
// shown on the admin quote list, so listing does not re-read every
// quote item row.
func (r *redis) SetAvailabilitySummary(ctx context.Context, quoteID uint64, summary constant.AvailabilityStatus, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, summaryKey(quoteID), string(summary), ttl).Err()
}

func (r *redis) GetAvailabilitySummary(ctx context.Context, quoteID uint64) (constant.AvailabilityStatus, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return "", false, nil
	}
	val, err := client.Get(ctx, summaryKey(quoteID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return constant.AvailabilityStatus(val), true, nil
}

func (r *redis) DeleteAvailabilitySummary(ctx context.Context, quoteID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, summaryKey(quoteID)).Err()
}
