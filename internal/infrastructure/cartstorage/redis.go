// internal/infrastructure/cartstorage/redis.go
package cartstorage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/bondex-safety/bondex-backend/internal/domain/cart"
)

// RedisAdapter persists one session's cart snapshot as a JSON blob in Redis.
// Each adapter instance is bound to a single session key; the backing store
// is shared across sessions but writes are last-writer-wins per key.
type RedisAdapter struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
	logger    logrus.FieldLogger
}

// NewRedisAdapter creates an adapter bound to the given session ID
func NewRedisAdapter(client *redis.Client, sessionID string, ttl time.Duration, logger logrus.FieldLogger) *RedisAdapter {
	return &RedisAdapter{
		client:    client,
		sessionID: sessionID,
		ttl:       ttl,
		logger:    logger,
	}
}

// Load retrieves the stored snapshot. A missing key returns (nil, nil); an
// unparseable blob is treated identically so a corrupt entry never crashes
// cart hydration.
func (a *RedisAdapter) Load() (*cart.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	data, err := a.client.Get(ctx, a.key()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var snap cart.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		a.logger.WithError(err).WithField("session_id", a.sessionID).Warn("Discarding unparseable cart snapshot")
		return nil, nil
	}

	return &snap, nil
}

// Save stores the snapshot with the session TTL
func (a *RedisAdapter) Save(snap *cart.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := a.client.Set(ctx, a.key(), data, a.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}

	return nil
}

func (a *RedisAdapter) key() string {
	return fmt.Sprintf("cart:session:%s", a.sessionID)
}
