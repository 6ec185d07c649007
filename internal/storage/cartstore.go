package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"damone-orders/internal/domain"
)

// RedisCartStore persists carts under two fixed keys per session: one for
// the line items, one for the fulfillment mode. The split mirrors how the
// storefront kept them as separate entries, and lets the mode key be
// dropped independently when the mode is unset.
type RedisCartStore struct {
	Client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client}
}

func itemsKey(sessionID string) string {
	return "cart:" + sessionID + ":items"
}

func modeKey(sessionID string) string {
	return "cart:" + sessionID + ":fulfillment"
}

// Load reads back a persisted cart. A missing snapshot returns (nil, nil);
// a corrupt one returns the parse error so the caller can discard it.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	raw, err := s.Client.Get(ctx, itemsKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []domain.OrderLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("parse cart snapshot: %w", err)
	}

	cart := &domain.Cart{Lines: lines}

	mode, err := s.Client.Get(ctx, modeKey(sessionID)).Result()
	if err == redis.Nil {
		return cart, nil
	}
	if err != nil {
		return nil, err
	}
	cart.Mode = domain.FulfillmentMode(mode)
	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	if err := s.Client.Set(ctx, itemsKey(sessionID), payload, 0).Err(); err != nil {
		return err
	}
	if cart.Mode == domain.FulfillmentUnset {
		return s.Client.Del(ctx, modeKey(sessionID)).Err()
	}
	return s.Client.Set(ctx, modeKey(sessionID), string(cart.Mode), 0).Err()
}

func (s *RedisCartStore) Purge(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, itemsKey(sessionID), modeKey(sessionID)).Err()
}
