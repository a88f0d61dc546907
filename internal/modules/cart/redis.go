package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// One hash per session: cart:sess:{session_id}, field = product id,
	// value = JSON-encoded line.
	keySession = "cart:sess:%s"

	// Global id counter shared by all sessions.
	keyNextID = "cart:next_id"
)

type redisRepo struct{ rdb *redis.Client }

// NewRedisRepository creates a cart store backed by Redis so carts survive
// process restarts. Line ids come from a Redis counter and stay monotonic.
func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepo{rdb: rdb}
}

func sessionKey(sessionID string) string { return fmt.Sprintf(keySession, sessionID) }

func (r *redisRepo) List(ctx context.Context, sessionID string) ([]*Item, error) {
	fields, err := r.rdb.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	items := make([]*Item, 0, len(fields))
	for _, raw := range fields {
		it := &Item{}
		if err := json.Unmarshal([]byte(raw), it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	// Hash iteration order is arbitrary; id order matches insertion order.
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *redisRepo) get(ctx context.Context, sessionID string, productID int) (*Item, error) {
	raw, err := r.rdb.HGet(ctx, sessionKey(sessionID), strconv.Itoa(productID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	it := &Item{}
	if err := json.Unmarshal([]byte(raw), it); err != nil {
		return nil, err
	}
	return it, nil
}

func (r *redisRepo) put(ctx context.Context, it *Item) error {
	raw, err := json.Marshal(it)
	if err != nil {
		return err
	}
	return r.rdb.HSet(ctx, sessionKey(it.SessionID), strconv.Itoa(it.ProductID), raw).Err()
}

func (r *redisRepo) Add(ctx context.Context, sessionID string, productID, quantity int) (*Item, error) {
	existing, err := r.get(ctx, sessionID, productID)
	if err == nil {
		existing.Quantity += quantity
		return existing, r.put(ctx, existing)
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	id, err := r.rdb.Incr(ctx, keyNextID).Result()
	if err != nil {
		return nil, err
	}
	item := &Item{ID: int(id), SessionID: sessionID, ProductID: productID, Quantity: quantity}
	return item, r.put(ctx, item)
}

func (r *redisRepo) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (*Item, error) {
	existing, err := r.get(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, r.rdb.HDel(ctx, sessionKey(sessionID), strconv.Itoa(productID)).Err()
	}
	existing.Quantity = quantity
	return existing, r.put(ctx, existing)
}

func (r *redisRepo) Remove(ctx context.Context, sessionID string, productID int) error {
	n, err := r.rdb.HDel(ctx, sessionKey(sessionID), strconv.Itoa(productID)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *redisRepo) Clear(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, sessionKey(sessionID)).Err()
}
