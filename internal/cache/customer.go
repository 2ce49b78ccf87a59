package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/customers/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultCustomerTimeToLive is used when no positive ttl is provided
const DefaultCustomerTimeToLive = 10 * time.Minute

// CustomerCache caches single customers by id, FindByID returns nil customer on miss
type CustomerCache interface {
	FindByID(context.Context, int64) (*model.Customer, error)
	Cache(context.Context, *model.Customer) error
	EvictByID(context.Context, int64) error
}

type redisCustomerCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCustomerCache builds redis customer cache, entries are encoded with msgpack
func NewRedisCustomerCache(client *redis.Client, ttl time.Duration) CustomerCache {
	if ttl <= 0 {
		ttl = DefaultCustomerTimeToLive
	}
	return &redisCustomerCache{client: client, ttl: ttl}
}

func (r *redisCustomerCache) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	res, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c model.Customer
	if err := msgpack.Unmarshal(res, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *redisCustomerCache) EvictByID(ctx context.Context, id int64) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *redisCustomerCache) Cache(ctx context.Context, c *model.Customer) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(c.ID), encoded, r.ttl).Err()
}

func (r *redisCustomerCache) key(id int64) string {
	return fmt.Sprintf("customer:%d", id)
}
