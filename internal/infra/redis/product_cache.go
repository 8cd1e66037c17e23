package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix = "product:"
	scanBatchSize    = 100
)

func ProductKey(id uint64) string {
	return fmt.Sprintf("%s%d", productKeyPrefix, id)
}

// ProductCache stores products as JSON strings keyed by id.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

// GetProduct returns (nil, nil) on a cache miss.
func (c *ProductCache) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	b, err := c.client.Get(ctx, ProductKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p domain.Product
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode cached product %d: %w", id, err)
	}
	return &p, nil
}

func (c *ProductCache) SetProduct(ctx context.Context, p *domain.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ProductKey(p.ID), data, c.ttl).Err()
}

func (c *ProductCache) InvalidateProduct(ctx context.Context, id uint64) error {
	return c.client.Del(ctx, ProductKey(id)).Err()
}

// FlushProducts removes every cached product.
func (c *ProductCache) FlushProducts(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, productKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
