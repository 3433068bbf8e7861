package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CatalogItemTTL is the time-to-live for cached catalogue items.
	CatalogItemTTL = 24 * time.Hour

	catalogItemKeyPrefix = "catalog_item"
)

// CachedItem is the denormalized catalogue read model stored in Redis.
// It mirrors the catalogue item row plus the manufacturer name so product
// pages render without a second lookup.
type CachedItem struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	GameSystem       string   `json:"game_system"`
	Army             string   `json:"army"`
	UnitType         string   `json:"unit_type"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Tags             []string `json:"tags"`
	Image            string   `json:"image"`
	Format           string   `json:"format"`
	Type             string   `json:"type"`
	ManufacturerID   int64    `json:"manufacturer_id"`
	ManufacturerName string   `json:"manufacturer_name,omitempty"`
	Downloads        int      `json:"downloads"`
	Link             string   `json:"link,omitempty"`
}

// CatalogItemCache provides read/write operations for cached catalogue items.
// Entries are whole JSON documents keyed "catalog_item:<id>".
type CatalogItemCache struct {
	client *RedisClient
}

// NewCatalogItemCache returns a CatalogItemCache backed by the given RedisClient.
func NewCatalogItemCache(r *RedisClient) *CatalogItemCache {
	return &CatalogItemCache{client: r}
}

// Get retrieves a cached catalogue item by id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *CatalogItemCache) Get(ctx context.Context, itemID int64) (*CachedItem, error) {
	data, err := c.client.Client().Get(ctx, c.key(itemID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var item CachedItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &item, nil
}

// Set writes a cached catalogue item with a 24-hour TTL.
func (c *CatalogItemCache) Set(ctx context.Context, item *CachedItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(item.ID), data, CatalogItemTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached catalogue item.
func (c *CatalogItemCache) Delete(ctx context.Context, itemID int64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *CatalogItemCache) key(itemID int64) string {
	return fmt.Sprintf("%s:%d", catalogItemKeyPrefix, itemID)
}
