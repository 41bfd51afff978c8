package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/MayoSR/cornell-student-housing-backend/models"
)

const propertyCacheTTL = 5 * time.Minute

// Cache is a read-through cache for single-property lookups. Every method is
// safe on a nil receiver so callers never have to guard on whether Redis is
// configured.
type Cache struct {
	client *redis.Client
}

func NewCache(addr string) *Cache {
	return &Cache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func propertyKey(id uuid.UUID) string {
	return "property:" + id.String()
}

func (c *Cache) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, propertyKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var p models.Property
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *Cache) SetProperty(ctx context.Context, p *models.Property) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.client.Set(ctx, propertyKey(p.ID), raw, propertyCacheTTL)
}

func (c *Cache) InvalidateProperty(ctx context.Context, id uuid.UUID) {
	if c == nil {
		return
	}
	c.client.Del(ctx, propertyKey(id))
}

func (c *Cache) Flush(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.FlushDB(ctx)
}
