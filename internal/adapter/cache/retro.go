// Package cache provides in-memory read-through decorators for repositories.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// RetroStore is the retrospective repository being decorated.
type RetroStore interface {
	Create(ctx context.Context, r domain.Retrospective) (domain.Retrospective, error)
	GetByID(ctx context.Context, id string) (domain.Retrospective, error)
	List(ctx context.Context, filter domain.RetroFilter) ([]domain.Retrospective, error)
	Update(ctx context.Context, id string, params domain.RetroUpdateParams) (domain.Retrospective, error)
	Delete(ctx context.Context, id string) error
}

// RetroCache serves GetByID from memory. Writes go to the store and then
// refresh or evict the cached entry. Lists are never cached.
// Writes made by other instances arrive as retro events and evict through
// Invalidate.
type RetroCache struct {
	next  RetroStore
	cache *gocache.Cache
}

// NewRetroCache wraps next with a TTL cache.
func NewRetroCache(next RetroStore, ttl, cleanup time.Duration) *RetroCache {
	return &RetroCache{
		next:  next,
		cache: gocache.New(ttl, cleanup),
	}
}

func (c *RetroCache) Create(ctx context.Context, r domain.Retrospective) (domain.Retrospective, error) {
	out, err := c.next.Create(ctx, r)
	if err != nil {
		return out, err
	}
	c.cache.Set(out.ID, out, gocache.DefaultExpiration)
	return out, nil
}

func (c *RetroCache) GetByID(ctx context.Context, id string) (domain.Retrospective, error) {
	if cached, found := c.cache.Get(id); found {
		return cached.(domain.Retrospective), nil
	}

	out, err := c.next.GetByID(ctx, id)
	if err != nil {
		return out, err
	}
	c.cache.Set(id, out, gocache.DefaultExpiration)
	return out, nil
}

func (c *RetroCache) List(ctx context.Context, filter domain.RetroFilter) ([]domain.Retrospective, error) {
	return c.next.List(ctx, filter)
}

func (c *RetroCache) Update(ctx context.Context, id string, params domain.RetroUpdateParams) (domain.Retrospective, error) {
	out, err := c.next.Update(ctx, id, params)
	if err != nil {
		c.cache.Delete(id)
		return out, err
	}
	c.cache.Set(id, out, gocache.DefaultExpiration)
	return out, nil
}

func (c *RetroCache) Delete(ctx context.Context, id string) error {
	c.cache.Delete(id)
	return c.next.Delete(ctx, id)
}

// Invalidate drops the cached entry for id, if any.
func (c *RetroCache) Invalidate(id string) {
	c.cache.Delete(id)
}

// Len reports the number of cached retrospectives.
func (c *RetroCache) Len() int {
	return c.cache.ItemCount()
}
