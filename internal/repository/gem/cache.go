package gem

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

const (
	detailCachePrefix = "gem:detail:"
	detailCacheTTL    = time.Hour
)

// CachedGemRepo wraps a gemstone repository with a Redis read-through cache
// on GetByID. The reference table changes rarely, so a short TTL is enough
// to keep stale reads bounded. Cache failures degrade to database reads.
type CachedGemRepo struct {
	inner  gem.GemstoneRepository
	client *redis.Client
	logger *Logger.Logger
}

// GetByID implements gem.GemstoneRepository
func (c *CachedGemRepo) GetByID(ctx context.Context, id string) (*gem.Gemstone, error) {
	key := detailCachePrefix + id

	if data, err := c.client.Get(key).Bytes(); err == nil {
		var stone gem.Gemstone
		if err := json.Unmarshal(data, &stone); err == nil {
			return &stone, nil
		}
		c.logger.Warnf("dropping corrupt cache entry %s", key)
		c.client.Del(key)
	}

	stone, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stone); err == nil {
		if err := c.client.Set(key, data, detailCacheTTL).Err(); err != nil {
			c.logger.Warnf("failed to cache gemstone %s: %v", id, err)
		}
	}
	return stone, nil
}

// FindByName implements gem.GemstoneRepository
func (c *CachedGemRepo) FindByName(ctx context.Context, name string) (*gem.Gemstone, error) {
	return c.inner.FindByName(ctx, name)
}

// FindManyByNames implements gem.GemstoneRepository
func (c *CachedGemRepo) FindManyByNames(ctx context.Context, names []string) ([]gem.Gemstone, error) {
	return c.inner.FindManyByNames(ctx, names)
}

// ListPage implements gem.GemstoneRepository
func (c *CachedGemRepo) ListPage(ctx context.Context, offset, limit int) ([]gem.Gemstone, error) {
	return c.inner.ListPage(ctx, offset, limit)
}

// NewCachedGemRepo wraps repo with a Redis detail cache. A nil client
// returns the inner repository unchanged.
func NewCachedGemRepo(repo gem.GemstoneRepository, client *redis.Client, logger *Logger.Logger) gem.GemstoneRepository {
	if client == nil {
		return repo
	}
	return &CachedGemRepo{inner: repo, client: client, logger: logger}
}
